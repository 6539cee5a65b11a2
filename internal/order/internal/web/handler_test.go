// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package web

import (
	"net/http"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/marketplace/internal/order/internal/domain"
	"github.com/ecodeclub/marketplace/internal/order/internal/errs"
	"github.com/ecodeclub/marketplace/internal/order/internal/service"
	ordermocks "github.com/ecodeclub/marketplace/internal/order/mocks"
	"github.com/ecodeclub/marketplace/internal/test"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newServer(svc service.Service, uid int64, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	server := gin.New()
	server.Use(test.SessionMiddleware(uid, role))
	hdl := NewHandler(svc)
	hdl.PublicRoutes(server)
	hdl.PrivateRoutes(server)
	return server
}

func TestHandler_Create(t *testing.T) {
	testCases := []struct {
		name      string
		mock      func(ctrl *gomock.Controller) service.Service
		req       any
		requestID string
		wantCode  int
		wantResp  test.Result[Order]
	}{
		{
			name: "下单成功",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := ordermocks.NewMockService(ctrl)
				svc.EXPECT().CreateFromCart(gomock.Any(), int64(1), int64(11), "", "req-1").Return(domain.Order{
					ID:            3,
					SN:            "ORD1",
					BuyerID:       1,
					AddressID:     11,
					Status:        domain.StatusPending,
					PaymentStatus: domain.PaymentStatusPending,
					TotalAmount:   20000,
					FinalAmount:   20000,
					Items: []domain.OrderItem{
						{ID: 5, ProductID: 1, SellerID: 100, ProductName: "Pen", Quantity: 2, Price: 10000, FinalPrice: 20000},
					},
				}, nil)
				return svc
			},
			req:       CreateOrderReq{AddressID: 11},
			requestID: "req-1",
			wantCode:  http.StatusCreated,
			wantResp: test.Result[Order]{
				Success: true,
				Message: "Order created successfully",
				Data: Order{
					ID:                 3,
					SN:                 "ORD1",
					BuyerID:            1,
					AddressID:          11,
					Status:             "pending",
					PaymentStatus:      "pending",
					TotalAmount:        "200.00",
					Discount:           "0.00",
					ShippingCharges:    "0.00",
					TaxAmount:          "0.00",
					FinalAmount:        "200.00",
					PlatformCommission: "0.00",
					SellerEarnings:     "0.00",
					Items: []OrderItem{
						{ID: 5, ProductID: 1, SellerID: 100, ProductName: "Pen", Quantity: 2, Price: "100.00", FinalPrice: "200.00"},
					},
				},
			},
		},
		{
			name: "库存不足",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := ordermocks.NewMockService(ctrl)
				svc.EXPECT().CreateFromCart(gomock.Any(), int64(1), int64(11), "", "").
					Return(domain.Order{}, errs.ErrInsufficientStock.WithMsgf("Insufficient stock for product %s", "Pen"))
				return svc
			},
			req:      CreateOrderReq{AddressID: 11},
			wantCode: http.StatusBadRequest,
			wantResp: test.Result[Order]{Message: "Insufficient stock for product Pen"},
		},
		{
			name: "缺少地址",
			mock: func(ctrl *gomock.Controller) service.Service {
				return ordermocks.NewMockService(ctrl)
			},
			req:      CreateOrderReq{},
			wantCode: http.StatusBadRequest,
			wantResp: test.Result[Order]{
				Message: "Validation failed",
				Errors:  []test.FieldError{{Field: "addressId", Message: "is required"}},
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := newServer(tc.mock(ctrl), 1, "buyer")
			req, err := http.NewRequest(http.MethodPost, "/api/orders", iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Header.Set("Content-Type", "application/json")
			if tc.requestID != "" {
				req.Header.Set(RequestIDHeader, tc.requestID)
			}
			recorder := test.NewJSONResponseRecorder[Order]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}

func TestHandler_AdminUpdateStatus(t *testing.T) {
	testCases := []struct {
		name     string
		role     string
		mock     func(ctrl *gomock.Controller) service.Service
		req      any
		wantCode int
		wantMsg  string
	}{
		{
			name: "非法流转",
			role: "admin",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := ordermocks.NewMockService(ctrl)
				svc.EXPECT().UpdateStatus(gomock.Any(), int64(3), domain.StatusShipped).
					Return(errs.ErrInvalidStatusTransition)
				return svc
			},
			req:      StatusReq{Status: "shipped"},
			wantCode: http.StatusBadRequest,
			wantMsg:  "Invalid order status transition",
		},
		{
			name: "更新成功",
			role: "admin",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := ordermocks.NewMockService(ctrl)
				svc.EXPECT().UpdateStatus(gomock.Any(), int64(3), domain.StatusConfirmed).Return(nil)
				svc.EXPECT().FindByID(gomock.Any(), int64(3)).Return(domain.Order{ID: 3, Status: domain.StatusConfirmed}, nil)
				return svc
			},
			req:      StatusReq{Status: "confirmed"},
			wantCode: http.StatusOK,
			wantMsg:  "Order status updated",
		},
		{
			name: "卖家无权修改",
			role: "seller",
			mock: func(ctrl *gomock.Controller) service.Service {
				return ordermocks.NewMockService(ctrl)
			},
			req:      StatusReq{Status: "confirmed"},
			wantCode: http.StatusForbidden,
			wantMsg:  "Forbidden",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := newServer(tc.mock(ctrl), 9, tc.role)
			req, err := http.NewRequest(http.MethodPatch, "/api/admin/orders/3/status", iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Header.Set("Content-Type", "application/json")
			recorder := test.NewJSONResponseRecorder[any]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantMsg, recorder.MustScan().Message)
		})
	}
}
