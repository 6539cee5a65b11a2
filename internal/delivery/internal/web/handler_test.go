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
	"github.com/ecodeclub/marketplace/internal/delivery/internal/domain"
	"github.com/ecodeclub/marketplace/internal/delivery/internal/errs"
	"github.com/ecodeclub/marketplace/internal/delivery/internal/service"
	deliverymocks "github.com/ecodeclub/marketplace/internal/delivery/mocks"
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
	hdl.PrivateRoutes(server)
	return server
}

func TestHandler_Assign(t *testing.T) {
	testCases := []struct {
		name     string
		role     string
		mock     func(ctrl *gomock.Controller) service.Service
		req      any
		wantCode int
		wantMsg  string
	}{
		{
			name: "分配成功",
			role: "admin",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := deliverymocks.NewMockService(ctrl)
				svc.EXPECT().Assign(gomock.Any(), int64(1), int64(94)).
					Return(domain.Delivery{ID: 3, OrderID: 1, PartnerID: 94, Status: domain.StatusAssigned}, nil)
				return svc
			},
			req:      AssignReq{OrderID: 1, PartnerID: 94},
			wantCode: http.StatusCreated,
			wantMsg:  "Delivery partner assigned",
		},
		{
			name: "重复分配",
			role: "admin",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := deliverymocks.NewMockService(ctrl)
				svc.EXPECT().Assign(gomock.Any(), int64(1), int64(94)).
					Return(domain.Delivery{}, errs.ErrAlreadyAssigned)
				return svc
			},
			req:      AssignReq{OrderID: 1, PartnerID: 94},
			wantCode: http.StatusConflict,
			wantMsg:  "Delivery partner already assigned",
		},
		{
			name: "缺少配送员",
			role: "admin",
			mock: func(ctrl *gomock.Controller) service.Service {
				return deliverymocks.NewMockService(ctrl)
			},
			req:      AssignReq{OrderID: 1},
			wantCode: http.StatusBadRequest,
			wantMsg:  "Validation failed",
		},
		{
			name: "非管理员",
			role: "deliveryPartner",
			mock: func(ctrl *gomock.Controller) service.Service {
				return deliverymocks.NewMockService(ctrl)
			},
			req:      AssignReq{OrderID: 1, PartnerID: 94},
			wantCode: http.StatusForbidden,
			wantMsg:  "Forbidden",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := newServer(tc.mock(ctrl), 1, tc.role)
			req, err := http.NewRequest(http.MethodPost, "/api/admin/deliveries", iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Header.Set("Content-Type", "application/json")
			recorder := test.NewJSONResponseRecorder[any]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantMsg, recorder.MustScan().Message)
		})
	}
}

func TestHandler_UpdateStatus(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) service.Service
		req      any
		wantCode int
		wantResp test.Result[Delivery]
	}{
		{
			name: "已送达",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := deliverymocks.NewMockService(ctrl)
				svc.EXPECT().UpdateStatus(gomock.Any(), int64(94), int64(3), domain.StatusDelivered, "left at door").
					Return(domain.Delivery{
						ID:           3,
						OrderID:      1,
						PartnerID:    94,
						Status:       domain.StatusDelivered,
						TrackingNote: "left at door",
						Utime:        100,
					}, nil)
				return svc
			},
			req:      StatusReq{Status: "delivered", Note: "left at door"},
			wantCode: http.StatusOK,
			wantResp: test.Result[Delivery]{
				Success: true,
				Message: "Delivery status updated",
				Data: Delivery{
					ID:           3,
					OrderID:      1,
					PartnerID:    94,
					Status:       "delivered",
					TrackingNote: "left at door",
					Utime:        100,
				},
			},
		},
		{
			name: "跳过中间状态",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := deliverymocks.NewMockService(ctrl)
				svc.EXPECT().UpdateStatus(gomock.Any(), int64(94), int64(3), domain.StatusDelivered, "").
					Return(domain.Delivery{}, errs.ErrInvalidStatusTransition)
				return svc
			},
			req:      StatusReq{Status: "delivered"},
			wantCode: http.StatusBadRequest,
			wantResp: test.Result[Delivery]{Message: "Invalid delivery status transition"},
		},
		{
			name: "状态非法",
			mock: func(ctrl *gomock.Controller) service.Service {
				return deliverymocks.NewMockService(ctrl)
			},
			req:      StatusReq{Status: "assigned"},
			wantCode: http.StatusBadRequest,
			wantResp: test.Result[Delivery]{
				Message: "Validation failed",
				Errors:  []test.FieldError{{Field: "status", Message: "must be one of [picked_up in_transit delivered failed]"}},
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := newServer(tc.mock(ctrl), 94, "deliveryPartner")
			req, err := http.NewRequest(http.MethodPatch, "/api/delivery/3/status", iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Header.Set("Content-Type", "application/json")
			recorder := test.NewJSONResponseRecorder[Delivery]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}

func TestHandler_Tracking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := deliverymocks.NewMockService(ctrl)
	svc.EXPECT().Tracking(gomock.Any(), int64(7), int64(8)).Return(domain.Tracking{
		OrderID:     8,
		OrderSN:     "ORD-8",
		OrderStatus: "shipped",
		Delivery: &domain.Delivery{
			ID:        3,
			OrderID:   8,
			PartnerID: 94,
			Status:    domain.StatusPickedUp,
			Logs: []domain.Log{
				{Status: domain.StatusAssigned, Ctime: 1},
				{Status: domain.StatusPickedUp, Note: "picked", Ctime: 2},
			},
		},
	}, nil)
	server := newServer(svc, 7, "buyer")
	req, err := http.NewRequest(http.MethodGet, "/api/orders/8/tracking", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[Tracking]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	got := recorder.MustScan().Data
	assert.Equal(t, "shipped", got.OrderStatus)
	require.NotNil(t, got.Delivery)
	assert.Equal(t, []Log{
		{Status: "assigned", Ctime: 1},
		{Status: "picked_up", Note: "picked", Ctime: 2},
	}, got.Delivery.Logs)
}
