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
	"github.com/ecodeclub/marketplace/internal/product/internal/domain"
	"github.com/ecodeclub/marketplace/internal/product/internal/service"
	productmocks "github.com/ecodeclub/marketplace/internal/product/mocks"
	"github.com/ecodeclub/marketplace/internal/test"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newServer(svc service.Service, uid int64, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	server := gin.New()
	if uid > 0 {
		server.Use(test.SessionMiddleware(uid, role))
	}
	hdl := NewHandler(svc)
	hdl.PublicRoutes(server)
	hdl.PrivateRoutes(server)
	return server
}

func TestHandler_Detail(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) service.Service
		path     string
		wantCode int
		wantResp test.Result[Product]
	}{
		{
			name: "上架商品",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := productmocks.NewMockService(ctrl)
				svc.EXPECT().Detail(gomock.Any(), int64(1)).Return(domain.Product{
					ID:       1,
					SN:       "sn-1",
					SellerID: 10,
					Name:     "Pen",
					Price:    10000,
					Stock:    5,
					Status:   domain.StatusActive,
					Variants: []domain.Variant{{ID: 2, ProductID: 1, Name: "Blue", Price: 10050, Stock: 1}},
				}, nil)
				return svc
			},
			path:     "/api/products/1",
			wantCode: http.StatusOK,
			wantResp: test.Result[Product]{
				Success: true,
				Message: "OK",
				Data: Product{
					ID:       1,
					SN:       "sn-1",
					SellerID: 10,
					Name:     "Pen",
					Price:    "100.00",
					Stock:    5,
					Status:   "active",
					Variants: []Variant{{ID: 2, Name: "Blue", Price: "100.50", Stock: 1}},
				},
			},
		},
		{
			name: "下架商品不可见",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := productmocks.NewMockService(ctrl)
				svc.EXPECT().Detail(gomock.Any(), int64(1)).Return(domain.Product{
					ID:     1,
					Status: domain.StatusInactive,
				}, nil)
				return svc
			},
			path:     "/api/products/1",
			wantCode: http.StatusNotFound,
			wantResp: test.Result[Product]{Message: "Product not found"},
		},
		{
			name: "ID非法",
			mock: func(ctrl *gomock.Controller) service.Service {
				return productmocks.NewMockService(ctrl)
			},
			path:     "/api/products/abc",
			wantCode: http.StatusBadRequest,
			wantResp: test.Result[Product]{Message: "Invalid id"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := newServer(tc.mock(ctrl), 0, "")
			req, err := http.NewRequest(http.MethodGet, tc.path, nil)
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[Product]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}

func TestHandler_Create(t *testing.T) {
	testCases := []struct {
		name     string
		role     string
		mock     func(ctrl *gomock.Controller) service.Service
		req      any
		wantCode int
		wantMsg  string
	}{
		{
			name: "创建成功",
			role: "seller",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := productmocks.NewMockService(ctrl)
				svc.EXPECT().Create(gomock.Any(), domain.Product{
					SellerID: 10,
					Name:     "Pen",
					Price:    10000,
					Stock:    5,
					Variants: []domain.Variant{{Name: "Blue", Price: 12050, Stock: 2}},
				}).Return(int64(1), nil)
				svc.EXPECT().Detail(gomock.Any(), int64(1)).Return(domain.Product{
					ID:     1,
					Name:   "Pen",
					Price:  10000,
					Status: domain.StatusActive,
				}, nil)
				return svc
			},
			req: SaveReq{
				Name:     "Pen",
				Price:    "100",
				Stock:    5,
				Variants: []VariantReq{{Name: "Blue", Price: "120.5", Stock: 2}},
			},
			wantCode: http.StatusCreated,
			wantMsg:  "Product created",
		},
		{
			name: "价格格式非法",
			role: "seller",
			mock: func(ctrl *gomock.Controller) service.Service {
				return productmocks.NewMockService(ctrl)
			},
			req:      SaveReq{Name: "Pen", Price: "1.001"},
			wantCode: http.StatusBadRequest,
			wantMsg:  "Invalid price",
		},
		{
			name: "买家不能发布商品",
			role: "buyer",
			mock: func(ctrl *gomock.Controller) service.Service {
				return productmocks.NewMockService(ctrl)
			},
			req:      SaveReq{Name: "Pen", Price: "100"},
			wantCode: http.StatusForbidden,
			wantMsg:  "Forbidden",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := newServer(tc.mock(ctrl), 10, tc.role)
			req, err := http.NewRequest(http.MethodPost, "/api/seller/products", iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Header.Set("Content-Type", "application/json")
			recorder := test.NewJSONResponseRecorder[any]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantMsg, recorder.MustScan().Message)
		})
	}
}
