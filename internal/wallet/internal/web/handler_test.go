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
	"github.com/ecodeclub/marketplace/internal/test"
	"github.com/ecodeclub/marketplace/internal/wallet/internal/domain"
	"github.com/ecodeclub/marketplace/internal/wallet/internal/errs"
	"github.com/ecodeclub/marketplace/internal/wallet/internal/service"
	walletmocks "github.com/ecodeclub/marketplace/internal/wallet/mocks"
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

func TestHandler_Wallet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := walletmocks.NewMockService(ctrl)
	svc.EXPECT().Wallet(gomock.Any(), int64(5), domain.RoleDeliveryPartner).Return(domain.Wallet{
		Uid:                 5,
		Role:                domain.RoleDeliveryPartner,
		Balance:             4000,
		WithdrawableBalance: 0,
		PendingAmount:       4000,
		TotalEarnings:       4000,
	}, nil)
	server := newServer(svc, 5, "deliveryPartner")
	req, err := http.NewRequest(http.MethodGet, "/api/wallet", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[Wallet]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, Wallet{
		Role:                "deliveryPartner",
		Balance:             "40.00",
		WithdrawableBalance: "0.00",
		PendingAmount:       "40.00",
		TotalEarnings:       "40.00",
		TotalWithdrawn:      "0.00",
	}, recorder.MustScan().Data)
}

func TestHandler_RequestWithdrawal(t *testing.T) {
	testCases := []struct {
		name     string
		role     string
		mock     func(ctrl *gomock.Controller) service.Service
		req      any
		wantCode int
		wantMsg  string
	}{
		{
			name: "申请成功",
			role: "seller",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := walletmocks.NewMockService(ctrl)
				svc.EXPECT().RequestWithdrawal(gomock.Any(), int64(5), domain.RoleSeller, int64(5050), "bank").
					Return(domain.Withdrawal{ID: 1, Amount: 5050, Status: domain.WithdrawalStatusPending}, nil)
				return svc
			},
			req:      WithdrawalReq{Amount: "50.50", Note: "bank"},
			wantCode: http.StatusCreated,
			wantMsg:  "Withdrawal request submitted",
		},
		{
			name: "余额不足",
			role: "seller",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := walletmocks.NewMockService(ctrl)
				svc.EXPECT().RequestWithdrawal(gomock.Any(), int64(5), domain.RoleSeller, int64(100000), "").
					Return(domain.Withdrawal{}, errs.ErrInsufficientBalance)
				return svc
			},
			req:      WithdrawalReq{Amount: "1000"},
			wantCode: http.StatusBadRequest,
			wantMsg:  "Insufficient withdrawable balance",
		},
		{
			name: "金额非法",
			role: "seller",
			mock: func(ctrl *gomock.Controller) service.Service {
				return walletmocks.NewMockService(ctrl)
			},
			req:      WithdrawalReq{Amount: "abc"},
			wantCode: http.StatusBadRequest,
			wantMsg:  "Invalid amount",
		},
		{
			name: "买家没有钱包",
			role: "buyer",
			mock: func(ctrl *gomock.Controller) service.Service {
				return walletmocks.NewMockService(ctrl)
			},
			req:      WithdrawalReq{Amount: "10"},
			wantCode: http.StatusForbidden,
			wantMsg:  "Forbidden",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := newServer(tc.mock(ctrl), 5, tc.role)
			req, err := http.NewRequest(http.MethodPost, "/api/wallet/withdrawals", iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Header.Set("Content-Type", "application/json")
			recorder := test.NewJSONResponseRecorder[any]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantMsg, recorder.MustScan().Message)
		})
	}
}

func TestHandler_Complete(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) service.Service
		wantCode int
		wantMsg  string
	}{
		{
			name: "完成",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := walletmocks.NewMockService(ctrl)
				svc.EXPECT().CompleteWithdrawal(gomock.Any(), int64(1), int64(3)).
					Return(domain.Withdrawal{ID: 3, Status: domain.WithdrawalStatusCompleted}, nil)
				return svc
			},
			wantCode: http.StatusOK,
			wantMsg:  "Withdrawal completed",
		},
		{
			name: "状态不对",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := walletmocks.NewMockService(ctrl)
				svc.EXPECT().CompleteWithdrawal(gomock.Any(), int64(1), int64(3)).
					Return(domain.Withdrawal{}, errs.ErrInvalidWithdrawalTransition)
				return svc
			},
			wantCode: http.StatusBadRequest,
			wantMsg:  "Invalid withdrawal status transition",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := newServer(tc.mock(ctrl), 1, "admin")
			req, err := http.NewRequest(http.MethodPost, "/api/admin/withdrawals/3/complete", nil)
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[Withdrawal]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantMsg, recorder.MustScan().Message)
		})
	}
}
