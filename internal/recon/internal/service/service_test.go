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

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ecodeclub/marketplace/internal/order"
	ordermocks "github.com/ecodeclub/marketplace/internal/order/mocks"
	"github.com/ecodeclub/marketplace/internal/wallet"
	walletmocks "github.com/ecodeclub/marketplace/internal/wallet/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func paidOrder(id int64) order.Order {
	return order.Order{
		ID:                id,
		SN:                "ORD-1",
		PaymentStatus:     order.PaymentStatusCompleted,
		ShippingCharges:   4000,
		SellerEarnings:    9000,
		DeliveryPartnerID: 20,
		Items: []order.OrderItem{
			{SellerID: 10, FinalPrice: 6000},
			{SellerID: 11, FinalPrice: 4000},
		},
	}
}

func TestService_Reconcile(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) (order.Service, wallet.Service)
		limit   int
		wantCnt int
		wantErr error
	}{
		{
			name: "入账一致",
			mock: func(ctrl *gomock.Controller) (order.Service, wallet.Service) {
				orderSvc := ordermocks.NewMockService(ctrl)
				walletSvc := walletmocks.NewMockService(ctrl)
				orderSvc.EXPECT().ListPaid(gomock.Any(), int64(1), int64(2), 0, 10).
					Return([]order.Order{paidOrder(1)}, nil)
				walletSvc.EXPECT().CreditedAmount(gomock.Any(), int64(10), wallet.RoleSeller,
					wallet.CategoryOrderEarning, wallet.ReferenceTypeOrder, int64(1)).Return(int64(5400), nil)
				walletSvc.EXPECT().CreditedAmount(gomock.Any(), int64(11), wallet.RoleSeller,
					wallet.CategoryOrderEarning, wallet.ReferenceTypeOrder, int64(1)).Return(int64(3600), nil)
				walletSvc.EXPECT().CreditedAmount(gomock.Any(), int64(20), wallet.RoleDeliveryPartner,
					wallet.CategoryDeliveryFee, wallet.ReferenceTypeOrder, int64(1)).Return(int64(4000), nil)
				return orderSvc, walletSvc
			},
			limit:   10,
			wantCnt: 0,
		},
		{
			name: "缺少配送费入账",
			mock: func(ctrl *gomock.Controller) (order.Service, wallet.Service) {
				orderSvc := ordermocks.NewMockService(ctrl)
				walletSvc := walletmocks.NewMockService(ctrl)
				orderSvc.EXPECT().ListPaid(gomock.Any(), int64(1), int64(2), 0, 10).
					Return([]order.Order{paidOrder(1)}, nil)
				walletSvc.EXPECT().CreditedAmount(gomock.Any(), int64(10), wallet.RoleSeller,
					gomock.Any(), gomock.Any(), int64(1)).Return(int64(5400), nil)
				walletSvc.EXPECT().CreditedAmount(gomock.Any(), int64(11), wallet.RoleSeller,
					gomock.Any(), gomock.Any(), int64(1)).Return(int64(3600), nil)
				walletSvc.EXPECT().CreditedAmount(gomock.Any(), int64(20), wallet.RoleDeliveryPartner,
					gomock.Any(), gomock.Any(), int64(1)).Return(int64(0), nil)
				return orderSvc, walletSvc
			},
			limit:   10,
			wantCnt: 1,
		},
		{
			name: "分页扫描且查询失败后重试",
			mock: func(ctrl *gomock.Controller) (order.Service, wallet.Service) {
				orderSvc := ordermocks.NewMockService(ctrl)
				walletSvc := walletmocks.NewMockService(ctrl)
				first := paidOrder(1)
				first.DeliveryPartnerID = 0
				first.Items = first.Items[:1]
				second := first
				second.ID = 2
				orderSvc.EXPECT().ListPaid(gomock.Any(), int64(1), int64(2), 0, 1).
					Return([]order.Order{first}, nil)
				orderSvc.EXPECT().ListPaid(gomock.Any(), int64(1), int64(2), 1, 1).
					Return([]order.Order{second}, nil)
				orderSvc.EXPECT().ListPaid(gomock.Any(), int64(1), int64(2), 2, 1).
					Return(nil, nil)
				walletSvc.EXPECT().CreditedAmount(gomock.Any(), int64(10), wallet.RoleSeller,
					gomock.Any(), gomock.Any(), int64(1)).Return(int64(9000), nil)
				walletSvc.EXPECT().CreditedAmount(gomock.Any(), int64(10), wallet.RoleSeller,
					gomock.Any(), gomock.Any(), int64(2)).Return(int64(0), errors.New("db error"))
				walletSvc.EXPECT().CreditedAmount(gomock.Any(), int64(10), wallet.RoleSeller,
					gomock.Any(), gomock.Any(), int64(2)).Return(int64(8000), nil)
				return orderSvc, walletSvc
			},
			limit:   1,
			wantCnt: 1,
		},
		{
			name: "查询订单失败",
			mock: func(ctrl *gomock.Controller) (order.Service, wallet.Service) {
				orderSvc := ordermocks.NewMockService(ctrl)
				orderSvc.EXPECT().ListPaid(gomock.Any(), int64(1), int64(2), 0, 10).
					Return(nil, errors.New("db error"))
				return orderSvc, walletmocks.NewMockService(ctrl)
			},
			limit:   10,
			wantErr: errors.New("db error"),
		},
		{
			name: "分页大小非法",
			mock: func(ctrl *gomock.Controller) (order.Service, wallet.Service) {
				return ordermocks.NewMockService(ctrl), walletmocks.NewMockService(ctrl)
			},
			limit:   0,
			wantErr: errors.New("分页大小必须大于 0"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			orderSvc, walletSvc := tc.mock(ctrl)
			svc := NewService(orderSvc, walletSvc, time.Millisecond, 2*time.Millisecond, 3)
			cnt, err := svc.Reconcile(context.Background(), 1, 2, tc.limit)
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantCnt, cnt)
		})
	}
}
