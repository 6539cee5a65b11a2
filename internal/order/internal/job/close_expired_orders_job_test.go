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

package job

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ecodeclub/marketplace/internal/order/internal/domain"
	"github.com/ecodeclub/marketplace/internal/order/internal/service"
	ordermocks "github.com/ecodeclub/marketplace/internal/order/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCloseExpiredOrdersJob_Run(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) service.Service
		wantErr error
	}{
		{
			name: "分两批关闭",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := ordermocks.NewMockService(ctrl)
				first := svc.EXPECT().FindExpiredOrders(gomock.Any(), gomock.Any(), 0, 2).
					Return([]domain.Order{{ID: 1}, {ID: 2}}, int64(3), nil)
				second := svc.EXPECT().FindExpiredOrders(gomock.Any(), gomock.Any(), 0, 2).
					Return([]domain.Order{{ID: 3}}, int64(1), nil)
				gomock.InOrder(first, second)
				for _, id := range []int64{1, 2, 3} {
					svc.EXPECT().CloseExpiredOrder(gomock.Any(), id).Return(nil)
				}
				return svc
			},
		},
		{
			name: "没有过期订单",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := ordermocks.NewMockService(ctrl)
				svc.EXPECT().FindExpiredOrders(gomock.Any(), gomock.Any(), 0, 2).
					Return(nil, int64(0), nil)
				return svc
			},
		},
		{
			name: "关闭失败",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := ordermocks.NewMockService(ctrl)
				svc.EXPECT().FindExpiredOrders(gomock.Any(), gomock.Any(), 0, 2).
					Return([]domain.Order{{ID: 1}}, int64(1), nil)
				svc.EXPECT().CloseExpiredOrder(gomock.Any(), int64(1)).Return(errors.New("mock db error"))
				return svc
			},
			wantErr: errors.New("关闭过期订单失败 orderID=1: mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			job := NewCloseExpiredOrdersJob(tc.mock(ctrl), 2, 30, time.Second)
			assert.Equal(t, "CloseExpiredOrdersJob", job.Name())
			err := job.Run(context.Background())
			if tc.wantErr != nil {
				assert.EqualError(t, err, tc.wantErr.Error())
				return
			}
			assert.NoError(t, err)
		})
	}
}
