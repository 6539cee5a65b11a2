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

	"github.com/ecodeclub/marketplace/internal/delivery/internal/domain"
	"github.com/ecodeclub/marketplace/internal/delivery/internal/errs"
	"github.com/ecodeclub/marketplace/internal/delivery/internal/event"
	evtmocks "github.com/ecodeclub/marketplace/internal/delivery/internal/event/mocks"
	"github.com/ecodeclub/marketplace/internal/delivery/internal/repository"
	"github.com/ecodeclub/marketplace/internal/delivery/internal/repository/dao"
	"github.com/ecodeclub/marketplace/internal/order"
	ordermocks "github.com/ecodeclub/marketplace/internal/order/mocks"
	"github.com/ecodeclub/marketplace/internal/test/testdb"
	"github.com/ecodeclub/marketplace/internal/user"
	usermocks "github.com/ecodeclub/marketplace/internal/user/mocks"
	"github.com/ecodeclub/marketplace/internal/wallet"
	walletmocks "github.com/ecodeclub/marketplace/internal/wallet/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ServiceTestSuite struct {
	suite.Suite
	repo repository.DeliveryRepository
}

func (s *ServiceTestSuite) SetupTest() {
	db := testdb.NewSQLite(s.T(), dao.InitTables)
	s.repo = repository.NewDeliveryRepository(dao.NewDeliveryGORMDAO(db))
}

type mocks struct {
	order    *ordermocks.MockService
	wallet   *walletmocks.MockService
	user     *usermocks.MockUserService
	producer *evtmocks.MockDeliveryEventProducer
}

func (s *ServiceTestSuite) newService(ctrl *gomock.Controller) (Service, mocks) {
	m := mocks{
		order:    ordermocks.NewMockService(ctrl),
		wallet:   walletmocks.NewMockService(ctrl),
		user:     usermocks.NewMockUserService(ctrl),
		producer: evtmocks.NewMockDeliveryEventProducer(ctrl),
	}
	return NewService(s.repo, m.order, m.wallet, m.user, m.producer), m
}

func partner(id int64) user.User {
	return user.User{Id: id, Role: user.RoleDeliveryPartner, Status: user.UserStatusActive}
}

func (s *ServiceTestSuite) TestAssign() {
	t := s.T()
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, m := s.newService(ctrl)

	paid := order.Order{
		ID:              1,
		SN:              "ORD-1",
		BuyerID:         7,
		Status:          order.StatusConfirmed,
		PaymentStatus:   order.PaymentStatusCompleted,
		ShippingCharges: 4000,
	}
	m.user.EXPECT().Profile(gomock.Any(), int64(94)).Return(partner(94), nil).Times(2)
	m.order.EXPECT().FindByID(gomock.Any(), int64(1)).Return(paid, nil).Times(2)
	m.order.EXPECT().AssignDeliveryPartner(gomock.Any(), int64(1), int64(94)).Return(nil)
	// 已经支付, 由分配配送员时补记配送费
	m.wallet.EXPECT().Credit(gomock.Any(), wallet.Credit{
		Uid:           94,
		Role:          wallet.RoleDeliveryPartner,
		Amount:        4000,
		Category:      wallet.CategoryDeliveryFee,
		Status:        wallet.TransactionStatusPending,
		ReferenceType: wallet.ReferenceTypeOrder,
		ReferenceID:   1,
		Description:   "Delivery fee for order ORD-1",
	}).Return(wallet.Wallet{}, nil)

	d, err := svc.Assign(ctx, 1, 94)
	require.NoError(t, err)
	assert.True(t, d.ID > 0)
	assert.Equal(t, domain.StatusAssigned, d.Status)
	assert.Equal(t, int64(94), d.PartnerID)
	require.Len(t, d.Logs, 1)
	assert.Equal(t, domain.StatusAssigned, d.Logs[0].Status)

	// 订单上已有配送员
	paid.DeliveryPartnerID = 94
	m.order.EXPECT().FindByID(gomock.Any(), int64(1)).Return(paid, nil)
	_, err = svc.Assign(ctx, 1, 94)
	assert.ErrorIs(t, err, errs.ErrAlreadyAssigned)
}

func (s *ServiceTestSuite) TestAssignRejected() {
	t := s.T()
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, m := s.newService(ctrl)

	m.user.EXPECT().Profile(gomock.Any(), int64(74)).
		Return(user.User{Id: 74, Role: user.RoleSeller, Status: user.UserStatusActive}, nil)
	_, err := svc.Assign(ctx, 1, 74)
	assert.ErrorIs(t, err, errs.ErrInvalidPartner)

	m.user.EXPECT().Profile(gomock.Any(), int64(94)).Return(partner(94), nil).AnyTimes()
	m.order.EXPECT().FindByID(gomock.Any(), int64(2)).
		Return(order.Order{ID: 2, Status: order.StatusCancelled}, nil)
	_, err = svc.Assign(ctx, 2, 94)
	assert.ErrorIs(t, err, errs.ErrOrderNotAssignable)

	m.order.EXPECT().FindByID(gomock.Any(), int64(4)).
		Return(order.Order{ID: 4, Status: order.StatusRefunded}, nil)
	_, err = svc.Assign(ctx, 4, 94)
	assert.ErrorIs(t, err, errs.ErrOrderNotAssignable)

	// 订单侧失败时撤销配送记录, 之后可以重新分配
	m.order.EXPECT().FindByID(gomock.Any(), int64(3)).
		Return(order.Order{ID: 3, Status: order.StatusPending, PaymentStatus: order.PaymentStatusPending}, nil).Times(3)
	m.order.EXPECT().AssignDeliveryPartner(gomock.Any(), int64(3), int64(94)).Return(errors.New("mock db error"))
	_, err = svc.Assign(ctx, 3, 94)
	assert.Error(t, err)
	_, err = s.repo.FindByOrderID(ctx, 3)
	assert.ErrorIs(t, err, repository.ErrRecordNotFound)

	// 未支付的订单不记配送费
	m.order.EXPECT().AssignDeliveryPartner(gomock.Any(), int64(3), int64(94)).Return(nil)
	d, err := svc.Assign(ctx, 3, 94)
	require.NoError(t, err)
	assert.Equal(t, int64(3), d.OrderID)
}

func (s *ServiceTestSuite) TestAssignPaidMeanwhile() {
	t := s.T()
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, m := s.newService(ctrl)

	// 分配前读到未支付, 分配完成时订单已经支付
	unpaid := order.Order{
		ID:              5,
		SN:              "ORD-5",
		Status:          order.StatusPending,
		PaymentStatus:   order.PaymentStatusProcessing,
		ShippingCharges: 4000,
	}
	paid := unpaid
	paid.Status = order.StatusConfirmed
	paid.PaymentStatus = order.PaymentStatusCompleted
	paid.DeliveryPartnerID = 95

	m.user.EXPECT().Profile(gomock.Any(), int64(95)).Return(partner(95), nil)
	gomock.InOrder(
		m.order.EXPECT().FindByID(gomock.Any(), int64(5)).Return(unpaid, nil),
		m.order.EXPECT().AssignDeliveryPartner(gomock.Any(), int64(5), int64(95)).Return(nil),
		m.order.EXPECT().FindByID(gomock.Any(), int64(5)).Return(paid, nil),
	)
	m.wallet.EXPECT().Credit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c wallet.Credit) (wallet.Wallet, error) {
			assert.Equal(t, int64(95), c.Uid)
			assert.Equal(t, int64(4000), c.Amount)
			assert.Equal(t, wallet.CategoryDeliveryFee, c.Category)
			assert.Equal(t, int64(5), c.ReferenceID)
			return wallet.Wallet{}, nil
		})

	d, err := svc.Assign(ctx, 5, 95)
	require.NoError(t, err)
	assert.Equal(t, int64(95), d.PartnerID)
}

func (s *ServiceTestSuite) TestUpdateStatus() {
	t := s.T()
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, m := s.newService(ctrl)

	id, err := s.repo.Create(ctx, domain.Delivery{OrderID: 5, PartnerID: 94, Status: domain.StatusAssigned})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, 95, id, domain.StatusPickedUp, "")
	assert.ErrorIs(t, err, errs.ErrDeliveryNotFound)
	_, err = svc.UpdateStatus(ctx, 94, id+100, domain.StatusPickedUp, "")
	assert.ErrorIs(t, err, errs.ErrDeliveryNotFound)
	_, err = svc.UpdateStatus(ctx, 94, id, domain.StatusDelivered, "")
	assert.ErrorIs(t, err, errs.ErrInvalidStatusTransition)

	var published []event.DeliveryEvent
	m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, evt event.DeliveryEvent) error {
			published = append(published, evt)
			return nil
		}).Times(3)
	m.order.EXPECT().SyncDeliveryStatus(gomock.Any(), int64(5), order.StatusShipped).Return(nil)
	m.order.EXPECT().SyncDeliveryStatus(gomock.Any(), int64(5), order.StatusOutForDelivery).Return(nil)
	m.order.EXPECT().SyncDeliveryStatus(gomock.Any(), int64(5), order.StatusDelivered).Return(nil)

	d, err := svc.UpdateStatus(ctx, 94, id, domain.StatusPickedUp, "Picked up from seller")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPickedUp, d.Status)
	assert.Equal(t, "Picked up from seller", d.TrackingNote)
	_, err = svc.UpdateStatus(ctx, 94, id, domain.StatusInTransit, "")
	require.NoError(t, err)
	_, err = svc.UpdateStatus(ctx, 94, id, domain.StatusDelivered, "Handed to buyer")
	require.NoError(t, err)

	require.Len(t, published, 3)
	assert.Equal(t, "delivered", published[2].Status)
	assert.Equal(t, int64(5), published[2].OrderID)
	assert.Equal(t, int64(94), published[2].PartnerID)

	// 终态不能再变
	_, err = svc.UpdateStatus(ctx, 94, id, domain.StatusFailed, "")
	assert.ErrorIs(t, err, errs.ErrInvalidStatusTransition)

	got, err := s.repo.FindByOrderID(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "Handed to buyer", got.TrackingNote)
	assert.Len(t, got.Logs, 4)
}

func (s *ServiceTestSuite) TestUpdateStatusOrderCancelled() {
	t := s.T()
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, m := s.newService(ctrl)

	id, err := s.repo.Create(ctx, domain.Delivery{OrderID: 6, PartnerID: 94, Status: domain.StatusAssigned})
	require.NoError(t, err)
	m.order.EXPECT().SyncDeliveryStatus(gomock.Any(), int64(6), order.StatusShipped).
		Return(errors.New("invalid order status transition"))
	_, err = svc.UpdateStatus(ctx, 94, id, domain.StatusPickedUp, "")
	assert.Error(t, err)
	d, err := s.repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAssigned, d.Status)

	// failed 不同步订单
	m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(errors.New("mq down"))
	d, err = svc.UpdateStatus(ctx, 94, id, domain.StatusFailed, "Address unreachable")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFailed, d.Status)
}

func (s *ServiceTestSuite) TestTracking() {
	t := s.T()
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, m := s.newService(ctrl)

	m.order.EXPECT().Detail(gomock.Any(), int64(7), int64(8)).
		Return(order.Order{ID: 8, SN: "ORD-8", Status: order.StatusConfirmed}, nil)
	tr, err := svc.Tracking(ctx, 7, 8)
	require.NoError(t, err)
	assert.Equal(t, domain.Tracking{OrderID: 8, OrderSN: "ORD-8", OrderStatus: "confirmed"}, tr)

	_, err = s.repo.Create(ctx, domain.Delivery{OrderID: 8, PartnerID: 94, Status: domain.StatusAssigned, TrackingNote: "assigned"})
	require.NoError(t, err)
	m.order.EXPECT().Detail(gomock.Any(), int64(7), int64(8)).
		Return(order.Order{ID: 8, SN: "ORD-8", Status: order.StatusConfirmed}, nil)
	tr, err = svc.Tracking(ctx, 7, 8)
	require.NoError(t, err)
	require.NotNil(t, tr.Delivery)
	assert.Equal(t, int64(94), tr.Delivery.PartnerID)
	assert.Len(t, tr.Delivery.Logs, 1)

	m.order.EXPECT().Detail(gomock.Any(), int64(9), int64(8)).Return(order.Order{}, order.ErrOrderNotFound)
	_, err = svc.Tracking(ctx, 9, 8)
	assert.ErrorIs(t, err, order.ErrOrderNotFound)
}

func TestService(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}
