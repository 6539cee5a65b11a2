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
	"testing"
	"time"

	"github.com/ecodeclub/marketplace/internal/order"
	ordermocks "github.com/ecodeclub/marketplace/internal/order/mocks"
	"github.com/ecodeclub/marketplace/internal/pkg/sequencenumber"
	"github.com/ecodeclub/marketplace/internal/test/testdb"
	"github.com/ecodeclub/marketplace/internal/ticket/internal/domain"
	"github.com/ecodeclub/marketplace/internal/ticket/internal/errs"
	"github.com/ecodeclub/marketplace/internal/ticket/internal/repository"
	"github.com/ecodeclub/marketplace/internal/ticket/internal/repository/dao"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ServiceTestSuite struct {
	suite.Suite
	repo repository.TicketRepository
}

func (s *ServiceTestSuite) SetupTest() {
	db := testdb.NewSQLite(s.T(), dao.InitTables)
	s.repo = repository.NewTicketRepository(dao.NewTicketGORMDAO(db))
}

func (s *ServiceTestSuite) newService(ctrl *gomock.Controller) (Service, *ordermocks.MockService) {
	orderSvc := ordermocks.NewMockService(ctrl)
	return NewService(s.repo, orderSvc, sequencenumber.NewGenerator()), orderSvc
}

func (s *ServiceTestSuite) TestCreate() {
	t := s.T()
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, orderSvc := s.newService(ctrl)

	tk, err := svc.Create(ctx, domain.Ticket{Uid: 7, Subject: "Login", Description: "cannot login"})
	require.NoError(t, err)
	assert.Contains(t, tk.SN, sequencenumber.PrefixTicket)
	assert.Equal(t, domain.StatusOpen, tk.Status)
	assert.Equal(t, domain.CategoryOther, tk.Category)
	assert.Equal(t, domain.PriorityMedium, tk.Priority)
	assert.Zero(t, tk.ResolvedAt)
	assert.Zero(t, tk.ClosedAt)

	orderSvc.EXPECT().FindByID(gomock.Any(), int64(8)).Return(order.Order{ID: 8, BuyerID: 7}, nil)
	tk, err = svc.Create(ctx, domain.Ticket{Uid: 7, OrderID: 8, Subject: "Late", Category: domain.CategoryDelivery, Priority: domain.PriorityHigh})
	require.NoError(t, err)
	assert.Equal(t, int64(8), tk.OrderID)
	assert.Equal(t, domain.CategoryDelivery, tk.Category)

	orderSvc.EXPECT().FindByID(gomock.Any(), int64(404)).Return(order.Order{}, order.ErrOrderNotFound)
	_, err = svc.Create(ctx, domain.Ticket{Uid: 7, OrderID: 404, Subject: "Missing"})
	assert.ErrorIs(t, err, order.ErrOrderNotFound)

	ts, total, err := svc.List(ctx, 7, "", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, ts, 2)
	assert.Equal(t, "Late", ts[0].Subject)

	_, total, err = svc.List(ctx, 8, "", 0, 10)
	require.NoError(t, err)
	assert.Zero(t, total)

	_, err = svc.Detail(ctx, 8, ts[0].ID, false)
	assert.ErrorIs(t, err, errs.ErrTicketNotFound)
	_, err = svc.Detail(ctx, 1, ts[0].ID, true)
	assert.NoError(t, err)
}

func (s *ServiceTestSuite) TestResolveAndClose() {
	t := s.T()
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, _ := s.newService(ctrl)

	tk, err := svc.Create(ctx, domain.Ticket{Uid: 7, Subject: "Refund"})
	require.NoError(t, err)

	resolved, err := svc.Resolve(ctx, 1, tk.ID, "refunded")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusResolved, resolved.Status)
	assert.Equal(t, int64(1), resolved.ResolvedBy)
	assert.Equal(t, "refunded", resolved.Resolution)
	require.NotZero(t, resolved.ResolvedAt)

	time.Sleep(2 * time.Millisecond)
	_, err = svc.Resolve(ctx, 2, tk.ID, "again")
	assert.ErrorIs(t, err, errs.ErrAlreadyResolved)

	// 别人不能关闭
	_, err = svc.Close(ctx, 8, tk.ID, false)
	assert.ErrorIs(t, err, errs.ErrTicketNotFound)

	closed, err := svc.Close(ctx, 7, tk.ID, false)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusClosed, closed.Status)
	require.NotZero(t, closed.ClosedAt)
	assert.Equal(t, resolved.ResolvedAt, closed.ResolvedAt)
	assert.Equal(t, "refunded", closed.Resolution)

	time.Sleep(2 * time.Millisecond)
	_, err = svc.Close(ctx, 1, tk.ID, true)
	assert.ErrorIs(t, err, errs.ErrAlreadyClosed)
	_, err = svc.Resolve(ctx, 1, tk.ID, "late")
	assert.ErrorIs(t, err, errs.ErrAlreadyClosed)

	got, err := svc.Detail(ctx, 7, tk.ID, false)
	require.NoError(t, err)
	assert.Equal(t, closed.ClosedAt, got.ClosedAt)
	assert.Equal(t, resolved.ResolvedAt, got.ResolvedAt)

	_, err = svc.Resolve(ctx, 1, tk.ID+100, "x")
	assert.ErrorIs(t, err, errs.ErrTicketNotFound)
}

func (s *ServiceTestSuite) TestAdminList() {
	t := s.T()
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, _ := s.newService(ctrl)

	for uid := int64(1); uid <= 3; uid++ {
		_, err := svc.Create(ctx, domain.Ticket{Uid: uid, Subject: "help"})
		require.NoError(t, err)
	}
	ts, total, err := svc.AdminList(ctx, "", 0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, ts, 2)

	_, err = svc.Close(ctx, 1, ts[0].ID, true)
	require.NoError(t, err)
	ts, total, err = svc.AdminList(ctx, domain.StatusOpen, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, ts, 2)
}

func TestService(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}
