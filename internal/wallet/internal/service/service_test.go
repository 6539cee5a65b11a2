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

	"github.com/ecodeclub/marketplace/internal/pkg/sequencenumber"
	"github.com/ecodeclub/marketplace/internal/test/testdb"
	"github.com/ecodeclub/marketplace/internal/wallet/internal/domain"
	"github.com/ecodeclub/marketplace/internal/wallet/internal/errs"
	"github.com/ecodeclub/marketplace/internal/wallet/internal/repository"
	"github.com/ecodeclub/marketplace/internal/wallet/internal/repository/dao"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/elog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ServiceTestSuite struct {
	suite.Suite
	db  *egorm.Component
	svc Service
}

func (s *ServiceTestSuite) SetupTest() {
	s.db = testdb.NewSQLite(s.T(), dao.InitTables)
	s.svc = NewService(repository.NewWalletRepository(dao.NewWalletGORMDAO(s.db)), sequencenumber.NewGenerator())
}

func (s *ServiceTestSuite) assertInvariant(w domain.Wallet) {
	assert.Equal(s.T(), w.WithdrawableBalance+w.PendingAmount, w.Balance)
	assert.GreaterOrEqual(s.T(), w.Balance, int64(0))
}

func (s *ServiceTestSuite) TestCreditAndRelease() {
	t := s.T()
	ctx := context.Background()

	w, err := s.svc.Wallet(ctx, 7, domain.RoleSeller)
	require.NoError(t, err)
	assert.Equal(t, int64(0), w.ID)

	w, err = s.svc.Credit(ctx, domain.Credit{
		Uid:           7,
		Role:          domain.RoleSeller,
		Amount:        18000,
		Category:      domain.CategoryOrderEarning,
		Status:        domain.TransactionStatusReceived,
		ReferenceType: domain.ReferenceTypeOrder,
		ReferenceID:   1,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(18000), w.WithdrawableBalance)
	assert.Equal(t, int64(18000), w.TotalEarnings)
	s.assertInvariant(w)

	// 同一个用户不同角色是两个钱包
	w, err = s.svc.Credit(ctx, domain.Credit{
		Uid:           7,
		Role:          domain.RoleDeliveryPartner,
		Amount:        4000,
		Category:      domain.CategoryDeliveryFee,
		Status:        domain.TransactionStatusPending,
		ReferenceType: domain.ReferenceTypeOrder,
		ReferenceID:   1,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4000), w.PendingAmount)
	assert.Equal(t, int64(0), w.WithdrawableBalance)
	s.assertInvariant(w)

	released, err := s.svc.ReleasePending(ctx, 7, domain.RoleDeliveryPartner,
		domain.CategoryDeliveryFee, domain.ReferenceTypeOrder, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(4000), released)
	released, err = s.svc.ReleasePending(ctx, 7, domain.RoleDeliveryPartner,
		domain.CategoryDeliveryFee, domain.ReferenceTypeOrder, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), released)

	w, err = s.svc.Wallet(ctx, 7, domain.RoleDeliveryPartner)
	require.NoError(t, err)
	assert.Equal(t, int64(4000), w.Balance)
	assert.Equal(t, int64(4000), w.WithdrawableBalance)
	assert.Equal(t, int64(0), w.PendingAmount)
	s.assertInvariant(w)

	ts, total, err := s.svc.Transactions(ctx, 7, domain.RoleDeliveryPartner, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, ts, 2)
	assert.Equal(t, domain.TransactionStatusReleased, ts[0].Status)
	assert.Equal(t, int64(4000), ts[0].BalanceAfter)

	// 释放流水不重复计算
	credited, err := s.svc.CreditedAmount(ctx, 7, domain.RoleDeliveryPartner,
		domain.CategoryDeliveryFee, domain.ReferenceTypeOrder, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(4000), credited)
	credited, err = s.svc.CreditedAmount(ctx, 7, domain.RoleSeller,
		domain.CategoryOrderEarning, domain.ReferenceTypeOrder, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(18000), credited)
	credited, err = s.svc.CreditedAmount(ctx, 8, domain.RoleSeller,
		domain.CategoryOrderEarning, domain.ReferenceTypeOrder, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), credited)

	_, err = s.svc.Credit(ctx, domain.Credit{Uid: 7, Role: domain.RoleSeller, Amount: 0})
	assert.ErrorIs(t, err, errs.ErrInvalidAmount)
}

func (s *ServiceTestSuite) TestCreditSameReferenceOnce() {
	t := s.T()
	ctx := context.Background()
	fee := domain.Credit{
		Uid:           12,
		Role:          domain.RoleDeliveryPartner,
		Amount:        4000,
		Category:      domain.CategoryDeliveryFee,
		Status:        domain.TransactionStatusPending,
		ReferenceType: domain.ReferenceTypeOrder,
		ReferenceID:   5,
	}
	first, err := s.svc.Credit(ctx, fee)
	require.NoError(t, err)
	// 支付和分配配送员可能都会尝试记配送费
	second, err := s.svc.Credit(ctx, fee)
	require.NoError(t, err)
	assert.Equal(t, first.Balance, second.Balance)
	assert.Equal(t, first.Version, second.Version)
	assert.Equal(t, int64(4000), second.PendingAmount)

	credited, err := s.svc.CreditedAmount(ctx, 12, domain.RoleDeliveryPartner,
		domain.CategoryDeliveryFee, domain.ReferenceTypeOrder, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(4000), credited)

	// 释放之后也不能再记一次
	_, err = s.svc.ReleasePending(ctx, 12, domain.RoleDeliveryPartner,
		domain.CategoryDeliveryFee, domain.ReferenceTypeOrder, 5)
	require.NoError(t, err)
	w, err := s.svc.Credit(ctx, fee)
	require.NoError(t, err)
	assert.Equal(t, int64(4000), w.Balance)
	assert.Equal(t, int64(0), w.PendingAmount)
	s.assertInvariant(w)

	_, total, err := s.svc.Transactions(ctx, 12, domain.RoleDeliveryPartner, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	// 同一个订单的另一个业务类型照常入账
	w, err = s.svc.Credit(ctx, domain.Credit{
		Uid: 12, Role: domain.RoleDeliveryPartner, Amount: 100,
		Category: domain.CategoryOrderEarning, Status: domain.TransactionStatusReceived,
		ReferenceType: domain.ReferenceTypeOrder, ReferenceID: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4100), w.Balance)
}

func (s *ServiceTestSuite) TestWithdrawalOverBalance() {
	t := s.T()
	ctx := context.Background()
	_, err := s.svc.Credit(ctx, domain.Credit{
		Uid: 8, Role: domain.RoleSeller, Amount: 10000,
		Category: domain.CategoryOrderEarning, Status: domain.TransactionStatusReceived,
		ReferenceType: domain.ReferenceTypeOrder, ReferenceID: 2,
	})
	require.NoError(t, err)
	before, err := s.svc.Wallet(ctx, 8, domain.RoleSeller)
	require.NoError(t, err)

	_, err = s.svc.RequestWithdrawal(ctx, 8, domain.RoleSeller, 10001, "")
	assert.ErrorIs(t, err, errs.ErrInsufficientBalance)

	// 处理中的申请占用额度
	_, err = s.svc.RequestWithdrawal(ctx, 8, domain.RoleSeller, 6000, "")
	require.NoError(t, err)
	_, err = s.svc.RequestWithdrawal(ctx, 8, domain.RoleSeller, 5000, "")
	assert.ErrorIs(t, err, errs.ErrInsufficientBalance)

	// 没有钱包
	_, err = s.svc.RequestWithdrawal(ctx, 9, domain.RoleSeller, 1, "")
	assert.ErrorIs(t, err, errs.ErrInsufficientBalance)

	after, err := s.svc.Wallet(ctx, 8, domain.RoleSeller)
	require.NoError(t, err)
	assert.Equal(t, before.Balance, after.Balance)
	assert.Equal(t, before.WithdrawableBalance, after.WithdrawableBalance)
	assert.Equal(t, before.Version, after.Version)

	ws, total, err := s.svc.MyWithdrawals(ctx, 8, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, ws, 1)
	assert.Equal(t, domain.WithdrawalStatusPending, ws[0].Status)
	assert.NotEmpty(t, ws[0].SN)
}

func (s *ServiceTestSuite) TestWithdrawalLifecycle() {
	t := s.T()
	ctx := context.Background()
	_, err := s.svc.Credit(ctx, domain.Credit{
		Uid: 10, Role: domain.RoleSeller, Amount: 10000,
		Category: domain.CategoryOrderEarning, Status: domain.TransactionStatusReceived,
		ReferenceType: domain.ReferenceTypeOrder, ReferenceID: 3,
	})
	require.NoError(t, err)

	wr, err := s.svc.RequestWithdrawal(ctx, 10, domain.RoleSeller, 7000, "bank")
	require.NoError(t, err)

	_, err = s.svc.CompleteWithdrawal(ctx, 1, wr.ID)
	assert.ErrorIs(t, err, errs.ErrInvalidWithdrawalTransition)

	wr, err = s.svc.ApproveWithdrawal(ctx, 1, wr.ID, "")
	require.NoError(t, err)
	assert.Equal(t, domain.WithdrawalStatusApproved, wr.Status)
	assert.Equal(t, "bank", wr.Note)

	_, err = s.svc.RejectWithdrawal(ctx, 1, wr.ID, "too late")
	assert.ErrorIs(t, err, errs.ErrInvalidWithdrawalTransition)

	wr, err = s.svc.CompleteWithdrawal(ctx, 1, wr.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.WithdrawalStatusCompleted, wr.Status)
	assert.Equal(t, int64(1), wr.ProcessedBy)

	w, err := s.svc.Wallet(ctx, 10, domain.RoleSeller)
	require.NoError(t, err)
	assert.Equal(t, int64(3000), w.Balance)
	assert.Equal(t, int64(3000), w.WithdrawableBalance)
	assert.Equal(t, int64(7000), w.TotalWithdrawn)
	s.assertInvariant(w)

	ts, _, err := s.svc.Transactions(ctx, 10, domain.RoleSeller, 0, 10)
	require.NoError(t, err)
	require.Len(t, ts, 2)
	assert.Equal(t, domain.TransactionTypeDebit, ts[0].Type)
	assert.Equal(t, wr.ID, ts[0].ReferenceID)

	_, err = s.svc.ApproveWithdrawal(ctx, 1, 404, "")
	assert.ErrorIs(t, err, errs.ErrWithdrawalNotFound)

	ws, total, err := s.svc.ListWithdrawals(ctx, domain.WithdrawalStatusCompleted, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, ws, 1)
}

func (s *ServiceTestSuite) TestCompleteWithdrawalInsufficient() {
	t := s.T()
	ctx := context.Background()
	_, err := s.svc.Credit(ctx, domain.Credit{
		Uid: 11, Role: domain.RoleDeliveryPartner, Amount: 5000,
		Category: domain.CategoryDeliveryFee, Status: domain.TransactionStatusReceived,
		ReferenceType: domain.ReferenceTypeOrder, ReferenceID: 4,
	})
	require.NoError(t, err)
	wr, err := s.svc.RequestWithdrawal(ctx, 11, domain.RoleDeliveryPartner, 5000, "")
	require.NoError(t, err)
	_, err = s.svc.ApproveWithdrawal(ctx, 1, wr.ID, "")
	require.NoError(t, err)

	// 审核通过之后余额被其他途径扣减
	err = s.db.Model(&dao.Wallet{}).Where("uid = ?", 11).
		Updates(map[string]any{"balance": 1000, "withdrawable_balance": 1000}).Error
	require.NoError(t, err)

	_, err = s.svc.CompleteWithdrawal(ctx, 1, wr.ID)
	assert.ErrorIs(t, err, errs.ErrInsufficientBalance)

	ws, _, err := s.svc.MyWithdrawals(ctx, 11, 0, 10)
	require.NoError(t, err)
	require.Len(t, ws, 1)
	assert.Equal(t, domain.WithdrawalStatusApproved, ws[0].Status)
	w, err := s.svc.Wallet(ctx, 11, domain.RoleDeliveryPartner)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), w.WithdrawableBalance)
	assert.Equal(t, int64(0), w.TotalWithdrawn)
}

func TestService(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

type conflictRepository struct {
	repository.WalletRepository
	calls int
}

func (r *conflictRepository) Credit(ctx context.Context, c domain.Credit) (domain.Wallet, error) {
	r.calls++
	return domain.Wallet{}, repository.ErrRecordChangedConcurrently
}

func TestCreditRetry(t *testing.T) {
	c := domain.Credit{
		Uid: 1, Role: domain.RoleSeller, Amount: 100,
		Category: domain.CategoryOrderEarning, ReferenceType: domain.ReferenceTypeOrder, ReferenceID: 1,
	}

	repo := &conflictRepository{}
	svc := &service{repo: repo, l: elog.DefaultLogger,
		initialInterval: time.Millisecond, maxInterval: time.Millisecond, maxRetries: 3}
	_, err := svc.Credit(context.Background(), c)
	assert.ErrorIs(t, err, errs.ErrConcurrentUpdate)
	assert.Equal(t, 4, repo.calls)

	// 退避期间 ctx 取消立刻返回
	repo = &conflictRepository{}
	svc = &service{repo: repo, l: elog.DefaultLogger,
		initialInterval: time.Minute, maxInterval: time.Minute, maxRetries: 3}
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	start := time.Now()
	_, err = svc.Credit(ctx, c)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 10*time.Second)
	assert.Equal(t, 1, repo.calls)

	// 非法的重试参数
	svc = &service{repo: &conflictRepository{}, l: elog.DefaultLogger, maxRetries: 3}
	_, err = svc.Credit(context.Background(), c)
	assert.Error(t, err)
}
