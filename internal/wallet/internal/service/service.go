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
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/retry"
	"github.com/ecodeclub/marketplace/internal/pkg/sequencenumber"
	"github.com/ecodeclub/marketplace/internal/wallet/internal/domain"
	"github.com/ecodeclub/marketplace/internal/wallet/internal/errs"
	"github.com/ecodeclub/marketplace/internal/wallet/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=./service.go -package=walletmocks -destination=../../mocks/wallet.mock.go Service
type Service interface {
	// Wallet 钱包还没有创建时返回一个空钱包
	Wallet(ctx context.Context, uid int64, role domain.Role) (domain.Wallet, error)
	// Credit 入账, 钱包不存在时自动创建
	// 同一个钱包同一个业务只入账一次, 重复调用直接返回当前钱包
	Credit(ctx context.Context, c domain.Credit) (domain.Wallet, error)
	// ReleasePending 把某个业务的待结算金额转为可提现, 重复调用是幂等的
	ReleasePending(ctx context.Context, uid int64, role domain.Role, category domain.Category, referenceType string, referenceID int64) (int64, error)
	// CreditedAmount 对账使用, 返回某个业务已经入账的金额
	CreditedAmount(ctx context.Context, uid int64, role domain.Role, category domain.Category, referenceType string, referenceID int64) (int64, error)
	Transactions(ctx context.Context, uid int64, role domain.Role, offset, limit int) ([]domain.Transaction, int64, error)

	RequestWithdrawal(ctx context.Context, uid int64, role domain.Role, amount int64, note string) (domain.Withdrawal, error)
	MyWithdrawals(ctx context.Context, uid int64, offset, limit int) ([]domain.Withdrawal, int64, error)
	// ListWithdrawals status 为空表示全部
	ListWithdrawals(ctx context.Context, status domain.WithdrawalStatus, offset, limit int) ([]domain.Withdrawal, int64, error)
	ApproveWithdrawal(ctx context.Context, adminID, id int64, note string) (domain.Withdrawal, error)
	RejectWithdrawal(ctx context.Context, adminID, id int64, note string) (domain.Withdrawal, error)
	// CompleteWithdrawal 扣款失败时提现申请保持 approved
	CompleteWithdrawal(ctx context.Context, adminID, id int64) (domain.Withdrawal, error)
}

type service struct {
	repo repository.WalletRepository
	sn   *sequencenumber.Generator
	l    *elog.Component

	initialInterval time.Duration
	maxInterval     time.Duration
	maxRetries      int32
}

func NewService(repo repository.WalletRepository, sn *sequencenumber.Generator) Service {
	return &service{
		repo:            repo,
		sn:              sn,
		l:               elog.DefaultLogger,
		initialInterval: 50 * time.Millisecond,
		maxInterval:     500 * time.Millisecond,
		maxRetries:      5,
	}
}

func (s *service) Wallet(ctx context.Context, uid int64, role domain.Role) (domain.Wallet, error) {
	if !role.Valid() {
		return domain.Wallet{}, errs.ErrWalletNotFound
	}
	w, err := s.repo.FindWallet(ctx, uid, role)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domain.Wallet{Uid: uid, Role: role}, nil
	}
	return w, err
}

func (s *service) Credit(ctx context.Context, c domain.Credit) (domain.Wallet, error) {
	if c.Amount <= 0 {
		return domain.Wallet{}, errs.ErrInvalidAmount
	}
	if !c.Role.Valid() {
		return domain.Wallet{}, fmt.Errorf("非法的钱包角色 %s", c.Role)
	}
	if c.Status != domain.TransactionStatusPending {
		c.Status = domain.TransactionStatusReceived
	}
	var w domain.Wallet
	err := s.withRetry(ctx, func() error {
		var err error
		w, err = s.repo.Credit(ctx, c)
		return err
	})
	if errors.Is(err, repository.ErrDuplicatedCredit) {
		s.l.Info("重复入账, 忽略",
			elog.Int64("uid", c.Uid),
			elog.String("role", c.Role.String()),
			elog.String("category", string(c.Category)),
			elog.Int64("referenceID", c.ReferenceID))
		return w, nil
	}
	if err != nil {
		return domain.Wallet{}, err
	}
	s.l.Info("钱包入账",
		elog.Int64("uid", c.Uid),
		elog.String("role", c.Role.String()),
		elog.String("category", string(c.Category)),
		elog.Int64("amount", c.Amount),
		elog.Int64("referenceID", c.ReferenceID))
	return w, nil
}

func (s *service) ReleasePending(ctx context.Context, uid int64, role domain.Role, category domain.Category, referenceType string, referenceID int64) (int64, error) {
	var released int64
	err := s.withRetry(ctx, func() error {
		var err error
		released, err = s.repo.ReleasePending(ctx, uid, role, category, referenceType, referenceID)
		return err
	})
	return released, err
}

func (s *service) CreditedAmount(ctx context.Context, uid int64, role domain.Role, category domain.Category, referenceType string, referenceID int64) (int64, error) {
	return s.repo.CreditedAmount(ctx, uid, role, category, referenceType, referenceID)
}

// withRetry 乐观锁冲突时退避重试, 其余错误直接返回
func (s *service) withRetry(ctx context.Context, fn func() error) error {
	strategy, err := retry.NewExponentialBackoffRetryStrategy(s.initialInterval, s.maxInterval, s.maxRetries)
	if err != nil {
		return err
	}
	for {
		err = fn()
		if !errors.Is(err, repository.ErrRecordChangedConcurrently) {
			return err
		}
		next, ok := strategy.Next()
		if !ok {
			return errs.ErrConcurrentUpdate
		}
		timer := time.NewTimer(next)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

func (s *service) Transactions(ctx context.Context, uid int64, role domain.Role, offset, limit int) ([]domain.Transaction, int64, error) {
	w, err := s.repo.FindWallet(ctx, uid, role)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return []domain.Transaction{}, 0, nil
	}
	if err != nil {
		return nil, 0, err
	}
	var (
		eg    errgroup.Group
		ts    []domain.Transaction
		total int64
	)
	eg.Go(func() error {
		var err error
		ts, err = s.repo.FindTransactions(ctx, w.ID, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountTransactions(ctx, w.ID)
		return err
	})
	return ts, total, eg.Wait()
}

func (s *service) RequestWithdrawal(ctx context.Context, uid int64, role domain.Role, amount int64, note string) (domain.Withdrawal, error) {
	if amount <= 0 {
		return domain.Withdrawal{}, errs.ErrInvalidAmount
	}
	if !role.Valid() {
		return domain.Withdrawal{}, errs.ErrWalletNotFound
	}
	w := domain.Withdrawal{
		SN:     s.sn.Generate(sequencenumber.PrefixWithdrawal, uid),
		Uid:    uid,
		Role:   role,
		Amount: amount,
		Status: domain.WithdrawalStatusPending,
		Note:   note,
	}
	id, err := s.repo.CreateWithdrawal(ctx, w)
	if errors.Is(err, repository.ErrInsufficientBalance) {
		return domain.Withdrawal{}, errs.ErrInsufficientBalance
	}
	if err != nil {
		return domain.Withdrawal{}, fmt.Errorf("创建提现申请失败: %w", err)
	}
	return s.findWithdrawal(ctx, id)
}

func (s *service) findWithdrawal(ctx context.Context, id int64) (domain.Withdrawal, error) {
	w, err := s.repo.FindWithdrawal(ctx, id)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domain.Withdrawal{}, errs.ErrWithdrawalNotFound
	}
	return w, err
}

func (s *service) MyWithdrawals(ctx context.Context, uid int64, offset, limit int) ([]domain.Withdrawal, int64, error) {
	var (
		eg    errgroup.Group
		ws    []domain.Withdrawal
		total int64
	)
	eg.Go(func() error {
		var err error
		ws, err = s.repo.ListWithdrawalsByUid(ctx, uid, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountWithdrawalsByUid(ctx, uid)
		return err
	})
	return ws, total, eg.Wait()
}

func (s *service) ListWithdrawals(ctx context.Context, status domain.WithdrawalStatus, offset, limit int) ([]domain.Withdrawal, int64, error) {
	var (
		eg    errgroup.Group
		ws    []domain.Withdrawal
		total int64
	)
	eg.Go(func() error {
		var err error
		ws, err = s.repo.ListWithdrawals(ctx, status, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountWithdrawals(ctx, status)
		return err
	})
	return ws, total, eg.Wait()
}

func (s *service) ApproveWithdrawal(ctx context.Context, adminID, id int64, note string) (domain.Withdrawal, error) {
	return s.transit(ctx, adminID, id, domain.WithdrawalStatusApproved, note)
}

func (s *service) RejectWithdrawal(ctx context.Context, adminID, id int64, note string) (domain.Withdrawal, error) {
	return s.transit(ctx, adminID, id, domain.WithdrawalStatusRejected, note)
}

func (s *service) transit(ctx context.Context, adminID, id int64, to domain.WithdrawalStatus, note string) (domain.Withdrawal, error) {
	w, err := s.findWithdrawal(ctx, id)
	if err != nil {
		return domain.Withdrawal{}, err
	}
	if !w.Status.CanTransitTo(to) {
		return domain.Withdrawal{}, errs.ErrInvalidWithdrawalTransition
	}
	if note == "" {
		note = w.Note
	}
	err = s.repo.UpdateWithdrawalStatus(ctx, id, w.Status, to, adminID, note)
	if errors.Is(err, repository.ErrStatusConflict) {
		return domain.Withdrawal{}, errs.ErrInvalidWithdrawalTransition
	}
	if err != nil {
		return domain.Withdrawal{}, err
	}
	return s.findWithdrawal(ctx, id)
}

func (s *service) CompleteWithdrawal(ctx context.Context, adminID, id int64) (domain.Withdrawal, error) {
	w, err := s.findWithdrawal(ctx, id)
	if err != nil {
		return domain.Withdrawal{}, err
	}
	if !w.Status.CanTransitTo(domain.WithdrawalStatusCompleted) {
		return domain.Withdrawal{}, errs.ErrInvalidWithdrawalTransition
	}
	err = s.withRetry(ctx, func() error {
		return s.repo.CompleteWithdrawal(ctx, w, adminID)
	})
	switch {
	case errors.Is(err, repository.ErrStatusConflict):
		return domain.Withdrawal{}, errs.ErrInvalidWithdrawalTransition
	case errors.Is(err, repository.ErrInsufficientBalance):
		return domain.Withdrawal{}, errs.ErrInsufficientBalance
	case err != nil:
		return domain.Withdrawal{}, err
	}
	s.l.Info("提现完成",
		elog.Int64("withdrawalID", id),
		elog.Int64("uid", w.Uid),
		elog.Int64("amount", w.Amount),
		elog.Int64("adminID", adminID))
	return s.findWithdrawal(ctx, id)
}
