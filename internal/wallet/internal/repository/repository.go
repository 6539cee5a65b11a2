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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/marketplace/internal/wallet/internal/domain"
	"github.com/ecodeclub/marketplace/internal/wallet/internal/repository/dao"
)

var (
	ErrRecordNotFound            = dao.ErrRecordNotFound
	ErrRecordChangedConcurrently = dao.ErrRecordChangedConcurrently
	ErrInsufficientBalance       = dao.ErrInsufficientBalance
	ErrStatusConflict            = dao.ErrStatusConflict
	ErrDuplicatedCredit          = dao.ErrDuplicatedCredit
)

type WalletRepository interface {
	FindWallet(ctx context.Context, uid int64, role domain.Role) (domain.Wallet, error)
	Credit(ctx context.Context, c domain.Credit) (domain.Wallet, error)
	ReleasePending(ctx context.Context, uid int64, role domain.Role, category domain.Category, referenceType string, referenceID int64) (int64, error)
	CreditedAmount(ctx context.Context, uid int64, role domain.Role, category domain.Category, referenceType string, referenceID int64) (int64, error)
	FindTransactions(ctx context.Context, walletID int64, offset, limit int) ([]domain.Transaction, error)
	CountTransactions(ctx context.Context, walletID int64) (int64, error)

	CreateWithdrawal(ctx context.Context, w domain.Withdrawal) (int64, error)
	FindWithdrawal(ctx context.Context, id int64) (domain.Withdrawal, error)
	ListWithdrawalsByUid(ctx context.Context, uid int64, offset, limit int) ([]domain.Withdrawal, error)
	CountWithdrawalsByUid(ctx context.Context, uid int64) (int64, error)
	ListWithdrawals(ctx context.Context, status domain.WithdrawalStatus, offset, limit int) ([]domain.Withdrawal, error)
	CountWithdrawals(ctx context.Context, status domain.WithdrawalStatus) (int64, error)
	UpdateWithdrawalStatus(ctx context.Context, id int64, from, to domain.WithdrawalStatus, processedBy int64, note string) error
	CompleteWithdrawal(ctx context.Context, w domain.Withdrawal, processedBy int64) error
}

type walletRepository struct {
	dao dao.WalletDAO
}

func NewWalletRepository(d dao.WalletDAO) WalletRepository {
	return &walletRepository{dao: d}
}

func (r *walletRepository) FindWallet(ctx context.Context, uid int64, role domain.Role) (domain.Wallet, error) {
	w, err := r.dao.FindWallet(ctx, uid, role.String())
	return r.toWalletDomain(w), err
}

func (r *walletRepository) Credit(ctx context.Context, c domain.Credit) (domain.Wallet, error) {
	w, err := r.dao.Credit(ctx, c.Uid, c.Role.String(), dao.WalletTransaction{
		Type:          dao.TransactionTypeCredit,
		Category:      string(c.Category),
		Amount:        c.Amount,
		Status:        string(c.Status),
		ReferenceType: c.ReferenceType,
		ReferenceID:   c.ReferenceID,
		Description:   c.Description,
	})
	return r.toWalletDomain(w), err
}

func (r *walletRepository) ReleasePending(ctx context.Context, uid int64, role domain.Role, category domain.Category, referenceType string, referenceID int64) (int64, error) {
	return r.dao.ReleasePending(ctx, uid, role.String(), string(category), referenceType, referenceID)
}

func (r *walletRepository) CreditedAmount(ctx context.Context, uid int64, role domain.Role, category domain.Category, referenceType string, referenceID int64) (int64, error) {
	return r.dao.CreditedAmount(ctx, uid, role.String(), string(category), referenceType, referenceID)
}

func (r *walletRepository) FindTransactions(ctx context.Context, walletID int64, offset, limit int) ([]domain.Transaction, error) {
	ts, err := r.dao.FindTransactions(ctx, walletID, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(ts, func(idx int, src dao.WalletTransaction) domain.Transaction {
		return r.toTransactionDomain(src)
	}), nil
}

func (r *walletRepository) CountTransactions(ctx context.Context, walletID int64) (int64, error) {
	return r.dao.CountTransactions(ctx, walletID)
}

func (r *walletRepository) CreateWithdrawal(ctx context.Context, w domain.Withdrawal) (int64, error) {
	return r.dao.CreateWithdrawal(ctx, r.toWithdrawalEntity(w))
}

func (r *walletRepository) FindWithdrawal(ctx context.Context, id int64) (domain.Withdrawal, error) {
	w, err := r.dao.FindWithdrawal(ctx, id)
	return r.toWithdrawalDomain(w), err
}

func (r *walletRepository) ListWithdrawalsByUid(ctx context.Context, uid int64, offset, limit int) ([]domain.Withdrawal, error) {
	ws, err := r.dao.ListWithdrawalsByUid(ctx, uid, offset, limit)
	return r.toWithdrawalDomains(ws), err
}

func (r *walletRepository) CountWithdrawalsByUid(ctx context.Context, uid int64) (int64, error) {
	return r.dao.CountWithdrawalsByUid(ctx, uid)
}

func (r *walletRepository) ListWithdrawals(ctx context.Context, status domain.WithdrawalStatus, offset, limit int) ([]domain.Withdrawal, error) {
	ws, err := r.dao.ListWithdrawals(ctx, status.String(), offset, limit)
	return r.toWithdrawalDomains(ws), err
}

func (r *walletRepository) CountWithdrawals(ctx context.Context, status domain.WithdrawalStatus) (int64, error) {
	return r.dao.CountWithdrawals(ctx, status.String())
}

func (r *walletRepository) UpdateWithdrawalStatus(ctx context.Context, id int64, from, to domain.WithdrawalStatus, processedBy int64, note string) error {
	return r.dao.UpdateWithdrawalStatus(ctx, id, from.String(), to.String(), processedBy, note)
}

func (r *walletRepository) CompleteWithdrawal(ctx context.Context, w domain.Withdrawal, processedBy int64) error {
	return r.dao.CompleteWithdrawal(ctx, w.ID, processedBy, "Withdrawal "+w.SN)
}

func (r *walletRepository) toWalletDomain(w dao.Wallet) domain.Wallet {
	return domain.Wallet{
		ID:                  w.Id,
		Uid:                 w.Uid,
		Role:                domain.Role(w.Role),
		Balance:             w.Balance,
		WithdrawableBalance: w.WithdrawableBalance,
		PendingAmount:       w.PendingAmount,
		TotalEarnings:       w.TotalEarnings,
		TotalWithdrawn:      w.TotalWithdrawn,
		Version:             w.Version,
		Ctime:               w.Ctime,
		Utime:               w.Utime,
	}
}

func (r *walletRepository) toTransactionDomain(t dao.WalletTransaction) domain.Transaction {
	return domain.Transaction{
		ID:            t.Id,
		WalletID:      t.WalletID,
		Type:          domain.TransactionType(t.Type),
		Category:      domain.Category(t.Category),
		Amount:        t.Amount,
		Status:        domain.TransactionStatus(t.Status),
		ReferenceType: t.ReferenceType,
		ReferenceID:   t.ReferenceID,
		Description:   t.Description,
		BalanceAfter:  t.BalanceAfter,
		Ctime:         t.Ctime,
	}
}

func (r *walletRepository) toWithdrawalEntity(w domain.Withdrawal) dao.WithdrawalRequest {
	return dao.WithdrawalRequest{
		Id:          w.ID,
		SN:          w.SN,
		WalletID:    w.WalletID,
		Uid:         w.Uid,
		Role:        w.Role.String(),
		Amount:      w.Amount,
		Status:      w.Status.String(),
		Note:        w.Note,
		ProcessedBy: w.ProcessedBy,
	}
}

func (r *walletRepository) toWithdrawalDomain(w dao.WithdrawalRequest) domain.Withdrawal {
	return domain.Withdrawal{
		ID:          w.Id,
		SN:          w.SN,
		WalletID:    w.WalletID,
		Uid:         w.Uid,
		Role:        domain.Role(w.Role),
		Amount:      w.Amount,
		Status:      domain.WithdrawalStatus(w.Status),
		Note:        w.Note,
		ProcessedBy: w.ProcessedBy,
		Ctime:       w.Ctime,
		Utime:       w.Utime,
	}
}

func (r *walletRepository) toWithdrawalDomains(ws []dao.WithdrawalRequest) []domain.Withdrawal {
	return slice.Map(ws, func(idx int, src dao.WithdrawalRequest) domain.Withdrawal {
		return r.toWithdrawalDomain(src)
	})
}
