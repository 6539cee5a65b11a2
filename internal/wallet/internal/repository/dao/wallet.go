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

package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrRecordNotFound            = gorm.ErrRecordNotFound
	ErrRecordChangedConcurrently = errors.New("记录已被并发修改")
	ErrInsufficientBalance       = errors.New("可提现余额不足")
	ErrStatusConflict            = errors.New("提现申请状态已变更")
	ErrDuplicatedCredit          = errors.New("该业务已经入账")
)

type WalletDAO interface {
	FindWallet(ctx context.Context, uid int64, role string) (Wallet, error)
	// Credit 钱包不存在时先创建, 再入账并追加一条流水
	// 同一个钱包同一个业务只入账一次, 重复入账返回当前钱包和 ErrDuplicatedCredit
	Credit(ctx context.Context, uid int64, role string, t WalletTransaction) (Wallet, error)
	// ReleasePending 把某个业务对应的待结算金额转为可提现, 返回释放的金额, 重复释放返回 0
	ReleasePending(ctx context.Context, uid int64, role, category, referenceType string, referenceID int64) (int64, error)
	// CreditedAmount 某个业务累计入账的金额, 释放流水不重复计算
	CreditedAmount(ctx context.Context, uid int64, role, category, referenceType string, referenceID int64) (int64, error)
	FindTransactions(ctx context.Context, walletID int64, offset, limit int) ([]WalletTransaction, error)
	CountTransactions(ctx context.Context, walletID int64) (int64, error)

	// CreateWithdrawal 申请金额加上处理中的申请不能超过可提现余额
	CreateWithdrawal(ctx context.Context, w WithdrawalRequest) (int64, error)
	FindWithdrawal(ctx context.Context, id int64) (WithdrawalRequest, error)
	ListWithdrawalsByUid(ctx context.Context, uid int64, offset, limit int) ([]WithdrawalRequest, error)
	CountWithdrawalsByUid(ctx context.Context, uid int64) (int64, error)
	// ListWithdrawals status 为空表示全部
	ListWithdrawals(ctx context.Context, status string, offset, limit int) ([]WithdrawalRequest, error)
	CountWithdrawals(ctx context.Context, status string) (int64, error)
	UpdateWithdrawalStatus(ctx context.Context, id int64, from, to string, processedBy int64, note string) error
	// CompleteWithdrawal 提现完成与扣款在同一个事务里, 扣款失败时申请保持 approved
	CompleteWithdrawal(ctx context.Context, id, processedBy int64, description string) error
}

type walletDAO struct {
	db *egorm.Component
}

func NewWalletGORMDAO(db *egorm.Component) WalletDAO {
	return &walletDAO{db: db}
}

func (d *walletDAO) FindWallet(ctx context.Context, uid int64, role string) (Wallet, error) {
	var res Wallet
	err := d.db.WithContext(ctx).First(&res, "uid = ? AND role = ?", uid, role).Error
	return res, err
}

func (d *walletDAO) Credit(ctx context.Context, uid int64, role string, t WalletTransaction) (Wallet, error) {
	if err := d.ensureWallet(ctx, uid, role); err != nil {
		return Wallet{}, err
	}
	var w Wallet
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.First(&w, "uid = ? AND role = ?", uid, role).Error
		if err != nil {
			return err
		}
		if t.ReferenceID > 0 {
			var cnt int64
			err = tx.Model(&WalletTransaction{}).
				Where("wallet_id = ? AND type = ? AND status <> ?", w.Id, TransactionTypeCredit, TransactionStatusReleased).
				Where("category = ? AND reference_type = ? AND reference_id = ?", t.Category, t.ReferenceType, t.ReferenceID).
				Count(&cnt).Error
			if err != nil {
				return err
			}
			if cnt > 0 {
				return ErrDuplicatedCredit
			}
		}
		now := time.Now().UnixMilli()
		version := w.Version
		w.Balance += t.Amount
		w.TotalEarnings += t.Amount
		if t.Status == TransactionStatusPending {
			w.PendingAmount += t.Amount
		} else {
			w.WithdrawableBalance += t.Amount
		}
		// 并发入账时只有一个能更新成功, 失败方重试时会看到已经存在的流水
		if err = d.updateWallet(tx, &w, version, now); err != nil {
			return err
		}
		return d.appendTransaction(tx, w, t, now)
	})
	return w, err
}

// ensureWallet 并发创建同一个钱包时依赖唯一索引, 冲突直接忽略
func (d *walletDAO) ensureWallet(ctx context.Context, uid int64, role string) error {
	_, err := d.FindWallet(ctx, uid, role)
	if !errors.Is(err, ErrRecordNotFound) {
		return err
	}
	now := time.Now().UnixMilli()
	err = d.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).
		Create(&Wallet{Uid: uid, Role: role, Version: 1, Ctime: now, Utime: now}).Error
	if err != nil {
		return fmt.Errorf("创建钱包失败: %w", err)
	}
	return nil
}

func (d *walletDAO) ReleasePending(ctx context.Context, uid int64, role, category, referenceType string, referenceID int64) (int64, error) {
	var released int64
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var w Wallet
		err := tx.First(&w, "uid = ? AND role = ?", uid, role).Error
		if errors.Is(err, ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		ref := tx.Model(&WalletTransaction{}).
			Where("wallet_id = ? AND category = ? AND reference_type = ? AND reference_id = ?",
				w.Id, category, referenceType, referenceID)
		var cnt int64
		if err = ref.Session(&gorm.Session{}).Where("status = ?", TransactionStatusReleased).Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return nil
		}
		var amount int64
		err = ref.Session(&gorm.Session{}).Where("status = ?", TransactionStatusPending).
			Select("COALESCE(SUM(amount), 0)").Scan(&amount).Error
		if err != nil {
			return err
		}
		if amount == 0 {
			return nil
		}
		now := time.Now().UnixMilli()
		version := w.Version
		w.PendingAmount -= amount
		w.WithdrawableBalance += amount
		if err = d.updateWallet(tx, &w, version, now); err != nil {
			return err
		}
		released = amount
		return d.appendTransaction(tx, w, WalletTransaction{
			Type:          TransactionTypeCredit,
			Category:      category,
			Amount:        amount,
			Status:        TransactionStatusReleased,
			ReferenceType: referenceType,
			ReferenceID:   referenceID,
			Description:   fmt.Sprintf("Pending %s released for %s %d", category, referenceType, referenceID),
		}, now)
	})
	return released, err
}

func (d *walletDAO) CreditedAmount(ctx context.Context, uid int64, role, category, referenceType string, referenceID int64) (int64, error) {
	var amount int64
	err := d.db.WithContext(ctx).Model(&WalletTransaction{}).
		Joins("JOIN wallets ON wallets.id = wallet_transactions.wallet_id").
		Where("wallets.uid = ? AND wallets.role = ?", uid, role).
		Where("wallet_transactions.type = ? AND wallet_transactions.status <> ?", TransactionTypeCredit, TransactionStatusReleased).
		Where("wallet_transactions.category = ? AND wallet_transactions.reference_type = ? AND wallet_transactions.reference_id = ?",
			category, referenceType, referenceID).
		Select("COALESCE(SUM(wallet_transactions.amount), 0)").
		Scan(&amount).Error
	return amount, err
}

func (d *walletDAO) debit(tx *gorm.DB, uid int64, role string, t WalletTransaction) (Wallet, error) {
	var w Wallet
	err := tx.First(&w, "uid = ? AND role = ?", uid, role).Error
	if errors.Is(err, ErrRecordNotFound) {
		return Wallet{}, ErrInsufficientBalance
	}
	if err != nil {
		return Wallet{}, err
	}
	if w.WithdrawableBalance < t.Amount {
		return Wallet{}, ErrInsufficientBalance
	}
	now := time.Now().UnixMilli()
	version := w.Version
	w.WithdrawableBalance -= t.Amount
	w.Balance -= t.Amount
	w.TotalWithdrawn += t.Amount
	if err = d.updateWallet(tx, &w, version, now); err != nil {
		return Wallet{}, err
	}
	t.Type = TransactionTypeDebit
	return w, d.appendTransaction(tx, w, t, now)
}

// updateWallet 基于版本号的乐观锁更新
func (d *walletDAO) updateWallet(tx *gorm.DB, w *Wallet, version, now int64) error {
	w.Version = version + 1
	w.Utime = now
	res := tx.Model(&Wallet{}).
		Where("id = ? AND version = ?", w.Id, version).
		Updates(map[string]any{
			"balance":              w.Balance,
			"withdrawable_balance": w.WithdrawableBalance,
			"pending_amount":       w.PendingAmount,
			"total_earnings":       w.TotalEarnings,
			"total_withdrawn":      w.TotalWithdrawn,
			"version":              w.Version,
			"utime":                now,
		})
	if res.Error != nil {
		return fmt.Errorf("更新钱包失败: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRecordChangedConcurrently
	}
	return nil
}

func (d *walletDAO) appendTransaction(tx *gorm.DB, w Wallet, t WalletTransaction, now int64) error {
	t.WalletID = w.Id
	t.BalanceAfter = w.Balance
	t.Ctime = now
	if err := tx.Create(&t).Error; err != nil {
		return fmt.Errorf("创建钱包流水失败: %w", err)
	}
	return nil
}

func (d *walletDAO) FindTransactions(ctx context.Context, walletID int64, offset, limit int) ([]WalletTransaction, error) {
	var res []WalletTransaction
	err := d.db.WithContext(ctx).Where("wallet_id = ?", walletID).
		Order("id DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (d *walletDAO) CountTransactions(ctx context.Context, walletID int64) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Model(&WalletTransaction{}).Where("wallet_id = ?", walletID).Count(&res).Error
	return res, err
}

func (d *walletDAO) CreateWithdrawal(ctx context.Context, w WithdrawalRequest) (int64, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var wallet Wallet
		err := tx.First(&wallet, "uid = ? AND role = ?", w.Uid, w.Role).Error
		if errors.Is(err, ErrRecordNotFound) {
			return ErrInsufficientBalance
		}
		if err != nil {
			return err
		}
		var open int64
		err = tx.Model(&WithdrawalRequest{}).
			Where("wallet_id = ? AND status IN ?", wallet.Id, []string{WithdrawalStatusPending, WithdrawalStatusApproved}).
			Select("COALESCE(SUM(amount), 0)").Scan(&open).Error
		if err != nil {
			return err
		}
		if open+w.Amount > wallet.WithdrawableBalance {
			return ErrInsufficientBalance
		}
		now := time.Now().UnixMilli()
		w.WalletID = wallet.Id
		w.Status = WithdrawalStatusPending
		w.Ctime, w.Utime = now, now
		return tx.Create(&w).Error
	})
	return w.Id, err
}

func (d *walletDAO) FindWithdrawal(ctx context.Context, id int64) (WithdrawalRequest, error) {
	var res WithdrawalRequest
	err := d.db.WithContext(ctx).First(&res, "id = ?", id).Error
	return res, err
}

func (d *walletDAO) ListWithdrawalsByUid(ctx context.Context, uid int64, offset, limit int) ([]WithdrawalRequest, error) {
	var res []WithdrawalRequest
	err := d.db.WithContext(ctx).Where("uid = ?", uid).
		Order("id DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (d *walletDAO) CountWithdrawalsByUid(ctx context.Context, uid int64) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Model(&WithdrawalRequest{}).Where("uid = ?", uid).Count(&res).Error
	return res, err
}

func (d *walletDAO) withdrawals(ctx context.Context, status string) *gorm.DB {
	query := d.db.WithContext(ctx).Model(&WithdrawalRequest{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	return query
}

func (d *walletDAO) ListWithdrawals(ctx context.Context, status string, offset, limit int) ([]WithdrawalRequest, error) {
	var res []WithdrawalRequest
	err := d.withdrawals(ctx, status).Order("id DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (d *walletDAO) CountWithdrawals(ctx context.Context, status string) (int64, error) {
	var res int64
	err := d.withdrawals(ctx, status).Count(&res).Error
	return res, err
}

func (d *walletDAO) UpdateWithdrawalStatus(ctx context.Context, id int64, from, to string, processedBy int64, note string) error {
	res := d.db.WithContext(ctx).Model(&WithdrawalRequest{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]any{
			"status":       to,
			"processed_by": processedBy,
			"note":         note,
			"utime":        time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStatusConflict
	}
	return nil
}

func (d *walletDAO) CompleteWithdrawal(ctx context.Context, id, processedBy int64, description string) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var wr WithdrawalRequest
		if err := tx.First(&wr, "id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Model(&WithdrawalRequest{}).
			Where("id = ? AND status = ?", id, WithdrawalStatusApproved).
			Updates(map[string]any{
				"status":       WithdrawalStatusCompleted,
				"processed_by": processedBy,
				"utime":        time.Now().UnixMilli(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrStatusConflict
		}
		_, err := d.debit(tx, wr.Uid, wr.Role, WalletTransaction{
			Category:      CategoryWithdrawal,
			Amount:        wr.Amount,
			Status:        TransactionStatusCompleted,
			ReferenceType: ReferenceTypeWithdrawal,
			ReferenceID:   wr.Id,
			Description:   description,
		})
		return err
	})
}
