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
	"sync/atomic"
	"testing"
	"time"

	"github.com/ecodeclub/marketplace/internal/test/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestWalletDAO_CreditWalletCreatedConcurrently(t *testing.T) {
	db := testdb.NewSQLite(t, InitTables)
	var inserted atomic.Bool
	// 第一次查询钱包没查到之后, 另一个请求抢先把钱包建好了
	err := db.Callback().Query().After("gorm:query").Register("test:create_wallet", func(tx *gorm.DB) {
		if tx.Statement.Table != "wallets" || !errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return
		}
		if !inserted.CompareAndSwap(false, true) {
			return
		}
		now := time.Now().UnixMilli()
		require.NoError(t, db.Create(&Wallet{Uid: 21, Role: "seller", Version: 1, Ctime: now, Utime: now}).Error)
	})
	require.NoError(t, err)

	d := NewWalletGORMDAO(db)
	w, err := d.Credit(context.Background(), 21, "seller", WalletTransaction{
		Type:          TransactionTypeCredit,
		Category:      "order_earning",
		Amount:        3000,
		Status:        "received",
		ReferenceType: "order",
		ReferenceID:   1,
	})
	require.NoError(t, err)
	assert.True(t, inserted.Load())
	assert.Equal(t, int64(3000), w.Balance)
	assert.Equal(t, int64(2), w.Version)

	var cnt int64
	require.NoError(t, db.Model(&Wallet{}).Where("uid = ?", 21).Count(&cnt).Error)
	assert.Equal(t, int64(1), cnt)
}

func TestWalletDAO_CreditDuplicated(t *testing.T) {
	db := testdb.NewSQLite(t, InitTables)
	d := NewWalletGORMDAO(db)
	ctx := context.Background()
	fee := WalletTransaction{
		Type:          TransactionTypeCredit,
		Category:      "delivery_fee",
		Amount:        4000,
		Status:        TransactionStatusPending,
		ReferenceType: "order",
		ReferenceID:   2,
	}
	_, err := d.Credit(ctx, 22, "deliveryPartner", fee)
	require.NoError(t, err)
	w, err := d.Credit(ctx, 22, "deliveryPartner", fee)
	assert.ErrorIs(t, err, ErrDuplicatedCredit)
	assert.Equal(t, int64(4000), w.Balance)
	assert.Equal(t, int64(2), w.Version)

	cnt, err := d.CountTransactions(ctx, w.Id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cnt)
}
