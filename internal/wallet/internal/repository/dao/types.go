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

import "github.com/ego-component/egorm"

const (
	TransactionTypeCredit = "credit"
	TransactionTypeDebit  = "debit"

	TransactionStatusPending   = "pending"
	TransactionStatusReleased  = "released"
	TransactionStatusCompleted = "completed"

	CategoryWithdrawal      = "withdrawal"
	ReferenceTypeWithdrawal = "withdrawal"

	WithdrawalStatusPending   = "pending"
	WithdrawalStatusApproved  = "approved"
	WithdrawalStatusCompleted = "completed"
)

type Wallet struct {
	Id                  int64  `gorm:"primaryKey;autoIncrement;comment:钱包自增ID"`
	Uid                 int64  `gorm:"not null;uniqueIndex:uniq_wallet_uid_role,priority:1;comment:用户ID"`
	Role                string `gorm:"type:varchar(32);not null;uniqueIndex:uniq_wallet_uid_role,priority:2;comment:角色 seller/deliveryPartner"`
	Balance             int64  `gorm:"not null;default:0;comment:余额, 等于可提现金额加待结算金额;单位为分"`
	WithdrawableBalance int64  `gorm:"not null;default:0;comment:可提现金额;单位为分"`
	PendingAmount       int64  `gorm:"not null;default:0;comment:待结算金额;单位为分"`
	TotalEarnings       int64  `gorm:"not null;default:0;comment:累计收入;单位为分"`
	TotalWithdrawn      int64  `gorm:"not null;default:0;comment:累计提现;单位为分"`
	Version             int64  `gorm:"not null;default:1;comment:版本号"`
	Ctime               int64
	Utime               int64
}

// WalletTransaction 钱包流水, 只插入不更新
type WalletTransaction struct {
	Id            int64  `gorm:"primaryKey;autoIncrement;comment:流水自增ID"`
	WalletID      int64  `gorm:"not null;index:idx_wallet_tx_wallet_id;comment:钱包ID"`
	Type          string `gorm:"type:varchar(16);not null;comment:credit/debit"`
	Category      string `gorm:"type:varchar(32);not null;comment:order_earning/delivery_fee/withdrawal"`
	Amount        int64  `gorm:"not null;comment:变动金额, 总是正数;单位为分"`
	Status        string `gorm:"type:varchar(16);not null;comment:received/pending/released/completed"`
	ReferenceType string `gorm:"type:varchar(32);not null;index:idx_wallet_tx_reference,priority:1;comment:关联业务类型"`
	ReferenceID   int64  `gorm:"not null;index:idx_wallet_tx_reference,priority:2;comment:关联业务ID"`
	Description   string `gorm:"type:varchar(255);not null;comment:流水描述"`
	BalanceAfter  int64  `gorm:"not null;comment:变动后的余额;单位为分"`
	Ctime         int64
}

type WithdrawalRequest struct {
	Id          int64  `gorm:"primaryKey;autoIncrement;comment:提现申请自增ID"`
	SN          string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_withdrawal_sn;comment:提现申请序列号"`
	WalletID    int64  `gorm:"not null;comment:钱包ID"`
	Uid         int64  `gorm:"not null;index:idx_withdrawal_uid;comment:申请人ID"`
	Role        string `gorm:"type:varchar(32);not null;comment:申请人角色"`
	Amount      int64  `gorm:"not null;comment:提现金额;单位为分"`
	Status      string `gorm:"type:varchar(16);not null;index:idx_withdrawal_status;comment:pending/approved/completed/rejected"`
	Note        string `gorm:"type:varchar(512);not null;default:'';comment:备注"`
	ProcessedBy int64  `gorm:"not null;default:0;comment:处理人ID"`
	Ctime       int64
	Utime       int64
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Wallet{}, &WalletTransaction{}, &WithdrawalRequest{})
}
