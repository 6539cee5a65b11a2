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

package domain

type Role string

const (
	RoleSeller          Role = "seller"
	RoleDeliveryPartner Role = "deliveryPartner"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) Valid() bool {
	return r == RoleSeller || r == RoleDeliveryPartner
}

// Wallet 每个 (用户, 角色) 一个钱包, 金额单位为分
// 任何操作之后都满足 Balance == WithdrawableBalance + PendingAmount
type Wallet struct {
	ID                  int64
	Uid                 int64
	Role                Role
	Balance             int64
	WithdrawableBalance int64
	PendingAmount       int64
	TotalEarnings       int64
	TotalWithdrawn      int64
	Version             int64
	Ctime               int64
	Utime               int64
}

type TransactionType string

const (
	TransactionTypeCredit TransactionType = "credit"
	TransactionTypeDebit  TransactionType = "debit"
)

type Category string

const (
	CategoryOrderEarning Category = "order_earning"
	CategoryDeliveryFee  Category = "delivery_fee"
	CategoryWithdrawal   Category = "withdrawal"
)

type TransactionStatus string

const (
	// TransactionStatusReceived 入账即可提现
	TransactionStatusReceived TransactionStatus = "received"
	// TransactionStatusPending 入账但暂不可提现, 等待释放
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusReleased  TransactionStatus = "released"
	TransactionStatusCompleted TransactionStatus = "completed"
)

const (
	ReferenceTypeOrder      = "order"
	ReferenceTypeWithdrawal = "withdrawal"
)

// Transaction 钱包流水, 只会新增不会修改
type Transaction struct {
	ID            int64
	WalletID      int64
	Type          TransactionType
	Category      Category
	Amount        int64
	Status        TransactionStatus
	ReferenceType string
	ReferenceID   int64
	Description   string
	BalanceAfter  int64
	Ctime         int64
}

// Credit 入账请求
type Credit struct {
	Uid           int64
	Role          Role
	Amount        int64
	Category      Category
	Status        TransactionStatus
	ReferenceType string
	ReferenceID   int64
	Description   string
}

type WithdrawalStatus string

const (
	WithdrawalStatusPending   WithdrawalStatus = "pending"
	WithdrawalStatusApproved  WithdrawalStatus = "approved"
	WithdrawalStatusCompleted WithdrawalStatus = "completed"
	WithdrawalStatusRejected  WithdrawalStatus = "rejected"
)

func (s WithdrawalStatus) String() string {
	return string(s)
}

// CanTransitTo 提现申请只能 pending -> approved -> completed 或者 pending -> rejected
func (s WithdrawalStatus) CanTransitTo(to WithdrawalStatus) bool {
	switch s {
	case WithdrawalStatusPending:
		return to == WithdrawalStatusApproved || to == WithdrawalStatusRejected
	case WithdrawalStatusApproved:
		return to == WithdrawalStatusCompleted
	default:
		return false
	}
}

type Withdrawal struct {
	ID          int64
	SN          string
	WalletID    int64
	Uid         int64
	Role        Role
	Amount      int64
	Status      WithdrawalStatus
	Note        string
	ProcessedBy int64
	Ctime       int64
	Utime       int64
}
