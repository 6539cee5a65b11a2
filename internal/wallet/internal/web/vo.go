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

package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/marketplace/internal/pkg/money"
	"github.com/ecodeclub/marketplace/internal/wallet/internal/domain"
)

type WalletReq struct {
	Role string `form:"role" binding:"omitempty,oneof=seller deliveryPartner"`
}

type ListReq struct {
	Role   string `form:"role" binding:"omitempty,oneof=seller deliveryPartner"`
	Offset int    `form:"offset" binding:"min=0"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

func (r ListReq) limit() int {
	if r.Limit == 0 {
		return 20
	}
	return r.Limit
}

type WithdrawalReq struct {
	Amount string `json:"amount" binding:"required"`
	Note   string `json:"note" binding:"max=255"`
}

type AdminListReq struct {
	Status string `form:"status" binding:"omitempty,oneof=pending approved completed rejected"`
	Offset int    `form:"offset" binding:"min=0"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

func (r AdminListReq) limit() int {
	if r.Limit == 0 {
		return 20
	}
	return r.Limit
}

type NoteReq struct {
	Note string `json:"note" binding:"max=255"`
}

type Wallet struct {
	Role                string `json:"role"`
	Balance             string `json:"balance"`
	WithdrawableBalance string `json:"withdrawableBalance"`
	PendingAmount       string `json:"pendingAmount"`
	TotalEarnings       string `json:"totalEarnings"`
	TotalWithdrawn      string `json:"totalWithdrawn"`
}

func newWallet(w domain.Wallet) Wallet {
	return Wallet{
		Role:                w.Role.String(),
		Balance:             money.Format(w.Balance),
		WithdrawableBalance: money.Format(w.WithdrawableBalance),
		PendingAmount:       money.Format(w.PendingAmount),
		TotalEarnings:       money.Format(w.TotalEarnings),
		TotalWithdrawn:      money.Format(w.TotalWithdrawn),
	}
}

type Transaction struct {
	ID            int64  `json:"id"`
	Type          string `json:"type"`
	Category      string `json:"category"`
	Amount        string `json:"amount"`
	Status        string `json:"status"`
	ReferenceType string `json:"referenceType"`
	ReferenceID   int64  `json:"referenceId"`
	Description   string `json:"description"`
	BalanceAfter  string `json:"balanceAfter"`
	Ctime         int64  `json:"ctime"`
}

type TransactionList struct {
	Total        int64         `json:"total"`
	Transactions []Transaction `json:"transactions"`
}

func newTransactionList(total int64, ts []domain.Transaction) TransactionList {
	return TransactionList{
		Total: total,
		Transactions: slice.Map(ts, func(idx int, src domain.Transaction) Transaction {
			return Transaction{
				ID:            src.ID,
				Type:          string(src.Type),
				Category:      string(src.Category),
				Amount:        money.Format(src.Amount),
				Status:        string(src.Status),
				ReferenceType: src.ReferenceType,
				ReferenceID:   src.ReferenceID,
				Description:   src.Description,
				BalanceAfter:  money.Format(src.BalanceAfter),
				Ctime:         src.Ctime,
			}
		}),
	}
}

type Withdrawal struct {
	ID          int64  `json:"id"`
	SN          string `json:"sn"`
	Uid         int64  `json:"uid"`
	Role        string `json:"role"`
	Amount      string `json:"amount"`
	Status      string `json:"status"`
	Note        string `json:"note,omitempty"`
	ProcessedBy int64  `json:"processedBy,omitempty"`
	Ctime       int64  `json:"ctime"`
	Utime       int64  `json:"utime"`
}

func newWithdrawal(w domain.Withdrawal) Withdrawal {
	return Withdrawal{
		ID:          w.ID,
		SN:          w.SN,
		Uid:         w.Uid,
		Role:        w.Role.String(),
		Amount:      money.Format(w.Amount),
		Status:      w.Status.String(),
		Note:        w.Note,
		ProcessedBy: w.ProcessedBy,
		Ctime:       w.Ctime,
		Utime:       w.Utime,
	}
}

type WithdrawalList struct {
	Total       int64        `json:"total"`
	Withdrawals []Withdrawal `json:"withdrawals"`
}

func newWithdrawalList(total int64, ws []domain.Withdrawal) WithdrawalList {
	return WithdrawalList{
		Total: total,
		Withdrawals: slice.Map(ws, func(idx int, src domain.Withdrawal) Withdrawal {
			return newWithdrawal(src)
		}),
	}
}
