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
	"github.com/ecodeclub/marketplace/internal/order"
	"github.com/ecodeclub/marketplace/internal/payment/internal/domain"
	"github.com/ecodeclub/marketplace/internal/pkg/money"
)

type VerifyReq struct {
	GatewayOrderID string `json:"gatewayOrderId" binding:"required"`
	PaymentID      string `json:"paymentId" binding:"required"`
	Signature      string `json:"signature" binding:"required"`
}

type GatewayOrder struct {
	PaymentID      int64  `json:"paymentId"`
	OrderID        int64  `json:"orderId"`
	GatewayOrderID string `json:"gatewayOrderId"`
	Receipt        string `json:"receipt"`
	// AmountMinor 以分为单位, 直接交给网关的前端 SDK
	AmountMinor int64  `json:"amountMinor"`
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
}

func newGatewayOrder(p domain.Payment) GatewayOrder {
	return GatewayOrder{
		PaymentID:      p.ID,
		OrderID:        p.OrderID,
		GatewayOrderID: p.GatewayOrderID,
		Receipt:        p.Receipt,
		AmountMinor:    p.Amount,
		Amount:         money.Format(p.Amount),
		Currency:       p.Currency,
	}
}

type Order struct {
	ID                 int64  `json:"id"`
	SN                 string `json:"sn"`
	Status             string `json:"status"`
	PaymentStatus      string `json:"paymentStatus"`
	FinalAmount        string `json:"finalAmount"`
	PlatformCommission string `json:"platformCommission"`
	SellerEarnings     string `json:"sellerEarnings"`
}

func newOrder(o order.Order) Order {
	return Order{
		ID:                 o.ID,
		SN:                 o.SN,
		Status:             o.Status.String(),
		PaymentStatus:      o.PaymentStatus.String(),
		FinalAmount:        money.Format(o.FinalAmount),
		PlatformCommission: money.Format(o.PlatformCommission),
		SellerEarnings:     money.Format(o.SellerEarnings),
	}
}
