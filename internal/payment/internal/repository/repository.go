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
	"github.com/ecodeclub/marketplace/internal/payment/internal/domain"
	"github.com/ecodeclub/marketplace/internal/payment/internal/repository/dao"
)

var (
	ErrRecordNotFound = dao.ErrRecordNotFound
	ErrAlreadyPaid    = dao.ErrAlreadyPaid
)

type PaymentRepository interface {
	Create(ctx context.Context, pmt domain.Payment) (domain.Payment, error)
	FindByGatewayOrderID(ctx context.Context, gatewayOrderID string) (domain.Payment, error)
	FindByOrderID(ctx context.Context, orderID int64) ([]domain.Payment, error)
	MarkPaid(ctx context.Context, gatewayOrderID, gatewayPaymentID string, paidAt int64) error
}

type paymentRepository struct {
	dao dao.PaymentDAO
}

func NewPaymentRepository(d dao.PaymentDAO) PaymentRepository {
	return &paymentRepository{dao: d}
}

func (p *paymentRepository) Create(ctx context.Context, pmt domain.Payment) (domain.Payment, error) {
	id, err := p.dao.Insert(ctx, p.toEntity(pmt))
	if err != nil {
		return domain.Payment{}, err
	}
	pmt.ID = id
	return pmt, nil
}

func (p *paymentRepository) FindByGatewayOrderID(ctx context.Context, gatewayOrderID string) (domain.Payment, error) {
	pmt, err := p.dao.FindByGatewayOrderID(ctx, gatewayOrderID)
	return p.toDomain(pmt), err
}

func (p *paymentRepository) FindByOrderID(ctx context.Context, orderID int64) ([]domain.Payment, error) {
	pmts, err := p.dao.FindByOrderID(ctx, orderID)
	return slice.Map(pmts, func(idx int, src dao.Payment) domain.Payment {
		return p.toDomain(src)
	}), err
}

func (p *paymentRepository) MarkPaid(ctx context.Context, gatewayOrderID, gatewayPaymentID string, paidAt int64) error {
	return p.dao.MarkPaid(ctx, gatewayOrderID, gatewayPaymentID, paidAt)
}

func (p *paymentRepository) toEntity(pmt domain.Payment) dao.Payment {
	return dao.Payment{
		Id:               pmt.ID,
		Receipt:          pmt.Receipt,
		OrderId:          pmt.OrderID,
		OrderSn:          pmt.OrderSN,
		BuyerId:          pmt.BuyerID,
		Amount:           pmt.Amount,
		Currency:         pmt.Currency,
		GatewayOrderId:   pmt.GatewayOrderID,
		GatewayPaymentId: pmt.GatewayPaymentID,
		Status:           pmt.Status.String(),
		PaidAt:           pmt.PaidAt,
	}
}

func (p *paymentRepository) toDomain(pmt dao.Payment) domain.Payment {
	return domain.Payment{
		ID:               pmt.Id,
		Receipt:          pmt.Receipt,
		OrderID:          pmt.OrderId,
		OrderSN:          pmt.OrderSn,
		BuyerID:          pmt.BuyerId,
		Amount:           pmt.Amount,
		Currency:         pmt.Currency,
		GatewayOrderID:   pmt.GatewayOrderId,
		GatewayPaymentID: pmt.GatewayPaymentId,
		Status:           domain.PaymentStatus(pmt.Status),
		PaidAt:           pmt.PaidAt,
		Ctime:            pmt.Ctime,
		Utime:            pmt.Utime,
	}
}
