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

	"github.com/ecodeclub/marketplace/internal/order"
	"github.com/ecodeclub/marketplace/internal/payment/internal/domain"
	"github.com/ecodeclub/marketplace/internal/payment/internal/errs"
	"github.com/ecodeclub/marketplace/internal/payment/internal/event"
	"github.com/ecodeclub/marketplace/internal/payment/internal/gateway"
	"github.com/ecodeclub/marketplace/internal/payment/internal/repository"
	"github.com/ecodeclub/marketplace/internal/pkg/money"
	"github.com/ecodeclub/marketplace/internal/pkg/snowflake"
	"github.com/ecodeclub/marketplace/internal/wallet"
	"github.com/gotomicro/ego/core/elog"
	"github.com/shopspring/decimal"
)

type Config struct {
	Currency string
	// CommissionRate 平台抽成比例, 0.10 表示 10%
	CommissionRate decimal.Decimal
}

//go:generate mockgen -source=./service.go -package=paymentmocks -destination=../../mocks/payment.mock.go Service
type Service interface {
	// CreateGatewayOrder 为买家待支付的订单在网关下单
	CreateGatewayOrder(ctx context.Context, uid, orderID int64) (domain.Payment, error)
	// VerifyPayment 校验网关签名, 成功后确认订单并给卖家和配送员入账
	VerifyPayment(ctx context.Context, uid int64, v domain.Verification) (order.Order, error)
}

type service struct {
	orderSvc  order.Service
	walletSvc wallet.Service
	client    gateway.Client
	signer    *gateway.Signer
	repo      repository.PaymentRepository
	producer  event.PaymentEventProducer
	idGen     snowflake.Generator
	cfg       Config
	l         *elog.Component
}

func NewService(orderSvc order.Service,
	walletSvc wallet.Service,
	client gateway.Client,
	signer *gateway.Signer,
	repo repository.PaymentRepository,
	producer event.PaymentEventProducer,
	idGen snowflake.Generator,
	cfg Config) Service {
	return &service{
		orderSvc:  orderSvc,
		walletSvc: walletSvc,
		client:    client,
		signer:    signer,
		repo:      repo,
		producer:  producer,
		idGen:     idGen,
		cfg:       cfg,
		l:         elog.DefaultLogger,
	}
}

func (s *service) CreateGatewayOrder(ctx context.Context, uid, orderID int64) (domain.Payment, error) {
	o, err := s.orderSvc.Detail(ctx, uid, orderID)
	if err != nil {
		return domain.Payment{}, err
	}
	if o.PaymentStatus == order.PaymentStatusCompleted {
		return domain.Payment{}, order.ErrPaymentAlreadyCompleted
	}
	if o.Status != order.StatusPending {
		return domain.Payment{}, order.ErrOrderNotPayable
	}
	id, err := s.idGen.Generate(snowflake.BizPaymentReceipt)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("生成收据号失败: %w", err)
	}
	receipt := "rcpt_" + id.String()
	gwo, err := s.client.CreateOrder(ctx, o.FinalAmount, s.cfg.Currency, receipt)
	if err != nil {
		s.l.Error("支付网关下单失败", elog.Int64("orderID", o.ID), elog.FieldErr(err))
		return domain.Payment{}, errs.ErrGatewayFailed
	}
	if err = s.orderSvc.SetGatewayOrder(ctx, uid, o.ID, gwo.ID); err != nil {
		return domain.Payment{}, err
	}
	return s.repo.Create(ctx, domain.Payment{
		Receipt:        receipt,
		OrderID:        o.ID,
		OrderSN:        o.SN,
		BuyerID:        o.BuyerID,
		Amount:         o.FinalAmount,
		Currency:       s.cfg.Currency,
		GatewayOrderID: gwo.ID,
		Status:         domain.PaymentStatusCreated,
	})
}

func (s *service) VerifyPayment(ctx context.Context, uid int64, v domain.Verification) (order.Order, error) {
	if !s.signer.Verify(v.GatewayOrderID, v.PaymentID, v.Signature) {
		s.l.Warn("支付签名校验失败",
			elog.Int64("uid", uid),
			elog.String("gatewayOrderID", v.GatewayOrderID),
			elog.String("paymentID", v.PaymentID))
		return order.Order{}, errs.ErrInvalidSignature
	}
	o, err := s.orderSvc.FindByGatewayOrderID(ctx, v.GatewayOrderID)
	if err != nil {
		return order.Order{}, err
	}
	if o.BuyerID != uid {
		return order.Order{}, order.ErrOrderNotFound
	}
	if o.PaymentStatus == order.PaymentStatusCompleted {
		return order.Order{}, order.ErrPaymentAlreadyCompleted
	}
	payable := o.Payable()
	commission := money.Percent(payable, s.cfg.CommissionRate)
	o.PlatformCommission = commission
	o.SellerEarnings = payable - commission
	o.GatewayPaymentID = v.PaymentID
	o.GatewaySignature = v.Signature
	if err = s.orderSvc.CompletePayment(ctx, o); err != nil {
		return order.Order{}, err
	}
	o.Status = order.StatusConfirmed
	o.PaymentStatus = order.PaymentStatusCompleted

	paidAt := time.Now().UnixMilli()
	err = s.repo.MarkPaid(ctx, v.GatewayOrderID, v.PaymentID, paidAt)
	if err != nil && !errors.Is(err, repository.ErrAlreadyPaid) {
		s.l.Error("更新支付记录失败", elog.Int64("orderID", o.ID), elog.FieldErr(err))
	}

	// 支付完成之后再读配送员, 分配配送员的一方在分配之后读支付状态
	// 两边至少有一边能看到对方的修改, 配送费入账是幂等的
	partnerID := o.DeliveryPartnerID
	latest, err := s.orderSvc.FindByID(ctx, o.ID)
	if err != nil {
		s.l.Warn("支付完成后查询订单失败", elog.Int64("orderID", o.ID), elog.FieldErr(err))
		latest = o
	} else {
		partnerID = latest.DeliveryPartnerID
	}

	// 订单已经确认, 入账失败不回滚订单, 只记录日志等待对账
	s.creditSellers(ctx, o)
	s.creditDeliveryFee(ctx, o, partnerID)
	s.publish(ctx, o, paidAt)
	return latest, nil
}

func (s *service) creditSellers(ctx context.Context, o order.Order) {
	sellers, subtotals := o.SellerSubtotals()
	shares := money.Split(o.SellerEarnings, subtotals)
	for i, sellerID := range sellers {
		if shares[i] <= 0 {
			continue
		}
		_, err := s.walletSvc.Credit(ctx, wallet.Credit{
			Uid:           sellerID,
			Role:          wallet.RoleSeller,
			Amount:        shares[i],
			Category:      wallet.CategoryOrderEarning,
			Status:        wallet.TransactionStatusReceived,
			ReferenceType: wallet.ReferenceTypeOrder,
			ReferenceID:   o.ID,
			Description:   fmt.Sprintf("Earnings from order %s", o.SN),
		})
		if err != nil {
			s.l.Error("卖家入账失败, 需要人工对账",
				elog.Int64("orderID", o.ID),
				elog.Int64("sellerID", sellerID),
				elog.Int64("amount", shares[i]),
				elog.FieldErr(err))
		}
	}
}

func (s *service) creditDeliveryFee(ctx context.Context, o order.Order, partnerID int64) {
	if partnerID <= 0 || o.ShippingCharges <= 0 {
		return
	}
	_, err := s.walletSvc.Credit(ctx, wallet.Credit{
		Uid:           partnerID,
		Role:          wallet.RoleDeliveryPartner,
		Amount:        o.ShippingCharges,
		Category:      wallet.CategoryDeliveryFee,
		Status:        wallet.TransactionStatusPending,
		ReferenceType: wallet.ReferenceTypeOrder,
		ReferenceID:   o.ID,
		Description:   fmt.Sprintf("Delivery fee for order %s", o.SN),
	})
	if err != nil {
		s.l.Error("配送费入账失败, 需要人工对账",
			elog.Int64("orderID", o.ID),
			elog.Int64("partnerID", partnerID),
			elog.Int64("amount", o.ShippingCharges),
			elog.FieldErr(err))
	}
}

func (s *service) publish(ctx context.Context, o order.Order, paidAt int64) {
	err := s.producer.Produce(ctx, event.PaymentEvent{
		OrderID:            o.ID,
		OrderSN:            o.SN,
		BuyerID:            o.BuyerID,
		GatewayOrderID:     o.GatewayOrderID,
		GatewayPaymentID:   o.GatewayPaymentID,
		Amount:             o.FinalAmount,
		PlatformCommission: o.PlatformCommission,
		PaidAt:             paidAt,
	})
	if err != nil {
		s.l.Error("发送支付事件失败", elog.Int64("orderID", o.ID), elog.FieldErr(err))
	}
}
