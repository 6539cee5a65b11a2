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
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/retry"
	"github.com/ecodeclub/marketplace/internal/order"
	"github.com/ecodeclub/marketplace/internal/pkg/money"
	"github.com/ecodeclub/marketplace/internal/wallet"
	"github.com/gotomicro/ego/core/elog"
)

type Service interface {
	// Reconcile 核对 utime 在 [start, end) 之间完成支付的订单的钱包入账
	// 只报告不一致的订单, 不做任何修正, 返回不一致的订单数
	Reconcile(ctx context.Context, start, end int64, limit int) (int, error)
}

type service struct {
	orderSvc        order.Service
	walletSvc       wallet.Service
	initialInterval time.Duration
	maxInterval     time.Duration
	maxRetries      int32
	l               *elog.Component
}

func NewService(orderSvc order.Service, walletSvc wallet.Service,
	initialInterval time.Duration, maxInterval time.Duration, maxRetries int32) Service {
	return &service{orderSvc: orderSvc,
		walletSvc:       walletSvc,
		initialInterval: initialInterval, maxInterval: maxInterval, maxRetries: maxRetries,
		l: elog.DefaultLogger}
}

// expectedCredit 一笔订单应当产生的钱包入账
type expectedCredit struct {
	uid      int64
	role     wallet.Role
	category wallet.Category
	amount   int64
}

func (s *service) Reconcile(ctx context.Context, start, end int64, limit int) (int, error) {
	if limit <= 0 {
		return 0, fmt.Errorf("分页大小必须大于 0: %d", limit)
	}
	mismatches := 0
	offset := 0
	for {
		orders, err := s.orderSvc.ListPaid(ctx, start, end, offset, limit)
		if err != nil {
			return mismatches, fmt.Errorf("查找已支付订单失败: %w", err)
		}
		for _, o := range orders {
			if !s.check(ctx, o) {
				mismatches++
			}
		}
		if len(orders) < limit {
			return mismatches, nil
		}
		offset += len(orders)
	}
}

// check 返回订单的入账是否与预期一致
func (s *service) check(ctx context.Context, o order.Order) bool {
	ok := true
	for _, c := range s.expected(o) {
		actual, err := s.creditedAmount(ctx, o.ID, c)
		if err != nil {
			s.l.Warn("查询入账金额失败",
				elog.Int64("orderID", o.ID),
				elog.Int64("uid", c.uid),
				elog.FieldErr(err))
			ok = false
			continue
		}
		if actual != c.amount {
			s.l.Warn("订单入账金额不一致, 需要人工对账",
				elog.Int64("orderID", o.ID),
				elog.String("orderSN", o.SN),
				elog.Int64("uid", c.uid),
				elog.String("category", string(c.category)),
				elog.Int64("expected", c.amount),
				elog.Int64("actual", actual))
			ok = false
		}
	}
	return ok
}

func (s *service) expected(o order.Order) []expectedCredit {
	sellers, subtotals := o.SellerSubtotals()
	shares := money.Split(o.SellerEarnings, subtotals)
	res := make([]expectedCredit, 0, len(sellers)+1)
	for i, sellerID := range sellers {
		if shares[i] <= 0 {
			continue
		}
		res = append(res, expectedCredit{
			uid:      sellerID,
			role:     wallet.RoleSeller,
			category: wallet.CategoryOrderEarning,
			amount:   shares[i],
		})
	}
	if o.DeliveryPartnerID > 0 && o.ShippingCharges > 0 {
		res = append(res, expectedCredit{
			uid:      o.DeliveryPartnerID,
			role:     wallet.RoleDeliveryPartner,
			category: wallet.CategoryDeliveryFee,
			amount:   o.ShippingCharges,
		})
	}
	return res
}

func (s *service) creditedAmount(ctx context.Context, orderID int64, c expectedCredit) (int64, error) {
	strategy, err := retry.NewExponentialBackoffRetryStrategy(s.initialInterval, s.maxInterval, s.maxRetries)
	if err != nil {
		return 0, err
	}
	for {
		amount, err := s.walletSvc.CreditedAmount(ctx, c.uid, c.role, c.category, wallet.ReferenceTypeOrder, orderID)
		if err == nil {
			return amount, nil
		}
		d, ok := strategy.Next()
		if !ok {
			return 0, fmt.Errorf("超过最大重试次数: %w", err)
		}
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-time.After(d):
		}
	}
}
