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

	"github.com/ecodeclub/marketplace/internal/order/internal/domain"
	"github.com/ecodeclub/marketplace/internal/order/internal/errs"
	"github.com/ecodeclub/marketplace/internal/order/internal/event"
	"github.com/ecodeclub/marketplace/internal/order/internal/repository"
	"github.com/ecodeclub/marketplace/internal/order/internal/repository/cache"
	"github.com/ecodeclub/marketplace/internal/pkg/sequencenumber"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=./service.go -package=ordermocks -destination=../../mocks/order.mock.go Service
type Service interface {
	// CreateFromCart 将购物车转换为订单, requestID 非空时同一个用户的同一个 requestID 只会下单一次
	CreateFromCart(ctx context.Context, uid, addressID int64, notes, requestID string) (domain.Order, error)
	// Detail 只能查看自己的订单
	Detail(ctx context.Context, uid, id int64) (domain.Order, error)
	FindByID(ctx context.Context, id int64) (domain.Order, error)
	FindByGatewayOrderID(ctx context.Context, gatewayOrderID string) (domain.Order, error)
	List(ctx context.Context, uid int64, offset, limit int) ([]domain.Order, int64, error)
	SellerList(ctx context.Context, sellerID int64, offset, limit int) ([]domain.Order, int64, error)
	// Cancel 买家取消未支付的订单并归还库存
	Cancel(ctx context.Context, uid, id int64) error
	// UpdateStatus 管理员按状态机修改订单状态
	UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error
	// SyncDeliveryStatus 配送进度只会推动订单状态前进, 落后或相同的状态直接忽略
	SyncDeliveryStatus(ctx context.Context, id int64, status domain.OrderStatus) error
	FindExpiredOrders(ctx context.Context, ctime int64, offset, limit int) ([]domain.Order, int64, error)
	CloseExpiredOrder(ctx context.Context, id int64) error
	// ListPaid 对账使用, 带订单项
	ListPaid(ctx context.Context, start, end int64, offset, limit int) ([]domain.Order, error)
	SetGatewayOrder(ctx context.Context, uid, id int64, gatewayOrderID string) error
	// CompletePayment 支付成功后更新订单, 重复的回调返回 ErrPaymentAlreadyCompleted
	CompletePayment(ctx context.Context, o domain.Order) error
	AssignDeliveryPartner(ctx context.Context, id, partnerID int64) error
}

type service struct {
	repo     repository.OrderRepository
	cache    cache.RequestCache
	producer event.OrderEventProducer
	sn       *sequencenumber.Generator
	shipping domain.ShippingPolicy
	l        *elog.Component
}

func NewService(repo repository.OrderRepository,
	c cache.RequestCache,
	producer event.OrderEventProducer,
	sn *sequencenumber.Generator,
	shipping domain.ShippingPolicy) Service {
	return &service{
		repo:     repo,
		cache:    c,
		producer: producer,
		sn:       sn,
		shipping: shipping,
		l:        elog.DefaultLogger,
	}
}

func (s *service) CreateFromCart(ctx context.Context, uid, addressID int64, notes, requestID string) (domain.Order, error) {
	if requestID != "" {
		ok, err := s.cache.Acquire(ctx, uid, requestID)
		if err != nil {
			// 缓存不可用时放行, 最坏情况是重复下单
			s.l.Warn("下单请求去重失败", elog.Int64("uid", uid), elog.String("requestID", requestID), elog.FieldErr(err))
		} else if !ok {
			return domain.Order{}, errs.ErrDuplicateRequest
		}
	}
	o, err := s.repo.CreateFromCart(ctx, uid, addressID, func(o *domain.Order) error {
		o.SN = s.sn.Generate(sequencenumber.PrefixOrder, uid)
		o.Notes = notes
		o.CalculateTotals(s.shipping)
		return nil
	})
	if err != nil {
		if requestID != "" {
			// 失败的请求允许客户端用同一个 requestID 重试
			if er := s.cache.Release(ctx, uid, requestID); er != nil {
				s.l.Warn("释放下单请求失败", elog.Int64("uid", uid), elog.FieldErr(er))
			}
		}
		return domain.Order{}, s.translateCreateErr(err)
	}
	s.publish(ctx, event.TypeCreated, o)
	return o, nil
}

func (s *service) translateCreateErr(err error) error {
	var stockErr *repository.InsufficientStockError
	switch {
	case errors.Is(err, repository.ErrAddressNotFound):
		return errs.ErrAddressNotFound
	case errors.Is(err, repository.ErrCartEmpty):
		return errs.ErrCartEmpty
	case errors.Is(err, repository.ErrProductUnavailable):
		return errs.ErrProductUnavailable
	case errors.As(err, &stockErr):
		return errs.ErrInsufficientStock.WithMsgf("Insufficient stock for product %s", stockErr.ProductName)
	default:
		return fmt.Errorf("创建订单失败: %w", err)
	}
}

func (s *service) Detail(ctx context.Context, uid, id int64) (domain.Order, error) {
	o, err := s.FindByID(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}
	if o.BuyerID != uid {
		return domain.Order{}, errs.ErrOrderNotFound
	}
	return o, nil
}

func (s *service) FindByID(ctx context.Context, id int64) (domain.Order, error) {
	o, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domain.Order{}, errs.ErrOrderNotFound
	}
	return o, err
}

func (s *service) FindByGatewayOrderID(ctx context.Context, gatewayOrderID string) (domain.Order, error) {
	o, err := s.repo.FindByGatewayOrderID(ctx, gatewayOrderID)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domain.Order{}, errs.ErrOrderNotFound
	}
	return o, err
}

func (s *service) List(ctx context.Context, uid int64, offset, limit int) ([]domain.Order, int64, error) {
	var (
		eg    errgroup.Group
		os    []domain.Order
		total int64
	)
	eg.Go(func() error {
		var err error
		os, err = s.repo.ListByBuyer(ctx, uid, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountByBuyer(ctx, uid)
		return err
	})
	return os, total, eg.Wait()
}

func (s *service) SellerList(ctx context.Context, sellerID int64, offset, limit int) ([]domain.Order, int64, error) {
	var (
		eg    errgroup.Group
		os    []domain.Order
		total int64
	)
	eg.Go(func() error {
		var err error
		os, err = s.repo.ListBySeller(ctx, sellerID, offset, limit)
		if err != nil {
			return err
		}
		// 卖家只能看到自己的订单项
		for i := range os {
			var items []domain.OrderItem
			for _, item := range os[i].Items {
				if item.SellerID == sellerID {
					items = append(items, item)
				}
			}
			os[i].Items = items
		}
		return nil
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountBySeller(ctx, sellerID)
		return err
	})
	return os, total, eg.Wait()
}

func (s *service) Cancel(ctx context.Context, uid, id int64) error {
	o, err := s.Detail(ctx, uid, id)
	if err != nil {
		return err
	}
	if !o.Status.Cancellable() {
		return errs.ErrInvalidStatusTransition
	}
	if o.PaymentStatus == domain.PaymentStatusCompleted {
		return errs.ErrPaidOrderNotCancellable
	}
	err = s.repo.Cancel(ctx, id,
		[]domain.OrderStatus{domain.StatusPending, domain.StatusConfirmed},
		[]domain.PaymentStatus{domain.PaymentStatusPending, domain.PaymentStatusProcessing, domain.PaymentStatusFailed})
	if errors.Is(err, repository.ErrStatusConflict) {
		return errs.ErrInvalidStatusTransition
	}
	if err != nil {
		return err
	}
	o.Status = domain.StatusCancelled
	s.publish(ctx, event.TypeCancelled, o)
	return nil
}

func (s *service) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error {
	o, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !o.Status.CanTransitTo(status) {
		return errs.ErrInvalidStatusTransition
	}
	return s.transit(ctx, o, status)
}

// 配送推进订单时的先后顺序
var deliveryProgress = map[domain.OrderStatus]int{
	domain.StatusPending:        0,
	domain.StatusConfirmed:      1,
	domain.StatusProcessing:     2,
	domain.StatusShipped:        3,
	domain.StatusOutForDelivery: 4,
	domain.StatusDelivered:      5,
}

func (s *service) SyncDeliveryStatus(ctx context.Context, id int64, status domain.OrderStatus) error {
	o, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}
	cur, ok := deliveryProgress[o.Status]
	if !ok {
		// 已取消或已退款
		return errs.ErrInvalidStatusTransition
	}
	next, ok := deliveryProgress[status]
	if !ok {
		return errs.ErrInvalidStatusTransition
	}
	if next <= cur {
		return nil
	}
	return s.transit(ctx, o, status)
}

func (s *service) transit(ctx context.Context, o domain.Order, status domain.OrderStatus) error {
	var err error
	switch status {
	case domain.StatusCancelled:
		err = s.repo.Cancel(ctx, o.ID, []domain.OrderStatus{o.Status}, nil)
	case domain.StatusRefunded:
		var ps domain.PaymentStatus
		if o.PaymentStatus == domain.PaymentStatusCompleted {
			ps = domain.PaymentStatusRefunded
			o.PaymentStatus = ps
		}
		err = s.repo.UpdateStatus(ctx, o.ID, o.Status, status, ps)
	default:
		err = s.repo.UpdateStatus(ctx, o.ID, o.Status, status, "")
	}
	if errors.Is(err, repository.ErrStatusConflict) {
		return errs.ErrInvalidStatusTransition
	}
	if err != nil {
		return err
	}
	typ := event.TypeStatusChanged
	if status == domain.StatusCancelled {
		typ = event.TypeCancelled
	}
	o.Status = status
	s.publish(ctx, typ, o)
	return nil
}

func (s *service) FindExpiredOrders(ctx context.Context, ctime int64, offset, limit int) ([]domain.Order, int64, error) {
	var (
		eg    errgroup.Group
		os    []domain.Order
		total int64
	)
	eg.Go(func() error {
		var err error
		os, err = s.repo.ListExpired(ctx, ctime, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountExpired(ctx, ctime)
		return err
	})
	return os, total, eg.Wait()
}

func (s *service) CloseExpiredOrder(ctx context.Context, id int64) error {
	err := s.repo.Cancel(ctx, id,
		[]domain.OrderStatus{domain.StatusPending},
		[]domain.PaymentStatus{domain.PaymentStatusPending})
	if errors.Is(err, repository.ErrStatusConflict) {
		// 期间已经支付或被取消
		return nil
	}
	if err != nil {
		return err
	}
	s.publish(ctx, event.TypeCancelled, domain.Order{ID: id, Status: domain.StatusCancelled})
	return nil
}

func (s *service) ListPaid(ctx context.Context, start, end int64, offset, limit int) ([]domain.Order, error) {
	return s.repo.ListPaid(ctx, start, end, offset, limit)
}

func (s *service) SetGatewayOrder(ctx context.Context, uid, id int64, gatewayOrderID string) error {
	err := s.repo.SetGatewayOrder(ctx, id, uid, gatewayOrderID)
	if errors.Is(err, repository.ErrStatusConflict) {
		return errs.ErrOrderNotPayable
	}
	return err
}

func (s *service) CompletePayment(ctx context.Context, o domain.Order) error {
	err := s.repo.CompletePayment(ctx, o)
	switch {
	case errors.Is(err, repository.ErrPaymentCompleted):
		return errs.ErrPaymentAlreadyCompleted
	case errors.Is(err, repository.ErrStatusConflict):
		return errs.ErrOrderNotPayable
	case err != nil:
		return err
	}
	o.Status = domain.StatusConfirmed
	o.PaymentStatus = domain.PaymentStatusCompleted
	s.publish(ctx, event.TypeStatusChanged, o)
	return nil
}

func (s *service) AssignDeliveryPartner(ctx context.Context, id, partnerID int64) error {
	err := s.repo.SetDeliveryPartner(ctx, id, partnerID)
	if errors.Is(err, repository.ErrStatusConflict) {
		return errs.ErrInvalidStatusTransition
	}
	return err
}

// publish 事件发送失败只记录日志, 不影响主流程
func (s *service) publish(ctx context.Context, typ string, o domain.Order) {
	err := s.producer.Produce(ctx, event.OrderEvent{
		Type:          typ,
		OrderID:       o.ID,
		SN:            o.SN,
		BuyerID:       o.BuyerID,
		Status:        o.Status.String(),
		PaymentStatus: o.PaymentStatus.String(),
		FinalAmount:   o.FinalAmount,
		Ctime:         o.Ctime,
	})
	if err != nil {
		s.l.Error("发送订单事件失败",
			elog.String("type", typ),
			elog.Int64("orderID", o.ID),
			elog.FieldErr(err))
	}
}
