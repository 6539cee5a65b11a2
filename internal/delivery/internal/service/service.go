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

	"github.com/ecodeclub/marketplace/internal/delivery/internal/domain"
	"github.com/ecodeclub/marketplace/internal/delivery/internal/errs"
	"github.com/ecodeclub/marketplace/internal/delivery/internal/event"
	"github.com/ecodeclub/marketplace/internal/delivery/internal/repository"
	"github.com/ecodeclub/marketplace/internal/order"
	"github.com/ecodeclub/marketplace/internal/user"
	"github.com/ecodeclub/marketplace/internal/wallet"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=./service.go -package=deliverymocks -destination=../../mocks/delivery.mock.go Service
type Service interface {
	// Assign 管理员为订单指定配送员, 一个订单只能指定一次
	Assign(ctx context.Context, orderID, partnerID int64) (domain.Delivery, error)
	Assignments(ctx context.Context, partnerID int64, status domain.Status, offset, limit int) ([]domain.Delivery, int64, error)
	// UpdateStatus 配送员推进配送状态, 同步推进订单状态并发出配送事件
	UpdateStatus(ctx context.Context, partnerID, id int64, status domain.Status, note string) (domain.Delivery, error)
	Tracking(ctx context.Context, uid, orderID int64) (domain.Tracking, error)
}

type service struct {
	repo      repository.DeliveryRepository
	orderSvc  order.Service
	walletSvc wallet.Service
	userSvc   user.UserService
	producer  event.DeliveryEventProducer
	l         *elog.Component
}

func NewService(repo repository.DeliveryRepository,
	orderSvc order.Service,
	walletSvc wallet.Service,
	userSvc user.UserService,
	producer event.DeliveryEventProducer) Service {
	return &service{
		repo:      repo,
		orderSvc:  orderSvc,
		walletSvc: walletSvc,
		userSvc:   userSvc,
		producer:  producer,
		l:         elog.DefaultLogger,
	}
}

func (s *service) Assign(ctx context.Context, orderID, partnerID int64) (domain.Delivery, error) {
	u, err := s.userSvc.Profile(ctx, partnerID)
	if err != nil {
		return domain.Delivery{}, err
	}
	if u.Role != user.RoleDeliveryPartner || u.Status != user.UserStatusActive {
		return domain.Delivery{}, errs.ErrInvalidPartner
	}
	o, err := s.orderSvc.FindByID(ctx, orderID)
	if err != nil {
		return domain.Delivery{}, err
	}
	if o.DeliveryPartnerID > 0 {
		return domain.Delivery{}, errs.ErrAlreadyAssigned
	}
	switch o.Status {
	case order.StatusCancelled, order.StatusDelivered, order.StatusRefunded:
		return domain.Delivery{}, errs.ErrOrderNotAssignable
	}

	id, err := s.repo.Create(ctx, domain.Delivery{
		OrderID:      o.ID,
		PartnerID:    partnerID,
		Status:       domain.StatusAssigned,
		TrackingNote: "Delivery partner assigned",
	})
	if errors.Is(err, repository.ErrDuplicated) {
		return domain.Delivery{}, errs.ErrAlreadyAssigned
	}
	if err != nil {
		return domain.Delivery{}, err
	}
	if err = s.orderSvc.AssignDeliveryPartner(ctx, o.ID, partnerID); err != nil {
		if err1 := s.repo.Delete(ctx, id); err1 != nil {
			s.l.Error("回滚配送记录失败", elog.Int64("deliveryID", id), elog.FieldErr(err1))
		}
		return domain.Delivery{}, err
	}
	// 分配之后再读支付状态, 支付的一方在支付完成之后读配送员
	// 两边至少有一边能看到对方的修改, 配送费入账是幂等的
	latest, err := s.orderSvc.FindByID(ctx, o.ID)
	if err != nil {
		s.l.Warn("分配配送员后查询订单失败", elog.Int64("orderID", o.ID), elog.FieldErr(err))
		latest = o
	}
	if latest.PaymentStatus == order.PaymentStatusCompleted && latest.ShippingCharges > 0 {
		s.creditDeliveryFee(ctx, latest, partnerID)
	}
	return s.repo.FindByOrderID(ctx, o.ID)
}

func (s *service) creditDeliveryFee(ctx context.Context, o order.Order, partnerID int64) {
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

func (s *service) Assignments(ctx context.Context, partnerID int64, status domain.Status, offset, limit int) ([]domain.Delivery, int64, error) {
	var (
		eg    errgroup.Group
		ds    []domain.Delivery
		total int64
	)
	eg.Go(func() error {
		var err error
		ds, err = s.repo.ListByPartner(ctx, partnerID, status, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountByPartner(ctx, partnerID, status)
		return err
	})
	return ds, total, eg.Wait()
}

func (s *service) UpdateStatus(ctx context.Context, partnerID, id int64, status domain.Status, note string) (domain.Delivery, error) {
	d, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domain.Delivery{}, errs.ErrDeliveryNotFound
	}
	if err != nil {
		return domain.Delivery{}, err
	}
	if d.PartnerID != partnerID {
		return domain.Delivery{}, errs.ErrDeliveryNotFound
	}
	if !d.Status.CanTransitTo(status) {
		return domain.Delivery{}, errs.ErrInvalidStatusTransition
	}
	// 订单已取消时不允许继续配送
	if os, ok := status.OrderStatus(); ok {
		if err = s.orderSvc.SyncDeliveryStatus(ctx, d.OrderID, order.OrderStatus(os)); err != nil {
			return domain.Delivery{}, err
		}
	}
	err = s.repo.UpdateStatus(ctx, d, status, note)
	if errors.Is(err, repository.ErrStatusConflict) {
		return domain.Delivery{}, errs.ErrInvalidStatusTransition
	}
	if err != nil {
		return domain.Delivery{}, err
	}
	d.Status = status
	d.Utime = time.Now().UnixMilli()
	if note != "" {
		d.TrackingNote = note
	}
	s.publish(ctx, d)
	return d, nil
}

// publish 发送失败只记录日志, 配送费可以由人工释放
func (s *service) publish(ctx context.Context, d domain.Delivery) {
	err := s.producer.Produce(ctx, event.DeliveryEvent{
		DeliveryID: d.ID,
		OrderID:    d.OrderID,
		PartnerID:  d.PartnerID,
		Status:     d.Status.String(),
		Utime:      d.Utime,
	})
	if err != nil {
		s.l.Error("发送配送事件失败",
			elog.Int64("deliveryID", d.ID),
			elog.String("status", d.Status.String()),
			elog.FieldErr(err))
	}
}

func (s *service) Tracking(ctx context.Context, uid, orderID int64) (domain.Tracking, error) {
	o, err := s.orderSvc.Detail(ctx, uid, orderID)
	if err != nil {
		return domain.Tracking{}, err
	}
	res := domain.Tracking{
		OrderID:     o.ID,
		OrderSN:     o.SN,
		OrderStatus: o.Status.String(),
	}
	d, err := s.repo.FindByOrderID(ctx, o.ID)
	switch {
	case errors.Is(err, repository.ErrRecordNotFound):
		return res, nil
	case err != nil:
		return domain.Tracking{}, err
	}
	res.Delivery = &d
	return res, nil
}
