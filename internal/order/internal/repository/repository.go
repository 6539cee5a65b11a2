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
	"github.com/ecodeclub/marketplace/internal/order/internal/domain"
	"github.com/ecodeclub/marketplace/internal/order/internal/repository/dao"
)

var (
	ErrRecordNotFound     = dao.ErrRecordNotFound
	ErrAddressNotFound    = dao.ErrAddressNotFound
	ErrCartEmpty          = dao.ErrCartEmpty
	ErrProductUnavailable = dao.ErrProductUnavailable
	ErrStatusConflict     = dao.ErrStatusConflict
	ErrPaymentCompleted   = dao.ErrPaymentCompleted
)

type InsufficientStockError = dao.InsufficientStockError

type OrderRepository interface {
	CreateFromCart(ctx context.Context, uid, addressID int64, build func(o *domain.Order) error) (domain.Order, error)
	FindByID(ctx context.Context, id int64) (domain.Order, error)
	FindByGatewayOrderID(ctx context.Context, gatewayOrderID string) (domain.Order, error)
	ListByBuyer(ctx context.Context, uid int64, offset, limit int) ([]domain.Order, error)
	CountByBuyer(ctx context.Context, uid int64) (int64, error)
	ListBySeller(ctx context.Context, sellerID int64, offset, limit int) ([]domain.Order, error)
	CountBySeller(ctx context.Context, sellerID int64) (int64, error)
	ListExpired(ctx context.Context, ctime int64, offset, limit int) ([]domain.Order, error)
	CountExpired(ctx context.Context, ctime int64) (int64, error)
	ListPaid(ctx context.Context, start, end int64, offset, limit int) ([]domain.Order, error)
	Cancel(ctx context.Context, id int64, statuses []domain.OrderStatus, paymentStatuses []domain.PaymentStatus) error
	// UpdateStatus paymentStatus 为空表示不修改支付状态
	UpdateStatus(ctx context.Context, id int64, from, to domain.OrderStatus, paymentStatus domain.PaymentStatus) error
	SetGatewayOrder(ctx context.Context, id, buyerID int64, gatewayOrderID string) error
	CompletePayment(ctx context.Context, o domain.Order) error
	SetDeliveryPartner(ctx context.Context, id, partnerID int64) error
}

type orderRepository struct {
	dao dao.OrderDAO
}

func NewRepository(d dao.OrderDAO) OrderRepository {
	return &orderRepository{dao: d}
}

func (o *orderRepository) CreateFromCart(ctx context.Context, uid, addressID int64, build func(o *domain.Order) error) (domain.Order, error) {
	order, items, err := o.dao.CreateFromCart(ctx, uid, addressID, func(entity *dao.Order, items []dao.OrderItem) error {
		do := o.toDomain(*entity, items)
		if err := build(&do); err != nil {
			return err
		}
		e, its := o.toEntity(do)
		*entity = e
		copy(items, its)
		return nil
	})
	if err != nil {
		return domain.Order{}, err
	}
	return o.toDomain(order, items), nil
}

func (o *orderRepository) FindByID(ctx context.Context, id int64) (domain.Order, error) {
	order, err := o.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}
	return o.withItems(ctx, order)
}

func (o *orderRepository) FindByGatewayOrderID(ctx context.Context, gatewayOrderID string) (domain.Order, error) {
	order, err := o.dao.FindByGatewayOrderID(ctx, gatewayOrderID)
	if err != nil {
		return domain.Order{}, err
	}
	return o.withItems(ctx, order)
}

func (o *orderRepository) withItems(ctx context.Context, order dao.Order) (domain.Order, error) {
	items, err := o.dao.FindItemsByOrderIDs(ctx, []int64{order.Id})
	if err != nil {
		return domain.Order{}, err
	}
	return o.toDomain(order, items), nil
}

func (o *orderRepository) ListByBuyer(ctx context.Context, uid int64, offset, limit int) ([]domain.Order, error) {
	orders, err := o.dao.ListByBuyer(ctx, uid, offset, limit)
	if err != nil {
		return nil, err
	}
	return o.batchWithItems(ctx, orders)
}

func (o *orderRepository) CountByBuyer(ctx context.Context, uid int64) (int64, error) {
	return o.dao.CountByBuyer(ctx, uid)
}

func (o *orderRepository) ListBySeller(ctx context.Context, sellerID int64, offset, limit int) ([]domain.Order, error) {
	orders, err := o.dao.ListBySeller(ctx, sellerID, offset, limit)
	if err != nil {
		return nil, err
	}
	return o.batchWithItems(ctx, orders)
}

func (o *orderRepository) CountBySeller(ctx context.Context, sellerID int64) (int64, error) {
	return o.dao.CountBySeller(ctx, sellerID)
}

func (o *orderRepository) ListExpired(ctx context.Context, ctime int64, offset, limit int) ([]domain.Order, error) {
	orders, err := o.dao.ListExpired(ctx, ctime, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(orders, func(idx int, src dao.Order) domain.Order {
		return o.toDomain(src, nil)
	}), nil
}

func (o *orderRepository) CountExpired(ctx context.Context, ctime int64) (int64, error) {
	return o.dao.CountExpired(ctx, ctime)
}

func (o *orderRepository) ListPaid(ctx context.Context, start, end int64, offset, limit int) ([]domain.Order, error) {
	orders, err := o.dao.ListPaid(ctx, start, end, offset, limit)
	if err != nil {
		return nil, err
	}
	return o.batchWithItems(ctx, orders)
}

func (o *orderRepository) batchWithItems(ctx context.Context, orders []dao.Order) ([]domain.Order, error) {
	ids := slice.Map(orders, func(idx int, src dao.Order) int64 {
		return src.Id
	})
	items, err := o.dao.FindItemsByOrderIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	grouped := make(map[int64][]dao.OrderItem, len(orders))
	for _, item := range items {
		grouped[item.OrderID] = append(grouped[item.OrderID], item)
	}
	return slice.Map(orders, func(idx int, src dao.Order) domain.Order {
		return o.toDomain(src, grouped[src.Id])
	}), nil
}

func (o *orderRepository) Cancel(ctx context.Context, id int64, statuses []domain.OrderStatus, paymentStatuses []domain.PaymentStatus) error {
	return o.dao.Cancel(ctx, id,
		slice.Map(statuses, func(idx int, src domain.OrderStatus) string {
			return src.String()
		}),
		slice.Map(paymentStatuses, func(idx int, src domain.PaymentStatus) string {
			return src.String()
		}))
}

func (o *orderRepository) UpdateStatus(ctx context.Context, id int64, from, to domain.OrderStatus, paymentStatus domain.PaymentStatus) error {
	var extra map[string]any
	if paymentStatus != "" {
		extra = map[string]any{"payment_status": paymentStatus.String()}
	}
	return o.dao.UpdateStatus(ctx, id, from.String(), to.String(), extra)
}

func (o *orderRepository) SetGatewayOrder(ctx context.Context, id, buyerID int64, gatewayOrderID string) error {
	return o.dao.SetGatewayOrder(ctx, id, buyerID, gatewayOrderID)
}

func (o *orderRepository) CompletePayment(ctx context.Context, order domain.Order) error {
	entity, _ := o.toEntity(order)
	return o.dao.CompletePayment(ctx, entity)
}

func (o *orderRepository) SetDeliveryPartner(ctx context.Context, id, partnerID int64) error {
	return o.dao.SetDeliveryPartner(ctx, id, partnerID)
}

func (o *orderRepository) toDomain(order dao.Order, items []dao.OrderItem) domain.Order {
	return domain.Order{
		ID:                 order.Id,
		SN:                 order.SN,
		BuyerID:            order.BuyerID,
		AddressID:          order.AddressID,
		Notes:              order.Notes,
		Status:             domain.OrderStatus(order.Status),
		PaymentStatus:      domain.PaymentStatus(order.PaymentStatus),
		TotalAmount:        order.TotalAmount,
		Discount:           order.Discount,
		ShippingCharges:    order.ShippingCharges,
		TaxAmount:          order.TaxAmount,
		FinalAmount:        order.FinalAmount,
		PlatformCommission: order.PlatformCommission,
		SellerEarnings:     order.SellerEarnings,
		GatewayOrderID:     order.GatewayOrderID,
		GatewayPaymentID:   order.GatewayPaymentID,
		GatewaySignature:   order.GatewaySignature,
		DeliveryPartnerID:  order.DeliveryPartnerID,
		Items: slice.Map(items, func(idx int, src dao.OrderItem) domain.OrderItem {
			return domain.OrderItem{
				ID:          src.Id,
				OrderID:     src.OrderID,
				ProductID:   src.ProductID,
				VariantID:   src.VariantID,
				SellerID:    src.SellerID,
				ProductName: src.ProductName,
				VariantName: src.VariantName,
				Quantity:    src.Quantity,
				Price:       src.Price,
				FinalPrice:  src.FinalPrice,
			}
		}),
		Ctime: order.Ctime,
		Utime: order.Utime,
	}
}

func (o *orderRepository) toEntity(order domain.Order) (dao.Order, []dao.OrderItem) {
	return dao.Order{
			Id:                 order.ID,
			SN:                 order.SN,
			BuyerID:            order.BuyerID,
			AddressID:          order.AddressID,
			Notes:              order.Notes,
			Status:             order.Status.String(),
			PaymentStatus:      order.PaymentStatus.String(),
			TotalAmount:        order.TotalAmount,
			Discount:           order.Discount,
			ShippingCharges:    order.ShippingCharges,
			TaxAmount:          order.TaxAmount,
			FinalAmount:        order.FinalAmount,
			PlatformCommission: order.PlatformCommission,
			SellerEarnings:     order.SellerEarnings,
			GatewayOrderID:     order.GatewayOrderID,
			GatewayPaymentID:   order.GatewayPaymentID,
			GatewaySignature:   order.GatewaySignature,
			DeliveryPartnerID:  order.DeliveryPartnerID,
			Ctime:              order.Ctime,
			Utime:              order.Utime,
		}, slice.Map(order.Items, func(idx int, src domain.OrderItem) dao.OrderItem {
			return dao.OrderItem{
				Id:          src.ID,
				OrderID:     src.OrderID,
				ProductID:   src.ProductID,
				VariantID:   src.VariantID,
				SellerID:    src.SellerID,
				ProductName: src.ProductName,
				VariantName: src.VariantName,
				Quantity:    src.Quantity,
				Price:       src.Price,
				FinalPrice:  src.FinalPrice,
			}
		})
}
