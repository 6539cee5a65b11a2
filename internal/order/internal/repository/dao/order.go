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

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrRecordNotFound     = gorm.ErrRecordNotFound
	ErrAddressNotFound    = errors.New("收货地址不存在")
	ErrCartEmpty          = errors.New("购物车为空")
	ErrProductUnavailable = errors.New("商品不可购买")
	// ErrStatusConflict 守卫条件不满足, 订单状态已被其他请求修改
	ErrStatusConflict   = errors.New("订单状态冲突")
	ErrPaymentCompleted = errors.New("订单已经支付完成")
)

type InsufficientStockError struct {
	ProductName string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("商品 %s 库存不足", e.ProductName)
}

// BuildFunc 在事务内拿到带价格快照的订单项后补全订单, 例如计算金额和生成序列号
type BuildFunc func(o *Order, items []OrderItem) error

type OrderDAO interface {
	// CreateFromCart 在一个事务里完成校验地址, 校验库存, 写订单, 扣库存, 清空购物车
	CreateFromCart(ctx context.Context, uid, addressID int64, build BuildFunc) (Order, []OrderItem, error)
	FindByID(ctx context.Context, id int64) (Order, error)
	FindByGatewayOrderID(ctx context.Context, gatewayOrderID string) (Order, error)
	FindItemsByOrderIDs(ctx context.Context, ids []int64) ([]OrderItem, error)
	ListByBuyer(ctx context.Context, uid int64, offset, limit int) ([]Order, error)
	CountByBuyer(ctx context.Context, uid int64) (int64, error)
	ListBySeller(ctx context.Context, sellerID int64, offset, limit int) ([]Order, error)
	CountBySeller(ctx context.Context, sellerID int64) (int64, error)
	ListExpired(ctx context.Context, ctime int64, offset, limit int) ([]Order, error)
	CountExpired(ctx context.Context, ctime int64) (int64, error)
	// ListPaid 按 id 升序返回 utime 在 [start, end) 之间且已经支付的订单
	ListPaid(ctx context.Context, start, end int64, offset, limit int) ([]Order, error)
	// Cancel 状态与支付状态满足条件时取消订单并归还库存, paymentStatuses 为空表示不限制支付状态
	Cancel(ctx context.Context, id int64, statuses, paymentStatuses []string) error
	UpdateStatus(ctx context.Context, id int64, from, to string, extra map[string]any) error
	SetGatewayOrder(ctx context.Context, id, buyerID int64, gatewayOrderID string) error
	CompletePayment(ctx context.Context, o Order) error
	SetDeliveryPartner(ctx context.Context, id, partnerID int64) error
}

type orderDAO struct {
	db *egorm.Component
}

func NewOrderGORMDAO(db *egorm.Component) OrderDAO {
	return &orderDAO{db: db}
}

func (d *orderDAO) CreateFromCart(ctx context.Context, uid, addressID int64, build BuildFunc) (Order, []OrderItem, error) {
	var (
		order Order
		items []OrderItem
	)
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cnt int64
		err := tx.Model(&AddressView{}).Where("id = ? AND uid = ?", addressID, uid).Count(&cnt).Error
		if err != nil {
			return err
		}
		if cnt == 0 {
			return ErrAddressNotFound
		}

		var lines []CartItemView
		if err = tx.Where("uid = ?", uid).Order("id ASC").Find(&lines).Error; err != nil {
			return err
		}
		if len(lines) == 0 {
			return ErrCartEmpty
		}

		items, err = d.snapshotItems(tx, lines)
		if err != nil {
			return err
		}

		now := time.Now().UnixMilli()
		order = Order{
			BuyerID:       uid,
			AddressID:     addressID,
			Status:        StatusPending,
			PaymentStatus: PaymentStatusPending,
			Ctime:         now,
			Utime:         now,
		}
		if err = build(&order, items); err != nil {
			return err
		}
		if err = tx.Create(&order).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.Id
			items[i].Ctime, items[i].Utime = now, now
		}
		if err = tx.Create(&items).Error; err != nil {
			return err
		}
		for _, item := range items {
			if err = d.decreaseStock(tx, item); err != nil {
				return err
			}
		}
		return tx.Where("uid = ?", uid).Delete(&CartItemView{}).Error
	})
	if err != nil {
		return Order{}, nil, err
	}
	return order, items, nil
}

// snapshotItems 读取事务内的商品与规格并加行锁, 以此刻的价格作为订单项的价格
func (d *orderDAO) snapshotItems(tx *gorm.DB, lines []CartItemView) ([]OrderItem, error) {
	productIDs := slice.Map(lines, func(idx int, src CartItemView) int64 {
		return src.ProductID
	})
	var products []ProductView
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id IN ?", productIDs).Order("id ASC").Find(&products).Error
	if err != nil {
		return nil, err
	}
	productMap := slice.ToMap(products, func(element ProductView) int64 {
		return element.Id
	})

	var variantIDs []int64
	for _, line := range lines {
		if line.VariantID > 0 {
			variantIDs = append(variantIDs, line.VariantID)
		}
	}
	variantMap := map[int64]VariantView{}
	if len(variantIDs) > 0 {
		var variants []VariantView
		err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id IN ?", variantIDs).Order("id ASC").Find(&variants).Error
		if err != nil {
			return nil, err
		}
		variantMap = slice.ToMap(variants, func(element VariantView) int64 {
			return element.Id
		})
	}

	items := make([]OrderItem, 0, len(lines))
	for _, line := range lines {
		p, ok := productMap[line.ProductID]
		if !ok || p.Status != productStatusActive {
			return nil, ErrProductUnavailable
		}
		item := OrderItem{
			ProductID:   p.Id,
			SellerID:    p.SellerID,
			ProductName: p.Name,
			Quantity:    line.Quantity,
			Price:       p.Price,
		}
		stock := p.Stock
		if line.VariantID > 0 {
			v, ok := variantMap[line.VariantID]
			if !ok || v.ProductID != p.Id {
				return nil, ErrProductUnavailable
			}
			item.VariantID = v.Id
			item.VariantName = v.Name
			item.Price = v.Price
			stock = v.Stock
		}
		if stock < line.Quantity {
			return nil, &InsufficientStockError{ProductName: p.Name}
		}
		items = append(items, item)
	}
	return items, nil
}

// decreaseStock 带条件的扣减, 保证库存不会小于 0
func (d *orderDAO) decreaseStock(tx *gorm.DB, item OrderItem) error {
	var res *gorm.DB
	if item.VariantID > 0 {
		res = tx.Model(&VariantView{}).
			Where("id = ? AND stock >= ?", item.VariantID, item.Quantity).
			Update("stock", gorm.Expr("stock - ?", item.Quantity))
	} else {
		res = tx.Model(&ProductView{}).
			Where("id = ? AND stock >= ?", item.ProductID, item.Quantity).
			Updates(map[string]any{
				"stock": gorm.Expr("stock - ?", item.Quantity),
				"utime": time.Now().UnixMilli(),
			})
	}
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &InsufficientStockError{ProductName: item.ProductName}
	}
	return nil
}

func (d *orderDAO) restoreStock(tx *gorm.DB, orderID int64) error {
	var items []OrderItem
	if err := tx.Where("order_id = ?", orderID).Find(&items).Error; err != nil {
		return err
	}
	for _, item := range items {
		var err error
		if item.VariantID > 0 {
			err = tx.Model(&VariantView{}).Where("id = ?", item.VariantID).
				Update("stock", gorm.Expr("stock + ?", item.Quantity)).Error
		} else {
			err = tx.Model(&ProductView{}).Where("id = ?", item.ProductID).
				Update("stock", gorm.Expr("stock + ?", item.Quantity)).Error
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (d *orderDAO) FindByID(ctx context.Context, id int64) (Order, error) {
	var res Order
	err := d.db.WithContext(ctx).First(&res, "id = ?", id).Error
	return res, err
}

func (d *orderDAO) FindByGatewayOrderID(ctx context.Context, gatewayOrderID string) (Order, error) {
	var res Order
	err := d.db.WithContext(ctx).First(&res, "gateway_order_id = ?", gatewayOrderID).Error
	return res, err
}

func (d *orderDAO) FindItemsByOrderIDs(ctx context.Context, ids []int64) ([]OrderItem, error) {
	var res []OrderItem
	if len(ids) == 0 {
		return res, nil
	}
	err := d.db.WithContext(ctx).Where("order_id IN ?", ids).Order("id ASC").Find(&res).Error
	return res, err
}

func (d *orderDAO) ListByBuyer(ctx context.Context, uid int64, offset, limit int) ([]Order, error) {
	var res []Order
	err := d.db.WithContext(ctx).Where("buyer_id = ?", uid).
		Order("id DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (d *orderDAO) CountByBuyer(ctx context.Context, uid int64) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Model(&Order{}).Where("buyer_id = ?", uid).Count(&res).Error
	return res, err
}

func (d *orderDAO) sellerOrderIDs(ctx context.Context, sellerID int64) *gorm.DB {
	return d.db.WithContext(ctx).Model(&OrderItem{}).Select("order_id").Where("seller_id = ?", sellerID)
}

func (d *orderDAO) ListBySeller(ctx context.Context, sellerID int64, offset, limit int) ([]Order, error) {
	var res []Order
	err := d.db.WithContext(ctx).Where("id IN (?)", d.sellerOrderIDs(ctx, sellerID)).
		Order("id DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (d *orderDAO) CountBySeller(ctx context.Context, sellerID int64) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Model(&Order{}).
		Where("id IN (?)", d.sellerOrderIDs(ctx, sellerID)).Count(&res).Error
	return res, err
}

func (d *orderDAO) expired(ctx context.Context, ctime int64) *gorm.DB {
	return d.db.WithContext(ctx).Model(&Order{}).
		Where("status = ? AND payment_status = ? AND ctime <= ?", StatusPending, PaymentStatusPending, ctime)
}

func (d *orderDAO) ListExpired(ctx context.Context, ctime int64, offset, limit int) ([]Order, error) {
	var res []Order
	err := d.expired(ctx, ctime).Order("id ASC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (d *orderDAO) CountExpired(ctx context.Context, ctime int64) (int64, error) {
	var res int64
	err := d.expired(ctx, ctime).Count(&res).Error
	return res, err
}

func (d *orderDAO) ListPaid(ctx context.Context, start, end int64, offset, limit int) ([]Order, error) {
	var res []Order
	err := d.db.WithContext(ctx).
		Where("payment_status = ? AND utime >= ? AND utime < ?", PaymentStatusCompleted, start, end).
		Order("id ASC").Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *orderDAO) Cancel(ctx context.Context, id int64, statuses, paymentStatuses []string) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		query := tx.Model(&Order{}).Where("id = ? AND status IN ?", id, statuses)
		if len(paymentStatuses) > 0 {
			query = query.Where("payment_status IN ?", paymentStatuses)
		}
		res := query.Updates(map[string]any{
			"status": StatusCancelled,
			"utime":  time.Now().UnixMilli(),
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrStatusConflict
		}
		return d.restoreStock(tx, id)
	})
}

func (d *orderDAO) UpdateStatus(ctx context.Context, id int64, from, to string, extra map[string]any) error {
	updates := map[string]any{
		"status": to,
		"utime":  time.Now().UnixMilli(),
	}
	for k, v := range extra {
		updates[k] = v
	}
	res := d.db.WithContext(ctx).Model(&Order{}).
		Where("id = ? AND status = ?", id, from).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStatusConflict
	}
	return nil
}

func (d *orderDAO) SetGatewayOrder(ctx context.Context, id, buyerID int64, gatewayOrderID string) error {
	res := d.db.WithContext(ctx).Model(&Order{}).
		Where("id = ? AND buyer_id = ? AND status = ? AND payment_status IN ?",
			id, buyerID, StatusPending, unpaidStatuses).
		Updates(map[string]any{
			"gateway_order_id": gatewayOrderID,
			"payment_status":   PaymentStatusProcessing,
			"utime":            time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStatusConflict
	}
	return nil
}

// CompletePayment 以支付状态做守卫, 并发的两次回调只有一次能更新成功
func (d *orderDAO) CompletePayment(ctx context.Context, o Order) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&Order{}).
			Where("id = ? AND status = ? AND payment_status IN ?", o.Id, StatusPending, unpaidStatuses).
			Updates(map[string]any{
				"status":              StatusConfirmed,
				"payment_status":      PaymentStatusCompleted,
				"gateway_payment_id":  o.GatewayPaymentID,
				"gateway_signature":   o.GatewaySignature,
				"platform_commission": o.PlatformCommission,
				"seller_earnings":     o.SellerEarnings,
				"utime":               time.Now().UnixMilli(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return nil
		}
		var cur Order
		if err := tx.Select("payment_status").First(&cur, "id = ?", o.Id).Error; err != nil {
			return err
		}
		if cur.PaymentStatus == PaymentStatusCompleted {
			return ErrPaymentCompleted
		}
		return ErrStatusConflict
	})
}

func (d *orderDAO) SetDeliveryPartner(ctx context.Context, id, partnerID int64) error {
	res := d.db.WithContext(ctx).Model(&Order{}).
		Where("id = ? AND status NOT IN ?", id, []string{StatusCancelled, StatusRefunded, StatusDelivered}).
		Updates(map[string]any{
			"delivery_partner_id": partnerID,
			"utime":               time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStatusConflict
	}
	return nil
}
