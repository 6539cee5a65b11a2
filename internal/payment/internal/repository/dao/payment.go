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
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

const (
	StatusCreated = "created"
	StatusPaid    = "paid"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	ErrAlreadyPaid    = errors.New("支付记录已经是已支付状态")
)

type PaymentDAO interface {
	Insert(ctx context.Context, pmt Payment) (int64, error)
	FindByGatewayOrderID(ctx context.Context, gatewayOrderID string) (Payment, error)
	FindByOrderID(ctx context.Context, orderID int64) ([]Payment, error)
	// MarkPaid 只会把 created 的记录改成 paid
	MarkPaid(ctx context.Context, gatewayOrderID, gatewayPaymentID string, paidAt int64) error
}

type PaymentGORMDAO struct {
	db *egorm.Component
}

func NewPaymentGORMDAO(db *egorm.Component) PaymentDAO {
	return &PaymentGORMDAO{db: db}
}

func (g *PaymentGORMDAO) Insert(ctx context.Context, pmt Payment) (int64, error) {
	now := time.Now().UnixMilli()
	pmt.Ctime, pmt.Utime = now, now
	err := g.db.WithContext(ctx).Create(&pmt).Error
	return pmt.Id, err
}

func (g *PaymentGORMDAO) FindByGatewayOrderID(ctx context.Context, gatewayOrderID string) (Payment, error) {
	var res Payment
	err := g.db.WithContext(ctx).Where("gateway_order_id = ?", gatewayOrderID).First(&res).Error
	return res, err
}

func (g *PaymentGORMDAO) FindByOrderID(ctx context.Context, orderID int64) ([]Payment, error) {
	var res []Payment
	err := g.db.WithContext(ctx).Where("order_id = ?", orderID).Order("id DESC").Find(&res).Error
	return res, err
}

func (g *PaymentGORMDAO) MarkPaid(ctx context.Context, gatewayOrderID, gatewayPaymentID string, paidAt int64) error {
	res := g.db.WithContext(ctx).Model(&Payment{}).
		Where("gateway_order_id = ? AND status = ?", gatewayOrderID, StatusCreated).
		Updates(map[string]any{
			"gateway_payment_id": gatewayPaymentID,
			"status":             StatusPaid,
			"paid_at":            paidAt,
			"utime":              time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAlreadyPaid
	}
	return nil
}

type Payment struct {
	Id               int64  `gorm:"primaryKey;autoIncrement;comment:支付自增ID"`
	Receipt          string `gorm:"type:varchar(64);not null;uniqueIndex:uniq_payment_receipt;comment:收据号, 雪花ID"`
	OrderId          int64  `gorm:"not null;index:idx_payment_order_id;comment:订单ID"`
	OrderSn          string `gorm:"type:varchar(255);not null;comment:订单序列号"`
	BuyerId          int64  `gorm:"not null;comment:买家ID"`
	Amount           int64  `gorm:"not null;comment:支付金额;单位为分"`
	Currency         string `gorm:"type:varchar(8);not null;comment:币种"`
	GatewayOrderId   string `gorm:"type:varchar(128);not null;uniqueIndex:uniq_payment_gateway_order_id;comment:网关订单号"`
	GatewayPaymentId string `gorm:"type:varchar(128);not null;default:'';comment:网关支付流水号"`
	Status           string `gorm:"type:varchar(16);not null;comment:created/paid"`
	PaidAt           int64  `gorm:"not null;default:0;comment:支付时间"`
	Ctime            int64
	Utime            int64
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Payment{})
}
