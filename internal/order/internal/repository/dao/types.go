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

import "github.com/ego-component/egorm"

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
	StatusRefunded  = "refunded"

	PaymentStatusPending    = "pending"
	PaymentStatusProcessing = "processing"
	PaymentStatusCompleted  = "completed"
	PaymentStatusFailed     = "failed"
)

// 尚未支付成功的支付状态
var unpaidStatuses = []string{PaymentStatusPending, PaymentStatusProcessing, PaymentStatusFailed}

// 商品表中上架状态的取值
const productStatusActive uint8 = 2

type Order struct {
	Id                 int64  `gorm:"primaryKey;autoIncrement;comment:订单自增ID"`
	SN                 string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_order_sn;comment:订单序列号"`
	BuyerID            int64  `gorm:"not null;index:idx_order_buyer_id;comment:购买者ID"`
	AddressID          int64  `gorm:"not null;comment:收货地址ID"`
	Notes              string `gorm:"type:varchar(512);not null;default:'';comment:买家备注"`
	Status             string `gorm:"type:varchar(32);not null;index:idx_order_status_ctime,priority:1;comment:订单状态"`
	PaymentStatus      string `gorm:"type:varchar(32);not null;comment:支付状态"`
	TotalAmount        int64  `gorm:"not null;comment:商品总额;单位为分, 999表示9.99元"`
	Discount           int64  `gorm:"not null;default:0;comment:优惠金额;单位为分"`
	ShippingCharges    int64  `gorm:"not null;default:0;comment:运费;单位为分"`
	TaxAmount          int64  `gorm:"not null;default:0;comment:税费;单位为分"`
	FinalAmount        int64  `gorm:"not null;comment:实付金额;单位为分"`
	PlatformCommission int64  `gorm:"not null;default:0;comment:平台佣金;单位为分"`
	SellerEarnings     int64  `gorm:"not null;default:0;comment:卖家收入;单位为分"`
	GatewayOrderID     string `gorm:"type:varchar(128);not null;default:'';index:idx_order_gateway_order_id;comment:支付网关订单ID"`
	GatewayPaymentID   string `gorm:"type:varchar(128);not null;default:'';comment:支付网关支付ID"`
	GatewaySignature   string `gorm:"type:varchar(255);not null;default:'';comment:支付回调签名"`
	DeliveryPartnerID  int64  `gorm:"not null;default:0;comment:配送员ID"`
	Ctime              int64  `gorm:"index:idx_order_status_ctime,priority:2"`
	Utime              int64
}

type OrderItem struct {
	Id          int64  `gorm:"primaryKey;autoIncrement;comment:订单项自增ID"`
	OrderID     int64  `gorm:"not null;index:idx_order_item_order_id;comment:订单ID"`
	ProductID   int64  `gorm:"not null;comment:商品ID"`
	VariantID   int64  `gorm:"not null;default:0;comment:规格ID"`
	SellerID    int64  `gorm:"not null;index:idx_order_item_seller_id;comment:卖家ID"`
	ProductName string `gorm:"type:varchar(255);not null;comment:商品名称快照"`
	VariantName string `gorm:"type:varchar(255);not null;default:'';comment:规格名称快照"`
	Quantity    int64  `gorm:"not null;comment:购买数量"`
	Price       int64  `gorm:"not null;comment:下单时的单价;单位为分"`
	FinalPrice  int64  `gorm:"not null;comment:单价乘以数量;单位为分"`
	Ctime       int64
	Utime       int64
}

// 以下是下单事务需要读写的其他模块的表, 只声明用到的列, 表结构由各自模块维护

type ProductView struct {
	Id       int64
	SellerID int64
	Name     string
	Price    int64
	Stock    int64
	Status   uint8
	Utime    int64
}

func (ProductView) TableName() string {
	return "products"
}

type VariantView struct {
	Id        int64
	ProductID int64
	Name      string
	Price     int64
	Stock     int64
}

func (VariantView) TableName() string {
	return "product_variants"
}

type CartItemView struct {
	Id        int64
	Uid       int64
	ProductID int64
	VariantID int64
	Quantity  int64
}

func (CartItemView) TableName() string {
	return "cart_items"
}

type AddressView struct {
	Id  int64
	Uid int64
}

func (AddressView) TableName() string {
	return "addresses"
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Order{}, &OrderItem{})
}
