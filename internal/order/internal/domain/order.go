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

package domain

type OrderStatus string

const (
	StatusPending        OrderStatus = "pending"
	StatusConfirmed      OrderStatus = "confirmed"
	StatusProcessing     OrderStatus = "processing"
	StatusShipped        OrderStatus = "shipped"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusDelivered      OrderStatus = "delivered"
	StatusCancelled      OrderStatus = "cancelled"
	StatusRefunded       OrderStatus = "refunded"
)

// 订单状态机, key 为当前状态
var transitions = map[OrderStatus][]OrderStatus{
	StatusPending:        {StatusConfirmed, StatusCancelled},
	StatusConfirmed:      {StatusProcessing, StatusCancelled},
	StatusProcessing:     {StatusShipped, StatusCancelled},
	StatusShipped:        {StatusOutForDelivery, StatusDelivered},
	StatusOutForDelivery: {StatusDelivered},
	StatusDelivered:      {StatusRefunded},
}

func (s OrderStatus) String() string {
	return string(s)
}

func (s OrderStatus) Valid() bool {
	_, ok := transitions[s]
	return ok || s == StatusCancelled || s == StatusRefunded
}

// CanTransitTo 判断能否从 s 流转到 to
func (s OrderStatus) CanTransitTo(to OrderStatus) bool {
	for _, next := range transitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// Cancellable 买家可以取消的状态
func (s OrderStatus) Cancellable() bool {
	return s == StatusPending || s == StatusConfirmed
}

type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusCompleted  PaymentStatus = "completed"
	PaymentStatusFailed     PaymentStatus = "failed"
	PaymentStatusRefunded   PaymentStatus = "refunded"
)

func (s PaymentStatus) String() string {
	return string(s)
}

// Order 金额字段单位均为分
type Order struct {
	ID                 int64
	SN                 string
	BuyerID            int64
	AddressID          int64
	Notes              string
	Status             OrderStatus
	PaymentStatus      PaymentStatus
	TotalAmount        int64
	Discount           int64
	ShippingCharges    int64
	TaxAmount          int64
	FinalAmount        int64
	PlatformCommission int64
	SellerEarnings     int64
	GatewayOrderID     string
	GatewayPaymentID   string
	GatewaySignature   string
	DeliveryPartnerID  int64
	Items              []OrderItem
	Ctime              int64
	Utime              int64
}

// CalculateTotals 根据订单项和运费规则计算各项金额
func (o *Order) CalculateTotals(shipping ShippingPolicy) {
	var total int64
	for i := range o.Items {
		o.Items[i].FinalPrice = o.Items[i].Price * o.Items[i].Quantity
		total += o.Items[i].FinalPrice
	}
	o.TotalAmount = total
	o.ShippingCharges = shipping.Charges(total)
	o.FinalAmount = o.TotalAmount - o.Discount + o.ShippingCharges + o.TaxAmount
}

// Payable 扣掉运费后可分给卖家与平台的部分
func (o Order) Payable() int64 {
	return o.FinalAmount - o.ShippingCharges
}

// SellerSubtotals 按卖家汇总商品金额, 返回的卖家顺序与订单项首次出现的顺序一致
func (o Order) SellerSubtotals() ([]int64, []int64) {
	var sellers, subtotals []int64
	idx := make(map[int64]int, len(o.Items))
	for _, item := range o.Items {
		i, ok := idx[item.SellerID]
		if !ok {
			i = len(sellers)
			idx[item.SellerID] = i
			sellers = append(sellers, item.SellerID)
			subtotals = append(subtotals, 0)
		}
		subtotals[i] += item.FinalPrice
	}
	return sellers, subtotals
}

type OrderItem struct {
	ID          int64
	OrderID     int64
	ProductID   int64
	VariantID   int64
	SellerID    int64
	ProductName string
	VariantName string
	Quantity    int64
	// 下单时的单价快照
	Price int64
	// Price * Quantity
	FinalPrice int64
}

// ShippingPolicy 固定运费, 商品总额达到 FreeThreshold 时免运费
type ShippingPolicy struct {
	Flat          int64
	FreeThreshold int64
}

func (p ShippingPolicy) Charges(total int64) int64 {
	if p.FreeThreshold > 0 && total >= p.FreeThreshold {
		return 0
	}
	return p.Flat
}
