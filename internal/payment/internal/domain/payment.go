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

type PaymentStatus string

const (
	// PaymentStatusCreated 已经在支付网关下单, 等待买家付款
	PaymentStatusCreated PaymentStatus = "created"
	PaymentStatusPaid    PaymentStatus = "paid"
)

func (s PaymentStatus) String() string {
	return string(s)
}

// Payment 一次网关下单的记录, 一个订单可以多次下单, 以最后一次为准
type Payment struct {
	ID      int64
	Receipt string
	OrderID int64
	OrderSN string
	BuyerID int64
	// 单位为分
	Amount           int64
	Currency         string
	GatewayOrderID   string
	GatewayPaymentID string
	Status           PaymentStatus
	PaidAt           int64
	Ctime            int64
	Utime            int64
}

// Verification 买家付款之后客户端带回来的网关凭证
type Verification struct {
	GatewayOrderID string
	PaymentID      string
	Signature      string
}
