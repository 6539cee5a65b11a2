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

package event

const PaymentEventName = "payment_events"

// PaymentEvent 支付成功之后发出, 只带对账需要的字段
type PaymentEvent struct {
	OrderID            int64  `json:"orderId"`
	OrderSN            string `json:"orderSn"`
	BuyerID            int64  `json:"buyerId"`
	GatewayOrderID     string `json:"gatewayOrderId"`
	GatewayPaymentID   string `json:"gatewayPaymentId"`
	Amount             int64  `json:"amount"`
	PlatformCommission int64  `json:"platformCommission"`
	PaidAt             int64  `json:"paidAt"`
}
