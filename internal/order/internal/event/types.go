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

const OrderEventName = "order_events"

const (
	TypeCreated       = "created"
	TypeCancelled     = "cancelled"
	TypeStatusChanged = "status_changed"
)

type OrderEvent struct {
	Type          string `json:"type"`
	OrderID       int64  `json:"orderId"`
	SN            string `json:"sn"`
	BuyerID       int64  `json:"buyerId"`
	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`
	FinalAmount   int64  `json:"finalAmount"`
	Ctime         int64  `json:"ctime"`
}
