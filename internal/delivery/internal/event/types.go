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

const DeliveryEventName = "delivery_events"

// DeliveryEvent 配送状态变更后发出, 钱包模块据此释放配送费
type DeliveryEvent struct {
	DeliveryID int64  `json:"deliveryId"`
	OrderID    int64  `json:"orderId"`
	PartnerID  int64  `json:"partnerId"`
	Status     string `json:"status"`
	Utime      int64  `json:"utime"`
}
