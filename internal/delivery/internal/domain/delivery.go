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

type Status string

const (
	StatusAssigned  Status = "assigned"
	StatusPickedUp  Status = "picked_up"
	StatusInTransit Status = "in_transit"
	StatusDelivered Status = "delivered"
	StatusFailed    Status = "failed"
)

var transitions = map[Status][]Status{
	StatusAssigned:  {StatusPickedUp, StatusFailed},
	StatusPickedUp:  {StatusInTransit, StatusFailed},
	StatusInTransit: {StatusDelivered, StatusFailed},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) Valid() bool {
	_, ok := transitions[s]
	return ok || s == StatusDelivered || s == StatusFailed
}

func (s Status) CanTransitTo(to Status) bool {
	for _, next := range transitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// OrderStatus 配送状态对应的订单状态, failed 不影响订单
func (s Status) OrderStatus() (string, bool) {
	switch s {
	case StatusPickedUp:
		return "shipped", true
	case StatusInTransit:
		return "out_for_delivery", true
	case StatusDelivered:
		return "delivered", true
	default:
		return "", false
	}
}

// Delivery 每个订单最多一条
type Delivery struct {
	ID           int64
	OrderID      int64
	PartnerID    int64
	Status       Status
	TrackingNote string
	Logs         []Log
	Ctime        int64
	Utime        int64
}

// Log 配送状态变更记录
type Log struct {
	Status Status
	Note   string
	Ctime  int64
}

// Tracking 买家看到的物流信息, 尚未分配配送员时 Delivery 为 nil
type Tracking struct {
	OrderID     int64
	OrderSN     string
	OrderStatus string
	Delivery    *Delivery
}
