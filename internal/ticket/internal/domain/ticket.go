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
	StatusOpen     Status = "open"
	StatusResolved Status = "resolved"
	StatusClosed   Status = "closed"
)

func (s Status) String() string {
	return string(s)
}

type Category string

const (
	CategoryOrder    Category = "order"
	CategoryPayment  Category = "payment"
	CategoryDelivery Category = "delivery"
	CategoryAccount  Category = "account"
	CategoryOther    Category = "other"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type Ticket struct {
	ID  int64
	SN  string
	Uid int64
	// 0 表示和订单无关
	OrderID     int64
	Subject     string
	Description string
	Category    Category
	Priority    Priority
	Status      Status
	// Resolution 管理员处理说明
	Resolution string
	ResolvedBy int64
	ResolvedAt int64
	ClosedAt   int64
	Ctime      int64
	Utime      int64
}
