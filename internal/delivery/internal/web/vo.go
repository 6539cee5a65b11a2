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

package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/marketplace/internal/delivery/internal/domain"
)

type AssignReq struct {
	OrderID   int64 `json:"orderId" binding:"required"`
	PartnerID int64 `json:"partnerId" binding:"required"`
}

type ListReq struct {
	Status string `form:"status" binding:"omitempty,oneof=assigned picked_up in_transit delivered failed"`
	Offset int    `form:"offset" binding:"min=0"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

func (r ListReq) limit() int {
	if r.Limit == 0 {
		return 20
	}
	return r.Limit
}

type StatusReq struct {
	Status string `json:"status" binding:"required,oneof=picked_up in_transit delivered failed"`
	Note   string `json:"note" binding:"max=512"`
}

type Delivery struct {
	ID           int64  `json:"id"`
	OrderID      int64  `json:"orderId"`
	PartnerID    int64  `json:"partnerId"`
	Status       string `json:"status"`
	TrackingNote string `json:"trackingNote"`
	Logs         []Log  `json:"logs,omitempty"`
	Ctime        int64  `json:"ctime"`
	Utime        int64  `json:"utime"`
}

type Log struct {
	Status string `json:"status"`
	Note   string `json:"note"`
	Ctime  int64  `json:"ctime"`
}

func newDelivery(d domain.Delivery) Delivery {
	return Delivery{
		ID:           d.ID,
		OrderID:      d.OrderID,
		PartnerID:    d.PartnerID,
		Status:       d.Status.String(),
		TrackingNote: d.TrackingNote,
		Logs: slice.Map(d.Logs, func(idx int, src domain.Log) Log {
			return Log{Status: src.Status.String(), Note: src.Note, Ctime: src.Ctime}
		}),
		Ctime: d.Ctime,
		Utime: d.Utime,
	}
}

type DeliveryList struct {
	Total      int64      `json:"total"`
	Deliveries []Delivery `json:"deliveries"`
}

type Tracking struct {
	OrderID     int64     `json:"orderId"`
	OrderSN     string    `json:"orderSn"`
	OrderStatus string    `json:"orderStatus"`
	Delivery    *Delivery `json:"delivery"`
}

func newTracking(t domain.Tracking) Tracking {
	res := Tracking{
		OrderID:     t.OrderID,
		OrderSN:     t.OrderSN,
		OrderStatus: t.OrderStatus,
	}
	if t.Delivery != nil {
		d := newDelivery(*t.Delivery)
		res.Delivery = &d
	}
	return res
}
