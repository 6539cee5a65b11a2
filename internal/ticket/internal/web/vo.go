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
	"github.com/ecodeclub/marketplace/internal/ticket/internal/domain"
)

type CreateReq struct {
	OrderID     int64  `json:"orderId"`
	Subject     string `json:"subject" binding:"required,max=255"`
	Description string `json:"description" binding:"required,max=5000"`
	Category    string `json:"category" binding:"omitempty,oneof=order payment delivery account other"`
	Priority    string `json:"priority" binding:"omitempty,oneof=low medium high"`
}

type ListReq struct {
	Status string `form:"status" binding:"omitempty,oneof=open resolved closed"`
	Offset int    `form:"offset" binding:"min=0"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

func (r ListReq) limit() int {
	if r.Limit == 0 {
		return 20
	}
	return r.Limit
}

type ResolveReq struct {
	Resolution string `json:"resolution" binding:"max=5000"`
}

type Ticket struct {
	ID          int64  `json:"id"`
	SN          string `json:"sn"`
	Uid         int64  `json:"uid"`
	OrderID     int64  `json:"orderId,omitempty"`
	Subject     string `json:"subject"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
	Resolution  string `json:"resolution,omitempty"`
	ResolvedAt  int64  `json:"resolvedAt,omitempty"`
	ClosedAt    int64  `json:"closedAt,omitempty"`
	Ctime       int64  `json:"ctime"`
	Utime       int64  `json:"utime"`
}

func newTicket(t domain.Ticket) Ticket {
	return Ticket{
		ID:          t.ID,
		SN:          t.SN,
		Uid:         t.Uid,
		OrderID:     t.OrderID,
		Subject:     t.Subject,
		Description: t.Description,
		Category:    string(t.Category),
		Priority:    string(t.Priority),
		Status:      t.Status.String(),
		Resolution:  t.Resolution,
		ResolvedAt:  t.ResolvedAt,
		ClosedAt:    t.ClosedAt,
		Ctime:       t.Ctime,
		Utime:       t.Utime,
	}
}

type TicketList struct {
	Total   int64    `json:"total"`
	Tickets []Ticket `json:"tickets"`
}

func newTicketList(total int64, ts []domain.Ticket) TicketList {
	return TicketList{
		Total: total,
		Tickets: slice.Map(ts, func(idx int, src domain.Ticket) Ticket {
			return newTicket(src)
		}),
	}
}
