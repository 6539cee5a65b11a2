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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/marketplace/internal/ticket/internal/domain"
	"github.com/ecodeclub/marketplace/internal/ticket/internal/repository/dao"
)

var ErrRecordNotFound = dao.ErrRecordNotFound

type TicketRepository interface {
	Create(ctx context.Context, t domain.Ticket) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Ticket, error)
	// List uid 为 0 时查询全部工单
	List(ctx context.Context, uid int64, status domain.Status, offset, limit int) ([]domain.Ticket, error)
	Count(ctx context.Context, uid int64, status domain.Status) (int64, error)
	Resolve(ctx context.Context, id, adminID int64, resolution string) (bool, error)
	Close(ctx context.Context, id int64) (bool, error)
}

type ticketRepository struct {
	dao dao.TicketDAO
}

func NewTicketRepository(d dao.TicketDAO) TicketRepository {
	return &ticketRepository{dao: d}
}

func (r *ticketRepository) Create(ctx context.Context, t domain.Ticket) (int64, error) {
	return r.dao.Insert(ctx, r.toEntity(t))
}

func (r *ticketRepository) FindByID(ctx context.Context, id int64) (domain.Ticket, error) {
	t, err := r.dao.FindByID(ctx, id)
	return r.toDomain(t), err
}

func (r *ticketRepository) List(ctx context.Context, uid int64, status domain.Status, offset, limit int) ([]domain.Ticket, error) {
	ts, err := r.dao.List(ctx, uid, status.String(), offset, limit)
	return slice.Map(ts, func(idx int, src dao.Ticket) domain.Ticket {
		return r.toDomain(src)
	}), err
}

func (r *ticketRepository) Count(ctx context.Context, uid int64, status domain.Status) (int64, error) {
	return r.dao.Count(ctx, uid, status.String())
}

func (r *ticketRepository) Resolve(ctx context.Context, id, adminID int64, resolution string) (bool, error) {
	n, err := r.dao.Resolve(ctx, id, adminID, resolution)
	return n > 0, err
}

func (r *ticketRepository) Close(ctx context.Context, id int64) (bool, error) {
	n, err := r.dao.Close(ctx, id)
	return n > 0, err
}

func (r *ticketRepository) toEntity(t domain.Ticket) dao.Ticket {
	return dao.Ticket{
		Id:          t.ID,
		SN:          t.SN,
		Uid:         t.Uid,
		OrderID:     t.OrderID,
		Subject:     t.Subject,
		Description: t.Description,
		Category:    string(t.Category),
		Priority:    string(t.Priority),
		Status:      t.Status.String(),
		Resolution:  t.Resolution,
		ResolvedBy:  t.ResolvedBy,
		ResolvedAt:  t.ResolvedAt,
		ClosedAt:    t.ClosedAt,
		Ctime:       t.Ctime,
		Utime:       t.Utime,
	}
}

func (r *ticketRepository) toDomain(t dao.Ticket) domain.Ticket {
	return domain.Ticket{
		ID:          t.Id,
		SN:          t.SN,
		Uid:         t.Uid,
		OrderID:     t.OrderID,
		Subject:     t.Subject,
		Description: t.Description,
		Category:    domain.Category(t.Category),
		Priority:    domain.Priority(t.Priority),
		Status:      domain.Status(t.Status),
		Resolution:  t.Resolution,
		ResolvedBy:  t.ResolvedBy,
		ResolvedAt:  t.ResolvedAt,
		ClosedAt:    t.ClosedAt,
		Ctime:       t.Ctime,
		Utime:       t.Utime,
	}
}
