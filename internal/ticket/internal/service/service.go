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

package service

import (
	"context"
	"errors"

	"github.com/ecodeclub/marketplace/internal/order"
	"github.com/ecodeclub/marketplace/internal/pkg/sequencenumber"
	"github.com/ecodeclub/marketplace/internal/ticket/internal/domain"
	"github.com/ecodeclub/marketplace/internal/ticket/internal/errs"
	"github.com/ecodeclub/marketplace/internal/ticket/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=./service.go -package=ticketmocks -destination=../../mocks/ticket.mock.go Service
type Service interface {
	Create(ctx context.Context, t domain.Ticket) (domain.Ticket, error)
	// Detail 只有提交人和管理员可以查看
	Detail(ctx context.Context, uid, id int64, isAdmin bool) (domain.Ticket, error)
	List(ctx context.Context, uid int64, status domain.Status, offset, limit int) ([]domain.Ticket, int64, error)
	AdminList(ctx context.Context, status domain.Status, offset, limit int) ([]domain.Ticket, int64, error)
	// Resolve 重复处理返回冲突, 不会覆盖第一次的处理时间
	Resolve(ctx context.Context, adminID, id int64, resolution string) (domain.Ticket, error)
	// Close 提交人或管理员关闭工单, 重复关闭返回冲突
	Close(ctx context.Context, uid, id int64, isAdmin bool) (domain.Ticket, error)
}

type service struct {
	repo     repository.TicketRepository
	orderSvc order.Service
	snGen    *sequencenumber.Generator
	l        *elog.Component
}

func NewService(repo repository.TicketRepository, orderSvc order.Service, snGen *sequencenumber.Generator) Service {
	return &service{
		repo:     repo,
		orderSvc: orderSvc,
		snGen:    snGen,
		l:        elog.DefaultLogger,
	}
}

func (s *service) Create(ctx context.Context, t domain.Ticket) (domain.Ticket, error) {
	if t.OrderID > 0 {
		if _, err := s.orderSvc.FindByID(ctx, t.OrderID); err != nil {
			return domain.Ticket{}, err
		}
	}
	if t.Category == "" {
		t.Category = domain.CategoryOther
	}
	if t.Priority == "" {
		t.Priority = domain.PriorityMedium
	}
	t.SN = s.snGen.Generate(sequencenumber.PrefixTicket, t.Uid)
	t.Status = domain.StatusOpen
	id, err := s.repo.Create(ctx, t)
	if err != nil {
		return domain.Ticket{}, err
	}
	s.l.Info("新建工单", elog.Int64("ticketID", id), elog.String("sn", t.SN), elog.Int64("uid", t.Uid))
	return s.find(ctx, id)
}

func (s *service) find(ctx context.Context, id int64) (domain.Ticket, error) {
	t, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domain.Ticket{}, errs.ErrTicketNotFound
	}
	return t, err
}

func (s *service) Detail(ctx context.Context, uid, id int64, isAdmin bool) (domain.Ticket, error) {
	t, err := s.find(ctx, id)
	if err != nil {
		return domain.Ticket{}, err
	}
	if !isAdmin && t.Uid != uid {
		return domain.Ticket{}, errs.ErrTicketNotFound
	}
	return t, nil
}

func (s *service) List(ctx context.Context, uid int64, status domain.Status, offset, limit int) ([]domain.Ticket, int64, error) {
	return s.list(ctx, uid, status, offset, limit)
}

func (s *service) AdminList(ctx context.Context, status domain.Status, offset, limit int) ([]domain.Ticket, int64, error) {
	return s.list(ctx, 0, status, offset, limit)
}

func (s *service) list(ctx context.Context, uid int64, status domain.Status, offset, limit int) ([]domain.Ticket, int64, error) {
	var (
		eg    errgroup.Group
		ts    []domain.Ticket
		total int64
	)
	eg.Go(func() error {
		var err error
		ts, err = s.repo.List(ctx, uid, status, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx, uid, status)
		return err
	})
	return ts, total, eg.Wait()
}

func (s *service) Resolve(ctx context.Context, adminID, id int64, resolution string) (domain.Ticket, error) {
	ok, err := s.repo.Resolve(ctx, id, adminID, resolution)
	if err != nil {
		return domain.Ticket{}, err
	}
	t, err := s.find(ctx, id)
	if err != nil || ok {
		return t, err
	}
	return domain.Ticket{}, conflict(t.Status)
}

func (s *service) Close(ctx context.Context, uid, id int64, isAdmin bool) (domain.Ticket, error) {
	if _, err := s.Detail(ctx, uid, id, isAdmin); err != nil {
		return domain.Ticket{}, err
	}
	ok, err := s.repo.Close(ctx, id)
	if err != nil {
		return domain.Ticket{}, err
	}
	t, err := s.find(ctx, id)
	if err != nil || ok {
		return t, err
	}
	return domain.Ticket{}, conflict(t.Status)
}

// conflict 条件更新没有命中时, 根据当前状态给出原因
func conflict(status domain.Status) error {
	if status == domain.StatusClosed {
		return errs.ErrAlreadyClosed
	}
	return errs.ErrAlreadyResolved
}
