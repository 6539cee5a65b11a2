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
	"github.com/ecodeclub/marketplace/internal/delivery/internal/domain"
	"github.com/ecodeclub/marketplace/internal/delivery/internal/repository/dao"
)

var (
	ErrRecordNotFound = dao.ErrRecordNotFound
	ErrDuplicated     = dao.ErrDuplicated
	ErrStatusConflict = dao.ErrStatusConflict
)

type DeliveryRepository interface {
	Create(ctx context.Context, d domain.Delivery) (int64, error)
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (domain.Delivery, error)
	// FindByOrderID 会带上状态变更记录
	FindByOrderID(ctx context.Context, orderID int64) (domain.Delivery, error)
	ListByPartner(ctx context.Context, partnerID int64, status domain.Status, offset, limit int) ([]domain.Delivery, error)
	CountByPartner(ctx context.Context, partnerID int64, status domain.Status) (int64, error)
	UpdateStatus(ctx context.Context, d domain.Delivery, to domain.Status, note string) error
}

type deliveryRepository struct {
	dao dao.DeliveryDAO
}

func NewDeliveryRepository(d dao.DeliveryDAO) DeliveryRepository {
	return &deliveryRepository{dao: d}
}

func (r *deliveryRepository) Create(ctx context.Context, d domain.Delivery) (int64, error) {
	return r.dao.Create(ctx, r.toEntity(d))
}

func (r *deliveryRepository) Delete(ctx context.Context, id int64) error {
	return r.dao.Delete(ctx, id)
}

func (r *deliveryRepository) FindByID(ctx context.Context, id int64) (domain.Delivery, error) {
	d, err := r.dao.FindByID(ctx, id)
	return r.toDomain(d), err
}

func (r *deliveryRepository) FindByOrderID(ctx context.Context, orderID int64) (domain.Delivery, error) {
	d, err := r.dao.FindByOrderID(ctx, orderID)
	if err != nil {
		return domain.Delivery{}, err
	}
	logs, err := r.dao.FindLogs(ctx, d.Id)
	if err != nil {
		return domain.Delivery{}, err
	}
	res := r.toDomain(d)
	res.Logs = slice.Map(logs, func(idx int, src dao.DeliveryLog) domain.Log {
		return domain.Log{
			Status: domain.Status(src.Status),
			Note:   src.Note,
			Ctime:  src.Ctime,
		}
	})
	return res, nil
}

func (r *deliveryRepository) ListByPartner(ctx context.Context, partnerID int64, status domain.Status, offset, limit int) ([]domain.Delivery, error) {
	ds, err := r.dao.ListByPartner(ctx, partnerID, status.String(), offset, limit)
	return slice.Map(ds, func(idx int, src dao.Delivery) domain.Delivery {
		return r.toDomain(src)
	}), err
}

func (r *deliveryRepository) CountByPartner(ctx context.Context, partnerID int64, status domain.Status) (int64, error) {
	return r.dao.CountByPartner(ctx, partnerID, status.String())
}

func (r *deliveryRepository) UpdateStatus(ctx context.Context, d domain.Delivery, to domain.Status, note string) error {
	return r.dao.UpdateStatus(ctx, d.ID, d.PartnerID, d.Status.String(), to.String(), note)
}

func (r *deliveryRepository) toEntity(d domain.Delivery) dao.Delivery {
	return dao.Delivery{
		Id:           d.ID,
		OrderID:      d.OrderID,
		PartnerID:    d.PartnerID,
		Status:       d.Status.String(),
		TrackingNote: d.TrackingNote,
		Ctime:        d.Ctime,
		Utime:        d.Utime,
	}
}

func (r *deliveryRepository) toDomain(d dao.Delivery) domain.Delivery {
	return domain.Delivery{
		ID:           d.Id,
		OrderID:      d.OrderID,
		PartnerID:    d.PartnerID,
		Status:       domain.Status(d.Status),
		TrackingNote: d.TrackingNote,
		Ctime:        d.Ctime,
		Utime:        d.Utime,
	}
}
