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
	"github.com/ecodeclub/marketplace/internal/address/internal/domain"
	"github.com/ecodeclub/marketplace/internal/address/internal/repository/dao"
)

var ErrRecordNotFound = dao.ErrRecordNotFound

type AddressRepository interface {
	Create(ctx context.Context, a domain.Address) (int64, error)
	Update(ctx context.Context, a domain.Address) (int64, error)
	Delete(ctx context.Context, uid, id int64) (int64, error)
	FindById(ctx context.Context, uid, id int64) (domain.Address, error)
	FindByUid(ctx context.Context, uid int64) ([]domain.Address, error)
	CountByUid(ctx context.Context, uid int64) (int64, error)
}

type addressRepository struct {
	dao dao.AddressDAO
}

func NewAddressRepository(d dao.AddressDAO) AddressRepository {
	return &addressRepository{dao: d}
}

func (r *addressRepository) Create(ctx context.Context, a domain.Address) (int64, error) {
	return r.dao.Insert(ctx, r.toEntity(a))
}

func (r *addressRepository) Update(ctx context.Context, a domain.Address) (int64, error) {
	return r.dao.Update(ctx, r.toEntity(a))
}

func (r *addressRepository) Delete(ctx context.Context, uid, id int64) (int64, error) {
	return r.dao.Delete(ctx, uid, id)
}

func (r *addressRepository) FindById(ctx context.Context, uid, id int64) (domain.Address, error) {
	a, err := r.dao.FindById(ctx, uid, id)
	return r.toDomain(a), err
}

func (r *addressRepository) FindByUid(ctx context.Context, uid int64) ([]domain.Address, error) {
	as, err := r.dao.FindByUid(ctx, uid)
	return slice.Map(as, func(idx int, src dao.Address) domain.Address {
		return r.toDomain(src)
	}), err
}

func (r *addressRepository) CountByUid(ctx context.Context, uid int64) (int64, error) {
	return r.dao.CountByUid(ctx, uid)
}

func (r *addressRepository) toEntity(a domain.Address) dao.Address {
	return dao.Address{
		Id:         a.Id,
		Uid:        a.Uid,
		Name:       a.Name,
		Phone:      a.Phone,
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
		IsDefault:  a.IsDefault,
	}
}

func (r *addressRepository) toDomain(a dao.Address) domain.Address {
	return domain.Address{
		Id:         a.Id,
		Uid:        a.Uid,
		Name:       a.Name,
		Phone:      a.Phone,
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
		IsDefault:  a.IsDefault,
		Ctime:      a.Ctime,
	}
}
