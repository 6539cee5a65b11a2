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
	"fmt"

	"github.com/ecodeclub/marketplace/internal/address/internal/domain"
	"github.com/ecodeclub/marketplace/internal/address/internal/errs"
	"github.com/ecodeclub/marketplace/internal/address/internal/repository"
)

// 每个用户最多保存的地址数量
const maxAddressPerUser = 20

//go:generate mockgen -source=./service.go -package=svcmocks -destination=../../mocks/address.mock.go Service
type Service interface {
	Save(ctx context.Context, a domain.Address) (int64, error)
	Delete(ctx context.Context, uid, id int64) error
	// Detail 只能查看自己的地址
	Detail(ctx context.Context, uid, id int64) (domain.Address, error)
	List(ctx context.Context, uid int64) ([]domain.Address, error)
}

type service struct {
	repo repository.AddressRepository
}

func NewService(repo repository.AddressRepository) Service {
	return &service{repo: repo}
}

func (s *service) Save(ctx context.Context, a domain.Address) (int64, error) {
	if a.Id > 0 {
		affected, err := s.repo.Update(ctx, a)
		if err != nil {
			return 0, err
		}
		if affected == 0 {
			return 0, errs.ErrAddressNotFound
		}
		return a.Id, nil
	}
	cnt, err := s.repo.CountByUid(ctx, a.Uid)
	if err != nil {
		return 0, fmt.Errorf("统计地址数量失败: %w", err)
	}
	if cnt >= maxAddressPerUser {
		return 0, errs.ErrTooManyAddress
	}
	if cnt == 0 {
		a.IsDefault = true
	}
	return s.repo.Create(ctx, a)
}

func (s *service) Delete(ctx context.Context, uid, id int64) error {
	affected, err := s.repo.Delete(ctx, uid, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return errs.ErrAddressNotFound
	}
	return nil
}

func (s *service) Detail(ctx context.Context, uid, id int64) (domain.Address, error) {
	a, err := s.repo.FindById(ctx, uid, id)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domain.Address{}, errs.ErrAddressNotFound
	}
	return a, err
}

func (s *service) List(ctx context.Context, uid int64) ([]domain.Address, error) {
	return s.repo.FindByUid(ctx, uid)
}
