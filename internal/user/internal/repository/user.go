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
	"github.com/ecodeclub/marketplace/internal/user/internal/domain"
	"github.com/ecodeclub/marketplace/internal/user/internal/repository/dao"
)

var (
	ErrRecordNotFound = dao.ErrRecordNotFound
	ErrUserDuplicate  = dao.ErrUserDuplicate
)

type UserRepository interface {
	Create(ctx context.Context, u domain.User) (int64, error)
	FindByPhone(ctx context.Context, phone string) (domain.User, error)
	FindById(ctx context.Context, id int64) (domain.User, error)
	FindByIds(ctx context.Context, ids []int64) ([]domain.User, error)
	UpdateProfile(ctx context.Context, u domain.User) error
}

type userRepository struct {
	dao dao.UserDAO
}

func NewUserRepository(d dao.UserDAO) UserRepository {
	return &userRepository{dao: d}
}

func (r *userRepository) Create(ctx context.Context, u domain.User) (int64, error) {
	return r.dao.Insert(ctx, r.toEntity(u))
}

func (r *userRepository) FindByPhone(ctx context.Context, phone string) (domain.User, error) {
	u, err := r.dao.FindByPhone(ctx, phone)
	return r.toDomain(u), err
}

func (r *userRepository) FindById(ctx context.Context, id int64) (domain.User, error) {
	u, err := r.dao.FindById(ctx, id)
	return r.toDomain(u), err
}

func (r *userRepository) FindByIds(ctx context.Context, ids []int64) ([]domain.User, error) {
	us, err := r.dao.FindByIds(ctx, ids)
	return slice.Map(us, func(idx int, src dao.User) domain.User {
		return r.toDomain(src)
	}), err
}

func (r *userRepository) UpdateProfile(ctx context.Context, u domain.User) error {
	return r.dao.UpdateProfile(ctx, r.toEntity(u))
}

func (r *userRepository) toDomain(u dao.User) domain.User {
	return domain.User{
		Id:     u.Id,
		Phone:  u.Phone,
		Email:  u.Email,
		Name:   u.Name,
		Role:   domain.Role(u.Role),
		Status: domain.UserStatus(u.Status),
		Ctime:  u.Ctime,
	}
}

func (r *userRepository) toEntity(u domain.User) dao.User {
	return dao.User{
		Id:     u.Id,
		Phone:  u.Phone,
		Email:  u.Email,
		Name:   u.Name,
		Role:   u.Role.String(),
		Status: uint8(u.Status),
	}
}
