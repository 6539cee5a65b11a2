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

	"github.com/ecodeclub/marketplace/internal/user/internal/domain"
	"github.com/ecodeclub/marketplace/internal/user/internal/errs"
	"github.com/ecodeclub/marketplace/internal/user/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

//go:generate mockgen -source=./user.go -package=svcmocks -destination=../../mocks/user.mock.go UserService
type UserService interface {
	Profile(ctx context.Context, uid int64) (domain.User, error)
	UpdateProfile(ctx context.Context, u domain.User) error
	// FindOrCreateByPhone 已注册用户保持原角色, 新用户使用 role
	FindOrCreateByPhone(ctx context.Context, phone string, role domain.Role) (domain.User, error)
	FindByIds(ctx context.Context, ids []int64) ([]domain.User, error)
}

type userService struct {
	repo   repository.UserRepository
	logger *elog.Component
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo, logger: elog.DefaultLogger}
}

func (svc *userService) Profile(ctx context.Context, uid int64) (domain.User, error) {
	u, err := svc.repo.FindById(ctx, uid)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domain.User{}, errs.ErrUserNotFound
	}
	return u, err
}

func (svc *userService) UpdateProfile(ctx context.Context, u domain.User) error {
	return svc.repo.UpdateProfile(ctx, u)
}

func (svc *userService) FindOrCreateByPhone(ctx context.Context, phone string, role domain.Role) (domain.User, error) {
	u, err := svc.repo.FindByPhone(ctx, phone)
	if err == nil {
		if u.Status == domain.UserStatusBlocked {
			return domain.User{}, errs.ErrUserBlocked
		}
		return u, nil
	}
	if !errors.Is(err, repository.ErrRecordNotFound) {
		return domain.User{}, err
	}
	if role == "" {
		role = domain.RoleBuyer
	}
	if !role.SelfService() {
		return domain.User{}, errs.ErrRoleNotAllowed
	}
	u = domain.User{Phone: phone, Role: role, Status: domain.UserStatusActive}
	u.Id, err = svc.repo.Create(ctx, u)
	if errors.Is(err, repository.ErrUserDuplicate) {
		// 并发注册, 另一个请求已经建好了
		return svc.repo.FindByPhone(ctx, phone)
	}
	if err != nil {
		return domain.User{}, err
	}
	svc.logger.Info("新用户注册", elog.Int64("uid", u.Id), elog.String("role", role.String()))
	return u, nil
}

func (svc *userService) FindByIds(ctx context.Context, ids []int64) ([]domain.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return svc.repo.FindByIds(ctx, ids)
}
