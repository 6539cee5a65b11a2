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

	"github.com/ecodeclub/marketplace/internal/product/internal/domain"
	"github.com/ecodeclub/marketplace/internal/product/internal/errs"
	"github.com/ecodeclub/marketplace/internal/product/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

//go:generate mockgen -source=./service.go -package=productmocks -destination=../../mocks/product.mock.go Service
type Service interface {
	Create(ctx context.Context, p domain.Product) (int64, error)
	// Update 修改名称 描述 价格与规格, 库存和状态走单独的接口
	Update(ctx context.Context, p domain.Product) error
	// SetStock variantID 为 0 时修改商品本身的库存
	SetStock(ctx context.Context, sellerID, id, variantID, stock int64) error
	UpdateStatus(ctx context.Context, sellerID, id int64, status domain.Status) error
	Detail(ctx context.Context, id int64) (domain.Product, error)
	FindByIDs(ctx context.Context, ids []int64) ([]domain.Product, error)
	// List 只返回上架的商品
	List(ctx context.Context, offset, limit int) (int64, []domain.Product, error)
	SellerList(ctx context.Context, sellerID int64, offset, limit int) (int64, []domain.Product, error)
}

type service struct {
	repo   repository.ProductRepository
	logger *elog.Component
}

func NewService(repo repository.ProductRepository) Service {
	return &service{repo: repo, logger: elog.DefaultLogger}
}

func (s *service) Create(ctx context.Context, p domain.Product) (int64, error) {
	if err := s.checkPrice(p); err != nil {
		return 0, err
	}
	if p.Status == 0 {
		p.Status = domain.StatusActive
	}
	id, err := s.repo.Create(ctx, p)
	if err != nil {
		return 0, err
	}
	s.logger.Info("商品创建成功", elog.Int64("sellerID", p.SellerID), elog.Int64("productID", id))
	return id, nil
}

func (s *service) Update(ctx context.Context, p domain.Product) error {
	if err := s.checkPrice(p); err != nil {
		return err
	}
	affected, err := s.repo.Update(ctx, p)
	if err != nil {
		return err
	}
	if affected == 0 {
		return errs.ErrProductNotFound
	}
	return nil
}

func (s *service) checkPrice(p domain.Product) error {
	if p.Price <= 0 {
		return errs.ErrInvalidPrice
	}
	for _, v := range p.Variants {
		if v.Price <= 0 {
			return errs.ErrInvalidPrice
		}
	}
	return nil
}

func (s *service) SetStock(ctx context.Context, sellerID, id, variantID, stock int64) error {
	affected, err := s.repo.SetStock(ctx, sellerID, id, variantID, stock)
	if err != nil {
		return err
	}
	if affected > 0 {
		return nil
	}
	if variantID > 0 {
		return errs.ErrVariantNotFound
	}
	return errs.ErrProductNotFound
}

func (s *service) UpdateStatus(ctx context.Context, sellerID, id int64, status domain.Status) error {
	affected, err := s.repo.UpdateStatus(ctx, sellerID, id, status)
	if err != nil {
		return err
	}
	if affected == 0 {
		return errs.ErrProductNotFound
	}
	return nil
}

func (s *service) Detail(ctx context.Context, id int64) (domain.Product, error) {
	p, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domain.Product{}, errs.ErrProductNotFound
	}
	return p, err
}

func (s *service) FindByIDs(ctx context.Context, ids []int64) ([]domain.Product, error) {
	if len(ids) == 0 {
		return []domain.Product{}, nil
	}
	return s.repo.FindByIDs(ctx, ids)
}

func (s *service) List(ctx context.Context, offset, limit int) (int64, []domain.Product, error) {
	return s.repo.List(ctx, 0, domain.StatusActive, offset, limit)
}

func (s *service) SellerList(ctx context.Context, sellerID int64, offset, limit int) (int64, []domain.Product, error) {
	return s.repo.List(ctx, sellerID, 0, offset, limit)
}
