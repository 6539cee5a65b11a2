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
	"github.com/ecodeclub/marketplace/internal/product/internal/domain"
	"github.com/ecodeclub/marketplace/internal/product/internal/repository/dao"
	"github.com/lithammer/shortuuid/v4"
	"golang.org/x/sync/errgroup"
)

var ErrRecordNotFound = dao.ErrRecordNotFound

type ProductRepository interface {
	Create(ctx context.Context, p domain.Product) (int64, error)
	Update(ctx context.Context, p domain.Product) (int64, error)
	UpdateStatus(ctx context.Context, sellerID, id int64, status domain.Status) (int64, error)
	SetStock(ctx context.Context, sellerID, id, variantID, stock int64) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Product, error)
	FindByIDs(ctx context.Context, ids []int64) ([]domain.Product, error)
	// List status 为 0 表示不过滤状态, sellerID 同理
	List(ctx context.Context, sellerID int64, status domain.Status, offset, limit int) (int64, []domain.Product, error)
}

type productRepository struct {
	dao dao.ProductDAO
}

func NewProductRepository(d dao.ProductDAO) ProductRepository {
	return &productRepository{dao: d}
}

func (p *productRepository) Create(ctx context.Context, product domain.Product) (int64, error) {
	entity, variants := p.toEntity(product)
	entity.SN = shortuuid.New()
	return p.dao.Create(ctx, entity, variants)
}

func (p *productRepository) Update(ctx context.Context, product domain.Product) (int64, error) {
	entity, variants := p.toEntity(product)
	return p.dao.Update(ctx, entity, variants)
}

func (p *productRepository) UpdateStatus(ctx context.Context, sellerID, id int64, status domain.Status) (int64, error) {
	return p.dao.UpdateStatus(ctx, sellerID, id, status.ToUint8())
}

func (p *productRepository) SetStock(ctx context.Context, sellerID, id, variantID, stock int64) (int64, error) {
	if variantID > 0 {
		return p.dao.SetVariantStock(ctx, sellerID, id, variantID, stock)
	}
	return p.dao.SetStock(ctx, sellerID, id, stock)
}

func (p *productRepository) FindByID(ctx context.Context, id int64) (domain.Product, error) {
	product, err := p.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}
	vs, err := p.dao.FindVariantsByProductIDs(ctx, []int64{id})
	if err != nil {
		return domain.Product{}, err
	}
	return p.toDomain(product, vs), nil
}

func (p *productRepository) FindByIDs(ctx context.Context, ids []int64) ([]domain.Product, error) {
	var (
		eg       errgroup.Group
		products []dao.Product
		variants []dao.ProductVariant
	)
	eg.Go(func() error {
		var err error
		products, err = p.dao.FindByIDs(ctx, ids)
		return err
	})
	eg.Go(func() error {
		var err error
		variants, err = p.dao.FindVariantsByProductIDs(ctx, ids)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	grouped := dao.GroupVariants(variants)
	return slice.Map(products, func(idx int, src dao.Product) domain.Product {
		return p.toDomain(src, grouped[src.Id])
	}), nil
}

func (p *productRepository) List(ctx context.Context, sellerID int64, status domain.Status, offset, limit int) (int64, []domain.Product, error) {
	q := dao.ListQuery{
		SellerID: sellerID,
		Status:   status.ToUint8(),
		Offset:   offset,
		Limit:    limit,
	}
	var (
		eg       errgroup.Group
		count    int64
		products []dao.Product
	)
	eg.Go(func() error {
		var err error
		products, err = p.dao.List(ctx, q)
		return err
	})
	eg.Go(func() error {
		var err error
		count, err = p.dao.Count(ctx, q)
		return err
	})
	if err := eg.Wait(); err != nil {
		return 0, nil, err
	}
	if len(products) == 0 {
		return count, []domain.Product{}, nil
	}
	variants, err := p.dao.FindVariantsByProductIDs(ctx, dao.ProductIDs(products))
	if err != nil {
		return 0, nil, err
	}
	grouped := dao.GroupVariants(variants)
	return count, slice.Map(products, func(idx int, src dao.Product) domain.Product {
		return p.toDomain(src, grouped[src.Id])
	}), nil
}

func (p *productRepository) toDomain(product dao.Product, vs []dao.ProductVariant) domain.Product {
	return domain.Product{
		ID:       product.Id,
		SN:       product.SN,
		SellerID: product.SellerID,
		Name:     product.Name,
		Desc:     product.Description,
		Price:    product.Price,
		Stock:    product.Stock,
		Status:   domain.Status(product.Status),
		Variants: slice.Map(vs, func(idx int, src dao.ProductVariant) domain.Variant {
			return domain.Variant{
				ID:        src.Id,
				ProductID: src.ProductID,
				Name:      src.Name,
				Price:     src.Price,
				Stock:     src.Stock,
			}
		}),
		Ctime: product.Ctime,
		Utime: product.Utime,
	}
}

func (p *productRepository) toEntity(product domain.Product) (dao.Product, []dao.ProductVariant) {
	entity := dao.Product{
		Id:          product.ID,
		SN:          product.SN,
		SellerID:    product.SellerID,
		Name:        product.Name,
		Description: product.Desc,
		Price:       product.Price,
		Stock:       product.Stock,
		Status:      product.Status.ToUint8(),
	}
	variants := slice.Map(product.Variants, func(idx int, src domain.Variant) dao.ProductVariant {
		return dao.ProductVariant{
			Id:        src.ID,
			ProductID: product.ID,
			Name:      src.Name,
			Price:     src.Price,
			Stock:     src.Stock,
		}
	})
	return entity, variants
}
