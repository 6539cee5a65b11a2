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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/marketplace/internal/cart/internal/domain"
	"github.com/ecodeclub/marketplace/internal/cart/internal/errs"
	"github.com/ecodeclub/marketplace/internal/cart/internal/repository"
	"github.com/ecodeclub/marketplace/internal/product"
)

const maxItemsPerCart = 50

//go:generate mockgen -source=./service.go -package=cartmocks -destination=../../mocks/cart.mock.go Service
type Service interface {
	// Get 返回购物车, 并补齐商品名称和当前是否可购买
	Get(ctx context.Context, uid int64) (domain.Cart, error)
	// AddItem 同一个商品规格重复加购时合并数量
	AddItem(ctx context.Context, uid int64, item domain.Item) error
	UpdateQuantity(ctx context.Context, uid, itemID, quantity int64) error
	RemoveItem(ctx context.Context, uid, itemID int64) error
	Clear(ctx context.Context, uid int64) error
}

type service struct {
	repo       repository.CartRepository
	productSvc product.Service
}

func NewService(repo repository.CartRepository, productSvc product.Service) Service {
	return &service{repo: repo, productSvc: productSvc}
}

func (s *service) Get(ctx context.Context, uid int64) (domain.Cart, error) {
	c, err := s.repo.Find(ctx, uid)
	if err != nil || len(c.Items) == 0 {
		return c, err
	}
	ids := slice.Map(c.Items, func(idx int, src domain.Item) int64 {
		return src.ProductID
	})
	ps, err := s.productSvc.FindByIDs(ctx, ids)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("查询购物车商品失败: %w", err)
	}
	pm := slice.ToMap(ps, func(element product.Product) int64 {
		return element.ID
	})
	for i, item := range c.Items {
		p, ok := pm[item.ProductID]
		if !ok {
			continue
		}
		c.Items[i].ProductName = p.Name
		c.Items[i].Available = p.Active()
		c.Items[i].Stock = p.Stock
		if item.VariantID > 0 {
			v, ok := p.Variant(item.VariantID)
			c.Items[i].Available = c.Items[i].Available && ok
			c.Items[i].VariantName = v.Name
			c.Items[i].Stock = v.Stock
		}
	}
	return c, nil
}

func (s *service) AddItem(ctx context.Context, uid int64, item domain.Item) error {
	price, stock, name, err := s.purchasable(ctx, item.ProductID, item.VariantID)
	if err != nil {
		return err
	}
	old, err := s.repo.FindItem(ctx, uid, item.ProductID, item.VariantID)
	switch {
	case err == nil:
		item.ID = old.ID
		item.Quantity += old.Quantity
	case errors.Is(err, repository.ErrRecordNotFound):
		cnt, err := s.repo.CountItems(ctx, uid)
		if err != nil {
			return err
		}
		if cnt >= maxItemsPerCart {
			return errs.ErrTooManyItems
		}
	default:
		return err
	}
	if item.Quantity > stock {
		return errs.ErrInsufficientStock.WithMsgf("Insufficient stock for product %s", name)
	}
	item.Price = price
	_, err = s.repo.SaveItem(ctx, uid, item)
	return err
}

func (s *service) UpdateQuantity(ctx context.Context, uid, itemID, quantity int64) error {
	item, err := s.repo.FindItemByID(ctx, uid, itemID)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return errs.ErrItemNotFound
	}
	if err != nil {
		return err
	}
	price, stock, name, err := s.purchasable(ctx, item.ProductID, item.VariantID)
	if err != nil {
		return err
	}
	if quantity > stock {
		return errs.ErrInsufficientStock.WithMsgf("Insufficient stock for product %s", name)
	}
	item.Quantity = quantity
	item.Price = price
	_, err = s.repo.SaveItem(ctx, uid, item)
	return err
}

// purchasable 返回当前单价 库存与展示名称
func (s *service) purchasable(ctx context.Context, productID, variantID int64) (int64, int64, string, error) {
	p, err := s.productSvc.Detail(ctx, productID)
	if err != nil {
		return 0, 0, "", err
	}
	if !p.Active() {
		return 0, 0, "", errs.ErrProductUnavailable
	}
	if variantID == 0 {
		return p.Price, p.Stock, p.Name, nil
	}
	v, ok := p.Variant(variantID)
	if !ok {
		return 0, 0, "", errs.ErrProductUnavailable
	}
	return v.Price, v.Stock, fmt.Sprintf("%s (%s)", p.Name, v.Name), nil
}

func (s *service) RemoveItem(ctx context.Context, uid, itemID int64) error {
	affected, err := s.repo.DeleteItem(ctx, uid, itemID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return errs.ErrItemNotFound
	}
	return nil
}

func (s *service) Clear(ctx context.Context, uid int64) error {
	return s.repo.Clear(ctx, uid)
}
