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
	"github.com/ecodeclub/marketplace/internal/cart/internal/domain"
	"github.com/ecodeclub/marketplace/internal/cart/internal/repository/dao"
)

var ErrRecordNotFound = dao.ErrRecordNotFound

type CartRepository interface {
	Find(ctx context.Context, uid int64) (domain.Cart, error)
	FindItemByID(ctx context.Context, uid, id int64) (domain.Item, error)
	FindItem(ctx context.Context, uid, productID, variantID int64) (domain.Item, error)
	CountItems(ctx context.Context, uid int64) (int64, error)
	SaveItem(ctx context.Context, uid int64, item domain.Item) (int64, error)
	DeleteItem(ctx context.Context, uid, id int64) (int64, error)
	Clear(ctx context.Context, uid int64) error
}

type cartRepository struct {
	dao dao.CartDAO
}

func NewCartRepository(d dao.CartDAO) CartRepository {
	return &cartRepository{dao: d}
}

func (r *cartRepository) Find(ctx context.Context, uid int64) (domain.Cart, error) {
	items, err := r.dao.FindItems(ctx, uid)
	if err != nil {
		return domain.Cart{}, err
	}
	return domain.Cart{
		Uid: uid,
		Items: slice.Map(items, func(idx int, src dao.CartItem) domain.Item {
			return r.toDomain(src)
		}),
	}, nil
}

func (r *cartRepository) FindItemByID(ctx context.Context, uid, id int64) (domain.Item, error) {
	item, err := r.dao.FindItemByID(ctx, uid, id)
	return r.toDomain(item), err
}

func (r *cartRepository) FindItem(ctx context.Context, uid, productID, variantID int64) (domain.Item, error) {
	item, err := r.dao.FindItem(ctx, uid, productID, variantID)
	return r.toDomain(item), err
}

func (r *cartRepository) CountItems(ctx context.Context, uid int64) (int64, error) {
	return r.dao.CountItems(ctx, uid)
}

func (r *cartRepository) SaveItem(ctx context.Context, uid int64, item domain.Item) (int64, error) {
	return r.dao.SaveItem(ctx, dao.CartItem{
		Id:        item.ID,
		Uid:       uid,
		ProductID: item.ProductID,
		VariantID: item.VariantID,
		Quantity:  item.Quantity,
		Price:     item.Price,
	})
}

func (r *cartRepository) DeleteItem(ctx context.Context, uid, id int64) (int64, error) {
	return r.dao.DeleteItem(ctx, uid, id)
}

func (r *cartRepository) Clear(ctx context.Context, uid int64) error {
	return r.dao.Clear(ctx, uid)
}

func (r *cartRepository) toDomain(item dao.CartItem) domain.Item {
	return domain.Item{
		ID:        item.Id,
		ProductID: item.ProductID,
		VariantID: item.VariantID,
		Quantity:  item.Quantity,
		Price:     item.Price,
	}
}
