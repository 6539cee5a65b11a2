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
	"testing"

	"github.com/ecodeclub/marketplace/internal/cart/internal/domain"
	"github.com/ecodeclub/marketplace/internal/cart/internal/errs"
	"github.com/ecodeclub/marketplace/internal/cart/internal/repository"
	"github.com/ecodeclub/marketplace/internal/cart/internal/repository/dao"
	"github.com/ecodeclub/marketplace/internal/product"
	productmocks "github.com/ecodeclub/marketplace/internal/product/mocks"
	"github.com/ecodeclub/marketplace/internal/test/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const uid = int64(1)

func pen() product.Product {
	return product.Product{
		ID:       1,
		SellerID: 10,
		Name:     "Pen",
		Price:    10000,
		Stock:    3,
		Status:   product.StatusActive,
		Variants: []product.Variant{{ID: 7, ProductID: 1, Name: "Blue", Price: 12000, Stock: 1}},
	}
}

func newTestService(t *testing.T, mock func(svc *productmocks.MockService)) Service {
	ctrl := gomock.NewController(t)
	productSvc := productmocks.NewMockService(ctrl)
	mock(productSvc)
	db := testdb.NewSQLite(t, dao.InitTables)
	return NewService(repository.NewCartRepository(dao.NewCartGORMDAO(db)), productSvc)
}

func TestService_AddItem(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, func(productSvc *productmocks.MockService) {
		productSvc.EXPECT().Detail(gomock.Any(), int64(1)).Return(pen(), nil).AnyTimes()
		productSvc.EXPECT().FindByIDs(gomock.Any(), gomock.Any()).
			Return([]product.Product{pen()}, nil).AnyTimes()
	})

	require.NoError(t, svc.AddItem(ctx, uid, domain.Item{ProductID: 1, Quantity: 1}))
	// 同一个商品合并数量
	require.NoError(t, svc.AddItem(ctx, uid, domain.Item{ProductID: 1, Quantity: 2}))
	require.NoError(t, svc.AddItem(ctx, uid, domain.Item{ProductID: 1, VariantID: 7, Quantity: 1}))

	c, err := svc.Get(ctx, uid)
	require.NoError(t, err)
	require.Len(t, c.Items, 2)
	assert.Equal(t, int64(3), c.Items[0].Quantity)
	assert.Equal(t, "Pen", c.Items[0].ProductName)
	assert.True(t, c.Items[0].Available)
	assert.Equal(t, "Blue", c.Items[1].VariantName)
	assert.Equal(t, int64(42000), c.Total())

	err = svc.AddItem(ctx, uid, domain.Item{ProductID: 1, Quantity: 1})
	assert.ErrorIs(t, err, errs.ErrInsufficientStock)
	assert.EqualError(t, err, "Insufficient stock for product Pen")

	err = svc.AddItem(ctx, uid, domain.Item{ProductID: 1, VariantID: 7, Quantity: 1})
	assert.EqualError(t, err, "Insufficient stock for product Pen (Blue)")

	err = svc.AddItem(ctx, uid, domain.Item{ProductID: 1, VariantID: 8, Quantity: 1})
	assert.ErrorIs(t, err, errs.ErrProductUnavailable)
}

func TestService_AddItem_Inactive(t *testing.T) {
	svc := newTestService(t, func(productSvc *productmocks.MockService) {
		p := pen()
		p.Status = product.StatusInactive
		productSvc.EXPECT().Detail(gomock.Any(), int64(1)).Return(p, nil)
	})
	err := svc.AddItem(context.Background(), uid, domain.Item{ProductID: 1, Quantity: 1})
	assert.ErrorIs(t, err, errs.ErrProductUnavailable)
	assert.EqualError(t, err, "Product no longer available")
}

func TestService_UpdateAndRemove(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, func(productSvc *productmocks.MockService) {
		productSvc.EXPECT().Detail(gomock.Any(), int64(1)).Return(pen(), nil).AnyTimes()
		productSvc.EXPECT().FindByIDs(gomock.Any(), gomock.Any()).
			Return([]product.Product{pen()}, nil).AnyTimes()
	})
	require.NoError(t, svc.AddItem(ctx, uid, domain.Item{ProductID: 1, Quantity: 1}))
	c, err := svc.Get(ctx, uid)
	require.NoError(t, err)
	itemID := c.Items[0].ID

	require.NoError(t, svc.UpdateQuantity(ctx, uid, itemID, 2))
	assert.ErrorIs(t, svc.UpdateQuantity(ctx, uid, itemID, 4), errs.ErrInsufficientStock)
	// 别人的购物车条目
	assert.ErrorIs(t, svc.UpdateQuantity(ctx, uid+1, itemID, 1), errs.ErrItemNotFound)
	assert.ErrorIs(t, svc.RemoveItem(ctx, uid+1, itemID), errs.ErrItemNotFound)

	c, err = svc.Get(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, int64(2), c.Items[0].Quantity)

	require.NoError(t, svc.RemoveItem(ctx, uid, itemID))
	assert.ErrorIs(t, svc.RemoveItem(ctx, uid, itemID), errs.ErrItemNotFound)

	require.NoError(t, svc.AddItem(ctx, uid, domain.Item{ProductID: 1, Quantity: 1}))
	require.NoError(t, svc.Clear(ctx, uid))
	c, err = svc.Get(ctx, uid)
	require.NoError(t, err)
	assert.Empty(t, c.Items)
}
