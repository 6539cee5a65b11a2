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

	"github.com/ecodeclub/marketplace/internal/product/internal/domain"
	"github.com/ecodeclub/marketplace/internal/product/internal/errs"
	"github.com/ecodeclub/marketplace/internal/product/internal/repository"
	"github.com/ecodeclub/marketplace/internal/product/internal/repository/dao"
	"github.com/ecodeclub/marketplace/internal/test/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ServiceTestSuite struct {
	suite.Suite
	svc Service
}

func (s *ServiceTestSuite) SetupTest() {
	db := testdb.NewSQLite(s.T(), dao.InitTables)
	s.svc = NewService(repository.NewProductRepository(dao.NewProductGORMDAO(db)))
}

func (s *ServiceTestSuite) TestCreateAndDetail() {
	t := s.T()
	ctx := context.Background()
	id, err := s.svc.Create(ctx, domain.Product{
		SellerID: 10,
		Name:     "T-Shirt",
		Desc:     "cotton",
		Price:    10000,
		Stock:    5,
		Variants: []domain.Variant{
			{Name: "S", Price: 9900, Stock: 2},
			{Name: "M", Price: 10000, Stock: 3},
		},
	})
	require.NoError(t, err)

	p, err := s.svc.Detail(ctx, id)
	require.NoError(t, err)
	assert.NotEmpty(t, p.SN)
	assert.Equal(t, domain.StatusActive, p.Status)
	assert.Equal(t, int64(10000), p.Price)
	require.Len(t, p.Variants, 2)
	assert.Equal(t, "S", p.Variants[0].Name)
	assert.Equal(t, id, p.Variants[0].ProductID)

	_, err = s.svc.Detail(ctx, id+100)
	assert.ErrorIs(t, err, errs.ErrProductNotFound)

	_, err = s.svc.Create(ctx, domain.Product{SellerID: 10, Name: "free", Price: 0})
	assert.ErrorIs(t, err, errs.ErrInvalidPrice)
}

func (s *ServiceTestSuite) TestSellerOperations() {
	t := s.T()
	ctx := context.Background()
	id, err := s.svc.Create(ctx, domain.Product{
		SellerID: 10,
		Name:     "Pen",
		Price:    500,
		Stock:    1,
		Variants: []domain.Variant{{Name: "Blue", Price: 500, Stock: 1}},
	})
	require.NoError(t, err)
	p, err := s.svc.Detail(ctx, id)
	require.NoError(t, err)
	variantID := p.Variants[0].ID

	// 别的卖家动不了
	assert.ErrorIs(t, s.svc.SetStock(ctx, 11, id, 0, 100), errs.ErrProductNotFound)
	assert.ErrorIs(t, s.svc.SetStock(ctx, 11, id, variantID, 100), errs.ErrVariantNotFound)
	assert.ErrorIs(t, s.svc.UpdateStatus(ctx, 11, id, domain.StatusInactive), errs.ErrProductNotFound)
	assert.ErrorIs(t, s.svc.Update(ctx, domain.Product{ID: id, SellerID: 11, Name: "x", Price: 1}), errs.ErrProductNotFound)

	require.NoError(t, s.svc.SetStock(ctx, 10, id, 0, 7))
	require.NoError(t, s.svc.SetStock(ctx, 10, id, variantID, 9))
	require.NoError(t, s.svc.Update(ctx, domain.Product{
		ID:       id,
		SellerID: 10,
		Name:     "Gel Pen",
		Price:    600,
		Variants: []domain.Variant{
			{ID: variantID, Name: "Navy", Price: 650},
			{Name: "Red", Price: 600, Stock: 4},
		},
	}))
	p, err = s.svc.Detail(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Gel Pen", p.Name)
	assert.Equal(t, int64(7), p.Stock)
	require.Len(t, p.Variants, 2)
	assert.Equal(t, domain.Variant{ID: variantID, ProductID: id, Name: "Navy", Price: 650, Stock: 9}, p.Variants[0])

	require.NoError(t, s.svc.UpdateStatus(ctx, 10, id, domain.StatusInactive))
	total, ps, err := s.svc.List(ctx, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
	assert.Empty(t, ps)

	total, ps, err = s.svc.SellerList(ctx, 10, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, ps, 1)
	assert.Equal(t, domain.StatusInactive, ps[0].Status)
}

func (s *ServiceTestSuite) TestListAndFindByIDs() {
	t := s.T()
	ctx := context.Background()
	var ids []int64
	for i := 0; i < 3; i++ {
		id, err := s.svc.Create(ctx, domain.Product{
			SellerID: int64(i + 1),
			Name:     "Book",
			Price:    1000,
			Stock:    1,
			Variants: []domain.Variant{{Name: "Hardcover", Price: 2000, Stock: 1}},
		})
		require.NoError(t, err)
		ids = append(ids, id)
	}
	total, ps, err := s.svc.List(ctx, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, ps, 2)
	// 新商品在前
	assert.Equal(t, ids[2], ps[0].ID)
	assert.Len(t, ps[0].Variants, 1)

	found, err := s.svc.FindByIDs(ctx, []int64{ids[0], ids[1], 404})
	require.NoError(t, err)
	assert.Len(t, found, 2)

	found, err = s.svc.FindByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestService(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}
