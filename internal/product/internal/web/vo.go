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

package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/marketplace/internal/pkg/money"
	"github.com/ecodeclub/marketplace/internal/product/internal/domain"
	"github.com/ecodeclub/marketplace/internal/product/internal/errs"
)

type ListReq struct {
	Offset int `form:"offset" json:"offset" binding:"min=0"`
	Limit  int `form:"limit" json:"limit" binding:"omitempty,min=1,max=100"`
}

func (r ListReq) limit() int {
	if r.Limit == 0 {
		return 20
	}
	return r.Limit
}

type VariantReq struct {
	ID    int64  `json:"id"`
	Name  string `json:"name" binding:"required,max=255"`
	Price string `json:"price" binding:"required"`
	Stock int64  `json:"stock" binding:"min=0"`
}

type SaveReq struct {
	Name        string       `json:"name" binding:"required,max=255"`
	Description string       `json:"description" binding:"max=4096"`
	Price       string       `json:"price" binding:"required"`
	Stock       int64        `json:"stock" binding:"min=0"`
	Variants    []VariantReq `json:"variants" binding:"omitempty,max=50,dive"`
}

func (r SaveReq) toDomain(sellerID, id int64) (domain.Product, error) {
	price, err := money.Parse(r.Price)
	if err != nil {
		return domain.Product{}, errs.ErrInvalidPrice
	}
	vs := make([]domain.Variant, 0, len(r.Variants))
	for _, v := range r.Variants {
		vp, err := money.Parse(v.Price)
		if err != nil {
			return domain.Product{}, errs.ErrInvalidPrice
		}
		vs = append(vs, domain.Variant{ID: v.ID, Name: v.Name, Price: vp, Stock: v.Stock})
	}
	return domain.Product{
		ID:       id,
		SellerID: sellerID,
		Name:     r.Name,
		Desc:     r.Description,
		Price:    price,
		Stock:    r.Stock,
		Variants: vs,
	}, nil
}

type StockReq struct {
	VariantID int64 `json:"variantId" binding:"min=0"`
	Stock     int64 `json:"stock" binding:"min=0"`
}

type StatusReq struct {
	Status string `json:"status" binding:"required,oneof=active inactive"`
}

type Product struct {
	ID          int64     `json:"id"`
	SN          string    `json:"sn"`
	SellerID    int64     `json:"sellerId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       string    `json:"price"`
	Stock       int64     `json:"stock"`
	Status      string    `json:"status"`
	Variants    []Variant `json:"variants"`
}

type Variant struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
	Stock int64  `json:"stock"`
}

type ListResp struct {
	Total    int64     `json:"total"`
	Products []Product `json:"products"`
}

func newProduct(p domain.Product) Product {
	return Product{
		ID:          p.ID,
		SN:          p.SN,
		SellerID:    p.SellerID,
		Name:        p.Name,
		Description: p.Desc,
		Price:       money.Format(p.Price),
		Stock:       p.Stock,
		Status:      p.Status.String(),
		Variants: slice.Map(p.Variants, func(idx int, src domain.Variant) Variant {
			return Variant{
				ID:    src.ID,
				Name:  src.Name,
				Price: money.Format(src.Price),
				Stock: src.Stock,
			}
		}),
	}
}

func newListResp(total int64, ps []domain.Product) ListResp {
	return ListResp{
		Total: total,
		Products: slice.Map(ps, func(idx int, src domain.Product) Product {
			return newProduct(src)
		}),
	}
}
