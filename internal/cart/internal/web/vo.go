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
	"github.com/ecodeclub/marketplace/internal/cart/internal/domain"
	"github.com/ecodeclub/marketplace/internal/pkg/money"
)

type AddItemReq struct {
	ProductID int64 `json:"productId" binding:"required,gt=0"`
	VariantID int64 `json:"variantId" binding:"min=0"`
	Quantity  int64 `json:"quantity" binding:"required,min=1,max=999"`
}

type UpdateItemReq struct {
	Quantity int64 `json:"quantity" binding:"required,min=1,max=999"`
}

type Cart struct {
	Items      []Item `json:"items"`
	TotalItems int64  `json:"totalItems"`
	Total      string `json:"total"`
}

type Item struct {
	ID          int64  `json:"id"`
	ProductID   int64  `json:"productId"`
	VariantID   int64  `json:"variantId,omitempty"`
	ProductName string `json:"productName"`
	VariantName string `json:"variantName,omitempty"`
	Quantity    int64  `json:"quantity"`
	Price       string `json:"price"`
	Subtotal    string `json:"subtotal"`
	Available   bool   `json:"available"`
}

func newCart(c domain.Cart) Cart {
	var cnt int64
	for _, item := range c.Items {
		cnt += item.Quantity
	}
	return Cart{
		Items: slice.Map(c.Items, func(idx int, src domain.Item) Item {
			return Item{
				ID:          src.ID,
				ProductID:   src.ProductID,
				VariantID:   src.VariantID,
				ProductName: src.ProductName,
				VariantName: src.VariantName,
				Quantity:    src.Quantity,
				Price:       money.Format(src.Price),
				Subtotal:    money.Format(src.Subtotal()),
				Available:   src.Available,
			}
		}),
		TotalItems: cnt,
		Total:      money.Format(c.Total()),
	}
}
