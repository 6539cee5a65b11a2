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
	"github.com/ecodeclub/marketplace/internal/order/internal/domain"
	"github.com/ecodeclub/marketplace/internal/pkg/money"
)

type CreateOrderReq struct {
	AddressID int64  `json:"addressId" binding:"required,gt=0"`
	Notes     string `json:"notes" binding:"max=500"`
}

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

type StatusReq struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed processing shipped out_for_delivery delivered cancelled refunded"`
}

type Order struct {
	ID                 int64       `json:"id"`
	SN                 string      `json:"sn"`
	BuyerID            int64       `json:"buyerId"`
	AddressID          int64       `json:"addressId"`
	Notes              string      `json:"notes,omitempty"`
	Status             string      `json:"status"`
	PaymentStatus      string      `json:"paymentStatus"`
	TotalAmount        string      `json:"totalAmount"`
	Discount           string      `json:"discount"`
	ShippingCharges    string      `json:"shippingCharges"`
	TaxAmount          string      `json:"taxAmount"`
	FinalAmount        string      `json:"finalAmount"`
	PlatformCommission string      `json:"platformCommission"`
	SellerEarnings     string      `json:"sellerEarnings"`
	GatewayOrderID     string      `json:"gatewayOrderId,omitempty"`
	DeliveryPartnerID  int64       `json:"deliveryPartnerId,omitempty"`
	Items              []OrderItem `json:"items"`
	Ctime              int64       `json:"ctime"`
	Utime              int64       `json:"utime"`
}

type OrderItem struct {
	ID          int64  `json:"id"`
	ProductID   int64  `json:"productId"`
	VariantID   int64  `json:"variantId,omitempty"`
	SellerID    int64  `json:"sellerId"`
	ProductName string `json:"productName"`
	VariantName string `json:"variantName,omitempty"`
	Quantity    int64  `json:"quantity"`
	Price       string `json:"price"`
	FinalPrice  string `json:"finalPrice"`
}

func newOrder(o domain.Order) Order {
	return Order{
		ID:                 o.ID,
		SN:                 o.SN,
		BuyerID:            o.BuyerID,
		AddressID:          o.AddressID,
		Notes:              o.Notes,
		Status:             o.Status.String(),
		PaymentStatus:      o.PaymentStatus.String(),
		TotalAmount:        money.Format(o.TotalAmount),
		Discount:           money.Format(o.Discount),
		ShippingCharges:    money.Format(o.ShippingCharges),
		TaxAmount:          money.Format(o.TaxAmount),
		FinalAmount:        money.Format(o.FinalAmount),
		PlatformCommission: money.Format(o.PlatformCommission),
		SellerEarnings:     money.Format(o.SellerEarnings),
		GatewayOrderID:     o.GatewayOrderID,
		DeliveryPartnerID:  o.DeliveryPartnerID,
		Items: slice.Map(o.Items, func(idx int, src domain.OrderItem) OrderItem {
			return OrderItem{
				ID:          src.ID,
				ProductID:   src.ProductID,
				VariantID:   src.VariantID,
				SellerID:    src.SellerID,
				ProductName: src.ProductName,
				VariantName: src.VariantName,
				Quantity:    src.Quantity,
				Price:       money.Format(src.Price),
				FinalPrice:  money.Format(src.FinalPrice),
			}
		}),
		Ctime: o.Ctime,
		Utime: o.Utime,
	}
}

type ListResp struct {
	Total  int64   `json:"total"`
	Orders []Order `json:"orders"`
}

func newListResp(total int64, os []domain.Order) ListResp {
	return ListResp{
		Total: total,
		Orders: slice.Map(os, func(idx int, src domain.Order) Order {
			return newOrder(src)
		}),
	}
}
