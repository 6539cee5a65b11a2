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

package dao

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type ProductDAO interface {
	Create(ctx context.Context, p Product, vs []ProductVariant) (int64, error)
	// Update 只更新属于 sellerID 的商品, 返回受影响的行数
	Update(ctx context.Context, p Product, vs []ProductVariant) (int64, error)
	UpdateStatus(ctx context.Context, sellerID, id int64, status uint8) (int64, error)
	SetStock(ctx context.Context, sellerID, id int64, stock int64) (int64, error)
	SetVariantStock(ctx context.Context, sellerID, id, variantID int64, stock int64) (int64, error)
	FindByID(ctx context.Context, id int64) (Product, error)
	FindByIDs(ctx context.Context, ids []int64) ([]Product, error)
	FindVariantsByProductIDs(ctx context.Context, ids []int64) ([]ProductVariant, error)
	List(ctx context.Context, q ListQuery) ([]Product, error)
	Count(ctx context.Context, q ListQuery) (int64, error)
}

// ListQuery 零值字段表示不过滤
type ListQuery struct {
	SellerID int64
	Status   uint8
	Offset   int
	Limit    int
}

type ProductGORMDAO struct {
	db *egorm.Component
}

func NewProductGORMDAO(db *egorm.Component) ProductDAO {
	return &ProductGORMDAO{db: db}
}

func (d *ProductGORMDAO) Create(ctx context.Context, p Product, vs []ProductVariant) (int64, error) {
	now := time.Now().UnixMilli()
	p.Ctime, p.Utime = now, now
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&p).Error; err != nil {
			return err
		}
		if len(vs) == 0 {
			return nil
		}
		for i := range vs {
			vs[i].ProductID = p.Id
			vs[i].Ctime, vs[i].Utime = now, now
		}
		return tx.Create(&vs).Error
	})
	return p.Id, err
}

func (d *ProductGORMDAO) Update(ctx context.Context, p Product, vs []ProductVariant) (int64, error) {
	now := time.Now().UnixMilli()
	var affected int64
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&Product{}).
			Where("id = ? AND seller_id = ?", p.Id, p.SellerID).
			Updates(map[string]any{
				"name":        p.Name,
				"description": p.Description,
				"price":       p.Price,
				"utime":       now,
			})
		if res.Error != nil || res.RowsAffected == 0 {
			affected = res.RowsAffected
			return res.Error
		}
		affected = res.RowsAffected
		for _, v := range vs {
			if v.Id == 0 {
				v.ProductID = p.Id
				v.Ctime, v.Utime = now, now
				if err := tx.Create(&v).Error; err != nil {
					return err
				}
				continue
			}
			err := tx.Model(&ProductVariant{}).
				Where("id = ? AND product_id = ?", v.Id, p.Id).
				Updates(map[string]any{
					"name":  v.Name,
					"price": v.Price,
					"utime": now,
				}).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
	return affected, err
}

func (d *ProductGORMDAO) UpdateStatus(ctx context.Context, sellerID, id int64, status uint8) (int64, error) {
	res := d.db.WithContext(ctx).Model(&Product{}).
		Where("id = ? AND seller_id = ?", id, sellerID).
		Updates(map[string]any{
			"status": status,
			"utime":  time.Now().UnixMilli(),
		})
	return res.RowsAffected, res.Error
}

func (d *ProductGORMDAO) SetStock(ctx context.Context, sellerID, id int64, stock int64) (int64, error) {
	res := d.db.WithContext(ctx).Model(&Product{}).
		Where("id = ? AND seller_id = ?", id, sellerID).
		Updates(map[string]any{
			"stock": stock,
			"utime": time.Now().UnixMilli(),
		})
	return res.RowsAffected, res.Error
}

func (d *ProductGORMDAO) SetVariantStock(ctx context.Context, sellerID, id, variantID int64, stock int64) (int64, error) {
	var affected int64
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cnt int64
		err := tx.Model(&Product{}).Where("id = ? AND seller_id = ?", id, sellerID).Count(&cnt).Error
		if err != nil || cnt == 0 {
			return err
		}
		res := tx.Model(&ProductVariant{}).
			Where("id = ? AND product_id = ?", variantID, id).
			Updates(map[string]any{
				"stock": stock,
				"utime": time.Now().UnixMilli(),
			})
		affected = res.RowsAffected
		return res.Error
	})
	return affected, err
}

func (d *ProductGORMDAO) FindByID(ctx context.Context, id int64) (Product, error) {
	var res Product
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (d *ProductGORMDAO) FindByIDs(ctx context.Context, ids []int64) ([]Product, error) {
	var res []Product
	err := d.db.WithContext(ctx).Where("id IN ?", ids).Find(&res).Error
	return res, err
}

func (d *ProductGORMDAO) FindVariantsByProductIDs(ctx context.Context, ids []int64) ([]ProductVariant, error) {
	var res []ProductVariant
	err := d.db.WithContext(ctx).Where("product_id IN ?", ids).Order("id ASC").Find(&res).Error
	return res, err
}

func (d *ProductGORMDAO) List(ctx context.Context, q ListQuery) ([]Product, error) {
	var res []Product
	err := d.where(ctx, q).Order("id DESC").Offset(q.Offset).Limit(q.Limit).Find(&res).Error
	return res, err
}

func (d *ProductGORMDAO) Count(ctx context.Context, q ListQuery) (int64, error) {
	var res int64
	err := d.where(ctx, q).Model(&Product{}).Count(&res).Error
	return res, err
}

func (d *ProductGORMDAO) where(ctx context.Context, q ListQuery) *gorm.DB {
	db := d.db.WithContext(ctx)
	if q.SellerID > 0 {
		db = db.Where("seller_id = ?", q.SellerID)
	}
	if q.Status > 0 {
		db = db.Where("status = ?", q.Status)
	}
	return db
}

type Product struct {
	Id          int64  `gorm:"primaryKey;autoIncrement;comment:商品自增ID"`
	SN          string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_product_sn;comment:商品序列号"`
	SellerID    int64  `gorm:"not null;index:idx_product_seller_id;comment:卖家ID"`
	Name        string `gorm:"type:varchar(255);not null;comment:商品名称"`
	Description string `gorm:"not null;comment:商品描述"`
	Price       int64  `gorm:"not null;comment:商品单价;单位为分, 999表示9.99元"`
	Stock       int64  `gorm:"not null;default:0;comment:库存数量, 不能小于0"`
	Status      uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:状态 1=下架 2=上架"`
	Ctime       int64
	Utime       int64
}

type ProductVariant struct {
	Id        int64  `gorm:"primaryKey;autoIncrement;comment:规格自增ID"`
	ProductID int64  `gorm:"not null;index:idx_variant_product_id;comment:商品ID"`
	Name      string `gorm:"type:varchar(255);not null;comment:规格名称"`
	Price     int64  `gorm:"not null;comment:规格单价;单位为分"`
	Stock     int64  `gorm:"not null;default:0;comment:库存数量, 不能小于0"`
	Ctime     int64
	Utime     int64
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Product{}, &ProductVariant{})
}

// GroupVariants 按商品分组
func GroupVariants(vs []ProductVariant) map[int64][]ProductVariant {
	res := make(map[int64][]ProductVariant, len(vs))
	for _, v := range vs {
		res[v.ProductID] = append(res[v.ProductID], v)
	}
	return res
}

func ProductIDs(ps []Product) []int64 {
	return slice.Map(ps, func(idx int, src Product) int64 {
		return src.Id
	})
}
