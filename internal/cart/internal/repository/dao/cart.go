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

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type CartDAO interface {
	FindItems(ctx context.Context, uid int64) ([]CartItem, error)
	FindItemByID(ctx context.Context, uid, id int64) (CartItem, error)
	FindItem(ctx context.Context, uid, productID, variantID int64) (CartItem, error)
	CountItems(ctx context.Context, uid int64) (int64, error)
	// SaveItem Id 为 0 时新增, 购物车主记录按需创建
	SaveItem(ctx context.Context, item CartItem) (int64, error)
	DeleteItem(ctx context.Context, uid, id int64) (int64, error)
	Clear(ctx context.Context, uid int64) error
}

type cartDAO struct {
	db *egorm.Component
}

func NewCartGORMDAO(db *egorm.Component) CartDAO {
	return &cartDAO{db: db}
}

func (d *cartDAO) FindItems(ctx context.Context, uid int64) ([]CartItem, error) {
	var res []CartItem
	err := d.db.WithContext(ctx).Where("uid = ?", uid).Order("id ASC").Find(&res).Error
	return res, err
}

func (d *cartDAO) FindItemByID(ctx context.Context, uid, id int64) (CartItem, error) {
	var res CartItem
	err := d.db.WithContext(ctx).First(&res, "id = ? AND uid = ?", id, uid).Error
	return res, err
}

func (d *cartDAO) FindItem(ctx context.Context, uid, productID, variantID int64) (CartItem, error) {
	var res CartItem
	err := d.db.WithContext(ctx).
		First(&res, "uid = ? AND product_id = ? AND variant_id = ?", uid, productID, variantID).Error
	return res, err
}

func (d *cartDAO) CountItems(ctx context.Context, uid int64) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Model(&CartItem{}).Where("uid = ?", uid).Count(&res).Error
	return res, err
}

func (d *cartDAO) SaveItem(ctx context.Context, item CartItem) (int64, error) {
	now := time.Now().UnixMilli()
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var c Cart
		err := tx.Where(Cart{Uid: item.Uid}).
			Attrs(Cart{Ctime: now, Utime: now}).
			FirstOrCreate(&c).Error
		if err != nil {
			return err
		}
		if item.Id > 0 {
			return tx.Model(&CartItem{}).
				Where("id = ? AND uid = ?", item.Id, item.Uid).
				Updates(map[string]any{
					"quantity": item.Quantity,
					"price":    item.Price,
					"utime":    now,
				}).Error
		}
		item.CartID = c.Id
		item.Ctime, item.Utime = now, now
		return tx.Create(&item).Error
	})
	return item.Id, err
}

func (d *cartDAO) DeleteItem(ctx context.Context, uid, id int64) (int64, error) {
	res := d.db.WithContext(ctx).Where("id = ? AND uid = ?", id, uid).Delete(&CartItem{})
	return res.RowsAffected, res.Error
}

func (d *cartDAO) Clear(ctx context.Context, uid int64) error {
	return d.db.WithContext(ctx).Where("uid = ?", uid).Delete(&CartItem{}).Error
}

type Cart struct {
	Id    int64 `gorm:"primaryKey;autoIncrement;comment:购物车自增ID"`
	Uid   int64 `gorm:"not null;uniqueIndex:uniq_cart_uid;comment:用户ID"`
	Ctime int64
	Utime int64
}

type CartItem struct {
	Id        int64 `gorm:"primaryKey;autoIncrement;comment:购物车条目自增ID"`
	CartID    int64 `gorm:"not null;index:idx_cart_item_cart_id;comment:购物车ID"`
	Uid       int64 `gorm:"not null;uniqueIndex:uniq_cart_item_uid_product,priority:1;comment:用户ID"`
	ProductID int64 `gorm:"not null;uniqueIndex:uniq_cart_item_uid_product,priority:2;comment:商品ID"`
	VariantID int64 `gorm:"not null;default:0;uniqueIndex:uniq_cart_item_uid_product,priority:3;comment:规格ID, 0表示无规格"`
	Quantity  int64 `gorm:"not null;comment:数量"`
	Price     int64 `gorm:"not null;comment:加购时的单价快照;单位为分"`
	Ctime     int64
	Utime     int64
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Cart{}, &CartItem{})
}
