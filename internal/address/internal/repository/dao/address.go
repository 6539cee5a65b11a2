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

type AddressDAO interface {
	Insert(ctx context.Context, a Address) (int64, error)
	Update(ctx context.Context, a Address) (int64, error)
	Delete(ctx context.Context, uid, id int64) (int64, error)
	FindById(ctx context.Context, uid, id int64) (Address, error)
	FindByUid(ctx context.Context, uid int64) ([]Address, error)
	CountByUid(ctx context.Context, uid int64) (int64, error)
}

type GORMAddressDAO struct {
	db *egorm.Component
}

func NewGORMAddressDAO(db *egorm.Component) AddressDAO {
	return &GORMAddressDAO{db: db}
}

// Insert 设置为默认地址时, 同一个事务里取消其它默认地址
func (dao *GORMAddressDAO) Insert(ctx context.Context, a Address) (int64, error) {
	now := time.Now().UnixMilli()
	a.Ctime, a.Utime = now, now
	err := dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if a.IsDefault {
			if err := dao.clearDefault(tx, a.Uid, now); err != nil {
				return err
			}
		}
		return tx.Create(&a).Error
	})
	return a.Id, err
}

func (dao *GORMAddressDAO) Update(ctx context.Context, a Address) (int64, error) {
	now := time.Now().UnixMilli()
	var affected int64
	err := dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if a.IsDefault {
			if err := dao.clearDefault(tx, a.Uid, now); err != nil {
				return err
			}
		}
		res := tx.Model(&Address{}).
			Where("id = ? AND uid = ?", a.Id, a.Uid).
			Updates(map[string]any{
				"name":        a.Name,
				"phone":       a.Phone,
				"line1":       a.Line1,
				"line2":       a.Line2,
				"city":        a.City,
				"state":       a.State,
				"postal_code": a.PostalCode,
				"country":     a.Country,
				"is_default":  a.IsDefault,
				"utime":       now,
			})
		affected = res.RowsAffected
		return res.Error
	})
	return affected, err
}

func (dao *GORMAddressDAO) clearDefault(tx *gorm.DB, uid, now int64) error {
	return tx.Model(&Address{}).
		Where("uid = ? AND is_default = ?", uid, true).
		Updates(map[string]any{"is_default": false, "utime": now}).Error
}

func (dao *GORMAddressDAO) Delete(ctx context.Context, uid, id int64) (int64, error) {
	res := dao.db.WithContext(ctx).Where("id = ? AND uid = ?", id, uid).Delete(&Address{})
	return res.RowsAffected, res.Error
}

func (dao *GORMAddressDAO) FindById(ctx context.Context, uid, id int64) (Address, error) {
	var a Address
	err := dao.db.WithContext(ctx).Where("id = ? AND uid = ?", id, uid).First(&a).Error
	return a, err
}

func (dao *GORMAddressDAO) FindByUid(ctx context.Context, uid int64) ([]Address, error) {
	var res []Address
	err := dao.db.WithContext(ctx).Where("uid = ?", uid).
		Order("is_default DESC, id DESC").Find(&res).Error
	return res, err
}

func (dao *GORMAddressDAO) CountByUid(ctx context.Context, uid int64) (int64, error) {
	var cnt int64
	err := dao.db.WithContext(ctx).Model(&Address{}).Where("uid = ?", uid).Count(&cnt).Error
	return cnt, err
}

type Address struct {
	Id         int64  `gorm:"primaryKey;autoIncrement"`
	Uid        int64  `gorm:"not null;index:idx_address_uid"`
	Name       string `gorm:"type:varchar(128);not null"`
	Phone      string `gorm:"type:varchar(32);not null"`
	Line1      string `gorm:"type:varchar(255);not null"`
	Line2      string `gorm:"type:varchar(255);not null;default:''"`
	City       string `gorm:"type:varchar(128);not null"`
	State      string `gorm:"type:varchar(128);not null"`
	PostalCode string `gorm:"type:varchar(32);not null"`
	Country    string `gorm:"type:varchar(64);not null"`
	IsDefault  bool   `gorm:"not null;default:false"`
	Ctime      int64
	Utime      int64
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Address{})
}
