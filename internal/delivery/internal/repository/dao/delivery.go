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
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	ErrDuplicated     = errors.New("该订单已经存在配送记录")
	ErrStatusConflict = errors.New("配送状态已经被修改")
)

type DeliveryDAO interface {
	Create(ctx context.Context, d Delivery) (int64, error)
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (Delivery, error)
	FindByOrderID(ctx context.Context, orderID int64) (Delivery, error)
	ListByPartner(ctx context.Context, partnerID int64, status string, offset, limit int) ([]Delivery, error)
	CountByPartner(ctx context.Context, partnerID int64, status string) (int64, error)
	// UpdateStatus 只有当前状态为 from 时才会更新, 同时追加一条变更记录
	UpdateStatus(ctx context.Context, id, partnerID int64, from, to, note string) error
	FindLogs(ctx context.Context, deliveryID int64) ([]DeliveryLog, error)
}

type deliveryDAO struct {
	db *egorm.Component
}

func NewDeliveryGORMDAO(db *egorm.Component) DeliveryDAO {
	return &deliveryDAO{db: db}
}

func (d *deliveryDAO) Create(ctx context.Context, de Delivery) (int64, error) {
	now := time.Now().UnixMilli()
	de.Ctime, de.Utime = now, now
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Create(&de).Error
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicated
		}
		if err != nil {
			return err
		}
		return tx.Create(&DeliveryLog{
			DeliveryID: de.Id,
			Status:     de.Status,
			Note:       de.TrackingNote,
			Ctime:      now,
		}).Error
	})
	return de.Id, err
}

func (d *deliveryDAO) Delete(ctx context.Context, id int64) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("delivery_id = ?", id).Delete(&DeliveryLog{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&Delivery{}).Error
	})
}

func (d *deliveryDAO) FindByID(ctx context.Context, id int64) (Delivery, error) {
	var res Delivery
	err := d.db.WithContext(ctx).First(&res, "id = ?", id).Error
	return res, err
}

func (d *deliveryDAO) FindByOrderID(ctx context.Context, orderID int64) (Delivery, error) {
	var res Delivery
	err := d.db.WithContext(ctx).First(&res, "order_id = ?", orderID).Error
	return res, err
}

func (d *deliveryDAO) partnerQuery(ctx context.Context, partnerID int64, status string) *gorm.DB {
	query := d.db.WithContext(ctx).Model(&Delivery{}).Where("partner_id = ?", partnerID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	return query
}

func (d *deliveryDAO) ListByPartner(ctx context.Context, partnerID int64, status string, offset, limit int) ([]Delivery, error) {
	var res []Delivery
	err := d.partnerQuery(ctx, partnerID, status).
		Order("utime DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *deliveryDAO) CountByPartner(ctx context.Context, partnerID int64, status string) (int64, error) {
	var res int64
	err := d.partnerQuery(ctx, partnerID, status).Count(&res).Error
	return res, err
}

func (d *deliveryDAO) UpdateStatus(ctx context.Context, id, partnerID int64, from, to, note string) error {
	now := time.Now().UnixMilli()
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]any{
			"status": to,
			"utime":  now,
		}
		if note != "" {
			updates["tracking_note"] = note
		}
		res := tx.Model(&Delivery{}).
			Where("id = ? AND partner_id = ? AND status = ?", id, partnerID, from).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrStatusConflict
		}
		return tx.Create(&DeliveryLog{
			DeliveryID: id,
			Status:     to,
			Note:       note,
			Ctime:      now,
		}).Error
	})
}

func (d *deliveryDAO) FindLogs(ctx context.Context, deliveryID int64) ([]DeliveryLog, error) {
	var res []DeliveryLog
	err := d.db.WithContext(ctx).
		Where("delivery_id = ?", deliveryID).
		Order("id ASC").
		Find(&res).Error
	return res, err
}

type Delivery struct {
	Id           int64  `gorm:"primaryKey;autoIncrement;comment:配送自增ID"`
	OrderID      int64  `gorm:"not null;uniqueIndex:uniq_delivery_order_id;comment:订单ID"`
	PartnerID    int64  `gorm:"not null;index:idx_delivery_partner_status,priority:1;comment:配送员ID"`
	Status       string `gorm:"type:varchar(32);not null;index:idx_delivery_partner_status,priority:2;comment:配送状态 assigned/picked_up/in_transit/delivered/failed"`
	TrackingNote string `gorm:"type:varchar(512);comment:最新一条物流备注"`
	Ctime        int64
	Utime        int64
}

type DeliveryLog struct {
	Id         int64  `gorm:"primaryKey;autoIncrement;comment:配送记录自增ID"`
	DeliveryID int64  `gorm:"not null;index:idx_delivery_log_delivery_id;comment:配送ID"`
	Status     string `gorm:"type:varchar(32);not null;comment:变更后的状态"`
	Note       string `gorm:"type:varchar(512)"`
	Ctime      int64
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Delivery{}, &DeliveryLog{})
}
