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

const (
	StatusOpen     = "open"
	StatusResolved = "resolved"
	StatusClosed   = "closed"
)

type TicketDAO interface {
	Insert(ctx context.Context, t Ticket) (int64, error)
	FindByID(ctx context.Context, id int64) (Ticket, error)
	List(ctx context.Context, uid int64, status string, offset, limit int) ([]Ticket, error)
	Count(ctx context.Context, uid int64, status string) (int64, error)
	// Resolve 只处理 open 状态的工单, 返回受影响行数
	Resolve(ctx context.Context, id, adminID int64, resolution string) (int64, error)
	// Close 只处理尚未关闭的工单, 返回受影响行数
	Close(ctx context.Context, id int64) (int64, error)
}

type ticketDAO struct {
	db *egorm.Component
}

func NewTicketGORMDAO(db *egorm.Component) TicketDAO {
	return &ticketDAO{db: db}
}

func (d *ticketDAO) Insert(ctx context.Context, t Ticket) (int64, error) {
	now := time.Now().UnixMilli()
	t.Ctime, t.Utime = now, now
	err := d.db.WithContext(ctx).Create(&t).Error
	return t.Id, err
}

func (d *ticketDAO) FindByID(ctx context.Context, id int64) (Ticket, error) {
	var res Ticket
	err := d.db.WithContext(ctx).First(&res, "id = ?", id).Error
	return res, err
}

// query uid 为 0 时查询全部
func (d *ticketDAO) query(ctx context.Context, uid int64, status string) *gorm.DB {
	query := d.db.WithContext(ctx).Model(&Ticket{})
	if uid > 0 {
		query = query.Where("uid = ?", uid)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}
	return query
}

func (d *ticketDAO) List(ctx context.Context, uid int64, status string, offset, limit int) ([]Ticket, error) {
	var res []Ticket
	err := d.query(ctx, uid, status).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *ticketDAO) Count(ctx context.Context, uid int64, status string) (int64, error) {
	var res int64
	err := d.query(ctx, uid, status).Count(&res).Error
	return res, err
}

func (d *ticketDAO) Resolve(ctx context.Context, id, adminID int64, resolution string) (int64, error) {
	now := time.Now().UnixMilli()
	res := d.db.WithContext(ctx).Model(&Ticket{}).
		Where("id = ? AND status = ?", id, StatusOpen).
		Updates(map[string]any{
			"status":      StatusResolved,
			"resolution":  resolution,
			"resolved_by": adminID,
			"resolved_at": now,
			"utime":       now,
		})
	return res.RowsAffected, res.Error
}

func (d *ticketDAO) Close(ctx context.Context, id int64) (int64, error) {
	now := time.Now().UnixMilli()
	res := d.db.WithContext(ctx).Model(&Ticket{}).
		Where("id = ? AND status IN ?", id, []string{StatusOpen, StatusResolved}).
		Updates(map[string]any{
			"status":    StatusClosed,
			"closed_at": now,
			"utime":     now,
		})
	return res.RowsAffected, res.Error
}

type Ticket struct {
	Id          int64  `gorm:"primaryKey;autoIncrement;comment:工单自增ID"`
	SN          string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_ticket_sn;comment:工单序列号"`
	Uid         int64  `gorm:"not null;index:idx_ticket_uid;comment:提交人ID"`
	OrderID     int64  `gorm:"not null;default:0;comment:关联订单ID, 0表示无"`
	Subject     string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text"`
	Category    string `gorm:"type:varchar(32);not null;comment:order/payment/delivery/account/other"`
	Priority    string `gorm:"type:varchar(16);not null;comment:low/medium/high"`
	Status      string `gorm:"type:varchar(16);not null;index:idx_ticket_status;comment:open/resolved/closed"`
	Resolution  string `gorm:"type:text;comment:处理说明"`
	ResolvedBy  int64  `gorm:"not null;default:0"`
	ResolvedAt  int64  `gorm:"not null;default:0"`
	ClosedAt    int64  `gorm:"not null;default:0"`
	Ctime       int64
	Utime       int64
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Ticket{})
}
