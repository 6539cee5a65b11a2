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
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	ErrUserDuplicate  = errors.New("手机号已经注册")
)

type UserDAO interface {
	Insert(ctx context.Context, u User) (int64, error)
	FindByPhone(ctx context.Context, phone string) (User, error)
	FindById(ctx context.Context, id int64) (User, error)
	FindByIds(ctx context.Context, ids []int64) ([]User, error)
	UpdateProfile(ctx context.Context, u User) error
}

type GORMUserDAO struct {
	db *egorm.Component
}

func NewGORMUserDAO(db *egorm.Component) UserDAO {
	return &GORMUserDAO{db: db}
}

func (ud *GORMUserDAO) Insert(ctx context.Context, u User) (int64, error) {
	now := time.Now().UnixMilli()
	u.Ctime, u.Utime = now, now
	err := ud.db.WithContext(ctx).Create(&u).Error
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return 0, ErrUserDuplicate
		}
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return 0, ErrUserDuplicate
	}
	return u.Id, err
}

func (ud *GORMUserDAO) FindByPhone(ctx context.Context, phone string) (User, error) {
	var u User
	err := ud.db.WithContext(ctx).Where("phone = ?", phone).First(&u).Error
	return u, err
}

func (ud *GORMUserDAO) FindById(ctx context.Context, id int64) (User, error) {
	var u User
	err := ud.db.WithContext(ctx).Where("id = ?", id).First(&u).Error
	return u, err
}

func (ud *GORMUserDAO) FindByIds(ctx context.Context, ids []int64) ([]User, error) {
	var us []User
	err := ud.db.WithContext(ctx).Where("id IN ?", ids).Find(&us).Error
	return us, err
}

// UpdateProfile 只允许修改非敏感字段
func (ud *GORMUserDAO) UpdateProfile(ctx context.Context, u User) error {
	return ud.db.WithContext(ctx).Model(&User{}).
		Where("id = ?", u.Id).
		Updates(map[string]any{
			"name":  u.Name,
			"email": u.Email,
			"utime": time.Now().UnixMilli(),
		}).Error
}

type User struct {
	Id     int64  `gorm:"primaryKey;autoIncrement;comment:用户自增ID"`
	Phone  string `gorm:"type:varchar(32);not null;uniqueIndex:uniq_user_phone;comment:手机号"`
	Email  string `gorm:"type:varchar(255);not null;default:'';comment:邮箱"`
	Name   string `gorm:"type:varchar(128);not null;default:'';comment:昵称"`
	Role   string `gorm:"type:varchar(32);not null;default:'buyer';comment:角色 buyer/seller/deliveryPartner/admin"`
	Status uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:状态 1=正常 2=封禁"`
	Ctime  int64
	Utime  int64
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&User{})
}
