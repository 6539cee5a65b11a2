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

package domain

import "github.com/ecodeclub/ekit/slice"

type Role string

const (
	RoleBuyer           Role = "buyer"
	RoleSeller          Role = "seller"
	RoleDeliveryPartner Role = "deliveryPartner"
	RoleAdmin           Role = "admin"
)

// 注册时允许自选的角色, admin 只能由运营在库里指定
var selfServiceRoles = []Role{RoleBuyer, RoleSeller, RoleDeliveryPartner}

func (r Role) String() string {
	return string(r)
}

func (r Role) SelfService() bool {
	return slice.Contains(selfServiceRoles, r)
}

type UserStatus uint8

const (
	UserStatusActive  UserStatus = 1
	UserStatusBlocked UserStatus = 2
)

type User struct {
	Id     int64
	Phone  string
	Email  string
	Name   string
	Role   Role
	Status UserStatus
	Ctime  int64
}

// OTPCode 缓存中的验证码状态
type OTPCode struct {
	Code     string `json:"code"`
	Attempts int    `json:"attempts"`
	// 毫秒
	SentAt    int64 `json:"sentAt"`
	ExpiresAt int64 `json:"expiresAt"`
}
