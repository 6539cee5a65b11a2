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

import "github.com/ecodeclub/marketplace/internal/user/internal/domain"

type SendOTPReq struct {
	Phone string `json:"phone" binding:"required,min=6,max=20"`
}

type VerifyOTPReq struct {
	Phone string `json:"phone" binding:"required,min=6,max=20"`
	Code  string `json:"code" binding:"required,len=6,numeric"`
	// 只对新用户生效
	Role string `json:"role" binding:"omitempty,oneof=buyer seller deliveryPartner admin"`
}

type EditReq struct {
	Name  string `json:"name" binding:"max=128"`
	Email string `json:"email" binding:"omitempty,email"`
}

type Profile struct {
	Id    int64  `json:"id"`
	Phone string `json:"phone"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func newProfile(u domain.User) Profile {
	return Profile{
		Id:    u.Id,
		Phone: u.Phone,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role.String(),
	}
}
