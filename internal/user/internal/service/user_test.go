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

package service

import (
	"context"
	"testing"

	"github.com/ecodeclub/marketplace/internal/test/testdb"
	"github.com/ecodeclub/marketplace/internal/user/internal/domain"
	"github.com/ecodeclub/marketplace/internal/user/internal/errs"
	"github.com/ecodeclub/marketplace/internal/user/internal/repository"
	"github.com/ecodeclub/marketplace/internal/user/internal/repository/dao"
	"github.com/ego-component/egorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T) (UserService, *egorm.Component) {
	db := testdb.NewSQLite(t, dao.InitTables)
	return NewUserService(repository.NewUserRepository(dao.NewGORMUserDAO(db))), db
}

func TestUserService_FindOrCreateByPhone(t *testing.T) {
	testCases := []struct {
		name     string
		before   func(t *testing.T, db *egorm.Component)
		phone    string
		role     domain.Role
		wantRole domain.Role
		wantErr  error
	}{
		{
			name:     "新用户默认买家",
			phone:    "13800000001",
			wantRole: domain.RoleBuyer,
		},
		{
			name:     "新用户注册为卖家",
			phone:    "13800000002",
			role:     domain.RoleSeller,
			wantRole: domain.RoleSeller,
		},
		{
			name:    "不能自选管理员",
			phone:   "13800000003",
			role:    domain.RoleAdmin,
			wantErr: errs.ErrRoleNotAllowed,
		},
		{
			name: "老用户保持原角色",
			before: func(t *testing.T, db *egorm.Component) {
				require.NoError(t, db.Create(&dao.User{
					Phone:  "13800000004",
					Role:   "deliveryPartner",
					Status: uint8(domain.UserStatusActive),
				}).Error)
			},
			phone:    "13800000004",
			role:     domain.RoleSeller,
			wantRole: domain.RoleDeliveryPartner,
		},
		{
			name: "封禁用户",
			before: func(t *testing.T, db *egorm.Component) {
				require.NoError(t, db.Create(&dao.User{
					Phone:  "13800000005",
					Role:   "buyer",
					Status: uint8(domain.UserStatusBlocked),
				}).Error)
			},
			phone:   "13800000005",
			wantErr: errs.ErrUserBlocked,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, db := newUserService(t)
			if tc.before != nil {
				tc.before(t, db)
			}
			u, err := svc.FindOrCreateByPhone(context.Background(), tc.phone, tc.role)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.NotZero(t, u.Id)
			assert.Equal(t, tc.wantRole, u.Role)
			assert.Equal(t, tc.phone, u.Phone)

			// 再来一次拿到的是同一个用户
			again, err := svc.FindOrCreateByPhone(context.Background(), tc.phone, domain.RoleBuyer)
			require.NoError(t, err)
			assert.Equal(t, u.Id, again.Id)
		})
	}
}

func TestUserService_Profile(t *testing.T) {
	svc, db := newUserService(t)
	ctx := context.Background()
	_, err := svc.Profile(ctx, 404)
	assert.ErrorIs(t, err, errs.ErrUserNotFound)

	require.NoError(t, db.Create(&dao.User{Id: 1, Phone: "13800000000", Role: "buyer", Status: 1}).Error)
	require.NoError(t, svc.UpdateProfile(ctx, domain.User{Id: 1, Name: "Alice", Email: "alice@example.com", Phone: "10086"}))
	u, err := svc.Profile(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Alice", u.Name)
	assert.Equal(t, "alice@example.com", u.Email)
	// 手机号不能通过资料修改
	assert.Equal(t, "13800000000", u.Phone)

	us, err := svc.FindByIds(ctx, []int64{1, 2})
	require.NoError(t, err)
	assert.Len(t, us, 1)
}
