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

package repository

import (
	"context"

	"github.com/ecodeclub/marketplace/internal/user/internal/domain"
	"github.com/ecodeclub/marketplace/internal/user/internal/repository/cache"
)

var ErrOTPNotFound = cache.ErrKeyNotFound

//go:generate mockgen -source=./otp.go -package=repomocks -destination=./mocks/otp.mock.go OTPRepository
type OTPRepository interface {
	Save(ctx context.Context, phone string, code domain.OTPCode) error
	Find(ctx context.Context, phone string) (domain.OTPCode, error)
	Delete(ctx context.Context, phone string) error
}

type otpRepository struct {
	cache cache.OTPCache
}

func NewOTPRepository(c cache.OTPCache) OTPRepository {
	return &otpRepository{cache: c}
}

func (r *otpRepository) Save(ctx context.Context, phone string, code domain.OTPCode) error {
	return r.cache.Set(ctx, phone, code)
}

func (r *otpRepository) Find(ctx context.Context, phone string) (domain.OTPCode, error) {
	return r.cache.Get(ctx, phone)
}

func (r *otpRepository) Delete(ctx context.Context, phone string) error {
	return r.cache.Delete(ctx, phone)
}
