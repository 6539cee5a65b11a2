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

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/marketplace/internal/user/internal/domain"
)

var ErrKeyNotFound = errors.New("key not found")

type OTPCache interface {
	Set(ctx context.Context, phone string, code domain.OTPCode) error
	Get(ctx context.Context, phone string) (domain.OTPCode, error)
	Delete(ctx context.Context, phone string) error
}

type otpECache struct {
	cache ecache.Cache
}

func NewOTPECache(c ecache.Cache) OTPCache {
	return &otpECache{
		cache: &ecache.NamespaceCache{
			Namespace: "otp:",
			C:         c,
		},
	}
}

// Set 过期时间跟随验证码本身的 ExpiresAt
func (o *otpECache) Set(ctx context.Context, phone string, code domain.OTPCode) error {
	ttl := time.Until(time.UnixMilli(code.ExpiresAt))
	if ttl <= 0 {
		return o.Delete(ctx, phone)
	}
	val, err := json.Marshal(code)
	if err != nil {
		return fmt.Errorf("序列化验证码失败: %w", err)
	}
	return o.cache.Set(ctx, phone, string(val), ttl)
}

func (o *otpECache) Get(ctx context.Context, phone string) (domain.OTPCode, error) {
	val := o.cache.Get(ctx, phone)
	if val.KeyNotFound() {
		return domain.OTPCode{}, ErrKeyNotFound
	}
	if val.Err != nil {
		return domain.OTPCode{}, val.Err
	}
	str, err := val.String()
	if err != nil {
		return domain.OTPCode{}, err
	}
	var res domain.OTPCode
	err = json.Unmarshal([]byte(str), &res)
	return res, err
}

func (o *otpECache) Delete(ctx context.Context, phone string) error {
	_, err := o.cache.Delete(ctx, phone)
	return err
}
