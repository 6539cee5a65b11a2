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
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
)

//go:generate mockgen -source=./request.go -package=cachemocks -destination=./mocks/request.mock.go RequestCache
// RequestCache 用于下单请求去重
type RequestCache interface {
	// Acquire 返回 false 表示同一个请求已经处理过或正在处理
	Acquire(ctx context.Context, uid int64, requestID string) (bool, error)
	Release(ctx context.Context, uid int64, requestID string) error
}

type requestECache struct {
	ec         ecache.Cache
	expiration time.Duration
}

func NewRequestECache(ec ecache.Cache) RequestCache {
	return &requestECache{
		ec: &ecache.NamespaceCache{
			Namespace: "order:",
			C:         ec,
		},
		expiration: 10 * time.Minute,
	}
}

func (r *requestECache) Acquire(ctx context.Context, uid int64, requestID string) (bool, error) {
	return r.ec.SetNX(ctx, r.key(uid, requestID), 1, r.expiration)
}

func (r *requestECache) Release(ctx context.Context, uid int64, requestID string) error {
	_, err := r.ec.Delete(ctx, r.key(uid, requestID))
	return err
}

// 注意 Namespace 设置
func (r *requestECache) key(uid int64, requestID string) string {
	return fmt.Sprintf("create:%d:%s", uid, requestID)
}
