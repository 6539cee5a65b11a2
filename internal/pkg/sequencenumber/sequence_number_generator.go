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

package sequencenumber

import (
	"fmt"
	"time"

	"github.com/lithammer/shortuuid/v4"
)

const (
	PrefixOrder      = "ORD"
	PrefixWithdrawal = "WDR"
	PrefixTicket     = "TKT"
)

// 前缀之后的固定长度
const snBodyLength = 24

type TimestampGenerateFunc func(time.Time) int64

type ShortUUIDGenerateFunc func() string

type Generator struct {
	timestampGenFunc TimestampGenerateFunc
	shortUUIDGenFunc ShortUUIDGenerateFunc
}

func NewGeneratorWith(timestampGen TimestampGenerateFunc, uuidGen ShortUUIDGenerateFunc) *Generator {
	return &Generator{
		timestampGenFunc: timestampGen,
		shortUUIDGenFunc: uuidGen,
	}
}

func NewGenerator() *Generator {
	return NewGeneratorWith(func(t time.Time) int64 { return t.UnixMilli() }, shortuuid.New)
}

// Generate 前缀 + 毫秒时间戳 + 用户ID后四位 + uuid, 前缀之后固定 24 位
func (s *Generator) Generate(prefix string, uid int64) string {
	if uid < 0 {
		uid = -uid
	}
	body := fmt.Sprintf("%d%04d%s", s.timestampGenFunc(time.Now()), uid%10000, s.shortUUIDGenFunc())
	if len(body) > snBodyLength {
		body = body[:snBodyLength]
	}
	return prefix + body
}
