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

// Package money 金额统一以"分"为单位的 int64 存储, 999 表示 9.99
package money

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("金额非法")

var hundred = decimal.NewFromInt(100)

// Format 输出两位小数, 例如 20000 -> "200.00"
func Format(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}

// Parse 将 "100.5" 这类字符串解析为分, 超过两位小数视为非法
func Parse(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidAmount, s)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("%w: %s", ErrInvalidAmount, s)
	}
	cents := d.Mul(hundred)
	if !cents.Equal(cents.Truncate(0)) {
		return 0, fmt.Errorf("%w: 最多两位小数 %s", ErrInvalidAmount, s)
	}
	return cents.IntPart(), nil
}

// Percent 计算 amount * rate, 四舍五入到分
func Percent(amount int64, rate decimal.Decimal) int64 {
	return decimal.NewFromInt(amount).Mul(rate).Round(0).IntPart()
}

// Split 按权重拆分 total, 舍入误差记到最后一份上, 保证各份之和等于 total
func Split(total int64, weights []int64) []int64 {
	res := make([]int64, len(weights))
	if len(weights) == 0 {
		return res
	}
	var sum int64
	for _, w := range weights {
		sum += w
	}
	if sum == 0 {
		res[len(res)-1] = total
		return res
	}
	var allocated int64
	t, s := decimal.NewFromInt(total), decimal.NewFromInt(sum)
	for i := 0; i < len(weights)-1; i++ {
		res[i] = t.Mul(decimal.NewFromInt(weights[i])).Div(s).Truncate(0).IntPart()
		allocated += res[i]
	}
	res[len(res)-1] = total - allocated
	return res
}
