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

type Cart struct {
	Uid   int64
	Items []Item
}

// Total 按加购时的价格快照计算, 单位为分
func (c Cart) Total() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.Subtotal()
	}
	return total
}

type Item struct {
	ID        int64
	ProductID int64
	// 0 表示没有规格
	VariantID int64
	Quantity  int64
	// 加购时的单价快照
	Price int64

	// 以下字段查询时从商品模块补齐
	ProductName string
	VariantName string
	Available   bool
	Stock       int64
}

func (i Item) Subtotal() int64 {
	return i.Price * i.Quantity
}
