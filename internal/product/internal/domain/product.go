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

type Status uint8

func (s Status) ToUint8() uint8 {
	return uint8(s)
}

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusInactive:
		return "inactive"
	default:
		return "unknown"
	}
}

const (
	StatusInactive Status = 1 // 下架
	StatusActive   Status = 2 // 上架
)

func StatusFromString(s string) (Status, bool) {
	switch s {
	case "active":
		return StatusActive, true
	case "inactive":
		return StatusInactive, true
	default:
		return 0, false
	}
}

type Product struct {
	ID       int64
	SN       string
	SellerID int64
	Name     string
	Desc     string
	// 单位为分
	Price    int64
	Stock    int64
	Status   Status
	Variants []Variant
	Ctime    int64
	Utime    int64
}

func (p Product) Active() bool {
	return p.Status == StatusActive
}

// Variant 找不到返回 false
func (p Product) Variant(id int64) (Variant, bool) {
	for _, v := range p.Variants {
		if v.ID == id {
			return v, true
		}
	}
	return Variant{}, false
}

type Variant struct {
	ID        int64
	ProductID int64
	Name      string
	Price     int64
	Stock     int64
}
