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

package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "200.00", Format(20000))
	assert.Equal(t, "0.05", Format(5))
	assert.Equal(t, "0.00", Format(0))
	assert.Equal(t, "-1.20", Format(-120))
}

func TestParse(t *testing.T) {
	testCases := []struct {
		input   string
		want    int64
		wantErr error
	}{
		{input: "100.00", want: 10000},
		{input: "100", want: 10000},
		{input: "0.5", want: 50},
		{input: "9.99", want: 999},
		{input: "1.234", wantErr: ErrInvalidAmount},
		{input: "-1", wantErr: ErrInvalidAmount},
		{input: "abc", wantErr: ErrInvalidAmount},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := Parse(tc.input)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPercent(t *testing.T) {
	rate := decimal.RequireFromString("0.1")
	assert.Equal(t, int64(2000), Percent(20000, rate))
	// 0.1 * 1005 = 100.5 -> 101
	assert.Equal(t, int64(101), Percent(1005, rate))
	assert.Equal(t, int64(0), Percent(0, rate))
}

func TestSplit(t *testing.T) {
	res := Split(1000, []int64{1, 1, 1})
	require.Len(t, res, 3)
	assert.Equal(t, []int64{333, 333, 334}, res)

	res = Split(18000, []int64{15000, 5000})
	assert.Equal(t, []int64{13500, 4500}, res)

	assert.Equal(t, []int64{0, 700}, Split(700, []int64{0, 0}))
	assert.Empty(t, Split(700, nil))
}
