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
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerator_Generate(t *testing.T) {
	sng := NewGeneratorWith(func(_ time.Time) int64 { return 1234554320123 }, func() string { return "nUfojcH2M5j2j3Tk5A1mf2" })

	testCases := []struct {
		name   string
		prefix string
		uid    int64
		want   string
	}{
		{
			name:   "用户ID不足四位补零",
			prefix: PrefixOrder,
			uid:    1,
			want:   "ORD12345543201230001nUfojcH",
		},
		{
			name:   "用户ID超过四位取后四位",
			prefix: PrefixWithdrawal,
			uid:    123456789,
			want:   "WDR12345543201236789nUfojcH",
		},
		{
			name:   "工单",
			prefix: PrefixTicket,
			uid:    10000,
			want:   "TKT12345543201230000nUfojcH",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sn := sng.Generate(tc.prefix, tc.uid)
			assert.Equal(t, tc.want, sn)
			assert.Equal(t, len(tc.prefix)+snBodyLength, len(sn))
		})
	}
}

func TestGenerator_Unique(t *testing.T) {
	sng := NewGenerator()
	seen := make(map[string]struct{}, 100)
	for i := 0; i < 100; i++ {
		sn := sng.Generate(PrefixOrder, 42)
		assert.True(t, strings.HasPrefix(sn, PrefixOrder))
		_, ok := seen[sn]
		assert.False(t, ok)
		seen[sn] = struct{}{}
	}
}
