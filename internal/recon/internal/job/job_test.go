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

package job

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	start, end int64
	limit      int
}

func (f *fakeService) Reconcile(ctx context.Context, start, end int64, limit int) (int, error) {
	f.start, f.end, f.limit = start, end, limit
	return 1, nil
}

func TestReconcileWalletCreditsJob_Run(t *testing.T) {
	svc := &fakeService{}
	j := NewReconcileWalletCreditsJob(svc, time.Hour, 5*time.Minute, 50)
	before := time.Now().Add(-5 * time.Minute).UnixMilli()
	require.NoError(t, j.Run(context.Background()))
	after := time.Now().Add(-5 * time.Minute).UnixMilli()

	assert.Equal(t, "reconcile_wallet_credits_job", j.Name())
	assert.Equal(t, 50, svc.limit)
	assert.GreaterOrEqual(t, svc.end, before)
	assert.LessOrEqual(t, svc.end, after)
	assert.Equal(t, time.Hour.Milliseconds(), svc.end-svc.start)
}
