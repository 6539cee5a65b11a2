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

package test

import (
	"net/http/httptest"
	"testing"

	"github.com/ecodeclub/ginx/gctx"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionProvider(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx := &gctx.Context{Context: c}
	p := &SessionProvider{}

	_, err := p.Get(ctx)
	assert.ErrorIs(t, err, errNoSession)

	_, err = p.NewSession(ctx, 7, map[string]string{"role": "buyer"}, nil)
	require.NoError(t, err)
	sess, err := p.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(7), sess.Claims().Uid)
	assert.Equal(t, "buyer", sess.Claims().Data["role"])

	require.NoError(t, p.Destroy(ctx))
	_, err = p.Get(ctx)
	assert.ErrorIs(t, err, errNoSession)
}
