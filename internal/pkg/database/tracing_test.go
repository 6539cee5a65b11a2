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

package database

import (
	"context"
	"testing"

	"github.com/ecodeclub/ekit/slice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type tracedRow struct {
	Id   int64 `gorm:"primaryKey;autoIncrement"`
	Name string
}

func TestGormTracingPlugin(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&tracedRow{}))
	require.NoError(t, db.Use(NewGormTracingPluginWithTracer(tp.Tracer("test"))))

	ctx := context.Background()
	require.NoError(t, db.WithContext(ctx).Create(&tracedRow{Name: "pen"}).Error)
	var row tracedRow
	require.NoError(t, db.WithContext(ctx).First(&row, "name = ?", "pen").Error)
	err = db.WithContext(ctx).First(&row, "name = ?", "missing").Error
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	spans := recorder.Ended()
	require.Len(t, spans, 3)
	names := slice.Map(spans, func(idx int, src sdktrace.ReadOnlySpan) string {
		return src.Name()
	})
	assert.Equal(t, []string{"create traced_rows", "query traced_rows", "query traced_rows"}, names)
	for _, s := range spans {
		assert.Equal(t, codes.Ok, s.Status().Code)
	}
}
