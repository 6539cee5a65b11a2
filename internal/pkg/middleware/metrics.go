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

package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

type MetricsBuilder struct {
	duration *prometheus.SummaryVec
	total    *prometheus.CounterVec
}

// NewMetricsBuilder server 用于区分 web 与 admin 两个 server
func NewMetricsBuilder(reg prometheus.Registerer, server string) *MetricsBuilder {
	labels := []string{"method", "path", "status_code"}
	constLabels := prometheus.Labels{"server": server}
	duration := prometheus.NewSummaryVec(prometheus.SummaryOpts{
		Namespace:   "marketplace",
		Name:        "http_request_duration_seconds",
		Help:        "HTTP request duration in seconds",
		ConstLabels: constLabels,
		Objectives: map[float64]float64{
			0.5:  0.05,
			0.9:  0.01,
			0.99: 0.001,
		},
	}, labels)
	total := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace:   "marketplace",
		Name:        "http_requests_total",
		Help:        "Total number of HTTP requests",
		ConstLabels: constLabels,
	}, labels)
	reg.MustRegister(duration, total)
	return &MetricsBuilder{duration: duration, total: total}
}

func (b *MetricsBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()
		path := ctx.FullPath()
		if path == "" {
			// 未匹配到路由的请求统一归类, 避免 label 爆炸
			path = "unknown"
		}
		lvs := []string{ctx.Request.Method, path, strconv.Itoa(ctx.Writer.Status())}
		b.duration.WithLabelValues(lvs...).Observe(time.Since(start).Seconds())
		b.total.WithLabelValues(lvs...).Inc()
	}
}
