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

package ioc

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/marketplace/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/kafka"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
)

type topicConfig struct {
	Name       string `yaml:"name"`
	Partitions int    `yaml:"partitions"`
}

// 订单 支付 配送三类事件, 配置里没有列出 topic 时使用
var defaultTopics = []topicConfig{
	{Name: "order_events", Partitions: 3},
	{Name: "payment_events", Partitions: 3},
	{Name: "delivery_events", Partitions: 3},
}

// InitMQ driver 为 memory 时使用进程内队列, 方便本地不启动 kafka 调试
func InitMQ() mq.MQ {
	type Config struct {
		Driver    string        `yaml:"driver"`
		Network   string        `yaml:"network"`
		Addresses []string      `yaml:"addresses"`
		Topics    []topicConfig `yaml:"topics"`
	}

	cfg := Config{Driver: "kafka", Network: "tcp"}
	err := econf.UnmarshalKey("kafka", &cfg)
	if err != nil {
		panic(err)
	}
	if len(cfg.Topics) == 0 {
		cfg.Topics = defaultTopics
	}

	var q mq.MQ
	switch cfg.Driver {
	case "memory":
		q = memory.NewMQ()
	default:
		q, err = kafka.NewMQ(cfg.Network, cfg.Addresses)
		if err != nil {
			panic(err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	for _, t := range cfg.Topics {
		if e := q.CreateTopic(ctx, t.Name, t.Partitions); e != nil {
			panic(fmt.Sprintf("创建Topic失败: %s : Topic = %s, Partitions = %d", e.Error(), t.Name, t.Partitions))
		}
	}
	elog.DefaultLogger.Info("消息队列已就绪",
		elog.String("driver", cfg.Driver),
		elog.Int("topics", len(cfg.Topics)))
	return mqx.NewTraceMq(q)
}
