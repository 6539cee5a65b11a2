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

package mqx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

type HandleFunc[T any] func(ctx context.Context, evt T) error

// GeneralConsumer 反序列化消息后交给 HandleFunc 处理
type GeneralConsumer[T any] struct {
	consumer mq.Consumer
	topic    string
	handle   HandleFunc[T]
	logger   *elog.Component
}

func NewGeneralConsumer[T any](q mq.MQ, topic, groupID string, handle HandleFunc[T]) (*GeneralConsumer[T], error) {
	c, err := q.Consumer(topic, groupID)
	if err != nil {
		return nil, fmt.Errorf("创建 topic=%s 的消费者失败: %w", topic, err)
	}
	return &GeneralConsumer[T]{
		consumer: c,
		topic:    topic,
		handle:   handle,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *GeneralConsumer[T]) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if ctx.Err() != nil {
				return
			}
			if err != nil {
				c.logger.Error("消费消息失败", elog.String("topic", c.topic), elog.FieldErr(err))
			}
		}
	}()
}

func (c *GeneralConsumer[T]) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt T
	if err = json.Unmarshal(msg.Value, &evt); err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	return c.handle(ctx, evt)
}
