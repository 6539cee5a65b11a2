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
	"fmt"
	"strconv"

	"github.com/ecodeclub/mq-api"
)

type Producer[T any] interface {
	Produce(ctx context.Context, evt T) error
}

// KeyFunc 返回消息的分区键, 同一个订单的事件落在同一个分区上才能保证顺序
type KeyFunc[T any] func(evt T) int64

type GeneralProducer[T any] struct {
	producer mq.Producer
	topic    string
	key      KeyFunc[T]
}

func NewGeneralProducer[T any](q mq.MQ, topic string) (*GeneralProducer[T], error) {
	return NewKeyedProducer[T](q, topic, nil)
}

// NewKeyedProducer key 为 nil 时不设置分区键
func NewKeyedProducer[T any](q mq.MQ, topic string, key KeyFunc[T]) (*GeneralProducer[T], error) {
	p, err := q.Producer(topic)
	if err != nil {
		return nil, fmt.Errorf("创建 topic=%s 的生产者失败: %w", topic, err)
	}
	return &GeneralProducer[T]{producer: p, topic: topic, key: key}, nil
}

func (p *GeneralProducer[T]) Produce(ctx context.Context, evt T) error {
	data, err := json.Marshal(&evt)
	if err != nil {
		return fmt.Errorf("序列化 topic=%s 的消息失败: %w", p.topic, err)
	}
	msg := &mq.Message{Value: data}
	if p.key != nil {
		msg.Key = []byte(strconv.FormatInt(p.key(evt), 10))
	}
	_, err = p.producer.Produce(ctx, msg)
	if err != nil {
		return fmt.Errorf("向topic=%s发送消息失败, key=%s: %w", p.topic, msg.Key, err)
	}
	return nil
}
