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
	"testing"
	"time"

	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type deliveredEvent struct {
	OrderID   int64 `json:"orderId"`
	PartnerID int64 `json:"partnerId"`
}

func TestGeneralProducerAndConsumer(t *testing.T) {
	const topic = "delivery_events"
	q := memory.NewMQ()
	require.NoError(t, q.CreateTopic(context.Background(), topic, 1))

	got := make(chan deliveredEvent, 1)
	c, err := NewGeneralConsumer[deliveredEvent](q, topic, "test", func(ctx context.Context, evt deliveredEvent) error {
		got <- evt
		return nil
	})
	require.NoError(t, err)

	p, err := NewKeyedProducer[deliveredEvent](NewTraceMq(q), topic, func(evt deliveredEvent) int64 {
		return evt.OrderID
	})
	require.NoError(t, err)
	want := deliveredEvent{OrderID: 12, PartnerID: 34}
	require.NoError(t, p.Produce(context.Background(), want))

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	require.NoError(t, c.Consume(ctx))
	assert.Equal(t, want, <-got)
}
