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
	"sync"
	"testing"
	"time"

	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEvent struct {
	Uid  int64  `json:"uid"`
	Name string `json:"name"`
}

func (e testEvent) EventKey() string {
	return e.Name
}

func TestGeneralProducerAndConsumer(t *testing.T) {
	const topic = "test_events"
	q := memory.NewMQ()
	require.NoError(t, q.CreateTopic(context.Background(), topic, 1))

	var (
		mu  sync.Mutex
		got []testEvent
	)
	c, err := NewGeneralConsumer[testEvent](q, topic, "test", func(ctx context.Context, evt testEvent) error {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, evt)
		return nil
	})
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	c.Start(ctx)

	p, err := NewGeneralProducer[testEvent](q, topic)
	require.NoError(t, err)
	require.NoError(t, p.Produce(context.Background(), testEvent{Uid: 1, Name: "a"}))
	require.NoError(t, p.Produce(context.Background(), testEvent{Uid: 2, Name: "b"}))

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) == 2
	}, 3*time.Second, 20*time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	assert.ElementsMatch(t, []testEvent{{Uid: 1, Name: "a"}, {Uid: 2, Name: "b"}}, got)
}
