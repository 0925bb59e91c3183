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

// Consumer 由 main 在启动时统一调用 Start
type Consumer interface {
	Start(ctx context.Context)
}

type HandlerFunc[T any] func(ctx context.Context, evt T) error

// GeneralConsumer 反序列化 JSON 消息之后交给 handler 处理
type GeneralConsumer[T any] struct {
	name     string
	consumer mq.Consumer
	handler  HandlerFunc[T]
	logger   *elog.Component
}

func NewGeneralConsumer[T any](q mq.MQ, topic, groupID string, handler HandlerFunc[T]) (*GeneralConsumer[T], error) {
	c, err := q.Consumer(topic, groupID)
	if err != nil {
		return nil, fmt.Errorf("创建topic=%s的消费者失败: %w", topic, err)
	}
	return &GeneralConsumer[T]{
		name:     groupID + ":" + topic,
		consumer: c,
		handler:  handler,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *GeneralConsumer[T]) Start(ctx context.Context) {
	go func() {
		for {
			er := c.Consume(ctx)
			if errors.Is(er, context.Canceled) || errors.Is(er, context.DeadlineExceeded) {
				c.logger.Info("消费者退出", elog.String("consumer", c.name))
				return
			}
			if er != nil {
				c.logger.Error("消费事件失败",
					elog.String("consumer", c.name),
					elog.FieldErr(er))
			}
		}
	}()
}

func (c *GeneralConsumer[T]) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt T
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	return c.handler(ctx, evt)
}
