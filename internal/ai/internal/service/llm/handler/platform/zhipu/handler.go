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

package zhipu

import (
	"context"
	"fmt"
	"strings"

	"github.com/ecodeclub/jobmatch/internal/ai/internal/domain"
	"github.com/ecodeclub/jobmatch/internal/ai/internal/service/llm/handler"
	"github.com/yankeguo/zhipu"
)

var _ handler.Handler = &Handler{}

const jsonOnly = "Respond with a single JSON object only. Do not wrap it in markdown."

// Handler 智谱是最终出口，不会再调用下一个 handler
type Handler struct {
	client *zhipu.Client
	model  string
}

func NewHandler(apiKey, model string) (*Handler, error) {
	client, err := zhipu.NewClient(zhipu.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("初始化智谱客户端失败: %w", err)
	}
	return &Handler{client: client, model: model}, nil
}

func (h *Handler) Handle(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
	completion, err := h.buildReq(req).Do(ctx)
	if err != nil {
		return domain.LLMResponse{}, fmt.Errorf("调用 %s 失败: %w", h.model, err)
	}
	if len(completion.Choices) == 0 || strings.TrimSpace(completion.Choices[0].Message.Content) == "" {
		return domain.LLMResponse{}, handler.ErrEmptyResponse
	}
	return domain.LLMResponse{
		Answer: completion.Choices[0].Message.Content,
		Tokens: completion.Usage.TotalTokens,
		Model:  h.model,
	}, nil
}

func (h *Handler) buildReq(req domain.LLMRequest) *zhipu.ChatCompletionService {
	svc := h.client.ChatCompletion(h.model)
	if req.JSON {
		svc = svc.AddMessage(zhipu.ChatCompletionMessage{
			Role:    zhipu.RoleSystem,
			Content: jsonOnly,
		})
	}
	return svc.AddMessage(zhipu.ChatCompletionMessage{
		Role:    zhipu.RoleUser,
		Content: req.Prompt,
	})
}
