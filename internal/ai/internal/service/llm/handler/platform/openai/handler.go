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

package openai

import (
	"context"
	"fmt"
	"strings"

	"github.com/ecodeclub/jobmatch/internal/ai/internal/domain"
	"github.com/ecodeclub/jobmatch/internal/ai/internal/service/llm/handler"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

var _ handler.Handler = &Handler{}

// Handler 兼容 OpenAI 协议的平台都可以用
type Handler struct {
	client *openai.Client
	model  string
}

func NewHandler(baseURL, apiKey, model string) *Handler {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &Handler{
		client: openai.NewClient(opts...),
		model:  model,
	}
}

func (h *Handler) Handle(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
	params := openai.ChatCompletionNewParams{
		Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(req.Prompt),
		}),
		Model: openai.F(openai.ChatModel(h.model)),
	}
	resp, err := h.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return domain.LLMResponse{}, fmt.Errorf("调用 %s 失败: %w", h.model, err)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return domain.LLMResponse{}, handler.ErrEmptyResponse
	}
	return domain.LLMResponse{
		Answer: resp.Choices[0].Message.Content,
		Tokens: resp.Usage.TotalTokens,
		Model:  h.model,
	}, nil
}
