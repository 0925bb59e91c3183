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

package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/ecodeclub/jobmatch/internal/ai/internal/domain"
	"github.com/ecodeclub/jobmatch/internal/ai/internal/service/llm/handler"
	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

var _ handler.Handler = &Handler{}

type Handler struct {
	client *genai.Client
	model  string
}

func NewHandler(ctx context.Context, apiKey, model string) (*Handler, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("创建 genai 客户端失败: %w", err)
	}
	if model == "" {
		model = defaultModel
	}
	return &Handler{client: client, model: model}, nil
}

func (h *Handler) Handle(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
	var cfg *genai.GenerateContentConfig
	if req.JSON {
		cfg = &genai.GenerateContentConfig{ResponseMIMEType: "application/json"}
	}
	resp, err := h.client.Models.GenerateContent(ctx, h.model, genai.Text(req.Prompt), cfg)
	if err != nil {
		return domain.LLMResponse{}, fmt.Errorf("调用 gemini 失败: %w", err)
	}
	var sb strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil || strings.TrimSpace(part.Text) == "" {
				continue
			}
			if sb.Len() > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString(strings.TrimSpace(part.Text))
		}
	}
	if sb.Len() == 0 {
		return domain.LLMResponse{}, handler.ErrEmptyResponse
	}
	var tokens int64
	if resp.UsageMetadata != nil {
		tokens = int64(resp.UsageMetadata.TotalTokenCount)
	}
	return domain.LLMResponse{
		Answer: sb.String(),
		Tokens: tokens,
		Model:  h.model,
	}, nil
}
