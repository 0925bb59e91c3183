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

package embedding

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

var ErrEmbeddingDisabled = errors.New("没有配置向量模型")

const defaultModel = "text-embedding-3-small"

// Service 把文本转成向量，返回结果和入参一一对应
type Service interface {
	Embed(ctx context.Context, texts []string) ([][]float64, error)
}

// OpenAIService 兼容 OpenAI embeddings 接口的平台都可以用
type OpenAIService struct {
	client *openai.Client
	model  string
}

func NewOpenAIService(baseURL, apiKey, model string) *OpenAIService {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if model == "" {
		model = defaultModel
	}
	return &OpenAIService{
		client: openai.NewClient(opts...),
		model:  model,
	}
}

func (s *OpenAIService) Embed(ctx context.Context, texts []string) ([][]float64, error) {
	if len(texts) == 0 {
		return [][]float64{}, nil
	}
	resp, err := s.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Input: openai.F[openai.EmbeddingNewParamsInputUnion](openai.EmbeddingNewParamsInputArrayOfStrings(texts)),
		Model: openai.F(openai.EmbeddingModel(s.model)),
	})
	if err != nil {
		return nil, fmt.Errorf("调用向量模型 %s 失败: %w", s.model, err)
	}
	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("向量数量不对，期望 %d，实际 %d", len(texts), len(resp.Data))
	}
	res := make([][]float64, len(texts))
	for _, d := range resp.Data {
		if d.Index < 0 || int(d.Index) >= len(res) {
			return nil, fmt.Errorf("向量下标越界 %d", d.Index)
		}
		res[d.Index] = d.Embedding
	}
	return res, nil
}

type DisabledService struct{}

func (DisabledService) Embed(ctx context.Context, texts []string) ([][]float64, error) {
	return nil, ErrEmbeddingDisabled
}
