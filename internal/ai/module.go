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

package ai

import (
	"github.com/ecodeclub/jobmatch/internal/ai/internal/domain"
	"github.com/ecodeclub/jobmatch/internal/ai/internal/service/embedding"
	"github.com/ecodeclub/jobmatch/internal/ai/internal/service/llm"
	"github.com/ecodeclub/jobmatch/internal/ai/internal/service/llm/handler"
)

type (
	LLMService       = llm.Service
	LLMRequest       = domain.LLMRequest
	LLMResponse      = domain.LLMResponse
	EmbeddingService = embedding.Service
)

var (
	ErrLLMDisabled       = handler.ErrLLMDisabled
	ErrEmbeddingDisabled = embedding.ErrEmbeddingDisabled
	// NewOpenAIEmbedding 给离线工具直接构造向量服务
	NewOpenAIEmbedding = embedding.NewOpenAIService
)

type Module struct {
	Svc          LLMService
	EmbeddingSvc EmbeddingService
}
