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

//go:build wireinject

package ai

import (
	"context"

	"github.com/ecodeclub/jobmatch/internal/ai/internal/service/embedding"
	"github.com/ecodeclub/jobmatch/internal/ai/internal/service/llm"
	"github.com/ecodeclub/jobmatch/internal/ai/internal/service/llm/handler"
	"github.com/ecodeclub/jobmatch/internal/ai/internal/service/llm/handler/log"
	"github.com/ecodeclub/jobmatch/internal/ai/internal/service/llm/handler/platform/gemini"
	"github.com/ecodeclub/jobmatch/internal/ai/internal/service/llm/handler/platform/openai"
	"github.com/ecodeclub/jobmatch/internal/ai/internal/service/llm/handler/platform/zhipu"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
)

func InitModule() *Module {
	wire.Build(
		initConfig,
		initRootHandler,
		llm.NewLLMService,
		initEmbeddingService,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

func initConfig() Config {
	var cfg Config
	err := econf.UnmarshalKey("ai", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}

// initRootHandler 按 Gemini、智谱、兼容 OpenAI 的平台的顺序选择
func initRootHandler(cfg Config) handler.Handler {
	var root handler.Handler
	switch {
	case cfg.Gemini.APIKey != "":
		h, err := gemini.NewHandler(context.Background(), cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			panic(err)
		}
		root = h
	case cfg.Zhipu.APIKey != "":
		h, err := zhipu.NewHandler(cfg.Zhipu.APIKey, cfg.Zhipu.Model)
		if err != nil {
			panic(err)
		}
		root = h
	case cfg.OpenAI.APIKey != "" && cfg.OpenAI.ChatModel != "":
		root = openai.NewHandler(cfg.OpenAI.BaseURL, cfg.OpenAI.APIKey, cfg.OpenAI.ChatModel)
	default:
		elog.DefaultLogger.Warn("没有配置大模型，简历解析和匹配分析会降级")
		root = handler.DisabledHandler{}
	}
	return handler.NewCompositionHandler([]handler.Builder{log.NewHandler()}, root)
}

func initEmbeddingService(cfg Config) embedding.Service {
	if cfg.OpenAI.APIKey == "" {
		elog.DefaultLogger.Warn("没有配置向量模型，匹配只使用规则打分")
		return embedding.DisabledService{}
	}
	return embedding.NewOpenAIService(cfg.OpenAI.BaseURL, cfg.OpenAI.APIKey, cfg.OpenAI.EmbeddingModel)
}
