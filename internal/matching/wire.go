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

package matching

import (
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/jobmatch/internal/ai"
	"github.com/ecodeclub/jobmatch/internal/job"
	"github.com/ecodeclub/jobmatch/internal/matching/internal/domain"
	"github.com/ecodeclub/jobmatch/internal/matching/internal/repository/cache"
	"github.com/ecodeclub/jobmatch/internal/matching/internal/service"
	"github.com/ecodeclub/jobmatch/internal/matching/internal/web"
	"github.com/ecodeclub/jobmatch/internal/resume"
	"github.com/ecodeclub/jobmatch/internal/user"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule(ec ecache.Cache,
	aiModule *ai.Module,
	resumeModule *resume.Module,
	jobModule *job.Module,
	userModule *user.Module) *Module {
	wire.Build(
		wire.FieldsOf(new(*ai.Module), "Svc", "EmbeddingSvc"),
		wire.FieldsOf(new(*resume.Module), "Svc"),
		wire.FieldsOf(new(*job.Module), "Svc"),
		wire.FieldsOf(new(*user.Module), "Svc"),
		cache.NewResultECache,
		service.NewLLMAnalyzer,
		initWeights,
		service.NewService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

// initWeights 没有配置时使用默认权重
func initWeights() domain.Weights {
	var w domain.Weights
	err := econf.UnmarshalKey("matching.weights", &w)
	if err != nil || w.Similarity+w.Features+w.LLM <= 0 {
		return service.DefaultWeights
	}
	return w
}
