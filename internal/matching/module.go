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

package matching

import (
	"github.com/ecodeclub/jobmatch/internal/matching/internal/domain"
	"github.com/ecodeclub/jobmatch/internal/matching/internal/service"
	"github.com/ecodeclub/jobmatch/internal/matching/internal/web"
)

type (
	Handler   = web.Handler
	Service   = service.Service
	Result    = domain.Result
	Features  = domain.Features
	Weights   = domain.Weights
	Strategy  = domain.Strategy
	Candidate = domain.Candidate
	Target    = domain.Target
)

const (
	StrategyBlended            = domain.StrategyBlended
	StrategySimilarityFeatures = domain.StrategySimilarityFeatures
	StrategyFeaturesOnly       = domain.StrategyFeaturesOnly
)

var (
	ErrNoResume    = service.ErrNoResume
	DefaultWeights = service.DefaultWeights
	// 下面几个给离线工具用
	Evaluate     = service.Evaluate
	Cosine       = service.Cosine
	NewCandidate = service.NewCandidate
	NewTarget    = service.NewTarget
	EmbedTexts   = service.EmbedTexts
)

type Module struct {
	Svc Service
	Hdl *Handler
}
