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

package resume

import (
	"github.com/ecodeclub/jobmatch/internal/resume/internal/domain"
	"github.com/ecodeclub/jobmatch/internal/resume/internal/service"
	"github.com/ecodeclub/jobmatch/internal/resume/internal/web"
)

type (
	Handler    = web.Handler
	Service    = service.Service
	Resume     = domain.Resume
	Profile    = domain.Profile
	Education  = domain.Education
	Experience = domain.Experience
)

var (
	ErrResumeNotFound = service.ErrResumeNotFound
	// ParseKeywords 离线工具也用这套兜底解析
	ParseKeywords      = service.ParseKeywords
	NormalizeEducation = domain.NormalizeEducation
)

type Module struct {
	Svc Service
	Hdl *Handler
}
