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

package application

import (
	"github.com/ecodeclub/jobmatch/internal/application/internal/domain"
	"github.com/ecodeclub/jobmatch/internal/application/internal/event"
	"github.com/ecodeclub/jobmatch/internal/application/internal/service"
	"github.com/ecodeclub/jobmatch/internal/application/internal/web"
)

type (
	Handler          = web.Handler
	Service          = service.Service
	Application      = domain.Application
	Status           = domain.Status
	ApplicationEvent = event.ApplicationEvent
)

const (
	StatusApplied     = domain.StatusApplied
	StatusInReview    = domain.StatusInReview
	StatusShortlisted = domain.StatusShortlisted
	StatusInterview   = domain.StatusInterview
	StatusOffered     = domain.StatusOffered
	StatusHired       = domain.StatusHired
	StatusRejected    = domain.StatusRejected
	StatusWithdrawn   = domain.StatusWithdrawn
)

type Module struct {
	Svc Service
	Hdl *Handler
}
