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

package promo

import (
	"github.com/ecodeclub/jobmatch/internal/promo/internal/domain"
	"github.com/ecodeclub/jobmatch/internal/promo/internal/service"
	"github.com/ecodeclub/jobmatch/internal/promo/internal/web"
)

type (
	Handler      = web.Handler
	AdminHandler = web.AdminHandler
	Service      = service.Service
	AdminService = service.AdminService
	PromoCode    = domain.PromoCode
	Quote        = domain.Quote
	DiscountType = domain.DiscountType
)

const (
	DiscountPercent = domain.DiscountPercent
	DiscountFixed   = domain.DiscountFixed
)

var (
	ErrPromoNotFound  = service.ErrPromoNotFound
	ErrPromoExpired   = service.ErrPromoExpired
	ErrPromoExhausted = service.ErrPromoExhausted
	ErrPromoInactive  = service.ErrPromoInactive
)

type Module struct {
	Svc      Service
	AdminSvc AdminService
	Hdl      *Handler
	AdminHdl *AdminHandler
}
