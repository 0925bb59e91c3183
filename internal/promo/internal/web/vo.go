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

package web

import "github.com/ecodeclub/jobmatch/internal/promo/internal/domain"

type ValidateReq struct {
	Code string `json:"code"`
	// Amount 最小货币单位
	Amount int64 `json:"amount"`
}

type Quote struct {
	Code     string `json:"code"`
	Amount   int64  `json:"amount"`
	Discount int64  `json:"discount"`
	Final    int64  `json:"final"`
}

type IdReq struct {
	Id int64 `json:"id"`
}

type Page struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type PromoCode struct {
	Id            int64  `json:"id"`
	Code          string `json:"code"`
	Description   string `json:"description"`
	DiscountType  string `json:"discountType"`
	DiscountValue int64  `json:"discountValue"`
	MaxUses       int64  `json:"maxUses"`
	UsedCount     int64  `json:"usedCount"`
	ExpiresAt     int64  `json:"expiresAt"`
	Active        bool   `json:"active"`
	Ctime         int64  `json:"ctime"`
	Utime         int64  `json:"utime"`
}

func (p PromoCode) toDomain() domain.PromoCode {
	return domain.PromoCode{
		Code:          p.Code,
		Description:   p.Description,
		DiscountType:  domain.DiscountType(p.DiscountType),
		DiscountValue: p.DiscountValue,
		MaxUses:       p.MaxUses,
		ExpiresAt:     p.ExpiresAt,
	}
}

func newPromoCode(p domain.PromoCode) PromoCode {
	return PromoCode{
		Id:            p.Id,
		Code:          p.Code,
		Description:   p.Description,
		DiscountType:  p.DiscountType.String(),
		DiscountValue: p.DiscountValue,
		MaxUses:       p.MaxUses,
		UsedCount:     p.UsedCount,
		ExpiresAt:     p.ExpiresAt,
		Active:        p.Active,
		Ctime:         p.Ctime,
		Utime:         p.Utime,
	}
}

type PromoCodeList struct {
	Total int64       `json:"total"`
	List  []PromoCode `json:"list"`
}
