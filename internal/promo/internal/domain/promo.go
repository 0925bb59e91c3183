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

package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type DiscountType string

const (
	// DiscountPercent DiscountValue 是 1-100 的百分比
	DiscountPercent DiscountType = "percent"
	// DiscountFixed DiscountValue 是最小货币单位的金额
	DiscountFixed DiscountType = "fixed"
)

func (t DiscountType) String() string {
	return string(t)
}

var (
	ErrInvalidPromo   = errors.New("优惠码参数非法")
	ErrPromoExpired   = errors.New("优惠码已过期")
	ErrPromoExhausted = errors.New("优惠码已用完")
	ErrPromoInactive  = errors.New("优惠码已停用")
)

type PromoCode struct {
	Id            int64
	Code          string
	Description   string
	DiscountType  DiscountType
	DiscountValue int64
	// MaxUses 为 0 表示不限次数
	MaxUses   int64
	UsedCount int64
	// ExpiresAt 毫秒，为 0 表示永不过期
	ExpiresAt int64
	Active    bool
	Ctime     int64
	Utime     int64
}

func (p PromoCode) Validate() error {
	switch p.DiscountType {
	case DiscountPercent:
		if p.DiscountValue <= 0 || p.DiscountValue > 100 {
			return fmt.Errorf("%w: 百分比必须在 1-100 之间", ErrInvalidPromo)
		}
	case DiscountFixed:
		if p.DiscountValue <= 0 {
			return fmt.Errorf("%w: 减免金额必须大于 0", ErrInvalidPromo)
		}
	default:
		return fmt.Errorf("%w: 未知的优惠类型 %s", ErrInvalidPromo, p.DiscountType)
	}
	if p.MaxUses < 0 {
		return fmt.Errorf("%w: 使用次数不能为负数", ErrInvalidPromo)
	}
	return nil
}

// Usable 检查在 now 这个时刻能不能使用
func (p PromoCode) Usable(now time.Time) error {
	switch {
	case !p.Active:
		return ErrPromoInactive
	case p.ExpiresAt > 0 && p.ExpiresAt <= now.UnixMilli():
		return ErrPromoExpired
	case p.MaxUses > 0 && p.UsedCount >= p.MaxUses:
		return ErrPromoExhausted
	}
	return nil
}

// Discount 优惠金额不会超过 amount
func (p PromoCode) Discount(amount int64) int64 {
	if amount <= 0 {
		return 0
	}
	var d int64
	switch p.DiscountType {
	case DiscountPercent:
		d = amount * p.DiscountValue / 100
	case DiscountFixed:
		d = p.DiscountValue
	}
	return max(min(d, amount), 0)
}

func (p PromoCode) Quote(amount int64) Quote {
	d := p.Discount(amount)
	return Quote{
		Code:     p.Code,
		Amount:   amount,
		Discount: d,
		Final:    amount - d,
	}
}

type Quote struct {
	Code     string
	Amount   int64
	Discount int64
	Final    int64
}

// NormalizeCode 优惠码不区分大小写
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
