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
	"fmt"
	"strings"
)

type Recipient struct {
	Uid   int64
	Name  string
	Email string
	Phone string
}

// DisplayName 没有填写姓名的时候用邮箱
func (r Recipient) DisplayName() string {
	if r.Name != "" {
		return r.Name
	}
	return r.Email
}

// SMSNumber 转成 +254 开头的格式，无法识别时返回 false
func (r Recipient) SMSNumber() (string, bool) {
	p := strings.NewReplacer(" ", "", "-", "").Replace(r.Phone)
	switch {
	case p == "":
		return "", false
	case strings.HasPrefix(p, "+"):
		return p, len(p) > 8
	case strings.HasPrefix(p, "254") && len(p) == 12:
		return "+" + p, true
	case strings.HasPrefix(p, "0") && len(p) == 10:
		return "+254" + p[1:], true
	default:
		return "", false
	}
}

type Welcome struct {
	Uid   int64
	Email string
	Name  string
	Role  string
}

type Application struct {
	Id          int64
	JobId       int64
	JobTitle    string
	Company     string
	ApplicantId int64
	RecruiterId int64
	OldStatus   string
	Status      string
	Note        string
	// MatchScore 0~1
	MatchScore float64
}

type Payment struct {
	SN        string
	Uid       int64
	Purpose   string
	Days      int
	Amount    int64
	Currency  string
	Channel   string
	PromoCode string
	// Phone 付款用的手机号，优先于资料里的号码
	Phone  string
	PaidAt int64
}

// FormatAmount 金额单位是分
func FormatAmount(amount int64, currency string) string {
	return fmt.Sprintf("%s %d.%02d", currency, amount/100, amount%100)
}

// StatusLabel in_review -> In review
func StatusLabel(status string) string {
	s := strings.ReplaceAll(status, "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
