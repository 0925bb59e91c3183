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

import "strings"

// NormalizePhone 把肯尼亚手机号转成 2547XXXXXXXX 这种格式，不合法时返回 false
func NormalizePhone(phone string) (string, bool) {
	p := strings.NewReplacer(" ", "", "-", "", "+", "").Replace(strings.TrimSpace(phone))
	switch {
	case len(p) == 10 && p[0] == '0':
		p = "254" + p[1:]
	case len(p) == 9 && (p[0] == '7' || p[0] == '1'):
		p = "254" + p
	}
	if len(p) != 12 || !strings.HasPrefix(p, "254") {
		return "", false
	}
	for _, c := range p {
		if c < '0' || c > '9' {
			return "", false
		}
	}
	if p[3] != '7' && p[3] != '1' {
		return "", false
	}
	return p, true
}
