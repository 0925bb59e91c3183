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

package ioc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowOrigin(t *testing.T) {
	allow := allowOrigin([]string{"jobmatch.co.ke"})
	testCases := []struct {
		name   string
		origin string
		want   bool
	}{
		{name: "本机开发", origin: "http://localhost:3000", want: true},
		{name: "本机IP", origin: "http://127.0.0.1:5173", want: true},
		{name: "配置的域名", origin: "https://jobmatch.co.ke", want: true},
		{name: "子域名", origin: "https://app.jobmatch.co.ke", want: true},
		{name: "大小写", origin: "https://APP.JobMatch.co.ke", want: true},
		{name: "域名后缀伪造", origin: "https://jobmatch.co.ke.evil.com", want: false},
		{name: "域名前缀伪造", origin: "https://evil-jobmatch.co.ke", want: false},
		{name: "localhost前缀伪造", origin: "http://localhost.evil.com", want: false},
		{name: "非https", origin: "http://jobmatch.co.ke", want: false},
		{name: "非法origin", origin: "null", want: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, allow(tc.origin))
		})
	}
}
