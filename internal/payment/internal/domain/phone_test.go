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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	testCases := []struct {
		phone  string
		want   string
		wantOk bool
	}{
		{phone: "0712345678", want: "254712345678", wantOk: true},
		{phone: "+254 712 345 678", want: "254712345678", wantOk: true},
		{phone: "254112345678", want: "254112345678", wantOk: true},
		{phone: "712345678", want: "254712345678", wantOk: true},
		{phone: "0812345678", wantOk: false},
		{phone: "25471234567a", wantOk: false},
		{phone: "12345", wantOk: false},
		{phone: "", wantOk: false},
	}
	for _, tc := range testCases {
		t.Run(tc.phone, func(t *testing.T) {
			got, ok := NormalizePhone(tc.phone)
			assert.Equal(t, tc.wantOk, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}
