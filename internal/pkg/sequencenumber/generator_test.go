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

package sequencenumber

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerator_Generate(t *testing.T) {
	sng := NewGeneratorWith("pay", func(_ time.Time) int64 { return 1234554320123 },
		func() string { return "nUfojcH2M5j2j3Tk5A1mf2" })

	testCases := []struct {
		name     string
		uid      int64
		expected string
	}{
		{
			name:     "最小uid",
			uid:      1,
			expected: "PAY12345543201230001nUfojcH2M5j2",
		},
		{
			name:     "uid超过四位",
			uid:      123456789,
			expected: "PAY12345543201236789nUfojcH2M5j2",
		},
		{
			name:     "uid为负数",
			uid:      -42,
			expected: "PAY12345543201230042nUfojcH2M5j2",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sn := sng.Generate(tc.uid)
			assert.Equal(t, tc.expected, sn)
			assert.Equal(t, snLength, len(sn))
		})
	}
}

func TestNewGenerator(t *testing.T) {
	sn := NewGenerator("MP").Generate(123456789)
	assert.True(t, strings.HasPrefix(sn, "MP"))
	assert.Contains(t, sn, "6789")
	assert.Equal(t, snLength, len(sn))
}
