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
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatus_CanTransitionTo(t *testing.T) {
	testCases := []struct {
		from Status
		to   Status
		want bool
	}{
		{from: StatusProcessing, to: StatusPaidSuccess, want: true},
		{from: StatusUnpaid, to: StatusTimeoutClosed, want: true},
		{from: StatusProcessing, to: StatusPaidFailed, want: true},
		{from: StatusProcessing, to: StatusUnpaid, want: false},
		{from: StatusPaidSuccess, to: StatusPaidFailed, want: false},
		{from: StatusTimeoutClosed, to: StatusPaidSuccess, want: false},
	}
	for _, tc := range testCases {
		t.Run(tc.from.String()+"->"+tc.to.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestPayment_Expired(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)
	p := Payment{Ctime: now.Add(-31 * time.Minute).UnixMilli()}
	assert.True(t, p.Expired(now, 30*time.Minute))
	assert.False(t, p.Expired(now, time.Hour))
}
