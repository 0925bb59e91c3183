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
	"fmt"
	"strings"
	"time"

	"github.com/lithammer/shortuuid/v4"
)

const snLength = 32

type TimestampGenerateFunc func(time.Time) int64

type ShortUUIDGenerateFunc func() string

// Generator 生成支付流水号、订单号之类的业务序列号
type Generator struct {
	prefix           string
	timestampGenFunc TimestampGenerateFunc
	shortUUIDGenFunc ShortUUIDGenerateFunc
}

func NewGeneratorWith(prefix string, timestampGen TimestampGenerateFunc, uuidGen ShortUUIDGenerateFunc) *Generator {
	return &Generator{
		prefix:           strings.ToUpper(prefix),
		timestampGenFunc: timestampGen,
		shortUUIDGenFunc: uuidGen,
	}
}

func NewGenerator(prefix string) *Generator {
	return NewGeneratorWith(prefix,
		func(t time.Time) int64 { return t.UnixMilli() },
		func() string { return shortuuid.New() })
}

// Generate 前缀 + 毫秒时间戳 + uid 后四位 + shortuuid，截断为 32 位
func (s *Generator) Generate(uid int64) string {
	if uid < 0 {
		uid = -uid
	}
	sn := fmt.Sprintf("%s%d%04d%s", s.prefix, s.timestampGenFunc(time.Now()), uid%10000, s.shortUUIDGenFunc())
	if len(sn) > snLength {
		return sn[:snLength]
	}
	return sn
}
