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
	"time"

	"github.com/ecodeclub/jobmatch/internal/payment/internal/domain"
	"github.com/gotomicro/ego/core/econf"
)

type SyncConfig struct {
	WaitMinutes    int `yaml:"waitMinutes"`
	TimeoutMinutes int `yaml:"timeoutMinutes"`
	Limit          int `yaml:"limit"`
}

func (c SyncConfig) Wait() time.Duration {
	return time.Duration(c.WaitMinutes) * time.Minute
}

func (c SyncConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutMinutes) * time.Minute
}

func InitPrices() map[domain.Purpose]domain.Price {
	var price domain.Price
	err := econf.UnmarshalKey("payment.premium", &price)
	if err != nil {
		panic(err)
	}
	if price.Amount <= 0 {
		// 默认 1000 KES 30 天
		price = domain.Price{Amount: 100000, Days: 30}
	}
	return map[domain.Purpose]domain.Price{
		domain.PurposePremium: price,
	}
}

func InitSyncConfig() SyncConfig {
	cfg := SyncConfig{
		WaitMinutes:    5,
		TimeoutMinutes: 30,
		Limit:          100,
	}
	err := econf.UnmarshalKey("payment.sync", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}
