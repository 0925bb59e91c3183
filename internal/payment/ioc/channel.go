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
	"github.com/ecodeclub/jobmatch/internal/payment/internal/service"
	"github.com/ecodeclub/jobmatch/internal/payment/internal/service/mpesa"
	"github.com/ecodeclub/jobmatch/internal/payment/internal/service/pesapal"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
)

// InitChannels 只启用配置了密钥的渠道
func InitChannels() []service.Channel {
	var res []service.Channel
	if cfg := InitPesapalConfig(); cfg.ConsumerKey != "" {
		res = append(res, pesapal.NewClient(cfg))
	} else {
		elog.DefaultLogger.Warn("没有配置 pesapal，该渠道不可用")
	}
	if cfg := InitMpesaConfig(); cfg.ConsumerKey != "" {
		res = append(res, mpesa.NewClient(cfg))
	} else {
		elog.DefaultLogger.Warn("没有配置 mpesa，该渠道不可用")
	}
	return res
}

func InitPesapalConfig() pesapal.Config {
	var cfg pesapal.Config
	err := econf.UnmarshalKey("payment.pesapal", &cfg)
	if err != nil {
		panic(err)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://cybqa.pesapal.com/pesapalv3"
	}
	return cfg
}

func InitMpesaConfig() mpesa.Config {
	var cfg mpesa.Config
	err := econf.UnmarshalKey("payment.mpesa", &cfg)
	if err != nil {
		panic(err)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://sandbox.safaricom.co.ke"
	}
	return cfg
}
