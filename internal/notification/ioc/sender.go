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

	"github.com/ecodeclub/ekit/retry"
	"github.com/ecodeclub/jobmatch/internal/email"
	"github.com/ecodeclub/jobmatch/internal/email/gomail"
	emailretry "github.com/ecodeclub/jobmatch/internal/email/retry"
	"github.com/ecodeclub/jobmatch/internal/sms/client"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
)

// InitEmailService 没有配置 SMTP 的时候退化为打印日志
func InitEmailService() email.Service {
	var cfg gomail.Config
	err := econf.UnmarshalKey("notification.email", &cfg)
	if err != nil {
		panic(err)
	}
	if cfg.Host == "" {
		elog.DefaultLogger.Warn("没有配置 SMTP，邮件只会输出到日志")
		return email.NewConsoleService()
	}
	return emailretry.NewService(gomail.NewSMTPService(cfg), func() retry.Strategy {
		s, _ := retry.NewExponentialBackoffRetryStrategy(time.Second, 10*time.Second, 3)
		return s
	})
}

func InitSMSClient() client.Client {
	var cfg client.AfricasTalkingConfig
	err := econf.UnmarshalKey("notification.sms", &cfg)
	if err != nil {
		panic(err)
	}
	if cfg.APIKey == "" {
		elog.DefaultLogger.Warn("没有配置短信 API key，短信只会输出到日志")
		return client.NewConsoleClient()
	}
	return client.NewAfricasTalkingClient(cfg)
}
