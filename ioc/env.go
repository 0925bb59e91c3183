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
	"os"
	"strconv"

	"github.com/gotomicro/ego/core/econf"
)

// envOverrides 环境变量 -> 配置项，密钥不需要写进配置文件
var envOverrides = []struct {
	env string
	key string
}{
	{env: "MONGO_URI", key: "mongo.uri"},
	{env: "REDIS_ADDR", key: "redis.addr"},
	{env: "GEMINI_API_KEY", key: "ai.gemini.apiKey"},
	{env: "ZHIPU_API_KEY", key: "ai.zhipu.apiKey"},
	{env: "OPENAI_API_KEY", key: "ai.openai.apiKey"},
	{env: "OPENAI_BASE_URL", key: "ai.openai.baseURL"},
	{env: "SMTP_HOST", key: "notification.email.host"},
	{env: "SMTP_USER", key: "notification.email.username"},
	{env: "SMTP_PASSWORD", key: "notification.email.password"},
	{env: "PESAPAL_CONSUMER_KEY", key: "payment.pesapal.consumerKey"},
	{env: "PESAPAL_CONSUMER_SECRET", key: "payment.pesapal.consumerSecret"},
	{env: "PESAPAL_IPN_ID", key: "payment.pesapal.ipnId"},
	{env: "MPESA_CONSUMER_KEY", key: "payment.mpesa.consumerKey"},
	{env: "MPESA_CONSUMER_SECRET", key: "payment.mpesa.consumerSecret"},
	{env: "MPESA_SHORTCODE", key: "payment.mpesa.shortcode"},
	{env: "MPESA_PASSKEY", key: "payment.mpesa.passkey"},
	{env: "SMS_API_KEY", key: "notification.sms.apiKey"},
	{env: "SMS_USERNAME", key: "notification.sms.username"},
	{env: "S3_ENDPOINT", key: "objstore.s3.endpoint"},
	{env: "S3_ACCESS_KEY", key: "objstore.s3.accessKey"},
	{env: "S3_SECRET_KEY", key: "objstore.s3.secretKey"},
	{env: "S3_BUCKET", key: "objstore.s3.bucket"},
}

// ApplyEnvOverrides 需要在 ego.New 加载配置之后，初始化模块之前调用
func ApplyEnvOverrides() {
	for _, o := range envOverrides {
		if v, ok := os.LookupEnv(o.env); ok && v != "" {
			econf.Set(o.key, v)
		}
	}
	if v := os.Getenv("SMTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			panic("SMTP_PORT 必须是数字: " + v)
		}
		econf.Set("notification.email.port", port)
	}
}
