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

//go:build wireinject

package notification

import (
	"github.com/ecodeclub/jobmatch/internal/notification/internal/event/consumer"
	"github.com/ecodeclub/jobmatch/internal/notification/internal/service"
	"github.com/ecodeclub/jobmatch/internal/notification/ioc"
	"github.com/ecodeclub/jobmatch/internal/user"
	"github.com/ecodeclub/mq-api"
	"github.com/google/wire"
)

func InitModule(q mq.MQ, userModule *user.Module) *Module {
	wire.Build(
		wire.FieldsOf(new(*user.Module), "Svc"),
		ioc.InitEmailService,
		ioc.InitSMSClient,
		service.NewService,
		initRegistrationEventConsumer,
		initApplicationEventConsumer,
		initPaymentEventConsumer,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

func initRegistrationEventConsumer(q mq.MQ, svc service.Service) *consumer.RegistrationEventConsumer {
	c, err := consumer.NewRegistrationEventConsumer(q, svc)
	if err != nil {
		panic(err)
	}
	return c
}

func initApplicationEventConsumer(q mq.MQ, svc service.Service) *consumer.ApplicationEventConsumer {
	c, err := consumer.NewApplicationEventConsumer(q, svc)
	if err != nil {
		panic(err)
	}
	return c
}

func initPaymentEventConsumer(q mq.MQ, svc service.Service) *consumer.PaymentEventConsumer {
	c, err := consumer.NewPaymentEventConsumer(q, svc)
	if err != nil {
		panic(err)
	}
	return c
}
