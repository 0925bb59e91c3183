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

package ioc

import (
	"github.com/ecodeclub/jobmatch/internal/ai"
	"github.com/ecodeclub/jobmatch/internal/application"
	"github.com/ecodeclub/jobmatch/internal/job"
	"github.com/ecodeclub/jobmatch/internal/matching"
	"github.com/ecodeclub/jobmatch/internal/notification"
	"github.com/ecodeclub/jobmatch/internal/payment"
	"github.com/ecodeclub/jobmatch/internal/promo"
	"github.com/ecodeclub/jobmatch/internal/resume"
	"github.com/ecodeclub/jobmatch/internal/user"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitMongoDB, InitRedis, InitCache, InitMQ, InitIDGenerator, InitObjectStore)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		InitSession,
		user.InitModule,
		wire.FieldsOf(new(*user.Module), "Hdl"),
		job.InitModule,
		wire.FieldsOf(new(*job.Module), "Hdl"),
		ai.InitModule,
		resume.InitModule,
		wire.FieldsOf(new(*resume.Module), "Hdl"),
		matching.InitModule,
		wire.FieldsOf(new(*matching.Module), "Hdl"),
		application.InitModule,
		wire.FieldsOf(new(*application.Module), "Hdl"),
		promo.InitModule,
		wire.FieldsOf(new(*promo.Module), "Hdl", "AdminHdl"),
		payment.InitModule,
		wire.FieldsOf(new(*payment.Module), "Hdl"),
		notification.InitModule,
		initGinxServer,
		initCronJobs,
		initMQConsumers)
	return new(App), nil
}
