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

package user

import (
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/jobmatch/internal/pkg/snowflake"
	"github.com/ecodeclub/jobmatch/internal/user/internal/event"
	"github.com/ecodeclub/jobmatch/internal/user/internal/event/consumer"
	"github.com/ecodeclub/jobmatch/internal/user/internal/repository"
	"github.com/ecodeclub/jobmatch/internal/user/internal/repository/cache"
	"github.com/ecodeclub/jobmatch/internal/user/internal/repository/dao"
	"github.com/ecodeclub/jobmatch/internal/user/internal/service"
	"github.com/ecodeclub/jobmatch/internal/user/internal/web"
	"github.com/ecodeclub/mq-api"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
	"go.mongodb.org/mongo-driver/mongo"
)

func InitModule(db *mongo.Database, ec ecache.Cache, q mq.MQ, idGen snowflake.IDGenerator) *Module {
	wire.Build(
		InitCollectionsOnce,
		cache.NewUserECache,
		repository.NewCachedUserRepository,
		initRegistrationProducer,
		initAdmins,
		newService,
		web.NewHandler,
		initPaymentEventConsumer,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

var once = &sync.Once{}

func InitCollectionsOnce(db *mongo.Database, idGen snowflake.IDGenerator) dao.UserDAO {
	once.Do(func() {
		err := dao.InitCollections(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewMongoUserDAO(db, idGen)
}

type admins []string

// initAdmins 管理员邮箱只能在配置文件里面指定
func initAdmins() admins {
	return econf.GetStringSlice("user.admins")
}

func newService(repo repository.UserRepository, p event.RegistrationEventProducer, a admins) service.UserService {
	return service.NewUserService(repo, p, a)
}

func initRegistrationProducer(q mq.MQ) event.RegistrationEventProducer {
	p, err := event.NewRegistrationEventProducer(q)
	if err != nil {
		panic(err)
	}
	return p
}

func initPaymentEventConsumer(q mq.MQ, svc service.UserService) *consumer.PaymentEventConsumer {
	c, err := consumer.NewPaymentEventConsumer(q, svc)
	if err != nil {
		panic(err)
	}
	return c
}
