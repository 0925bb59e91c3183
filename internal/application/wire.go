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

package application

import (
	"sync"

	"github.com/ecodeclub/jobmatch/internal/application/internal/event"
	"github.com/ecodeclub/jobmatch/internal/application/internal/repository"
	"github.com/ecodeclub/jobmatch/internal/application/internal/repository/dao"
	"github.com/ecodeclub/jobmatch/internal/application/internal/service"
	"github.com/ecodeclub/jobmatch/internal/application/internal/web"
	"github.com/ecodeclub/jobmatch/internal/job"
	"github.com/ecodeclub/jobmatch/internal/matching"
	"github.com/ecodeclub/jobmatch/internal/pkg/snowflake"
	"github.com/ecodeclub/jobmatch/internal/resume"
	"github.com/ecodeclub/mq-api"
	"github.com/google/wire"
	"go.mongodb.org/mongo-driver/mongo"
)

func InitModule(db *mongo.Database, idGen snowflake.IDGenerator, q mq.MQ,
	jobModule *job.Module,
	resumeModule *resume.Module,
	matchingModule *matching.Module) *Module {
	wire.Build(
		InitCollectionsOnce,
		repository.NewApplicationRepository,
		initApplicationEventProducer,
		wire.FieldsOf(new(*job.Module), "Svc"),
		wire.FieldsOf(new(*resume.Module), "Svc"),
		wire.FieldsOf(new(*matching.Module), "Svc"),
		service.NewService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

var once = &sync.Once{}

func InitCollectionsOnce(db *mongo.Database, idGen snowflake.IDGenerator) dao.ApplicationDAO {
	once.Do(func() {
		err := dao.InitCollections(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewMongoApplicationDAO(db, idGen)
}

func initApplicationEventProducer(q mq.MQ) event.ApplicationEventProducer {
	p, err := event.NewApplicationEventProducer(q)
	if err != nil {
		panic(err)
	}
	return p
}
