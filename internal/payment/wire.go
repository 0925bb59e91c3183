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

package payment

import (
	"sync"

	"github.com/ecodeclub/jobmatch/internal/payment/internal/event"
	"github.com/ecodeclub/jobmatch/internal/payment/internal/job"
	"github.com/ecodeclub/jobmatch/internal/payment/internal/repository"
	"github.com/ecodeclub/jobmatch/internal/payment/internal/repository/dao"
	"github.com/ecodeclub/jobmatch/internal/payment/internal/service"
	"github.com/ecodeclub/jobmatch/internal/payment/internal/web"
	"github.com/ecodeclub/jobmatch/internal/payment/ioc"
	"github.com/ecodeclub/jobmatch/internal/pkg/sequencenumber"
	"github.com/ecodeclub/jobmatch/internal/pkg/snowflake"
	"github.com/ecodeclub/jobmatch/internal/promo"
	"github.com/ecodeclub/mq-api"
	"github.com/google/wire"
	"go.mongodb.org/mongo-driver/mongo"
)

func InitModule(db *mongo.Database, idGen snowflake.IDGenerator, q mq.MQ, promoModule *promo.Module) *Module {
	wire.Build(
		InitCollectionsOnce,
		repository.NewPaymentRepository,
		ioc.InitChannels,
		ioc.InitPrices,
		initSNGenerator,
		initPaymentEventProducer,
		wire.FieldsOf(new(*promo.Module), "Svc"),
		service.NewService,
		web.NewHandler,
		initSyncPendingPaymentsJob,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

var once = &sync.Once{}

func InitCollectionsOnce(db *mongo.Database, idGen snowflake.IDGenerator) dao.PaymentDAO {
	once.Do(func() {
		err := dao.InitCollections(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewMongoPaymentDAO(db, idGen)
}

func initSNGenerator() *sequencenumber.Generator {
	return sequencenumber.NewGenerator("pay")
}

func initPaymentEventProducer(q mq.MQ) event.PaymentEventProducer {
	p, err := event.NewPaymentEventProducer(q)
	if err != nil {
		panic(err)
	}
	return p
}

func initSyncPendingPaymentsJob(svc service.Service) *job.SyncPendingPaymentsJob {
	cfg := ioc.InitSyncConfig()
	return job.NewSyncPendingPaymentsJob(svc, cfg.Wait(), cfg.Timeout(), cfg.Limit)
}
