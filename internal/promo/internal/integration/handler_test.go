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

//go:build e2e

package integration

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobmatch/internal/pkg/middleware"
	"github.com/ecodeclub/jobmatch/internal/pkg/snowflake"
	"github.com/ecodeclub/jobmatch/internal/promo"
	"github.com/ecodeclub/jobmatch/internal/promo/internal/errs"
	"github.com/ecodeclub/jobmatch/internal/promo/internal/repository/dao"
	"github.com/ecodeclub/jobmatch/internal/promo/internal/web"
	"github.com/ecodeclub/jobmatch/internal/test"
	testioc "github.com/ecodeclub/jobmatch/internal/test/ioc"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type HandlerTestSuite struct {
	suite.Suite
	db     *mongo.Database
	module *promo.Module
	server *egin.Component
}

func (s *HandlerTestSuite) SetupSuite() {
	s.db = testioc.InitMongoDB()
	idGen, err := snowflake.NewNodeIDGenerator(5)
	require.NoError(s.T(), err)
	s.module = promo.InitModule(s.db, idGen)

	econf.Set("server", map[string]any{"debug": true})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid:  1,
			Data: map[string]string{middleware.RoleClaimKey: "admin"},
		}))
	})
	s.module.Hdl.PrivateRoutes(server.Engine)
	s.module.AdminHdl.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *HandlerTestSuite) TearDownTest() {
	_, err := s.db.Collection(dao.CollectionPromoCodes).DeleteMany(context.Background(), bson.M{})
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TestCreateAndValidate() {
	t := s.T()
	created := post[web.PromoCode](t, s.server, "/promo/admin/create", web.PromoCode{
		Description:   "上线优惠",
		DiscountType:  "percent",
		DiscountValue: 25,
		MaxUses:       10,
	})
	require.Equal(t, 0, created.Code)
	code := created.Data.Code
	assert.Len(t, code, 8)
	assert.True(t, created.Data.Active)

	quote := post[web.Quote](t, s.server, "/promo/validate", web.ValidateReq{Code: code, Amount: 100000})
	require.Equal(t, 0, quote.Code)
	assert.Equal(t, web.Quote{Code: code, Amount: 100000, Discount: 25000, Final: 75000}, quote.Data)

	dup := post[any](t, s.server, "/promo/admin/create", web.PromoCode{
		Code: code, DiscountType: "fixed", DiscountValue: 100,
	})
	assert.Equal(t, errs.DuplicateCode.Code, dup.Code)

	res := post[any](t, s.server, "/promo/admin/deactivate", web.IdReq{Id: created.Data.Id})
	require.Equal(t, 0, res.Code)
	inactive := post[any](t, s.server, "/promo/validate", web.ValidateReq{Code: code, Amount: 100000})
	assert.Equal(t, errs.PromoInactive.Code, inactive.Code)

	list := post[web.PromoCodeList](t, s.server, "/promo/admin/list", web.Page{Limit: 10})
	require.Equal(t, 0, list.Code)
	assert.Equal(t, int64(1), list.Data.Total)
}

func (s *HandlerTestSuite) TestValidateErrors() {
	t := s.T()
	res := post[any](t, s.server, "/promo/validate", web.ValidateReq{Code: "NOTEXIST", Amount: 100})
	assert.Equal(t, errs.PromoNotFound.Code, res.Code)

	created := post[web.PromoCode](t, s.server, "/promo/admin/create", web.PromoCode{
		Code: "expired", DiscountType: "fixed", DiscountValue: 100,
		ExpiresAt: time.Now().Add(-time.Hour).UnixMilli(),
	})
	require.Equal(t, 0, created.Code)
	assert.Equal(t, "EXPIRED", created.Data.Code)
	res = post[any](t, s.server, "/promo/validate", web.ValidateReq{Code: "expired", Amount: 100})
	assert.Equal(t, errs.PromoExpired.Code, res.Code)

	res = post[any](t, s.server, "/promo/admin/create", web.PromoCode{DiscountType: "percent", DiscountValue: 0})
	assert.Equal(t, errs.InvalidPromo.Code, res.Code)
}

// 并发兑换不会超过最大次数
func (s *HandlerTestSuite) TestRedeemConcurrently() {
	t := s.T()
	ctx := context.Background()
	p, err := s.module.AdminSvc.Create(ctx, promo.PromoCode{
		Code: "LIMITED", DiscountType: promo.DiscountFixed, DiscountValue: 100, MaxUses: 3,
	})
	require.NoError(t, err)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		success int
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if er := s.module.Svc.Redeem(ctx, p.Code); er == nil {
				mu.Lock()
				success++
				mu.Unlock()
			} else {
				assert.ErrorIs(t, er, promo.ErrPromoExhausted)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 3, success)

	var entity dao.PromoCode
	err = s.db.Collection(dao.CollectionPromoCodes).FindOne(ctx, bson.M{"code": "LIMITED"}).Decode(&entity)
	require.NoError(t, err)
	assert.Equal(t, int64(3), entity.UsedCount)
}

func post[T any](t *testing.T, server *egin.Component, path string, body any) test.Result[T] {
	req, err := http.NewRequest(http.MethodPost, path, iox.NewJSONReader(body))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[T]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	return recorder.MustScan()
}

func TestPromoHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
