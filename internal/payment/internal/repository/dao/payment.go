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

package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ecodeclub/jobmatch/internal/pkg/mongox"
	"github.com/ecodeclub/jobmatch/internal/pkg/snowflake"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const CollectionPayments = "payments"

var (
	ErrRecordNotFound = mongo.ErrNoDocuments
	// ErrStatusConflict 状态已经被别人修改
	ErrStatusConflict = errors.New("支付状态已变更")
)

type PaymentDAO interface {
	Insert(ctx context.Context, p Payment) (int64, error)
	FindBySN(ctx context.Context, sn string) (Payment, error)
	FindByProviderRef(ctx context.Context, channel, ref string) (Payment, error)
	// UpdateProvider 记录渠道受理的结果
	UpdateProvider(ctx context.Context, sn, ref, redirectURL string) error
	// UpdateStatus 只有当前状态是 from 的时候才会更新
	UpdateStatus(ctx context.Context, sn, from, to string, paidAt int64) error
	// FindPending ctime 早于 ctime 并且还没有结果的支付
	FindPending(ctx context.Context, offset, limit int, ctime int64) ([]Payment, error)
	CountPending(ctx context.Context, ctime int64) (int64, error)
}

type MongoPaymentDAO struct {
	col   *mongo.Collection
	idGen snowflake.IDGenerator
}

func NewMongoPaymentDAO(db *mongo.Database, idGen snowflake.IDGenerator) PaymentDAO {
	return &MongoPaymentDAO{
		col:   db.Collection(CollectionPayments),
		idGen: idGen,
	}
}

func (dao *MongoPaymentDAO) Insert(ctx context.Context, p Payment) (int64, error) {
	now := time.Now().UnixMilli()
	p.Id = dao.idGen.NextID()
	p.Ctime = now
	p.Utime = now
	_, err := dao.col.InsertOne(ctx, p)
	return p.Id, err
}

func (dao *MongoPaymentDAO) FindBySN(ctx context.Context, sn string) (Payment, error) {
	var p Payment
	err := dao.col.FindOne(ctx, bson.M{"sn": sn}).Decode(&p)
	return p, err
}

func (dao *MongoPaymentDAO) FindByProviderRef(ctx context.Context, channel, ref string) (Payment, error) {
	var p Payment
	err := dao.col.FindOne(ctx, bson.M{"channel": channel, "provider_ref": ref}).Decode(&p)
	return p, err
}

func (dao *MongoPaymentDAO) UpdateProvider(ctx context.Context, sn, ref, redirectURL string) error {
	res, err := dao.col.UpdateOne(ctx, bson.M{"sn": sn}, bson.M{"$set": bson.M{
		"provider_ref": ref,
		"redirect_url": redirectURL,
		"utime":        time.Now().UnixMilli(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (dao *MongoPaymentDAO) UpdateStatus(ctx context.Context, sn, from, to string, paidAt int64) error {
	update := bson.M{
		"status": to,
		"utime":  time.Now().UnixMilli(),
	}
	if paidAt > 0 {
		update["paid_at"] = paidAt
	}
	res, err := dao.col.UpdateOne(ctx, bson.M{"sn": sn, "status": from}, bson.M{"$set": update})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrStatusConflict
	}
	return nil
}

func (dao *MongoPaymentDAO) FindPending(ctx context.Context, offset, limit int, ctime int64) ([]Payment, error) {
	return mongox.FindAll[Payment](ctx, dao.col, pendingFilter(ctime),
		mongox.Page(offset, limit, bson.D{{Key: "ctime", Value: 1}, {Key: "_id", Value: 1}}))
}

func (dao *MongoPaymentDAO) CountPending(ctx context.Context, ctime int64) (int64, error) {
	return dao.col.CountDocuments(ctx, pendingFilter(ctime))
}

func pendingFilter(ctime int64) bson.M {
	return bson.M{
		"status": bson.M{"$in": bson.A{"unpaid", "processing"}},
		"ctime":  bson.M{"$lte": ctime},
	}
}

type Payment struct {
	Id             int64  `bson:"_id"`
	SN             string `bson:"sn"`
	Uid            int64  `bson:"uid"`
	Purpose        string `bson:"purpose"`
	Days           int    `bson:"days"`
	OriginalAmount int64  `bson:"original_amount"`
	Discount       int64  `bson:"discount"`
	Amount         int64  `bson:"amount"`
	Currency       string `bson:"currency"`
	PromoCode      string `bson:"promo_code,omitempty"`
	Channel        string `bson:"channel"`
	Phone          string `bson:"phone,omitempty"`
	Status         string `bson:"status"`
	ProviderRef    string `bson:"provider_ref,omitempty"`
	RedirectURL    string `bson:"redirect_url,omitempty"`
	PaidAt         int64  `bson:"paid_at"`
	Ctime          int64  `bson:"ctime"`
	Utime          int64  `bson:"utime"`
}
