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

const CollectionApplications = "applications"

var (
	ErrDuplicateApplication = errors.New("重复投递")
	ErrRecordNotFound       = mongo.ErrNoDocuments
	// ErrStatusConflict 更新时状态已经被别人改掉了
	ErrStatusConflict = errors.New("投递状态已变化")
)

type ApplicationDAO interface {
	Insert(ctx context.Context, a Application) (int64, error)
	FindById(ctx context.Context, id int64) (Application, error)
	ListByApplicant(ctx context.Context, uid int64, offset, limit int) ([]Application, error)
	CountByApplicant(ctx context.Context, uid int64) (int64, error)
	// ListByJob 按照匹配分数从高到低
	ListByJob(ctx context.Context, jobId int64, offset, limit int) ([]Application, error)
	CountByJob(ctx context.Context, jobId int64) (int64, error)
	// UpdateStatus 只有当前状态还是 from 的时候才更新
	UpdateStatus(ctx context.Context, id int64, from, to, note string) error
}

type MongoApplicationDAO struct {
	col   *mongo.Collection
	idGen snowflake.IDGenerator
}

func NewMongoApplicationDAO(db *mongo.Database, idGen snowflake.IDGenerator) ApplicationDAO {
	return &MongoApplicationDAO{
		col:   db.Collection(CollectionApplications),
		idGen: idGen,
	}
}

func (dao *MongoApplicationDAO) Insert(ctx context.Context, a Application) (int64, error) {
	now := time.Now().UnixMilli()
	a.Id = dao.idGen.NextID()
	a.Ctime = now
	a.Utime = now
	_, err := dao.col.InsertOne(ctx, a)
	if mongox.IsDuplicateKey(err) {
		return 0, ErrDuplicateApplication
	}
	return a.Id, err
}

func (dao *MongoApplicationDAO) FindById(ctx context.Context, id int64) (Application, error) {
	var a Application
	err := dao.col.FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	return a, err
}

func (dao *MongoApplicationDAO) ListByApplicant(ctx context.Context, uid int64, offset, limit int) ([]Application, error) {
	opts := mongox.Page(offset, limit, bson.D{{Key: "ctime", Value: -1}, {Key: "_id", Value: -1}})
	return mongox.FindAll[Application](ctx, dao.col, bson.M{"applicant_id": uid}, opts)
}

func (dao *MongoApplicationDAO) CountByApplicant(ctx context.Context, uid int64) (int64, error) {
	return dao.col.CountDocuments(ctx, bson.M{"applicant_id": uid})
}

func (dao *MongoApplicationDAO) ListByJob(ctx context.Context, jobId int64, offset, limit int) ([]Application, error) {
	opts := mongox.Page(offset, limit, bson.D{{Key: "match_score", Value: -1}, {Key: "_id", Value: 1}})
	return mongox.FindAll[Application](ctx, dao.col, bson.M{"job_id": jobId}, opts)
}

func (dao *MongoApplicationDAO) CountByJob(ctx context.Context, jobId int64) (int64, error) {
	return dao.col.CountDocuments(ctx, bson.M{"job_id": jobId})
}

func (dao *MongoApplicationDAO) UpdateStatus(ctx context.Context, id int64, from, to, note string) error {
	res, err := dao.col.UpdateOne(ctx,
		bson.M{"_id": id, "status": from},
		bson.M{"$set": bson.M{
			"status": to,
			"note":   note,
			"utime":  time.Now().UnixMilli(),
		}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrStatusConflict
	}
	return nil
}

type Application struct {
	Id          int64         `bson:"_id"`
	JobId       int64         `bson:"job_id"`
	JobTitle    string        `bson:"job_title"`
	Company     string        `bson:"company"`
	RecruiterId int64         `bson:"recruiter_id"`
	ApplicantId int64         `bson:"applicant_id"`
	ResumeId    int64         `bson:"resume_id"`
	CoverLetter string        `bson:"cover_letter"`
	Status      string        `bson:"status"`
	MatchScore  float64       `bson:"match_score"`
	Match       MatchSnapshot `bson:"match"`
	Note        string        `bson:"note"`
	Ctime       int64         `bson:"ctime"`
	Utime       int64         `bson:"utime"`
}

type MatchSnapshot struct {
	Similarity    float64  `bson:"similarity"`
	FeatureScore  float64  `bson:"feature_score"`
	LLMScore      float64  `bson:"llm_score"`
	MatchedSkills []string `bson:"matched_skills"`
	MissingSkills []string `bson:"missing_skills"`
	Strategy      string   `bson:"strategy"`
}
