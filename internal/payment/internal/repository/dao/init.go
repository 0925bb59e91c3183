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

	"github.com/ecodeclub/jobmatch/internal/pkg/mongox"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func InitCollections(db *mongo.Database) error {
	return mongox.CreateIndexes(context.Background(), db.Collection(CollectionPayments),
		mongo.IndexModel{
			Keys:    bson.D{{Key: "sn", Value: 1}},
			Options: options.Index().SetName("uk_sn").SetUnique(true),
		},
		mongo.IndexModel{
			Keys:    bson.D{{Key: "channel", Value: 1}, {Key: "provider_ref", Value: 1}},
			Options: options.Index().SetName("idx_channel_provider_ref"),
		},
		mongo.IndexModel{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "ctime", Value: 1}},
			Options: options.Index().SetName("idx_status_ctime"),
		})
}
