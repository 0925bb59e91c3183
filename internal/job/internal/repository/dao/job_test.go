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
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestFilter_toBSON(t *testing.T) {
	testCases := []struct {
		name   string
		filter Filter
		want   bson.M
	}{
		{
			name:   "空过滤条件",
			filter: Filter{},
			want:   bson.M{},
		},
		{
			name:   "招聘者的岗位",
			filter: Filter{RecruiterId: 12},
			want:   bson.M{"recruiter_id": int64(12)},
		},
		{
			name: "关键字需要转义",
			filter: Filter{
				Status:  "open",
				Keyword: "C++",
				Remote:  true,
			},
			want: bson.M{
				"status": "open",
				"remote": true,
				"$or": bson.A{
					bson.M{"title": bson.M{"$regex": `C\+\+`, "$options": "i"}},
					bson.M{"company": bson.M{"$regex": `C\+\+`, "$options": "i"}},
					bson.M{"description": bson.M{"$regex": `C\+\+`, "$options": "i"}},
				},
			},
		},
		{
			name:   "类型和地点",
			filter: Filter{Type: "internship", Location: "Nairobi"},
			want: bson.M{
				"type":     "internship",
				"location": bson.M{"$regex": "Nairobi", "$options": "i"},
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.filter.toBSON())
		})
	}
}
