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

package snowflake

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/snowflake"
)

const maxNode int64 = 1023

var ErrExceedNode = errors.New("node超出限制")

// IDGenerator 为 MongoDB 文档生成 int64 主键
type IDGenerator interface {
	NextID() int64
}

type NodeIDGenerator struct {
	node *snowflake.Node
}

func NewNodeIDGenerator(nodeID int64) (*NodeIDGenerator, error) {
	if nodeID < 0 || nodeID > maxNode {
		return nil, fmt.Errorf("%w: nodeID=%d", ErrExceedNode, nodeID)
	}
	n, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, err
	}
	return &NodeIDGenerator{node: n}, nil
}

func (g *NodeIDGenerator) NextID() int64 {
	return g.node.Generate().Int64()
}

// NodeOf 返回生成该 id 的节点，排查问题时用
func NodeOf(id int64) int64 {
	return snowflake.ID(id).Node()
}
