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
	"fmt"
	"io"

	"github.com/tencentyun/cos-go-sdk-v5"
)

// 作品内容最大 32M，超过的认为是异常数据
const maxWorkBodySize = 32 << 20

type WorkBodyDAO interface {
	Get(ctx context.Context, ownerId int64, workId string, version int64) ([]byte, error)
}

type workBodyCOSDAO struct {
	client *cos.Client
	prefix string
}

// NewWorkBodyCOSDAO 作品内容存放在 {prefix}/{ownerId}/{workId}/{version}.json
func NewWorkBodyCOSDAO(client *cos.Client, prefix string) WorkBodyDAO {
	if prefix == "" {
		prefix = "works"
	}
	return &workBodyCOSDAO{
		client: client,
		prefix: prefix,
	}
}

func (d *workBodyCOSDAO) Get(ctx context.Context, ownerId int64, workId string, version int64) ([]byte, error) {
	resp, err := d.client.Object.Get(ctx, d.key(ownerId, workId, version), nil)
	if err != nil {
		return nil, fmt.Errorf("获取作品内容失败: %w", err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxWorkBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("读取作品内容失败: %w", err)
	}
	if len(data) > maxWorkBodySize {
		return nil, fmt.Errorf("作品内容过大 %s", workId)
	}
	return data, nil
}

func (d *workBodyCOSDAO) key(ownerId int64, workId string, version int64) string {
	return fmt.Sprintf("%s/%d/%s/%d.json", d.prefix, ownerId, workId, version)
}
