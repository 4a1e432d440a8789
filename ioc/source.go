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
package ioc

import (
	"github.com/ecodeclub/workaudit/internal/audit"
	"github.com/olivere/elastic/v7"
	"github.com/tencentyun/cos-go-sdk-v5"
)

// InitSources 作品库、统计库和用户库都是业务方的库，审核只读
func InitSources(es *elastic.Client, client *cos.Client) *audit.Sources {
	return &audit.Sources{
		WorkDB: initDB("workdb"),
		StatDB: initDB("statdb"),
		UserDB: initDB("userdb"),
		ES:     es,
		COS:    client,
	}
}
