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

package audit

import (
	"github.com/ecodeclub/workaudit/internal/audit/internal/domain"
	"github.com/ecodeclub/workaudit/internal/audit/internal/event"
	"github.com/ecodeclub/workaudit/internal/audit/internal/job"
	"github.com/ecodeclub/workaudit/internal/audit/internal/repository"
	"github.com/ecodeclub/workaudit/internal/audit/internal/service"
	"github.com/ego-component/egorm"
	"github.com/olivere/elastic/v7"
	"github.com/tencentyun/cos-go-sdk-v5"
)

type (
	GenerateTasksJob    = job.GenerateTasksJob
	ProcessTasksJob     = job.ProcessTasksJob
	GenerateService     = service.TaskGenerateService
	ProcessService      = service.TaskProcessService
	LexiconRepository   = repository.LexiconRepository
	WhitelistRepository = repository.WhitelistRepository
	SensitiveWord       = domain.SensitiveWord
	RiskLevel           = domain.RiskLevel
	WorkAuditEvent      = event.WorkAuditEvent
)

const (
	RiskLevelLow        = domain.RiskLevelLow
	RiskLevelSuspicious = domain.RiskLevelSuspicious
	RiskLevelHigh       = domain.RiskLevelHigh

	AuditTopic = event.AuditTopic
)

// Sources 审核依赖的外部数据，都只读
type Sources struct {
	// WorkDB 按照作者分表的作品库
	WorkDB *egorm.Component
	// StatDB 作品累计访问数据
	StatDB *egorm.Component
	// UserDB 用户库
	UserDB *egorm.Component
	// ES 访问事件
	ES *elastic.Client
	// COS 作品内容
	COS *cos.Client
}

type Module struct {
	GenerateTasksJob *GenerateTasksJob
	ProcessTasksJob  *ProcessTasksJob
	LexiconRepo      LexiconRepository
	WhitelistRepo    WhitelistRepository
}
