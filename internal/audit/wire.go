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

package audit

import (
	"sync"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/workaudit/config"
	"github.com/ecodeclub/workaudit/internal/audit/internal/event"
	"github.com/ecodeclub/workaudit/internal/audit/internal/job"
	"github.com/ecodeclub/workaudit/internal/audit/internal/repository"
	"github.com/ecodeclub/workaudit/internal/audit/internal/repository/cache"
	"github.com/ecodeclub/workaudit/internal/audit/internal/repository/dao"
	"github.com/ecodeclub/workaudit/internal/audit/internal/service"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

var daoSet = wire.NewSet(
	InitTablesOnce,
	dao.NewAuditGORMDAO,
	dao.NewWorkInfoGORMDAO,
	dao.NewWhitelistGORMDAO,
	dao.NewSensitiveWordGORMDAO,
	newWorkDAO,
	newWorkBodyDAO,
	newUserDAO,
	newTrafficDAO,
)

var repositorySet = wire.NewSet(
	cache.NewProfileECache,
	repository.NewTaskRepository,
	repository.NewAuditRepository,
	repository.NewWorkInfoRepository,
	repository.NewWhitelistRepository,
	repository.NewLexiconRepository,
	repository.NewWorkRepository,
	repository.NewTrafficRepository,
	repository.NewProfileRepository,
)

func InitModule(db *egorm.Component, src *Sources, q mq.MQ, ec ecache.Cache, cfg config.AuditConfig) (*Module, error) {
	wire.Build(
		daoSet,
		repositorySet,
		event.NewAuditEventProducer,
		service.NewTaskGenerateService,
		service.NewTaskProcessService,
		initGenerateTasksJob,
		initProcessTasksJob,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.TaskDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewTaskGORMDAO(db)
}

func newWorkDAO(src *Sources, cfg config.AuditConfig) dao.WorkDAO {
	return dao.NewWorkShardingDAO(src.WorkDB, src.StatDB, cfg.WithDefaults().ShardCount)
}

func newWorkBodyDAO(src *Sources, cfg config.AuditConfig) dao.WorkBodyDAO {
	return dao.NewWorkBodyCOSDAO(src.COS, cfg.WithDefaults().BodyPrefix)
}

func newUserDAO(src *Sources) dao.UserDAO {
	return dao.NewUserGORMDAO(src.UserDB)
}

func newTrafficDAO(src *Sources) dao.TrafficDAO {
	return dao.NewTrafficElasticDAO(src.ES, dao.TrafficEventIndexName, 1000)
}

func initGenerateTasksJob(svc service.TaskGenerateService) *job.GenerateTasksJob {
	return job.NewGenerateTasksJob(svc, 30*time.Minute)
}

func initProcessTasksJob(svc service.TaskProcessService, lexRepo repository.LexiconRepository) *job.ProcessTasksJob {
	return job.NewProcessTasksJob(svc, lexRepo, time.Hour)
}
