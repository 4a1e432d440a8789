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
	"github.com/ecodeclub/workaudit/internal/pkg/cronx"
	"github.com/gotomicro/ego/task/ecron"
	"github.com/gotomicro/ego/task/ejob"
	"github.com/prometheus/client_golang/prometheus"
)

func initJobMetrics() *cronx.MetricsBuilder {
	return cronx.NewMetricsBuilder(prometheus.DefaultRegisterer)
}

// initCronJobs 生成任务要在处理任务之前跑完，具体时间在配置文件里面
func initCronJobs(m *audit.Module, mb *cronx.MetricsBuilder) []ecron.Ecron {
	return []ecron.Ecron{
		ecron.Load("cron.generate").Build(ecron.WithJob(mb.Build(cronx.FuncJob(m.GenerateTasksJob), m.GenerateTasksJob.Name()))),
		ecron.Load("cron.process").Build(ecron.WithJob(mb.Build(cronx.FuncJob(m.ProcessTasksJob), m.ProcessTasksJob.Name()))),
	}
}

// initJobs 补数据的时候可以用 --job=audit_generate_tasks 手动跑一次
func initJobs(m *audit.Module, mb *cronx.MetricsBuilder) []ejob.Ejob {
	return []ejob.Ejob{
		cronx.OneShot(m.GenerateTasksJob.Name(), mb.Build(cronx.FuncJob(m.GenerateTasksJob), m.GenerateTasksJob.Name())),
		cronx.OneShot(m.ProcessTasksJob.Name(), mb.Build(cronx.FuncJob(m.ProcessTasksJob), m.ProcessTasksJob.Name())),
	}
}
