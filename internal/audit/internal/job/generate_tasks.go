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

package job

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/workaudit/internal/audit/internal/service"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*GenerateTasksJob)(nil)

// GenerateTasksJob 按照当天的访问数据生成审核任务
type GenerateTasksJob struct {
	svc     service.TaskGenerateService
	timeout time.Duration
	now     func() time.Time
}

func NewGenerateTasksJob(svc service.TaskGenerateService, timeout time.Duration) *GenerateTasksJob {
	return &GenerateTasksJob{
		svc:     svc,
		timeout: timeout,
		now:     time.Now,
	}
}

func (g *GenerateTasksJob) Name() string {
	return "audit_generate_tasks"
}

func (g *GenerateTasksJob) Run(ctx context.Context) error {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}
	_, err := g.svc.Generate(ctx, g.now())
	if err != nil {
		return fmt.Errorf("生成审核任务失败: %w", err)
	}
	return nil
}
