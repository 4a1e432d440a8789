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

	"github.com/ecodeclub/workaudit/internal/audit/internal/repository"
	"github.com/ecodeclub/workaudit/internal/audit/internal/service"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*ProcessTasksJob)(nil)

// ProcessTasksJob 每次运行都重新加载敏感词，运行期间词库不变
type ProcessTasksJob struct {
	svc     service.TaskProcessService
	lexRepo repository.LexiconRepository
	timeout time.Duration
}

func NewProcessTasksJob(svc service.TaskProcessService, lexRepo repository.LexiconRepository, timeout time.Duration) *ProcessTasksJob {
	return &ProcessTasksJob{
		svc:     svc,
		lexRepo: lexRepo,
		timeout: timeout,
	}
}

func (p *ProcessTasksJob) Name() string {
	return "audit_process_tasks"
}

func (p *ProcessTasksJob) Run(ctx context.Context) error {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}
	lex, err := p.lexRepo.Load(ctx)
	if err != nil {
		return fmt.Errorf("加载敏感词失败: %w", err)
	}
	_, err = p.svc.Process(ctx, lex)
	if err != nil {
		return fmt.Errorf("处理审核任务失败: %w", err)
	}
	return nil
}
