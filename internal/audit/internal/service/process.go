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

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/workaudit/config"
	"github.com/ecodeclub/workaudit/internal/audit/internal/domain"
	"github.com/ecodeclub/workaudit/internal/audit/internal/event"
	"github.com/ecodeclub/workaudit/internal/audit/internal/repository"
	"github.com/ecodeclub/workaudit/internal/audit/internal/service/feature"
	"github.com/ecodeclub/workaudit/internal/audit/internal/service/risk"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
	"golang.org/x/sync/errgroup"
)

const (
	ReasonWhiteUser = "作者在白名单中"
	ReasonWhiteWork = "作品在白名单中"
)

type ProcessStats struct {
	Batches int
	Total   int
	// Reviewed 新写入了审核记录
	Reviewed int
	// Refreshed 快照已经审核过，只刷新了访问数据
	Refreshed int
	// Skipped 作品已经不存在，任务保持待处理
	Skipped int
	Failed  int
}

type TaskProcessService interface {
	// Process 处理全部到期的待处理任务。
	// 单个任务失败只计数，只有查询任务列表失败才会返回 error
	Process(ctx context.Context, lex domain.Lexicon) (ProcessStats, error)
}

type taskProcessService struct {
	taskRepo      repository.TaskRepository
	auditRepo     repository.AuditRepository
	workRepo      repository.WorkRepository
	workInfoRepo  repository.WorkInfoRepository
	whitelistRepo repository.WhitelistRepository
	profileRepo   repository.ProfileRepository
	producer      event.AuditEventProducer
	cfg           config.AuditConfig
	logger        *elog.Component
}

func NewTaskProcessService(
	taskRepo repository.TaskRepository,
	auditRepo repository.AuditRepository,
	workRepo repository.WorkRepository,
	workInfoRepo repository.WorkInfoRepository,
	whitelistRepo repository.WhitelistRepository,
	profileRepo repository.ProfileRepository,
	producer event.AuditEventProducer,
	cfg config.AuditConfig) TaskProcessService {
	return &taskProcessService{
		taskRepo:      taskRepo,
		auditRepo:     auditRepo,
		workRepo:      workRepo,
		workInfoRepo:  workInfoRepo,
		whitelistRepo: whitelistRepo,
		profileRepo:   profileRepo,
		producer:      producer,
		cfg:           cfg.WithDefaults(),
		logger:        elog.DefaultLogger,
	}
}

type processOutcome string

const (
	outcomeReviewed  processOutcome = "reviewed"
	outcomeRefreshed processOutcome = "refreshed"
	outcomeNotFound  processOutcome = "not_found"
	outcomeError     processOutcome = "error"
)

func (s *taskProcessService) Process(ctx context.Context, lex domain.Lexicon) (ProcessStats, error) {
	var stats ProcessStats
	runID := shortuuid.New()
	start := time.Now()
	before := start.Add(-s.cfg.GraceWindow).UnixMilli()
	if lex.Empty() {
		s.logger.Warn("敏感词库为空，机审全部默认通过", elog.String("runId", runID))
	}

	var cursor domain.TaskCursor
	for {
		if ctx.Err() != nil {
			return stats, ctx.Err()
		}
		tasks, err := s.taskRepo.FindPending(ctx, s.cfg.WorkType, before, cursor, s.cfg.BatchSize)
		if err != nil {
			return stats, fmt.Errorf("查询待处理任务失败: %w", err)
		}
		if len(tasks) == 0 {
			break
		}
		stats.Batches++
		s.processBatch(ctx, runID, tasks, lex, &stats)
		cursor = tasks[len(tasks)-1].Cursor()
		if len(tasks) < s.cfg.BatchSize {
			break
		}
	}
	s.logger.Info("处理审核任务结束",
		elog.String("runId", runID),
		elog.Int("batches", stats.Batches),
		elog.Int("total", stats.Total),
		elog.Int("reviewed", stats.Reviewed),
		elog.Int("refreshed", stats.Refreshed),
		elog.Int("skipped", stats.Skipped),
		elog.Int("failed", stats.Failed),
		elog.FieldCost(time.Since(start)))
	return stats, nil
}

// processBatch 同一批任务并发处理，一批处理完再查下一批
func (s *taskProcessService) processBatch(ctx context.Context, runID string,
	tasks []domain.ReviewTask, lex domain.Lexicon, stats *ProcessStats) {
	outcomes := make([]processOutcome, len(tasks))
	var eg errgroup.Group
	for i, task := range tasks {
		eg.Go(func() error {
			outcome, err := s.processTask(ctx, task, lex)
			if err != nil {
				s.logger.Error("处理审核任务失败",
					elog.FieldErr(err),
					elog.String("runId", runID),
					elog.Int64("taskId", task.ID),
					elog.String("workId", task.WorkID))
			}
			outcomes[i] = outcome
			// 单个任务失败不影响同一批的其他任务
			return nil
		})
	}
	_ = eg.Wait()

	for _, outcome := range outcomes {
		stats.Total++
		processCounter.WithLabelValues(string(outcome)).Inc()
		switch outcome {
		case outcomeReviewed:
			stats.Reviewed++
		case outcomeRefreshed:
			stats.Refreshed++
		case outcomeNotFound:
			stats.Skipped++
		default:
			stats.Failed++
		}
	}
}

func (s *taskProcessService) processTask(ctx context.Context, task domain.ReviewTask, lex domain.Lexicon) (processOutcome, error) {
	record, err := s.auditRepo.FindRecord(ctx, task.WorkID, task.SnapshotTime)
	switch {
	case err == nil:
		// 已经审核过，可能是上一次写完记录之后更新汇总失败了
		return s.refresh(ctx, task, nil, record)
	case !errors.Is(err, repository.ErrRecordNotFound):
		return outcomeError, fmt.Errorf("查询审核记录失败: %w", err)
	}

	work, err := s.workRepo.FindWork(ctx, task.OwnerID, task.WorkID)
	if errors.Is(err, repository.ErrWorkNotFound) {
		s.logger.Warn("作品不存在，跳过", elog.Int64("taskId", task.ID), elog.String("workId", task.WorkID))
		return outcomeNotFound, nil
	}
	if err != nil {
		return outcomeError, fmt.Errorf("查询作品失败: %w", err)
	}

	features := s.features(ctx, work)
	err = s.workInfoRepo.Save(ctx, domain.WorkInfo{
		WorkID:    work.WorkID,
		OwnerID:   work.OwnerID,
		WorkType:  task.WorkType,
		Title:     work.Title,
		Cover:     work.Cover,
		Status:    work.Status,
		WorkCtime: work.Ctime,
		WorkUtime: work.Utime,
		Metadata:  work.Meta(),
		Features:  features,
	})
	if err != nil {
		return outcomeError, fmt.Errorf("保存作品信息失败: %w", err)
	}

	verdict, passType, err := s.judge(ctx, work, features, lex)
	if err != nil {
		return outcomeError, err
	}

	now := time.Now().UnixMilli()
	record = domain.AuditRecord{
		WorkID:        task.WorkID,
		OwnerID:       task.OwnerID,
		WorkType:      task.WorkType,
		SnapshotTime:  task.SnapshotTime,
		MachineResult: verdict.MachineResult(),
		PassType:      passType,
		RiskLevel:     verdict.Level,
		Reason:        verdict.Reason,
		ReviewTime:    now,
	}
	id, created, err := s.auditRepo.CreateRecord(ctx, record)
	if err != nil {
		return outcomeError, fmt.Errorf("保存审核记录失败: %w", err)
	}
	if !created {
		// 别的实例已经审核了这个快照
		existing, er := s.auditRepo.FindRecord(ctx, task.WorkID, task.SnapshotTime)
		if er != nil {
			return outcomeError, fmt.Errorf("查询审核记录失败: %w", er)
		}
		return s.refresh(ctx, task, work.Meta(), existing)
	}
	record.ID = id

	res := s.result(task, work.Meta())
	res.LastReviewTime = now
	res.LastAuditID = id
	if err = s.auditRepo.IncrResult(ctx, res); err != nil {
		return outcomeError, fmt.Errorf("更新审核汇总失败: %w", err)
	}
	if err = s.taskRepo.Complete(ctx, task.ID); err != nil {
		return outcomeError, fmt.Errorf("更新任务状态失败: %w", err)
	}
	verdictCounter.WithLabelValues(passType.String(), verdict.Level.String()).Inc()

	if er := s.producer.Produce(ctx, event.NewWorkAuditEvent(record)); er != nil {
		s.logger.Error("发送审核结果消息失败",
			elog.FieldErr(er),
			elog.Int64("auditId", id),
			elog.String("workId", task.WorkID))
	}
	return outcomeReviewed, nil
}

// refresh 快照已经审核过了，只刷新访问数据。
// 汇总还不存在的时候按照 record 补上
func (s *taskProcessService) refresh(ctx context.Context, task domain.ReviewTask,
	meta map[string]any, record domain.AuditRecord) (processOutcome, error) {
	res := s.result(task, meta)
	res.LastAuditID = record.ID
	res.LastReviewTime = record.ReviewTime
	err := s.auditRepo.RefreshResult(ctx, res)
	if err != nil {
		return outcomeError, fmt.Errorf("刷新审核汇总失败: %w", err)
	}
	if err = s.taskRepo.Complete(ctx, task.ID); err != nil {
		return outcomeError, fmt.Errorf("更新任务状态失败: %w", err)
	}
	return outcomeRefreshed, nil
}

// judge 白名单优先，不在白名单里面的才走机审
func (s *taskProcessService) judge(ctx context.Context, work domain.Work,
	features domain.Features, lex domain.Lexicon) (domain.Verdict, domain.PassType, error) {
	passType, err := s.whitelistRepo.Check(ctx, work.OwnerID, work.WorkID)
	if err != nil {
		return domain.Verdict{}, domain.PassTypeUnknown, fmt.Errorf("查询白名单失败: %w", err)
	}
	switch passType {
	case domain.PassTypeWhiteUser:
		return domain.Verdict{Passed: true, Level: domain.RiskLevelLow, Reason: ReasonWhiteUser}, passType, nil
	case domain.PassTypeWhiteWork:
		return domain.Verdict{Passed: true, Level: domain.RiskLevelLow, Reason: ReasonWhiteWork}, passType, nil
	}
	var f *domain.Features
	if features.Available() {
		f = &features
	}
	return risk.Score(work.Title, f, lex), domain.PassTypeMachine, nil
}

// features 内容拿不到的时候记录原因，用户信息拿不到的时候留空
func (s *taskProcessService) features(ctx context.Context, work domain.Work) domain.Features {
	var res domain.Features
	body, err := s.workRepo.Body(ctx, work)
	if err == nil {
		res, err = feature.Parse(body, work.OwnerID)
	}
	if err != nil {
		s.logger.Warn("获取作品特征失败", elog.FieldErr(err), elog.String("workId", work.WorkID))
		res = domain.Features{Err: err.Error()}
	}

	profile, err := s.profileRepo.Profile(ctx, work.OwnerID)
	if err != nil {
		s.logger.Warn("获取作者信息失败", elog.FieldErr(err), elog.Int64("ownerId", work.OwnerID))
		return res
	}
	res.UserInfo = &domain.UserInfo{
		Nickname:     profile.Nickname,
		RegisterTime: profile.RegisterTime,
	}
	return res
}

func (s *taskProcessService) result(task domain.ReviewTask, meta map[string]any) domain.AuditResult {
	return domain.AuditResult{
		WorkID:    task.WorkID,
		OwnerID:   task.OwnerID,
		WorkType:  task.WorkType,
		Pv:        task.Pv,
		Uv:        task.Uv,
		ShareCnt:  task.ShareCnt,
		HistoryPv: task.HistoryPv,
		HistoryUv: task.HistoryUv,
		Meta:      meta,
	}
}
