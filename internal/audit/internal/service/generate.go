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
	"strconv"
	"time"

	"github.com/ecodeclub/workaudit/config"
	"github.com/ecodeclub/workaudit/internal/audit/internal/domain"
	"github.com/ecodeclub/workaudit/internal/audit/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
)

var ErrInvalidWorkID = errors.New("作品 ID 非法")

type GenerateStats struct {
	// Total 当天有访问的作品数
	Total int
	// LowTraffic uv 不够，直接忽略
	LowTraffic int
	Created    int
	// Duplicated 同一个快照的访问量变化不大
	Duplicated int
	// Skipped 作品 ID 非法或者作品已经不存在
	Skipped int
	Failed  int
}

type TaskGenerateService interface {
	// Generate 根据 day 那一天的访问数据生成审核任务。
	// 单个作品失败不会中断，只有查询访问数据失败才会返回 error
	Generate(ctx context.Context, day time.Time) (GenerateStats, error)
}

type taskGenerateService struct {
	trafficRepo repository.TrafficRepository
	workRepo    repository.WorkRepository
	taskRepo    repository.TaskRepository
	cfg         config.AuditConfig
	logger      *elog.Component
}

func NewTaskGenerateService(
	trafficRepo repository.TrafficRepository,
	workRepo repository.WorkRepository,
	taskRepo repository.TaskRepository,
	cfg config.AuditConfig) TaskGenerateService {
	return &taskGenerateService{
		trafficRepo: trafficRepo,
		workRepo:    workRepo,
		taskRepo:    taskRepo,
		cfg:         cfg.WithDefaults(),
		logger:      elog.DefaultLogger,
	}
}

type generateOutcome string

const (
	outcomeCreated    generateOutcome = "created"
	outcomeDuplicated generateOutcome = "duplicated"
	outcomeSkipped    generateOutcome = "skipped"
	outcomeLowTraffic generateOutcome = "low_traffic"
	outcomeFailed     generateOutcome = "failed"
)

func (s *taskGenerateService) Generate(ctx context.Context, day time.Time) (GenerateStats, error) {
	var stats GenerateStats
	runID := shortuuid.New()
	start := time.Now()
	traffic, err := s.trafficRepo.DailyTraffic(ctx, day, s.cfg.Categories)
	if err != nil {
		return stats, fmt.Errorf("查询访问数据失败: %w", err)
	}
	for _, t := range traffic {
		if ctx.Err() != nil {
			return stats, ctx.Err()
		}
		stats.Total++
		outcome, er := s.generate(ctx, t)
		if er != nil {
			s.logger.Error("生成审核任务失败",
				elog.FieldErr(er),
				elog.String("runId", runID),
				elog.String("workId", t.WorkID))
		}
		generateCounter.WithLabelValues(string(outcome)).Inc()
		switch outcome {
		case outcomeCreated:
			stats.Created++
		case outcomeDuplicated:
			stats.Duplicated++
		case outcomeSkipped:
			stats.Skipped++
		case outcomeLowTraffic:
			stats.LowTraffic++
		default:
			stats.Failed++
		}
	}
	s.logger.Info("生成审核任务结束",
		elog.String("runId", runID),
		elog.String("day", day.Format(time.DateOnly)),
		elog.Int("total", stats.Total),
		elog.Int("created", stats.Created),
		elog.Int("duplicated", stats.Duplicated),
		elog.Int("lowTraffic", stats.LowTraffic),
		elog.Int("skipped", stats.Skipped),
		elog.Int("failed", stats.Failed),
		elog.FieldCost(time.Since(start)))
	return stats, nil
}

func (s *taskGenerateService) generate(ctx context.Context, t domain.Traffic) (generateOutcome, error) {
	if t.Uv < s.cfg.UvFloor {
		return outcomeLowTraffic, nil
	}
	ownerId, err := s.ownerID(t.WorkID)
	if err != nil {
		return outcomeSkipped, err
	}
	work, err := s.workRepo.FindWork(ctx, ownerId, t.WorkID)
	if errors.Is(err, repository.ErrWorkNotFound) {
		s.logger.Warn("作品不存在", elog.String("workId", t.WorkID), elog.Int64("ownerId", ownerId))
		return outcomeSkipped, nil
	}
	if err != nil {
		return outcomeFailed, fmt.Errorf("查询作品失败: %w", err)
	}
	stat, err := s.workRepo.Statistic(ctx, t.WorkID)
	if err != nil {
		return outcomeFailed, fmt.Errorf("查询作品累计访问数据失败: %w", err)
	}

	latest, err := s.taskRepo.FindLatestBySnapshot(ctx, t.WorkID, work.Utime)
	switch {
	case err == nil:
		if abs(t.Pv-latest.Pv) < s.cfg.PvDelta {
			return outcomeDuplicated, nil
		}
	case !errors.Is(err, repository.ErrRecordNotFound):
		return outcomeFailed, fmt.Errorf("查询已有任务失败: %w", err)
	}

	_, err = s.taskRepo.Create(ctx, domain.ReviewTask{
		WorkID:       t.WorkID,
		OwnerID:      ownerId,
		WorkType:     s.cfg.WorkType,
		Pv:           t.Pv,
		Uv:           t.Uv,
		ShareCnt:     stat.ShareCnt,
		HistoryPv:    stat.Pv,
		HistoryUv:    stat.Uv,
		SnapshotTime: work.Utime,
		Status:       domain.TaskStatusPending,
	})
	if err != nil {
		return outcomeFailed, fmt.Errorf("创建审核任务失败: %w", err)
	}
	return outcomeCreated, nil
}

// ownerID 作品 ID 从固定位置开始的后缀就是作者 ID
func (s *taskGenerateService) ownerID(workId string) (int64, error) {
	if len(workId) <= s.cfg.OwnerIDOffset {
		return 0, fmt.Errorf("%w %s", ErrInvalidWorkID, workId)
	}
	id, err := strconv.ParseInt(workId[s.cfg.OwnerIDOffset:], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w %s", ErrInvalidWorkID, workId)
	}
	return id, nil
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
