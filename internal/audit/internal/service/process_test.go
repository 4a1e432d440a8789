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
	"strings"
	"testing"
	"time"

	"github.com/ecodeclub/workaudit/config"
	"github.com/ecodeclub/workaudit/internal/audit/internal/domain"
	"github.com/ecodeclub/workaudit/internal/audit/internal/event"
	evtmocks "github.com/ecodeclub/workaudit/internal/audit/internal/event/mocks"
	"github.com/ecodeclub/workaudit/internal/audit/internal/repository"
	"github.com/ecodeclub/workaudit/internal/audit/internal/repository/dao"
	repomocks "github.com/ecodeclub/workaudit/internal/audit/internal/repository/mocks"
	"github.com/ecodeclub/workaudit/internal/audit/internal/service/risk"
	testioc "github.com/ecodeclub/workaudit/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const richBody = `{
  "pages": [
    {"elements": [
      {"element": "text", "attrs": {"content": "春季新品上市，欢迎各位朋友到店选购，现场还有精美礼品相送"}},
      {"element": "image", "attrs": {"src": "https://cdn.example.com/user/42/a.png"}},
      {"element": "image", "attrs": {"src": "https://cdn.example.com/user/42/b.png"}}
    ]},
    {"elements": [
      {"text": "活动时间：三月一日至三月十五日，地址：人民路一号"},
      {"imgUrl": "https://cdn.example.com/user/42/c.png"}
    ]}
  ]
}`

// 没有敏感词的版本
var cleanBody = strings.ReplaceAll(richBody, "精美礼品相送", "精美小样相送")

type TaskProcessServiceTestSuite struct {
	suite.Suite
	db            *egorm.Component
	taskRepo      repository.TaskRepository
	auditRepo     repository.AuditRepository
	workInfoRepo  repository.WorkInfoRepository
	whitelistRepo repository.WhitelistRepository
	lex           domain.Lexicon
}

func (s *TaskProcessServiceTestSuite) SetupTest() {
	s.db = testioc.InitDB()
	require.NoError(s.T(), dao.InitTables(s.db))
	s.taskRepo = repository.NewTaskRepository(dao.NewTaskGORMDAO(s.db))
	s.auditRepo = repository.NewAuditRepository(dao.NewAuditGORMDAO(s.db))
	s.workInfoRepo = repository.NewWorkInfoRepository(dao.NewWorkInfoGORMDAO(s.db))
	s.whitelistRepo = repository.NewWhitelistRepository(dao.NewWhitelistGORMDAO(s.db))
	s.lex = domain.NewLexicon([]domain.SensitiveWord{
		{ID: 1, Word: "刷单", Level: domain.RiskLevelHigh},
		{ID: 2, Word: "礼品", Level: domain.RiskLevelLow},
	})
}

type processMocks struct {
	work     *repomocks.MockWorkRepository
	profile  *repomocks.MockProfileRepository
	producer *evtmocks.MockAuditEventProducer
}

func (s *TaskProcessServiceTestSuite) newService(ctrl *gomock.Controller, cfg config.AuditConfig) (TaskProcessService, processMocks) {
	m := processMocks{
		work:     repomocks.NewMockWorkRepository(ctrl),
		profile:  repomocks.NewMockProfileRepository(ctrl),
		producer: evtmocks.NewMockAuditEventProducer(ctrl),
	}
	if cfg.WorkType == "" {
		cfg.WorkType = "h5"
	}
	svc := NewTaskProcessService(s.taskRepo, s.auditRepo, m.work, s.workInfoRepo,
		s.whitelistRepo, m.profile, m.producer, cfg)
	return svc, m
}

func (s *TaskProcessServiceTestSuite) createTask(workId string, ownerId int64, snapshot int64) int64 {
	id, err := s.taskRepo.Create(context.Background(), domain.ReviewTask{
		WorkID:       workId,
		OwnerID:      ownerId,
		WorkType:     "h5",
		Pv:           300,
		Uv:           20,
		ShareCnt:     3,
		HistoryPv:    5000,
		HistoryUv:    800,
		SnapshotTime: snapshot,
		Status:       domain.TaskStatusPending,
	})
	require.NoError(s.T(), err)
	return id
}

func (s *TaskProcessServiceTestSuite) taskStatus(id int64) domain.TaskStatus {
	var task dao.ReviewTask
	require.NoError(s.T(), s.db.Where("id = ?", id).First(&task).Error)
	return domain.TaskStatus(task.Status)
}

func (s *TaskProcessServiceTestSuite) auditResult(workId string) dao.WorkAuditResult {
	var res dao.WorkAuditResult
	require.NoError(s.T(), s.db.Where("work_id = ?", workId).First(&res).Error)
	return res
}

// snapshot 早于宽限期
func (s *TaskProcessServiceTestSuite) snapshot() int64 {
	return time.Now().Add(-time.Hour).UnixMilli()
}

func (s *TaskProcessServiceTestSuite) TestProcess() {
	testCases := []struct {
		name    string
		ownerId int64
		workId  string
		before  func(t *testing.T)
		mock    func(m processMocks)

		wantRecord domain.AuditRecord
		wantInfo   func(t *testing.T, info dao.WorkInfo)
	}{
		{
			name:    "机审通过",
			ownerId: 42,
			workId:  "2024061800042",
			before:  func(t *testing.T) {},
			mock: func(m processMocks) {
				m.work.EXPECT().FindWork(gomock.Any(), int64(42), "2024061800042").
					Return(domain.Work{WorkID: "2024061800042", OwnerID: 42, Title: "春季上新"}, nil)
				m.work.EXPECT().Body(gomock.Any(), gomock.Any()).Return([]byte(cleanBody), nil)
				m.profile.EXPECT().Profile(gomock.Any(), int64(42)).Return(domain.UserProfile{ID: 42}, nil)
			},
			wantRecord: domain.AuditRecord{
				MachineResult: domain.MachineResultPass,
				PassType:      domain.PassTypeMachine,
				RiskLevel:     domain.RiskLevelLow,
				Reason:        risk.ReasonPassed,
			},
		},
		{
			name:    "内容命中敏感词",
			ownerId: 42,
			workId:  "2024061800042",
			before:  func(t *testing.T) {},
			mock: func(m processMocks) {
				m.work.EXPECT().FindWork(gomock.Any(), int64(42), "2024061800042").
					Return(domain.Work{WorkID: "2024061800042", OwnerID: 42, Title: "春季上新", Version: 3}, nil)
				m.work.EXPECT().Body(gomock.Any(), gomock.Any()).Return([]byte(richBody), nil)
				m.profile.EXPECT().Profile(gomock.Any(), int64(42)).
					Return(domain.UserProfile{ID: 42, Nickname: "小明", RegisterTime: 100}, nil)
			},
			wantRecord: domain.AuditRecord{
				MachineResult: domain.MachineResultFailed,
				PassType:      domain.PassTypeMachine,
				RiskLevel:     domain.RiskLevelLow,
				Reason:        "内容包含敏感词：礼品",
			},
			wantInfo: func(t *testing.T, info dao.WorkInfo) {
				assert.Equal(t, "春季上新", info.Title)
				assert.Equal(t, 2, info.Features.Val.PageCount)
				assert.Equal(t, 3, info.Features.Val.UploadedImageCount)
				assert.Equal(t, "小明", info.Features.Val.UserInfo.Nickname)
				assert.Equal(t, float64(3), info.Metadata["version"])
			},
		},
		{
			name:    "标题命中高危词",
			ownerId: 42,
			workId:  "2024061800042",
			before:  func(t *testing.T) {},
			mock: func(m processMocks) {
				m.work.EXPECT().FindWork(gomock.Any(), int64(42), "2024061800042").
					Return(domain.Work{WorkID: "2024061800042", OwnerID: 42, Title: "兼职刷 单日结"}, nil)
				m.work.EXPECT().Body(gomock.Any(), gomock.Any()).Return([]byte(richBody), nil)
				m.profile.EXPECT().Profile(gomock.Any(), int64(42)).Return(domain.UserProfile{}, errors.New("用户库超时"))
			},
			wantRecord: domain.AuditRecord{
				MachineResult: domain.MachineResultFailed,
				PassType:      domain.PassTypeMachine,
				RiskLevel:     domain.RiskLevelHigh,
				Reason:        "标题包含敏感词：刷单",
			},
			wantInfo: func(t *testing.T, info dao.WorkInfo) {
				assert.Nil(t, info.Features.Val.UserInfo)
				assert.True(t, info.Features.Val.Available())
			},
		},
		{
			name:    "白名单用户优先于敏感词",
			ownerId: 42,
			workId:  "2024061800042",
			before: func(t *testing.T) {
				require.NoError(t, s.whitelistRepo.AddUser(context.Background(), 42))
				require.NoError(t, s.whitelistRepo.AddWork(context.Background(), "2024061800042"))
			},
			mock: func(m processMocks) {
				m.work.EXPECT().FindWork(gomock.Any(), int64(42), "2024061800042").
					Return(domain.Work{WorkID: "2024061800042", OwnerID: 42, Title: "刷单"}, nil)
				m.work.EXPECT().Body(gomock.Any(), gomock.Any()).Return([]byte(richBody), nil)
				m.profile.EXPECT().Profile(gomock.Any(), int64(42)).Return(domain.UserProfile{ID: 42}, nil)
			},
			wantRecord: domain.AuditRecord{
				MachineResult: domain.MachineResultPass,
				PassType:      domain.PassTypeWhiteUser,
				RiskLevel:     domain.RiskLevelLow,
				Reason:        ReasonWhiteUser,
			},
		},
		{
			name:    "白名单作品",
			ownerId: 42,
			workId:  "2024061800042",
			before: func(t *testing.T) {
				require.NoError(t, s.whitelistRepo.AddWork(context.Background(), "2024061800042"))
			},
			mock: func(m processMocks) {
				m.work.EXPECT().FindWork(gomock.Any(), int64(42), "2024061800042").
					Return(domain.Work{WorkID: "2024061800042", OwnerID: 42, Title: "刷单"}, nil)
				m.work.EXPECT().Body(gomock.Any(), gomock.Any()).Return([]byte(richBody), nil)
				m.profile.EXPECT().Profile(gomock.Any(), int64(42)).Return(domain.UserProfile{ID: 42}, nil)
			},
			wantRecord: domain.AuditRecord{
				MachineResult: domain.MachineResultPass,
				PassType:      domain.PassTypeWhiteWork,
				RiskLevel:     domain.RiskLevelLow,
				Reason:        ReasonWhiteWork,
			},
		},
		{
			name:    "读取作品内容失败",
			ownerId: 42,
			workId:  "2024061800042",
			before:  func(t *testing.T) {},
			mock: func(m processMocks) {
				m.work.EXPECT().FindWork(gomock.Any(), int64(42), "2024061800042").
					Return(domain.Work{WorkID: "2024061800042", OwnerID: 42, Title: "春季上新"}, nil)
				m.work.EXPECT().Body(gomock.Any(), gomock.Any()).Return(nil, errors.New("NoSuchKey"))
				m.profile.EXPECT().Profile(gomock.Any(), int64(42)).Return(domain.UserProfile{ID: 42}, nil)
			},
			wantRecord: domain.AuditRecord{
				MachineResult: domain.MachineResultFailed,
				PassType:      domain.PassTypeMachine,
				RiskLevel:     domain.RiskLevelSuspicious,
				Reason:        risk.ReasonNoFeature,
			},
			wantInfo: func(t *testing.T, info dao.WorkInfo) {
				assert.Equal(t, "NoSuchKey", info.Features.Val.Err)
				assert.NotNil(t, info.Features.Val.UserInfo)
			},
		},
		{
			name:    "作品内容不是合法 JSON",
			ownerId: 42,
			workId:  "2024061800042",
			before:  func(t *testing.T) {},
			mock: func(m processMocks) {
				m.work.EXPECT().FindWork(gomock.Any(), int64(42), "2024061800042").
					Return(domain.Work{WorkID: "2024061800042", OwnerID: 42, Title: "春季上新"}, nil)
				m.work.EXPECT().Body(gomock.Any(), gomock.Any()).Return([]byte("{"), nil)
				m.profile.EXPECT().Profile(gomock.Any(), int64(42)).Return(domain.UserProfile{ID: 42}, nil)
			},
			wantRecord: domain.AuditRecord{
				MachineResult: domain.MachineResultFailed,
				PassType:      domain.PassTypeMachine,
				RiskLevel:     domain.RiskLevelSuspicious,
				Reason:        risk.ReasonNoFeature,
			},
			wantInfo: func(t *testing.T, info dao.WorkInfo) {
				assert.False(t, info.Features.Val.Available())
			},
		},
	}
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			t := s.T()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, m := s.newService(ctrl, config.AuditConfig{})
			tc.before(t)
			tc.mock(m)
			var evt event.WorkAuditEvent
			m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, e event.WorkAuditEvent) error {
					evt = e
					return nil
				})

			snapshot := s.snapshot()
			id := s.createTask(tc.workId, tc.ownerId, snapshot)
			stats, err := svc.Process(context.Background(), s.lex)
			require.NoError(t, err)
			assert.Equal(t, ProcessStats{Batches: 1, Total: 1, Reviewed: 1}, stats)
			assert.Equal(t, domain.TaskStatusCompleted, s.taskStatus(id))

			record, err := s.auditRepo.FindRecord(context.Background(), tc.workId, snapshot)
			require.NoError(t, err)
			assert.True(t, record.ID > 0)
			assert.True(t, record.ReviewTime > 0)
			assert.Equal(t, tc.wantRecord.MachineResult, record.MachineResult)
			assert.Equal(t, tc.wantRecord.PassType, record.PassType)
			assert.Equal(t, tc.wantRecord.RiskLevel, record.RiskLevel)
			assert.Equal(t, tc.wantRecord.Reason, record.Reason)

			res := s.auditResult(tc.workId)
			assert.Equal(t, int64(1), res.ReviewCount)
			assert.Equal(t, record.ID, res.LastAuditId)
			assert.Equal(t, record.ReviewTime, res.LastReviewTime)
			assert.Equal(t, int64(300), res.Pv)
			assert.Equal(t, int64(5000), res.HistoryPv)

			assert.Equal(t, record.ID, evt.AuditId)
			assert.Equal(t, tc.wantRecord.MachineResult.ToUint8(), evt.MachineResult)

			if tc.wantInfo != nil {
				var info dao.WorkInfo
				require.NoError(t, s.db.Where("work_id = ?", tc.workId).First(&info).Error)
				tc.wantInfo(t, info)
			}
		})
	}
}

func (s *TaskProcessServiceTestSuite) TestProcess_Idempotent() {
	t := s.T()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, m := s.newService(ctrl, config.AuditConfig{})
	m.work.EXPECT().FindWork(gomock.Any(), int64(42), "2024061800042").
		Return(domain.Work{WorkID: "2024061800042", OwnerID: 42, Title: "春季上新"}, nil).AnyTimes()
	m.work.EXPECT().Body(gomock.Any(), gomock.Any()).Return([]byte(richBody), nil).AnyTimes()
	m.profile.EXPECT().Profile(gomock.Any(), gomock.Any()).Return(domain.UserProfile{ID: 42}, nil).AnyTimes()
	// 同一个快照只会发一次消息
	m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	snapshot := s.snapshot()
	// 生成任务是至少一次，同一个快照可能有两个任务
	first := s.createTask("2024061800042", 42, snapshot)
	second := s.createTask("2024061800042", 42, snapshot)

	stats, err := svc.Process(context.Background(), s.lex)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Reviewed)
	assert.Equal(t, 1, stats.Refreshed)
	assert.Equal(t, domain.TaskStatusCompleted, s.taskStatus(first))
	assert.Equal(t, domain.TaskStatusCompleted, s.taskStatus(second))

	// 审核完成之后生成器又补了一个任务，访问量更新了
	third, err := s.taskRepo.Create(context.Background(), domain.ReviewTask{
		WorkID:       "2024061800042",
		OwnerID:      42,
		WorkType:     "h5",
		Pv:           900,
		Uv:           60,
		SnapshotTime: snapshot,
		Status:       domain.TaskStatusPending,
	})
	require.NoError(t, err)
	stats, err = svc.Process(context.Background(), s.lex)
	require.NoError(t, err)
	assert.Equal(t, ProcessStats{Batches: 1, Total: 1, Refreshed: 1}, stats)
	assert.Equal(t, domain.TaskStatusCompleted, s.taskStatus(third))

	var cnt int64
	require.NoError(t, s.db.Model(&dao.WorkAuditList{}).Count(&cnt).Error)
	assert.Equal(t, int64(1), cnt)
	res := s.auditResult("2024061800042")
	assert.Equal(t, int64(1), res.ReviewCount)
	assert.Equal(t, int64(900), res.Pv)
	assert.Equal(t, int64(60), res.Uv)
	// 快照信息还是审核时候的
	assert.Equal(t, "春季上新", res.Meta["title"])
}

func (s *TaskProcessServiceTestSuite) TestProcess_RecoverResult() {
	t := s.T()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	// 已经有审核记录，不会再读作品也不会再发消息
	svc, _ := s.newService(ctrl, config.AuditConfig{})

	snapshot := s.snapshot()
	// 上一次写完审核记录之后更新汇总失败了，任务还是待处理
	auditId, created, err := s.auditRepo.CreateRecord(context.Background(), domain.AuditRecord{
		WorkID:        "2024061800042",
		OwnerID:       42,
		WorkType:      "h5",
		SnapshotTime:  snapshot,
		MachineResult: domain.MachineResultPass,
		PassType:      domain.PassTypeMachine,
		RiskLevel:     domain.RiskLevelLow,
		ReviewTime:    1718700000000,
	})
	require.NoError(t, err)
	require.True(t, created)
	id := s.createTask("2024061800042", 42, snapshot)

	stats, err := svc.Process(context.Background(), s.lex)
	require.NoError(t, err)
	assert.Equal(t, ProcessStats{Batches: 1, Total: 1, Refreshed: 1}, stats)
	assert.Equal(t, domain.TaskStatusCompleted, s.taskStatus(id))

	res := s.auditResult("2024061800042")
	assert.Equal(t, auditId, res.LastAuditId)
	assert.Equal(t, int64(1), res.ReviewCount)
	assert.Equal(t, int64(1718700000000), res.LastReviewTime)
	assert.Equal(t, int64(300), res.Pv)
	assert.Equal(t, int64(5000), res.HistoryPv)
}

func (s *TaskProcessServiceTestSuite) TestProcess_Skip() {
	t := s.T()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, m := s.newService(ctrl, config.AuditConfig{})
	m.work.EXPECT().FindWork(gomock.Any(), int64(44), "2024061800044").
		Return(domain.Work{}, repository.ErrWorkNotFound)
	m.work.EXPECT().FindWork(gomock.Any(), int64(45), "2024061800045").
		Return(domain.Work{}, errors.New("连接超时"))

	notFound := s.createTask("2024061800044", 44, s.snapshot())
	failed := s.createTask("2024061800045", 45, s.snapshot())
	// 还在宽限期内
	fresh := s.createTask("2024061800046", 46, time.Now().UnixMilli())
	// 别的类型
	_, err := s.taskRepo.Create(context.Background(), domain.ReviewTask{
		WorkID:       "2024061800047",
		OwnerID:      47,
		WorkType:     "form",
		SnapshotTime: s.snapshot(),
		Status:       domain.TaskStatusPending,
	})
	require.NoError(t, err)

	stats, err := svc.Process(context.Background(), s.lex)
	require.NoError(t, err)
	assert.Equal(t, ProcessStats{Batches: 1, Total: 2, Skipped: 1, Failed: 1}, stats)
	assert.Equal(t, domain.TaskStatusPending, s.taskStatus(notFound))
	assert.Equal(t, domain.TaskStatusPending, s.taskStatus(failed))
	assert.Equal(t, domain.TaskStatusPending, s.taskStatus(fresh))
}

func (s *TaskProcessServiceTestSuite) TestProcess_Batches() {
	t := s.T()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, m := s.newService(ctrl, config.AuditConfig{BatchSize: 4})
	m.work.EXPECT().FindWork(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, ownerId int64, workId string) (domain.Work, error) {
			return domain.Work{WorkID: workId, OwnerID: ownerId, Title: "春季上新"}, nil
		}).AnyTimes()
	m.work.EXPECT().Body(gomock.Any(), gomock.Any()).Return([]byte(richBody), nil).AnyTimes()
	m.profile.EXPECT().Profile(gomock.Any(), gomock.Any()).Return(domain.UserProfile{}, nil).AnyTimes()
	// 消息发送失败不影响审核
	m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(errors.New("kafka 不可用")).Times(10)

	snapshot := s.snapshot()
	for i := 0; i < 10; i++ {
		s.createTask(fmt.Sprintf("20240618%05d", 100+i), int64(100+i), snapshot+int64(i%3))
	}
	stats, err := svc.Process(context.Background(), domain.Lexicon{})
	require.NoError(t, err)
	assert.Equal(t, ProcessStats{Batches: 3, Total: 10, Reviewed: 10}, stats)

	var records []dao.WorkAuditList
	require.NoError(t, s.db.Find(&records).Error)
	require.Len(t, records, 10)
	for _, r := range records {
		// 词库为空的时候默认通过
		assert.Equal(t, domain.MachineResultPass.ToUint8(), r.MachineResult)
		assert.Equal(t, risk.ReasonLexiconUnavailable, r.Reason)
	}
}

func TestTaskProcessService(t *testing.T) {
	suite.Run(t, new(TaskProcessServiceTestSuite))
}
