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

package repository

import (
	"context"

	"github.com/ecodeclub/workaudit/internal/audit/internal/domain"
	"github.com/ecodeclub/workaudit/internal/audit/internal/repository/dao"
)

type AuditRepository interface {
	// CreateRecord 已经有人审核过同一个快照的时候 created 为 false
	CreateRecord(ctx context.Context, record domain.AuditRecord) (id int64, created bool, err error)
	// FindRecord 这个快照没有审核过的时候返回 ErrRecordNotFound
	FindRecord(ctx context.Context, workId string, snapshotTime int64) (domain.AuditRecord, error)

	IncrResult(ctx context.Context, res domain.AuditResult) error
	RefreshResult(ctx context.Context, res domain.AuditResult) error
}

type auditRepository struct {
	dao dao.AuditDAO
}

func NewAuditRepository(d dao.AuditDAO) AuditRepository {
	return &auditRepository{dao: d}
}

func (r *auditRepository) CreateRecord(ctx context.Context, record domain.AuditRecord) (int64, bool, error) {
	return r.dao.CreateRecord(ctx, dao.WorkAuditList{
		WorkId:        record.WorkID,
		OwnerId:       record.OwnerID,
		WorkType:      record.WorkType,
		SnapshotTime:  record.SnapshotTime,
		MachineResult: record.MachineResult.ToUint8(),
		PassType:      record.PassType.ToUint8(),
		RiskLevel:     record.RiskLevel.ToUint8(),
		Reason:        record.Reason,
		ReviewTime:    record.ReviewTime,
	})
}

func (r *auditRepository) FindRecord(ctx context.Context, workId string, snapshotTime int64) (domain.AuditRecord, error) {
	record, err := r.dao.FindRecord(ctx, workId, snapshotTime)
	if err != nil {
		return domain.AuditRecord{}, err
	}
	return domain.AuditRecord{
		ID:            record.Id,
		WorkID:        record.WorkId,
		OwnerID:       record.OwnerId,
		WorkType:      record.WorkType,
		SnapshotTime:  record.SnapshotTime,
		MachineResult: domain.MachineResult(record.MachineResult),
		PassType:      domain.PassType(record.PassType),
		RiskLevel:     domain.RiskLevel(record.RiskLevel),
		Reason:        record.Reason,
		ReviewTime:    record.ReviewTime,
	}, nil
}

func (r *auditRepository) IncrResult(ctx context.Context, res domain.AuditResult) error {
	return r.dao.IncrResult(ctx, r.toResultEntity(res))
}

func (r *auditRepository) RefreshResult(ctx context.Context, res domain.AuditResult) error {
	return r.dao.RefreshResult(ctx, r.toResultEntity(res))
}

func (r *auditRepository) toResultEntity(res domain.AuditResult) dao.WorkAuditResult {
	return dao.WorkAuditResult{
		WorkId:         res.WorkID,
		OwnerId:        res.OwnerID,
		WorkType:       res.WorkType,
		Pv:             res.Pv,
		Uv:             res.Uv,
		ShareCnt:       res.ShareCnt,
		HistoryPv:      res.HistoryPv,
		HistoryUv:      res.HistoryUv,
		Meta:           res.Meta,
		LastReviewTime: res.LastReviewTime,
		LastAuditId:    res.LastAuditID,
	}
}
