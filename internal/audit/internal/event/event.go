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

package event

import "github.com/ecodeclub/workaudit/internal/audit/internal/domain"

// WorkAuditEvent 一个快照审核完成之后发出
type WorkAuditEvent struct {
	AuditId      int64  `json:"auditId"`
	WorkId       string `json:"workId"`
	OwnerId      int64  `json:"ownerId"`
	WorkType     string `json:"workType"`
	SnapshotTime int64  `json:"snapshotTime"`
	// MachineResult 2-通过 3-不通过
	MachineResult uint8  `json:"machineResult"`
	PassType      uint8  `json:"passType"`
	RiskLevel     uint8  `json:"riskLevel"`
	Reason        string `json:"reason"`
	ReviewTime    int64  `json:"reviewTime"`
}

func NewWorkAuditEvent(record domain.AuditRecord) WorkAuditEvent {
	return WorkAuditEvent{
		AuditId:       record.ID,
		WorkId:        record.WorkID,
		OwnerId:       record.OwnerID,
		WorkType:      record.WorkType,
		SnapshotTime:  record.SnapshotTime,
		MachineResult: record.MachineResult.ToUint8(),
		PassType:      record.PassType.ToUint8(),
		RiskLevel:     record.RiskLevel.ToUint8(),
		Reason:        record.Reason,
		ReviewTime:    record.ReviewTime,
	}
}
