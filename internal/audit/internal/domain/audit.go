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

package domain

// AuditRecord 审核流水，写入之后不再修改
type AuditRecord struct {
	ID            int64
	WorkID        string
	OwnerID       int64
	WorkType      string
	SnapshotTime  int64
	MachineResult MachineResult
	PassType      PassType
	RiskLevel     RiskLevel
	Reason        string
	ReviewTime    int64
}

// AuditResult 每个作品一条的审核汇总
type AuditResult struct {
	WorkID    string
	OwnerID   int64
	WorkType  string
	Pv        int64
	Uv        int64
	ShareCnt  int64
	HistoryPv int64
	HistoryUv int64
	Meta      map[string]any

	LastReviewTime int64
	// LastAuditID 最近一条审核流水的 ID，只用来查询
	LastAuditID int64
}

type MachineResult uint8

func (r MachineResult) ToUint8() uint8 {
	return uint8(r)
}

const (
	MachineResultUnknown MachineResult = 0
	MachineResultWaiting MachineResult = 1
	MachineResultPass    MachineResult = 2
	MachineResultFailed  MachineResult = 3
)

type PassType uint8

func (p PassType) ToUint8() uint8 {
	return uint8(p)
}

func (p PassType) String() string {
	switch p {
	case PassTypeMachine:
		return "machine"
	case PassTypeWhiteUser:
		return "white_user"
	case PassTypeWhiteWork:
		return "white_work"
	case PassTypeManual:
		return "manual"
	default:
		return "unknown"
	}
}

const (
	PassTypeUnknown   PassType = 0
	PassTypeMachine   PassType = 1
	PassTypeWhiteUser PassType = 2
	PassTypeWhiteWork PassType = 3
	PassTypeManual    PassType = 4
)

type RiskLevel uint8

func (l RiskLevel) ToUint8() uint8 {
	return uint8(l)
}

func (l RiskLevel) String() string {
	switch l {
	case RiskLevelLow:
		return "low"
	case RiskLevelSuspicious:
		return "suspicious"
	case RiskLevelHigh:
		return "high"
	default:
		return "unknown"
	}
}

const (
	RiskLevelUnknown    RiskLevel = 0
	RiskLevelLow        RiskLevel = 1
	RiskLevelSuspicious RiskLevel = 2
	RiskLevelHigh       RiskLevel = 3
)

// Verdict 机审结论
type Verdict struct {
	Passed bool
	Level  RiskLevel
	Reason string
}

func (v Verdict) MachineResult() MachineResult {
	if v.Passed {
		return MachineResultPass
	}
	return MachineResultFailed
}
