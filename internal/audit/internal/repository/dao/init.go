package dao

import (
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(
		&ReviewTask{},
		&WorkInfo{},
		&WorkAuditList{},
		&WorkAuditResult{},
		&WhitelistUser{},
		&WhitelistWork{},
		&SensitiveWord{},
	)
}
