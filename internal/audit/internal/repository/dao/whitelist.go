package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm/clause"
)

type WhitelistDAO interface {
	ExistsUser(ctx context.Context, ownerId int64) (bool, error)
	ExistsWork(ctx context.Context, workId string) (bool, error)
	AddUser(ctx context.Context, ownerId int64) error
	AddWork(ctx context.Context, workId string) error
}

type whitelistGORMDAO struct {
	db *egorm.Component
}

func NewWhitelistGORMDAO(db *egorm.Component) WhitelistDAO {
	return &whitelistGORMDAO{db: db}
}

func (d *whitelistGORMDAO) ExistsUser(ctx context.Context, ownerId int64) (bool, error) {
	var cnt int64
	err := d.db.WithContext(ctx).Model(&WhitelistUser{}).
		Where("owner_id = ?", ownerId).Count(&cnt).Error
	return cnt > 0, err
}

func (d *whitelistGORMDAO) ExistsWork(ctx context.Context, workId string) (bool, error) {
	var cnt int64
	err := d.db.WithContext(ctx).Model(&WhitelistWork{}).
		Where("work_id = ?", workId).Count(&cnt).Error
	return cnt > 0, err
}

func (d *whitelistGORMDAO) AddUser(ctx context.Context, ownerId int64) error {
	now := time.Now().UnixMilli()
	return d.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).
		Create(&WhitelistUser{OwnerId: ownerId, Ctime: now, Utime: now}).Error
}

func (d *whitelistGORMDAO) AddWork(ctx context.Context, workId string) error {
	now := time.Now().UnixMilli()
	return d.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).
		Create(&WhitelistWork{WorkId: workId, Ctime: now, Utime: now}).Error
}
