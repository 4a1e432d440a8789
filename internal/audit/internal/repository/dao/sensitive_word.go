package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm/clause"
)

type SensitiveWordDAO interface {
	// List 按照 id 升序返回全部敏感词，这个顺序就是匹配顺序
	List(ctx context.Context) ([]SensitiveWord, error)
	Save(ctx context.Context, word SensitiveWord) (int64, error)
}

type sensitiveWordGORMDAO struct {
	db *egorm.Component
}

func NewSensitiveWordGORMDAO(db *egorm.Component) SensitiveWordDAO {
	return &sensitiveWordGORMDAO{db: db}
}

func (d *sensitiveWordGORMDAO) List(ctx context.Context) ([]SensitiveWord, error) {
	var words []SensitiveWord
	err := d.db.WithContext(ctx).Order("id ASC").Find(&words).Error
	return words, err
}

func (d *sensitiveWordGORMDAO) Save(ctx context.Context, word SensitiveWord) (int64, error) {
	now := time.Now().UnixMilli()
	word.Ctime = now
	word.Utime = now
	err := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "word"}},
		DoUpdates: clause.AssignmentColumns([]string{"level", "utime"}),
	}).Create(&word).Error
	return word.Id, err
}
