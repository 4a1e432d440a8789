package dao

import (
	"context"

	"github.com/ego-component/egorm"
)

// User 用户库里面的用户，这里只读
type User struct {
	Id       int64  `gorm:"primaryKey,autoIncrement"`
	Nickname string `gorm:"type:varchar(256)"`
	Ctime    int64
	Utime    int64
}

type UserDAO interface {
	FindByID(ctx context.Context, uid int64) (User, error)
}

type userGORMDAO struct {
	db *egorm.Component
}

func NewUserGORMDAO(db *egorm.Component) UserDAO {
	return &userGORMDAO{db: db}
}

func (d *userGORMDAO) FindByID(ctx context.Context, uid int64) (User, error) {
	var u User
	err := d.db.WithContext(ctx).Where("id = ?", uid).First(&u).Error
	return u, err
}
