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
	"errors"
	"testing"
	"time"

	"github.com/ecodeclub/workaudit/internal/audit/internal/domain"
	"github.com/ecodeclub/workaudit/internal/audit/internal/repository/cache"
	cachemocks "github.com/ecodeclub/workaudit/internal/audit/internal/repository/cache/mocks"
	"github.com/ecodeclub/workaudit/internal/audit/internal/repository/dao"
	testioc "github.com/ecodeclub/workaudit/internal/test/ioc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestWhitelistRepository_Check(t *testing.T) {
	db := testioc.InitDB()
	require.NoError(t, dao.InitTables(db))
	repo := NewWhitelistRepository(dao.NewWhitelistGORMDAO(db))
	ctx := context.Background()
	require.NoError(t, repo.AddUser(ctx, 42))
	require.NoError(t, repo.AddWork(ctx, "work-1"))
	require.NoError(t, repo.AddWork(ctx, "work-2"))

	testCases := []struct {
		name    string
		ownerId int64
		workId  string
		want    domain.PassType
	}{
		{
			name:    "作者和作品都在白名单，作者优先",
			ownerId: 42,
			workId:  "work-1",
			want:    domain.PassTypeWhiteUser,
		},
		{
			name:    "只有作品在白名单",
			ownerId: 43,
			workId:  "work-2",
			want:    domain.PassTypeWhiteWork,
		},
		{
			name:    "都不在",
			ownerId: 43,
			workId:  "work-3",
			want:    domain.PassTypeUnknown,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := repo.Check(ctx, tc.ownerId, tc.workId)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLexiconRepository_Load(t *testing.T) {
	db := testioc.InitDB()
	require.NoError(t, dao.InitTables(db))
	repo := NewLexiconRepository(dao.NewSensitiveWordGORMDAO(db))
	ctx := context.Background()

	lex, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.True(t, lex.Empty())

	_, err = repo.Save(ctx, domain.SensitiveWord{Word: "兼职", Level: domain.RiskLevelSuspicious})
	require.NoError(t, err)
	_, err = repo.Save(ctx, domain.SensitiveWord{Word: "刷单", Level: domain.RiskLevelHigh})
	require.NoError(t, err)
	// 归一化之后为空的词不参与匹配
	_, err = repo.Save(ctx, domain.SensitiveWord{Word: "！！", Level: domain.RiskLevelHigh})
	require.NoError(t, err)

	lex, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, lex.Len())
	w, ok := lex.Find(domain.Normalize("兼职刷单"))
	require.True(t, ok)
	assert.Equal(t, "兼职", w.Word)
	assert.Equal(t, domain.RiskLevelSuspicious, w.Level)
}

func TestProfileRepository_Profile(t *testing.T) {
	db := testioc.InitDB()
	require.NoError(t, db.AutoMigrate(&dao.User{}))
	require.NoError(t, db.Create(&dao.User{Id: 42, Nickname: "小明", Ctime: 1000}).Error)

	testCases := []struct {
		name    string
		uid     int64
		mock    func(ctrl *gomock.Controller) cache.ProfileCache
		want    domain.UserProfile
		wantErr error
	}{
		{
			name: "命中缓存",
			uid:  42,
			mock: func(ctrl *gomock.Controller) cache.ProfileCache {
				c := cachemocks.NewMockProfileCache(ctrl)
				c.EXPECT().Get(gomock.Any(), int64(42)).
					Return(domain.UserProfile{ID: 42, Nickname: "缓存里的小明"}, nil)
				return c
			},
			want: domain.UserProfile{ID: 42, Nickname: "缓存里的小明"},
		},
		{
			name: "查库并回写缓存",
			uid:  42,
			mock: func(ctrl *gomock.Controller) cache.ProfileCache {
				c := cachemocks.NewMockProfileCache(ctrl)
				c.EXPECT().Get(gomock.Any(), int64(42)).Return(domain.UserProfile{}, cache.ErrProfileNotFound)
				c.EXPECT().Set(gomock.Any(), domain.UserProfile{ID: 42, Nickname: "小明", RegisterTime: 1000}).
					Return(nil)
				return c
			},
			want: domain.UserProfile{ID: 42, Nickname: "小明", RegisterTime: 1000},
		},
		{
			name: "回写缓存失败不影响结果",
			uid:  42,
			mock: func(ctrl *gomock.Controller) cache.ProfileCache {
				c := cachemocks.NewMockProfileCache(ctrl)
				c.EXPECT().Get(gomock.Any(), int64(42)).Return(domain.UserProfile{}, cache.ErrProfileNotFound)
				c.EXPECT().Set(gomock.Any(), gomock.Any()).Return(errors.New("redis 挂了"))
				return c
			},
			want: domain.UserProfile{ID: 42, Nickname: "小明", RegisterTime: 1000},
		},
		{
			name: "用户不存在",
			uid:  43,
			mock: func(ctrl *gomock.Controller) cache.ProfileCache {
				c := cachemocks.NewMockProfileCache(ctrl)
				c.EXPECT().Get(gomock.Any(), int64(43)).Return(domain.UserProfile{}, cache.ErrProfileNotFound)
				return c
			},
			wantErr: ErrRecordNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := NewProfileRepository(dao.NewUserGORMDAO(db), tc.mock(ctrl))
			got, err := repo.Profile(context.Background(), tc.uid)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.want, got)
		})
	}
}

type fakeTrafficDAO struct {
	start, end int64
	categories []string
}

func (f *fakeTrafficDAO) Aggregate(ctx context.Context, start, end int64, categories []string) ([]dao.Traffic, error) {
	f.start, f.end, f.categories = start, end, categories
	return []dao.Traffic{{ObjectId: "work-1", Pv: 10, Uv: 6}}, nil
}

func TestTrafficRepository_DailyTraffic(t *testing.T) {
	loc := time.FixedZone("CST", 8*3600)
	d := &fakeTrafficDAO{}
	repo := NewTrafficRepository(d)
	day := time.Date(2024, 6, 18, 15, 30, 0, 0, loc)

	res, err := repo.DailyTraffic(context.Background(), day, []string{"visit"})
	require.NoError(t, err)
	assert.Equal(t, []domain.Traffic{{WorkID: "work-1", Pv: 10, Uv: 6}}, res)
	assert.Equal(t, time.Date(2024, 6, 18, 0, 0, 0, 0, loc).UnixMilli(), d.start)
	assert.Equal(t, time.Date(2024, 6, 19, 0, 0, 0, 0, loc).UnixMilli(), d.end)
	assert.Equal(t, []string{"visit"}, d.categories)
}

type fakeWorkDAO struct {
	work dao.Work
	err  error
}

func (f *fakeWorkDAO) FindByID(ctx context.Context, ownerId int64, workId string) (dao.Work, error) {
	return f.work, f.err
}

func (f *fakeWorkDAO) SumStatistic(ctx context.Context, workId string) (dao.WorkStatistic, error) {
	return dao.WorkStatistic{WorkId: workId, Pv: 3, Uv: 2, ShareCnt: 1}, nil
}

func TestWorkRepository(t *testing.T) {
	repo := NewWorkRepository(&fakeWorkDAO{err: dao.ErrRecordNotFound}, nil)
	_, err := repo.FindWork(context.Background(), 42, "work-1")
	assert.ErrorIs(t, err, ErrWorkNotFound)

	repo = NewWorkRepository(&fakeWorkDAO{err: errors.New("连接超时")}, nil)
	_, err = repo.FindWork(context.Background(), 42, "work-1")
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrWorkNotFound))

	repo = NewWorkRepository(&fakeWorkDAO{work: dao.Work{WorkId: "work-1", OwnerId: 42, Title: "春季招聘", Version: 3}}, nil)
	work, err := repo.FindWork(context.Background(), 42, "work-1")
	require.NoError(t, err)
	assert.Equal(t, domain.Work{WorkID: "work-1", OwnerID: 42, Title: "春季招聘", Version: 3}, work)
	stat, err := repo.Statistic(context.Background(), "work-1")
	require.NoError(t, err)
	assert.Equal(t, domain.WorkStatistic{Pv: 3, Uv: 2, ShareCnt: 1}, stat)
}
