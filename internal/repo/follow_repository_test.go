package repo

import (
	"IcePlant/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowRepository_ToggleAndCounts(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	r := NewFollowRepository(db)
	ctx := context.Background()

	a := mkUser(t, users, "a")
	b := mkUser(t, users, "b")
	c := mkUser(t, users, "c")

	following, err := r.Toggle(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.True(t, following)
	_, err = r.Toggle(ctx, c.ID, b.ID)
	require.NoError(t, err)
	_, err = r.Toggle(ctx, b.ID, a.ID)
	require.NoError(t, err)

	// счётчики совпадают с числом строк таблицы
	for _, u := range []*model.User{a, b, c} {
		var followers, followingN int64
		require.NoError(t, db.Model(&model.Follow{}).Where("followed_id = ?", u.ID).Count(&followers).Error)
		require.NoError(t, db.Model(&model.Follow{}).Where("follower_id = ?", u.ID).Count(&followingN).Error)

		gotFollowers, err := r.CountFollowers(ctx, u.ID)
		require.NoError(t, err)
		gotFollowing, err := r.CountFollowing(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, followers, gotFollowers)
		assert.Equal(t, followingN, gotFollowing)
	}

	n, _ := r.CountFollowers(ctx, b.ID)
	assert.Equal(t, int64(2), n)

	// повторный toggle снимает подписку
	following, err = r.Toggle(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.False(t, following)
	exists, err := r.Exists(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	n, _ = r.CountFollowers(ctx, b.ID)
	assert.Equal(t, int64(1), n)
}

func TestFollowRepository_ToggleAfterConcurrentInsert(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	r := NewFollowRepository(db)
	ctx := context.Background()

	a := mkUser(t, users, "a")
	b := mkUser(t, users, "b")

	// строку вставил параллельный запрос: toggle её снимает, а не падает
	require.NoError(t, db.Create(&model.Follow{FollowerID: a.ID, FollowedID: b.ID}).Error)
	following, err := r.Toggle(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.False(t, following)

	// вставка поверх строки, появившейся между delete и insert
	require.NoError(t, db.Create(&model.Follow{FollowerID: a.ID, FollowedID: b.ID}).Error)
	present, err := toggleRow(ctx, db, &model.Follow{FollowerID: a.ID, FollowedID: b.ID},
		[]string{"follower_id", "followed_id"}, "1 = 0")
	require.NoError(t, err)
	assert.True(t, present)

	n, err := r.CountFollowers(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	following, err = r.Toggle(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.False(t, following)
	n, err = r.CountFollowers(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}
