package seed

import (
	"IcePlant/internal/model"
	"IcePlant/internal/repo"
	"IcePlant/internal/service"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newServices(t *testing.T) (*service.Services, *gorm.DB) {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := repo.InitDB("file:"+name+"?mode=memory&cache=shared", zap.NewNop().Sugar())
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return service.New(db, zap.NewNop().Sugar(), service.Options{}), db
}

func TestSeeder_Run(t *testing.T) {
	svc, db := newServices(t)
	opts := Options{Users: 5, ListingsPerUser: 2, PostsPerUser: 1, Follows: 8, Messages: 6, Seed: 42}

	sum, err := New(svc, zap.NewNop().Sugar(), opts).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5, sum.Users)
	assert.Equal(t, 10, sum.Listings)
	assert.Equal(t, 5, sum.Posts)
	assert.Equal(t, 6, sum.Messages)
	assert.LessOrEqual(t, sum.Follows, 8)

	var users, listings, follows, settings int64
	require.NoError(t, db.Model(&model.User{}).Count(&users).Error)
	require.NoError(t, db.Model(&model.Listing{}).Count(&listings).Error)
	require.NoError(t, db.Model(&model.Follow{}).Count(&follows).Error)
	require.NoError(t, db.Model(&model.Settings{}).Count(&settings).Error)
	assert.Equal(t, int64(5), users)
	assert.Equal(t, int64(5), settings)
	assert.Equal(t, int64(10), listings)
	assert.Equal(t, int64(sum.Follows), follows)

	// подписок на себя нет
	var self int64
	require.NoError(t, db.Model(&model.Follow{}).Where("follower_id = followed_id").Count(&self).Error)
	assert.Zero(t, self)
}

func TestSeeder_DemoUsersCanLogIn(t *testing.T) {
	svc, db := newServices(t)
	_, err := New(svc, zap.NewNop().Sugar(), Options{Users: 1, Seed: 7}).Run(context.Background())
	require.NoError(t, err)

	var u model.User
	require.NoError(t, db.First(&u).Error)
	_, err = svc.Users.Login(context.Background(), u.Username, DemoPassword)
	assert.NoError(t, err)
}
