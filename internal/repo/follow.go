package repo

import (
	"IcePlant/internal/model"
	"context"

	"gorm.io/gorm"
)

// FollowRepository подписки. Счётчики всегда считаются по таблице, без кэша.
type FollowRepository interface {
	// Toggle переключает подписку; following: состояние после вызова.
	Toggle(ctx context.Context, followerID, followedID int64) (following bool, err error)
	Exists(ctx context.Context, followerID, followedID int64) (bool, error)
	CountFollowers(ctx context.Context, userID int64) (int64, error)
	CountFollowing(ctx context.Context, userID int64) (int64, error)
}

type followRepo struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepo{db: db}
}

func (r *followRepo) Toggle(ctx context.Context, followerID, followedID int64) (bool, error) {
	row := &model.Follow{FollowerID: followerID, FollowedID: followedID}
	return toggleRow(ctx, r.db, row, []string{"follower_id", "followed_id"},
		"follower_id = ? AND followed_id = ?", followerID, followedID)
}

func (r *followRepo) Exists(ctx context.Context, followerID, followedID int64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Follow{}).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Count(&n).Error
	return n > 0, err
}

func (r *followRepo) CountFollowers(ctx context.Context, userID int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Follow{}).Where("followed_id = ?", userID).Count(&n).Error
	return n, err
}

func (r *followRepo) CountFollowing(ctx context.Context, userID int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Follow{}).Where("follower_id = ?", userID).Count(&n).Error
	return n, err
}
