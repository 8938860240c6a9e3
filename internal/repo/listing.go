package repo

import (
	"IcePlant/internal/model"
	"context"

	"gorm.io/gorm"
)

// ListingRepository доступ к объявлениям (ice cans) и закладкам на них.
type ListingRepository interface {
	Create(ctx context.Context, l *model.Listing) error
	// GetByID возвращает объявление вместе с владельцем или ErrNotFound.
	GetByID(ctx context.Context, id int64) (*model.Listing, error)
	// List все объявления, новые сверху; limit <= 0: без ограничения.
	List(ctx context.Context, limit int) ([]model.Listing, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]model.Listing, error)
	Search(ctx context.Context, q string) ([]model.Listing, error)

	// ToggleInterest переключает закладку; interested: состояние после вызова.
	ToggleInterest(ctx context.Context, userID, listingID int64) (interested bool, err error)
	HasInterest(ctx context.Context, userID, listingID int64) (bool, error)
	InterestedUsers(ctx context.Context, listingID int64) ([]model.User, error)
}

type listingRepo struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) ListingRepository {
	return &listingRepo{db: db}
}

func (r *listingRepo) Create(ctx context.Context, l *model.Listing) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *listingRepo) GetByID(ctx context.Context, id int64) (*model.Listing, error) {
	var l model.Listing
	if err := r.db.WithContext(ctx).Preload("Owner").First(&l, id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *listingRepo) List(ctx context.Context, limit int) ([]model.Listing, error) {
	q := r.db.WithContext(ctx).Preload("Owner").Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var out []model.Listing
	err := q.Find(&out).Error
	return out, err
}

func (r *listingRepo) ListByOwner(ctx context.Context, ownerID int64) ([]model.Listing, error) {
	var out []model.Listing
	err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("id DESC").Find(&out).Error
	return out, err
}

func (r *listingRepo) Search(ctx context.Context, q string) ([]model.Listing, error) {
	cond, args := likeAny(likePattern(q), "title", "description", "location", "CAST(created_at AS TEXT)")
	var out []model.Listing
	err := r.db.WithContext(ctx).Preload("Owner").Where(cond, args...).Order("id DESC").Find(&out).Error
	return out, err
}

func (r *listingRepo) ToggleInterest(ctx context.Context, userID, listingID int64) (bool, error) {
	row := &model.Interest{UserID: userID, ListingID: listingID}
	return toggleRow(ctx, r.db, row, []string{"user_id", "listing_id"},
		"user_id = ? AND listing_id = ?", userID, listingID)
}

func (r *listingRepo) HasInterest(ctx context.Context, userID, listingID int64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Interest{}).
		Where("user_id = ? AND listing_id = ?", userID, listingID).
		Count(&n).Error
	return n > 0, err
}

// InterestedUsers пользователи с закладкой на объявление, последние сверху.
func (r *listingRepo) InterestedUsers(ctx context.Context, listingID int64) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).
		Select("users.*").
		Joins("JOIN interests ON interests.user_id = users.id").
		Where("interests.listing_id = ?", listingID).
		Order("interests.created_at DESC, users.id DESC").
		Find(&users).Error
	return users, err
}
