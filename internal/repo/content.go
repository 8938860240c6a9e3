package repo

import (
	"IcePlant/internal/model"
	"context"

	"gorm.io/gorm"
)

// PostRepository короткие записи ленты.
type PostRepository interface {
	Create(ctx context.Context, p *model.Post) error
	// List последние записи, limit <= 0: все.
	List(ctx context.Context, limit int) ([]model.Post, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]model.Post, error)
	Search(ctx context.Context, q string) ([]model.Post, error)
}

type postRepo struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepo{db: db}
}

func (r *postRepo) Create(ctx context.Context, p *model.Post) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *postRepo) List(ctx context.Context, limit int) ([]model.Post, error) {
	q := r.db.WithContext(ctx).Preload("Owner").Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var out []model.Post
	err := q.Find(&out).Error
	return out, err
}

func (r *postRepo) ListByOwner(ctx context.Context, ownerID int64) ([]model.Post, error) {
	var out []model.Post
	err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("id DESC").Find(&out).Error
	return out, err
}

func (r *postRepo) Search(ctx context.Context, q string) ([]model.Post, error) {
	cond, args := likeAny(likePattern(q), "content", "CAST(created_at AS TEXT)")
	var out []model.Post
	err := r.db.WithContext(ctx).Preload("Owner").Where(cond, args...).Order("id DESC").Find(&out).Error
	return out, err
}

// PortfolioRepository сайты и материалы пользователя.
type PortfolioRepository interface {
	CreateWebsite(ctx context.Context, w *model.Website) error
	Websites(ctx context.Context, ownerID int64) ([]model.Website, error)
	CreateMaterial(ctx context.Context, m *model.Material) error
	Materials(ctx context.Context, ownerID int64) ([]model.Material, error)
}

type portfolioRepo struct {
	db *gorm.DB
}

func NewPortfolioRepository(db *gorm.DB) PortfolioRepository {
	return &portfolioRepo{db: db}
}

func (r *portfolioRepo) CreateWebsite(ctx context.Context, w *model.Website) error {
	return r.db.WithContext(ctx).Create(w).Error
}

func (r *portfolioRepo) Websites(ctx context.Context, ownerID int64) ([]model.Website, error) {
	var out []model.Website
	err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("id DESC").Find(&out).Error
	return out, err
}

func (r *portfolioRepo) CreateMaterial(ctx context.Context, m *model.Material) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *portfolioRepo) Materials(ctx context.Context, ownerID int64) ([]model.Material, error) {
	var out []model.Material
	err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("id DESC").Find(&out).Error
	return out, err
}
