package service

import (
	"IcePlant/internal/model"
	"IcePlant/internal/repo"
	"context"
	"fmt"
)

type PostService struct {
	repo repo.PostRepository
}

func NewPostService(r repo.PostRepository) *PostService {
	return &PostService{repo: r}
}

type PostInput struct {
	Content  string `validate:"required"`
	ImageURL string
}

func (s *PostService) Create(ctx context.Context, ownerID int64, in PostInput) (*model.Post, error) {
	if err := check(&in); err != nil {
		return nil, err
	}
	p := &model.Post{OwnerID: ownerID, Content: in.Content, ImageURL: in.ImageURL}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return p, nil
}

func (s *PostService) Latest(ctx context.Context, n int) ([]model.Post, error) {
	return s.repo.List(ctx, n)
}

func (s *PostService) ByOwner(ctx context.Context, ownerID int64) ([]model.Post, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// PortfolioService сайты и материалы, которые пользователь показывает в профиле.
type PortfolioService struct {
	repo repo.PortfolioRepository
}

func NewPortfolioService(r repo.PortfolioRepository) *PortfolioService {
	return &PortfolioService{repo: r}
}

type WebsiteInput struct {
	URL         string `validate:"required"`
	Description string
}

type MaterialInput struct {
	Name        string `validate:"required"`
	Description string
}

func (s *PortfolioService) AddWebsite(ctx context.Context, ownerID int64, in WebsiteInput) (*model.Website, error) {
	if err := check(&in); err != nil {
		return nil, err
	}
	w := &model.Website{OwnerID: ownerID, URL: in.URL, Description: in.Description}
	if err := s.repo.CreateWebsite(ctx, w); err != nil {
		return nil, fmt.Errorf("create website: %w", err)
	}
	return w, nil
}

func (s *PortfolioService) Websites(ctx context.Context, ownerID int64) ([]model.Website, error) {
	return s.repo.Websites(ctx, ownerID)
}

func (s *PortfolioService) AddMaterial(ctx context.Context, ownerID int64, in MaterialInput) (*model.Material, error) {
	if err := check(&in); err != nil {
		return nil, err
	}
	m := &model.Material{OwnerID: ownerID, Name: in.Name, Description: in.Description}
	if err := s.repo.CreateMaterial(ctx, m); err != nil {
		return nil, fmt.Errorf("create material: %w", err)
	}
	return m, nil
}

func (s *PortfolioService) Materials(ctx context.Context, ownerID int64) ([]model.Material, error) {
	return s.repo.Materials(ctx, ownerID)
}
