package service

import (
	"IcePlant/internal/model"
	"IcePlant/internal/repo"
	"context"
	"errors"
	"fmt"
)

type ListingService struct {
	repo repo.ListingRepository
}

func NewListingService(r repo.ListingRepository) *ListingService {
	return &ListingService{repo: r}
}

// ListingInput поля формы объявления; обязательны название и локация.
type ListingInput struct {
	Title       string `validate:"required"`
	Location    string `validate:"required"`
	Capacity    string
	Description string
	Quote       string
	ImageURL    string
}

func (s *ListingService) Create(ctx context.Context, ownerID int64, in ListingInput) (*model.Listing, error) {
	if err := check(&in); err != nil {
		return nil, err
	}
	l := &model.Listing{
		Title:       in.Title,
		Location:    in.Location,
		Capacity:    in.Capacity,
		Description: in.Description,
		Quote:       in.Quote,
		ImageURL:    in.ImageURL,
		OwnerID:     ownerID,
	}
	if err := s.repo.Create(ctx, l); err != nil {
		return nil, fmt.Errorf("create listing: %w", err)
	}
	return l, nil
}

// Get объявление с владельцем; ErrNotFound, если его нет.
func (s *ListingService) Get(ctx context.Context, id int64) (*model.Listing, error) {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, fmt.Errorf("listing %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return l, nil
}

func (s *ListingService) List(ctx context.Context) ([]model.Listing, error) {
	return s.repo.List(ctx, 0)
}

func (s *ListingService) Latest(ctx context.Context, n int) ([]model.Listing, error) {
	return s.repo.List(ctx, n)
}

func (s *ListingService) ByOwner(ctx context.Context, ownerID int64) ([]model.Listing, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *ListingService) InterestedUsers(ctx context.Context, listingID int64) ([]model.User, error) {
	return s.repo.InterestedUsers(ctx, listingID)
}

func (s *ListingService) IsInterested(ctx context.Context, userID, listingID int64) (bool, error) {
	return s.repo.HasInterest(ctx, userID, listingID)
}

// ToggleInterested ставит или снимает закладку; возвращает состояние после вызова.
func (s *ListingService) ToggleInterested(ctx context.Context, userID, listingID int64) (bool, error) {
	if _, err := s.Get(ctx, listingID); err != nil {
		return false, err
	}
	return s.repo.ToggleInterest(ctx, userID, listingID)
}
