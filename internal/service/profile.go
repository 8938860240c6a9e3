package service

import (
	"IcePlant/internal/model"
	"context"
)

// ProfileService собирает страницу профиля из нескольких сервисов.
type ProfileService struct {
	users     *UserService
	settings  *SettingsService
	listings  *ListingService
	posts     *PostService
	portfolio *PortfolioService
	follows   *FollowService
}

func NewProfileService(
	users *UserService,
	settings *SettingsService,
	listings *ListingService,
	posts *PostService,
	portfolio *PortfolioService,
	follows *FollowService,
) *ProfileService {
	return &ProfileService{
		users:     users,
		settings:  settings,
		listings:  listings,
		posts:     posts,
		portfolio: portfolio,
		follows:   follows,
	}
}

type Profile struct {
	User      *model.User
	Settings  model.Settings
	Listings  []model.Listing
	Websites  []model.Website
	Materials []model.Material
	Posts     []model.Post
	Followers int64
	Following int64

	IsOwner     bool
	IsFollowing bool
}

// ContactVisible контакт виден владельцу всегда, остальным: если включён show_contact.
func (p *Profile) ContactVisible() bool {
	return p.IsOwner || p.Settings.ShowContact
}

// Profile viewerID == 0: анонимный просмотр.
func (s *ProfileService) Profile(ctx context.Context, viewerID, userID int64) (*Profile, error) {
	user, err := s.users.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	p := &Profile{User: user, IsOwner: viewerID == userID}

	if p.Settings, err = s.settings.Get(ctx, userID); err != nil {
		return nil, err
	}
	if p.Listings, err = s.listings.ByOwner(ctx, userID); err != nil {
		return nil, err
	}
	if p.Websites, err = s.portfolio.Websites(ctx, userID); err != nil {
		return nil, err
	}
	if p.Materials, err = s.portfolio.Materials(ctx, userID); err != nil {
		return nil, err
	}
	if p.Posts, err = s.posts.ByOwner(ctx, userID); err != nil {
		return nil, err
	}
	if p.Followers, p.Following, err = s.follows.Counts(ctx, userID); err != nil {
		return nil, err
	}
	if p.IsFollowing, err = s.follows.IsFollowing(ctx, viewerID, userID); err != nil {
		return nil, err
	}
	return p, nil
}
