package service

import (
	"IcePlant/internal/model"
	"IcePlant/internal/repo"
	"context"
	"strings"
)

type SearchService struct {
	users    repo.UserRepository
	listings repo.ListingRepository
	posts    repo.PostRepository
}

func NewSearchService(users repo.UserRepository, listings repo.ListingRepository, posts repo.PostRepository) *SearchService {
	return &SearchService{users: users, listings: listings, posts: posts}
}

// Results три независимые выборки, каждая новые сверху.
type Results struct {
	Query    string
	Owners   []model.User
	Listings []model.Listing
	Posts    []model.Post
}

// Search подстрочный поиск без учёта регистра. Пустой запрос: пустой результат без обращения к БД.
func (s *SearchService) Search(ctx context.Context, query string) (Results, error) {
	res := Results{Query: strings.TrimSpace(query)}
	if res.Query == "" {
		return res, nil
	}
	var err error
	if res.Owners, err = s.users.Search(ctx, res.Query); err != nil {
		return Results{}, err
	}
	if res.Listings, err = s.listings.Search(ctx, res.Query); err != nil {
		return Results{}, err
	}
	if res.Posts, err = s.posts.Search(ctx, res.Query); err != nil {
		return Results{}, err
	}
	return res, nil
}
