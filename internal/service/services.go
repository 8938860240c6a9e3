package service

import (
	"IcePlant/internal/repo"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Services набор всех сервисов поверх одной БД.
type Services struct {
	Users     *UserService
	Settings  *SettingsService
	Listings  *ListingService
	Follows   *FollowService
	Messages  *MessageService
	Posts     *PostService
	Portfolio *PortfolioService
	Search    *SearchService
	Profiles  *ProfileService
}

// Options поведение, настраиваемое из конфигурации.
type Options struct {
	Passwords            PasswordScheme
	EnforceAllowMessages bool
}

func New(db *gorm.DB, logger *zap.SugaredLogger, opts Options) *Services {
	userRepo := repo.NewUserRepository(db)
	listingRepo := repo.NewListingRepository(db)
	followRepo := repo.NewFollowRepository(db)
	messageRepo := repo.NewMessageRepository(db)
	postRepo := repo.NewPostRepository(db)
	portfolioRepo := repo.NewPortfolioRepository(db)

	s := &Services{
		Users:     NewUserService(userRepo, opts.Passwords),
		Settings:  NewSettingsService(userRepo),
		Listings:  NewListingService(listingRepo),
		Follows:   NewFollowService(followRepo, userRepo),
		Messages:  NewMessageService(messageRepo, userRepo, logger, opts.EnforceAllowMessages),
		Posts:     NewPostService(postRepo),
		Portfolio: NewPortfolioService(portfolioRepo),
		Search:    NewSearchService(userRepo, listingRepo, postRepo),
	}
	s.Profiles = NewProfileService(s.Users, s.Settings, s.Listings, s.Posts, s.Portfolio, s.Follows)
	return s
}
