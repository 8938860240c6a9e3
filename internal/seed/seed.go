// Package seed наполняет базу демонстрационным сообществом. Только для разработки.
package seed

import (
	"IcePlant/internal/model"
	"IcePlant/internal/service"
	"context"
	"errors"
	"fmt"

	"github.com/brianvoe/gofakeit/v6"
	"go.uber.org/zap"
)

// DemoPassword пароль всех созданных пользователей.
const DemoPassword = "iceplant"

type Options struct {
	Users           int
	ListingsPerUser int
	PostsPerUser    int
	Follows         int
	Messages        int
	// Seed 0: случайные данные при каждом запуске.
	Seed int64
}

func DefaultOptions() Options {
	return Options{Users: 12, ListingsPerUser: 2, PostsPerUser: 2, Follows: 30, Messages: 40}
}

// Summary сколько записей создано.
type Summary struct {
	Users, Listings, Posts, Websites, Materials, Follows, Messages int
}

// Seeder создаёт данные через сервисы, поэтому соблюдаются те же правила, что и в HTTP.
type Seeder struct {
	svc    *service.Services
	faker  *gofakeit.Faker
	logger *zap.SugaredLogger
	opts   Options
}

func New(svc *service.Services, logger *zap.SugaredLogger, opts Options) *Seeder {
	return &Seeder{svc: svc, faker: gofakeit.New(opts.Seed), logger: logger, opts: opts}
}

func (s *Seeder) Run(ctx context.Context) (Summary, error) {
	var sum Summary

	users := make([]*model.User, 0, s.opts.Users)
	for i := 0; i < s.opts.Users; i++ {
		u, err := s.user(ctx)
		if err != nil {
			return sum, err
		}
		users = append(users, u)
		sum.Users++

		n, err := s.content(ctx, u.ID, &sum)
		if err != nil {
			return sum, err
		}
		s.logger.Debugw("seeded user", "user_id", u.ID, "username", u.Username, "rows", n)
	}
	if len(users) < 2 {
		return sum, nil
	}

	for i := 0; i < s.opts.Follows; i++ {
		a, b := s.pair(users)
		following, err := s.svc.Follows.IsFollowing(ctx, a.ID, b.ID)
		if err != nil {
			return sum, err
		}
		if following {
			continue
		}
		if _, err := s.svc.Follows.Toggle(ctx, a.ID, b.ID); err != nil {
			return sum, fmt.Errorf("follow: %w", err)
		}
		sum.Follows++
	}

	for i := 0; i < s.opts.Messages; i++ {
		a, b := s.pair(users)
		if _, err := s.svc.Messages.Send(ctx, a.ID, b.ID, s.faker.Sentence(s.faker.Number(3, 12))); err != nil {
			return sum, fmt.Errorf("message: %w", err)
		}
		sum.Messages++
	}
	return sum, nil
}

// user регистрирует пользователя, подбирая свободное имя.
func (s *Seeder) user(ctx context.Context) (*model.User, error) {
	for attempt := 0; attempt < 10; attempt++ {
		name := s.faker.Username()
		if attempt > 0 {
			name = fmt.Sprintf("%s%d", name, s.faker.Number(10, 9999))
		}
		u, err := s.svc.Users.Register(ctx, service.RegisterInput{
			Username:     name,
			Password:     DemoPassword,
			Contact:      s.faker.Phone(),
			Location:     s.faker.City(),
			ProfileImage: fmt.Sprintf("https://picsum.photos/seed/%s/200/200", s.faker.UUID()),
			Website:      s.faker.URL(),
			Bio:          s.faker.Sentence(10),
		})
		if errors.Is(err, service.ErrUsernameTaken) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("register: %w", err)
		}
		return u, nil
	}
	return nil, errors.New("register: no free username after 10 attempts")
}

func (s *Seeder) content(ctx context.Context, userID int64, sum *Summary) (int, error) {
	n := 0
	for i := 0; i < s.opts.ListingsPerUser; i++ {
		_, err := s.svc.Listings.Create(ctx, userID, service.ListingInput{
			Title:       s.faker.Company() + " Ice Plant",
			Location:    s.faker.City(),
			Capacity:    fmt.Sprintf("%d tons/day", s.faker.Number(1, 50)),
			Description: s.faker.Paragraph(1, 3, 8, " "),
			Quote:       fmt.Sprintf("$%.2f per ton", s.faker.Price(20, 120)),
			ImageURL:    fmt.Sprintf("https://picsum.photos/seed/%s/800/600", s.faker.UUID()),
		})
		if err != nil {
			return n, fmt.Errorf("listing: %w", err)
		}
		sum.Listings++
		n++
	}
	for i := 0; i < s.opts.PostsPerUser; i++ {
		if _, err := s.svc.Posts.Create(ctx, userID, service.PostInput{Content: s.faker.Sentence(12)}); err != nil {
			return n, fmt.Errorf("post: %w", err)
		}
		sum.Posts++
		n++
	}
	if _, err := s.svc.Portfolio.AddWebsite(ctx, userID, service.WebsiteInput{
		URL:         s.faker.URL(),
		Description: s.faker.Sentence(5),
	}); err != nil {
		return n, fmt.Errorf("website: %w", err)
	}
	sum.Websites++
	if _, err := s.svc.Portfolio.AddMaterial(ctx, userID, service.MaterialInput{
		Name:        s.faker.Word(),
		Description: s.faker.Sentence(6),
	}); err != nil {
		return n, fmt.Errorf("material: %w", err)
	}
	sum.Materials++
	return n + 2, nil
}

// pair два разных пользователя.
func (s *Seeder) pair(users []*model.User) (*model.User, *model.User) {
	i := s.faker.Number(0, len(users)-1)
	j := s.faker.Number(0, len(users)-2)
	if j >= i {
		j++
	}
	return users[i], users[j]
}
