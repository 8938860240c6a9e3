// Command seed наполняет базу демонстрационными данными.
package main

import (
	"IcePlant/internal/config"
	"IcePlant/internal/logger"
	"IcePlant/internal/repo"
	"IcePlant/internal/seed"
	"IcePlant/internal/service"
	"context"
	"flag"
)

func main() {
	def := seed.DefaultOptions()
	users := flag.Int("users", def.Users, "сколько пользователей создать")
	listings := flag.Int("listings", def.ListingsPerUser, "объявлений на пользователя")
	posts := flag.Int("posts", def.PostsPerUser, "постов на пользователя")
	follows := flag.Int("follows", def.Follows, "сколько подписок попытаться создать")
	messages := flag.Int("messages", def.Messages, "сколько сообщений отправить")
	fakerSeed := flag.Int64("seed", 0, "seed генератора (0: случайный)")

	cfg := config.NewConfig()

	log := logger.New(cfg.LogLevel)
	sugar := log.Sugar()
	defer func() { _ = log.Sync() }()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN(), sugar)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	passwords, err := service.NewPasswordScheme(cfg.PasswordHashing)
	if err != nil {
		sugar.Fatalw("invalid password scheme", "error", err)
	}
	svc := service.New(gormDB, sugar, service.Options{Passwords: passwords})

	sum, err := seed.New(svc, sugar, seed.Options{
		Users:           *users,
		ListingsPerUser: *listings,
		PostsPerUser:    *posts,
		Follows:         *follows,
		Messages:        *messages,
		Seed:            *fakerSeed,
	}).Run(context.Background())
	if err != nil {
		sugar.Fatalw("seeding failed", "error", err, "created", sum)
	}

	sugar.Infow("seeding done",
		"users", sum.Users,
		"listings", sum.Listings,
		"posts", sum.Posts,
		"websites", sum.Websites,
		"materials", sum.Materials,
		"follows", sum.Follows,
		"messages", sum.Messages,
		"password", seed.DemoPassword,
	)
}
