package main

import (
	"IcePlant/internal/config"
	"IcePlant/internal/handlers"
	"IcePlant/internal/logger"
	"IcePlant/internal/middleware"
	"IcePlant/internal/repo"
	"IcePlant/internal/service"
	"IcePlant/internal/session"
	"IcePlant/internal/view"
	"context"
	"errors"
	"io"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	cfg := config.NewConfig()

	log := logger.New(cfg.LogLevel)

	// делаем регистратор SugaredLogger
	sugar := log.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := log.Sync(); err != nil {
			sugar.Debugw("Failed to sync logger", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN(), sugar)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	passwords, err := service.NewPasswordScheme(cfg.PasswordHashing)
	if err != nil {
		sugar.Fatalw("invalid password scheme", "error", err)
	}
	if _, plain := passwords.(service.PlainPasswords); plain {
		sugar.Warnw("passwords are stored in plain text; set PASSWORD_HASHING=bcrypt for new deployments")
	}
	if !cfg.EnforceAllowMessages {
		sugar.Warnw("allow_messages setting is not enforced; set ENFORCE_ALLOW_MESSAGES=true to enforce it")
	}

	sessions, err := newSessionStore(ctx, cfg, sugar)
	if err != nil {
		sugar.Fatalw("failed to initialize session store", "error", err)
	}

	renderer, err := view.NewTemplateRenderer()
	if err != nil {
		sugar.Fatalw("failed to parse templates", "error", err)
	}

	svc := service.New(gormDB, sugar, service.Options{
		Passwords:            passwords,
		EnforceAllowMessages: cfg.EnforceAllowMessages,
	})
	health := func(ctx context.Context) error { return repo.Ping(ctx, gormDB) }
	h := handlers.NewHandler(svc, sessions, renderer, health, sugar, cfg)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"Postgres", cfg.DatabaseURL != "",
		"DBPath", cfg.DBPath,
		"Redis", cfg.RedisURL != "",
		"PasswordHashing", cfg.PasswordHashing,
		"EnforceAllowMessages", cfg.EnforceAllowMessages,
	)

	srv := &http.Server{
		Addr:              cfg.BaseURL,
		Handler:           h.Router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sugar.Infow("Starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sugar.Fatalw("Server failed", "error", err)
		}
	}()

	<-ctx.Done()
	sugar.Infow("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		sugar.Errorw("graceful shutdown failed", "error", err)
	}
	closeSessions(sessions, sugar)
	closeDB(gormDB, sugar)
}

// newSessionStore redis, если задан REDIS_URL, иначе JWT в cookie.
func newSessionStore(ctx context.Context, cfg *config.Config, sugar *zap.SugaredLogger) (session.Store, error) {
	if cfg.RedisURL == "" {
		return session.NewJWTStore(cfg.SessionSecret, cfg.SessionTTL), nil
	}
	client, err := session.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		return nil, err
	}
	sugar.Infow("using redis session store")
	return session.NewRedisStore(client, cfg.SessionTTL), nil
}

// closeSessions закрывает стор сессий, если он держит соединения (redis).
func closeSessions(store session.Store, sugar *zap.SugaredLogger) {
	c, ok := store.(io.Closer)
	if !ok {
		return
	}
	if err := c.Close(); err != nil {
		sugar.Warnw("close session store", "error", err)
	}
}

func closeDB(db *gorm.DB, sugar *zap.SugaredLogger) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		sugar.Warnw("close database", "error", err)
	}
}
