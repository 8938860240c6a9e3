package handlers

import (
	"IcePlant/internal/config"
	"IcePlant/internal/middleware"
	"IcePlant/internal/service"
	"IcePlant/internal/session"
	"IcePlant/internal/view"
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	svc *service.Services,
	sessions session.Store,
	renderer view.Renderer,
	health func(ctx context.Context) error,
	logger *zap.SugaredLogger,
	cfg *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.WithLogging)
	r.Use(chimw.Recoverer)
	r.Use(middleware.WithMetrics)
	r.Use(middleware.WithGzip)
	r.Use(middleware.WithSession(sessions, svc.Users))

	b := &base{svc: svc, renderer: renderer, logger: logger, cfg: cfg}

	// Handlers
	authHandler := &AuthHandler{base: b, sessions: sessions}
	listingHandler := &ListingHandler{base: b}
	socialHandler := &SocialHandler{base: b}
	messageHandler := &MessageHandler{base: b}
	contentHandler := &ContentHandler{base: b}
	settingsHandler := &SettingsHandler{base: b}

	// Public routes
	r.Get("/", contentHandler.Home)
	r.Get("/search", contentHandler.Search)
	r.Get("/auth", authHandler.Auth)
	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)
	r.Get("/logout", authHandler.Logout)
	r.Get("/icecans", listingHandler.List)
	r.Get("/icecans/{id}", listingHandler.Show)
	r.Get("/owners", socialHandler.Owners)
	r.Get("/profile/{id}", socialHandler.Profile)

	// Login required
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireUser)

		r.Post("/icecans/create", listingHandler.Create)
		r.Post("/icecans/{id}/interested", listingHandler.ToggleInterested)
		r.Post("/follow/{id}", socialHandler.ToggleFollow)
		r.Post("/posts/create", contentHandler.CreatePost)
		r.Get("/websites", contentHandler.Websites)
		r.Post("/websites", contentHandler.AddWebsite)
		r.Get("/materials", contentHandler.Materials)
		r.Post("/materials", contentHandler.AddMaterial)
		r.Get("/messages", messageHandler.Messages)
		r.Post("/messages/send/{id}", messageHandler.Send)
		r.Get("/settings", settingsHandler.Show)
		r.Post("/settings", settingsHandler.Update)
	})

	// Service routes
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if health != nil {
			if err := health(r.Context()); err != nil {
				logger.Errorw("health check failed", "error", err)
				http.Error(w, "unavailable", http.StatusServiceUnavailable)
				return
			}
		}
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir))))

	return &Handler{Router: r}
}
