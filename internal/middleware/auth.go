package middleware

import (
	"IcePlant/internal/flash"
	"IcePlant/internal/model"
	"IcePlant/internal/session"
	"context"
	"errors"
	"net/http"
	"time"
)

type ctxKey string

const viewerKey ctxKey = "viewer"

// SessionCookie имя cookie с токеном сессии.
const SessionCookie = "auth_token"

// Viewer текущий пользователь запроса.
type Viewer struct {
	User  *model.User
	Token string
}

// UserLookup загрузка пользователя по id (service.UserService).
type UserLookup interface {
	Get(ctx context.Context, id int64) (*model.User, error)
}

// WithSession кладёт в контекст Viewer, если cookie указывает на живую сессию существующего пользователя.
// Во всех остальных случаях запрос идёт дальше анонимным.
func WithSession(store session.Store, users UserLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, err := r.Cookie(SessionCookie)
			if err != nil || c.Value == "" {
				next.ServeHTTP(w, r)
				return
			}
			userID, err := store.Resolve(r.Context(), c.Value)
			if err != nil {
				if !errors.Is(err, session.ErrInvalidToken) {
					logger.Errorw("session resolve failed", "error", err)
				}
				next.ServeHTTP(w, r)
				return
			}
			user, err := users.Get(r.Context(), userID)
			if err != nil {
				logger.Debugw("session user not loaded", "user_id", userID, "error", err)
				next.ServeHTTP(w, r)
				return
			}
			ctx := context.WithValue(r.Context(), viewerKey, &Viewer{User: user, Token: c.Value})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ViewerFrom текущий пользователь или nil для анонимного запроса.
func ViewerFrom(ctx context.Context) *Viewer {
	v, _ := ctx.Value(viewerKey).(*Viewer)
	return v
}

// ViewerID id текущего пользователя, 0 для анонимного.
func ViewerID(ctx context.Context) int64 {
	if v := ViewerFrom(ctx); v != nil && v.User != nil {
		return v.User.ID
	}
	return 0
}

// RequireUser отправляет анонимного пользователя на /auth с уведомлением.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ViewerFrom(r.Context()) == nil {
			flash.Set(w, r, flash.Error, "Please log in first.")
			http.Redirect(w, r, "/auth", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// SetSessionCookie ставит cookie с токеном сессии.
func SetSessionCookie(w http.ResponseWriter, token string, ttl time.Duration, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func ClearSessionCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
