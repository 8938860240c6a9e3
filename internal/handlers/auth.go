package handlers

import (
	"IcePlant/internal/flash"
	"IcePlant/internal/middleware"
	"IcePlant/internal/service"
	"IcePlant/internal/session"
	"IcePlant/internal/view"
	"errors"
	"net/http"
)

// AuthHandler регистрация, вход и выход.
type AuthHandler struct {
	*base
	sessions session.Store
}

func (h *AuthHandler) Auth(w http.ResponseWriter, r *http.Request) {
	pg, err := h.page(w, r, "Login")
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	h.render(w, r, view.PageAuth, view.AuthPage{Page: pg})
}

// Register создаёт пользователя и сразу открывает для него сессию.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	user, err := h.svc.Users.Register(r.Context(), service.RegisterInput{
		Username:     r.FormValue("username"),
		Password:     r.FormValue("password"),
		Contact:      r.FormValue("contact"),
		Location:     r.FormValue("location"),
		ProfileImage: r.FormValue("profile_image"),
		Website:      r.FormValue("website"),
		Bio:          r.FormValue("bio"),
	})
	switch {
	case errors.Is(err, service.ErrValidation):
		redirectWith(w, r, flash.Error, "Username and password are required.", "/auth")
		return
	case errors.Is(err, service.ErrUsernameTaken):
		redirectWith(w, r, flash.Error, "Username already exists. Please choose another.", "/auth")
		return
	case err != nil:
		h.internalError(w, r, err)
		return
	}

	if !h.startSession(w, r, user.ID) {
		return
	}
	h.logger.Infow("user registered", "user_id", user.ID)
	redirectWith(w, r, flash.Info, "Registration successful. You are now logged in.", "/")
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	user, err := h.svc.Users.Login(r.Context(), r.FormValue("username"), r.FormValue("password"))
	if errors.Is(err, service.ErrInvalidCredentials) {
		redirectWith(w, r, flash.Error, "Invalid username or password.", "/auth")
		return
	}
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	if !h.startSession(w, r, user.ID) {
		return
	}
	redirectWith(w, r, flash.Info, "Login successful.", "/")
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if v := middleware.ViewerFrom(r.Context()); v != nil {
		if err := h.sessions.Destroy(r.Context(), v.Token); err != nil {
			h.logger.Warnw("destroy session", "user_id", v.User.ID, "error", err)
		}
	}
	middleware.ClearSessionCookie(w, h.cfg.SecureCookies)
	redirectWith(w, r, flash.Info, "You have been logged out.", "/")
}

func (h *AuthHandler) startSession(w http.ResponseWriter, r *http.Request, userID int64) bool {
	token, err := h.sessions.Create(r.Context(), userID)
	if err != nil {
		h.internalError(w, r, err)
		return false
	}
	middleware.SetSessionCookie(w, token, h.cfg.SessionTTL, h.cfg.SecureCookies)
	return true
}
