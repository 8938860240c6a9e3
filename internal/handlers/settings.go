package handlers

import (
	"IcePlant/internal/flash"
	"IcePlant/internal/service"
	"IcePlant/internal/view"
	"net/http"
)

// SettingsHandler настройки текущего пользователя.
type SettingsHandler struct {
	*base
}

func (h *SettingsHandler) Show(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.Settings.Get(r.Context(), viewerID(r))
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	pg, err := h.page(w, r, "Settings")
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	h.render(w, r, view.PageSettings, view.SettingsPage{Page: pg, Settings: st})
}

// Update отмеченный чекбокс: true, отсутствующий в форме: false.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectWith(w, r, flash.Error, "Invalid form.", "/settings")
		return
	}
	_, err := h.svc.Settings.Update(r.Context(), viewerID(r), service.Flags{
		ShowContact:   r.PostForm.Has("show_contact"),
		AllowMessages: r.PostForm.Has("allow_messages"),
		DarkTheme:     r.PostForm.Has("dark_theme"),
	})
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	redirectWith(w, r, flash.Info, "Settings updated.", "/settings")
}
