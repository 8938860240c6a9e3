package handlers

import (
	"IcePlant/internal/config"
	"IcePlant/internal/flash"
	"IcePlant/internal/middleware"
	"IcePlant/internal/service"
	"IcePlant/internal/view"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// base общие зависимости и помощники всех хендлеров.
type base struct {
	svc      *service.Services
	renderer view.Renderer
	logger   *zap.SugaredLogger
	cfg      *config.Config
}

// page собирает общую часть страницы: текущий пользователь, уведомления, тема.
// Уведомления снимаются только после успешного чтения настроек.
func (b *base) page(w http.ResponseWriter, r *http.Request, title string) (view.Page, error) {
	p := view.Page{Title: title}
	if v := middleware.ViewerFrom(r.Context()); v != nil {
		st, err := b.svc.Settings.Get(r.Context(), v.User.ID)
		if err != nil {
			return view.Page{}, fmt.Errorf("load viewer settings: %w", err)
		}
		p.Viewer = v.User
		p.DarkTheme = st.DarkTheme
	}
	p.Flashes = flash.Pop(w, r)
	return p, nil
}

func (b *base) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := b.renderer.Render(w, name, data); err != nil {
		b.internalError(w, r, err)
	}
}

// internalError ошибки хранилища, кроме ожидаемых, не показываются пользователю.
func (b *base) internalError(w http.ResponseWriter, r *http.Request, err error) {
	b.logger.Errorw("request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"error", err,
	)
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func redirectWith(w http.ResponseWriter, r *http.Request, kind flash.Kind, text, to string) {
	flash.Set(w, r, kind, text)
	http.Redirect(w, r, to, http.StatusFound)
}

// pathID числовой id из пути; нечисловой id обрабатывается как несуществующий.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func viewerID(r *http.Request) int64 {
	return middleware.ViewerID(r.Context())
}
