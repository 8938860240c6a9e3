package handlers_test

import (
	"IcePlant/internal/config"
	"IcePlant/internal/handlers"
	"IcePlant/internal/model"
	"IcePlant/internal/repo"
	"IcePlant/internal/service"
	"IcePlant/internal/session"
	"IcePlant/internal/view"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type testApp struct {
	router http.Handler
	db     *gorm.DB
}

type appOption func(*service.Options)

func enforceAllowMessages(o *service.Options) { o.EnforceAllowMessages = true }

// newTestApp весь стек поверх отдельной in-memory SQLite на каждый тест.
func newTestApp(t *testing.T, opts ...appOption) *testApp {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := repo.InitDB("file:"+name+"?mode=memory&cache=shared", zap.NewNop().Sugar())
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	logger := zap.NewNop().Sugar()
	cfg := &config.Config{SessionTTL: time.Hour, StaticDir: t.TempDir()}

	o := service.Options{Passwords: service.PlainPasswords{}}
	for _, opt := range opts {
		opt(&o)
	}
	svc := service.New(db, logger, o)
	renderer, err := view.NewTemplateRenderer()
	require.NoError(t, err)

	health := func(ctx context.Context) error { return repo.Ping(ctx, db) }
	h := handlers.NewHandler(svc, session.NewJWTStore("test-secret", time.Hour), renderer, health, logger, cfg)
	return &testApp{router: h.Router, db: db}
}

// client хранит cookie между запросами, как браузер.
type client struct {
	t       *testing.T
	app     *testApp
	cookies map[string]*http.Cookie
}

func (a *testApp) client(t *testing.T) *client {
	return &client{t: t, app: a, cookies: map[string]*http.Cookie{}}
}

func (c *client) do(method, path string, form url.Values) *httptest.ResponseRecorder {
	c.t.Helper()
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, ck := range c.cookies {
		req.AddCookie(&http.Cookie{Name: ck.Name, Value: ck.Value})
	}
	rr := httptest.NewRecorder()
	c.app.router.ServeHTTP(rr, req)
	for _, ck := range rr.Result().Cookies() {
		if ck.MaxAge < 0 || ck.Value == "" {
			delete(c.cookies, ck.Name)
			continue
		}
		c.cookies[ck.Name] = ck
	}
	return rr
}

func (c *client) get(path string) *httptest.ResponseRecorder {
	return c.do(http.MethodGet, path, nil)
}

func (c *client) post(path string, form url.Values) *httptest.ResponseRecorder {
	if form == nil {
		form = url.Values{}
	}
	return c.do(http.MethodPost, path, form)
}

// follow проходит по редиректу и возвращает тело следующей страницы.
func (c *client) follow(rr *httptest.ResponseRecorder) string {
	c.t.Helper()
	require.Equal(c.t, http.StatusFound, rr.Code, rr.Body.String())
	return c.get(rr.Header().Get("Location")).Body.String()
}

func (c *client) register(username string) {
	c.t.Helper()
	rr := c.post("/register", url.Values{"username": {username}, "password": {"pw-" + username}, "contact": {"555-" + username}})
	require.Equal(c.t, http.StatusFound, rr.Code)
	require.Equal(c.t, "/", rr.Header().Get("Location"))
}

func (a *testApp) user(t *testing.T, username string) model.User {
	t.Helper()
	var u model.User
	require.NoError(t, a.db.Where("username = ?", username).First(&u).Error)
	return u
}

func (a *testApp) count(t *testing.T, m any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, a.db.Model(m).Count(&n).Error)
	return n
}
