package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/YairCer/iglesia-app/config"
	"github.com/YairCer/iglesia-app/database"
	"github.com/YairCer/iglesia-app/routes"
	"github.com/YairCer/iglesia-app/views"
)

func testConfig() *config.Config {
	return &config.Config{
		AppPort:     "5000",
		AppEnv:      "dev",
		SecretKey:   "test-secret",
		DatabaseURL: ":memory:",
	}
}

// newTestApp wires the app exactly as cmd/main.go does, against a fresh
// in-memory SQLite database.
func newTestApp(t *testing.T, cfg *config.Config) *echo.Echo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// a second pooled connection would see its own empty :memory: database
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	database.DB = db

	e := echo.New()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte(cfg.SecretKey))))
	e.Renderer = views.New()
	routes.Register(e, cfg)
	return e
}

// client carries session cookies between requests like a browser would.
type client struct {
	t   *testing.T
	e   *echo.Echo
	jar map[string]*http.Cookie
}

func newClient(t *testing.T, e *echo.Echo) *client {
	return &client{t: t, e: e, jar: map[string]*http.Cookie{}}
}

func (c *client) do(method, target string, form url.Values) *httptest.ResponseRecorder {
	c.t.Helper()

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	for _, ck := range c.jar {
		req.AddCookie(ck)
	}

	rec := httptest.NewRecorder()
	c.e.ServeHTTP(rec, req)

	for _, ck := range rec.Result().Cookies() {
		c.jar[ck.Name] = ck
	}
	return rec
}

func (c *client) get(target string) *httptest.ResponseRecorder {
	return c.do(http.MethodGet, target, nil)
}

func (c *client) post(target string, form url.Values) *httptest.ResponseRecorder {
	return c.do(http.MethodPost, target, form)
}

func (c *client) register(username, email, password string) *httptest.ResponseRecorder {
	return c.post("/register", url.Values{
		"username": {username},
		"email":    {email},
		"password": {password},
	})
}

func (c *client) login(email, password string) *httptest.ResponseRecorder {
	return c.post("/login", url.Values{
		"email":    {email},
		"password": {password},
	})
}

// signIn registers and logs in a fresh user, failing the test on any miss.
func (c *client) signIn(username, email, password string) {
	c.t.Helper()
	rec := c.register(username, email, password)
	require.Equal(c.t, http.StatusFound, rec.Code)
	rec = c.login(email, password)
	require.Equal(c.t, http.StatusFound, rec.Code)
	require.Equal(c.t, "/dashboard", rec.Header().Get(echo.HeaderLocation))
}
