package controller

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"contatorapido_backend/internals/features/users/session/service"
	middlewares "contatorapido_backend/internals/middlewares"
	helper "contatorapido_backend/internals/helpers"
	"contatorapido_backend/internals/views"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"go.uber.org/zap"
)

func newApp(t *testing.T, accessCode string) (*fiber.App, *service.Manager) {
	t.Helper()
	opts := service.Options{Secret: "test-secret"}
	if accessCode != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(accessCode), bcrypt.MinCost)
		require.NoError(t, err)
		opts.AccessCodeHash = string(hash)
	}
	m, err := service.NewManager(opts)
	require.NoError(t, err)

	app := fiber.New(fiber.Config{Views: views.NewEngine(), ViewsLayout: views.Layout})
	ctl := NewSessionController(m, zap.NewNop())
	app.Get(EntryPath, ctl.ShowLogin)
	app.Post("/login", ctl.Login)
	app.Post("/logout", ctl.Logout)
	app.Get("/api/session", ctl.Status)
	return app, m
}

func sessionCookie(resp *http.Response) *http.Cookie {
	for _, ck := range resp.Cookies() {
		if ck.Name == helper.SessionCookieName {
			return ck
		}
	}
	return nil
}

func postForm(t *testing.T, app *fiber.App, target string, form url.Values) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestShowLogin(t *testing.T) {
	app, m := newApp(t, "")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Entrar")
	assert.NotContains(t, string(body), "access_code")

	raw, _, err := m.Sign()
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: helper.SessionCookieName, Value: raw})
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, DirectoryPath, resp.Header.Get("Location"))
}

func TestLogin_WithoutAccessCode(t *testing.T) {
	app, m := newApp(t, "")

	resp := postForm(t, app, "/login", url.Values{})
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, DirectoryPath, resp.Header.Get("Location"))
	ck := sessionCookie(resp)
	require.NotNil(t, ck)
	assert.True(t, m.Verify(ck.Value))
}

func TestLogin_AccessCode(t *testing.T) {
	app, _ := newApp(t, "escola123")

	resp := postForm(t, app, "/login", url.Values{"access_code": {"errado"}})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Nil(t, sessionCookie(resp))
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Código de acesso incorreto")

	resp = postForm(t, app, "/login", url.Values{"access_code": {"escola123"}})
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.NotNil(t, sessionCookie(resp))
}

func TestLogout_ClearsFlag(t *testing.T) {
	app, m := newApp(t, "")
	raw, _, err := m.Sign()
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: helper.SessionCookieName, Value: raw})
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, EntryPath, resp.Header.Get("Location"))
	ck := sessionCookie(resp)
	require.NotNil(t, ck)
	assert.Empty(t, ck.Value)
}

func TestStatus(t *testing.T) {
	app, _ := newApp(t, "1234")
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/session", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `"authenticated":false`)
	assert.Contains(t, string(body), `"requires_access_code":true`)
}

func TestLogin_RateLimitedRendersForm(t *testing.T) {
	m, err := service.NewManager(service.Options{Secret: "test-secret"})
	require.NoError(t, err)
	ctl := NewSessionController(m, zap.NewNop())

	app := fiber.New(fiber.Config{Views: views.NewEngine(), ViewsLayout: views.Layout})
	app.Post("/login", middlewares.LoginRateLimiter(ctl.TooManyAttempts), ctl.Login)

	for i := 0; i < 5; i++ {
		resp := postForm(t, app, "/login", url.Values{})
		require.Equal(t, fiber.StatusFound, resp.StatusCode, i)
	}

	resp := postForm(t, app, "/login", url.Values{})
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), fiber.MIMETextHTML)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), TooManyAttemptsMessage)
	assert.Contains(t, string(body), `action="/login"`)
	assert.Nil(t, sessionCookie(resp))
}
