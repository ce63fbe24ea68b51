package authController

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"eduportal/config"
	"eduportal/gateway"
	"eduportal/middleware"
	authValidator "eduportal/validators/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthApp(t *testing.T, api http.HandlerFunc) *fiber.App {
	t.Helper()
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)
	gateway.Default = gateway.New(srv.URL)

	config.AppConfig = &config.Config{
		SessionCookie: "eduportal_session",
		SessionTTLHrs: 1,
	}
	middleware.InitSessionStore(nil)

	app := fiber.New()
	app.Post("/auth", authValidator.Login(), Login)
	app.Post("/register", authValidator.Register(), Register)
	app.Get("/logout", Logout)
	return app
}

func postForm(t *testing.T, app *fiber.App, path string, form url.Values) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestLoginStudent(t *testing.T) {
	app := setupAuthApp(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access": "a", "refresh": "r", "user": {"id": 7, "email": "s@b.c", "role": "student"}}`))
	})

	resp := postForm(t, app, "/auth", url.Values{
		"email":    {"s@b.c"},
		"password": {"hunter22"},
	})

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/student/dashboard", resp.Header.Get("Location"))
	assert.NotEmpty(t, resp.Header.Get("Set-Cookie"))
}

func TestLoginAdmin(t *testing.T) {
	app := setupAuthApp(t, func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "s3cret", payload["secretKey"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access": "a", "refresh": "r", "user": {"id": 2, "email": "boss@b.c", "role": "admin"}}`))
	})

	resp := postForm(t, app, "/auth", url.Values{
		"email":      {"boss@b.c"},
		"password":   {"hunter22"},
		"role":       {"admin"},
		"secret_key": {"s3cret"},
	})

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/admin/dashboard", resp.Header.Get("Location"))
}

func TestLoginAdminWithoutSecretKey(t *testing.T) {
	app := setupAuthApp(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("remote API must not be called")
	})

	resp := postForm(t, app, "/auth", url.Values{
		"email":    {"boss@b.c"},
		"password": {"hunter22"},
		"role":     {"admin"},
	})

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/auth?error=Secret+key+is+required+for+admin+login%21", resp.Header.Get("Location"))
}

func TestLoginBadCredentials(t *testing.T) {
	app := setupAuthApp(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail": "Invalid email or password"}`))
	})

	resp := postForm(t, app, "/auth", url.Values{
		"email":    {"s@b.c"},
		"password": {"wrong"},
	})

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/auth?error=Invalid+email+or+password", resp.Header.Get("Location"))
}

func TestRegisterStudent(t *testing.T) {
	app := setupAuthApp(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/register/", r.URL.Path)

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "2000-05-14", payload["date_of_birth"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access": "a", "refresh": "r", "user": {"id": 9, "email": "new@b.c", "role": "student"}}`))
	})

	resp := postForm(t, app, "/register", url.Values{
		"email":         {"new@b.c"},
		"password":      {"hunter22"},
		"first_name":    {"Sam"},
		"last_name":     {"Lee"},
		"phone":         {"5551234567"},
		"date_of_birth": {"2000-05-14"},
		"address":       {"12 Main St"},
	})

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/student/dashboard", resp.Header.Get("Location"))
}

func TestRegisterValidation(t *testing.T) {
	app := setupAuthApp(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("remote API must not be called")
	})

	resp := postForm(t, app, "/register", url.Values{
		"email":         {"new@b.c"},
		"password":      {"shrt"},
		"first_name":    {"Sam"},
		"last_name":     {"Lee"},
		"phone":         {"5551234567"},
		"date_of_birth": {"2000-05-14"},
		"address":       {"12 Main St"},
	})

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t,
		"/register?error=Password+must+be+at+least+6+characters+long%21",
		resp.Header.Get("Location"))
}

func TestLogout(t *testing.T) {
	app := setupAuthApp(t, func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
}
