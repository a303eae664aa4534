package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/punjabi-rishtey/admin-api/internal/config"
)

func newGuardedApp(t *testing.T, cfg *config.Config) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Get("/guarded", JWTProtected(cfg), AdminRequired(cfg), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	claims["exp"] = time.Now().Add(time.Hour).Unix()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestAdminGate(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret", AdminToken: "static-secret"}
	app := newGuardedApp(t, cfg)

	t.Run("no credentials rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("admin role token admitted", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, cfg.JWTSecret, jwt.MapClaims{"role": "admin"}))
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("token without admin role forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, cfg.JWTSecret, jwt.MapClaims{"email": "someone@example.com"}))
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	// The static token works without any bearer token at all.
	t.Run("static token admitted without jwt", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		req.Header.Set("X-Admin-Token", cfg.AdminToken)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("wrong static token rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		req.Header.Set("X-Admin-Token", "guess")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

// An empty ADMIN_TOKEN disables the static path entirely.
func TestAdminGateStaticTokenDisabled(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}
	app := newGuardedApp(t, cfg)

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("X-Admin-Token", "")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
