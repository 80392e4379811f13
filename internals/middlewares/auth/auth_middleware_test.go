package auth

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return s
}

func newProtectedApp(opts AuthJWTOpts, extra ...fiber.Handler) *fiber.App {
	app := fiber.New()
	handlers := append([]fiber.Handler{AuthJWT(opts)}, extra...)
	handlers = append(handlers, func(c *fiber.Ctx) error {
		role, _ := c.Locals(LocRole).(string)
		return c.SendString(role)
	})
	app.Get("/protected", handlers...)
	return app
}

func TestAuthJWT(t *testing.T) {
	userID := uuid.New()
	schoolID := uuid.New()
	token := signToken(t, jwt.MapClaims{
		"sub":       userID.String(),
		"school_id": schoolID.String(),
		"role":      "admin",
		"exp":       time.Now().Add(time.Hour).Unix(),
	})

	t.Run("valid bearer token", func(t *testing.T) {
		app := newProtectedApp(AuthJWTOpts{Secret: testSecret})
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)

		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, "admin", string(body))
	})

	t.Run("no token", func(t *testing.T) {
		app := newProtectedApp(AuthJWTOpts{Secret: testSecret})
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/protected", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("wrong secret", func(t *testing.T) {
		app := newProtectedApp(AuthJWTOpts{Secret: "other-secret"})
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)

		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := signToken(t, jwt.MapClaims{
			"sub": userID.String(),
			"exp": time.Now().Add(-time.Minute).Unix(),
		})
		app := newProtectedApp(AuthJWTOpts{Secret: testSecret})
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+expired)

		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("cookie fallback", func(t *testing.T) {
		app := newProtectedApp(AuthJWTOpts{Secret: testSecret, AllowCookieFallback: true})
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: token})

		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("cookie ignored without fallback", func(t *testing.T) {
		app := newProtectedApp(AuthJWTOpts{Secret: testSecret})
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: token})

		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}

func TestRequireRole(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"sub":  uuid.NewString(),
		"role": "staff",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	app := newProtectedApp(AuthJWTOpts{Secret: testSecret}, RequireRole("admin"))
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
