package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskassign/interfaces/api/middleware"
	"taskassign/pkg/token"
)

func newGuardedApp(tokens *token.Service) *fiber.App {
	app := fiber.New()

	app.Get("/protected", middleware.Authenticate(tokens), func(c *fiber.Ctx) error {
		identity, err := middleware.IdentityFrom(c)
		if err != nil {
			return fiber.ErrInternalServerError
		}
		return c.JSON(fiber.Map{"subject": identity.SubjectID.String(), "role": identity.Role})
	})

	app.Get("/admin-only", middleware.Authenticate(tokens), middleware.RequireAdmin(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	return app
}

func TestAuthenticateMissingHeader(t *testing.T) {
	tokens := token.NewService("test-secret", time.Hour)
	app := newGuardedApp(tokens)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthenticateMalformedHeader(t *testing.T) {
	tokens := token.NewService("test-secret", time.Hour)
	app := newGuardedApp(tokens)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthenticateInvalidToken(t *testing.T) {
	tokens := token.NewService("test-secret", time.Hour)
	app := newGuardedApp(tokens)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthenticateExpiredToken(t *testing.T) {
	expired := token.NewService("test-secret", -time.Minute)
	raw, err := expired.Issue(uuid.New(), token.RoleUser)
	require.NoError(t, err)

	app := newGuardedApp(token.NewService("test-secret", time.Hour))
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+raw)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthenticateValidToken(t *testing.T) {
	tokens := token.NewService("test-secret", time.Hour)
	app := newGuardedApp(tokens)

	raw, err := tokens.Issue(uuid.New(), token.RoleUser)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+raw)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// A valid non-admin token reaches the role gate and gets 403, not 401: the
// two stages fail differently.
func TestRequireAdminForbidsUserRole(t *testing.T) {
	tokens := token.NewService("test-secret", time.Hour)
	app := newGuardedApp(tokens)

	raw, err := tokens.Issue(uuid.New(), token.RoleUser)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+raw)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRequireAdminAllowsAdminRole(t *testing.T) {
	tokens := token.NewService("test-secret", time.Hour)
	app := newGuardedApp(tokens)

	raw, err := tokens.Issue(uuid.New(), token.RoleAdmin)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+raw)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
