package jwt

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobdesk/backend/pkg/access"
)

const testSecret = "test-secret"

func TestGenerateCarriesSubjectTriple(t *testing.T) {
	gen := NewGenerator(testSecret, "jobdesk", time.Hour)
	id := uuid.New()

	signed, err := gen.Generate(context.Background(), id, "dana@example.com", access.RoleCandidate)
	require.NoError(t, err)

	var claims Claims
	token, err := gojwt.ParseWithClaims(signed, &claims, func(*gojwt.Token) (any, error) {
		return []byte(testSecret), nil
	}, gojwt.WithValidMethods([]string{gojwt.SigningMethodHS256.Name}))
	require.NoError(t, err)
	require.True(t, token.Valid)

	assert.Equal(t, id.String(), claims.Subject)
	assert.Equal(t, "dana@example.com", claims.Email)
	assert.Equal(t, "Candidate", claims.Role)
	assert.Equal(t, "jobdesk", claims.Issuer)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func newMiddlewareApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Get("/protected", NewAuthMiddleware(testSecret, "jobdesk"), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"userId": c.Locals("userId"),
			"role":   c.Locals("role"),
		})
	})
	return app
}

func TestAuthMiddlewareAcceptsToken(t *testing.T) {
	app := newMiddlewareApp(t)
	gen := NewGenerator(testSecret, "jobdesk", time.Hour)
	signed, err := gen.Generate(context.Background(), uuid.New(), "dana@example.com", access.RoleCandidate)
	require.NoError(t, err)

	for _, header := range []string{"Bearer " + signed, signed} {
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", header)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	}
}

func TestAuthMiddlewareRejections(t *testing.T) {
	app := newMiddlewareApp(t)

	wrongSecret, err := NewGenerator("other-secret", "jobdesk", time.Hour).
		Generate(context.Background(), uuid.New(), "x@example.com", access.RoleCompany)
	require.NoError(t, err)
	wrongIssuer, err := NewGenerator(testSecret, "someone-else", time.Hour).
		Generate(context.Background(), uuid.New(), "x@example.com", access.RoleCompany)
	require.NoError(t, err)
	expired, err := NewGenerator(testSecret, "jobdesk", -time.Minute).
		Generate(context.Background(), uuid.New(), "x@example.com", access.RoleCompany)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"garbage token", "Bearer not-a-jwt"},
		{"wrong secret", "Bearer " + wrongSecret},
		{"wrong issuer", "Bearer " + wrongIssuer},
		{"expired", "Bearer " + expired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		})
	}
}
