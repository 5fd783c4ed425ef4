package middleware_test

import (
	"io"
	"net/http/httptest"
	"testing"

	"neoflix/internal/apperr"
	"neoflix/internal/auth"
	"neoflix/internal/config"
	"neoflix/internal/metrics"
	"neoflix/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(t *testing.T) (*fiber.App, *auth.TokenCodec) {
	t.Helper()
	codec, err := auth.NewTokenCodec(config.AuthConfig{JWTSecret: "middleware-secret"})
	require.NoError(t, err)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(apperr.StatusCode(err)).SendString(apperr.PublicMessage(err))
		},
	})
	app.Use(middleware.Metrics())
	app.Use(middleware.Authenticate(codec, logger))
	app.Get("/whoami", func(c *fiber.Ctx) error {
		return c.SendString(middleware.UserID(c))
	})
	app.Get("/private", middleware.RequireUser(), func(c *fiber.Ctx) error {
		return c.SendString("hello " + middleware.UserID(c))
	})
	return app, codec
}

func do(t *testing.T, app *fiber.App, path, authorization string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodGet, path, nil)
	if authorization != "" {
		req.Header.Set(fiber.HeaderAuthorization, authorization)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestAuthenticate(t *testing.T) {
	app, codec := newApp(t)
	token, err := codec.Sign("user-1", map[string]any{"name": "Graph Academy"})
	require.NoError(t, err)

	other, err := auth.NewTokenCodec(config.AuthConfig{JWTSecret: "someone-else"})
	require.NoError(t, err)
	foreign, err := other.Sign("user-2", nil)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "valid token", header: "Bearer " + token, want: "user-1"},
		{name: "no header", header: "", want: ""},
		{name: "logged out client", header: "Bearer undefined", want: ""},
		{name: "wrong scheme", header: "Basic " + token, want: ""},
		{name: "garbage", header: "Bearer not-a-jwt", want: ""},
		{name: "other secret", header: "Bearer " + foreign, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := do(t, app, "/whoami", tt.header)
			assert.Equal(t, fiber.StatusOK, status)
			assert.Equal(t, tt.want, body)
		})
	}
}

func TestRequireUser(t *testing.T) {
	app, codec := newApp(t)

	status, body := do(t, app, "/private", "")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "Unauthorized", body)

	token, err := codec.Sign("user-1", nil)
	require.NoError(t, err)
	status, body = do(t, app, "/private", "Bearer "+token)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "hello user-1", body)
}

func TestMetricsUsesRoutePattern(t *testing.T) {
	app, _ := newApp(t)
	counter := metrics.HTTPRequestsTotal.WithLabelValues(fiber.MethodGet, "/private", "401")
	before := testutil.ToFloat64(counter)

	do(t, app, "/private", "")
	do(t, app, "/private", "Bearer undefined")

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
}
