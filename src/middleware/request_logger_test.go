package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	app := fiber.New()
	app.Use(RequestLogger(zap.New(core)))
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/missing", func(c *fiber.Ctx) error { return c.Status(fiber.StatusNotFound).Send(nil) })
	app.Get("/boom", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusServiceUnavailable, "down") })

	cases := []struct {
		path   string
		status int
		level  zapcore.Level
	}{
		{"/ok", http.StatusOK, zapcore.InfoLevel},
		{"/missing", http.StatusNotFound, zapcore.WarnLevel},
		{"/boom", http.StatusServiceUnavailable, zapcore.ErrorLevel},
	}

	for _, tc := range cases {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, tc.path, nil), -1)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, tc.status, resp.StatusCode)

		entries := logs.TakeAll()
		require.Len(t, entries, 1, tc.path)
		assert.Equal(t, tc.level, entries[0].Level, tc.path)
		fields := entries[0].ContextMap()
		assert.Equal(t, tc.path, fields["path"])
		assert.EqualValues(t, tc.status, fields["status"])
	}
}
