package http

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/restaurant-crm/internal/observability"
	apperrors "github.com/spec-kit/restaurant-crm/pkg/util"
)

func newTestApp(t *testing.T) (*fiber.App, *observability.Metrics) {
	t.Helper()
	metrics := observability.NewMetrics()
	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), metrics, 5*time.Second)
	return app, metrics
}

func decodeErrorEnvelope(t *testing.T, body io.Reader) map[string]any {
	t.Helper()
	var payload map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&payload))
	envelope, ok := payload["error"].(map[string]any)
	require.True(t, ok, "expected error envelope")
	return envelope
}

func TestErrorMiddlewareRendersDomainError(t *testing.T) {
	app, _ := newTestApp(t)
	app.Get("/boom", func(c *fiber.Ctx) error {
		return apperrors.NewNotFound("lead", map[string]any{"id": 9})
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 404, resp.StatusCode)
	envelope := decodeErrorEnvelope(t, resp.Body)
	assert.Equal(t, "NOT_FOUND", envelope["code"])
	assert.Equal(t, "lead not found", envelope["message"])
	assert.Contains(t, envelope, "details")
}

func TestErrorMiddlewareRecoversFromPanic(t *testing.T) {
	app, metrics := newTestApp(t)
	app.Get("/panic", func(c *fiber.Ctx) error {
		panic("unexpected")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/panic", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 500, resp.StatusCode)
	envelope := decodeErrorEnvelope(t, resp.Body)
	assert.Equal(t, "INTERNAL_ERROR", envelope["code"])

	_, errCounts := metrics.Snapshot()
	assert.NotEmpty(t, errCounts)
}

func TestErrorMiddlewarePassesThroughSuccess(t *testing.T) {
	app, _ := newTestApp(t)
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"data": "ok"})
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 200, resp.StatusCode)
}
