package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	apphttp "github.com/jhoicas/catalog-api/internal/interfaces/http"
)

func TestTracing_PropagaContextoAlHandler(t *testing.T) {
	app := fiber.New()
	app.Use(apphttp.Tracing(noop.NewTracerProvider()))

	var ctx context.Context
	app.Get("/ping", func(c *fiber.Ctx) error {
		ctx = c.UserContext()
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	require.NotNil(t, ctx)
	assert.False(t, trace.SpanFromContext(ctx).IsRecording(), "proveedor no-op: span sin grabar")
}
