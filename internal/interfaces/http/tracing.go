package http

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/jhoicas/catalog-api/http"

// Tracing abre un span por petición y lo deja en UserContext; los casos de uso cuelgan sus spans de él.
func Tracing(tp trace.TracerProvider) fiber.Handler {
	tracer := tp.Tracer(tracerName)
	return func(c *fiber.Ctx) error {
		method := utils.CopyString(c.Method())
		path := utils.CopyString(c.Path())
		ctx, span := tracer.Start(c.UserContext(), method+" "+path,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.request.method", method),
				attribute.String("url.path", path),
			),
		)
		defer span.End()
		c.SetUserContext(ctx)

		err := c.Next()

		status := c.Response().StatusCode()
		span.SetAttributes(
			attribute.String("http.route", utils.CopyString(c.Route().Path)),
			attribute.Int("http.response.status_code", status),
		)
		if uid := GetUserID(c); uid != "" {
			span.SetAttributes(attribute.String("enduser.id", uid))
		}
		switch {
		case err != nil:
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		case status >= fiber.StatusInternalServerError:
			span.SetStatus(codes.Error, http.StatusText(status))
		}
		return err
	}
}
