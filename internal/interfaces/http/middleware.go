package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/sinvoice-api/pkg/logger"
)

// RequestLogger middleware de trazas: asigna un request id (UUID) y
// registra método, ruta, estado y latencia de cada petición.
func RequestLogger(log *logger.Logger) fiber.Handler {
	l := log.WithComponent("http")
	return func(c *fiber.Ctx) error {
		reqID := uuid.NewString()
		c.Locals("request_id", reqID)
		c.Set("X-Request-ID", reqID)

		start := time.Now()
		err := c.Next()

		l.Info().
			Str("request_id", reqID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("latency", time.Since(start)).
			Msg("petición atendida")
		return err
	}
}
