package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Padaria-api/internal/infrastructure/metrics"
	"github.com/jhoicas/Padaria-api/pkg/logger"
)

// AccessLog registra método, ruta, status y latencia de cada request y alimenta el
// histograma HTTP. m puede ser nil.
func AccessLog(log *logger.Logger, m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		if err != nil {
			// deja que el ErrorHandler escriba la respuesta antes de leer el status
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		status := c.Response().StatusCode()
		elapsed := time.Since(start)
		route := c.Route().Path

		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error()
			if cause, ok := c.Locals(localError).(error); ok {
				ev = ev.Err(cause)
			}
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", elapsed).
			Str("user_id", GetUserID(c)).
			Msg("http")
		m.ObserveHTTP(c.Method(), route, status, elapsed)
		return nil
	}
}
