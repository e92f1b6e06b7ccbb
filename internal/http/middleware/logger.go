package middleware

import (
	"io"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"heroapi/internal/logger"
)

// LoggerLocalKey is the Fiber locals key holding the request-scoped zerolog logger.
const LoggerLocalKey = "logger"

// Logger is a middleware that logs each HTTP request as one JSON line on stdout.
func Logger(base zerolog.Logger) fiber.Handler {
	return loggerHandler(base)
}

// LoggerWithWriter is Logger with a dedicated writer and time zone.
func LoggerWithWriter(w io.Writer, loc *time.Location) fiber.Handler {
	return loggerHandler(logger.New(w, "info", loc))
}

// loggerHandler emits one line per request with:
// - request_id (taken from context locals set by RequestID middleware)
// - method
// - path
// - status
// - latency (in milliseconds, as float)
func loggerHandler(base zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		rid, _ := c.Locals(RequestIDLocalKey).(string)
		reqLog := base.With().Str("request_id", rid).Logger()
		c.Locals(LoggerLocalKey, &reqLog)

		err := c.Next()

		status := responseStatus(c, err)

		reqLog.Info().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Float64("latency", float64(time.Since(start).Milliseconds())).
			Send()

		return err
	}
}

// GetLogger returns the request-scoped logger stored by Logger, or a stdout logger
// when the middleware is not installed.
func GetLogger(c *fiber.Ctx) *zerolog.Logger {
	if l, ok := c.Locals(LoggerLocalKey).(*zerolog.Logger); ok && l != nil {
		return l
	}
	l := zerolog.New(os.Stdout).With().Timestamp().Logger()
	return &l
}
