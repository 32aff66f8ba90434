package http

import (
	"errors"
	"log/slog"
	"strconv"
	"time"

	"fleet/internal/metrics"

	"github.com/labstack/echo/v4"
)

// observe logs and counts every request by its route template.
func observe(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			elapsed := time.Since(start)

			code := c.Response().Status
			var httpErr *echo.HTTPError
			if errors.As(err, &httpErr) {
				code = httpErr.Code
			}
			method := c.Request().Method
			route := c.Path()

			metrics.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
			metrics.HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())

			level := slog.LevelInfo
			if code >= 500 {
				level = slog.LevelError
			}
			logger.LogAttrs(c.Request().Context(), level, "http request",
				slog.String("method", method),
				slog.String("path", c.Request().URL.Path),
				slog.String("route", route),
				slog.Int("status", code),
				slog.Duration("duration", elapsed),
			)
			return err
		}
	}
}
