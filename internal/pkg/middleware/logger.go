package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/vaipaqueta/dispatch/internal/pkg/logger"
)

// RequestLoggerMiddleware logs every HTTP request with latency and status.
func RequestLoggerMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			latency := time.Since(start)
			zapLogger.Info("HTTP request",
				logger.String("method", c.Request().Method),
				logger.String("path", c.Request().URL.Path),
				logger.Int("status", c.Response().Status),
				logger.Duration("latency", latency),
				logger.String("client_ip", c.RealIP()),
				logger.String("request_id", GetRequestID(c)),
			)

			return nil
		}
	}
}
