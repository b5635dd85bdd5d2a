package middleware

import (
	xlog "github.com/karnaval/go-costume-catalog/internal/common/log"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// RequestID keeps an incoming X-Request-Id or generates one.
func (m *AppMiddleware) RequestID() echo.MiddlewareFunc {
	return echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: func() string {
			return m.idGen.Generate("req")
		},
	})
}

// Context copies the request id into the request context so every log line
// written while serving it carries the id.
func (m *AppMiddleware) Context() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			reqID := c.Response().Header().Get(echo.HeaderXRequestID)
			if reqID == "" {
				reqID = c.Request().Header.Get(echo.HeaderXRequestID)
			}

			if reqID != "" {
				ctx := xlog.WithRequestID(c.Request().Context(), reqID)
				c.SetRequest(c.Request().WithContext(ctx))
			}

			return next(c)
		}
	}
}
