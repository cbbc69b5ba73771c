package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	deliveryctx "linkvault/internal/delivery/context"
)

// RequestID assigns each request an id, honoring one supplied by the client,
// and echoes it back in the response header.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(deliveryctx.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
			}

			deliveryctx.SetRequestID(c, requestID)
			c.SetRequest(c.Request().WithContext(
				deliveryctx.WithRequestID(c.Request().Context(), requestID),
			))
			c.Response().Header().Set(deliveryctx.HeaderXRequestID, requestID)

			return next(c)
		}
	}
}
