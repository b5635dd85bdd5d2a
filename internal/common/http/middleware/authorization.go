package middleware

import (
	"crypto/subtle"
	"errors"
	"net/http"

	commonhttp "github.com/karnaval/go-costume-catalog/internal/common/http"

	"github.com/labstack/echo/v4"
)

const headerSecretKey = "X-Secret-Key"

var (
	errSecretKeyRequired = errors.New("required secret key")
	errSecretKeyInvalid  = errors.New("invalid secret key")
)

// InternalAuth guards catalog writes. With no secret configured every request
// passes, which is how local and test environments run.
func (m *AppMiddleware) InternalAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.conf.SecretKey == "" {
			return next(c)
		}

		secretKey := c.Request().Header.Get(headerSecretKey)
		if secretKey == "" {
			return commonhttp.RestErrorResponse(c, http.StatusUnauthorized, errSecretKeyRequired)
		}

		if subtle.ConstantTimeCompare([]byte(secretKey), []byte(m.conf.SecretKey)) != 1 {
			return commonhttp.RestErrorResponse(c, http.StatusUnauthorized, errSecretKeyInvalid)
		}

		return next(c)
	}
}
