package http

import (
	"errors"
	"net/http"

	"github.com/karnaval/go-costume-catalog/internal/common"

	"github.com/labstack/echo/v4"
)

// HandleServiceError turns an error returned by a service into the response
// for it. Storage failures are never echoed back to the client.
func HandleServiceError(c echo.Context, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, common.ErrValidation):
		return RestErrorValidationResponse(c, err)
	case errors.Is(err, common.ErrDataNotFound):
		return RestErrorResponse(c, http.StatusNotFound, err)
	case errors.Is(err, common.ErrConflict):
		return RestErrorResponse(c, http.StatusConflict, err)
	default:
		return RestErrorResponse(c, http.StatusInternalServerError, common.ErrInternalServerError)
	}
}

// HTTPErrorHandler is installed as echo's error handler so errors returned by
// middlewares and the framework share the error envelope.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		status = echoErr.Code
	} else {
		_ = HandleServiceError(c, err)
		return
	}

	_ = RestErrorResponse(c, status, err)
}
