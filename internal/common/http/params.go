package http

import (
	"strconv"

	"github.com/karnaval/go-costume-catalog/internal/common"
	"github.com/karnaval/go-costume-catalog/internal/common/validation"

	"github.com/hashicorp/go-multierror"
	"github.com/labstack/echo/v4"
)

// ParamID reads a positive integer path parameter. Anything else is a
// validation error carrying the field name.
func ParamID(c echo.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		violation := validation.ErrorValidateResponse{
			Code:    "INVALID_ID",
			Field:   name,
			Message: "Valid ID is required",
		}
		return 0, common.NewValidationError(multierror.Append(nil, violation))
	}
	return id, nil
}
