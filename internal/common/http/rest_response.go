package http

import (
	"errors"
	"net/http"

	"github.com/karnaval/go-costume-catalog/internal/common"
	"github.com/karnaval/go-costume-catalog/internal/common/validation"
	"github.com/karnaval/go-costume-catalog/internal/models"

	"github.com/hashicorp/go-multierror"
	"github.com/labstack/echo/v4"
)

type (
	RestErrorResponseModel struct {
		Status  string      `json:"status" example:"error"`
		Code    interface{} `json:"code"`
		Message string      `json:"message" example:"error"`
	}

	RestTotalRowResponseModel struct {
		Kind      string      `json:"kind" example:"collection"`
		Contents  interface{} `json:"contents"`
		TotalRows int         `json:"total_rows" example:"100"`
	}

	RestErrorValidationResponseModel struct {
		Status  string      `json:"status" example:"error"`
		Code    string      `json:"code" example:"VALIDATION_ERROR"`
		Message string      `json:"message" example:"Title is required"`
		Errors  interface{} `json:"errors"`
	}

	RestSuccessDeleteResponseModel struct {
		Success bool `json:"success" example:"true"`
	}
)

const codeValidationError = "VALIDATION_ERROR"

func RestSuccessResponse(c echo.Context, code int, in interface{}) error {
	return c.JSON(code, in)
}

func RestSuccessResponseListWithTotalRows(c echo.Context, data interface{}, totalRows int) error {
	return c.JSON(http.StatusOK, RestTotalRowResponseModel{
		Kind:      "collection",
		Contents:  data,
		TotalRows: totalRows,
	})
}

func RestSuccessDeleteResponse(c echo.Context) error {
	return c.JSON(http.StatusOK, RestSuccessDeleteResponseModel{Success: true})
}

func RestErrorResponse(c echo.Context, statusCode int, err error) error {
	res := RestErrorResponseModel{
		Status:  "error",
		Code:    statusCode,
		Message: err.Error(),
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		res.Code = echoErr.Code
		if msg, ok := echoErr.Message.(string); ok {
			res.Message = msg
		}
	}

	var data models.ErrorDetail
	if errors.As(err, &data) {
		res.Code = data.Code
		res.Message = data.ErrorMessage.Error()
	}
	return c.JSON(statusCode, res)
}

// RestErrorValidationResponse answers 400 with the first violation as the
// message and all of them under "errors".
func RestErrorValidationResponse(c echo.Context, err error) error {
	res := RestErrorValidationResponseModel{
		Status:  "error",
		Code:    codeValidationError,
		Message: common.ErrValidation.Error(),
		Errors:  []validation.ErrorValidateResponse{},
	}

	var merr *multierror.Error
	if errors.As(err, &merr) {
		res.Errors = merr.Errors
		res.Message = validation.FirstMessage(merr)
	} else if err != nil {
		var single validation.ErrorValidateResponse
		if errors.As(err, &single) {
			res.Errors = []validation.ErrorValidateResponse{single}
		}
		res.Message = validation.FirstMessage(err)
	}

	return c.JSON(http.StatusBadRequest, res)
}
