package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/karnaval/go-costume-catalog/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
	"github.com/shopspring/decimal"
)

const codeUnknown = "UNKNOW"

// ErrorValidateResponse is one violation, rendered as is in the "errors" list of a 400.
type ErrorValidateResponse struct {
	Code    string `json:"code,omitempty"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message,omitempty"`
}

func (e ErrorValidateResponse) Error() string {
	return e.Message
}

var validate = validator.New()

func init() {
	// field names are reported with their json name, query filters with
	// their query name
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" {
			name = fld.Tag.Get("query")
		}
		if name == "-" {
			return ""
		}
		return name
	})

	registerDecimalType()
	registerDecimalGreaterThan()
	registerDecimalGreaterThanOrEqual()
	registerDecimalLessThan()
	registerDecimalMaxScale()
}

// ValidateStruct returns nil or a *multierror.Error of ErrorValidateResponse,
// ordered the way the fields are declared.
func ValidateStruct(toValidate interface{}) error {
	var errs *multierror.Error
	if err := validate.Struct(toValidate); err != nil {
		var invalidErr *validator.InvalidValidationError
		if errors.As(err, &invalidErr) {
			errs = multierror.Append(errs, ErrorValidateResponse{
				Code:    codeUnknown,
				Message: err.Error(),
			})
			return errs.ErrorOrNil()
		}

		var valErrs validator.ValidationErrors
		if errors.As(err, &valErrs) {
			for _, valErr := range valErrs {
				errs = multierror.Append(errs, fromFieldError(valErr))
			}
		}
	}

	return errs.ErrorOrNil()
}

// NewFieldError builds a violation from an error map key, for rules that need
// the database (a referenced category must exist and so on).
func NewFieldError(field, key string) ErrorValidateResponse {
	data := models.GetErrMap(key)
	return ErrorValidateResponse{
		Code:    data.Code,
		Field:   field,
		Message: data.ErrorMessage.Error(),
	}
}

// FirstMessage is the message of the first violation in err, or err.Error()
// when err holds none.
func FirstMessage(err error) string {
	var merr *multierror.Error
	if errors.As(err, &merr) && len(merr.Errors) > 0 {
		return merr.Errors[0].Error()
	}

	var single ErrorValidateResponse
	if errors.As(err, &single) {
		return single.Message
	}

	return err.Error()
}

func fromFieldError(valErr validator.FieldError) ErrorValidateResponse {
	keys := []string{
		fmt.Sprintf("%s_%s", valErr.Namespace(), valErr.Tag()),
		fmt.Sprintf("%s_%s", valErr.Field(), valErr.Tag()),
	}
	for _, key := range keys {
		if data, found := models.MapErrors[key]; found {
			return ErrorValidateResponse{
				Code:    data.Code,
				Field:   valErr.Field(),
				Message: data.ErrorMessage.Error(),
			}
		}
	}

	return ErrorValidateResponse{
		Code:    codeUnknown,
		Field:   valErr.Field(),
		Message: strings.TrimSpace(fmt.Sprintf("%s %s %s", valErr.Field(), valErr.Tag(), valErr.Param())),
	}
}

func registerDecimalType() {
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if valuer, ok := field.Interface().(models.Decimal); ok {
			return valuer.String()
		}
		return nil
	}, models.Decimal{})
}

func compareDecimal(fl validator.FieldLevel, cmp func(value, param decimal.Decimal) bool) bool {
	data, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	value, err := decimal.NewFromString(data)
	if err != nil {
		return false
	}

	param, err := models.NewDecimal(fl.Param())
	if err != nil {
		return false
	}

	return cmp(value, param.Decimal)
}

func registerDecimalGreaterThan() {
	validate.RegisterValidation("decimalGreaterThan", func(fl validator.FieldLevel) bool {
		return compareDecimal(fl, decimal.Decimal.GreaterThan)
	})
}

func registerDecimalGreaterThanOrEqual() {
	validate.RegisterValidation("decimalGreaterThanOrEqual", func(fl validator.FieldLevel) bool {
		return compareDecimal(fl, decimal.Decimal.GreaterThanOrEqual)
	})
}

func registerDecimalLessThan() {
	validate.RegisterValidation("decimalLessThan", func(fl validator.FieldLevel) bool {
		return compareDecimal(fl, decimal.Decimal.LessThan)
	})
}

// decimalMaxScale=N rejects values with more than N significant fractional
// digits, "1.50" passes a scale of 1.
func registerDecimalMaxScale() {
	validate.RegisterValidation("decimalMaxScale", func(fl validator.FieldLevel) bool {
		data, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}

		value, err := decimal.NewFromString(data)
		if err != nil {
			return false
		}

		places, err := strconv.ParseInt(fl.Param(), 10, 32)
		if err != nil {
			return false
		}

		return value.Equal(value.Truncate(int32(places)))
	})
}
