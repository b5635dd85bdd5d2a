package models

import (
	"errors"
	"fmt"
)

type (
	// MapErrs indexes ErrorDetail by error map key (ErrKey* constants).
	MapErrs map[string]ErrorDetail

	// ErrorDetail is the client facing code and message of a failure.
	ErrorDetail struct {
		Code         string `json:"code,omitempty"`
		ErrorMessage error  `json:"message,omitempty"`
	}
)

var errUnmappedKey = errors.New("unknown error mapping")

func (e ErrorDetail) Error() string {
	return fmt.Sprintf("code: %s, message: %v", e.Code, e.ErrorMessage)
}

// Unwrap exposes the message so errors.Is matches the errMessage* values.
func (e ErrorDetail) Unwrap() error {
	return e.ErrorMessage
}

// GetErrMap looks key up in MapErrors. An unmapped key keeps the key as its
// code so the failure is still traceable.
func GetErrMap(key string) ErrorDetail {
	if detail, ok := MapErrors[key]; ok {
		return detail
	}

	return ErrorDetail{Code: key, ErrorMessage: errUnmappedKey}
}
