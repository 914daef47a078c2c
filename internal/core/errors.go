// AngelaMos | 2026
// errors.go

package core

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrDuplicateKey  = errors.New("duplicate key")
	ErrInvalidID     = errors.New("invalid identifier")
	ErrQuotaExceeded = errors.New("quota exceeded")
	ErrAlreadyPro    = errors.New("already pro")
)

type AppError struct {
	Err     error
	Message string
	Status  int
	Code    string
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(err error, message string, status int, code string) *AppError {
	return &AppError{
		Err:     err,
		Message: message,
		Status:  status,
		Code:    code,
	}
}

func DuplicateError(field string) *AppError {
	return NewAppError(
		ErrDuplicateKey,
		field+" already in use",
		http.StatusBadRequest,
		"DUPLICATE",
	)
}

func InvalidIDError() *AppError {
	return NewAppError(
		ErrInvalidID,
		"malformed identifier",
		http.StatusBadRequest,
		"INVALID_ID",
	)
}
