package service

import (
	"errors"
	"strings"
)

type ErrorCode string

const (
	ErrValidation   ErrorCode = "validation"
	ErrNotFound     ErrorCode = "not_found"
	ErrForbidden    ErrorCode = "forbidden"
	ErrUnauthorized ErrorCode = "unauthorized"
	ErrConflict     ErrorCode = "conflict"
	ErrInternal     ErrorCode = "internal"
)

// Error - единый формат ошибки сервисного слоя: код, сообщение и
// опциональный список нарушенных правил (для валидации)
type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Errors  []string  `json:"errors,omitempty"`
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return strings.Join(e.Errors, "; ")
}

func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

func NewValidationError(message string) *Error {
	return &Error{Code: ErrValidation, Message: message}
}

func NewValidationErrors(errs []string) *Error {
	return &Error{Code: ErrValidation, Errors: errs}
}

// AsServiceError приводит любую ошибку к *Error; неизвестные ошибки считаются внутренними
func AsServiceError(err error) *Error {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr
	}
	return &Error{Code: ErrInternal, Message: err.Error()}
}
