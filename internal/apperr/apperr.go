// Package apperr carries coded application errors across service and
// transport boundaries.
package apperr

import "fmt"

type Code string

const (
	CodeInvalidArgument     Code = "INVALID_ARGUMENT"
	CodeInvalidParticipants Code = "INVALID_PARTICIPANTS"
	CodeNotFound            Code = "NOT_FOUND"
	CodeAlreadyExists       Code = "ALREADY_EXISTS"
	CodeUnauthenticated     Code = "UNAUTHENTICATED"
	CodeInternal            Code = "INTERNAL"
)

type AppError struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	Cause   error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Cause }

func New(code Code, message string) error {
	return &AppError{Code: code, Message: message}
}

func Wrap(code Code, message string, cause error) error {
	return &AppError{Code: code, Message: message, Cause: cause}
}

func InvalidArg(msg string) error {
	return New(CodeInvalidArgument, msg)
}

func InvalidParticipants(msg string) error {
	return New(CodeInvalidParticipants, msg)
}

func NotFound(msg string) error {
	return New(CodeNotFound, msg)
}

func AlreadyExists(msg string) error {
	return New(CodeAlreadyExists, msg)
}

func Unauthorized(msg string) error {
	return New(CodeUnauthenticated, msg)
}

func Internal(msg string) error {
	return New(CodeInternal, msg)
}
