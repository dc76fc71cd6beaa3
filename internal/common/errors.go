package common

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Common application errors
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")

	// ErrUnreadablePDF marks a file with no extractable text layer. Fatal for
	// that file; fatal for the session only when every file in the batch is
	// unreadable.
	ErrUnreadablePDF = errors.New("unreadable PDF: no text layer")

	// ErrResolverConflict marks an alias mapped to two canonical employees.
	// Surfaced as a data-quality warning, never a session failure.
	ErrResolverConflict = errors.New("alias resolves to conflicting employees")

	// ErrStoreWrite marks a persistence failure after retries were exhausted.
	ErrStoreWrite = errors.New("record store write failed")

	// ErrWatchdogTimeout is the synthetic error recorded on sessions the
	// watchdog forces to FAILED.
	ErrWatchdogTimeout = errors.New("watchdog timeout: session stuck")

	// ErrIllegalTransition marks an attempted status change outside the
	// session state graph.
	ErrIllegalTransition = errors.New("illegal session status transition")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// gRPC error helpers for the API layer sitting in front of this module.
func InvalidArgumentError(message string) error {
	return status.Error(codes.InvalidArgument, message)
}

func NotFoundError(message string) error {
	return status.Error(codes.NotFound, message)
}

func InternalError(message string) error {
	return status.Error(codes.Internal, message)
}

func FailedPreconditionError(message string) error {
	return status.Error(codes.FailedPrecondition, message)
}

func InvalidArgumentErrorf(format string, args ...interface{}) error {
	return InvalidArgumentError(fmt.Sprintf(format, args...))
}

func InternalErrorf(format string, args ...interface{}) error {
	return InternalError(fmt.Sprintf(format, args...))
}
