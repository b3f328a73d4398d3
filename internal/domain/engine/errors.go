package engine

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode standardizes engine failure semantics across child collections.
type ErrorCode string

const (
	CodeValidation          ErrorCode = "validation"
	CodeCardinalityExceeded ErrorCode = "cardinality_exceeded"
	CodeNotFound            ErrorCode = "not_found"
	CodeConflict            ErrorCode = "conflict"
	CodeStorage             ErrorCode = "storage"
)

// Error is the canonical engine error wrapper.
type Error struct {
	Code    ErrorCode
	Op      string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	op := strings.TrimSpace(e.Op)
	msg := strings.TrimSpace(e.Message)
	switch {
	case op != "" && msg != "":
		return fmt.Sprintf("%s: %s (%s)", op, msg, e.Code)
	case op != "":
		return fmt.Sprintf("%s (%s)", op, e.Code)
	case msg != "":
		return fmt.Sprintf("%s (%s)", msg, e.Code)
	default:
		return string(e.Code)
	}
}

func (e *Error) Unwrap() error { return e.Cause }

// NewError builds an engine error with explicit code + operation.
func NewError(code ErrorCode, op, message string, cause error) error {
	return &Error{
		Code:    code,
		Op:      strings.TrimSpace(op),
		Message: strings.TrimSpace(message),
		Cause:   cause,
	}
}

// Wrap annotates an existing error with engine error semantics.
func Wrap(code ErrorCode, op string, err error) error {
	if err == nil {
		return nil
	}
	return NewError(code, op, err.Error(), err)
}

// IsCode checks whether err (or wrapped err) carries the given engine code.
func IsCode(err error, code ErrorCode) bool {
	var engErr *Error
	if !errors.As(err, &engErr) {
		return false
	}
	return engErr.Code == code
}

// CodeOf extracts the engine error code when available.
func CodeOf(err error) ErrorCode {
	var engErr *Error
	if !errors.As(err, &engErr) {
		return ""
	}
	return engErr.Code
}
