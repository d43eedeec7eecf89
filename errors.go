package mahjong

import (
	"errors"
	"fmt"
)

// ScoreError is a coded error reported by the engine. Callers match it with
// errors.Is against the sentinel values below; the code survives wrapping so
// transports can forward it.
type ScoreError struct {
	Code    int    // stable numeric code
	Message string // short human-readable description
	Err     error  // underlying detail, optional
}

// Error implements the error interface.
func (e *ScoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap supports errors.Unwrap.
func (e *ScoreError) Unwrap() error {
	return e.Err
}

// Is matches any ScoreError carrying the same code.
func (e *ScoreError) Is(target error) bool {
	var t *ScoreError
	if errors.As(target, &t) {
		return t.Code == e.Code
	}
	return false
}

// Wrap returns a copy of e carrying err as detail.
func (e *ScoreError) Wrap(err error) *ScoreError {
	return &ScoreError{
		Code:    e.Code,
		Message: e.Message,
		Err:     err,
	}
}

// NewError creates a new coded error.
func NewError(code int, message string) *ScoreError {
	return &ScoreError{Code: code, Message: message}
}

// GetCode returns the code of the first ScoreError in err's chain, or
// CodeInternal for foreign errors.
func GetCode(err error) int {
	var se *ScoreError
	if errors.As(err, &se) {
		return se.Code
	}
	return CodeInternal
}

// GetMessage returns the message of the first ScoreError in err's chain.
func GetMessage(err error) string {
	var se *ScoreError
	if errors.As(err, &se) {
		return se.Message
	}
	return "internal error"
}

// ============== error codes ==============

const (
	CodeOK = 0

	// hand input 1000-1999
	CodeInvalidRequest  = 1000
	CodeMalformedHand   = 1001
	CodeInvalidContext  = 1002
	CodeNoDecomposition = 1003
	CodeNoYaku          = 1004

	CodeInternal = 5000
)

var (
	ErrInvalidRequest  = NewError(CodeInvalidRequest, "invalid request")
	ErrMalformedHand   = NewError(CodeMalformedHand, "malformed hand")
	ErrInvalidContext  = NewError(CodeInvalidContext, "invalid hand context")
	ErrNoDecomposition = NewError(CodeNoDecomposition, "no valid decomposition")
	ErrNoYaku          = NewError(CodeNoYaku, "no qualifying yaku")
)
