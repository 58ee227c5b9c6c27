package encoder

import (
	"fmt"

	"github.com/marie-eckert/tasm/tasmast"
)

// EncodingError provides detailed context for encoding failures: the
// offending expression's source location, the raw source line, and the
// underlying error message.
type EncodingError struct {
	Expression *tasmast.Expression
	Message    string
	Wrapped    error
}

func (e *EncodingError) Error() string {
	if e.Expression == nil {
		if e.Wrapped != nil {
			return fmt.Sprintf("encoding error: %s: %v", e.Message, e.Wrapped)
		}
		return fmt.Sprintf("encoding error: %s", e.Message)
	}

	location := ""
	if e.Expression.Line > 0 {
		location = fmt.Sprintf("line %d: ", e.Expression.Line)
	}

	var msg string
	if e.Wrapped != nil {
		msg = fmt.Sprintf("%s%s: %v", location, e.Message, e.Wrapped)
	} else {
		msg = fmt.Sprintf("%s%s", location, e.Message)
	}

	if e.Expression.RawLine != "" {
		msg = fmt.Sprintf("%s\n  source: %s", msg, e.Expression.RawLine)
	}

	return msg
}

func (e *EncodingError) Unwrap() error {
	return e.Wrapped
}

func NewEncodingError(exp *tasmast.Expression, message string) *EncodingError {
	return &EncodingError{Expression: exp, Message: message}
}

// WrapEncodingError wraps err with expression context, unless err is
// already an *EncodingError (avoids double-wrapping).
func WrapEncodingError(exp *tasmast.Expression, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(*EncodingError); ok {
		return err
	}
	return &EncodingError{Expression: exp, Message: "failed to encode instruction", Wrapped: err}
}
