package menu

import (
	"errors"
	"fmt"
)

// Sentinel causes wrapped by InputError.
var (
	// ErrMalformedSelection means the token read was not a 32-bit integer.
	ErrMalformedSelection = errors.New("malformed selection")

	// ErrInputClosed means the input ended before a quit selection.
	ErrInputClosed = errors.New("input closed before quit")
)

// InputError reports a selection that could not be read.
type InputError struct {
	// Token is the raw token read, empty when the input ended.
	Token string
	Err   error
}

func (e *InputError) Error() string {
	if e == nil {
		return ""
	}
	if e.Token == "" {
		return fmt.Sprintf("menu: %v", e.Err)
	}
	return fmt.Sprintf("menu: %v: %q", e.Err, e.Token)
}

func (e *InputError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
