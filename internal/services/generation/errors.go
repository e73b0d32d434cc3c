package generation

import (
	"errors"
	"fmt"
)

// Kind classifies a generation failure.
type Kind string

const (
	KindInvalidInput     Kind = "invalid_input"
	KindGenerationFailed Kind = "generation_failed"
	KindTimeout          Kind = "timeout"
	KindInternal         Kind = "internal"
)

// Sentinels for errors.Is matching against an *Error's kind.
var (
	ErrInvalidInput     = &Error{Kind: KindInvalidInput}
	ErrGenerationFailed = &Error{Kind: KindGenerationFailed}
	ErrTimeout          = &Error{Kind: KindTimeout}
	ErrInternal         = &Error{Kind: KindInternal}
)

// Error is returned by Handler.Handle. Message is safe to show to users.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// KindOf returns the kind of err, or KindInternal if err is not an *Error.
func KindOf(err error) Kind {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Kind
	}
	return KindInternal
}
