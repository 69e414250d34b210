// Package errors defines typed errors with categories for user-friendly reporting.
// Every failure the session layer can surface (a store that cannot be opened,
// read or written, a navigation to an unknown view, a bad configuration value)
// carries a machine-readable Kind alongside a human-friendly message.
//
// E wraps the underlying error, so callers can still match it with the standard
// library's errors.Is and errors.As.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind is a machine-readable error category.
type Kind string

const (
	// StoreUnavailable indicates the durable store could not be opened.
	StoreUnavailable Kind = "store_unavailable"
	// StoreRead indicates a durable store read failed.
	StoreRead Kind = "store_read"
	// StoreWrite indicates a durable store write or removal failed.
	StoreWrite Kind = "store_write"
	// NavigationFailed indicates the router could not reach the requested view.
	NavigationFailed Kind = "navigation_failed"
	// InvalidConfig indicates a configuration value is not usable.
	InvalidConfig Kind = "invalid_config"
)

// E wraps an error with kind and human-friendly message.
type E struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *E) Unwrap() error { return e.Err }

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }

// KindOf returns the Kind of the first E in err's chain, or "" if there is none.
func KindOf(err error) Kind {
	var e *E
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Is reports whether err carries the given kind anywhere in its chain.
func Is(err error, kind Kind) bool {
	for err != nil {
		var e *E
		if !stderrors.As(err, &e) {
			return false
		}
		if e.Kind == kind {
			return true
		}
		err = e.Err
	}
	return false
}
