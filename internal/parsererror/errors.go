// Package parsererror defines the error taxonomy surfaced by the
// ingestion engine. Password errors are the only recoverable conditions:
// the caller may resupply a password and re-run extraction from scratch.
// Everything else is terminal for the ingestion attempt.
package parsererror

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedFormat signals a file kind the engine does not accept.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrNoDataFound signals tabular input with no data rows at all.
	ErrNoDataFound = errors.New("no data found in file")

	// ErrNoTransactions signals that parsing completed but recovered zero
	// transactions. This must reach the operator as an error: an empty
	// analysis is indistinguishable from a parsing failure.
	ErrNoTransactions = errors.New("no transaction data found")

	// ErrPasswordRequired signals an encrypted document opened without a
	// password.
	ErrPasswordRequired = errors.New("document is password protected")

	// ErrPasswordIncorrect signals an encrypted document opened with the
	// wrong password.
	ErrPasswordIncorrect = errors.New("document password is incorrect")
)

// MalformedSourceError wraps a decoder-level failure from one of the
// underlying format libraries.
type MalformedSourceError struct {
	Format string
	Err    error
}

func (e *MalformedSourceError) Error() string {
	return fmt.Sprintf("malformed %s source: %v", e.Format, e.Err)
}

func (e *MalformedSourceError) Unwrap() error {
	return e.Err
}

// IsPasswordRetryable reports whether the error can be resolved by
// re-running the same ingestion with a (different) password.
func IsPasswordRetryable(err error) bool {
	return errors.Is(err, ErrPasswordRequired) || errors.Is(err, ErrPasswordIncorrect)
}
