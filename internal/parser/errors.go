package parser

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Terminal local-parse failures. Both are expected and silently escalate
// to the remote fallback.
var (
	// ErrNoAmount means no strategy in the amount cascade produced a value.
	ErrNoAmount = errors.New("no parseable amount found")
	// ErrNoMerchant means bare-sentence stripping left nothing to use as a
	// merchant, which voids the whole local parse even when an amount exists.
	ErrNoMerchant = errors.New("no merchant derivable from text")
)

// IsLocalFailure reports whether err is one of the terminal local-parse
// failures that trigger the remote fallback.
func IsLocalFailure(err error) bool {
	return errors.Is(err, ErrNoAmount) || errors.Is(err, ErrNoMerchant)
}

// TransportError indicates the remote fallback call failed at the
// network/HTTP level (timeout, connection, non-200 status, auth).
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("remote parser transport failure: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// NewTransportError wraps err as a TransportError.
func NewTransportError(err error) *TransportError {
	return &TransportError{Err: err}
}

// SchemaError indicates the remote fallback responded, but the response
// was not valid JSON or did not satisfy the expense record schema.
type SchemaError struct {
	Err error
	Raw string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("remote parser schema violation: %v (raw: %s)", e.Err, truncate(e.Raw, 200))
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

// NewSchemaError wraps err as a SchemaError carrying the offending payload.
func NewSchemaError(err error, raw string) *SchemaError {
	return &SchemaError{Err: err, Raw: raw}
}

// truncate shortens s to at most maxLen runes, never splitting a UTF-8
// sequence.
func truncate(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	return string([]rune(s)[:maxLen]) + "..."
}
