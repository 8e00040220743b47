// Package mayoerr defines the error taxonomy of §7: a small set of
// kinds shared across the codec, key-expansion, solver and signing
// layers, in place of ad-hoc sentinel errors scattered per package.
package mayoerr

import (
	"errors"
	"fmt"
)

// Kind names one of the failure categories from spec.md §7.
type Kind string

const (
	UnknownVariant              Kind = "unknown_variant"
	InvalidKeyFormat            Kind = "invalid_key_format"
	InvalidSignatureFormat      Kind = "invalid_signature_format"
	InvalidMessageFormat        Kind = "invalid_message_format"
	InsufficientBytes           Kind = "insufficient_bytes"
	DimensionMismatch           Kind = "dimension_mismatch"
	FieldInverseOfZero          Kind = "field_inverse_of_zero"
	KeygenRandomnessUnavailable Kind = "keygen_randomness_unavailable"
	SignRetriesExhausted        Kind = "sign_retries_exhausted"
)

// Error wraps a Kind with a contextual message and an optional cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("mayo: %s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("mayo: %s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// New constructs an *Error with no underlying cause.
func New(kind Kind, msg string) error {
	return &Error{Kind: kind, Msg: msg}
}

// Wrap constructs an *Error carrying an underlying cause.
func Wrap(kind Kind, msg string, err error) error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// Is reports whether err is a *Error of the given kind. Mirrors the
// stdlib errors.Is contract via Unwrap, but kind comparisons are
// simple enough to do directly.
func Is(err error, kind Kind) bool {
	for err != nil {
		if e, ok := err.(*Error); ok && e.Kind == kind {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}
