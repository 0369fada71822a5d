// Copyright (c) 2026 XVal Team
// XVal - Xbox 360 X value decoder
// This source code is licensed under the MIT license found in the LICENSE file.

package xval

import (
	"errors"
	"fmt"
)

// DecodeKind identifies which stage of the decryption pipeline failed.
type DecodeKind int

const (
	// MalformedInput means the X value could not be turned into ciphertext bytes.
	MalformedInput DecodeKind = iota + 1
	// KeySetupFailed means the derived DES key was rejected.
	KeySetupFailed
	// BlockSizeMismatch means the ciphertext is not a whole number of DES blocks.
	BlockSizeMismatch
	// DecryptionFailed covers any other primitive-level failure.
	DecryptionFailed
	// AlgorithmUnavailable is reported by SelfTest when the primitives do not
	// reproduce the reference vector.
	AlgorithmUnavailable
)

func (k DecodeKind) String() string {
	switch k {
	case MalformedInput:
		return "malformed input"
	case KeySetupFailed:
		return "key setup failed"
	case BlockSizeMismatch:
		return "block size mismatch"
	case DecryptionFailed:
		return "decryption failed"
	case AlgorithmUnavailable:
		return "algorithm unavailable"
	default:
		return fmt.Sprintf("decode kind %d", int(k))
	}
}

// Sentinels for errors.Is checks against a *DecodeError kind.
var (
	ErrMalformedInput       = &DecodeError{Kind: MalformedInput}
	ErrKeySetupFailed       = &DecodeError{Kind: KeySetupFailed}
	ErrBlockSizeMismatch    = &DecodeError{Kind: BlockSizeMismatch}
	ErrDecryptionFailed     = &DecodeError{Kind: DecryptionFailed}
	ErrAlgorithmUnavailable = &DecodeError{Kind: AlgorithmUnavailable}
)

// DecodeError is returned by every fallible step of Decrypt.
type DecodeError struct {
	Kind DecodeKind
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Err == nil {
		return "xval: " + e.Kind.String()
	}
	return fmt.Sprintf("xval: %s: %v", e.Kind, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Is reports whether target is a *DecodeError of the same kind.
func (e *DecodeError) Is(target error) bool {
	var t *DecodeError
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

func decodeErr(kind DecodeKind, err error) error {
	return &DecodeError{Kind: kind, Err: err}
}

// Input fields checked by ValidationError.
const (
	FieldSerial = "serial"
	FieldXValue = "xvalue"
)

var (
	ErrInvalidSerial = &ValidationError{Field: FieldSerial}
	ErrInvalidXValue = &ValidationError{Field: FieldXValue}
)

// ValidationError reports a malformed serial number or X value string.
type ValidationError struct {
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	switch e.Field {
	case FieldSerial:
		return fmt.Sprintf("invalid serial number %q: want 12 decimal digits", e.Value)
	case FieldXValue:
		return fmt.Sprintf("invalid X value %q: want 16 hexadecimal digits", e.Value)
	default:
		return fmt.Sprintf("invalid %s %q", e.Field, e.Value)
	}
}

// Is matches any *ValidationError for the same field.
func (e *ValidationError) Is(target error) bool {
	var t *ValidationError
	if !errors.As(target, &t) {
		return false
	}
	return t.Field == e.Field
}
