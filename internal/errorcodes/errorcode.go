// Package errorcodes defines processor errors using a structured type.
// ProcError holds a stable code and the human-readable description that is
// sent back to the caller in the response envelope.
package errorcodes

import "errors"

// Predefined processor error instances.
var (
	// Envelope and routing.
	ErrInvalidJSON    = ProcError{Code: "E01", Description: "Invalid JSON"}
	ErrUnknownCommand = ProcError{Code: "E02", Description: "Unknown command"}

	// Request validation.
	ErrMissingData      = ProcError{Code: "E10", Description: "Missing data"}
	ErrInvalidHex       = ProcError{Code: "E11", Description: "Invalid hex"}
	ErrMissingKey       = ProcError{Code: "E12", Description: "Missing key"}
	ErrInvalidBase64Key = ProcError{Code: "E13", Description: "Invalid base64 key"}
	ErrKeyLength        = ProcError{Code: "E14", Description: "Key must be 32 bytes"}
	ErrUnsupportedHash  = ProcError{Code: "E15", Description: "Unsupported hash algorithm"}

	// Primitive failures.
	ErrEncryptionFailed = ProcError{Code: "E20", Description: "Encryption failed"}

	// ErrInternal covers handler results that carry neither a value nor a ProcError.
	ErrInternal = ProcError{Code: "E99", Description: "Internal error"}
)

// ProcError represents a processor error with its code, description and optional detail.
type ProcError struct {
	Code        string // stable machine-readable code
	Description string // fixed human-readable description
	Detail      string // per-request detail, e.g. the decoder's reason
}

// Error implements the Go error interface: "<Description>" or "<Description>: <Detail>".
// The returned text is exactly what goes into the response "error" field.
func (e ProcError) Error() string {
	if e.Detail == "" {
		return e.Description
	}

	return e.Description + ": " + e.Detail
}

// With returns a copy of e carrying detail.
func (e ProcError) With(detail string) ProcError {
	e.Detail = detail
	return e
}

// Wrap returns a copy of e whose detail is err's message.
func (e ProcError) Wrap(err error) ProcError {
	if err == nil {
		return e
	}

	return e.With(err.Error())
}

// Is reports whether target is a ProcError with the same code, ignoring detail.
func (e ProcError) Is(target error) bool {
	var pe ProcError
	if !errors.As(target, &pe) {
		return false
	}

	return pe.Code == e.Code
}

// CodeOnly returns only the error code (e.g., "E11"), for log fields.
func (e ProcError) CodeOnly() string {
	return e.Code
}

// CodeOf returns the code of err when it is a ProcError, and ErrInternal's code otherwise.
func CodeOf(err error) string {
	var pe ProcError
	if errors.As(err, &pe) {
		return pe.Code
	}

	return ErrInternal.Code
}
