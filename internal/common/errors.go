// Package common defines shared sentinel errors used across the catalog
// client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository / store level errors.
	ErrorNotFound  = errors.New("not found")
	ErrCorruptData = errors.New("corrupt persisted data")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Draft / form errors.
	ErrUnknownField = errors.New("unknown field")
	ErrInvalidValue = errors.New("invalid value")

	// Configuration errors.
	ErrUnsupportedVersion = errors.New("unsupported model version")
)
