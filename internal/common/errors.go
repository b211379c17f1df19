// Package common defines sentinel errors and small helpers shared by the
// store, the dispatcher and the transfer engine. Callers should use errors.Is
// to match these values.
package common

import "errors"

var (
	// ErrValidation marks malformed input: an invalid entity or an import
	// payload with the wrong shape.
	ErrValidation = errors.New("validation error")

	// ErrUnauthenticated is returned by create operations issued while no
	// identity is signed in.
	ErrUnauthenticated = errors.New("not signed in")

	// ErrForbidden is returned when the signed-in identity may not touch a
	// record (preloaded questions are reserved to the administrator).
	ErrForbidden = errors.New("forbidden")
)
