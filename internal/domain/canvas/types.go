package canvas

import (
	"errors"

	"pixelboard/internal/pkg/errs"
)

var (
	ErrOutOfBounds     = errs.New("coordinates are outside the canvas")
	ErrInvalidBounds   = errs.New("canvas dimensions must be positive")
	ErrInvalidColor    = errs.New("color must be a #RRGGBB hex token")
	ErrEmptyUsername   = errs.New("username must not be empty")
	ErrUsernameTooLong = errs.New("username exceeds maximum length")
	ErrNilUserID       = errs.New("user id must not be empty")
)

// IsValidationError reports whether err is one of the input-shape rejections.
// Callers map these to 400s; they are never retried.
func IsValidationError(err error) bool {
	for _, sentinel := range []error{
		ErrOutOfBounds,
		ErrInvalidBounds,
		ErrInvalidColor,
		ErrEmptyUsername,
		ErrUsernameTooLong,
		ErrNilUserID,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
