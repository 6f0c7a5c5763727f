package domain

import "errors"

var (
	ErrEmptyKeyword    = errors.New("keyword must not be empty")
	ErrInvalidPage     = errors.New("page must be >= 1")
	ErrInvalidPageSize = errors.New("page size must be between 1 and 100")
	ErrUnknownLogin    = errors.New("login must not be empty")
)

// MaxPageSize is the largest page size the directory accepts
const MaxPageSize = 100

// ValidatePageSize returns ErrInvalidPageSize when size is out of range
func ValidatePageSize(size int) error {
	if size < 1 || size > MaxPageSize {
		return ErrInvalidPageSize
	}
	return nil
}
