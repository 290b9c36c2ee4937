package errors

import "errors"

var (
	ErrNotFound           = errors.New("booking not found")
	ErrInvalidID          = errors.New("invalid booking ID format")
	ErrDuplicateReference = errors.New("booking reference already exists")
)
