package domain

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrEmptyName         = errors.New("name cannot be empty")
	ErrInvalidSlugFormat = errors.New("invalid slug format")
	ErrInvalidPrice      = errors.New("invalid price")
	ErrInvalidRecord     = errors.New("invalid record shape")
)
