package core

import "errors"

// Common errors.
var (
	ErrInvalidLanguage = errors.New("invalid language code")
	ErrNoLanguages     = errors.New("at least one language is required")
)
