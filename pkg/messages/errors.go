package messages

import "errors"

var (
	ErrFailedToParseYAML = errors.New("failed to parse message catalog")
	ErrInvalidLanguage   = errors.New("invalid language tag in message catalog")
	ErrEmptyCatalog      = errors.New("message catalog is empty")
	ErrMissingKey        = errors.New("message catalog is missing a key")
	ErrNoFallback        = errors.New("message catalog has no fallback language")
)
