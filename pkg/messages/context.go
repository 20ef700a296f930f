package messages

import (
	"context"

	"golang.org/x/text/language"
)

type languageContextKey struct{}

// WithLanguage stores the negotiated language in ctx.
func WithLanguage(ctx context.Context, tag language.Tag) context.Context {
	return context.WithValue(ctx, languageContextKey{}, tag)
}

// LanguageFromContext returns the negotiated language, or Fallback.
func LanguageFromContext(ctx context.Context) language.Tag {
	if tag, ok := ctx.Value(languageContextKey{}).(language.Tag); ok {
		return tag
	}
	return Fallback
}
