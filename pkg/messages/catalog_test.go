package messages_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/springmovies/webclient/pkg/messages"
)

func TestDefault_HasEveryKey(t *testing.T) {
	t.Parallel()

	c := messages.Default()
	require.NoError(t, c.Validate(messages.Keys...))
	assert.Equal(t, language.English, c.Languages()[0])
	assert.Contains(t, c.Languages(), language.Spanish)

	for _, key := range messages.Keys {
		msg := c.Get(language.English, key)
		assert.NotEmpty(t, msg.Heading, key)
		assert.NotEmpty(t, msg.Body, key)
	}
}

func TestCatalog_Get(t *testing.T) {
	t.Parallel()

	c := messages.Default()

	t.Run("substitutes the error", func(t *testing.T) {
		t.Parallel()
		err := errors.New("request failed with status code 422")
		msg := c.Get(language.English, messages.SignUpFailure, "error", err.Error())
		assert.Equal(t, "Sign Up Failed with error: request failed with status code 422", msg.Heading)
	})

	t.Run("fixed headings", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Sign Up Success", c.Get(language.English, messages.SignUpSuccess).Heading)
		assert.Equal(t, "Signed Out Successfully", c.Get(language.English, messages.SignOutSuccess).Heading)
	})

	t.Run("unknown language falls back to English", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t,
			c.Get(language.English, messages.SignInSuccess),
			c.Get(language.Japanese, messages.SignInSuccess),
		)
	})

	t.Run("unknown key yields the key", func(t *testing.T) {
		t.Parallel()
		msg := c.Get(language.English, messages.Key("nope"))
		assert.Equal(t, "nope", msg.Heading)
		assert.Empty(t, msg.Body)
	})

	t.Run("unknown placeholders stay", func(t *testing.T) {
		t.Parallel()
		msg := c.Get(language.English, messages.SignInFailure, "other", "x")
		assert.Contains(t, msg.Heading, "%{error}")
	})
}

func TestCatalog_Match(t *testing.T) {
	t.Parallel()

	c := messages.Default()

	tests := []struct {
		name   string
		header string
		want   language.Tag
	}{
		{"empty", "", language.English},
		{"exact spanish", "es", language.Spanish},
		{"regional spanish", "es-MX,en;q=0.5", language.Spanish},
		{"quality ordering", "de;q=0.9,en;q=0.8,es;q=0.95", language.Spanish},
		{"unsupported", "de,fr", language.English},
		{"malformed", ";;;q=abc", language.English},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, c.MatchAcceptLanguage(tt.header))
		})
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("merges documents", func(t *testing.T) {
		t.Parallel()
		c, err := messages.Parse(
			[]byte("en:\n  greet:\n    heading: Hi %{name}\n"),
			[]byte("fr:\n  greet:\n    heading: Salut %{name}\n"),
		)
		require.NoError(t, err)
		assert.Equal(t, "Salut Ana", c.Get(language.French, "greet", "name", "Ana").Heading)
		assert.Equal(t, "Hi Ana", c.Get(language.English, "greet", "name", "Ana").Heading)
	})

	t.Run("requires English", func(t *testing.T) {
		t.Parallel()
		_, err := messages.Parse([]byte("fr:\n  greet:\n    heading: Salut\n"))
		assert.ErrorIs(t, err, messages.ErrNoFallback)
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		_, err := messages.Parse([]byte("{}"))
		assert.ErrorIs(t, err, messages.ErrEmptyCatalog)
	})

	t.Run("broken yaml", func(t *testing.T) {
		t.Parallel()
		_, err := messages.Parse([]byte("en: [unterminated"))
		assert.ErrorIs(t, err, messages.ErrFailedToParseYAML)
	})

	t.Run("bad language", func(t *testing.T) {
		t.Parallel()
		_, err := messages.Parse([]byte("not_a_language!:\n  k:\n    heading: x\n"))
		assert.ErrorIs(t, err, messages.ErrInvalidLanguage)
	})

	t.Run("missing keys", func(t *testing.T) {
		t.Parallel()
		c, err := messages.Parse([]byte("en:\n  greet:\n    heading: Hi\n"))
		require.NoError(t, err)
		err = c.Validate("greet", "bye")
		assert.ErrorIs(t, err, messages.ErrMissingKey)
		assert.Contains(t, err.Error(), "bye")
	})
}
