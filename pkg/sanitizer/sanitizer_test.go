package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/springmovies/webclient/pkg/sanitizer"
)

func TestCompose(t *testing.T) {
	t.Parallel()

	clean := sanitizer.Compose(sanitizer.RemoveControlChars, sanitizer.Trim, strings.ToUpper)
	assert.Equal(t, "ABC", clean("  a\x00bc\t "))
	assert.Equal(t, "x", sanitizer.Apply("x"))
}

func TestSingleLine(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "a b c", sanitizer.SingleLine(" a\n b\r\n\tc "))
}

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"  Neo@Matrix.IO ", "Neo@matrix.io"},
		{"neo@matrix.io\r\n", "neo@matrix.io"},
		{"not-an-email", "not-an-email"},
		{"a@b@c.io", "a@b@c.io"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizer.NormalizeEmail(tt.in), tt.in)
	}
}

func TestMaskEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"neo@matrix.io", "n**@matrix.io"},
		{"n@matrix.io", "n@matrix.io"},
		{"élan@x.io", "é***@x.io"},
		{"@x.io", "@x.io"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizer.MaskEmail(tt.in), tt.in)
	}
}
