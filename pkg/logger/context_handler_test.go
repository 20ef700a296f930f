package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/springmovies/webclient/pkg/logger"
)

type requestKey struct{}

func requestIDExtractor(ctx context.Context) (slog.Attr, bool) {
	id, ok := ctx.Value(requestKey{}).(string)
	if !ok {
		return slog.Attr{}, false
	}
	return slog.String("request_id", id), true
}

func TestContextHandler(t *testing.T) {
	t.Parallel()

	newLogger := func(buf *bytes.Buffer) *slog.Logger {
		return slog.New(logger.NewContextHandler(slog.NewJSONHandler(buf, nil), nil, requestIDExtractor))
	}
	ctx := context.WithValue(context.Background(), requestKey{}, "from-ctx")

	t.Run("adds extracted attributes", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		newLogger(buf).InfoContext(ctx, "alert enqueued")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "from-ctx", entry["request_id"])
	})

	t.Run("missing value adds nothing", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		newLogger(buf).InfoContext(context.Background(), "alert enqueued")
		assert.NotContains(t, buf.String(), "request_id")
	})

	t.Run("record attribute wins", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		newLogger(buf).InfoContext(ctx, "sign in", slog.String("request_id", "explicit"))

		assert.Equal(t, 1, strings.Count(buf.String(), `"request_id"`))
		assert.Contains(t, buf.String(), `"request_id":"explicit"`)
	})

	t.Run("bound attribute wins", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		newLogger(buf).With(slog.String("request_id", "bound")).InfoContext(ctx, "sign in")

		assert.Equal(t, 1, strings.Count(buf.String(), `"request_id"`))
		assert.Contains(t, buf.String(), `"request_id":"bound"`)
	})

	t.Run("group starts a new level", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		newLogger(buf).With(slog.String("request_id", "outer")).WithGroup("alert").InfoContext(ctx, "hidden")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "outer", entry["request_id"])
		group, ok := entry["alert"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "from-ctx", group["request_id"])
	})
}
