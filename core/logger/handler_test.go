package logger

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestHandler(buf *bytes.Buffer, format logFormat) (*structuredHandler, *asyncWriter) {
	aw := newAsyncWriter([]io.Writer{buf}, 1024)
	h := newStructuredHandler(handlerConfig{
		level:    slog.LevelDebug,
		writer:   aw,
		format:   format,
		keyOrder: append([]string(nil), defaultKeyOrder...),
	})
	return h, aw
}

func TestStructuredHandlerKVOrder(t *testing.T) {
	buf := &bytes.Buffer{}
	h, aw := newTestHandler(buf, formatKV)

	ctx := WithRID(Background(), "rid-123")
	ctx = WithUpdateMeta(ctx, 42, 7, 9)

	log := slog.New(h).With("component", "app")
	LogEvent(ctx, log, slog.LevelInfo, "test.event",
		slog.String("status", "ok"),
	)
	require.NoError(t, aw.Flush())
	require.NoError(t, aw.Close())

	line := strings.TrimSpace(buf.String())
	require.NotEmpty(t, line)

	tokens := strings.Split(line, " ")
	prefixes := []string{"ts=", "level=INFO", "component=app", "event=test.event", "status=ok", "rid=rid-123"}
	require.GreaterOrEqual(t, len(tokens), len(prefixes))
	for i, prefix := range prefixes {
		require.Truef(t, strings.HasPrefix(tokens[i], prefix),
			"token %d = %s, expected prefix %s", i, tokens[i], prefix)
	}
}

func TestStructuredHandlerJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	h, aw := newTestHandler(buf, formatJSON)

	ctx := WithRID(Background(), "rid-json")
	log := slog.New(h).With("component", "store")
	LogEvent(ctx, log, slog.LevelError, "store.failed",
		slog.String("status", "fail"),
		slog.String("err", "boom"),
	)
	require.NoError(t, aw.Flush())
	require.NoError(t, aw.Close())

	line := strings.TrimSpace(buf.String())
	require.True(t, strings.HasPrefix(line, "{"), "expected JSON, got %s", line)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &decoded))
	require.Equal(t, "ERROR", decoded["level"])
	require.Equal(t, "store", decoded["component"])
	require.Equal(t, "store.failed", decoded["event"])
	require.Equal(t, "rid-json", decoded["rid"])
	require.Equal(t, "boom", decoded["err"])
}

func TestSanitizeLimit(t *testing.T) {
	require.Equal(t, "a b", Sanitize("a\nb"))
	require.Equal(t, "абв…", SanitizeLimit("абвгд", 3))
	require.Equal(t, "abc", SanitizeLimit("abc", 10))
}

func TestRatioSampler(t *testing.T) {
	s := newRatioSampler(1, 3)
	allowed := 0
	for i := 0; i < 9; i++ {
		if s.Allow() {
			allowed++
		}
	}
	require.Equal(t, 3, allowed)
}
