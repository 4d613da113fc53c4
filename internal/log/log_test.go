package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"trace":   LevelTrace,
		"debug":   slog.LevelDebug,
		"":        slog.LevelInfo,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestLevelSplit(t *testing.T) {
	var out, errOut bytes.Buffer
	logger := slog.New(NewMultiHandler(
		NewLevelFilter(func(l slog.Level) bool { return l < slog.LevelError }, NewHandler(&out, "text", LevelTrace)),
		NewLevelFilter(func(l slog.Level) bool { return l >= slog.LevelError }, NewHandler(&errOut, "text", slog.LevelError)),
	))

	logger.Log(t.Context(), LevelTrace, "tick")
	logger.Info("hello")
	logger.Error("boom")

	assert.Contains(t, out.String(), "level=TRACE msg=tick")
	assert.Contains(t, out.String(), "msg=hello")
	assert.NotContains(t, out.String(), "boom")
	assert.Contains(t, errOut.String(), "msg=boom")
	assert.NotContains(t, errOut.String(), "hello")
}

func TestFileHandler(t *testing.T) {
	var console, file bytes.Buffer
	logger := slog.New(newHandler(Config{Level: "debug", Format: "text"}, &console, &file))

	logger.Debug("detail")
	logger.Warn("careful")

	assert.Contains(t, file.String(), "msg=detail")
	assert.Contains(t, file.String(), "msg=careful")
	assert.NotContains(t, console.String(), "detail")
	assert.Contains(t, console.String(), "msg=careful")

	console.Reset()
	slog.New(newHandler(Config{Level: "warn"}, &console, nil)).Info("quiet")
	assert.Empty(t, console.String())
}

func TestJSONHandler(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(NewHandler(&out, "json", slog.LevelDebug))
	logger.Debug("lock", "locked", true)
	assert.Contains(t, out.String(), `"msg":"lock"`)
	assert.Contains(t, out.String(), `"locked":true`)
}

func TestRawLogger(t *testing.T) {
	var out bytes.Buffer
	r := NewRaw(&out).(*rawLogger)
	r.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }

	r.Log(7, []byte{0x00, 0x10, 0x08, 0x00, 0x80, 0x80, 0x80, 0xff})
	r.Log(8, nil)

	assert.Equal(t, "2024/01/02 03:04:05.000 tick=7 len=8 hex: 00 10 08 00 80 80 80 ff\n", out.String())
	assert.Equal(t, 1, strings.Count(out.String(), "\n"))

	// nil writer is a no-op
	NewRaw(nil).Log(1, []byte{1})
}

func TestHexString(t *testing.T) {
	assert.Equal(t, "", HexString(nil))
	assert.Equal(t, "0a ff 80", HexString([]byte{0x0a, 0xff, 0x80}))
}
