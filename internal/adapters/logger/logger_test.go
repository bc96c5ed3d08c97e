package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/samogon/internal/adapters/logger"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger with an injected bytes.Buffer for isolated testing.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Levels(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Info("some message")
	lg.Warn("some warning")

	out := buf.String()
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "some message")
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "some warning")
}

func TestLogger_DebugRequiresVerbose(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Debug("hidden")
	assert.Empty(t, buf.String())

	lg.SetVerbose(true)
	lg.Debug("shown")
	assert.Contains(t, buf.String(), "shown")
	assert.NotContains(t, buf.String(), "hidden")
}

func TestLogger_ErrorChain(t *testing.T) {
	lg, buf := newTestLogger(t)

	err := zerr.Wrap(zerr.Wrap(errors.New("connection reset"), "download failed"), "fetch wget")
	lg.Error(err)

	out := buf.String()
	assert.Contains(t, out, "Error: fetch wget")
	assert.Contains(t, out, "Caused by:")
	assert.Contains(t, out, "→ download failed")
	assert.Contains(t, out, "→ connection reset")
}

func TestLogger_ErrorNil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_JSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Error(errors.New("boom"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "boom", record["error"])
}

func TestFormatError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "standard error",
			err:  errors.New("simple error"),
			want: "Error: simple error",
		},
		{
			name: "wrapped chain",
			err:  zerr.Wrap(zerr.Wrap(errors.New("root cause"), "middle layer"), "outer layer"),
			want: "Error: outer layer\n\n  Caused by:\n    → middle layer\n    → root cause",
		},
		{
			name: "multiline cause",
			err:  zerr.Wrap(errors.New("cause line1\ncause line2"), "main"),
			want: "Error: main\n\n  Caused by:\n    → cause line1\n      cause line2",
		},
		{
			name: "joined sentinel",
			err:  errors.Join(zerr.New("install failed"), zerr.Wrap(errors.New("boom"), "fetch failed")),
			want: "Error: install failed\n\n  Caused by:\n    → fetch failed\n    → boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatError(tt.err))
		})
	}
}
