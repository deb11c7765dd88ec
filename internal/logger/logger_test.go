package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		level     int
		format    string
		logDebug  bool
		wantEmpty bool
		wantJSON  bool
	}{
		{name: "text info", level: 0, format: "text"},
		{name: "json info", level: 0, format: "JSON", wantJSON: true},
		{name: "debug filtered at info level", level: 0, format: "text", logDebug: true, wantEmpty: true},
		{name: "debug level passes debug", level: -4, format: "text", logDebug: true},
		{name: "unknown format falls back to text", level: 0, format: "yaml"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			l := NewWithWriter(&buf, tt.level, tt.format)

			if tt.logDebug {
				l.Debug("hello", "key", "value")
			} else {
				l.Info("hello", "key", "value")
			}

			if tt.wantEmpty {
				assert.Empty(t, buf.String())
				return
			}

			if tt.wantJSON {
				var rec map[string]any
				require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
				assert.Equal(t, "hello", rec["msg"])
				assert.Equal(t, "value", rec["key"])
				return
			}

			assert.Contains(t, buf.String(), "msg=hello")
			assert.Contains(t, buf.String(), "key=value")
		})
	}
}

func TestLogger_With(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := NewWithWriter(&buf, 0, "text").With("request_id", "abc")
	l.Info("scoped")

	assert.Contains(t, buf.String(), "request_id=abc")
}
