package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewWithWriterLevel(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"WARN", zerolog.WarnLevel},
		{"", zerolog.InfoLevel},
		{"invalid-level", zerolog.InfoLevel},
	}
	for _, tc := range tests {
		l := NewWithWriter(Config{Level: tc.level, Format: FormatJSON}, &bytes.Buffer{})
		if l.GetLevel() != tc.want {
			t.Errorf("level %q: got %v, want %v", tc.level, l.GetLevel(), tc.want)
		}
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(Config{Level: "info", Format: FormatJSON}, &buf)
	l.Info().Str("video_id", "v1").Msg("hello")

	out := buf.String()
	for _, want := range []string{`"level":"info"`, `"video_id":"v1"`, `"message":"hello"`, `"time":`} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %s in %s", want, out)
		}
	}
}

func TestConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(Config{Level: "debug", Format: FormatConsole, NoColor: true}, &buf)
	l.Debug().Msg("console line")

	out := buf.String()
	if !strings.Contains(out, "[DEBUG]") || !strings.Contains(out, "console line") {
		t.Errorf("unexpected console output: %q", out)
	}
}
