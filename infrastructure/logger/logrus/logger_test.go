package logrus

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogger_LevelFiltering(t *testing.T) {
	logger := NewLogger("warn")
	var buf bytes.Buffer
	logger.log.SetOutput(&buf)

	logger.Info("should be dropped", nil)
	logger.Warn("should appear", map[string]interface{}{"key": "value"})

	out := buf.String()
	if strings.Contains(out, "should be dropped") {
		t.Error("info message logged at warn level")
	}
	if !strings.Contains(out, "should appear") {
		t.Error("warn message missing")
	}
	if !strings.Contains(out, "key=value") {
		t.Errorf("structured field missing: %s", out)
	}
}

func TestNewLogger_UnknownLevelDefaultsToInfo(t *testing.T) {
	logger := NewLogger("chatty")
	var buf bytes.Buffer
	logger.log.SetOutput(&buf)

	logger.Debug("debug line", nil)
	logger.Info("info line", nil)

	out := buf.String()
	if strings.Contains(out, "debug line") {
		t.Error("debug should be filtered at the default level")
	}
	if !strings.Contains(out, "info line") {
		t.Error("info should pass at the default level")
	}
}

func TestLogger_NilFields(t *testing.T) {
	logger := NewLogger("debug")
	var buf bytes.Buffer
	logger.log.SetOutput(&buf)

	// Must not panic with a nil fields map.
	logger.Error("bare message", nil)

	if !strings.Contains(buf.String(), "bare message") {
		t.Errorf("message missing: %s", buf.String())
	}
}
