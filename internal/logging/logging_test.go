package logging

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	defer SetLevel(LevelWarning)

	SetLevel(LevelInfo)
	Debug("hidden %d", 1)
	Info("shown %d", 2)
	Error("shown %d", 3)

	s := buf.String()
	if strings.Contains(s, "hidden") {
		t.Errorf("debug message written at info level: %q", s)
	}
	if !strings.Contains(s, "I ") || !strings.Contains(s, "shown 2") {
		t.Errorf("info message missing: %q", s)
	}
	if !strings.Contains(s, "E ") || !strings.Contains(s, "shown 3") {
		t.Errorf("error message missing: %q", s)
	}

	buf.Reset()
	SetLevel(LevelNone)
	Error("silent")
	if buf.Len() != 0 {
		t.Errorf("unexpected output at level none: %q", buf.String())
	}
}
