// ABOUTME: Tests for the leveled CLI logger
// ABOUTME: Validates verbosity gating and output redirection

package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestSetVerbose(t *testing.T) {
	if IsVerbose() {
		t.Error("logger should default to non-verbose")
	}

	SetVerbose(true)
	if !IsVerbose() {
		t.Error("SetVerbose(true) did not enable verbose mode")
	}

	SetVerbose(false)
	if IsVerbose() {
		t.Error("SetVerbose(false) did not disable verbose mode")
	}
}

func TestDebugGatedOnVerbose(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(nil)

	SetVerbose(false)
	Debug("hidden")
	if buf.Len() > 0 {
		t.Error("Debug output when not verbose")
	}

	SetVerbose(true)
	defer SetVerbose(false)
	buf.Reset()
	Debug("shown %d", 1)
	if !strings.Contains(buf.String(), "[DEBUG] shown 1") {
		t.Errorf("unexpected debug output: %q", buf.String())
	}
}

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(nil)

	Info("i")
	Warn("w")
	Error("e")

	for _, want := range []string{"[INFO] i", "[WARN] w", "[ERROR] e"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("missing %q in output %q", want, buf.String())
		}
	}
}
