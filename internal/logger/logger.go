// ABOUTME: Leveled logging for the jrpccheck CLI
// ABOUTME: Debug output is gated on a verbosity switch; output is swappable for tests

package logger

import (
	"fmt"
	"io"
	"log"
	"os"
)

var (
	verbose bool
	out     = log.New(os.Stderr, "", log.LstdFlags)
)

// SetVerbose enables or disables DEBUG output.
func SetVerbose(v bool) {
	verbose = v
}

// IsVerbose returns the current verbose setting.
func IsVerbose() bool {
	return verbose
}

// SetOutput redirects log output, or restores stderr when w is nil.
func SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	out.SetOutput(w)
}

// Debug logs at DEBUG level (only shown when verbose).
func Debug(format string, args ...any) {
	if verbose {
		out.Printf("[DEBUG] %s", fmt.Sprintf(format, args...))
	}
}

// Info logs at INFO level.
func Info(format string, args ...any) {
	out.Printf("[INFO] %s", fmt.Sprintf(format, args...))
}

// Warn logs at WARN level.
func Warn(format string, args ...any) {
	out.Printf("[WARN] %s", fmt.Sprintf(format, args...))
}

// Error logs at ERROR level.
func Error(format string, args ...any) {
	out.Printf("[ERROR] %s", fmt.Sprintf(format, args...))
}
