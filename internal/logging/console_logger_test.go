package logging

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/vvka-141/edmxtidy/pkg/edmxtidy"
)

// captureStderr runs fn with os.Stderr redirected and returns what was written.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Pipe() error = %v", err)
	}
	os.Stderr = w

	outputCh := make(chan string)
	go func() {
		var buf bytes.Buffer
		io.Copy(&buf, r)
		outputCh <- buf.String()
	}()

	fn()

	w.Close()
	os.Stderr = old
	return <-outputCh
}

func TestConsoleLogger_Verbose_WhenEnabled(t *testing.T) {
	output := captureStderr(t, func() {
		logger := NewConsoleLogger(true)
		logger.Verbose("test message: %s", "value")
	})

	expected := "[VERBOSE] test message: value\n"
	if output != expected {
		t.Errorf("Expected %q, got %q", expected, output)
	}
}

func TestConsoleLogger_Verbose_WhenDisabled(t *testing.T) {
	output := captureStderr(t, func() {
		logger := NewConsoleLogger(false)
		logger.Verbose("test message: %s", "value")
	})

	if output != "" {
		t.Errorf("Expected no output, got %q", output)
	}
}

func TestConsoleLogger_Info(t *testing.T) {
	output := captureStderr(t, func() {
		logger := NewConsoleLogger(false)
		logger.Info("info message: %s", "value")
	})

	expected := "info message: value\n"
	if output != expected {
		t.Errorf("Expected %q, got %q", expected, output)
	}
}

func TestConsoleLogger_Warn(t *testing.T) {
	output := captureStderr(t, func() {
		logger := NewConsoleLogger(false)
		logger.Warn("%s exists in conceptual model but not in storage model, skipped", "AuditLog")
	})

	expected := "[WARN] AuditLog exists in conceptual model but not in storage model, skipped\n"
	if output != expected {
		t.Errorf("Expected %q, got %q", expected, output)
	}
}

func TestConsoleLogger_Error(t *testing.T) {
	output := captureStderr(t, func() {
		logger := NewConsoleLogger(false)
		logger.Error("error message: %s", "value")
	})

	expected := "[ERROR] error message: value\n"
	if output != expected {
		t.Errorf("Expected %q, got %q", expected, output)
	}
}

func TestConsoleLogger_NoArgsKeepsPercent(t *testing.T) {
	output := captureStderr(t, func() {
		logger := NewConsoleLogger(false)
		logger.Info("100% tidy")
	})

	if output != "100% tidy\n" {
		t.Errorf("Expected %q, got %q", "100% tidy\n", output)
	}
}

func TestConsoleLogger_ConcurrentSafety(t *testing.T) {
	output := captureStderr(t, func() {
		logger := NewConsoleLogger(true)

		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func(id int) {
				defer wg.Done()
				logger.Info("message %d", id)
				logger.Verbose("verbose %d", id)
				logger.Warn("warn %d", id)
				logger.Error("error %d", id)
			}(i)
		}
		wg.Wait()
	})

	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) != 40 {
		t.Errorf("Expected 40 lines, got %d", len(lines))
	}

	for i, line := range lines {
		if !strings.Contains(line, "message") && !strings.Contains(line, "verbose") &&
			!strings.Contains(line, "warn") && !strings.Contains(line, "error") {
			t.Errorf("Line %d appears corrupted: %q", i, line)
		}
	}
}

func TestLoggers_ImplementInterface(t *testing.T) {
	var _ edmxtidy.Logger = NewConsoleLogger(false)
	var _ edmxtidy.Logger = NewNullLogger()
}

func TestNullLogger_DiscardsAllMessages(t *testing.T) {
	output := captureStderr(t, func() {
		logger := NewNullLogger()
		logger.Verbose("verbose")
		logger.Info("info")
		logger.Warn("warn")
		logger.Error("error")
	})

	if output != "" {
		t.Errorf("NullLogger should discard all messages, got: %q", output)
	}
}

// BenchmarkConsoleLogger_VerboseDisabled measures performance when verbose is disabled
func BenchmarkConsoleLogger_VerboseDisabled(b *testing.B) {
	logger := NewConsoleLogger(false)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Verbose("benchmark message %d", i)
	}
}

// Example demonstrates NullLogger usage
func ExampleNullLogger() {
	logger := NewNullLogger()
	logger.Info("This message is discarded")
	logger.Warn("This too")
	logger.Error("And this")
	fmt.Println("Done")
	// Output:
	// Done
}
