package services

import (
	"fmt"
	"sync"
)

// recordingLogger keeps formatted messages per level.
type recordingLogger struct {
	mu       sync.Mutex
	verbose  []string
	info     []string
	warnings []string
	errors   []string
}

func (m *recordingLogger) Verbose(format string, args ...interface{}) {
	m.record(&m.verbose, format, args)
}

func (m *recordingLogger) Info(format string, args ...interface{}) {
	m.record(&m.info, format, args)
}

func (m *recordingLogger) Warn(format string, args ...interface{}) {
	m.record(&m.warnings, format, args)
}

func (m *recordingLogger) Error(format string, args ...interface{}) {
	m.record(&m.errors, format, args)
}

func (m *recordingLogger) record(dst *[]string, format string, args []interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	*dst = append(*dst, fmt.Sprintf(format, args...))
}

// fixedChecksum makes every document hash to the same value.
type fixedChecksum struct{}

func (fixedChecksum) Calculate(_ []byte) string { return "fixed" }
