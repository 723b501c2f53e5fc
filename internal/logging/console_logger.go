package logging

import (
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vvka-141/edmxtidy/internal/tui"
)

// ConsoleLogger writes log messages to stderr.
// Level prefixes are coloured when stderr is a terminal.
// Safe for concurrent use by multiple goroutines.
type ConsoleLogger struct {
	verbose bool
	color   bool
	palette tui.Palette
	mu      sync.Mutex
}

// NewConsoleLogger creates a new ConsoleLogger.
// If verbose is true, Verbose() calls will produce output.
// If verbose is false, Verbose() calls are no-ops.
func NewConsoleLogger(verbose bool) *ConsoleLogger {
	return &ConsoleLogger{
		verbose: verbose,
		color:   tui.ColorEnabled(os.Stderr),
		palette: tui.NewPalette(os.Stderr),
	}
}

// Verbose logs detailed diagnostic information if verbose mode is enabled.
func (l *ConsoleLogger) Verbose(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.write(l.prefix("VERBOSE", l.palette.Muted), format, args)
}

// Info logs informational messages about normal operations.
func (l *ConsoleLogger) Info(format string, args ...interface{}) {
	l.write("", format, args)
}

// Warn logs recoverable problems.
func (l *ConsoleLogger) Warn(format string, args ...interface{}) {
	l.write(l.prefix("WARN", l.palette.Warning), format, args)
}

// Error logs error messages.
func (l *ConsoleLogger) Error(format string, args ...interface{}) {
	l.write(l.prefix("ERROR", l.palette.Error), format, args)
}

func (l *ConsoleLogger) prefix(label string, style lipgloss.Style) string {
	tag := "[" + label + "]"
	if l.color {
		tag = style.Render(tag)
	}
	return tag + " "
}

func (l *ConsoleLogger) write(prefix, format string, args []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(args) > 0 {
		fmt.Fprintf(os.Stderr, prefix+format+"\n", args...)
	} else {
		fmt.Fprint(os.Stderr, prefix+format+"\n")
	}
}
