package tui

import (
	"os"

	"golang.org/x/term"
)

// ColorEnabled reports whether output written to f should be styled.
//
// Returns false if:
//   - NO_COLOR is set (accessibility/automation indicator)
//   - CI is set (common CI/CD convention; logs are stored as plain text)
//   - f is not a terminal (redirected output, pipes, tests)
func ColorEnabled(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("CI") != "" {
		return false
	}
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
