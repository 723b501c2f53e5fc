package edmxtidy

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	_, err := svc.Run(opts)
//	if errors.Is(err, edmxtidy.ErrMissingModelSection) {
//	    // The file is not a complete EDMX model
//	}
var (
	// ErrInvalidArgument indicates missing or invalid command-line input.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidConfig indicates an unreadable or invalid edmxtidy.yaml.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrMalformedDocument indicates the input is not well-formed XML or has no root element.
	ErrMalformedDocument = errors.New("malformed document")

	// ErrMissingModelSection indicates the StorageModels or ConceptualModels section is absent.
	ErrMissingModelSection = errors.New("missing model section")

	// ErrUnknownSortMethod indicates a sort method the engine does not implement.
	ErrUnknownSortMethod = errors.New("unknown sort method")

	// ErrWriteFailed indicates the transformed document could not be persisted.
	ErrWriteFailed = errors.New("write failed")

	// ErrWouldChange indicates check mode found a document that is not tidy.
	ErrWouldChange = errors.New("document would change")
)

// usageErrorPatterns are fragments of cobra/pflag parse errors.
var usageErrorPatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"required flag",
	"invalid argument",
	"flag needs an argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidArgument):
		return ExitUsageError
	case errors.Is(err, ErrInvalidConfig), errors.Is(err, ErrUnknownSortMethod):
		return ExitConfigError
	case errors.Is(err, ErrMalformedDocument):
		return ExitMalformedDocument
	case errors.Is(err, ErrMissingModelSection):
		return ExitMissingModelSection
	case errors.Is(err, ErrWriteFailed):
		return ExitWriteFailed
	case errors.Is(err, ErrWouldChange):
		return ExitWouldChange
	}

	errStr := err.Error()
	for _, pattern := range usageErrorPatterns {
		if strings.Contains(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
