package edmx

import (
	"encoding/xml"
	"errors"
	"fmt"

	"github.com/vvka-141/edmxtidy/pkg/edmxtidy"
)

// DocumentError describes why a file could not be used as an EDMX document.
// It unwraps to edmxtidy.ErrMalformedDocument.
type DocumentError struct {
	Path    string // Path to the file with the error
	Line    int    // Line number (0 if unknown)
	Message string // Primary error message
	Hint    string // Actionable suggestion for fixing
	Err     error  // Underlying parser error, if any
}

// Error implements the error interface with rich formatting.
func (e *DocumentError) Error() string {
	location := e.Path
	if e.Line > 0 {
		location = fmt.Sprintf("%s (line %d)", e.Path, e.Line)
	}

	msg := fmt.Sprintf("malformed document %s: %s", location, e.Message)
	if e.Hint != "" {
		msg += "\n\nHint: " + e.Hint
	}
	return msg
}

func (e *DocumentError) Unwrap() []error {
	if e.Err != nil {
		return []error{edmxtidy.ErrMalformedDocument, e.Err}
	}
	return []error{edmxtidy.ErrMalformedDocument}
}

// wrapParseError converts XML parser errors to DocumentError with line numbers.
func wrapParseError(err error, path string) error {
	var syntaxErr *xml.SyntaxError
	if errors.As(err, &syntaxErr) {
		return &DocumentError{
			Path:    path,
			Line:    syntaxErr.Line,
			Message: syntaxErr.Msg,
			Hint:    "Check that all XML tags are properly closed and attributes are quoted.",
			Err:     err,
		}
	}

	return &DocumentError{
		Path:    path,
		Message: err.Error(),
		Hint:    "The file must be a well-formed EDMX (XML) document.",
		Err:     err,
	}
}
