package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/vvka-141/edmxtidy/internal/files/filesystem"
	"github.com/vvka-141/edmxtidy/pkg/edmxtidy"
)

// RequireInputFile validates that path names an existing regular file.
// Returns a helpful error message with an example if it does not.
func RequireInputFile(fsProvider filesystem.FileSystemProvider, path string) error {
	if path == "" {
		return fmt.Errorf(`%w: missing required flag --input

Example:
  edmxtidy sort --input Model.edmx`, edmxtidy.ErrInvalidArgument)
	}

	info, err := fsProvider.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: input file %s does not exist", edmxtidy.ErrInvalidArgument, path)
		}
		return fmt.Errorf("%w: cannot access %s: %v", edmxtidy.ErrInvalidArgument, path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: input %s is not a regular file", edmxtidy.ErrInvalidArgument, path)
	}
	return nil
}
