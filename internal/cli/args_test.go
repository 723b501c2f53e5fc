package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/edmxtidy/internal/files/filesystem"
	"github.com/vvka-141/edmxtidy/pkg/edmxtidy"
)

func TestRequireInputFile(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/work")
	mfs.AddFile("Model.edmx", "<Edmx/>")
	mfs.AddDir("models")

	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{"existing file", "Model.edmx", ""},
		{"empty path", "", "missing required flag --input"},
		{"missing file", "Other.edmx", "does not exist"},
		{"directory", "models", "is not a regular file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RequireInputFile(mfs, tt.path)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.True(t, errors.Is(err, edmxtidy.ErrInvalidArgument))
		})
	}
}
