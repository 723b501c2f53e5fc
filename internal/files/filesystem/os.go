package filesystem

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// OSFileSystem implements FileSystemProvider for the OS filesystem
type OSFileSystem struct {
	// rename is os.Rename outside of tests.
	rename func(oldpath, newpath string) error
}

// NewOSFileSystem creates a new OS filesystem provider
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{rename: os.Rename}
}

func (p *OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (p *OSFileSystem) Stat(path string) (FileInfo, error) {
	// os.Stat returns os.FileInfo which implements fs.FileInfo
	return os.Stat(path)
}

// WriteFileAtomic writes data to a temporary file in the target's directory,
// flushes it to disk and renames it over path. The temporary file lives in
// the same directory so the rename never crosses filesystems.
func (p *OSFileSystem) WriteFileAtomic(path string, data []byte, perm fs.FileMode) error {
	dir := filepath.Dir(path)
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return fmt.Errorf("path is a directory, not a file: %s", path)
		}
		perm = info.Mode().Perm()
	}

	tmpPath := filepath.Join(dir, tempName(path))
	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	if err := writeAndSync(f, data); err != nil {
		os.Remove(tmpPath)
		return err
	}

	// OpenFile applies the umask; make the final mode match the original file.
	if err := os.Chmod(tmpPath, perm); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to set permissions on temp file: %w", err)
	}

	rename := p.rename
	if rename == nil {
		rename = os.Rename
	}
	if err := rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}

	return nil
}

func writeAndSync(f *os.File, data []byte) error {
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	return nil
}

// tempName returns a hidden sibling name unique to this write.
func tempName(path string) string {
	return fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString())
}
