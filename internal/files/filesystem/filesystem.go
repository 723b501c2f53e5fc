package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// FileSystemProvider abstracts the file operations used to load and persist
// EDMX documents.
type FileSystemProvider interface {
	// ReadFile reads a specific file at the given path
	ReadFile(path string) ([]byte, error)

	// Stat returns file information for the given path
	Stat(path string) (FileInfo, error)

	// WriteFileAtomic replaces path with data. Either the complete data is
	// visible at path afterwards or the previous content is left intact.
	// An existing file's permission bits are kept; perm applies to new files.
	WriteFileAtomic(path string, data []byte, perm fs.FileMode) error
}
