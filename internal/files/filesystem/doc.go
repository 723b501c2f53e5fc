// Package filesystem provides filesystem abstraction interfaces and implementations.
//
// This package defines the small set of file operations edmxtidy needs,
// enabling testability through an in-memory implementation while keeping the
// OS implementation safe for in-place rewrites.
//
// Key interfaces:
//   - FileSystemProvider: read, stat and atomically replace files
//   - FileInfo: File metadata similar to os.FileInfo
//
// Implementations:
//   - OSFileSystem: Production implementation using the OS filesystem.
//     WriteFileAtomic writes a temporary sibling file and renames it over the
//     target, so a failed write never leaves a truncated or missing file.
//   - MemoryFileSystem: In-memory implementation for testing
package filesystem
