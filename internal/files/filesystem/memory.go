package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory files
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

type memoryFile struct {
	content []byte
	info    *memoryFileInfo
}

// MemoryFileSystem implements FileSystemProvider for in-memory testing.
// Paths are normalized to forward slashes; relative paths resolve against root.
type MemoryFileSystem struct {
	mu    sync.Mutex
	files map[string]*memoryFile
	root  string

	// WriteErr, when set, makes every WriteFileAtomic call fail without
	// touching stored content.
	WriteErr error

	writes int
}

// NewMemoryFileSystem creates a new in-memory filesystem.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))
	return &MemoryFileSystem{
		files: make(map[string]*memoryFile),
		root:  root,
	}
}

func (mfs *MemoryFileSystem) resolve(p string) string {
	p = filepath.ToSlash(p)
	if !path.IsAbs(p) {
		p = path.Join(mfs.root, p)
	}
	return path.Clean(p)
}

// AddFile adds a file to the in-memory filesystem
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	mfs.store(mfs.resolve(filePath), []byte(content), 0644)
}

// AddDir registers an empty directory.
func (mfs *MemoryFileSystem) AddDir(dirPath string) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	abs := mfs.resolve(dirPath)
	mfs.files[abs] = &memoryFile{
		info: &memoryFileInfo{
			name:    path.Base(abs),
			mode:    0755 | fs.ModeDir,
			modTime: time.Now(),
			isDir:   true,
		},
	}
}

func (mfs *MemoryFileSystem) store(absPath string, content []byte, perm fs.FileMode) {
	data := make([]byte, len(content))
	copy(data, content)
	mfs.files[absPath] = &memoryFile{
		content: data,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			size:    int64(len(data)),
			mode:    perm,
			modTime: time.Now(),
		},
	}
}

// ReadFile implements FileSystemProvider.ReadFile
func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	file, exists := mfs.files[mfs.resolve(filePath)]
	if !exists {
		return nil, fmt.Errorf("file not found: %s: %w", filePath, fs.ErrNotExist)
	}
	if file.info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", filePath)
	}

	out := make([]byte, len(file.content))
	copy(out, file.content)
	return out, nil
}

// Stat implements FileSystemProvider.Stat
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	file, exists := mfs.files[mfs.resolve(statPath)]
	if !exists {
		return nil, fmt.Errorf("path not found: %s: %w", statPath, fs.ErrNotExist)
	}
	return file.info, nil
}

// WriteFileAtomic implements FileSystemProvider.WriteFileAtomic
func (mfs *MemoryFileSystem) WriteFileAtomic(filePath string, data []byte, perm fs.FileMode) error {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	if mfs.WriteErr != nil {
		return mfs.WriteErr
	}

	abs := mfs.resolve(filePath)
	if existing, ok := mfs.files[abs]; ok {
		if existing.info.IsDir() {
			return fmt.Errorf("path is a directory, not a file: %s", filePath)
		}
		perm = existing.info.mode
	}
	mfs.store(abs, data, perm)
	mfs.writes++
	return nil
}

// Writes returns how many WriteFileAtomic calls succeeded.
func (mfs *MemoryFileSystem) Writes() int {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	return mfs.writes
}

// Paths lists stored file paths in sorted order.
func (mfs *MemoryFileSystem) Paths() []string {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	paths := make([]string, 0, len(mfs.files))
	for p, f := range mfs.files {
		if !f.info.IsDir() {
			paths = append(paths, p)
		}
	}
	sort.Strings(paths)
	return paths
}
