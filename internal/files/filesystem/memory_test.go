package filesystem

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryFileSystem_ReadFile(t *testing.T) {
	mfs := NewMemoryFileSystem("/test/project")
	mfs.AddFile("model.edmx", "<Edmx/>")

	content, err := mfs.ReadFile("/test/project/model.edmx")
	require.NoError(t, err)
	require.Equal(t, "<Edmx/>", string(content))

	content, err = mfs.ReadFile("model.edmx")
	require.NoError(t, err)
	require.Equal(t, "<Edmx/>", string(content))
}

func TestMemoryFileSystem_ReadFile_NotFound(t *testing.T) {
	mfs := NewMemoryFileSystem("/test/project")

	_, err := mfs.ReadFile("missing.edmx")
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestMemoryFileSystem_Stat(t *testing.T) {
	mfs := NewMemoryFileSystem("/test/project")
	mfs.AddFile("model.edmx", "<Edmx/>")
	mfs.AddDir("models")

	info, err := mfs.Stat("model.edmx")
	require.NoError(t, err)
	assert.False(t, info.IsDir())
	assert.Equal(t, int64(7), info.Size())

	info, err = mfs.Stat("models")
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestMemoryFileSystem_WriteFileAtomic(t *testing.T) {
	mfs := NewMemoryFileSystem("/test/project")
	mfs.AddFile("model.edmx", "old")

	require.NoError(t, mfs.WriteFileAtomic("model.edmx", []byte("new"), 0600))

	content, err := mfs.ReadFile("model.edmx")
	require.NoError(t, err)
	assert.Equal(t, "new", string(content))
	assert.Equal(t, 1, mfs.Writes())

	info, err := mfs.Stat("model.edmx")
	require.NoError(t, err)
	assert.Equal(t, fs.FileMode(0644), info.Mode(), "existing mode is kept")
}

func TestMemoryFileSystem_WriteErrKeepsContent(t *testing.T) {
	mfs := NewMemoryFileSystem("/test/project")
	mfs.AddFile("model.edmx", "old")
	mfs.WriteErr = errors.New("disk full")

	err := mfs.WriteFileAtomic("model.edmx", []byte("new"), 0644)
	require.Error(t, err)

	content, err := mfs.ReadFile("model.edmx")
	require.NoError(t, err)
	assert.Equal(t, "old", string(content))
	assert.Equal(t, 0, mfs.Writes())
}

func TestMemoryFileSystem_Paths(t *testing.T) {
	mfs := NewMemoryFileSystem("/p")
	mfs.AddFile("b.edmx", "")
	mfs.AddFile("a.edmx", "")
	mfs.AddDir("dir")

	assert.Equal(t, []string{"/p/a.edmx", "/p/b.edmx"}, mfs.Paths())
}
