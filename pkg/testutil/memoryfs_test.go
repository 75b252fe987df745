// pkg/testutil/memoryfs_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Sanity-check the in-memory filesystem used by other suites

package testutil

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryFSWriteRead(t *testing.T) {
	m := NewMemoryFS()
	require.NoError(t, m.MkdirAll("/project", 0755))
	require.NoError(t, m.WriteFile("/project/README.md", []byte("# hi"), 0644))

	data, err := m.ReadFile("/project/README.md")
	require.NoError(t, err)
	assert.Equal(t, "# hi", string(data))

	info, err := m.Stat("/project/README.md")
	require.NoError(t, err)
	assert.False(t, info.IsDir())
	assert.Equal(t, int64(4), info.Size())
}

func TestMemoryFSWriteRequiresParent(t *testing.T) {
	m := NewMemoryFS()
	err := m.WriteFile("/missing/file.txt", []byte("x"), 0644)
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestMemoryFSMkdirAllIdempotent(t *testing.T) {
	m := NewMemoryFS()
	require.NoError(t, m.MkdirAll("/a/b/c", 0755))
	require.NoError(t, m.MkdirAll("/a/b/c", 0755))

	info, err := m.Stat("/a/b")
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestMemoryFSRename(t *testing.T) {
	m := NewMemoryFS()
	require.NoError(t, m.WriteFile("/.f.tmp", []byte("data"), 0644))
	require.NoError(t, m.Rename("/.f.tmp", "/f"))

	_, err := m.Stat("/.f.tmp")
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	data, err := m.ReadFile("/f")
	require.NoError(t, err)
	assert.Equal(t, "data", string(data))
}

func TestMemoryFSErrorInjection(t *testing.T) {
	m := NewMemoryFS()
	boom := errors.New("disk full")
	m.InjectError("/project/file.txt", boom)
	require.NoError(t, m.MkdirAll("/project", 0755))

	err := m.WriteFile("/project/file.txt", []byte("x"), 0644)
	assert.ErrorIs(t, err, boom)
}

func TestMemoryFSRemoveAll(t *testing.T) {
	m := NewMemoryFS()
	require.NoError(t, m.MkdirAll("/p/sub", 0755))
	require.NoError(t, m.WriteFile("/p/sub/x", []byte("x"), 0644))
	require.NoError(t, m.RemoveAll("/p"))

	_, err := m.Stat("/p/sub/x")
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}
