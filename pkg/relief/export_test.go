package relief

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Binary STL layout: 80-byte header, uint32 triangle count, then 50
// bytes per triangle.
const stlHeaderSize = 84

func TestWriteSTL(t *testing.T) {
	m, err := Build(uniformGrid(2, 2, 1.0), testParams)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "slab.stl")
	require.NoError(t, WriteSTL(path, m))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.EqualValues(t, stlHeaderSize+50*len(m.Faces), info.Size(),
		"triangle count must be preserved exactly")
}

func TestWriteSTLUnwritablePath(t *testing.T) {
	m, err := Build(uniformGrid(2, 2, 1.0), testParams)
	require.NoError(t, err)

	err = WriteSTL(filepath.Join(t.TempDir(), "missing", "dir", "slab.stl"), m)
	assert.Error(t, err)
}
