package datasource

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileSourceReadsLazilyAndCaches(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "model.xmi")
	require.NoError(t, os.WriteFile(path, []byte("<xmi/>"), 0o644))

	src := NewFileSource(path)

	data, err := src.Bytes()
	require.NoError(t, err)
	require.Equal(t, "<xmi/>", string(data))

	require.NoError(t, os.WriteFile(path, []byte("<changed/>"), 0o644))
	data, err = src.Bytes()
	require.NoError(t, err)
	require.Equal(t, "<xmi/>", string(data), "Bytes must not re-read after the first call")

	gotPath, ok := src.Path()
	require.True(t, ok)
	require.Equal(t, path, gotPath)
}

func TestFileSourceSurfacesReadError(t *testing.T) {
	t.Parallel()

	src := NewFileSource(filepath.Join(t.TempDir(), "missing.xmi"))
	_, err := src.Bytes()
	require.Error(t, err)
}

func TestMemorySourceHasNoPath(t *testing.T) {
	t.Parallel()

	src := NewMemorySource([]byte("{}"))
	data, err := src.Bytes()
	require.NoError(t, err)
	require.Equal(t, "{}", string(data))

	_, ok := src.Path()
	require.False(t, ok)
}

func TestNormalizeOrdersFilePathsThenBatchesThenSources(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "a.xmi")
	require.NoError(t, os.WriteFile(path, []byte("a"), 0o644))

	wrapped := NewMemorySource([]byte("wrapped"))
	sources := Normalize(Inputs{
		FilePaths:   []string{path},
		DataBatches: [][]byte{[]byte("inline")},
		DataSources: []DataSource{wrapped},
	})

	require.Len(t, sources, 3)
	data0, err := sources[0].Bytes()
	require.NoError(t, err)
	require.Equal(t, "a", string(data0))

	data1, err := sources[1].Bytes()
	require.NoError(t, err)
	require.Equal(t, "inline", string(data1))

	require.Same(t, wrapped, sources[2])
}

func TestNormalizeEmptyInputsYieldsEmptySlice(t *testing.T) {
	t.Parallel()

	sources := Normalize(Inputs{})
	require.Empty(t, sources)
}
