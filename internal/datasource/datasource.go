// Package datasource implements the DataSource contract the core consumes
// from its collaborators: lazy byte access with an optional file path,
// normalized from any mix of file paths, inlined byte batches, and
// already-wrapped sources.
package datasource

import (
	"os"
	"sync"
)

// DataSource is a lazy byte container with an optional file path. Bytes
// reads the full contents, performing any I/O only on first call; Path
// reports the backing file path, when there is one, for diagnostics and for
// strategies (like Papyrus) that correlate sibling files by path.
type DataSource interface {
	Bytes() ([]byte, error)
	Path() (string, bool)
}

// FileSource wraps a path on disk. Its bytes are read lazily: the file is
// only opened the first time Bytes is called, and the result is cached so a
// strategy probing several pipes against the same source does not re-read
// the file from disk on every attempt.
type FileSource struct {
	path string

	once    sync.Once
	data    []byte
	readErr error
}

// NewFileSource wraps path in a lazily-read DataSource.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Bytes reads and caches the file's contents.
func (f *FileSource) Bytes() ([]byte, error) {
	f.once.Do(func() {
		f.data, f.readErr = os.ReadFile(f.path)
	})
	return f.data, f.readErr
}

// Path reports the wrapped file path.
func (f *FileSource) Path() (string, bool) {
	return f.path, true
}

// MemorySource wraps bytes supplied directly by the caller — the
// "dataBatches (inlined bytes)" input kind — with no backing file.
type MemorySource struct {
	data []byte
}

// NewMemorySource wraps data in a DataSource with no file path.
func NewMemorySource(data []byte) *MemorySource {
	return &MemorySource{data: data}
}

// Bytes returns the wrapped data. It never fails: the bytes are already in
// memory.
func (m *MemorySource) Bytes() ([]byte, error) {
	return m.data, nil
}

// Path always reports no backing file.
func (m *MemorySource) Path() (string, bool) {
	return "", false
}

// Inputs is the normalized form of whatever mix of filePaths, dataBatches,
// and dataSources a caller passed to the Deserializer Facade.
type Inputs struct {
	FilePaths   []string
	DataBatches [][]byte
	DataSources []DataSource
}

// Normalize turns Inputs into a single ordered slice of DataSources: file
// paths become lazy FileSources, inlined byte batches become MemorySources,
// and already-wrapped DataSources pass through unchanged. Order is
// preserved within each kind and across kinds in the sequence FilePaths,
// DataBatches, DataSources, matching the order fields are declared in
// Inputs.
func Normalize(in Inputs) []DataSource {
	out := make([]DataSource, 0, len(in.FilePaths)+len(in.DataBatches)+len(in.DataSources))
	for _, p := range in.FilePaths {
		out = append(out, NewFileSource(p))
	}
	for _, b := range in.DataBatches {
		out = append(out, NewMemorySource(b))
	}
	out = append(out, in.DataSources...)
	return out
}
