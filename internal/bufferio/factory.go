package bufferio

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// BufferManagerFactory hands out one BufferManager per version, opening the
// corresponding file on first use and reusing it afterward. Grounded on the
// "create directory, open-or-create file" idiom the graph storage layer
// uses, generalized from one fixed file to one file per version.
type BufferManagerFactory struct {
	dataPath string

	mu       sync.Mutex
	managers map[Version]*BufferManager
}

// NewBufferManagerFactory creates a factory rooted at dataPath, creating the
// directory if it does not already exist.
func NewBufferManagerFactory(dataPath string) (*BufferManagerFactory, error) {
	if err := os.MkdirAll(dataPath, 0755); err != nil {
		return nil, fmt.Errorf("bufferio: failed to create data directory: %w", err)
	}
	return &BufferManagerFactory{
		dataPath: dataPath,
		managers: make(map[Version]*BufferManager),
	}, nil
}

// Get returns the BufferManager for a version, opening its file if this is
// the first request for that version.
func (f *BufferManagerFactory) Get(version Version) (*BufferManager, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if bm, ok := f.managers[version]; ok {
		return bm, nil
	}

	path := filepath.Join(f.dataPath, fmt.Sprintf("%d.buf", uint64(version)))
	bm, err := newBufferManager(version, path)
	if err != nil {
		return nil, err
	}
	f.managers[version] = bm
	return bm, nil
}

// Close closes every BufferManager the factory has opened.
func (f *BufferManagerFactory) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	var firstErr error
	for _, bm := range f.managers {
		if err := bm.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
