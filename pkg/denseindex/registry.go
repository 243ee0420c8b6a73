package denseindex

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/therealutkarshpriyadarshi/vector/pkg/observability"
)

// Registry is the minimal collection catalog a process-local API surface
// needs to open, create, and reuse DenseIndex collections by name: it maps
// a collection name to a subdirectory of root and keeps at most one
// DenseIndex open per name. It does not implement write-ahead transaction
// coordination or a standalone catalog service - just enough bookkeeping
// for an in-process caller (here, pkg/api/rest) to reach a named
// collection without reimplementing OpenDenseIndex/CreateDenseIndex's
// bookkeeping at every call site.
type Registry struct {
	root    string
	logger  *observability.Logger
	metrics *observability.Metrics

	mu          sync.Mutex
	collections map[string]*DenseIndex
}

// NewRegistry creates a registry rooted at root, creating the directory if
// it does not already exist.
func NewRegistry(root string, logger *observability.Logger, metrics *observability.Metrics) (*Registry, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("denseindex: failed to create registry root: %w", err)
	}
	return &Registry{
		root:        root,
		logger:      logger,
		metrics:     metrics,
		collections: make(map[string]*DenseIndex),
	}, nil
}

func (r *Registry) pathFor(name string) string {
	return filepath.Join(r.root, name)
}

// Create allocates a new named collection and keeps it open in the
// registry. A zero Graph on opts takes DefaultGraphConfig, as in
// CreateDenseIndex; MaxCacheLevel, LMax and Variant are used as given, so
// leaving them zero means level 0 only and the UnsignedByte variant.
func (r *Registry) Create(name string, opts CreateConfig) (*DenseIndex, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.collections[name]; ok {
		return nil, ErrAlreadyExists
	}

	opts.Name = name
	opts.DataPath = r.pathFor(name)
	opts.Logger = r.logger
	opts.Metrics = r.metrics

	idx, err := CreateDenseIndex(opts)
	if err != nil {
		return nil, err
	}
	r.collections[name] = idx
	return idx, nil
}

// Get returns the named collection, opening it from disk on first use if
// it is not already held open.
func (r *Registry) Get(name string) (*DenseIndex, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if idx, ok := r.collections[name]; ok {
		return idx, nil
	}

	idx, err := OpenDenseIndex(r.pathFor(name), r.logger, r.metrics)
	if err != nil {
		return nil, err
	}
	r.collections[name] = idx
	return idx, nil
}

// Delete removes the named collection's data directory, evicting it from
// the registry first if it is open.
func (r *Registry) Delete(name string) error {
	r.mu.Lock()
	idx, ok := r.collections[name]
	delete(r.collections, name)
	r.mu.Unlock()

	if ok {
		return DeleteDenseIndex(idx)
	}
	if err := os.RemoveAll(r.pathFor(name)); err != nil {
		return fmt.Errorf("denseindex: failed to delete collection: %w", err)
	}
	return nil
}

// List returns the names of every collection directory under the
// registry's root, whether or not it is currently open in-process.
func (r *Registry) List() ([]string, error) {
	entries, err := os.ReadDir(r.root)
	if err != nil {
		return nil, fmt.Errorf("denseindex: failed to list registry root: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// Close closes every collection the registry holds open. It does not flush
// them: nodes no Flush has written yet are not persisted.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var firstErr error
	for _, idx := range r.collections {
		if err := idx.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	r.collections = make(map[string]*DenseIndex)
	return firstErr
}
