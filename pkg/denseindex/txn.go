package denseindex

import (
	"context"
	"sync"

	"github.com/therealutkarshpriyadarshi/vector/internal/bufferio"
)

// Transaction is the core's half of the begin_transaction/insert/commit/abort
// boundary a write-ahead transaction controller calls through: a handle
// carrying the version every insert made through it will be flushed under.
// The core does not implement that controller's global isolation logic —
// only the surface it calls through.
type Transaction struct {
	index   *DenseIndex
	version bufferio.Version

	mu       sync.Mutex
	done     bool
	inserted []Embedding
}

// BeginTransaction allocates a fresh version and returns a handle scoped to
// it. Versions are monotonically increasing per index.
func (idx *DenseIndex) BeginTransaction() *Transaction {
	idx.mu.Lock()
	v := bufferio.Version(idx.nextVersion)
	idx.nextVersion++
	idx.mu.Unlock()
	return &Transaction{index: idx, version: v}
}

// Version returns the transaction's version tag.
func (t *Transaction) Version() bufferio.Version { return t.version }

// Insert ingests one embedding under this transaction. A failed insert
// aborts the transaction outright rather than leaving it open for a retry
// with partially-applied state.
func (t *Transaction) Insert(ctx context.Context, emb Embedding) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.done {
		return ErrTransactionClosed
	}

	if err := t.index.Insert(ctx, emb); err != nil {
		t.done = true
		return err
	}
	t.inserted = append(t.inserted, emb)
	return nil
}

// Commit flushes every node this transaction touched to durable storage
// under its version. After Commit, the transaction handle is no longer
// usable.
func (t *Transaction) Commit() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.done {
		return ErrTransactionClosed
	}
	t.done = true
	return t.index.Flush(t.version)
}

// Abort discards the transaction without flushing. Nodes it created remain
// in the in-memory cache (the core does not implement rollback of
// in-memory state; global isolation is left to an external transaction
// controller) but are never persisted since Flush is never called for this
// version.
func (t *Transaction) Abort() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.done = true
	return nil
}
