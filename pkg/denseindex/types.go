// Package denseindex implements a hierarchical proximity-graph vector index:
// a multi-level navigable-small-world graph over quantized, persisted
// embeddings. It is exposed in-process through a Registry and served over
// gRPC and REST by pkg/api.
package denseindex

import (
	"sync"

	"github.com/therealutkarshpriyadarshi/vector/internal/quantization"
)

// Embedding is an immutable (id, vector) pair submitted for insertion. id is
// an opaque content-derived identifier; Go strings are themselves immutable
// byte sequences, so they're used directly rather than introducing a
// separate byte-slice wrapper type.
type Embedding struct {
	ID  string
	Raw []float32
}

// Neighbor is one edge out of a graph node: the neighbor's id and the
// cosine similarity the edge was created with.
type Neighbor struct {
	ID         string
	Similarity float32
}

// Key identifies one graph node: its level and id. The same id appears
// under multiple levels, once for every level up to its insertion ceiling.
type Key struct {
	Level int8
	ID    string
}

// GraphNode is one level-local copy of an embedding: its raw vector (used
// for the cosine-similarity graph walk, when resident) plus its neighbor
// list at this level. Payload is filled in eagerly at insertion time so a
// node lazy-loaded back from disk, which carries only Payload and never
// Vector, can still stand in for similarity computation via Dequantize.
type GraphNode struct {
	ID      string
	Vector  []float32
	Payload quantization.Storage

	mu        sync.RWMutex
	neighbors []Neighbor
}

// NewGraphNode creates a node with no neighbors yet.
func NewGraphNode(id string, vector []float32) *GraphNode {
	return &GraphNode{ID: id, Vector: vector}
}

// Neighbors returns a copy of the node's current neighbor list.
func (n *GraphNode) Neighbors() []Neighbor {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]Neighbor, len(n.neighbors))
	copy(out, n.neighbors)
	return out
}

// SetNeighbors replaces the node's neighbor list.
func (n *GraphNode) SetNeighbors(neighbors []Neighbor) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.neighbors = neighbors
}

// clone returns a node with the same id/vector/payload but neighbors as
// given. Cache.Alter uses this to produce the replacement value for a key
// without mutating the entry another goroutine might be reading through
// Neighbors().
func (n *GraphNode) clone(neighbors []Neighbor) *GraphNode {
	return &GraphNode{ID: n.ID, Vector: n.Vector, Payload: n.Payload, neighbors: neighbors}
}
