package denseindex

import (
	"hash/fnv"
	"sync"

	"github.com/therealutkarshpriyadarshi/vector/pkg/observability"
)

// shardCount stripes the cache map into 32 independent locks so unrelated
// keys never contend.
const shardCount = 32

// Loader materializes a node that missed the in-memory cache, reading it
// back through the serializer (internal/serialize). It returns found=false
// (not an error) when the key genuinely does not exist yet.
type Loader func(level int8, id string) (*GraphNode, bool, error)

type entry struct {
	mu   sync.Mutex // the per-entry "guard": serializes Alter calls on this key
	node *GraphNode
}

type shard struct {
	mu      sync.RWMutex
	entries map[Key]*entry
}

// NodeCache is the concurrent (level, id) -> node map the proximity graph
// reads and mutates during every insert and search. Entries at or below
// maxCacheLevel are expected to always be resident, so a miss there is
// logged and degrades to "not found" rather than reaching for the loader;
// only misses above maxCacheLevel lazy-load from durable storage.
type NodeCache struct {
	shards        [shardCount]*shard
	maxCacheLevel int8
	loader        Loader
	logger        *observability.Logger

	dirtyMu sync.Mutex
	dirty   map[Key]struct{}
}

// NewNodeCache creates an empty cache. loader may be nil if the index never
// needs to page nodes in from disk (e.g. a fresh, fully in-memory index).
func NewNodeCache(maxCacheLevel int8, loader Loader, logger *observability.Logger) *NodeCache {
	c := &NodeCache{maxCacheLevel: maxCacheLevel, loader: loader, logger: logger, dirty: make(map[Key]struct{})}
	for i := range c.shards {
		c.shards[i] = &shard{entries: make(map[Key]*entry)}
	}
	return c
}

func (c *NodeCache) shardFor(k Key) *shard {
	h := fnv.New32a()
	h.Write([]byte(k.ID))
	h.Write([]byte{byte(k.Level)})
	return c.shards[h.Sum32()%shardCount]
}

func (c *NodeCache) entryFor(k Key, createIfMissing bool) *entry {
	s := c.shardFor(k)

	s.mu.RLock()
	e, ok := s.entries[k]
	s.mu.RUnlock()
	if ok || !createIfMissing {
		return e
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.entries[k]; ok {
		return e
	}
	e = &entry{}
	s.entries[k] = e
	return e
}

// Get returns the node at (level, id), non-blocking except for the guard of
// that single key. A miss above maxCacheLevel triggers a lazy load through
// the configured Loader; a miss at or below it is an invariant violation,
// logged and reported as not-found rather than panicking.
func (c *NodeCache) Get(level int8, id string) (*GraphNode, bool, error) {
	k := Key{Level: level, ID: id}
	e := c.entryFor(k, false)
	if e != nil {
		e.mu.Lock()
		node := e.node
		e.mu.Unlock()
		if node != nil {
			return node, true, nil
		}
	}

	if level <= c.maxCacheLevel {
		if c.logger != nil {
			c.logger.Warnf("denseindex: cache miss at or below max_cache_level (level=%d, id=%s); degrading to not-found", level, id)
		}
		return nil, false, nil
	}

	if c.loader == nil {
		return nil, false, nil
	}
	node, found, err := c.loader(level, id)
	if err != nil || !found {
		return nil, false, err
	}
	c.Insert(level, id, node)
	return node, true, nil
}

// GetResolved behaves like Get but additionally reports whether the hit was
// resolved by materializing the node through the Loader (a lazy load) as
// opposed to finding it already resident in the cache. The insert walk must
// tell these two cases apart (a lazily loaded entry point is not descended
// past); everything else keeps using Get.
func (c *NodeCache) GetResolved(level int8, id string) (node *GraphNode, found, lazy bool, err error) {
	k := Key{Level: level, ID: id}
	e := c.entryFor(k, false)
	if e != nil {
		e.mu.Lock()
		node = e.node
		e.mu.Unlock()
		if node != nil {
			return node, true, false, nil
		}
	}

	if level <= c.maxCacheLevel {
		if c.logger != nil {
			c.logger.Warnf("denseindex: cache miss at or below max_cache_level (level=%d, id=%s); degrading to not-found", level, id)
		}
		return nil, false, false, nil
	}

	if c.loader == nil {
		return nil, false, false, nil
	}
	node, found, err = c.loader(level, id)
	if err != nil || !found {
		return nil, false, false, err
	}
	c.Insert(level, id, node)
	return node, true, true, nil
}

// Lookup returns the resident node at (level, id) without consulting the
// Loader and without treating a miss as an invariant violation. For
// caller-driven lookups of arbitrary ids (is this id indexed?), where a miss
// is an ordinary answer rather than a broken graph edge.
func (c *NodeCache) Lookup(level int8, id string) (*GraphNode, bool) {
	e := c.entryFor(Key{Level: level, ID: id}, false)
	if e == nil {
		return nil, false
	}
	e.mu.Lock()
	node := e.node
	e.mu.Unlock()
	return node, node != nil
}

// Insert stores a node at (level, id), overwriting whatever was there.
func (c *NodeCache) Insert(level int8, id string, node *GraphNode) {
	k := Key{Level: level, ID: id}
	e := c.entryFor(k, true)
	e.mu.Lock()
	e.node = node
	e.mu.Unlock()
	c.markDirty(k)
}

// Alter atomically replaces the node at (level, id) with fn's result,
// serialized per-key via the entry's guard so concurrent edge updates to
// the same node never interleave. fn receives nil if the key is unset.
func (c *NodeCache) Alter(level int8, id string, fn func(*GraphNode) *GraphNode) {
	k := Key{Level: level, ID: id}
	e := c.entryFor(k, true)
	e.mu.Lock()
	e.node = fn(e.node)
	e.mu.Unlock()
	c.markDirty(k)
}

// Remove deletes the entry at (level, id) and returns the node it held, or
// nil if the key was unset. Intended for eviction above MaxCacheLevel;
// entries at or below it stay pinned for the index handle's lifetime.
func (c *NodeCache) Remove(level int8, id string) *GraphNode {
	k := Key{Level: level, ID: id}
	s := c.shardFor(k)

	s.mu.Lock()
	e, ok := s.entries[k]
	delete(s.entries, k)
	s.mu.Unlock()
	if !ok {
		return nil
	}

	e.mu.Lock()
	node := e.node
	e.node = nil
	e.mu.Unlock()
	return node
}

func (c *NodeCache) markDirty(k Key) {
	c.dirtyMu.Lock()
	c.dirty[k] = struct{}{}
	c.dirtyMu.Unlock()
}

// DirtyKeys returns and clears the set of keys mutated since the last call,
// the set Flush needs to persist.
func (c *NodeCache) DirtyKeys() []Key {
	c.dirtyMu.Lock()
	defer c.dirtyMu.Unlock()
	keys := make([]Key, 0, len(c.dirty))
	for k := range c.dirty {
		keys = append(keys, k)
	}
	c.dirty = make(map[Key]struct{})
	return keys
}
