package search

import (
	"container/list"
	"context"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math"
	"sync"
	"time"
)

// CacheKey uniquely identifies one cached query.
type CacheKey string

// LRUCache is a thread-safe LRU cache with optional per-entry TTL.
type LRUCache struct {
	capacity int
	ttl      time.Duration // 0 = no expiration

	mu    sync.Mutex
	cache map[CacheKey]*list.Element
	lru   *list.List

	hits   int64
	misses int64
}

type cacheEntry struct {
	key       CacheKey
	value     interface{}
	expiresAt time.Time
}

// NewLRUCache creates a cache holding at most capacity entries.
func NewLRUCache(capacity int, ttl time.Duration) *LRUCache {
	return &LRUCache{
		capacity: capacity,
		ttl:      ttl,
		cache:    make(map[CacheKey]*list.Element, capacity),
		lru:      list.New(),
	}
}

// Get returns the cached value for key, or (nil, false) on a miss or an
// expired entry.
func (c *LRUCache) Get(key CacheKey) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, exists := c.cache[key]
	if !exists {
		c.misses++
		return nil, false
	}

	entry := elem.Value.(*cacheEntry)
	if c.ttl > 0 && time.Now().After(entry.expiresAt) {
		c.removeElement(elem)
		c.misses++
		return nil, false
	}

	c.lru.MoveToFront(elem)
	c.hits++
	return entry.value, true
}

// Put adds or refreshes a value, evicting the least recently used entry if
// the cache is full.
func (c *LRUCache) Put(key CacheKey, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, exists := c.cache[key]; exists {
		entry := elem.Value.(*cacheEntry)
		entry.value = value
		if c.ttl > 0 {
			entry.expiresAt = time.Now().Add(c.ttl)
		}
		c.lru.MoveToFront(elem)
		return
	}

	entry := &cacheEntry{key: key, value: value}
	if c.ttl > 0 {
		entry.expiresAt = time.Now().Add(c.ttl)
	}

	elem := c.lru.PushFront(entry)
	c.cache[key] = elem

	if c.lru.Len() > c.capacity {
		c.evictOldest()
	}
}

// Invalidate removes one key.
func (c *LRUCache) Invalidate(key CacheKey) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, exists := c.cache[key]; exists {
		c.removeElement(elem)
	}
}

// Clear removes every entry and resets statistics.
func (c *LRUCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache = make(map[CacheKey]*list.Element, c.capacity)
	c.lru.Init()
	c.hits = 0
	c.misses = 0
}

// Size returns the current entry count.
func (c *LRUCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

// Stats returns hit/miss counters.
func (c *LRUCache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := c.hits + c.misses
	hitRate := 0.0
	if total > 0 {
		hitRate = float64(c.hits) / float64(total)
	}

	return CacheStats{
		Hits:    c.hits,
		Misses:  c.misses,
		Size:    c.lru.Len(),
		HitRate: hitRate,
	}
}

func (c *LRUCache) evictOldest() {
	if elem := c.lru.Back(); elem != nil {
		c.removeElement(elem)
	}
}

func (c *LRUCache) removeElement(elem *list.Element) {
	c.lru.Remove(elem)
	entry := elem.Value.(*cacheEntry)
	delete(c.cache, entry.key)
}

// CacheStats holds cache performance counters.
type CacheStats struct {
	Hits    int64
	Misses  int64
	Size    int
	HitRate float64
}

// QueryCache is an LRU cache specialized to search query results.
type QueryCache struct {
	cache *LRUCache
}

// NewQueryCache creates a query result cache.
func NewQueryCache(capacity int, ttl time.Duration) *QueryCache {
	return &QueryCache{cache: NewLRUCache(capacity, ttl)}
}

// GenerateVectorQueryKey keys a similarity-search query by its probe vector
// and k.
func GenerateVectorQueryKey(queryVector []float32, k int) CacheKey {
	h := sha256.New()
	for _, v := range queryVector {
		binary.Write(h, binary.LittleEndian, math.Float32bits(v))
	}
	binary.Write(h, binary.LittleEndian, int32(k))
	return CacheKey(fmt.Sprintf("vec:%x", h.Sum(nil)[:16]))
}

// GenerateTextQueryKey keys a full-text query by its text and k.
func GenerateTextQueryKey(queryText string, k int) CacheKey {
	h := sha256.New()
	h.Write([]byte(queryText))
	binary.Write(h, binary.LittleEndian, int32(k))
	return CacheKey(fmt.Sprintf("text:%x", h.Sum(nil)[:16]))
}

// GenerateHybridQueryKey keys a hybrid query by its probe vector, text, and k.
func GenerateHybridQueryKey(queryVector []float32, queryText string, k int) CacheKey {
	h := sha256.New()
	for _, v := range queryVector {
		binary.Write(h, binary.LittleEndian, math.Float32bits(v))
	}
	h.Write([]byte(queryText))
	binary.Write(h, binary.LittleEndian, int32(k))
	return CacheKey(fmt.Sprintf("hybrid:%x", h.Sum(nil)[:16]))
}

// GetHybridResults retrieves cached hybrid search results.
func (qc *QueryCache) GetHybridResults(key CacheKey) ([]*HybridSearchResult, bool) {
	value, found := qc.cache.Get(key)
	if !found {
		return nil, false
	}

	results, ok := value.([]*HybridSearchResult)
	if !ok {
		qc.cache.Invalidate(key)
		return nil, false
	}
	return results, true
}

// PutHybridResults stores hybrid search results.
func (qc *QueryCache) PutHybridResults(key CacheKey, results []*HybridSearchResult) {
	qc.cache.Put(key, results)
}

// GetTextResults retrieves cached text search results.
func (qc *QueryCache) GetTextResults(key CacheKey) ([]*FullTextResult, bool) {
	value, found := qc.cache.Get(key)
	if !found {
		return nil, false
	}

	results, ok := value.([]*FullTextResult)
	if !ok {
		qc.cache.Invalidate(key)
		return nil, false
	}
	return results, true
}

// PutTextResults stores text search results.
func (qc *QueryCache) PutTextResults(key CacheKey, results []*FullTextResult) {
	qc.cache.Put(key, results)
}

// Clear removes all cached results.
func (qc *QueryCache) Clear() {
	qc.cache.Clear()
}

// Stats returns cache statistics.
func (qc *QueryCache) Stats() CacheStats {
	return qc.cache.Stats()
}

// Size returns the number of cached entries.
func (qc *QueryCache) Size() int {
	return qc.cache.Size()
}

// CachedHybridSearch wraps HybridSearch with query caching. Inserts and
// removals on the underlying indexes must call InvalidateCache.
type CachedHybridSearch struct {
	*HybridSearch
	cache *QueryCache
}

// NewCachedHybridSearch creates a hybrid search with query caching.
func NewCachedHybridSearch(vectorIndex VectorSearcher, textIndex *FullTextIndex, cacheCapacity int, cacheTTL time.Duration) *CachedHybridSearch {
	return &CachedHybridSearch{
		HybridSearch: NewHybridSearch(vectorIndex, textIndex),
		cache:        NewQueryCache(cacheCapacity, cacheTTL),
	}
}

// Search performs a cached hybrid search.
func (chs *CachedHybridSearch) Search(ctx context.Context, queryVector []float32, queryText string, k int) []*HybridSearchResult {
	key := GenerateHybridQueryKey(queryVector, queryText, k)

	if results, found := chs.cache.GetHybridResults(key); found {
		return results
	}

	results := chs.HybridSearch.Search(ctx, queryVector, queryText, k)
	chs.cache.PutHybridResults(key, results)
	return results
}

// InvalidateCache clears the query cache.
func (chs *CachedHybridSearch) InvalidateCache() {
	chs.cache.Clear()
}

// CacheStats returns cache performance statistics.
func (chs *CachedHybridSearch) CacheStats() CacheStats {
	return chs.cache.Stats()
}
