package denseindex

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/therealutkarshpriyadarshi/vector/internal/bufferio"
	"github.com/therealutkarshpriyadarshi/vector/internal/quantization"
	"github.com/therealutkarshpriyadarshi/vector/internal/serialize"
	"github.com/therealutkarshpriyadarshi/vector/pkg/observability"
)

// rootSentinelID is the id assigned to the sentinel embedding CreateDenseIndex
// writes at every level up to LMax, the index's permanent entry point.
const rootSentinelID = "__root__"

// CreateConfig bundles the parameters create_dense_index takes: the
// collection name, its fixed dimension, optional value bounds (used to
// scale raw vectors into the UnsignedByte/SubByte quantization ranges), and
// the cache threshold.
type CreateConfig struct {
	Name          string
	Dimension     int
	Lower, Upper  *float32
	MaxCacheLevel int8
	LMax          int8
	DataPath      string
	Graph         GraphConfig
	Variant       quantization.StorageTag
	Logger        *observability.Logger
	Metrics       *observability.Metrics
}

// meta is the index's own bookkeeping record: where its root entry point
// lives and the (level, id) -> FileIndex map the node cache's Loader
// consults on a cache miss above MaxCacheLevel. This is the core's half of
// the catalog entry a collection management layer would otherwise own: the
// core still needs to find its own root and offsets again after a process
// restart.
type meta struct {
	Name          string                          `json:"name"`
	Dimension     int                             `json:"dimension"`
	Lower         *float32                        `json:"lower,omitempty"`
	Upper         *float32                        `json:"upper,omitempty"`
	MaxCacheLevel int8                            `json:"max_cache_level"`
	LMax          int8                            `json:"l_max"`
	Variant       quantization.StorageTag         `json:"variant"`
	RootID        string                          `json:"root_id"`
	NextVersion   uint64                          `json:"next_version"`
	FileIndex     map[string]bufferio.FileIndex   `json:"file_index"`
}

func metaPath(dataPath string) string {
	return filepath.Join(dataPath, "index.meta.json")
}

// keyString turns a Key into the flat string meta.FileIndex uses, since
// Go's encoding/json cannot marshal a struct key map.
func keyString(k Key) string { return fmt.Sprintf("%d:%s", k.Level, k.ID) }

// parseKeyString reverses keyString; the id half may itself contain ':'
// so only the first separator is split on.
func parseKeyString(s string) (Key, bool) {
	i := strings.IndexByte(s, ':')
	if i < 0 {
		return Key{}, false
	}
	level, err := strconv.ParseInt(s[:i], 10, 8)
	if err != nil {
		return Key{}, false
	}
	return Key{Level: int8(level), ID: s[i+1:]}, true
}

// DenseIndex is the index facade: it owns the cache, the root entry point,
// and the current write version, and exposes the in-process API a
// transaction controller or API layer calls through.
type DenseIndex struct {
	Name          string
	Dimension     int
	Lower, Upper  *float32
	MaxCacheLevel int8
	LMax          int8
	Variant       quantization.StorageTag

	dataPath string
	bufmans  *bufferio.BufferManagerFactory
	cache    *NodeCache
	graph    *ProximityGraph
	logger   *observability.Logger
	metrics  *observability.Metrics

	mu          sync.Mutex
	rootID      string
	nextVersion uint64
	fileIndex   map[Key]bufferio.FileIndex

	randMu sync.Mutex
	rand   *rand.Rand
}

// CreateDenseIndex allocates a fresh index: an empty cache, a quantized
// sentinel root written at every level up to LMax, and a metadata file
// recording where to find it again on OpenDenseIndex.
func CreateDenseIndex(cfg CreateConfig) (*DenseIndex, error) {
	if cfg.Dimension <= 0 {
		return nil, fmt.Errorf("%w: dimension must be positive", ErrFailedToCreateCollection)
	}
	if _, err := os.Stat(metaPath(cfg.DataPath)); err == nil {
		return nil, ErrAlreadyExists
	}

	bufmans, err := bufferio.NewBufferManagerFactory(cfg.DataPath)
	if err != nil {
		return nil, fmt.Errorf("denseindex: failed to create collection: %w", err)
	}

	idx := newDenseIndex(cfg, bufmans)
	idx.rootID = rootSentinelID

	sentinel := make([]float32, cfg.Dimension)
	root := NewGraphNode(rootSentinelID, sentinel)
	root.Payload = idx.quantize(sentinel)
	for level := int8(0); level <= idx.LMax; level++ {
		idx.cache.Insert(level, rootSentinelID, root)
	}

	if idx.logger != nil {
		idx.logger.Infof("denseindex: created collection %q (dim=%d, l_max=%d)", idx.Name, idx.Dimension, idx.LMax)
	}
	if idx.metrics != nil {
		idx.metrics.UpdateIndexSize(idx.Name, 1)
		idx.metrics.UpdateIndexMaxLayer(idx.Name, int(idx.LMax))
	}

	if err := idx.saveMeta(); err != nil {
		return nil, err
	}
	return idx, nil
}

// OpenDenseIndex restores an index's root entry point and file-index map
// from its metadata file.
func OpenDenseIndex(dataPath string, logger *observability.Logger, metrics *observability.Metrics) (*DenseIndex, error) {
	raw, err := os.ReadFile(metaPath(dataPath))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("denseindex: failed to read metadata: %w", err)
	}
	var m meta
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("denseindex: failed to parse metadata: %w", err)
	}

	bufmans, err := bufferio.NewBufferManagerFactory(dataPath)
	if err != nil {
		return nil, fmt.Errorf("denseindex: failed to open collection: %w", err)
	}

	cfg := CreateConfig{
		Name:          m.Name,
		Dimension:     m.Dimension,
		Lower:         m.Lower,
		Upper:         m.Upper,
		MaxCacheLevel: m.MaxCacheLevel,
		LMax:          m.LMax,
		DataPath:      dataPath,
		Variant:       m.Variant,
		Logger:        logger,
		Metrics:       metrics,
	}
	idx := newDenseIndex(cfg, bufmans)
	idx.rootID = m.RootID
	idx.nextVersion = m.NextVersion
	for ks, fi := range m.FileIndex {
		k, ok := parseKeyString(ks)
		if !ok {
			continue
		}
		idx.fileIndex[k] = fi
	}

	if err := idx.warmPinnedLevels(); err != nil {
		return nil, err
	}

	if idx.logger != nil {
		idx.logger.Infof("denseindex: opened collection %q", idx.Name)
	}
	return idx, nil
}

// warmPinnedLevels loads every persisted node at or below MaxCacheLevel into
// the cache. NodeCache.Get never consults the Loader for those levels (a
// miss there is an invariant violation, not a lazy-load trigger; see
// cache.go), so on a fresh process the cache must be seeded for them up
// front rather than relying on on-demand loads that will never happen.
func (idx *DenseIndex) warmPinnedLevels() error {
	for k := range idx.fileIndex {
		if k.Level > idx.MaxCacheLevel {
			continue
		}
		node, found, err := idx.loadNode(k.Level, k.ID)
		if err != nil {
			return err
		}
		if found {
			idx.cache.Insert(k.Level, k.ID, node)
		}
	}
	// Nodes just loaded from their persisted offsets are clean, not dirty.
	idx.cache.DirtyKeys()
	return nil
}

// DeleteDenseIndex closes an open index and removes its persisted data
// directory.
func DeleteDenseIndex(idx *DenseIndex) error {
	if err := idx.Close(); err != nil {
		return err
	}
	if err := os.RemoveAll(idx.dataPath); err != nil {
		return fmt.Errorf("denseindex: failed to delete collection: %w", err)
	}
	return nil
}

func newDenseIndex(cfg CreateConfig, bufmans *bufferio.BufferManagerFactory) *DenseIndex {
	if cfg.Graph == (GraphConfig{}) {
		cfg.Graph = DefaultGraphConfig()
	}

	idx := &DenseIndex{
		Name:          cfg.Name,
		Dimension:     cfg.Dimension,
		Lower:         cfg.Lower,
		Upper:         cfg.Upper,
		MaxCacheLevel: cfg.MaxCacheLevel,
		LMax:          cfg.LMax,
		Variant:       cfg.Variant,
		dataPath:      cfg.DataPath,
		bufmans:       bufmans,
		logger:        cfg.Logger,
		metrics:       cfg.Metrics,
		fileIndex:     make(map[Key]bufferio.FileIndex),
		rand:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	idx.cache = NewNodeCache(cfg.MaxCacheLevel, idx.loadNode, cfg.Logger)
	idx.graph = NewProximityGraph(idx.cache, cfg.Graph, cfg.Logger, idx.quantize)
	return idx
}

// loadNode is the NodeCache Loader: it resolves a cache miss above
// MaxCacheLevel by reading the node back through the serializer.
func (idx *DenseIndex) loadNode(level int8, id string) (*GraphNode, bool, error) {
	idx.mu.Lock()
	fi, ok := idx.fileIndex[Key{Level: level, ID: id}]
	idx.mu.Unlock()
	if !ok {
		return nil, false, nil
	}

	rec, err := serialize.DeserializeNode(idx.bufmans, fi)
	if err != nil {
		return nil, false, err
	}
	node := NewGraphNode(rec.ID, nil)
	node.Payload = rec.Payload
	neighbors := make([]Neighbor, len(rec.Neighbors))
	for i, nb := range rec.Neighbors {
		neighbors[i] = Neighbor{ID: nb.ID, Similarity: nb.Similarity}
	}
	node.SetNeighbors(neighbors)
	return node, true, nil
}

// quantize reduces a raw vector to this index's fixed Storage variant,
// scaling into [0,255] first for the byte-oriented variants per Lower/Upper
// when given.
func (idx *DenseIndex) quantize(raw []float32) quantization.Storage {
	switch idx.Variant {
	case quantization.TagUnsignedByte:
		return quantization.QuantizeUnsignedByte(idx.scaleToByteRange(raw))
	case quantization.TagSubByte:
		return quantization.QuantizeSubByte(idx.scaleToByteRange(raw), 4)
	default:
		return quantization.QuantizeHalfPrecision(raw)
	}
}

// scaleToByteRange maps raw into [0,255] using Lower/Upper when the caller
// supplied value bounds at creation time, or leaves it untouched (the
// caller is then responsible for pre-scaled input) otherwise.
func (idx *DenseIndex) scaleToByteRange(raw []float32) []float32 {
	if idx.Lower == nil || idx.Upper == nil || *idx.Upper == *idx.Lower {
		return raw
	}
	lo, hi := *idx.Lower, *idx.Upper
	out := make([]float32, len(raw))
	for i, x := range raw {
		out[i] = (x - lo) / (hi - lo) * 255
	}
	return out
}

// randomLevel picks the new node's insertion ceiling with the usual
// exponential decay (floor(-ln(r) / ln 2)), capped at LMax.
func (idx *DenseIndex) randomLevel() int8 {
	idx.randMu.Lock()
	r := idx.rand.Float64()
	idx.randMu.Unlock()

	ml := 1.0 / math.Log(2)
	level := int8(math.Floor(-math.Log(r) * ml))
	if level > idx.LMax {
		level = idx.LMax
	}
	if level < 0 {
		level = 0
	}
	return level
}

// Insert ingests one embedding: it rejects a dimension mismatch, picks a
// random insertion ceiling, and walks the graph down from the root.
func (idx *DenseIndex) Insert(ctx context.Context, emb Embedding) error {
	if len(emb.Raw) != idx.Dimension {
		return ErrDimensionMismatch
	}
	if quantization.NormL2(emb.Raw) == 0 {
		return ErrZeroVector
	}
	maxInsertLevel := idx.randomLevel()

	idx.mu.Lock()
	rootID := idx.rootID
	idx.mu.Unlock()

	if err := idx.graph.Insert(ctx, emb, rootID, idx.LMax, maxInsertLevel); err != nil {
		return err
	}
	if idx.metrics != nil {
		idx.metrics.VectorsInserted.Inc()
	}
	return nil
}

// Search descends the graph from the root and returns the k nearest
// neighbors to probe by cosine similarity.
func (idx *DenseIndex) Search(ctx context.Context, probe []float32, k int) ([]Neighbor, error) {
	if len(probe) != idx.Dimension {
		return nil, ErrDimensionMismatch
	}

	idx.mu.Lock()
	rootID := idx.rootID
	idx.mu.Unlock()

	start := time.Now()
	results, err := idx.graph.Search(ctx, probe, k, rootID, idx.LMax)
	if err != nil {
		return nil, err
	}

	// The sentinel root is an entry point, not a caller-owned vector.
	filtered := results[:0]
	for _, r := range results {
		if r.ID != rootID {
			filtered = append(filtered, r)
		}
	}

	if idx.metrics != nil {
		idx.metrics.RecordSearch(time.Since(start), len(filtered))
	}
	return filtered, nil
}

// GetVector returns the vector stored under id: the resident raw vector
// when the node was inserted in this process, or its payload dequantized
// after a reopen. The second return is false for ids never inserted.
func (idx *DenseIndex) GetVector(id string) ([]float32, bool) {
	node, ok := idx.cache.Lookup(0, id)
	if !ok {
		idx.mu.Lock()
		_, persisted := idx.fileIndex[Key{Level: 0, ID: id}]
		idx.mu.Unlock()
		if !persisted {
			return nil, false
		}
		loaded, found, err := idx.loadNode(0, id)
		if err != nil || !found {
			return nil, false
		}
		node = loaded
	}
	if node.Vector != nil {
		out := make([]float32, len(node.Vector))
		copy(out, node.Vector)
		return out, true
	}
	if node.Payload != nil {
		return quantization.Dequantize(node.Payload), true
	}
	return nil, false
}

// Flush persists every dirty cache entry under version, quantizing each
// node's payload if it has not been quantized yet, then rewrites the
// metadata file so a later OpenDenseIndex can find the new offsets.
func (idx *DenseIndex) Flush(version bufferio.Version) error {
	dirty := idx.cache.DirtyKeys()
	if len(dirty) == 0 {
		return nil
	}

	bufman, err := idx.bufmans.Get(version)
	if err != nil {
		return err
	}
	cursor := bufman.OpenCursor()
	defer bufman.CloseCursor(cursor)

	// Records only ever append; a reflush of the same version must not
	// clobber offsets already handed out.
	end, err := bufman.EndOffset()
	if err != nil {
		return err
	}
	if err := bufman.SeekWithCursor(cursor, end); err != nil {
		return err
	}

	flush := func() error {
		// Serialize outside idx.mu: a cache miss here re-enters loadNode,
		// which takes idx.mu itself.
		updates := make(map[Key]bufferio.FileIndex, len(dirty))
		for _, key := range dirty {
			node, found, err := idx.cache.Get(key.Level, key.ID)
			if err != nil {
				return err
			}
			if !found {
				continue
			}
			if node.Payload == nil {
				node.Payload = idx.quantize(node.Vector)
			}

			neighbors := node.Neighbors()
			rec := serialize.Node{ID: node.ID, Payload: node.Payload, Neighbors: make([]serialize.Neighbor, len(neighbors))}
			for i, nb := range neighbors {
				rec.Neighbors[i] = serialize.Neighbor{ID: nb.ID, Similarity: nb.Similarity}
			}

			offset, err := serialize.SerializeNode(idx.bufmans, version, cursor, rec)
			if err != nil {
				return err
			}
			updates[key] = bufferio.NewFileIndex(offset, version)
		}

		idx.mu.Lock()
		defer idx.mu.Unlock()
		for k, fi := range updates {
			idx.fileIndex[k] = fi
		}
		return idx.saveMetaLocked()
	}

	start := time.Now()
	err = flush()
	if idx.logger != nil {
		if err != nil {
			idx.logger.Errorf("denseindex: flush of collection %q version %d failed: %v", idx.Name, version, err)
		} else {
			idx.logger.Infof("denseindex: flushed %d nodes of collection %q under version %d", len(dirty), idx.Name, version)
		}
	}
	if idx.metrics != nil && err == nil {
		idx.metrics.RecordFlush(time.Since(start), len(dirty))
	}
	return err
}

// Close releases the underlying buffer files without removing them.
func (idx *DenseIndex) Close() error {
	return idx.bufmans.Close()
}

func (idx *DenseIndex) saveMeta() error {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	return idx.saveMetaLocked()
}

// saveMetaLocked must be called with idx.mu held.
func (idx *DenseIndex) saveMetaLocked() error {
	m := meta{
		Name:          idx.Name,
		Dimension:     idx.Dimension,
		Lower:         idx.Lower,
		Upper:         idx.Upper,
		MaxCacheLevel: idx.MaxCacheLevel,
		LMax:          idx.LMax,
		Variant:       idx.Variant,
		RootID:        idx.rootID,
		NextVersion:   idx.nextVersion,
		FileIndex:     make(map[string]bufferio.FileIndex, len(idx.fileIndex)),
	}
	for k, fi := range idx.fileIndex {
		m.FileIndex[keyString(k)] = fi
	}

	raw, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("denseindex: failed to encode metadata: %w", err)
	}
	if err := os.WriteFile(metaPath(idx.dataPath), raw, 0644); err != nil {
		return fmt.Errorf("denseindex: failed to write metadata: %w", err)
	}
	return nil
}
