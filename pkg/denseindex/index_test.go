package denseindex

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/therealutkarshpriyadarshi/vector/internal/quantization"
)

func TestCreateDenseIndexSearchSingleNode(t *testing.T) {
	idx, err := CreateDenseIndex(CreateConfig{
		Name:          "single",
		Dimension:     4,
		MaxCacheLevel: 3,
		LMax:          3,
		DataPath:      t.TempDir(),
		Variant:       quantization.TagHalfPrecisionFP,
	})
	if err != nil {
		t.Fatalf("CreateDenseIndex: %v", err)
	}

	vec := []float32{1, 0, 0, 0}
	if err := idx.Insert(context.Background(), Embedding{ID: "a", Raw: vec}); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	results, err := idx.Search(context.Background(), vec, 1)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 || results[0].ID != "a" {
		t.Fatalf("Search = %+v, want [{a ~1.0}]", results)
	}
	if results[0].Similarity < 0.999 {
		t.Errorf("Similarity = %v, want ~1.0", results[0].Similarity)
	}
}

func TestInsertTwoNodesBidirectionalEdge(t *testing.T) {
	idx, err := CreateDenseIndex(CreateConfig{
		Name:          "pair",
		Dimension:     2,
		MaxCacheLevel: 3,
		LMax:          0,
		DataPath:      t.TempDir(),
		Variant:       quantization.TagHalfPrecisionFP,
	})
	if err != nil {
		t.Fatalf("CreateDenseIndex: %v", err)
	}

	a := []float32{1, 0}
	b := []float32{0.8, 0.6} // cosine(a, b) = 0.8
	ctx := context.Background()
	if err := idx.Insert(ctx, Embedding{ID: "a", Raw: a}); err != nil {
		t.Fatalf("Insert a: %v", err)
	}
	if err := idx.Insert(ctx, Embedding{ID: "b", Raw: b}); err != nil {
		t.Fatalf("Insert b: %v", err)
	}

	nodeA, found, err := idx.cache.Get(0, "a")
	if err != nil || !found {
		t.Fatalf("cache.Get(0, a) = %v, %v, %v", nodeA, found, err)
	}
	nodeB, found, err := idx.cache.Get(0, "b")
	if err != nil || !found {
		t.Fatalf("cache.Get(0, b) = %v, %v, %v", nodeB, found, err)
	}

	if !hasNeighbor(nodeA.Neighbors(), "b", 0.8) {
		t.Errorf("a's neighbors = %+v, want to include (b, 0.8)", nodeA.Neighbors())
	}
	if !hasNeighbor(nodeB.Neighbors(), "a", 0.8) {
		t.Errorf("b's neighbors = %+v, want to include (a, 0.8)", nodeB.Neighbors())
	}
}

func hasNeighbor(nbs []Neighbor, id string, sim float32) bool {
	for _, nb := range nbs {
		if nb.ID == id && approxEqual(nb.Similarity, sim) {
			return true
		}
	}
	return false
}

func approxEqual(a, b float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-3
}

func TestFanoutTruncation(t *testing.T) {
	idx, err := CreateDenseIndex(CreateConfig{
		Name:          "fanout",
		Dimension:     2,
		MaxCacheLevel: 3,
		LMax:          0,
		DataPath:      t.TempDir(),
		Graph:         GraphConfig{M: 2, KSearch: 2, MaxHops: 4},
		Variant:       quantization.TagHalfPrecisionFP,
	})
	if err != nil {
		t.Fatalf("CreateDenseIndex: %v", err)
	}

	// Five unit vectors at distinct angles so pairwise similarities differ.
	angles := []float32{0, 0.1, 0.5, 1.0, 1.5}
	ctx := context.Background()
	for i, a := range angles {
		vec := []float32{cos32(a), sin32(a)}
		if err := idx.Insert(ctx, Embedding{ID: string(rune('a' + i)), Raw: vec}); err != nil {
			t.Fatalf("Insert %d: %v", i, err)
		}
	}

	for i := range angles {
		id := string(rune('a' + i))
		node, found, err := idx.cache.Get(0, id)
		if err != nil || !found {
			t.Fatalf("cache.Get(0, %s) = %v, %v, %v", id, node, found, err)
		}
		if len(node.Neighbors()) > 2 {
			t.Errorf("node %s has %d neighbors, want <= 2 (M)", id, len(node.Neighbors()))
		}
	}
}

func cos32(x float32) float32 { return float32(math.Cos(float64(x))) }
func sin32(x float32) float32 { return float32(math.Sin(float64(x))) }

func TestLevelMonotonicity(t *testing.T) {
	idx, err := CreateDenseIndex(CreateConfig{
		Name:          "levels",
		Dimension:     3,
		MaxCacheLevel: 3,
		LMax:          3,
		DataPath:      t.TempDir(),
		Variant:       quantization.TagHalfPrecisionFP,
	})
	if err != nil {
		t.Fatalf("CreateDenseIndex: %v", err)
	}

	ctx := context.Background()
	for i := 0; i < 20; i++ {
		vec := []float32{cos32(float32(i)), sin32(float32(i)), 0.5}
		if err := idx.Insert(ctx, Embedding{ID: string(rune('a' + i)), Raw: vec}); err != nil {
			t.Fatalf("Insert %d: %v", i, err)
		}
	}

	// A node present at level l > 0 must be present at every level below it.
	for i := 0; i < 20; i++ {
		id := string(rune('a' + i))
		for level := idx.LMax; level > 0; level-- {
			if _, found, _ := idx.cache.Get(level, id); !found {
				continue
			}
			for below := level - 1; below >= 0; below-- {
				if _, found, _ := idx.cache.Get(below, id); !found {
					t.Errorf("node %s present at level %d but missing at level %d", id, level, below)
				}
			}
		}
	}
}

func TestNeighborListShape(t *testing.T) {
	idx, err := CreateDenseIndex(CreateConfig{
		Name:          "shape",
		Dimension:     2,
		MaxCacheLevel: 2,
		LMax:          2,
		DataPath:      t.TempDir(),
		Variant:       quantization.TagHalfPrecisionFP,
	})
	if err != nil {
		t.Fatalf("CreateDenseIndex: %v", err)
	}

	ctx := context.Background()
	for i := 0; i < 12; i++ {
		a := float32(i) * 0.25
		if err := idx.Insert(ctx, Embedding{ID: string(rune('a' + i)), Raw: []float32{cos32(a), sin32(a)}}); err != nil {
			t.Fatalf("Insert %d: %v", i, err)
		}
	}

	for level := int8(0); level <= idx.LMax; level++ {
		for i := 0; i < 12; i++ {
			id := string(rune('a' + i))
			node, found, _ := idx.cache.Get(level, id)
			if !found {
				continue
			}
			nbs := node.Neighbors()
			if len(nbs) > idx.graph.config.M {
				t.Errorf("node %s level %d has %d neighbors, want <= %d", id, level, len(nbs), idx.graph.config.M)
			}
			seen := make(map[string]bool)
			for j, nb := range nbs {
				if seen[nb.ID] {
					t.Errorf("node %s level %d has duplicate neighbor %s", id, level, nb.ID)
				}
				seen[nb.ID] = true
				if j > 0 && nbs[j-1].Similarity < nb.Similarity {
					t.Errorf("node %s level %d neighbors not descending: %+v", id, level, nbs)
				}
				// Every edge target must exist at the same level.
				if _, nbFound, _ := idx.cache.Get(level, nb.ID); !nbFound {
					t.Errorf("node %s level %d references missing neighbor %s", id, level, nb.ID)
				}
			}
		}
	}
}

func TestInsertDimensionMismatch(t *testing.T) {
	idx, err := CreateDenseIndex(CreateConfig{
		Name:          "dim",
		Dimension:     4,
		MaxCacheLevel: 3,
		LMax:          1,
		DataPath:      t.TempDir(),
		Variant:       quantization.TagHalfPrecisionFP,
	})
	if err != nil {
		t.Fatalf("CreateDenseIndex: %v", err)
	}

	err = idx.Insert(context.Background(), Embedding{ID: "bad", Raw: []float32{1, 2}})
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("err = %v, want ErrDimensionMismatch", err)
	}
}

func TestCreateDenseIndexAlreadyExists(t *testing.T) {
	dir := t.TempDir()
	cfg := CreateConfig{Name: "dup", Dimension: 3, LMax: 1, DataPath: dir, Variant: quantization.TagHalfPrecisionFP}
	if _, err := CreateDenseIndex(cfg); err != nil {
		t.Fatalf("first CreateDenseIndex: %v", err)
	}
	if _, err := CreateDenseIndex(cfg); !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("second CreateDenseIndex err = %v, want ErrAlreadyExists", err)
	}
}

func TestFlushAndReopenPreservesRootAndEdges(t *testing.T) {
	dir := t.TempDir()
	idx, err := CreateDenseIndex(CreateConfig{
		Name:          "persist",
		Dimension:     2,
		MaxCacheLevel: 0,
		LMax:          0,
		DataPath:      dir,
		Variant:       quantization.TagHalfPrecisionFP,
	})
	if err != nil {
		t.Fatalf("CreateDenseIndex: %v", err)
	}

	ctx := context.Background()
	if err := idx.Insert(ctx, Embedding{ID: "a", Raw: []float32{1, 0}}); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := idx.Flush(1); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if err := idx.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := OpenDenseIndex(dir, nil, nil)
	if err != nil {
		t.Fatalf("OpenDenseIndex: %v", err)
	}
	if reopened.rootID != rootSentinelID {
		t.Errorf("reopened root = %q, want %q", reopened.rootID, rootSentinelID)
	}

	results, err := reopened.Search(ctx, []float32{1, 0}, 1)
	if err != nil {
		t.Fatalf("Search after reopen: %v", err)
	}
	if len(results) != 1 || results[0].ID != "a" {
		t.Fatalf("Search after reopen = %+v, want [{a ...}]", results)
	}
}

func TestReopenLazyLoadsAboveMaxCacheLevel(t *testing.T) {
	dir := t.TempDir()
	idx, err := CreateDenseIndex(CreateConfig{
		Name:          "lazy",
		Dimension:     2,
		MaxCacheLevel: 0,
		LMax:          1,
		DataPath:      dir,
		Variant:       quantization.TagHalfPrecisionFP,
	})
	if err != nil {
		t.Fatalf("CreateDenseIndex: %v", err)
	}

	ctx := context.Background()
	if err := idx.Insert(ctx, Embedding{ID: "a", Raw: []float32{1, 0}}); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := idx.Flush(1); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if err := idx.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := OpenDenseIndex(dir, nil, nil)
	if err != nil {
		t.Fatalf("OpenDenseIndex: %v", err)
	}

	// Level 1 exceeds MaxCacheLevel (0), so warmPinnedLevels never loaded it;
	// the root at level 1 must come back through the NodeCache Loader on
	// first access, reconstructed from its quantized Payload since it was
	// never resident as a raw Vector in this process.
	node, found, err := reopened.cache.Get(1, rootSentinelID)
	if err != nil {
		t.Fatalf("cache.Get(1, root): %v", err)
	}
	if !found {
		t.Fatalf("root not found at level 1 after reopen via lazy load")
	}
	if node.Vector != nil {
		t.Errorf("lazily loaded node should have nil Vector, got %v", node.Vector)
	}

	results, err := reopened.Search(ctx, []float32{1, 0}, 1)
	if err != nil {
		t.Fatalf("Search after reopen: %v", err)
	}
	if len(results) != 1 || results[0].ID != "a" {
		t.Fatalf("Search after reopen = %+v, want [{a ...}]", results)
	}
}

func TestOpenDenseIndexNotFound(t *testing.T) {
	_, err := OpenDenseIndex(t.TempDir(), nil, nil)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestTransactionCommitFlushes(t *testing.T) {
	dir := t.TempDir()
	idx, err := CreateDenseIndex(CreateConfig{
		Name:          "txn",
		Dimension:     2,
		MaxCacheLevel: 0,
		LMax:          0,
		DataPath:      dir,
		Variant:       quantization.TagHalfPrecisionFP,
	})
	if err != nil {
		t.Fatalf("CreateDenseIndex: %v", err)
	}

	txn := idx.BeginTransaction()
	if err := txn.Insert(context.Background(), Embedding{ID: "a", Raw: []float32{1, 0}}); err != nil {
		t.Fatalf("txn.Insert: %v", err)
	}
	if err := txn.Commit(); err != nil {
		t.Fatalf("txn.Commit: %v", err)
	}
	if _, ok := idx.fileIndex[Key{Level: 0, ID: "a"}]; !ok {
		t.Fatal("Commit did not flush the inserted node")
	}
	if err := txn.Commit(); !errors.Is(err, ErrTransactionClosed) {
		t.Fatalf("second Commit err = %v, want ErrTransactionClosed", err)
	}
}

func TestTransactionAbortDoesNotFlush(t *testing.T) {
	idx, err := CreateDenseIndex(CreateConfig{
		Name:          "abort",
		Dimension:     2,
		MaxCacheLevel: 0,
		LMax:          0,
		DataPath:      t.TempDir(),
		Variant:       quantization.TagHalfPrecisionFP,
	})
	if err != nil {
		t.Fatalf("CreateDenseIndex: %v", err)
	}

	txn := idx.BeginTransaction()
	if err := txn.Insert(context.Background(), Embedding{ID: "a", Raw: []float32{1, 0}}); err != nil {
		t.Fatalf("txn.Insert: %v", err)
	}
	if err := txn.Abort(); err != nil {
		t.Fatalf("txn.Abort: %v", err)
	}
	if len(idx.fileIndex) != 0 {
		t.Fatalf("Abort flushed %d nodes, want 0", len(idx.fileIndex))
	}
	if err := txn.Insert(context.Background(), Embedding{ID: "b", Raw: []float32{0, 1}}); !errors.Is(err, ErrTransactionClosed) {
		t.Fatalf("Insert after abort err = %v, want ErrTransactionClosed", err)
	}
}

func TestDeleteDenseIndexRemovesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "collection")
	idx, err := CreateDenseIndex(CreateConfig{
		Name:          "gone",
		Dimension:     2,
		MaxCacheLevel: 0,
		LMax:          0,
		DataPath:      dir,
		Variant:       quantization.TagHalfPrecisionFP,
	})
	if err != nil {
		t.Fatalf("CreateDenseIndex: %v", err)
	}

	if err := DeleteDenseIndex(idx); err != nil {
		t.Fatalf("DeleteDenseIndex: %v", err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Fatalf("data dir still exists after DeleteDenseIndex: %v", err)
	}
}
