package denseindex

import (
	"fmt"
	"sync"
	"testing"
)

func TestNodeCacheInsertGet(t *testing.T) {
	c := NewNodeCache(1, nil, nil)

	node := NewGraphNode("a", []float32{1, 0})
	c.Insert(0, "a", node)

	got, found, err := c.Get(0, "a")
	if err != nil || !found || got != node {
		t.Fatalf("Get = %v, %v, %v; want the inserted node", got, found, err)
	}

	// A miss at or below MaxCacheLevel degrades to not-found without
	// consulting any loader.
	if _, found, err := c.Get(0, "missing"); found || err != nil {
		t.Fatalf("pinned-level miss should report not-found, got %v, %v", found, err)
	}
}

func TestNodeCacheLazyLoadAboveMaxCacheLevel(t *testing.T) {
	var loads int
	loader := func(level int8, id string) (*GraphNode, bool, error) {
		loads++
		if id == "persisted" {
			return NewGraphNode(id, nil), true, nil
		}
		return nil, false, nil
	}
	c := NewNodeCache(0, loader, nil)

	node, found, err := c.Get(2, "persisted")
	if err != nil || !found || node == nil {
		t.Fatalf("lazy load failed: %v, %v, %v", node, found, err)
	}
	if loads != 1 {
		t.Fatalf("loader ran %d times, want 1", loads)
	}

	// Second Get hits the now-resident entry.
	if _, _, err := c.Get(2, "persisted"); err != nil {
		t.Fatal(err)
	}
	if loads != 1 {
		t.Fatalf("loader re-ran on a resident entry: %d loads", loads)
	}

	if _, found, _ := c.Get(2, "never-stored"); found {
		t.Fatal("loader not-found should surface as a miss")
	}
}

func TestNodeCacheAlterSerializesPerKey(t *testing.T) {
	c := NewNodeCache(3, nil, nil)
	c.Insert(0, "n", NewGraphNode("n", nil))

	const writers = 16
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Alter(0, "n", func(existing *GraphNode) *GraphNode {
				nbs := existing.Neighbors()
				nbs = append(nbs, Neighbor{ID: fmt.Sprintf("nb%d", i), Similarity: float32(i)})
				return existing.clone(nbs)
			})
		}()
	}
	wg.Wait()

	node, _, _ := c.Get(0, "n")
	if got := len(node.Neighbors()); got != writers {
		t.Fatalf("neighbor list has %d entries after %d serialized Alters", got, writers)
	}
}

func TestNodeCacheRemove(t *testing.T) {
	c := NewNodeCache(3, nil, nil)
	node := NewGraphNode("gone", nil)
	c.Insert(1, "gone", node)

	if got := c.Remove(1, "gone"); got != node {
		t.Fatalf("Remove = %v, want the stored node", got)
	}
	if got := c.Remove(1, "gone"); got != nil {
		t.Fatalf("second Remove = %v, want nil", got)
	}
	if _, found := c.Lookup(1, "gone"); found {
		t.Fatal("removed entry still resident")
	}
}

func TestNodeCacheLookupDoesNotLoad(t *testing.T) {
	loader := func(level int8, id string) (*GraphNode, bool, error) {
		t.Fatal("Lookup must not consult the loader")
		return nil, false, nil
	}
	c := NewNodeCache(0, loader, nil)

	if _, found := c.Lookup(5, "anything"); found {
		t.Fatal("Lookup on an empty cache should miss")
	}
}

func TestNodeCacheDirtyKeys(t *testing.T) {
	c := NewNodeCache(3, nil, nil)

	c.Insert(0, "a", NewGraphNode("a", nil))
	c.Alter(1, "b", func(*GraphNode) *GraphNode { return NewGraphNode("b", nil) })

	dirty := c.DirtyKeys()
	if len(dirty) != 2 {
		t.Fatalf("DirtyKeys = %v, want 2 entries", dirty)
	}
	if again := c.DirtyKeys(); len(again) != 0 {
		t.Fatalf("DirtyKeys should drain, second call returned %v", again)
	}
}
