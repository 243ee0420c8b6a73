package denseindex

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/therealutkarshpriyadarshi/vector/internal/quantization"
	"github.com/therealutkarshpriyadarshi/vector/pkg/observability"
)

// GraphConfig bounds the proximity graph's traversal and fan-out: M is the
// neighbor-list cap per node per level, KSearch is how many candidates one
// traversal step keeps, MaxHops bounds how deep a traversal recurses before
// it must return whatever it has found so far.
type GraphConfig struct {
	M       int
	KSearch int
	MaxHops int8
}

// DefaultGraphConfig returns the stock traversal bounds.
func DefaultGraphConfig() GraphConfig {
	return GraphConfig{M: 2, KSearch: 2, MaxHops: 4}
}

// ProximityGraph implements multi-level NSW insertion and traversal: an
// insert walks the levels top-down, collecting nearest candidates at each,
// and links the new node into every level up to its ceiling. Neighbor
// expansions fan out one goroutine per neighbor through errgroup.Group.
type ProximityGraph struct {
	cache    *NodeCache
	config   GraphConfig
	logger   *observability.Logger
	quantize func([]float32) quantization.Storage
}

// NewProximityGraph builds a graph over an already-constructed cache.
// quantize reduces a raw vector to this collection's fixed Storage variant;
// it is applied eagerly to every new node (a graph node always carries a
// payload, not just a raw vector) so a later cache eviction and lazy reload
// never leaves a node without one.
func NewProximityGraph(cache *NodeCache, config GraphConfig, logger *observability.Logger, quantize func([]float32) quantization.Storage) *ProximityGraph {
	return &ProximityGraph{cache: cache, config: config, logger: logger, quantize: quantize}
}

// vectorOf returns the best available float32 approximation of a node's
// embedding: its resident raw vector if still in memory, otherwise its
// quantized payload dequantized back to float32. Nodes materialized fresh
// in this process keep Vector set; nodes lazy-loaded from disk only carry
// Payload.
func (g *ProximityGraph) vectorOf(n *GraphNode) []float32 {
	if n.Vector != nil {
		return n.Vector
	}
	return quantization.Dequantize(n.Payload)
}

// Insert walks curLevel down to level 0, inserting emb into every level up
// to maxInsertLevel and always descending the entry point for the levels
// above that. curLevel == -1 is the recursion's base case.
//
// The entry point lookup distinguishes two otherwise similar misses-to-hit
// paths: an entry point already resident in the cache (ordinary case, keep
// descending) versus one found only by paging it in through the Loader
// because curLevel is above MaxCacheLevel. A lazily loaded node is not
// necessarily linked to anything below curLevel yet, so Insert must not
// recurse past it - it traverses and creates edges at curLevel only.
func (g *ProximityGraph) Insert(ctx context.Context, emb Embedding, curEntry string, curLevel, maxInsertLevel int8) error {
	if curLevel == -1 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	node, found, lazy, err := g.cache.GetResolved(curLevel, curEntry)
	if err != nil {
		return err
	}
	if !found {
		// Should not happen: the entry point is always resident at every
		// level down to 0 by construction (CreateDenseIndex seeds the root
		// at every level). Log and stop descending rather than panic.
		if g.logger != nil {
			g.logger.Warnf("denseindex: insert entry point missing at level %d (id=%s)", curLevel, curEntry)
		}
		return nil
	}

	nearest, err := g.traverseFindNearest(ctx, node, emb.Raw, emb.ID, 0, newVisitedSet(), curLevel, g.config.KSearch)
	if err != nil {
		return err
	}
	if len(nearest) == 0 {
		nearest = []Neighbor{{ID: curEntry, Similarity: quantization.CosineSimilarity(emb.Raw, g.vectorOf(node))}}
	}

	if lazy {
		return g.insertNodeCreateEdges(ctx, emb, nearest, curLevel)
	}

	if err := g.Insert(ctx, emb, nearest[0].ID, curLevel-1, maxInsertLevel); err != nil {
		return err
	}

	if curLevel <= maxInsertLevel {
		return g.insertNodeCreateEdges(ctx, emb, nearest, curLevel)
	}
	return nil
}

// insertNodeCreateEdges materializes emb as a node at curLevel with nbs as
// its neighbor list, then fans out one goroutine per neighbor to add the
// back-edge, each neighbor's own list re-sorted, deduplicated, and capped
// at M.
func (g *ProximityGraph) insertNodeCreateEdges(ctx context.Context, emb Embedding, nbs []Neighbor, curLevel int8) error {
	nv := NewGraphNode(emb.ID, emb.Raw)
	if g.quantize != nil {
		nv.Payload = g.quantize(emb.Raw)
	}
	nv.SetNeighbors(nbs)
	g.cache.Insert(curLevel, emb.ID, nv)

	grp, gctx := errgroup.WithContext(ctx)
	for _, nb := range nbs {
		nb := nb
		grp.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			g.cache.Alter(curLevel, nb.ID, func(existing *GraphNode) *GraphNode {
				if existing == nil {
					return nil
				}
				merged := append(existing.Neighbors(), Neighbor{ID: emb.ID, Similarity: nb.Similarity})
				merged = sortDedupTopN(merged, g.config.M)
				return existing.clone(merged)
			})
			return nil
		})
	}
	return grp.Wait()
}

// traverseFindNearest walks outward from node's current neighbor list,
// fanning a goroutine out per unvisited neighbor, recursing up to MaxHops
// deep, then folds every branch's results into one similarity-sorted,
// deduplicated, limit-capped candidate list. Insertion traverses with
// limit = KSearch; a top-k search widens the bottom level to k.
func (g *ProximityGraph) traverseFindNearest(ctx context.Context, node *GraphNode, probe []float32, selfID string, hops int8, visited *visitedSet, curLevel int8, limit int) ([]Neighbor, error) {
	neighbors := node.Neighbors()

	grp, gctx := errgroup.WithContext(ctx)
	branchResults := make([][]Neighbor, len(neighbors))

	for i, nb := range neighbors {
		if nb.ID == selfID {
			continue
		}
		i, nb := i, nb
		grp.Go(func() error {
			if !visited.claim(nb.ID) {
				return nil
			}
			if err := gctx.Err(); err != nil {
				return err
			}

			nbNode, found, err := g.cache.Get(curLevel, nb.ID)
			if err != nil {
				return err
			}
			if !found {
				if g.logger != nil {
					g.logger.Warnf("denseindex: traversal neighbor missing at level %d (id=%s)", curLevel, nb.ID)
				}
				return nil
			}

			cs := quantization.CosineSimilarity(probe, g.vectorOf(nbNode))
			var branch []Neighbor
			if hops < g.config.MaxHops {
				branch, err = g.traverseFindNearest(gctx, nbNode, probe, selfID, hops+1, visited, curLevel, limit)
				if err != nil {
					return err
				}
			}
			branchResults[i] = append(branch, Neighbor{ID: nb.ID, Similarity: cs})
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	var all []Neighbor
	for _, br := range branchResults {
		all = append(all, br...)
	}
	return sortDedupTopN(all, limit), nil
}

// sortDedupTopN sorts by similarity descending, keeps the first (highest
// similarity) occurrence of each id, and truncates to n.
func sortDedupTopN(neighbors []Neighbor, n int) []Neighbor {
	sort.SliceStable(neighbors, func(i, j int) bool {
		return neighbors[i].Similarity > neighbors[j].Similarity
	})

	seen := make(map[string]struct{}, len(neighbors))
	out := neighbors[:0:0]
	for _, nb := range neighbors {
		if _, ok := seen[nb.ID]; ok {
			continue
		}
		seen[nb.ID] = struct{}{}
		out = append(out, nb)
		if len(out) == n {
			break
		}
	}
	return out
}
