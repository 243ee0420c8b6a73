package denseindex

import "context"

// Search descends the graph from entryID at level lMax down to level 0,
// reseeding each level's traversal from the previous level's best
// candidate, and returns up to k results ranked by cosine similarity to
// probe: greedy descent through the sparse upper levels, a wider traversal
// at the bottom.
func (g *ProximityGraph) Search(ctx context.Context, probe []float32, k int, entryID string, lMax int8) ([]Neighbor, error) {
	cur := entryID
	var best []Neighbor

	for level := lMax; level >= 0; level-- {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		node, found, err := g.cache.Get(level, cur)
		if err != nil {
			return nil, err
		}
		if !found {
			break
		}

		// Upper levels only route to the next entry point; the bottom level
		// produces the result list, so it widens the cap to k.
		limit := g.config.KSearch
		if level == 0 && k > limit {
			limit = k
		}

		nn, err := g.traverseFindNearest(ctx, node, probe, "", 0, newVisitedSet(), level, limit)
		if err != nil {
			return nil, err
		}
		if len(nn) == 0 {
			nn = []Neighbor{{ID: cur, Similarity: 0}}
		}
		best = nn
		cur = nn[0].ID
	}

	if len(best) > k {
		best = best[:k]
	}
	return best, nil
}
