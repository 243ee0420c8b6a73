package search

import "context"

// VectorResult is one similarity-search hit as hybrid search consumes it:
// the vector's id and its cosine similarity to the probe (higher is closer).
type VectorResult struct {
	ID         string
	Similarity float32
}

// VectorSearcher is the similarity-search surface hybrid search fuses with
// BM25 text ranking. The dense proximity-graph index satisfies it through a
// thin adapter at the call site.
type VectorSearcher interface {
	SearchVectors(ctx context.Context, probe []float32, k int) ([]VectorResult, error)
}

// HybridSearchResult is one fused hit: the vector-side similarity, the
// text-side BM25 score, and the combined score the result list is ranked by.
type HybridSearchResult struct {
	ID          string
	VectorScore float32 // cosine similarity (higher is better)
	TextScore   float64 // BM25 score (higher is better)
	FusedScore  float64 // combined RRF or weighted score (higher is better)
	Metadata    map[string]interface{}
}

// HybridSearch fuses vector similarity and full-text rankings with
// Reciprocal Rank Fusion, or optionally a weighted score combination.
type HybridSearch struct {
	vectorIndex VectorSearcher
	textIndex   *FullTextIndex

	k      int     // RRF constant (typically 60)
	alpha  float64 // weight for vector results
	beta   float64 // weight for text results
	useRRF bool
}

// NewHybridSearch creates a hybrid search over a vector index and a text
// index with equal weighting and RRF fusion.
func NewHybridSearch(vectorIndex VectorSearcher, textIndex *FullTextIndex) *HybridSearch {
	return &HybridSearch{
		vectorIndex: vectorIndex,
		textIndex:   textIndex,
		k:           60,
		alpha:       0.5,
		beta:        0.5,
		useRRF:      true,
	}
}

// SetRRFParameter sets the k constant in the RRF formula.
func (hs *HybridSearch) SetRRFParameter(k int) {
	hs.k = k
}

// SetWeights sets the vector (alpha) and text (beta) weights; typically
// alpha + beta = 1.
func (hs *HybridSearch) SetWeights(alpha, beta float64) {
	hs.alpha = alpha
	hs.beta = beta
}

// SetFusionMethod selects RRF (true) or weighted score combination (false).
func (hs *HybridSearch) SetFusionMethod(useRRF bool) {
	hs.useRRF = useRRF
}

// Search fuses the top vector and text hits for a probe into k results.
func (hs *HybridSearch) Search(ctx context.Context, queryVector []float32, queryText string, k int) []*HybridSearchResult {
	// Over-fetch both sides so fusion has overlap to work with.
	vectorResults, err := hs.vectorIndex.SearchVectors(ctx, queryVector, k*2)
	if err != nil {
		return hs.TextOnlySearch(queryText, k)
	}

	textResults := hs.textIndex.Search(queryText, k*2)

	if hs.useRRF {
		return hs.reciprocalRankFusion(vectorResults, textResults, k)
	}
	return hs.weightedCombination(vectorResults, textResults, k)
}

// SearchWithFilter is Search restricted to hits whose metadata passes filter.
func (hs *HybridSearch) SearchWithFilter(ctx context.Context, queryVector []float32, queryText string, k int, filter FilterFunc) []*HybridSearchResult {
	vectorResults, err := hs.vectorIndex.SearchVectors(ctx, queryVector, k*3)
	if err != nil {
		vectorResults = nil
	}

	textResults := hs.textIndex.SearchWithFilter(queryText, k*2, filter)

	filteredVectorResults := make([]VectorResult, 0, len(vectorResults))
	for _, vr := range vectorResults {
		doc := hs.textIndex.GetDocument(vr.ID)
		if doc != nil && (filter == nil || filter(doc.Metadata)) {
			filteredVectorResults = append(filteredVectorResults, vr)
		}
	}

	if hs.useRRF {
		return hs.reciprocalRankFusion(filteredVectorResults, textResults, k)
	}
	return hs.weightedCombination(filteredVectorResults, textResults, k)
}

// reciprocalRankFusion scores each candidate as
// alpha/(k + rank_vector) + beta/(k + rank_text).
func (hs *HybridSearch) reciprocalRankFusion(vectorResults []VectorResult, textResults []*FullTextResult, topK int) []*HybridSearchResult {
	vectorRanks := make(map[string]int)
	vectorScores := make(map[string]float32)
	for rank, result := range vectorResults {
		vectorRanks[result.ID] = rank + 1
		vectorScores[result.ID] = result.Similarity
	}

	textRanks := make(map[string]int)
	textScores := make(map[string]float64)
	for rank, result := range textResults {
		textRanks[result.ID] = rank + 1
		textScores[result.ID] = result.Score
	}

	allDocs := make(map[string]bool)
	for id := range vectorRanks {
		allDocs[id] = true
	}
	for id := range textRanks {
		allDocs[id] = true
	}

	results := make([]*HybridSearchResult, 0, len(allDocs))
	for docID := range allDocs {
		rrfScore := 0.0
		if vectorRank, exists := vectorRanks[docID]; exists {
			rrfScore += hs.alpha / float64(hs.k+vectorRank)
		}
		if textRank, exists := textRanks[docID]; exists {
			rrfScore += hs.beta / float64(hs.k+textRank)
		}

		var metadata map[string]interface{}
		if doc := hs.textIndex.GetDocument(docID); doc != nil {
			metadata = doc.Metadata
		}

		results = append(results, &HybridSearchResult{
			ID:          docID,
			VectorScore: vectorScores[docID],
			TextScore:   textScores[docID],
			FusedScore:  rrfScore,
			Metadata:    metadata,
		})
	}

	sortByFusedScore(results)

	if topK < len(results) {
		results = results[:topK]
	}
	return results
}

// weightedCombination normalizes both score distributions to [0, 1] and
// combines them with the configured weights.
func (hs *HybridSearch) weightedCombination(vectorResults []VectorResult, textResults []*FullTextResult, topK int) []*HybridSearchResult {
	// Similarities are already higher-is-better; normalize by the best hit.
	var maxSim float32
	for _, vr := range vectorResults {
		if vr.Similarity > maxSim {
			maxSim = vr.Similarity
		}
	}

	vectorNorm := make(map[string]float64)
	vectorScores := make(map[string]float32)
	for _, vr := range vectorResults {
		vectorScores[vr.ID] = vr.Similarity
		if maxSim > 0 {
			vectorNorm[vr.ID] = float64(vr.Similarity / maxSim)
		} else {
			vectorNorm[vr.ID] = 1.0
		}
	}

	var maxTextScore float64
	for _, tr := range textResults {
		if tr.Score > maxTextScore {
			maxTextScore = tr.Score
		}
	}

	textNorm := make(map[string]float64)
	textScores := make(map[string]float64)
	for _, tr := range textResults {
		textScores[tr.ID] = tr.Score
		if maxTextScore > 0 {
			textNorm[tr.ID] = tr.Score / maxTextScore
		} else {
			textNorm[tr.ID] = 1.0
		}
	}

	allDocs := make(map[string]bool)
	for id := range vectorNorm {
		allDocs[id] = true
	}
	for id := range textNorm {
		allDocs[id] = true
	}

	results := make([]*HybridSearchResult, 0, len(allDocs))
	for docID := range allDocs {
		combinedScore := hs.alpha*vectorNorm[docID] + hs.beta*textNorm[docID]

		var metadata map[string]interface{}
		if doc := hs.textIndex.GetDocument(docID); doc != nil {
			metadata = doc.Metadata
		}

		results = append(results, &HybridSearchResult{
			ID:          docID,
			VectorScore: vectorScores[docID],
			TextScore:   textScores[docID],
			FusedScore:  combinedScore,
			Metadata:    metadata,
		})
	}

	sortByFusedScore(results)

	if topK < len(results) {
		results = results[:topK]
	}
	return results
}

// sortByFusedScore sorts descending. Insertion sort: fused lists are top-k
// sized.
func sortByFusedScore(results []*HybridSearchResult) {
	for i := 1; i < len(results); i++ {
		key := results[i]
		j := i - 1
		for j >= 0 && results[j].FusedScore < key.FusedScore {
			results[j+1] = results[j]
			j--
		}
		results[j+1] = key
	}
}

// VectorOnlySearch ranks by vector similarity alone.
func (hs *HybridSearch) VectorOnlySearch(ctx context.Context, queryVector []float32, k int) []*HybridSearchResult {
	vectorResults, err := hs.vectorIndex.SearchVectors(ctx, queryVector, k)
	if err != nil {
		return nil
	}

	results := make([]*HybridSearchResult, len(vectorResults))
	for i, vr := range vectorResults {
		var metadata map[string]interface{}
		if doc := hs.textIndex.GetDocument(vr.ID); doc != nil {
			metadata = doc.Metadata
		}

		results[i] = &HybridSearchResult{
			ID:          vr.ID,
			VectorScore: vr.Similarity,
			TextScore:   0,
			FusedScore:  float64(vr.Similarity),
			Metadata:    metadata,
		}
	}
	return results
}

// TextOnlySearch ranks by BM25 alone.
func (hs *HybridSearch) TextOnlySearch(queryText string, k int) []*HybridSearchResult {
	textResults := hs.textIndex.Search(queryText, k)

	results := make([]*HybridSearchResult, len(textResults))
	for i, tr := range textResults {
		results[i] = &HybridSearchResult{
			ID:          tr.ID,
			VectorScore: 0,
			TextScore:   tr.Score,
			FusedScore:  tr.Score,
			Metadata:    tr.Document.Metadata,
		}
	}
	return results
}
