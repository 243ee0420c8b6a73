package search

import (
	"math"
	"strings"
	"sync"
	"unicode"
)

// Document is a searchable text payload attached to an indexed vector. ID is
// the same opaque content-derived identifier the vector index uses.
type Document struct {
	ID       string
	Text     string
	Metadata map[string]interface{}
}

// FullTextIndex implements BM25-ranked full-text search over the documents
// attached to a collection's vectors.
type FullTextIndex struct {
	k1 float64 // term frequency saturation (typical: 1.2-2.0)
	b  float64 // length normalization (typical: 0.75)

	documents     map[string]*Document
	invertedIndex map[string]map[string]int // term -> {docID -> term frequency}
	docLengths    map[string]int
	avgDocLength  float64
	docCount      int

	mu sync.RWMutex
}

// FullTextResult is one ranked hit with its BM25 score.
type FullTextResult struct {
	ID       string
	Score    float64
	Document *Document
}

// NewFullTextIndex creates an empty index with standard BM25 parameters.
func NewFullTextIndex() *FullTextIndex {
	return &FullTextIndex{
		k1:            1.5,
		b:             0.75,
		documents:     make(map[string]*Document),
		invertedIndex: make(map[string]map[string]int),
		docLengths:    make(map[string]int),
	}
}

// SetParameters overrides the BM25 k1/b tuning parameters.
func (idx *FullTextIndex) SetParameters(k1, b float64) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.k1 = k1
	idx.b = b
}

// tokenize splits text into lowercase words, dropping punctuation and
// single-character tokens.
func tokenize(text string) []string {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})

	filtered := make([]string, 0, len(words))
	for _, word := range words {
		if len(word) >= 2 {
			filtered = append(filtered, word)
		}
	}
	return filtered
}

// Index adds or replaces a document.
func (idx *FullTextIndex) Index(doc *Document) error {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	tokens := tokenize(doc.Text)

	if oldDoc, exists := idx.documents[doc.ID]; exists {
		idx.removeDocumentLocked(oldDoc)
	}

	idx.documents[doc.ID] = doc
	idx.docLengths[doc.ID] = len(tokens)
	idx.docCount++

	termFreq := make(map[string]int)
	for _, token := range tokens {
		termFreq[token]++
	}
	for term, freq := range termFreq {
		if idx.invertedIndex[term] == nil {
			idx.invertedIndex[term] = make(map[string]int)
		}
		idx.invertedIndex[term][doc.ID] = freq
	}

	idx.updateAvgDocLengthLocked()
	return nil
}

// BatchIndex indexes multiple documents.
func (idx *FullTextIndex) BatchIndex(docs []*Document) error {
	for _, doc := range docs {
		if err := idx.Index(doc); err != nil {
			return err
		}
	}
	return nil
}

// Remove removes a document by id. Removing an id that was never indexed is
// a no-op.
func (idx *FullTextIndex) Remove(docID string) error {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	doc, exists := idx.documents[docID]
	if !exists {
		return nil
	}
	idx.removeDocumentLocked(doc)
	return nil
}

// removeDocumentLocked must be called with idx.mu held.
func (idx *FullTextIndex) removeDocumentLocked(doc *Document) {
	tokens := tokenize(doc.Text)
	termFreq := make(map[string]int)
	for _, token := range tokens {
		termFreq[token]++
	}

	for term := range termFreq {
		if postings, exists := idx.invertedIndex[term]; exists {
			delete(postings, doc.ID)
			if len(postings) == 0 {
				delete(idx.invertedIndex, term)
			}
		}
	}

	delete(idx.documents, doc.ID)
	delete(idx.docLengths, doc.ID)
	idx.docCount--
	idx.updateAvgDocLengthLocked()
}

func (idx *FullTextIndex) updateAvgDocLengthLocked() {
	if idx.docCount == 0 {
		idx.avgDocLength = 0
		return
	}

	totalLength := 0
	for _, length := range idx.docLengths {
		totalLength += length
	}
	idx.avgDocLength = float64(totalLength) / float64(idx.docCount)
}

// Search returns the top k documents ranked by BM25 score.
func (idx *FullTextIndex) Search(query string, k int) []*FullTextResult {
	return idx.SearchWithFilter(query, k, nil)
}

// SearchWithFilter is Search restricted to documents whose metadata passes
// filter. A nil filter matches every document.
func (idx *FullTextIndex) SearchWithFilter(query string, k int, filter FilterFunc) []*FullTextResult {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if idx.docCount == 0 {
		return nil
	}

	queryTokens := tokenize(query)
	if len(queryTokens) == 0 {
		return nil
	}

	scores := make(map[string]float64)

	for _, term := range queryTokens {
		postings, exists := idx.invertedIndex[term]
		if !exists {
			continue
		}

		// IDF+ keeps the factor positive even for terms present in most
		// documents: log(1 + (N - df + 0.5) / (df + 0.5)).
		N := float64(idx.docCount)
		df := float64(len(postings))
		idf := math.Log(1 + (N-df+0.5)/(df+0.5))

		for docID, termFreq := range postings {
			if filter != nil {
				if doc := idx.documents[docID]; doc == nil || !filter(doc.Metadata) {
					continue
				}
			}

			// score += IDF * (tf * (k1 + 1)) / (tf + k1 * (1 - b + b * dl/avgdl))
			tf := float64(termFreq)
			dl := float64(idx.docLengths[docID])
			avgdl := idx.avgDocLength

			numerator := tf * (idx.k1 + 1)
			denominator := tf + idx.k1*(1-idx.b+idx.b*(dl/avgdl))

			scores[docID] += idf * (numerator / denominator)
		}
	}

	results := make([]*FullTextResult, 0, len(scores))
	for docID, score := range scores {
		results = append(results, &FullTextResult{
			ID:       docID,
			Score:    score,
			Document: idx.documents[docID],
		})
	}

	sortByScore(results)

	if k < len(results) {
		results = results[:k]
	}
	return results
}

// GetDocument retrieves a document by id, or nil if absent.
func (idx *FullTextIndex) GetDocument(id string) *Document {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.documents[id]
}

// Size returns the number of indexed documents.
func (idx *FullTextIndex) Size() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.docCount
}

// sortByScore sorts results by score descending. Insertion sort: result
// lists are top-k sized.
func sortByScore(results []*FullTextResult) {
	for i := 1; i < len(results); i++ {
		key := results[i]
		j := i - 1
		for j >= 0 && results[j].Score < key.Score {
			results[j+1] = results[j]
			j--
		}
		results[j+1] = key
	}
}

// FilterFunc reports whether a document's metadata matches.
type FilterFunc func(metadata map[string]interface{}) bool
