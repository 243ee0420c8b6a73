package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/therealutkarshpriyadarshi/vector/internal/quantization"
	"github.com/therealutkarshpriyadarshi/vector/pkg/denseindex"
)

// DenseHandler exposes collection-level management of the proximity-graph
// index over plain JSON. It talks directly to a denseindex.Registry rather
// than through the gRPC client the namespace-scoped vector routes use.
type DenseHandler struct {
	registry *denseindex.Registry
}

// NewDenseHandler wraps a registry for use by the REST server.
func NewDenseHandler(registry *denseindex.Registry) *DenseHandler {
	return &DenseHandler{registry: registry}
}

type createCollectionRequest struct {
	Name          string   `json:"name"`
	Dimension     int      `json:"dimension"`
	Variant       string   `json:"variant,omitempty"`
	Lower         *float32 `json:"lower,omitempty"`
	Upper         *float32 `json:"upper,omitempty"`
	MaxCacheLevel *int8    `json:"max_cache_level,omitempty"`
	LMax          *int8    `json:"l_max,omitempty"`
}

func parseVariant(s string) (quantization.StorageTag, error) {
	switch strings.ToLower(s) {
	case "", "unsigned_byte":
		return quantization.TagUnsignedByte, nil
	case "sub_byte":
		return quantization.TagSubByte, nil
	case "half_precision":
		return quantization.TagHalfPrecisionFP, nil
	default:
		return 0, errors.New("unknown storage variant: " + s)
	}
}

// CreateCollection handles POST /v1/dense/collections
func (h *DenseHandler) CreateCollection(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req createCollectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		writeError(w, "name is required", http.StatusBadRequest)
		return
	}

	variant, err := parseVariant(req.Variant)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	opts := denseindex.CreateConfig{
		Dimension: req.Dimension,
		Lower:     req.Lower,
		Upper:     req.Upper,
		Variant:   variant,
	}
	if req.MaxCacheLevel != nil {
		opts.MaxCacheLevel = *req.MaxCacheLevel
	}
	if req.LMax != nil {
		opts.LMax = *req.LMax
	}

	if _, err := h.registry.Create(req.Name, opts); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, denseindex.ErrAlreadyExists) {
			status = http.StatusConflict
		} else if errors.Is(err, denseindex.ErrFailedToCreateCollection) {
			status = http.StatusBadRequest
		}
		writeError(w, "Failed to create collection: "+err.Error(), status)
		return
	}

	writeJSON(w, map[string]interface{}{"name": req.Name, "dimension": req.Dimension}, http.StatusCreated)
}

// ListCollections handles GET /v1/dense/collections
func (h *DenseHandler) ListCollections(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	names, err := h.registry.List()
	if err != nil {
		writeError(w, "Failed to list collections: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]interface{}{"collections": names}, http.StatusOK)
}

// DeleteCollection handles DELETE /v1/dense/collections/{name}
func (h *DenseHandler) DeleteCollection(w http.ResponseWriter, r *http.Request, name string) {
	if r.Method != http.MethodDelete {
		writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := h.registry.Delete(name); err != nil {
		writeError(w, "Failed to delete collection: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]interface{}{"deleted": name}, http.StatusOK)
}

type insertVectorRequest struct {
	ID     string    `json:"id"`
	Vector []float32 `json:"vector"`
}

// InsertVector handles POST /v1/dense/collections/{name}/vectors
func (h *DenseHandler) InsertVector(w http.ResponseWriter, r *http.Request, name string) {
	if r.Method != http.MethodPost {
		writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req insertVectorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	idx, err := h.registry.Get(name)
	if err != nil {
		writeError(w, "Collection not found: "+err.Error(), http.StatusNotFound)
		return
	}

	if err := idx.Insert(r.Context(), denseindex.Embedding{ID: req.ID, Raw: req.Vector}); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, denseindex.ErrDimensionMismatch) {
			status = http.StatusBadRequest
		}
		writeError(w, "Insert failed: "+err.Error(), status)
		return
	}

	writeJSON(w, map[string]interface{}{"id": req.ID}, http.StatusCreated)
}

type searchVectorRequest struct {
	Vector []float32 `json:"vector"`
	K      int       `json:"k"`
}

type searchResult struct {
	ID         string  `json:"id"`
	Similarity float32 `json:"similarity"`
}

// SearchCollection handles POST /v1/dense/collections/{name}/search
func (h *DenseHandler) SearchCollection(w http.ResponseWriter, r *http.Request, name string) {
	if r.Method != http.MethodPost {
		writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req searchVectorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.K <= 0 {
		req.K = 10
	}

	idx, err := h.registry.Get(name)
	if err != nil {
		writeError(w, "Collection not found: "+err.Error(), http.StatusNotFound)
		return
	}

	neighbors, err := idx.Search(r.Context(), req.Vector, req.K)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, denseindex.ErrDimensionMismatch) {
			status = http.StatusBadRequest
		}
		writeError(w, "Search failed: "+err.Error(), status)
		return
	}

	results := make([]searchResult, len(neighbors))
	for i, n := range neighbors {
		results[i] = searchResult{ID: n.ID, Similarity: n.Similarity}
	}
	writeJSON(w, map[string]interface{}{"results": results}, http.StatusOK)
}
