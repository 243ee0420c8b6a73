package grpc

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"strconv"
	"time"

	"github.com/therealutkarshpriyadarshi/vector/pkg/api/grpc/proto"
	"github.com/therealutkarshpriyadarshi/vector/pkg/denseindex"
	"github.com/therealutkarshpriyadarshi/vector/pkg/search"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// vectorID derives the content hash a vector is stored under: identical
// content always maps to the same id.
func vectorID(vector []float32) string {
	h := sha256.New()
	var buf [4]byte
	for _, v := range vector {
		binary.LittleEndian.PutUint32(buf[:], math.Float32bits(v))
		h.Write(buf[:])
	}
	return fmt.Sprintf("%x", h.Sum(nil)[:16])
}

// Insert implements the Insert RPC: one single-insert transaction against
// the namespace's collection, plus metadata and optional text indexing.
func (s *Server) Insert(ctx context.Context, req *proto.InsertRequest) (*proto.InsertResponse, error) {
	start := time.Now()

	if err := validateInsertRequest(req); err != nil {
		return &proto.InsertResponse{
			Success: false,
			Error:   stringPtr(err.Error()),
		}, status.Error(codes.InvalidArgument, err.Error())
	}

	idx, err := s.getNamespace(req.Namespace)
	if err != nil {
		return &proto.InsertResponse{
			Success: false,
			Error:   stringPtr(err.Error()),
		}, status.Error(codes.Internal, err.Error())
	}

	id := vectorID(req.Vector)

	txn := idx.BeginTransaction()
	if err := txn.Insert(ctx, denseindex.Embedding{ID: id, Raw: req.Vector}); err != nil {
		code := codes.Internal
		if errors.Is(err, denseindex.ErrDimensionMismatch) || errors.Is(err, denseindex.ErrZeroVector) {
			code = codes.InvalidArgument
		}
		return &proto.InsertResponse{
			Success: false,
			Error:   stringPtr(err.Error()),
		}, status.Error(code, err.Error())
	}
	if err := txn.Commit(); err != nil {
		return &proto.InsertResponse{
			Success: false,
			Error:   stringPtr(err.Error()),
		}, status.Error(codes.Internal, err.Error())
	}

	textIndex, hybrid, metadataStore := s.namespaceCompanions(req.Namespace)

	metaMap := make(map[string]interface{})
	for k, v := range req.Metadata {
		metaMap[k] = v
	}
	s.mu.Lock()
	metadataStore[id] = metaMap
	s.mu.Unlock()

	if req.Text != nil && *req.Text != "" {
		doc := &search.Document{
			ID:       id,
			Text:     *req.Text,
			Metadata: metaMap,
		}
		if err := textIndex.Index(doc); err != nil {
			log.Printf("Warning: failed to index text for vector %s: %v", id, err)
		}
	}
	hybrid.InvalidateCache()

	s.metrics.RecordRequest("Insert", "success", time.Since(start))
	log.Printf("Inserted vector %s in namespace %s (took %v)", id, req.Namespace, time.Since(start))

	return &proto.InsertResponse{
		Id:      id,
		Success: true,
	}, nil
}

// Search implements the Search RPC over the proximity graph, with optional
// metadata filtering.
func (s *Server) Search(ctx context.Context, req *proto.SearchRequest) (*proto.SearchResponse, error) {
	start := time.Now()

	if err := validateSearchRequest(req); err != nil {
		return &proto.SearchResponse{
			Error: stringPtr(err.Error()),
		}, status.Error(codes.InvalidArgument, err.Error())
	}

	idx, err := s.getNamespace(req.Namespace)
	if err != nil {
		return &proto.SearchResponse{
			Error: stringPtr(err.Error()),
		}, status.Error(codes.Internal, err.Error())
	}

	results, err := idx.Search(ctx, req.QueryVector, int(req.K))
	if err != nil {
		code := codes.Internal
		if errors.Is(err, denseindex.ErrDimensionMismatch) {
			code = codes.InvalidArgument
		}
		return &proto.SearchResponse{
			Error: stringPtr(err.Error()),
		}, status.Error(code, err.Error())
	}

	if req.Filter != nil {
		filter, err := protoFilterToFilter(req.Filter)
		if err != nil {
			return &proto.SearchResponse{
				Error: stringPtr(err.Error()),
			}, status.Error(codes.InvalidArgument, fmt.Sprintf("invalid filter: %v", err))
		}
		results = s.applyFilterToResults(req.Namespace, results, filter)
	}

	protoResults := make([]*proto.SearchResult, 0, len(results))
	for _, r := range results {
		protoResults = append(protoResults, s.resultToProto(req.Namespace, idx, r))
	}

	searchTime := time.Since(start)
	s.metrics.RecordRequest("Search", "success", searchTime)
	log.Printf("Search in namespace %s returned %d results (took %v)", req.Namespace, len(protoResults), searchTime)

	return &proto.SearchResponse{
		Results:      protoResults,
		TotalResults: int32(len(protoResults)),
		SearchTimeMs: float32(searchTime.Milliseconds()),
	}, nil
}

// HybridSearch implements the HybridSearch RPC: proximity-graph similarity
// fused with BM25 text ranking.
func (s *Server) HybridSearch(ctx context.Context, req *proto.HybridSearchRequest) (*proto.SearchResponse, error) {
	start := time.Now()

	if err := validateHybridSearchRequest(req); err != nil {
		return &proto.SearchResponse{
			Error: stringPtr(err.Error()),
		}, status.Error(codes.InvalidArgument, err.Error())
	}

	idx, err := s.getNamespace(req.Namespace)
	if err != nil {
		return &proto.SearchResponse{
			Error: stringPtr(err.Error()),
		}, status.Error(codes.Internal, err.Error())
	}

	_, hybrid, _ := s.namespaceCompanions(req.Namespace)
	results := hybrid.Search(ctx, req.QueryVector, req.QueryText, int(req.K))

	if req.Filter != nil {
		filter, err := protoFilterToFilter(req.Filter)
		if err != nil {
			return &proto.SearchResponse{
				Error: stringPtr(err.Error()),
			}, status.Error(codes.InvalidArgument, fmt.Sprintf("invalid filter: %v", err))
		}
		results = applyFilterToHybridResults(results, filter)
	}

	protoResults := make([]*proto.SearchResult, 0, len(results))
	for _, r := range results {
		protoResults = append(protoResults, s.hybridResultToProto(req.Namespace, idx, r))
	}

	searchTime := time.Since(start)
	s.metrics.RecordRequest("HybridSearch", "success", searchTime)
	log.Printf("Hybrid search in namespace %s returned %d results (took %v)", req.Namespace, len(protoResults), searchTime)

	return &proto.SearchResponse{
		Results:      protoResults,
		TotalResults: int32(len(protoResults)),
		SearchTimeMs: float32(searchTime.Milliseconds()),
	}, nil
}

// Delete implements the Delete RPC. The proximity graph records a node on
// every level up to its ceiling and never rebalances, so single-vector
// removal is not offered; callers drop the whole collection instead.
func (s *Server) Delete(ctx context.Context, req *proto.DeleteRequest) (*proto.DeleteResponse, error) {
	if req.Namespace == "" {
		return &proto.DeleteResponse{
			Success: false,
			Error:   stringPtr("namespace is required"),
		}, status.Error(codes.InvalidArgument, "namespace is required")
	}

	switch req.Selector.(type) {
	case *proto.DeleteRequest_Id:
		msg := "vector deletion is not supported by the proximity-graph index; delete the collection instead"
		return &proto.DeleteResponse{
			Success: false,
			Error:   stringPtr(msg),
		}, status.Error(codes.Unimplemented, msg)

	case *proto.DeleteRequest_Filter:
		return &proto.DeleteResponse{
			Success: false,
			Error:   stringPtr("delete by filter not yet implemented"),
		}, status.Error(codes.Unimplemented, "delete by filter not yet implemented")

	default:
		return &proto.DeleteResponse{
			Success: false,
			Error:   stringPtr("either id or filter must be specified"),
		}, status.Error(codes.InvalidArgument, "either id or filter must be specified")
	}
}

// Update implements the Update RPC for metadata and text. Vector payloads
// are content-addressed and immutable once linked into the graph, so a
// vector change is rejected; re-inserting produces a new id.
func (s *Server) Update(ctx context.Context, req *proto.UpdateRequest) (*proto.UpdateResponse, error) {
	if req.Namespace == "" || req.Id == "" {
		return &proto.UpdateResponse{
			Success: false,
			Error:   stringPtr("namespace and id are required"),
		}, status.Error(codes.InvalidArgument, "namespace and id are required")
	}

	if len(req.Vector) > 0 {
		msg := "vector payloads are immutable; insert the new vector instead"
		return &proto.UpdateResponse{
			Success: false,
			Error:   stringPtr(msg),
		}, status.Error(codes.Unimplemented, msg)
	}

	if _, err := s.getNamespace(req.Namespace); err != nil {
		return &proto.UpdateResponse{
			Success: false,
			Error:   stringPtr(err.Error()),
		}, status.Error(codes.Internal, err.Error())
	}

	textIndex, hybrid, metadataStore := s.namespaceCompanions(req.Namespace)

	s.mu.Lock()
	if _, known := metadataStore[req.Id]; !known {
		s.mu.Unlock()
		return &proto.UpdateResponse{
			Success: false,
			Error:   stringPtr("unknown vector id"),
		}, status.Error(codes.NotFound, "unknown vector id")
	}
	if len(req.Metadata) > 0 {
		metaMap := make(map[string]interface{})
		for k, v := range req.Metadata {
			metaMap[k] = v
		}
		metadataStore[req.Id] = metaMap
	}
	metadata := metadataStore[req.Id]
	s.mu.Unlock()

	if req.Text != nil && *req.Text != "" {
		textIndex.Remove(req.Id)
		doc := &search.Document{
			ID:       req.Id,
			Text:     *req.Text,
			Metadata: metadata,
		}
		if err := textIndex.Index(doc); err != nil {
			log.Printf("Warning: failed to update text for vector %s: %v", req.Id, err)
		}
	}
	hybrid.InvalidateCache()

	log.Printf("Updated vector %s in namespace %s", req.Id, req.Namespace)

	return &proto.UpdateResponse{
		Success: true,
	}, nil
}

// BatchInsert implements the BatchInsert streaming RPC: the whole stream is
// one transaction, committed at end-of-stream. A failed insert aborts the
// transaction, so nothing from a failed batch is ever persisted.
func (s *Server) BatchInsert(stream proto.VectorDB_BatchInsertServer) error {
	start := time.Now()
	var insertedCount, failedCount int32
	var insertedIDs []string
	var errs []string

	var txn *denseindex.Transaction
	var txnNamespace string

	for {
		req, err := stream.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			return status.Error(codes.Internal, fmt.Sprintf("stream error: %v", err))
		}

		if err := validateInsertRequest(req); err != nil {
			failedCount++
			errs = append(errs, err.Error())
			continue
		}

		if txn == nil {
			idx, err := s.getNamespace(req.Namespace)
			if err != nil {
				return status.Error(codes.Internal, err.Error())
			}
			txn = idx.BeginTransaction()
			txnNamespace = req.Namespace
		} else if req.Namespace != txnNamespace {
			failedCount++
			errs = append(errs, fmt.Sprintf("batch spans namespaces %q and %q", txnNamespace, req.Namespace))
			continue
		}

		id := vectorID(req.Vector)
		if err := txn.Insert(stream.Context(), denseindex.Embedding{ID: id, Raw: req.Vector}); err != nil {
			failedCount++
			errs = append(errs, err.Error())
			// The transaction is aborted by the failed insert; drain the
			// rest of the stream to report a total count.
			continue
		}

		insertedCount++
		insertedIDs = append(insertedIDs, id)

		textIndex, _, metadataStore := s.namespaceCompanions(req.Namespace)
		metaMap := make(map[string]interface{})
		for k, v := range req.Metadata {
			metaMap[k] = v
		}
		s.mu.Lock()
		metadataStore[id] = metaMap
		s.mu.Unlock()
		if req.Text != nil && *req.Text != "" {
			textIndex.Index(&search.Document{ID: id, Text: *req.Text, Metadata: metaMap})
		}
	}

	if txn != nil && failedCount == 0 {
		if err := txn.Commit(); err != nil {
			return status.Error(codes.Internal, fmt.Sprintf("commit failed: %v", err))
		}
		if _, hybrid, _ := s.namespaceCompanions(txnNamespace); hybrid != nil {
			hybrid.InvalidateCache()
		}
	} else if txn != nil {
		txn.Abort()
	}

	totalTime := time.Since(start)
	s.metrics.RecordBatchInsert(totalTime)
	log.Printf("Batch insert completed: %d succeeded, %d failed (took %v)",
		insertedCount, failedCount, totalTime)

	return stream.SendAndClose(&proto.BatchInsertResponse{
		InsertedCount: insertedCount,
		FailedCount:   failedCount,
		InsertedIds:   insertedIDs,
		Errors:        errs,
		TotalTimeMs:   float32(totalTime.Milliseconds()),
	})
}

// GetStats implements the GetStats RPC.
func (s *Server) GetStats(ctx context.Context, req *proto.StatsRequest) (*proto.StatsResponse, error) {
	stats := s.Stats()

	resp := &proto.StatsResponse{
		TotalVectors:     0,
		TotalNamespaces:  int64(stats["namespaces"].(int)),
		MemoryUsageBytes: 0,
		NamespaceStats:   make(map[string]*proto.NamespaceStats),
	}

	nsStats := stats["namespace_stats"].(map[string]map[string]interface{})
	for ns, nsStat := range nsStats {
		vectorCount := int64(nsStat["vector_count"].(int))
		resp.TotalVectors += vectorCount

		dimensions := s.config.DenseIndex.Dimensions
		if idx, err := s.registry.Get(ns); err == nil {
			dimensions = idx.Dimension
		}

		resp.NamespaceStats[ns] = &proto.NamespaceStats{
			VectorCount: vectorCount,
			MemoryBytes: 0,
			Dimensions:  int32(dimensions),
		}
	}

	return resp, nil
}

// HealthCheck implements the HealthCheck RPC.
func (s *Server) HealthCheck(ctx context.Context, req *proto.HealthCheckRequest) (*proto.HealthCheckResponse, error) {
	healthStatus := "healthy"
	details := make(map[string]string)

	s.shutdownMu.Lock()
	isShutdown := s.isShutdown
	s.shutdownMu.Unlock()

	if isShutdown {
		healthStatus = "unhealthy"
		details["reason"] = "server is shutting down"
	}

	s.mu.RLock()
	namespaceCount := len(s.metadata)
	s.mu.RUnlock()

	details["namespaces"] = strconv.Itoa(namespaceCount)
	details["cache_enabled"] = strconv.FormatBool(s.config.Cache.Enabled)

	return &proto.HealthCheckResponse{
		Status:        healthStatus,
		Version:       "1.0.0",
		UptimeSeconds: int64(s.Uptime().Seconds()),
		Details:       details,
	}, nil
}

// Helper methods

func (s *Server) applyFilterToResults(namespace string, results []denseindex.Neighbor, filter search.Filter) []denseindex.Neighbor {
	if filter == nil {
		return results
	}

	s.mu.RLock()
	metadataStore := s.metadata[namespace]
	s.mu.RUnlock()

	filtered := make([]denseindex.Neighbor, 0, len(results))
	for _, r := range results {
		if metadata, ok := metadataStore[r.ID]; ok {
			if filter.Match(metadata) {
				filtered = append(filtered, r)
			}
		}
	}
	return filtered
}

func applyFilterToHybridResults(results []*search.HybridSearchResult, filter search.Filter) []*search.HybridSearchResult {
	if filter == nil {
		return results
	}

	filtered := make([]*search.HybridSearchResult, 0, len(results))
	for _, r := range results {
		if filter.Match(r.Metadata) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func (s *Server) resultToProto(namespace string, idx *denseindex.DenseIndex, r denseindex.Neighbor) *proto.SearchResult {
	s.mu.RLock()
	var metadata map[string]interface{}
	if metadataStore, ok := s.metadata[namespace]; ok {
		if meta, ok := metadataStore[r.ID]; ok {
			metadata = meta
		}
	}
	s.mu.RUnlock()

	metadataProto := make(map[string]string)
	for k, v := range metadata {
		metadataProto[k] = fmt.Sprintf("%v", v)
	}

	vector, _ := idx.GetVector(r.ID)

	return &proto.SearchResult{
		Id:         r.ID,
		Similarity: r.Similarity,
		Vector:     vector,
		Metadata:   metadataProto,
	}
}

func (s *Server) hybridResultToProto(namespace string, idx *denseindex.DenseIndex, r *search.HybridSearchResult) *proto.SearchResult {
	metadataProto := make(map[string]string)
	for k, v := range r.Metadata {
		metadataProto[k] = fmt.Sprintf("%v", v)
	}

	vector, _ := idx.GetVector(r.ID)

	textIndex, _, _ := s.namespaceCompanions(namespace)
	var text *string
	if textIndex != nil {
		if doc := textIndex.GetDocument(r.ID); doc != nil {
			text = &doc.Text
		}
	}

	return &proto.SearchResult{
		Id:          r.ID,
		Similarity:  r.VectorScore,
		Vector:      vector,
		Metadata:    metadataProto,
		Text:        text,
		VectorScore: &r.VectorScore,
		TextScore:   floatPtr(float32(r.TextScore)),
	}
}

// Validation helpers

func validateInsertRequest(req *proto.InsertRequest) error {
	if req.Namespace == "" {
		return fmt.Errorf("namespace is required")
	}
	if len(req.Vector) == 0 {
		return fmt.Errorf("vector is required")
	}
	return nil
}

func validateSearchRequest(req *proto.SearchRequest) error {
	if req.Namespace == "" {
		return fmt.Errorf("namespace is required")
	}
	if len(req.QueryVector) == 0 {
		return fmt.Errorf("query vector is required")
	}
	if req.K <= 0 {
		return fmt.Errorf("k must be > 0")
	}
	return nil
}

func validateHybridSearchRequest(req *proto.HybridSearchRequest) error {
	if req.Namespace == "" {
		return fmt.Errorf("namespace is required")
	}
	if len(req.QueryVector) == 0 {
		return fmt.Errorf("query vector is required")
	}
	if req.QueryText == "" {
		return fmt.Errorf("query text is required")
	}
	if req.K <= 0 {
		return fmt.Errorf("k must be > 0")
	}
	return nil
}

// Filter conversion helpers

func protoFilterToFilter(pf *proto.Filter) (search.Filter, error) {
	switch ft := pf.FilterType.(type) {
	case *proto.Filter_Comparison:
		return protoComparisonToFilter(ft.Comparison)
	case *proto.Filter_Range:
		return protoRangeToFilter(ft.Range)
	case *proto.Filter_List:
		return protoListToFilter(ft.List)
	case *proto.Filter_GeoRadius:
		return protoGeoRadiusToFilter(ft.GeoRadius)
	case *proto.Filter_Exists:
		return protoExistsToFilter(ft.Exists)
	case *proto.Filter_Composite:
		return protoCompositeToFilter(ft.Composite)
	default:
		return nil, fmt.Errorf("unknown filter type")
	}
}

func protoComparisonToFilter(cf *proto.ComparisonFilter) (search.Filter, error) {
	var value interface{} = cf.Value

	// Try to parse as number
	if f, err := strconv.ParseFloat(cf.Value, 64); err == nil {
		value = f
	}

	switch cf.Operator {
	case "eq":
		return search.Eq(cf.Field, value), nil
	case "ne":
		return search.Ne(cf.Field, value), nil
	case "gt":
		return search.Gt(cf.Field, value), nil
	case "lt":
		return search.Lt(cf.Field, value), nil
	case "gte":
		return search.Gte(cf.Field, value), nil
	case "lte":
		return search.Lte(cf.Field, value), nil
	default:
		return nil, fmt.Errorf("unknown comparison operator: %s", cf.Operator)
	}
}

func protoRangeToFilter(rf *proto.RangeFilter) (search.Filter, error) {
	// Not directly supported, convert to composite AND filter
	var filters []search.Filter

	if rf.Gte != nil {
		if f, err := strconv.ParseFloat(*rf.Gte, 64); err == nil {
			filters = append(filters, search.Gte(rf.Field, f))
		}
	}
	if rf.Lte != nil {
		if f, err := strconv.ParseFloat(*rf.Lte, 64); err == nil {
			filters = append(filters, search.Lte(rf.Field, f))
		}
	}
	if rf.Gt != nil {
		if f, err := strconv.ParseFloat(*rf.Gt, 64); err == nil {
			filters = append(filters, search.Gt(rf.Field, f))
		}
	}
	if rf.Lt != nil {
		if f, err := strconv.ParseFloat(*rf.Lt, 64); err == nil {
			filters = append(filters, search.Lt(rf.Field, f))
		}
	}

	if len(filters) == 0 {
		return nil, fmt.Errorf("range filter has no conditions")
	}
	if len(filters) == 1 {
		return filters[0], nil
	}

	return search.And(filters...), nil
}

func protoListToFilter(lf *proto.ListFilter) (search.Filter, error) {
	values := make([]interface{}, len(lf.Values))
	for i, v := range lf.Values {
		values[i] = v
	}

	switch lf.Operator {
	case "in":
		return search.In(lf.Field, values...), nil
	case "not_in":
		return search.NotIn(lf.Field, values...), nil
	default:
		return nil, fmt.Errorf("unknown list operator: %s", lf.Operator)
	}
}

func protoGeoRadiusToFilter(gf *proto.GeoRadiusFilter) (search.Filter, error) {
	return search.GeoRadius(gf.Field, gf.Latitude, gf.Longitude, gf.RadiusKm), nil
}

func protoExistsToFilter(ef *proto.ExistsFilter) (search.Filter, error) {
	return search.Exists(ef.Field), nil
}

func protoCompositeToFilter(cf *proto.CompositeFilter) (search.Filter, error) {
	filters := make([]search.Filter, len(cf.Filters))
	for i, pf := range cf.Filters {
		f, err := protoFilterToFilter(pf)
		if err != nil {
			return nil, err
		}
		filters[i] = f
	}

	switch cf.Operator {
	case "and":
		return search.And(filters...), nil
	case "or":
		return search.Or(filters...), nil
	case "not":
		if len(filters) != 1 {
			return nil, fmt.Errorf("NOT filter requires exactly one sub-filter")
		}
		return search.Not(filters[0]), nil
	default:
		return nil, fmt.Errorf("unknown composite operator: %s", cf.Operator)
	}
}

// Utility helpers

func stringPtr(s string) *string {
	return &s
}

func floatPtr(f float32) *float32 {
	return &f
}
