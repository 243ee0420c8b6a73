package grpc

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log"
	"net"
	"path/filepath"
	"sync"
	"time"

	"github.com/therealutkarshpriyadarshi/vector/internal/quantization"
	"github.com/therealutkarshpriyadarshi/vector/pkg/api/grpc/proto"
	"github.com/therealutkarshpriyadarshi/vector/pkg/config"
	"github.com/therealutkarshpriyadarshi/vector/pkg/denseindex"
	"github.com/therealutkarshpriyadarshi/vector/pkg/observability"
	"github.com/therealutkarshpriyadarshi/vector/pkg/search"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/reflection"
)

// Server is the gRPC front of the dense proximity-graph index: one
// collection per namespace, each paired with a full-text index for hybrid
// search and a process-local metadata store.
type Server struct {
	proto.UnimplementedVectorDBServer
	config     *config.Config
	grpcServer *grpc.Server
	listener   net.Listener
	startTime  time.Time
	shutdownMu sync.Mutex
	isShutdown bool

	logger  *observability.Logger
	metrics *observability.Metrics

	registry     *denseindex.Registry
	textIndexes  map[string]*search.FullTextIndex
	hybridSearch map[string]*search.CachedHybridSearch
	metadata     map[string]map[string]map[string]interface{} // namespace -> id -> metadata
	mu           sync.RWMutex
}

// denseSearcher adapts a DenseIndex to the VectorSearcher surface hybrid
// search fuses with.
type denseSearcher struct {
	idx *denseindex.DenseIndex
}

func (d denseSearcher) SearchVectors(ctx context.Context, probe []float32, k int) ([]search.VectorResult, error) {
	neighbors, err := d.idx.Search(ctx, probe, k)
	if err != nil {
		return nil, err
	}
	results := make([]search.VectorResult, len(neighbors))
	for i, nb := range neighbors {
		results[i] = search.VectorResult{ID: nb.ID, Similarity: nb.Similarity}
	}
	return results, nil
}

// NewServer creates a new gRPC server rooted at the configured data
// directory. The default namespace's collection is opened (or created)
// eagerly so a fresh deployment serves requests immediately.
func NewServer(cfg *config.Config) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger := observability.NewDefaultLogger()
	metrics := observability.NewMetrics()

	registry, err := denseindex.NewRegistry(filepath.Join(cfg.Database.DataDir, "collections"), logger, metrics)
	if err != nil {
		return nil, fmt.Errorf("failed to create collection registry: %w", err)
	}

	s := &Server{
		config:       cfg,
		logger:       logger,
		metrics:      metrics,
		registry:     registry,
		textIndexes:  make(map[string]*search.FullTextIndex),
		hybridSearch: make(map[string]*search.CachedHybridSearch),
		metadata:     make(map[string]map[string]map[string]interface{}),
		startTime:    time.Now(),
	}

	if _, err := s.getNamespace("default"); err != nil {
		return nil, fmt.Errorf("failed to initialize default namespace: %w", err)
	}

	return s, nil
}

// Registry exposes the collection registry so the process can share it with
// the REST surface.
func (s *Server) Registry() *denseindex.Registry {
	return s.registry
}

// getNamespace returns the namespace's collection, opening it from disk or
// creating it with the configured defaults on first use, along with its
// text-index and hybrid-search companions.
func (s *Server) getNamespace(namespace string) (*denseindex.DenseIndex, error) {
	idx, err := s.registry.Get(namespace)
	if err != nil {
		dc := s.config.DenseIndex
		idx, err = s.registry.Create(namespace, denseindex.CreateConfig{
			Dimension:     dc.Dimensions,
			MaxCacheLevel: dc.MaxCacheLevel,
			LMax:          dc.LMax,
			Graph: denseindex.GraphConfig{
				M:       dc.FanoutM,
				KSearch: dc.KSearch,
				MaxHops: dc.MaxHops,
			},
			Variant: quantization.TagHalfPrecisionFP,
		})
		if errors.Is(err, denseindex.ErrAlreadyExists) {
			// Lost a create race with a concurrent request for the same
			// namespace; the winner's collection serves both.
			idx, err = s.registry.Get(namespace)
		}
		if err != nil {
			return nil, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.textIndexes[namespace]; !ok {
		textIndex := search.NewFullTextIndex()
		s.textIndexes[namespace] = textIndex
		s.metadata[namespace] = make(map[string]map[string]interface{})

		cacheCapacity, cacheTTL := 0, time.Duration(0)
		if s.config.Cache.Enabled {
			cacheCapacity = s.config.Cache.Capacity
			cacheTTL = s.config.Cache.TTL
		}
		s.hybridSearch[namespace] = search.NewCachedHybridSearch(denseSearcher{idx}, textIndex, cacheCapacity, cacheTTL)

		log.Printf("Initialized namespace: %s (dim=%d, M=%d, l_max=%d)",
			namespace, idx.Dimension, s.config.DenseIndex.FanoutM, idx.LMax)
	}
	return idx, nil
}

// namespaceCompanions returns the text index, hybrid search, and metadata
// store for an already-initialized namespace.
func (s *Server) namespaceCompanions(namespace string) (*search.FullTextIndex, *search.CachedHybridSearch, map[string]map[string]interface{}) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.textIndexes[namespace], s.hybridSearch[namespace], s.metadata[namespace]
}

// Start starts the gRPC server.
func (s *Server) Start() error {
	var opts []grpc.ServerOption

	if s.config.Server.EnableTLS {
		cert, err := tls.LoadX509KeyPair(s.config.Server.CertFile, s.config.Server.KeyFile)
		if err != nil {
			return fmt.Errorf("failed to load TLS certificates: %w", err)
		}
		tlsConfig := &tls.Config{
			Certificates: []tls.Certificate{cert},
			MinVersion:   tls.VersionTLS12,
		}
		opts = append(opts, grpc.Creds(credentials.NewTLS(tlsConfig)))
		log.Println("TLS enabled")
	}

	kaParams := keepalive.ServerParameters{
		MaxConnectionIdle: 15 * time.Second,
		MaxConnectionAge:  30 * time.Second,
		Time:              5 * time.Second,
		Timeout:           1 * time.Second,
	}
	opts = append(opts, grpc.KeepaliveParams(kaParams))
	opts = append(opts, grpc.MaxConcurrentStreams(uint32(s.config.Server.MaxConnections)))

	s.grpcServer = grpc.NewServer(opts...)
	proto.RegisterVectorDBServer(s.grpcServer, s)

	// Reflection for debugging (e.g. with grpcurl).
	reflection.Register(s.grpcServer)

	addr := s.config.Server.Address()
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	s.listener = listener

	log.Printf("Vector Database gRPC server listening on %s", addr)

	go func() {
		if err := s.grpcServer.Serve(listener); err != nil {
			log.Printf("gRPC server error: %v", err)
		}
	}()

	return nil
}

// Stop gracefully shuts down the server and closes open collections. It
// does not flush them; only what transaction commits already wrote is on
// disk.
func (s *Server) Stop() error {
	s.shutdownMu.Lock()
	defer s.shutdownMu.Unlock()

	if s.isShutdown {
		return nil
	}

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
	defer cancel()

	stopped := make(chan struct{})
	go func() {
		s.grpcServer.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		log.Println("Server stopped gracefully")
	case <-ctx.Done():
		log.Println("Shutdown timeout exceeded, forcing stop")
		s.grpcServer.Stop()
	}

	if err := s.registry.Close(); err != nil {
		log.Printf("Error closing collection registry: %v", err)
	}

	s.isShutdown = true
	return nil
}

// Uptime returns server uptime.
func (s *Server) Uptime() time.Duration {
	return time.Since(s.startTime)
}

// Stats returns per-namespace vector counts for GetStats.
func (s *Server) Stats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	namespaceStats := make(map[string]map[string]interface{})
	for ns, store := range s.metadata {
		namespaceStats[ns] = map[string]interface{}{
			"vector_count": len(store),
		}
	}

	return map[string]interface{}{
		"namespaces":      len(s.metadata),
		"namespace_stats": namespaceStats,
	}
}
