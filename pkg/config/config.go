package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all server configuration
type Config struct {
	Server     ServerConfig
	DenseIndex DenseIndexConfig
	REST       RESTConfig
	Cache      CacheConfig
	Database   DatabaseConfig
}

// ServerConfig holds gRPC server configuration
type ServerConfig struct {
	Host            string        // Server host (default: "0.0.0.0")
	Port            int           // Server port (default: 50051)
	MaxConnections  int           // Max concurrent connections
	RequestTimeout  time.Duration // Request timeout
	ShutdownTimeout time.Duration // Graceful shutdown timeout
	EnableTLS       bool          // Enable TLS
	CertFile        string        // TLS certificate file
	KeyFile         string        // TLS key file
}

// DenseIndexConfig holds the hierarchical proximity-graph index's
// configuration: the vector dimension for auto-created collections, its
// fan-out, traversal bounds, and the level above which the node cache is
// allowed to evict and lazy-load.
type DenseIndexConfig struct {
	Dimensions    int   // Vector dimensions for auto-created collections (default: 768)
	FanoutM       int   // Neighbor-list cap per node per level (default: 2)
	KSearch       int   // Candidates each traversal step returns (default: 2)
	MaxHops       int8  // Traversal recursion depth cap (default: 4)
	LMax          int8  // Highest graph level (default: 3)
	MaxCacheLevel int8  // Levels at or below this stay pinned in the cache
}

// RESTConfig holds the plain-HTTP API's configuration: whether it runs
// alongside the gRPC server, and its own auth/CORS/rate-limit settings.
type RESTConfig struct {
	Enabled bool
	Host    string
	Port    int

	CORSEnabled bool
	CORSOrigins []string

	AuthEnabled bool
	JWTSecret   string
	PublicPaths []string
	AdminPaths  []string

	RateLimitEnabled bool
	RateLimitPerSec  float64
	RateLimitBurst   int
	RateLimitPerIP   bool
	RateLimitPerUser bool
	RateLimitGlobal  bool
}

// CacheConfig holds query cache configuration
type CacheConfig struct {
	Enabled  bool          // Enable query caching
	Capacity int           // Max cache entries
	TTL      time.Duration // Time to live for cache entries
}

// DatabaseConfig holds storage configuration
type DatabaseConfig struct {
	DataDir      string // Data directory path
	EnableWAL    bool   // Enable write-ahead log
	SyncWrites   bool   // Sync writes to disk
	MaxNamespaces int   // Max number of namespaces
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            50051,
			MaxConnections:  1000,
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			EnableTLS:       false,
		},
		DenseIndex: DenseIndexConfig{
			Dimensions:    768,
			FanoutM:       2,
			KSearch:       2,
			MaxHops:       4,
			LMax:          3,
			MaxCacheLevel: 1,
		},
		REST: RESTConfig{
			Enabled:          true,
			Host:             "0.0.0.0",
			Port:             8080,
			CORSEnabled:      true,
			CORSOrigins:      []string{"*"},
			AuthEnabled:      false,
			PublicPaths:      []string{"/v1/health", "/docs"},
			RateLimitEnabled: true,
			RateLimitPerSec:  100,
			RateLimitBurst:   200,
			RateLimitPerIP:   true,
		},
		Cache: CacheConfig{
			Enabled:  true,
			Capacity: 1000,
			TTL:      5 * time.Minute,
		},
		Database: DatabaseConfig{
			DataDir:      "./data",
			EnableWAL:    true,
			SyncWrites:   false,
			MaxNamespaces: 100,
		},
	}
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() *Config {
	cfg := Default()

	// Server configuration
	if host := os.Getenv("VECTOR_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if port := os.Getenv("VECTOR_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Server.Port = p
		}
	}
	if maxConn := os.Getenv("VECTOR_MAX_CONNECTIONS"); maxConn != "" {
		if mc, err := strconv.Atoi(maxConn); err == nil {
			cfg.Server.MaxConnections = mc
		}
	}
	if timeout := os.Getenv("VECTOR_REQUEST_TIMEOUT"); timeout != "" {
		if t, err := time.ParseDuration(timeout); err == nil {
			cfg.Server.RequestTimeout = t
		}
	}
	if enableTLS := os.Getenv("VECTOR_ENABLE_TLS"); enableTLS == "true" {
		cfg.Server.EnableTLS = true
		cfg.Server.CertFile = os.Getenv("VECTOR_TLS_CERT")
		cfg.Server.KeyFile = os.Getenv("VECTOR_TLS_KEY")
	}

	// Dense index configuration
	if dims := os.Getenv("VECTOR_DIMENSIONS"); dims != "" {
		if d, err := strconv.Atoi(dims); err == nil {
			cfg.DenseIndex.Dimensions = d
		}
	}
	if m := os.Getenv("VECTOR_DENSEINDEX_FANOUT_M"); m != "" {
		if mVal, err := strconv.Atoi(m); err == nil {
			cfg.DenseIndex.FanoutM = mVal
		}
	}
	if lMax := os.Getenv("VECTOR_DENSEINDEX_L_MAX"); lMax != "" {
		if l, err := strconv.Atoi(lMax); err == nil {
			cfg.DenseIndex.LMax = int8(l)
		}
	}
	if maxCacheLevel := os.Getenv("VECTOR_DENSEINDEX_MAX_CACHE_LEVEL"); maxCacheLevel != "" {
		if l, err := strconv.Atoi(maxCacheLevel); err == nil {
			cfg.DenseIndex.MaxCacheLevel = int8(l)
		}
	}

	// REST configuration
	if enabled := os.Getenv("VECTOR_REST_ENABLED"); enabled == "false" {
		cfg.REST.Enabled = false
	}
	if host := os.Getenv("VECTOR_REST_HOST"); host != "" {
		cfg.REST.Host = host
	}
	if port := os.Getenv("VECTOR_REST_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.REST.Port = p
		}
	}
	if corsEnabled := os.Getenv("VECTOR_REST_CORS_ENABLED"); corsEnabled == "false" {
		cfg.REST.CORSEnabled = false
	}
	if authEnabled := os.Getenv("VECTOR_REST_AUTH_ENABLED"); authEnabled == "true" {
		cfg.REST.AuthEnabled = true
		cfg.REST.JWTSecret = os.Getenv("VECTOR_REST_JWT_SECRET")
	}
	if rateLimitEnabled := os.Getenv("VECTOR_REST_RATE_LIMIT_ENABLED"); rateLimitEnabled == "false" {
		cfg.REST.RateLimitEnabled = false
	}

	// Cache configuration
	if cacheEnabled := os.Getenv("VECTOR_CACHE_ENABLED"); cacheEnabled == "false" {
		cfg.Cache.Enabled = false
	}
	if capacity := os.Getenv("VECTOR_CACHE_CAPACITY"); capacity != "" {
		if c, err := strconv.Atoi(capacity); err == nil {
			cfg.Cache.Capacity = c
		}
	}
	if ttl := os.Getenv("VECTOR_CACHE_TTL"); ttl != "" {
		if t, err := time.ParseDuration(ttl); err == nil {
			cfg.Cache.TTL = t
		}
	}

	// Database configuration
	if dataDir := os.Getenv("VECTOR_DATA_DIR"); dataDir != "" {
		cfg.Database.DataDir = dataDir
	}
	if wal := os.Getenv("VECTOR_ENABLE_WAL"); wal == "false" {
		cfg.Database.EnableWAL = false
	}
	if sync := os.Getenv("VECTOR_SYNC_WRITES"); sync == "true" {
		cfg.Database.SyncWrites = true
	}

	return cfg
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Server validation
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d (must be 1-65535)", c.Server.Port)
	}
	if c.Server.MaxConnections < 1 {
		return fmt.Errorf("invalid max connections: %d (must be > 0)", c.Server.MaxConnections)
	}
	if c.Server.EnableTLS {
		if c.Server.CertFile == "" || c.Server.KeyFile == "" {
			return fmt.Errorf("TLS enabled but cert or key file not specified")
		}
	}

	// Dense index validation
	if c.DenseIndex.Dimensions < 1 {
		return fmt.Errorf("invalid dimensions: %d (must be > 0)", c.DenseIndex.Dimensions)
	}
	if c.DenseIndex.FanoutM < 1 {
		return fmt.Errorf("invalid dense index fanout M: %d (must be > 0)", c.DenseIndex.FanoutM)
	}
	if c.DenseIndex.LMax < 0 {
		return fmt.Errorf("invalid dense index l_max: %d (must be >= 0)", c.DenseIndex.LMax)
	}
	if c.DenseIndex.MaxCacheLevel < 0 || c.DenseIndex.MaxCacheLevel > c.DenseIndex.LMax {
		return fmt.Errorf("invalid dense index max_cache_level: %d (must be between 0 and l_max)", c.DenseIndex.MaxCacheLevel)
	}

	// REST validation
	if c.REST.Enabled {
		if c.REST.Port < 1 || c.REST.Port > 65535 {
			return fmt.Errorf("invalid REST port: %d (must be 1-65535)", c.REST.Port)
		}
		if c.REST.AuthEnabled && c.REST.JWTSecret == "" {
			return fmt.Errorf("REST auth enabled but no JWT secret specified")
		}
	}

	// Cache validation
	if c.Cache.Enabled && c.Cache.Capacity < 1 {
		return fmt.Errorf("invalid cache capacity: %d (must be > 0)", c.Cache.Capacity)
	}

	// Database validation
	if c.Database.DataDir == "" {
		return fmt.Errorf("data directory not specified")
	}

	return nil
}

// Address returns the server address (host:port)
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
