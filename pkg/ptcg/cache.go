package ptcg

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/tcgkit-io/ptcg/internal/constants"
)

// Static errors for cache operations.
var (
	ErrCacheKeyNotFound  = errors.New("key not found")
	ErrCacheEntryExpired = errors.New("entry expired")
)

// CacheEntry is one cached response body with its expiry.
type CacheEntry struct {
	Data      []byte    `json:"data"`
	ExpiresAt time.Time `json:"expires_at"`
	ETag      string    `json:"etag,omitempty"`
}

// Expired reports whether the entry is past its expiry.
func (e *CacheEntry) Expired() bool {
	return time.Now().After(e.ExpiresAt)
}

// Cache is the backend interface shared by all cache implementations.
type Cache interface {
	Get(ctx context.Context, key string) (*CacheEntry, error)
	Set(ctx context.Context, key string, entry *CacheEntry) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	Has(ctx context.Context, key string) bool
}

// CacheOptions holds options common to all backends.
type CacheOptions struct {
	// DefaultTTL applies when no per-path TTL matches.
	DefaultTTL time.Duration

	// CatalogTTL applies to the near-static catalog collections.
	CatalogTTL time.Duration
}

// DefaultCacheOptions returns the default cache options.
func DefaultCacheOptions() *CacheOptions {
	return &CacheOptions{
		DefaultTTL: constants.DefaultCacheTTL,
		CatalogTTL: constants.CatalogCacheTTL,
	}
}

// MemoryCache is a bounded in-memory cache with TTL expiry.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]*CacheEntry
	maxSize int
	stop    chan struct{}
}

// NewMemoryCache creates a memory cache holding at most maxSize entries.
func NewMemoryCache(maxSize int) *MemoryCache {
	if maxSize <= 0 {
		maxSize = constants.DefaultCacheSize
	}

	return &MemoryCache{
		entries: make(map[string]*CacheEntry),
		maxSize: maxSize,
	}
}

// StartCleanup sweeps expired entries until Stop is called.
func (c *MemoryCache) StartCleanup(interval time.Duration) {
	c.mu.Lock()
	if c.stop != nil {
		c.mu.Unlock()

		return
	}

	c.stop = make(chan struct{})
	stop := c.stop
	c.mu.Unlock()

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				c.Cleanup()
			}
		}
	}()
}

// Stop terminates the cleanup goroutine.
func (c *MemoryCache) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stop != nil {
		close(c.stop)
		c.stop = nil
	}
}

// Get retrieves an entry, failing on absence or expiry.
func (c *MemoryCache) Get(ctx context.Context, key string) (*CacheEntry, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCacheKeyNotFound, key)
	}

	if entry.Expired() {
		_ = c.Delete(ctx, key)

		return nil, fmt.Errorf("%w: %s", ErrCacheEntryExpired, key)
	}

	return entry, nil
}

// Set stores an entry, evicting the entry closest to expiry when full.
func (c *MemoryCache) Set(ctx context.Context, key string, entry *CacheEntry) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.maxSize {
		c.evictLocked()
	}

	c.entries[key] = entry

	return nil
}

// evictLocked removes the entry with the earliest expiry. Caller holds the lock.
func (c *MemoryCache) evictLocked() {
	var (
		oldestKey string
		oldest    time.Time
	)

	for key, entry := range c.entries {
		if oldestKey == "" || entry.ExpiresAt.Before(oldest) {
			oldestKey = key
			oldest = entry.ExpiresAt
		}
	}

	if oldestKey != "" {
		delete(c.entries, oldestKey)
	}
}

// Delete removes an entry.
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)

	return nil
}

// Clear removes all entries.
func (c *MemoryCache) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*CacheEntry)

	return nil
}

// Has reports whether a live entry exists for the key.
func (c *MemoryCache) Has(ctx context.Context, key string) bool {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	return ok && !entry.Expired()
}

// Cleanup removes all expired entries.
func (c *MemoryCache) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key, entry := range c.entries {
		if entry.Expired() {
			delete(c.entries, key)
		}
	}
}

// NATSKVConfig configures the NATS JetStream KV cache backend.
type NATSKVConfig struct {
	// URL is the NATS server URL, e.g. nats.DefaultURL.
	URL string

	// Bucket is the KV bucket name. Created if absent.
	Bucket string

	// TTL is the bucket-level entry lifetime applied on bucket creation.
	TTL time.Duration

	// Conn reuses an existing connection instead of dialing URL.
	Conn *nats.Conn
}

// NATSKVCache stores entries in a NATS JetStream key-value bucket, letting
// several processes share one catalog cache.
type NATSKVCache struct {
	kv    nats.KeyValue
	owned *nats.Conn
}

// NewNATSKVCache connects to NATS and binds (or creates) the configured bucket.
func NewNATSKVCache(config *NATSKVConfig) (*NATSKVCache, error) {
	conn := config.Conn

	var owned *nats.Conn

	if conn == nil {
		dialed, err := nats.Connect(config.URL)
		if err != nil {
			return nil, fmt.Errorf("connecting to NATS: %w", err)
		}

		conn = dialed
		owned = dialed
	}

	js, err := conn.JetStream()
	if err != nil {
		if owned != nil {
			owned.Close()
		}

		return nil, fmt.Errorf("opening JetStream context: %w", err)
	}

	kv, err := js.KeyValue(config.Bucket)
	if err != nil {
		kv, err = js.CreateKeyValue(&nats.KeyValueConfig{
			Bucket: config.Bucket,
			TTL:    config.TTL,
		})
		if err != nil {
			if owned != nil {
				owned.Close()
			}

			return nil, fmt.Errorf("creating KV bucket %q: %w", config.Bucket, err)
		}
	}

	return &NATSKVCache{kv: kv, owned: owned}, nil
}

// sanitizeKey maps cache keys onto the NATS KV key alphabet.
func sanitizeKey(key string) string {
	replacer := strings.NewReplacer("/", ".", ":", "_", "?", "_", "&", "_", "=", "-", " ", "-")

	return replacer.Replace(key)
}

// Get retrieves an entry from the bucket.
func (c *NATSKVCache) Get(ctx context.Context, key string) (*CacheEntry, error) {
	kvEntry, err := c.kv.Get(sanitizeKey(key))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCacheKeyNotFound, key)
	}

	var entry CacheEntry

	err = json.Unmarshal(kvEntry.Value(), &entry)
	if err != nil {
		return nil, fmt.Errorf("decoding cache entry: %w", err)
	}

	if entry.Expired() {
		_ = c.Delete(ctx, key)

		return nil, fmt.Errorf("%w: %s", ErrCacheEntryExpired, key)
	}

	return &entry, nil
}

// Set stores an entry in the bucket.
func (c *NATSKVCache) Set(ctx context.Context, key string, entry *CacheEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encoding cache entry: %w", err)
	}

	_, err = c.kv.Put(sanitizeKey(key), data)
	if err != nil {
		return fmt.Errorf("storing cache entry: %w", err)
	}

	return nil
}

// Delete removes an entry from the bucket.
func (c *NATSKVCache) Delete(ctx context.Context, key string) error {
	err := c.kv.Delete(sanitizeKey(key))
	if err != nil {
		return fmt.Errorf("deleting cache entry: %w", err)
	}

	return nil
}

// Clear purges every key in the bucket.
func (c *NATSKVCache) Clear(ctx context.Context) error {
	keys, err := c.kv.Keys()
	if err != nil {
		// An empty bucket reports "no keys found"; treat it as cleared.
		return nil
	}

	for _, key := range keys {
		err := c.kv.Purge(key)
		if err != nil {
			return fmt.Errorf("purging cache entry %q: %w", key, err)
		}
	}

	return nil
}

// Has reports whether a live entry exists for the key.
func (c *NATSKVCache) Has(ctx context.Context, key string) bool {
	_, err := c.Get(ctx, key)

	return err == nil
}

// Close releases the NATS connection if this cache owns it.
func (c *NATSKVCache) Close() {
	if c.owned != nil {
		c.owned.Close()
	}
}

// CacheStats tracks cache effectiveness.
type CacheStats struct {
	Hits   int64
	Misses int64
	Sets   int64
}

// GetHitRate returns hits / (hits + misses), or 0 with no traffic.
func (s *CacheStats) GetHitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}

	return float64(s.Hits) / float64(total)
}

// CachingPolicy decides which requests are cacheable.
type CachingPolicy struct {
	CacheGET     bool
	CacheErrors  bool
	IncludePaths []string
	ExcludePaths []string
}

// DefaultCachingPolicy caches successful GETs on every path.
func DefaultCachingPolicy() *CachingPolicy {
	return &CachingPolicy{
		CacheGET: true,
	}
}

// ShouldCache reports whether a response for method/path/status is cacheable.
func (p *CachingPolicy) ShouldCache(method, path string, statusCode int) bool {
	if method == "GET" && !p.CacheGET {
		return false
	}

	if method != "GET" {
		return false
	}

	if !p.CacheErrors && (statusCode < 200 || statusCode >= 300) {
		return false
	}

	for _, excluded := range p.ExcludePaths {
		if strings.HasPrefix(path, excluded) {
			return false
		}
	}

	if len(p.IncludePaths) > 0 {
		for _, included := range p.IncludePaths {
			if strings.HasPrefix(path, included) {
				return true
			}
		}

		return false
	}

	return true
}

// CacheManager pairs a backend with a policy and keeps hit statistics.
type CacheManager struct {
	cache  Cache
	policy *CachingPolicy

	mu    sync.Mutex
	stats CacheStats
}

// NewCacheManager creates a cache manager. A nil policy uses the default.
func NewCacheManager(cache Cache, policy *CachingPolicy) *CacheManager {
	if policy == nil {
		policy = DefaultCachingPolicy()
	}

	return &CacheManager{
		cache:  cache,
		policy: policy,
	}
}

// GetCacheKey builds a deterministic key from method, path and parameters.
func (m *CacheManager) GetCacheKey(method, path string, params map[string]string) string {
	if len(params) == 0 {
		return method + ":" + path
	}

	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, key+"="+params[key])
	}

	return method + ":" + path + ":" + strings.Join(pairs, "&")
}

// Policy returns the manager's caching policy.
func (m *CacheManager) Policy() *CachingPolicy {
	return m.policy
}

// Get retrieves cached data, counting hits and misses.
func (m *CacheManager) Get(ctx context.Context, key string) ([]byte, error) {
	entry, err := m.cache.Get(ctx, key)
	if err != nil {
		m.mu.Lock()
		m.stats.Misses++
		m.mu.Unlock()

		return nil, err
	}

	m.mu.Lock()
	m.stats.Hits++
	m.mu.Unlock()

	return entry.Data, nil
}

// Set stores data under the key with the given lifetime.
func (m *CacheManager) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return m.SetWithETag(ctx, key, data, "", ttl)
}

// SetWithETag stores data with an ETag for future conditional requests.
func (m *CacheManager) SetWithETag(ctx context.Context, key string, data []byte, etag string, ttl time.Duration) error {
	entry := &CacheEntry{
		Data:      data,
		ExpiresAt: time.Now().Add(ttl),
		ETag:      etag,
	}

	err := m.cache.Set(ctx, key, entry)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.stats.Sets++
	m.mu.Unlock()

	return nil
}

// GetStats returns a snapshot of the cache statistics.
func (m *CacheManager) GetStats() CacheStats {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.stats
}
