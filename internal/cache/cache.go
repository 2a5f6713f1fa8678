// Package cache memoizes score reports in memory (L1) and, optionally, in Redis (L2).
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jonathan/ats-scorer/internal/types"
)

const (
	// DefaultTTL is how long a cached report stays valid.
	DefaultTTL = time.Hour
	// DefaultMaxEntries bounds the in-memory tier.
	DefaultMaxEntries = 1000

	keyPrefix   = "ats:"
	pingTimeout = 3 * time.Second
)

// Options configures a Cache. A zero value gives an L1-only cache with defaults.
type Options struct {
	TTL        time.Duration
	MaxEntries int
	// RedisURL enables the L2 tier, e.g. redis://localhost:6379/0
	RedisURL string
	Logger   *slog.Logger
}

// Cache is a two-tier byte cache. Entries expire after the TTL in both tiers.
type Cache struct {
	mu         sync.Mutex
	l1         map[string]entry
	rdb        *redis.Client
	ttl        time.Duration
	maxEntries int
	logger     *slog.Logger
	now        func() time.Time

	hits   atomic.Int64
	misses atomic.Int64
}

type entry struct {
	data      []byte
	expiresAt time.Time
}

// Stats is a snapshot of cache counters.
type Stats struct {
	Hits    int64 `json:"hits"`
	Misses  int64 `json:"misses"`
	Entries int   `json:"entries"`
	Redis   bool  `json:"redis"`
}

// New builds a cache. An unusable Redis URL or unreachable server only disables L2.
func New(ctx context.Context, opts Options) *Cache {
	c := &Cache{
		l1:         make(map[string]entry),
		ttl:        opts.TTL,
		maxEntries: opts.MaxEntries,
		logger:     opts.Logger,
		now:        time.Now,
	}
	if c.ttl <= 0 {
		c.ttl = DefaultTTL
	}
	if c.maxEntries <= 0 {
		c.maxEntries = DefaultMaxEntries
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}

	if opts.RedisURL != "" {
		c.rdb = connectRedis(ctx, opts.RedisURL, c.logger)
	}

	c.logger.Debug("cache: initialized",
		slog.Duration("ttl", c.ttl),
		slog.Int("max_entries", c.maxEntries),
		slog.Bool("redis", c.rdb != nil))
	return c
}

func connectRedis(ctx context.Context, url string, logger *slog.Logger) *redis.Client {
	opts, err := redis.ParseURL(url)
	if err != nil {
		logger.Warn("cache: invalid redis URL, L2 disabled", slog.Any("error", err))
		return nil
	}

	rdb := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		logger.Warn("cache: redis unreachable, L2 disabled", slog.Any("error", err))
		_ = rdb.Close()
		return nil
	}

	logger.Info("cache: L2 redis connected", slog.String("addr", opts.Addr))
	return rdb
}

// Key builds a deterministic cache key from parts.
func Key(parts ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(parts, "\x00")))
	return keyPrefix + hex.EncodeToString(sum[:12])
}

// ReportKey hashes the scoring inputs. Unknown roles hash like the mid role they score as.
func ReportKey(resume *types.ResumeData, jobDescription string, role types.RoleLevel) (string, error) {
	if resume == nil {
		resume = &types.ResumeData{}
	}
	raw, err := json.Marshal(resume)
	if err != nil {
		return "", err
	}
	if !role.IsKnown() {
		role = types.DefaultRoleLevel
	}
	return Key("report", string(raw), jobDescription, string(role)), nil
}

// Get tries L1, then L2. An L2 hit is copied into L1.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	c.mu.Lock()
	e, ok := c.l1[key]
	if ok && c.now().After(e.expiresAt) {
		delete(c.l1, key)
		ok = false
	}
	c.mu.Unlock()

	if ok {
		c.logger.Debug("cache: L1 hit", slog.String("key", key))
		c.hits.Add(1)
		return e.data, true
	}

	if c.rdb != nil {
		data, err := c.rdb.Get(ctx, key).Bytes()
		if err == nil {
			c.logger.Debug("cache: L2 hit", slog.String("key", key))
			c.hits.Add(1)
			c.storeL1(key, data)
			return data, true
		}
		if !errors.Is(err, redis.Nil) {
			c.logger.Debug("cache: L2 get failed", slog.Any("error", err))
		}
	}

	c.misses.Add(1)
	return nil, false
}

// Set stores data in both tiers.
func (c *Cache) Set(ctx context.Context, key string, data []byte) {
	c.storeL1(key, data)

	if c.rdb != nil {
		if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
			c.logger.Debug("cache: L2 set failed", slog.Any("error", err))
		}
	}
}

// Stats returns current counters.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	entries := len(c.l1)
	c.mu.Unlock()

	return Stats{
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
		Entries: entries,
		Redis:   c.rdb != nil,
	}
}

// Close releases the Redis connection, if any.
func (c *Cache) Close() error {
	if c.rdb != nil {
		return c.rdb.Close()
	}
	return nil
}

func (c *Cache) storeL1(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.l1[key]; !exists {
		c.evictLocked()
	}
	c.l1[key] = entry{data: data, expiresAt: c.now().Add(c.ttl)}
}

// evictLocked makes room for one entry: expired entries go first, then the ones
// closest to expiry. Caller holds c.mu.
func (c *Cache) evictLocked() {
	if len(c.l1) < c.maxEntries {
		return
	}

	now := c.now()
	for key, e := range c.l1 {
		if now.After(e.expiresAt) {
			delete(c.l1, key)
		}
	}

	for len(c.l1) >= c.maxEntries {
		var oldestKey string
		var oldestAt time.Time
		for key, e := range c.l1 {
			if oldestKey == "" || e.expiresAt.Before(oldestAt) || (e.expiresAt.Equal(oldestAt) && key < oldestKey) {
				oldestKey, oldestAt = key, e.expiresAt
			}
		}
		delete(c.l1, oldestKey)
	}
}
