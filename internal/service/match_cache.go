package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"talent-match/internal/domain"
)

// MatchCache guarda JobMatch calculados por par empleado/puesto.
// Fija el sub-puntaje aleatorio de intereses mientras dure el TTL.
type MatchCache interface {
	Get(ctx context.Context, employeeID, jobID string) (domain.JobMatch, bool, error)
	Set(ctx context.Context, match domain.JobMatch) error
	InvalidateEmployee(ctx context.Context, employeeID string) error
}

const (
	defaultMatchCacheTTL = 10 * time.Minute
	matchCachePrefix     = "match:"
)

// matchCacheKey escapa cada segmento: el ":" separador y los comodines de SCAN
// (*, ?, [) nunca aparecen dentro de un ID codificado.
func matchCacheKey(employeeID, jobID string) string {
	return employeeKeyPrefix(employeeID) + url.QueryEscape(jobID)
}

func employeeKeyPrefix(employeeID string) string {
	return matchCachePrefix + url.QueryEscape(employeeID) + ":"
}

type memoryMatchEntry struct {
	match     domain.JobMatch
	expiresAt time.Time
}

type memoryMatchCache struct {
	mu    sync.Mutex
	ttl   time.Duration
	items map[string]memoryMatchEntry
	now   func() time.Time
}

func NewMemoryMatchCache(ttl time.Duration) MatchCache {
	if ttl <= 0 {
		ttl = defaultMatchCacheTTL
	}
	return &memoryMatchCache{
		ttl:   ttl,
		items: make(map[string]memoryMatchEntry),
		now:   time.Now,
	}
}

func (c *memoryMatchCache) Get(_ context.Context, employeeID, jobID string) (domain.JobMatch, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := matchCacheKey(employeeID, jobID)
	entry, ok := c.items[key]
	if !ok {
		return domain.JobMatch{}, false, nil
	}
	if c.now().After(entry.expiresAt) {
		delete(c.items, key)
		return domain.JobMatch{}, false, nil
	}
	return entry.match, true, nil
}

func (c *memoryMatchCache) Set(_ context.Context, match domain.JobMatch) error {
	if strings.TrimSpace(match.EmployeeID) == "" || strings.TrimSpace(match.JobID) == "" {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[matchCacheKey(match.EmployeeID, match.JobID)] = memoryMatchEntry{
		match:     match,
		expiresAt: c.now().Add(c.ttl),
	}
	return nil
}

func (c *memoryMatchCache) InvalidateEmployee(_ context.Context, employeeID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	prefix := employeeKeyPrefix(employeeID)
	for key := range c.items {
		if strings.HasPrefix(key, prefix) {
			delete(c.items, key)
		}
	}
	return nil
}

// redisMatchClient es el subconjunto de *redis.Client que usa el cache.
type redisMatchClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Scan(ctx context.Context, cursor uint64, match string, count int64) *redis.ScanCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type redisMatchCache struct {
	client redisMatchClient
	ttl    time.Duration
}

func NewRedisMatchCache(client *redis.Client, ttl time.Duration) MatchCache {
	if client == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = defaultMatchCacheTTL
	}
	return &redisMatchCache{client: client, ttl: ttl}
}

func (c *redisMatchCache) Get(ctx context.Context, employeeID, jobID string) (domain.JobMatch, bool, error) {
	raw, err := c.client.Get(ctx, matchCacheKey(employeeID, jobID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.JobMatch{}, false, nil
	}
	if err != nil {
		return domain.JobMatch{}, false, fmt.Errorf("redis get match: %w", err)
	}
	var match domain.JobMatch
	if err := json.Unmarshal(raw, &match); err != nil {
		return domain.JobMatch{}, false, fmt.Errorf("decode cached match: %w", err)
	}
	return match, true, nil
}

func (c *redisMatchCache) Set(ctx context.Context, match domain.JobMatch) error {
	if strings.TrimSpace(match.EmployeeID) == "" || strings.TrimSpace(match.JobID) == "" {
		return nil
	}
	raw, err := json.Marshal(match)
	if err != nil {
		return fmt.Errorf("encode match: %w", err)
	}
	return c.client.Set(ctx, matchCacheKey(match.EmployeeID, match.JobID), raw, c.ttl).Err()
}

func (c *redisMatchCache) InvalidateEmployee(ctx context.Context, employeeID string) error {
	pattern := employeeKeyPrefix(employeeID) + "*"
	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return fmt.Errorf("redis scan matches: %w", err)
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("redis del matches: %w", err)
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}
