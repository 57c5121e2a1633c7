package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"talent-match/internal/domain"
)

func sampleMatch(employeeID, jobID string, score int) domain.JobMatch {
	return domain.JobMatch{
		EmployeeID:   employeeID,
		JobID:        jobID,
		OverallScore: score,
		Reasoning:    []domain.MatchReason{{Point: "p", Evidence: "e"}},
	}
}

func TestMemoryMatchCacheExpiry(t *testing.T) {
	cache := NewMemoryMatchCache(time.Minute).(*memoryMatchCache)
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }
	ctx := context.Background()

	if err := cache.Set(ctx, sampleMatch("e1", "j1", 80)); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, ok, err := cache.Get(ctx, "e1", "j1")
	if err != nil || !ok || got.OverallScore != 80 {
		t.Fatalf("expected hit, got %+v ok=%v err=%v", got, ok, err)
	}

	now = now.Add(2 * time.Minute)
	if _, ok, _ := cache.Get(ctx, "e1", "j1"); ok {
		t.Fatalf("expected expired entry")
	}
}

func TestMemoryMatchCacheInvalidateEmployee(t *testing.T) {
	cache := NewMemoryMatchCache(time.Minute)
	ctx := context.Background()
	_ = cache.Set(ctx, sampleMatch("e1", "j1", 80))
	_ = cache.Set(ctx, sampleMatch("e1", "j2", 70))
	_ = cache.Set(ctx, sampleMatch("e10", "j1", 60))

	if err := cache.InvalidateEmployee(ctx, "e1"); err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	if _, ok, _ := cache.Get(ctx, "e1", "j1"); ok {
		t.Fatalf("expected e1/j1 removed")
	}
	if _, ok, _ := cache.Get(ctx, "e1", "j2"); ok {
		t.Fatalf("expected e1/j2 removed")
	}
	if _, ok, _ := cache.Get(ctx, "e10", "j1"); !ok {
		t.Fatalf("expected e10/j1 kept")
	}
}

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisMatchCacheRoundTrip(t *testing.T) {
	mr, client := newTestRedis(t)
	cache := NewRedisMatchCache(client, time.Minute)
	ctx := context.Background()

	if _, ok, err := cache.Get(ctx, "e1", "j1"); err != nil || ok {
		t.Fatalf("expected miss, got ok=%v err=%v", ok, err)
	}
	if err := cache.Set(ctx, sampleMatch("e1", "j1", 88)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if !mr.Exists("match:e1:j1") {
		t.Fatalf("expected key match:e1:j1 in redis")
	}
	if ttl := mr.TTL("match:e1:j1"); ttl != time.Minute {
		t.Fatalf("expected ttl 1m, got %v", ttl)
	}

	got, ok, err := cache.Get(ctx, "e1", "j1")
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if got.OverallScore != 88 || len(got.Reasoning) != 1 {
		t.Fatalf("unexpected cached match %+v", got)
	}

	mr.FastForward(2 * time.Minute)
	if _, ok, _ := cache.Get(ctx, "e1", "j1"); ok {
		t.Fatalf("expected expired key")
	}
}

func TestRedisMatchCacheInvalidateEmployee(t *testing.T) {
	mr, client := newTestRedis(t)
	cache := NewRedisMatchCache(client, time.Minute)
	ctx := context.Background()

	_ = cache.Set(ctx, sampleMatch("e1", "j1", 80))
	_ = cache.Set(ctx, sampleMatch("e1", "j2", 70))
	_ = cache.Set(ctx, sampleMatch("e2", "j1", 60))

	if err := cache.InvalidateEmployee(ctx, "e1"); err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	if mr.Exists("match:e1:j1") || mr.Exists("match:e1:j2") {
		t.Fatalf("expected e1 keys removed")
	}
	if !mr.Exists("match:e2:j1") {
		t.Fatalf("expected e2 key kept")
	}
}

func TestRedisMatchCacheCorruptValue(t *testing.T) {
	mr, client := newTestRedis(t)
	cache := NewRedisMatchCache(client, time.Minute)
	if err := mr.Set("match:e1:j1", "{not json"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, _, err := cache.Get(context.Background(), "e1", "j1"); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestNewRedisMatchCacheNilClient(t *testing.T) {
	if cache := NewRedisMatchCache(nil, time.Minute); cache != nil {
		t.Fatalf("expected nil cache for nil client")
	}
}

func TestRedisMatchCacheKeysSurviveSpecialIDs(t *testing.T) {
	mr, client := newTestRedis(t)
	cache := NewRedisMatchCache(client, time.Minute)
	ctx := context.Background()

	_ = cache.Set(ctx, sampleMatch("a:b", "c", 10))
	_ = cache.Set(ctx, sampleMatch("a", "b:c", 20))
	_ = cache.Set(ctx, sampleMatch("e*", "j1", 30))
	_ = cache.Set(ctx, sampleMatch("e1", "j1", 40))

	first, ok, err := cache.Get(ctx, "a:b", "c")
	if err != nil || !ok || first.OverallScore != 10 {
		t.Fatalf("expected a:b/c score 10, got %+v ok=%v err=%v", first, ok, err)
	}
	second, ok, err := cache.Get(ctx, "a", "b:c")
	if err != nil || !ok || second.OverallScore != 20 {
		t.Fatalf("expected a/b:c score 20, got %+v ok=%v err=%v", second, ok, err)
	}

	// "e*" es un ID literal, no un comodin
	if err := cache.InvalidateEmployee(ctx, "e*"); err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	if _, ok, _ := cache.Get(ctx, "e*", "j1"); ok {
		t.Fatalf("expected e*/j1 removed")
	}
	if _, ok, _ := cache.Get(ctx, "e1", "j1"); !ok {
		t.Fatalf("expected e1/j1 kept")
	}

	if err := cache.InvalidateEmployee(ctx, "a"); err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	if _, ok, _ := cache.Get(ctx, "a:b", "c"); !ok {
		t.Fatalf("expected a:b/c kept after invalidating a")
	}
	if len(mr.Keys()) != 2 {
		t.Fatalf("expected 2 keys left, got %v", mr.Keys())
	}
}

func TestMemoryMatchCacheKeysSurviveSpecialIDs(t *testing.T) {
	cache := NewMemoryMatchCache(time.Minute)
	ctx := context.Background()

	_ = cache.Set(ctx, sampleMatch("a:b", "c", 10))
	_ = cache.Set(ctx, sampleMatch("a", "b:c", 20))

	if err := cache.InvalidateEmployee(ctx, "a"); err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	got, ok, _ := cache.Get(ctx, "a:b", "c")
	if !ok || got.OverallScore != 10 {
		t.Fatalf("expected a:b/c kept, got %+v ok=%v", got, ok)
	}
	if _, ok, _ := cache.Get(ctx, "a", "b:c"); ok {
		t.Fatalf("expected a/b:c removed")
	}
}
