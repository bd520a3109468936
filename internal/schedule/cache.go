package schedule

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	redisstore "github.com/eko/gocache/store/redis/v4"
	"github.com/redis/go-redis/v9"
)

// Cache is the subset of *cache.Cache[string] used by CachedSource.
type Cache interface {
	Get(ctx context.Context, key any) (string, error)
	Set(ctx context.Context, key any, value string, options ...store.Option) error
}

// NewRedisCache returns a string cache stored in Redis.
func NewRedisCache(client *redis.Client) *cache.Cache[string] {
	return cache.New[string](redisstore.NewRedis(client))
}

// CachedSource serves repeated lookups for the same origin, destination and
// date from a cache. Cache failures degrade to a direct lookup.
type CachedSource struct {
	next  Source
	cache Cache
	ttl   time.Duration
	log   *slog.Logger
}

// NewCachedSource wraps next with a read-through cache entry of lifetime ttl.
func NewCachedSource(next Source, c Cache, ttl time.Duration, log *slog.Logger) *CachedSource {
	return &CachedSource{next: next, cache: c, ttl: ttl, log: log}
}

// Lookup implements Source. Only successful lookups are cached.
func (s *CachedSource) Lookup(ctx context.Context, req Request) ([]RawTrip, error) {
	key := cacheKey(req)

	if cached, err := s.cache.Get(ctx, key); err == nil {
		var trips []RawTrip
		if err := json.Unmarshal([]byte(cached), &trips); err == nil {
			return trips, nil
		}
		s.log.WarnContext(ctx, "discarding undecodable schedule cache entry", "key", key)
	}

	trips, err := s.next.Lookup(ctx, req)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(trips); err == nil {
		if err := s.cache.Set(ctx, key, string(data), store.WithExpiration(s.ttl)); err != nil {
			s.log.WarnContext(ctx, "schedule cache write failed", "key", key, "error", err)
		}
	}
	return trips, nil
}

func cacheKey(req Request) string {
	return "schedule:" + string(req.Start) + ":" + string(req.End) + ":" + req.Date
}
