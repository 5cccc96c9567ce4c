package redis

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"trivia-quiz-service/internal/app"
	"trivia-quiz-service/internal/domain"
)

// LeaderboardCache decorates an app.LeaderboardRepository with a Redis
// read-through cache for the hot top-N queries. Writes pass through to the
// inner repository and drop the affected snapshots, so readers never see a
// board older than the cache TTL after their own submission.
type LeaderboardCache struct {
	client *redis.Client
	inner  app.LeaderboardRepository
	ttl    time.Duration
}

func NewLeaderboardCache(client *redis.Client, inner app.LeaderboardRepository, ttl time.Duration) *LeaderboardCache {
	return &LeaderboardCache{client: client, inner: inner, ttl: ttl}
}

func (c *LeaderboardCache) FindByUserGenre(ctx context.Context, userID, genre string) ([]domain.LeaderboardEntry, error) {
	// The upsert read must see the latest write; never served from cache.
	return c.inner.FindByUserGenre(ctx, userID, genre)
}

func (c *LeaderboardCache) Insert(ctx context.Context, entry domain.LeaderboardEntry) error {
	if err := c.inner.Insert(ctx, entry); err != nil {
		return err
	}
	c.invalidate(ctx, entry.Genre)
	return nil
}

func (c *LeaderboardCache) Update(ctx context.Context, entry domain.LeaderboardEntry) error {
	if err := c.inner.Update(ctx, entry); err != nil {
		return err
	}
	c.invalidate(ctx, entry.Genre)
	return nil
}

func (c *LeaderboardCache) TopByGenre(ctx context.Context, genre string, limit int) ([]domain.LeaderboardEntry, error) {
	key := c.topKey(genre, limit)
	if entries, ok := c.fetch(ctx, key); ok {
		return entries, nil
	}
	entries, err := c.inner.TopByGenre(ctx, genre, limit)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, entries)
	return entries, nil
}

func (c *LeaderboardCache) TopOverall(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	key := c.topKey(app.GenreAll, limit)
	if entries, ok := c.fetch(ctx, key); ok {
		return entries, nil
	}
	entries, err := c.inner.TopOverall(ctx, limit)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, entries)
	return entries, nil
}

func (c *LeaderboardCache) HistoryByUser(ctx context.Context, userID string) ([]domain.LeaderboardEntry, error) {
	// Profile history is per-user and low-traffic; not worth caching.
	return c.inner.HistoryByUser(ctx, userID)
}

func (c *LeaderboardCache) fetch(ctx context.Context, key string) ([]domain.LeaderboardEntry, bool) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	var entries []domain.LeaderboardEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, false
	}
	return entries, true
}

func (c *LeaderboardCache) store(ctx context.Context, key string, entries []domain.LeaderboardEntry) {
	raw, err := json.Marshal(entries)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, key, raw, c.ttl).Err()
}

func (c *LeaderboardCache) invalidate(ctx context.Context, genre string) {
	keys := []string{}
	for _, g := range []string{genre, app.GenreAll} {
		keys = append(keys, c.topKey(g, app.TopLimit))
	}
	_ = c.client.Del(ctx, keys...).Err()
}

func (c *LeaderboardCache) topKey(genre string, limit int) string {
	return "leaderboard:" + genre + ":top:" + strconv.Itoa(limit)
}
