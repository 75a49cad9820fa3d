package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/dive-course-api/internal/models"
	appErrors "github.com/noah-isme/dive-course-api/pkg/errors"
)

const defaultSearchCacheTTL = 5 * time.Minute

type searchResultStore interface {
	Load(ctx context.Context, key string) ([]models.Course, error)
	Save(ctx context.Context, key string, courses []models.Course, ttl time.Duration) error
	Purge(ctx context.Context) (int, error)
}

// SearchCache memoises strict-mode search results keyed by the canonical
// filter. Store failures degrade to a miss and are never returned to callers.
type SearchCache struct {
	store   searchResultStore
	metrics *MetricsService
	ttl     time.Duration
	logger  *zap.Logger
}

// NewSearchCache builds a cache over store. A nil store disables caching.
func NewSearchCache(store searchResultStore, metrics *MetricsService, ttl time.Duration, logger *zap.Logger) *SearchCache {
	if ttl <= 0 {
		ttl = defaultSearchCacheTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SearchCache{store: store, metrics: metrics, ttl: ttl, logger: logger}
}

// Enabled reports whether lookups reach a store.
func (c *SearchCache) Enabled() bool {
	return c != nil && c.store != nil
}

// Lookup returns the cached result for filter, if any.
func (c *SearchCache) Lookup(ctx context.Context, filter models.CourseFilter) ([]models.Course, bool) {
	if !c.Enabled() {
		return nil, false
	}
	key := filter.CacheKey()
	start := time.Now()
	courses, err := c.store.Load(ctx, key)
	hit := err == nil
	c.metrics.RecordCacheOperation(hit, time.Since(start))
	if err != nil && !errors.Is(err, appErrors.ErrCacheMiss) {
		c.logger.Warn("search cache lookup failed", zap.String("key", key), zap.Error(err))
	}
	return courses, hit
}

// Remember stores courses as the result for filter.
func (c *SearchCache) Remember(ctx context.Context, filter models.CourseFilter, courses []models.Course) {
	if !c.Enabled() {
		return
	}
	key := filter.CacheKey()
	start := time.Now()
	err := c.store.Save(ctx, key, courses, c.ttl)
	c.metrics.ObserveCacheWrite(time.Since(start))
	if err != nil {
		c.logger.Warn("search cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// Purge drops every cached result. Call it whenever a new snapshot is loaded.
func (c *SearchCache) Purge(ctx context.Context) error {
	if !c.Enabled() {
		return nil
	}
	removed, err := c.store.Purge(ctx)
	if err != nil {
		return err
	}
	c.logger.Info("search cache purged", zap.Int("removed", removed))
	return nil
}
