package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/noah-isme/dive-course-api/internal/models"
	appErrors "github.com/noah-isme/dive-course-api/pkg/errors"
)

const (
	searchKeyPrefix = "courses:search:"
	purgeBatchSize  = 100
)

// SearchResultStore keeps JSON encoded search results in Redis. Keys are
// namespaced so Purge never touches anything else in the database.
type SearchResultStore struct {
	client *redis.Client
	logger *zap.Logger
}

// NewSearchResultStore wraps client. A nil client makes every Load a miss.
func NewSearchResultStore(client *redis.Client, logger *zap.Logger) *SearchResultStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SearchResultStore{client: client, logger: logger}
}

// Load returns the courses stored under key or ErrCacheMiss.
func (s *SearchResultStore) Load(ctx context.Context, key string) ([]models.Course, error) {
	if s.client == nil {
		return nil, appErrors.ErrCacheMiss
	}
	raw, err := s.client.Get(ctx, searchKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, appErrors.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("load search result: %w", err)
	}

	var courses []models.Course
	if err := json.Unmarshal(raw, &courses); err != nil {
		return nil, fmt.Errorf("decode search result: %w", err)
	}
	if courses == nil {
		courses = []models.Course{}
	}
	return courses, nil
}

// Save stores courses under key until ttl elapses.
func (s *SearchResultStore) Save(ctx context.Context, key string, courses []models.Course, ttl time.Duration) error {
	if s.client == nil {
		return nil
	}
	if courses == nil {
		courses = []models.Course{}
	}
	payload, err := json.Marshal(courses)
	if err != nil {
		return fmt.Errorf("encode search result: %w", err)
	}
	if err := s.client.Set(ctx, searchKeyPrefix+key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("save search result: %w", err)
	}
	return nil
}

// Purge unlinks every stored search result and reports how many keys went.
func (s *SearchResultStore) Purge(ctx context.Context) (int, error) {
	if s.client == nil {
		return 0, nil
	}

	removed := 0
	batch := make([]string, 0, purgeBatchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		n, err := s.client.Unlink(ctx, batch...).Result()
		if err != nil {
			return fmt.Errorf("unlink search results: %w", err)
		}
		removed += int(n)
		batch = batch[:0]
		return nil
	}

	iter := s.client.Scan(ctx, 0, searchKeyPrefix+"*", purgeBatchSize).Iterator()
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == purgeBatchSize {
			if err := flush(); err != nil {
				return removed, err
			}
		}
	}
	if err := iter.Err(); err != nil {
		return removed, fmt.Errorf("scan search results: %w", err)
	}
	if err := flush(); err != nil {
		return removed, err
	}

	s.logger.Debug("search results purged", zap.Int("count", removed))
	return removed, nil
}

// Close releases the Redis connection.
func (s *SearchResultStore) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}
