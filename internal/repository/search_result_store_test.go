package repository

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/dive-course-api/internal/models"
	appErrors "github.com/noah-isme/dive-course-api/pkg/errors"
)

func TestSearchResultStoreWithoutClient(t *testing.T) {
	store := NewSearchResultStore(nil, nil)
	ctx := context.Background()

	_, err := store.Load(ctx, "loc=")
	assert.ErrorIs(t, err, appErrors.ErrCacheMiss)
	assert.NoError(t, store.Save(ctx, "loc=", []models.Course{{ID: "1"}}, 0))
	removed, err := store.Purge(ctx)
	assert.NoError(t, err)
	assert.Zero(t, removed)
	assert.NoError(t, store.Close())
}

// Nothing listens on port 1, so every command fails at dial time.
func newUnreachableStore(t *testing.T) *SearchResultStore {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	return NewSearchResultStore(client, nil)
}

func TestSearchResultStoreSurfacesRedisErrors(t *testing.T) {
	store := newUnreachableStore(t)
	ctx := context.Background()

	_, err := store.Load(ctx, "loc=")
	require.Error(t, err)
	assert.NotErrorIs(t, err, appErrors.ErrCacheMiss)
	assert.Contains(t, err.Error(), "load search result")

	err = store.Save(ctx, "loc=", []models.Course{{ID: "1"}}, time.Minute)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "save search result")

	removed, err := store.Purge(ctx)
	require.Error(t, err)
	assert.Zero(t, removed)
	assert.Contains(t, err.Error(), "scan search results")

	assert.NoError(t, store.Close())
}
