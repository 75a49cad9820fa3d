package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/dive-course-api/pkg/config"
)

func TestNewSearchCacheDisabledByConfig(t *testing.T) {
	cfg := &config.Config{Search: config.SearchConfig{CacheEnabled: false}}

	searchCache, closeCache := newSearchCache(cfg, nil, zap.NewNop())
	require.NotNil(t, closeCache)
	assert.False(t, searchCache.Enabled())
	assert.NoError(t, closeCache())
}

func TestNewSearchCacheFallsBackWhenRedisIsDown(t *testing.T) {
	cfg := &config.Config{
		Search: config.SearchConfig{CacheEnabled: true},
		Redis:  config.RedisConfig{Host: "127.0.0.1", Port: 1},
	}

	searchCache, closeCache := newSearchCache(cfg, nil, zap.NewNop())
	assert.False(t, searchCache.Enabled())
	assert.NoError(t, closeCache())
}

func TestLoadCatalogEmbedded(t *testing.T) {
	cfg := &config.Config{Catalog: config.CatalogConfig{Source: config.CatalogSourceEmbedded}}

	catalog, err := loadCatalog(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, catalog.Len())
}
