package models

import "time"

// ServiceMetrics is a point-in-time summary of process counters.
type ServiceMetrics struct {
	CatalogCourses           int       `json:"catalog_courses"`
	CacheHitRatio            float64   `json:"cache_hit_ratio"`
	CacheHits                uint64    `json:"cache_hits"`
	CacheMisses              uint64    `json:"cache_misses"`
	RequestsTotal            uint64    `json:"requests_total"`
	AverageRequestDurationMs float64   `json:"avg_request_duration_ms"`
	Searches                 uint64    `json:"searches"`
	EmptySearches            uint64    `json:"empty_searches"`
	Goroutines               int       `json:"goroutines"`
	GeneratedAt              time.Time `json:"generated_at"`
}
