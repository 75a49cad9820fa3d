package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/dive-course-api/internal/dto"
	"github.com/noah-isme/dive-course-api/internal/models"
	appErrors "github.com/noah-isme/dive-course-api/pkg/errors"
)

type courseRepository interface {
	All() []models.Course
	FindByID(id string) (models.Course, bool)
	Related(currentID string) []models.Course
	Featured() []models.Course
}

// CourseServiceConfig tunes the course service.
type CourseServiceConfig struct {
	FilterMode models.FilterMode
}

// CourseService answers catalog queries from the in-memory snapshot.
type CourseService struct {
	repo    courseRepository
	cache   *SearchCache
	metrics *MetricsService
	logger  *zap.Logger
	cfg     CourseServiceConfig
}

// NewCourseService constructs the course service. cache and metrics may be nil.
func NewCourseService(repo courseRepository, cache *SearchCache, metrics *MetricsService, logger *zap.Logger, cfg CourseServiceConfig) *CourseService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.FilterMode == "" {
		cfg.FilterMode = models.FilterModePassthrough
	}
	return &CourseService{repo: repo, cache: cache, metrics: metrics, logger: logger, cfg: cfg}
}

// FilterMode reports whether search constraints are enforced.
func (s *CourseService) FilterMode() models.FilterMode {
	return s.cfg.FilterMode
}

// Search returns the courses for filter. In passthrough mode the filter is
// accepted but ignored. The boolean reports a cache hit. An empty result is
// not an error.
func (s *CourseService) Search(ctx context.Context, filter models.CourseFilter) ([]models.Course, bool, error) {
	filter = filter.Normalize()

	if s.cfg.FilterMode == models.FilterModePassthrough {
		courses := s.repo.All()
		s.metrics.ObserveSearch(s.cfg.FilterMode, len(courses))
		return courses, false, nil
	}

	if cached, ok := s.cache.Lookup(ctx, filter); ok {
		s.metrics.ObserveSearch(s.cfg.FilterMode, len(cached))
		return cached, true, nil
	}

	courses := applyCourseFilter(s.repo.All(), filter)
	s.metrics.ObserveSearch(s.cfg.FilterMode, len(courses))
	s.logger.Debug("course search",
		zap.String("filter", filter.CacheKey()),
		zap.Int("results", len(courses)),
	)

	s.cache.Remember(ctx, filter, courses)
	return courses, false, nil
}

// Get returns the course with id or a NOT_FOUND error.
func (s *CourseService) Get(ctx context.Context, id string) (*models.Course, error) {
	course, ok := s.repo.FindByID(id)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}
	return &course, nil
}

// Related returns the courses listed next to id.
func (s *CourseService) Related(ctx context.Context, id string) ([]models.Course, error) {
	return s.repo.Related(id), nil
}

// Featured returns the landing-page courses.
func (s *CourseService) Featured(ctx context.Context) ([]models.Course, error) {
	return s.repo.Featured(), nil
}

// Facets describes the filter options together with the snapshot's price span.
func (s *CourseService) Facets(ctx context.Context) dto.SearchFacets {
	facets := dto.SearchFacets{
		Levels:      append([]string(nil), courseLevels...),
		Areas:       append([]string(nil), courseAreas...),
		CourseTypes: append([]dto.FacetOption(nil), courseTypeOptions...),
		SortOptions: append([]dto.FacetOption(nil), sortOptions...),
		PriceSlider: dto.PriceRange{Min: 0, Max: 200000, Step: 5000},
		FilterMode:  string(s.cfg.FilterMode),
	}

	courses := s.repo.All()
	if len(courses) > 0 {
		span := dto.PriceRange{Min: courses[0].Price, Max: courses[0].Price}
		for _, c := range courses[1:] {
			if c.Price < span.Min {
				span.Min = c.Price
			}
			if c.Price > span.Max {
				span.Max = c.Price
			}
		}
		facets.CatalogPrice = &span
	}
	return facets
}

var (
	courseLevels = []string{"初心者向け", "中級者向け", "上級者向け"}
	courseAreas  = []string{"沖縄", "伊豆", "小笠原", "慶良間", "石垣島"}

	courseTypeOptions = []dto.FacetOption{
		{Value: "open-water", Label: "オープンウォーター"},
		{Value: "advanced", Label: "アドバンス"},
		{Value: "rescue", Label: "レスキュー"},
		{Value: "dive-master", Label: "ダイブマスター"},
		{Value: "trial", Label: "体験ダイビング"},
	}

	sortOptions = []dto.FacetOption{
		{Value: string(models.SortRecommended), Label: "おすすめ順"},
		{Value: string(models.SortPriceAsc), Label: "料金が安い順"},
		{Value: string(models.SortPriceDesc), Label: "料金が高い順"},
		{Value: string(models.SortRatingDesc), Label: "評価が高い順"},
	}
)
