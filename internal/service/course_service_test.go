package service

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/dive-course-api/internal/models"
	"github.com/noah-isme/dive-course-api/internal/repository"
	appErrors "github.com/noah-isme/dive-course-api/pkg/errors"
)

type stubSearchStore struct {
	store   map[string][]byte
	loadErr error
	loads   int
	saves   int
	lastTTL time.Duration
}

func (s *stubSearchStore) Load(_ context.Context, key string) ([]models.Course, error) {
	s.loads++
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	payload, ok := s.store[key]
	if !ok {
		return nil, appErrors.ErrCacheMiss
	}
	var courses []models.Course
	err := json.Unmarshal(payload, &courses)
	return courses, err
}

func (s *stubSearchStore) Save(_ context.Context, key string, courses []models.Course, ttl time.Duration) error {
	s.saves++
	s.lastTTL = ttl
	if s.store == nil {
		s.store = make(map[string][]byte)
	}
	payload, err := json.Marshal(courses)
	if err != nil {
		return err
	}
	s.store[key] = payload
	return nil
}

func (s *stubSearchStore) Purge(context.Context) (int, error) {
	n := len(s.store)
	s.store = nil
	return n, nil
}

func intPtr(v int) *int { return &v }

func ids(courses []models.Course) []string {
	out := make([]string, len(courses))
	for i, c := range courses {
		out[i] = c.ID
	}
	return out
}

func newTestCourseService(t *testing.T, mode models.FilterMode, cache *SearchCache) *CourseService {
	t.Helper()
	repo, err := repository.NewEmbeddedCourseRepository()
	require.NoError(t, err)
	return NewCourseService(repo, cache, NewMetricsService(), zap.NewNop(), CourseServiceConfig{FilterMode: mode})
}

func TestCourseServiceDefaultsToPassthrough(t *testing.T) {
	repo, err := repository.NewEmbeddedCourseRepository()
	require.NoError(t, err)
	svc := NewCourseService(repo, nil, nil, nil, CourseServiceConfig{})
	assert.Equal(t, models.FilterModePassthrough, svc.FilterMode())
}

func TestCourseServicePassthroughIgnoresFilter(t *testing.T) {
	svc := newTestCourseService(t, models.FilterModePassthrough, nil)

	all, hit, err := svc.Search(context.Background(), models.CourseFilter{})
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids(all))

	again, _, err := svc.Search(context.Background(), models.CourseFilter{})
	require.NoError(t, err)
	assert.Equal(t, all, again)

	ranged, _, err := svc.Search(context.Background(), models.CourseFilter{MinPrice: intPtr(0), MaxPrice: intPtr(200000)})
	require.NoError(t, err)
	assert.Len(t, ranged, 5)

	narrow, _, err := svc.Search(context.Background(), models.CourseFilter{
		Location: "沖縄",
		Levels:   []string{"上級者向け"},
		MaxPrice: intPtr(1000),
		Sort:     models.SortPriceDesc,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids(narrow))
}

func TestCourseServiceStrictFiltering(t *testing.T) {
	svc := newTestCourseService(t, models.FilterModeStrict, nil)
	ctx := context.Background()

	cases := []struct {
		name   string
		filter models.CourseFilter
		want   []string
	}{
		{"no constraints", models.CourseFilter{}, []string{"1", "2", "3", "4", "5"}},
		{"full slider range", models.CourseFilter{MinPrice: intPtr(0), MaxPrice: intPtr(200000)}, []string{"1", "2", "3", "4", "5"}},
		{"inclusive price bounds", models.CourseFilter{MinPrice: intPtr(65000), MaxPrice: intPtr(85000)}, []string{"1", "2", "3"}},
		{"min only", models.CourseFilter{MinPrice: intPtr(80000)}, []string{"3", "4"}},
		{"location substring", models.CourseFilter{Location: "伊豆"}, []string{"2"}},
		{"location case insensitive", models.CourseFilter{Location: "ＰＡＤＩ"}, []string{}},
		{"level set", models.CourseFilter{Levels: []string{"初心者向け", "上級者向け"}}, []string{"1", "4", "5"}},
		{"type exact", models.CourseFilter{Type: "rescue"}, []string{"3"}},
		{"type no partial", models.CourseFilter{Type: "resc"}, []string{}},
		{"areas any", models.CourseFilter{Areas: []string{"沖縄", "慶良間"}}, []string{"1", "5"}},
		{"combined", models.CourseFilter{Levels: []string{"中級者向け"}, MaxPrice: intPtr(80000)}, []string{"2"}},
		{"no match is empty", models.CourseFilter{Location: "北海道"}, []string{}},
		{"inverted range ignored", models.CourseFilter{MinPrice: intPtr(100000), MaxPrice: intPtr(10)}, []string{"1", "2", "3", "4", "5"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, _, err := svc.Search(ctx, tc.filter)
			require.NoError(t, err)
			assert.NotNil(t, got)
			assert.Equal(t, tc.want, ids(got))
		})
	}
}

func TestCourseServiceStrictDateIsNotAConstraint(t *testing.T) {
	svc := newTestCourseService(t, models.FilterModeStrict, nil)
	d := time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)

	got, _, err := svc.Search(context.Background(), models.CourseFilter{Date: &d})
	require.NoError(t, err)
	assert.Len(t, got, 5)
}

func TestCourseServiceStrictSorting(t *testing.T) {
	svc := newTestCourseService(t, models.FilterModeStrict, nil)
	ctx := context.Background()

	cases := map[models.SortKey][]string{
		models.SortRecommended: {"1", "2", "3", "4", "5"},
		models.SortPriceAsc:    {"5", "1", "2", "3", "4"},
		models.SortPriceDesc:   {"4", "3", "2", "1", "5"},
		// 3 and 5 tie on 4.9, 1 and 4 tie on 4.8; ties resolve by id.
		models.SortRatingDesc: {"3", "5", "1", "4", "2"},
	}
	for key, want := range cases {
		got, _, err := svc.Search(ctx, models.CourseFilter{Sort: key})
		require.NoError(t, err)
		assert.Equal(t, want, ids(got), string(key))
	}
}

func TestSortCoursesTieBreakByID(t *testing.T) {
	courses := []models.Course{
		{ID: "c", Price: 100},
		{ID: "a", Price: 100},
		{ID: "b", Price: 50},
	}
	sortCourses(courses, models.SortPriceAsc)
	assert.Equal(t, []string{"b", "a", "c"}, ids(courses))

	sortCourses(courses, models.SortPriceDesc)
	assert.Equal(t, []string{"a", "c", "b"}, ids(courses))
}

func TestCourseServiceSearchCaching(t *testing.T) {
	store := &stubSearchStore{}
	cache := NewSearchCache(store, nil, 30*time.Second, zap.NewNop())
	svc := newTestCourseService(t, models.FilterModeStrict, cache)
	ctx := context.Background()
	filter := models.CourseFilter{Levels: []string{"中級者向け"}, Sort: models.SortPriceDesc}

	first, hit, err := svc.Search(ctx, filter)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, 1, store.saves)
	assert.Equal(t, 30*time.Second, store.lastTTL)

	second, hit, err := svc.Search(ctx, models.CourseFilter{Levels: []string{" 中級者向け "}, Sort: "price-desc"})
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, 1, store.saves)
	assert.Equal(t, first, second)
	assert.Equal(t, []string{"3", "2"}, ids(second))
}

func TestCourseServiceSearchCacheFailureFallsBack(t *testing.T) {
	store := &stubSearchStore{loadErr: assert.AnError}
	svc := newTestCourseService(t, models.FilterModeStrict, NewSearchCache(store, nil, time.Minute, nil))

	got, hit, err := svc.Search(context.Background(), models.CourseFilter{Type: "trial"})
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, []string{"5"}, ids(got))
}

func TestCourseServicePassthroughSkipsCache(t *testing.T) {
	store := &stubSearchStore{}
	svc := newTestCourseService(t, models.FilterModePassthrough, NewSearchCache(store, nil, time.Minute, nil))

	_, _, err := svc.Search(context.Background(), models.CourseFilter{Type: "trial"})
	require.NoError(t, err)
	assert.Zero(t, store.loads)
	assert.Zero(t, store.saves)
}

func TestCourseServiceGet(t *testing.T) {
	svc := newTestCourseService(t, models.FilterModePassthrough, nil)

	course, err := svc.Get(context.Background(), "3")
	require.NoError(t, err)
	assert.Equal(t, "レスキューダイバーコース", course.Title)
	assert.Equal(t, 85000, course.Price)

	_, err = svc.Get(context.Background(), "nonexistent-999")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
	assert.Equal(t, "course not found", appErr.Message)
}

func TestCourseServiceRelatedAndFeatured(t *testing.T) {
	svc := newTestCourseService(t, models.FilterModePassthrough, nil)

	related, err := svc.Related(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "3", "4", "5"}, ids(related))

	featured, err := svc.Featured(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, ids(featured))
}

func TestCourseServiceFacets(t *testing.T) {
	svc := newTestCourseService(t, models.FilterModeStrict, nil)

	facets := svc.Facets(context.Background())
	assert.Equal(t, []string{"初心者向け", "中級者向け", "上級者向け"}, facets.Levels)
	assert.Len(t, facets.Areas, 5)
	assert.Len(t, facets.SortOptions, 4)
	assert.Equal(t, 200000, facets.PriceSlider.Max)
	assert.Equal(t, 5000, facets.PriceSlider.Step)
	require.NotNil(t, facets.CatalogPrice)
	assert.Equal(t, 15000, facets.CatalogPrice.Min)
	assert.Equal(t, 180000, facets.CatalogPrice.Max)
	assert.Equal(t, "strict", facets.FilterMode)

	// Returned option slices are copies.
	facets.Levels[0] = "changed"
	assert.Equal(t, "初心者向け", svc.Facets(context.Background()).Levels[0])
}
