package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/dive-course-api/internal/models"
)

func TestCourseSearchQueryToFilter(t *testing.T) {
	q := CourseSearchQuery{
		Location: " 沖縄 ",
		Type:     "open-water",
		Date:     "2024-08-01",
		MinPrice: "10000",
		MaxPrice: "90000",
		Level:    []string{"初心者向け,中級者向け", "上級者向け"},
		Area:     []string{"沖縄", " 伊豆 ,"},
		Sort:     "PRICE-ASC",
	}

	f := q.ToFilter()
	assert.Equal(t, "沖縄", f.Location)
	assert.Equal(t, "open-water", f.Type)
	assert.Equal(t, []string{"初心者向け", "中級者向け", "上級者向け"}, f.Levels)
	assert.Equal(t, []string{"沖縄", "伊豆"}, f.Areas)
	assert.Equal(t, models.SortPriceAsc, f.Sort)
	require.NotNil(t, f.MinPrice)
	require.NotNil(t, f.MaxPrice)
	assert.Equal(t, 10000, *f.MinPrice)
	assert.Equal(t, 90000, *f.MaxPrice)
	require.NotNil(t, f.Date)
	assert.True(t, f.Date.Equal(time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)))
}

func TestCourseSearchQueryDropsInvalidValues(t *testing.T) {
	cases := []struct {
		name  string
		query CourseSearchQuery
		check func(t *testing.T, f models.CourseFilter)
	}{
		{
			name:  "non numeric price",
			query: CourseSearchQuery{MinPrice: "abc", MaxPrice: "1e5"},
			check: func(t *testing.T, f models.CourseFilter) {
				assert.Nil(t, f.MinPrice)
				assert.Nil(t, f.MaxPrice)
			},
		},
		{
			name:  "negative price",
			query: CourseSearchQuery{MinPrice: "-1", MaxPrice: "50000"},
			check: func(t *testing.T, f models.CourseFilter) {
				assert.Nil(t, f.MinPrice)
				require.NotNil(t, f.MaxPrice)
				assert.Equal(t, 50000, *f.MaxPrice)
			},
		},
		{
			name:  "inverted range",
			query: CourseSearchQuery{MinPrice: "90000", MaxPrice: "10000"},
			check: func(t *testing.T, f models.CourseFilter) {
				assert.Nil(t, f.MinPrice)
				assert.Nil(t, f.MaxPrice)
			},
		},
		{
			name:  "bad date",
			query: CourseSearchQuery{Date: "08/01/2024"},
			check: func(t *testing.T, f models.CourseFilter) {
				assert.Nil(t, f.Date)
			},
		},
		{
			name:  "unknown sort",
			query: CourseSearchQuery{Sort: "newest"},
			check: func(t *testing.T, f models.CourseFilter) {
				assert.Equal(t, models.SortRecommended, f.Sort)
			},
		},
		{
			name:  "blank lists",
			query: CourseSearchQuery{Level: []string{"", " , "}},
			check: func(t *testing.T, f models.CourseFilter) {
				assert.Empty(t, f.Levels)
				assert.True(t, f.IsZero())
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.check(t, tc.query.ToFilter())
		})
	}
}
