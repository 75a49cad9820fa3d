package dto

import (
	"strconv"
	"strings"
	"time"

	"github.com/noah-isme/dive-course-api/internal/models"
)

// CourseSearchQuery is the raw query string of the course search endpoint.
// Every field is kept as text so malformed values can be dropped instead of
// failing the bind.
type CourseSearchQuery struct {
	Location string   `form:"location"`
	Type     string   `form:"type"`
	Date     string   `form:"date"`
	MinPrice string   `form:"minPrice"`
	MaxPrice string   `form:"maxPrice"`
	Level    []string `form:"level"`
	Area     []string `form:"area"`
	Sort     string   `form:"sort"`
}

// ToFilter converts the query into a filter. Values that do not parse are
// treated as absent.
func (q CourseSearchQuery) ToFilter() models.CourseFilter {
	filter := models.CourseFilter{
		Location: q.Location,
		Type:     q.Type,
		Levels:   splitList(q.Level),
		Areas:    splitList(q.Area),
		Sort:     models.ParseSortKey(q.Sort),
		MinPrice: parsePrice(q.MinPrice),
		MaxPrice: parsePrice(q.MaxPrice),
	}
	if d, err := time.Parse("2006-01-02", strings.TrimSpace(q.Date)); err == nil {
		filter.Date = &d
	}
	return filter.Normalize()
}

// splitList accepts both repeated keys and comma-separated values.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func parsePrice(raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return nil
	}
	return &v
}

// SearchFacets lists the options offered by the search box and filter sidebar.
type SearchFacets struct {
	Levels       []string      `json:"levels"`
	Areas        []string      `json:"areas"`
	CourseTypes  []FacetOption `json:"courseTypes"`
	SortOptions  []FacetOption `json:"sortOptions"`
	PriceSlider  PriceRange    `json:"priceSlider"`
	CatalogPrice *PriceRange   `json:"catalogPrice,omitempty"`
	FilterMode   string        `json:"filterMode"`
}

// FacetOption is a value with its display label.
type FacetOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// PriceRange is an inclusive yen interval. Step is only set for the slider.
type PriceRange struct {
	Min  int `json:"min"`
	Max  int `json:"max"`
	Step int `json:"step,omitempty"`
}
