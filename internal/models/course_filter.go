package models

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// SortKey orders search results.
type SortKey string

const (
	SortRecommended SortKey = "recommended"
	SortPriceAsc    SortKey = "price-asc"
	SortPriceDesc   SortKey = "price-desc"
	SortRatingDesc  SortKey = "rating-desc"
)

// SortKeys lists the accepted sort options in display order.
var SortKeys = []SortKey{SortRecommended, SortPriceAsc, SortPriceDesc, SortRatingDesc}

// ParseSortKey maps raw input to a known key. Unknown input means recommended.
func ParseSortKey(raw string) SortKey {
	key := SortKey(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range SortKeys {
		if key == known {
			return key
		}
	}
	return SortRecommended
}

// FilterMode decides whether search constraints are enforced.
type FilterMode string

const (
	// FilterModePassthrough accepts every constraint and returns the full catalog.
	FilterModePassthrough FilterMode = "passthrough"
	// FilterModeStrict applies predicates and ordering.
	FilterModeStrict FilterMode = "strict"
)

// ParseFilterMode falls back to passthrough for anything but "strict".
func ParseFilterMode(raw string) FilterMode {
	if FilterMode(strings.ToLower(strings.TrimSpace(raw))) == FilterModeStrict {
		return FilterModeStrict
	}
	return FilterModePassthrough
}

// CourseFilter captures the search constraints. Zero values impose nothing.
type CourseFilter struct {
	Location string
	Areas    []string
	Type     string
	Date     *time.Time
	MinPrice *int
	MaxPrice *int
	Levels   []string
	Sort     SortKey
}

// Normalize trims input and drops values that cannot constrain anything:
// negative bounds, an inverted price range, and blank list entries.
func (f CourseFilter) Normalize() CourseFilter {
	out := CourseFilter{
		Location: strings.TrimSpace(f.Location),
		Areas:    compactStrings(f.Areas),
		Type:     strings.TrimSpace(f.Type),
		Date:     f.Date,
		Levels:   compactStrings(f.Levels),
		Sort:     ParseSortKey(string(f.Sort)),
	}
	if f.MinPrice != nil && *f.MinPrice >= 0 {
		v := *f.MinPrice
		out.MinPrice = &v
	}
	if f.MaxPrice != nil && *f.MaxPrice >= 0 {
		v := *f.MaxPrice
		out.MaxPrice = &v
	}
	if out.MinPrice != nil && out.MaxPrice != nil && *out.MinPrice > *out.MaxPrice {
		out.MinPrice, out.MaxPrice = nil, nil
	}
	return out
}

// IsZero reports whether the filter constrains nothing.
func (f CourseFilter) IsZero() bool {
	n := f.Normalize()
	return n.Location == "" && len(n.Areas) == 0 && n.Type == "" && n.Date == nil &&
		n.MinPrice == nil && n.MaxPrice == nil && len(n.Levels) == 0 && n.Sort == SortRecommended
}

// CacheKey renders a canonical form of the normalized filter. List values
// are sorted so equal sets share a key.
func (f CourseFilter) CacheKey() string {
	n := f.Normalize()
	parts := []string{
		"loc=" + strings.ToLower(n.Location),
		"area=" + strings.Join(sortedLower(n.Areas), ","),
		"type=" + n.Type,
		"date=" + formatDate(n.Date),
		"min=" + formatInt(n.MinPrice),
		"max=" + formatInt(n.MaxPrice),
		"level=" + strings.Join(sortedLower(n.Levels), ","),
		"sort=" + string(n.Sort),
	}
	return strings.Join(parts, "|")
}

func compactStrings(values []string) []string {
	var out []string
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func sortedLower(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.ToLower(v)
	}
	sort.Strings(out)
	return out
}

func formatDate(d *time.Time) string {
	if d == nil {
		return ""
	}
	return d.Format("2006-01-02")
}

func formatInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
