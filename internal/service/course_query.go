package service

import (
	"sort"
	"strings"

	"github.com/noah-isme/dive-course-api/internal/models"
)

// applyCourseFilter returns the courses matching filter, ordered by its sort
// key. The input slice is not modified.
func applyCourseFilter(courses []models.Course, filter models.CourseFilter) []models.Course {
	f := filter.Normalize()

	out := make([]models.Course, 0, len(courses))
	for i := range courses {
		if matchesCourse(courses[i], f) {
			out = append(out, courses[i])
		}
	}
	sortCourses(out, f.Sort)
	return out
}

func matchesCourse(c models.Course, f models.CourseFilter) bool {
	location := strings.ToLower(c.Location)
	if f.Location != "" && !strings.Contains(location, strings.ToLower(f.Location)) {
		return false
	}
	if len(f.Areas) > 0 && !containsAny(location, f.Areas) {
		return false
	}
	if f.Type != "" && c.Type != f.Type {
		return false
	}
	if len(f.Levels) > 0 && !containsString(f.Levels, c.Level) {
		return false
	}
	if f.MinPrice != nil && c.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && c.Price > *f.MaxPrice {
		return false
	}
	// f.Date has nothing to match against: courses carry no availability.
	return true
}

// sortCourses orders in place. Recommended keeps repository order; every
// other key breaks ties by id.
func sortCourses(courses []models.Course, key models.SortKey) {
	var less func(a, b models.Course) bool
	switch key {
	case models.SortPriceAsc:
		less = func(a, b models.Course) bool { return a.Price < b.Price }
	case models.SortPriceDesc:
		less = func(a, b models.Course) bool { return a.Price > b.Price }
	case models.SortRatingDesc:
		less = func(a, b models.Course) bool { return a.Rating > b.Rating }
	default:
		return
	}
	sort.SliceStable(courses, func(i, j int) bool {
		a, b := courses[i], courses[j]
		if less(a, b) {
			return true
		}
		if less(b, a) {
			return false
		}
		return a.ID < b.ID
	})
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, strings.ToLower(n)) {
			return true
		}
	}
	return false
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
