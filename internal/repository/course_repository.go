package repository

import (
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/dive-course-api/internal/models"
)

// RelatedCoursesLimit caps the related list shown next to a course.
const RelatedCoursesLimit = 4

// CourseRepository holds the immutable course snapshot. After construction it
// is never written, so concurrent readers need no locking. Every read returns
// deep copies.
type CourseRepository struct {
	courses  []models.Course
	index    map[string]int
	featured []int
}

// NewCourseRepository validates the records and freezes them in dataset order.
// featuredIDs that do not match any course are ignored.
func NewCourseRepository(courses []models.Course, featuredIDs []string, validate *validator.Validate) (*CourseRepository, error) {
	if validate == nil {
		validate = validator.New()
	}

	repo := &CourseRepository{
		courses: make([]models.Course, 0, len(courses)),
		index:   make(map[string]int, len(courses)),
	}
	for i := range courses {
		course := courses[i]
		if err := validate.Struct(course); err != nil {
			return nil, fmt.Errorf("course #%d (%q): %w", i, course.ID, err)
		}
		if _, dup := repo.index[course.ID]; dup {
			return nil, fmt.Errorf("duplicate course id %q", course.ID)
		}
		repo.index[course.ID] = len(repo.courses)
		repo.courses = append(repo.courses, course.Clone())
	}

	seen := make(map[int]struct{}, len(featuredIDs))
	for _, id := range featuredIDs {
		pos, ok := repo.index[id]
		if !ok {
			continue
		}
		if _, dup := seen[pos]; dup {
			continue
		}
		seen[pos] = struct{}{}
		repo.featured = append(repo.featured, pos)
	}
	sort.Ints(repo.featured)

	return repo, nil
}

// Len returns the number of courses in the snapshot.
func (r *CourseRepository) Len() int {
	return len(r.courses)
}

// All returns every course in dataset order.
func (r *CourseRepository) All() []models.Course {
	return models.CloneCourses(r.courses)
}

// FindByID looks a course up by exact id. The boolean is false when absent.
func (r *CourseRepository) FindByID(id string) (models.Course, bool) {
	pos, ok := r.index[id]
	if !ok {
		return models.Course{}, false
	}
	return r.courses[pos].Clone(), true
}

// Related returns up to RelatedCoursesLimit courses other than currentID, in
// dataset order. It does not rank by similarity.
func (r *CourseRepository) Related(currentID string) []models.Course {
	out := make([]models.Course, 0, RelatedCoursesLimit)
	for i := range r.courses {
		if len(out) == RelatedCoursesLimit {
			break
		}
		if r.courses[i].ID == currentID {
			continue
		}
		out = append(out, r.courses[i].Clone())
	}
	return out
}

// Featured returns the landing-page courses in dataset order.
func (r *CourseRepository) Featured() []models.Course {
	out := make([]models.Course, 0, len(r.featured))
	for _, pos := range r.featured {
		out = append(out, r.courses[pos].Clone())
	}
	return out
}
