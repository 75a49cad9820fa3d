package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/types"
	"github.com/lib/pq"

	"github.com/noah-isme/dive-course-api/internal/models"
)

// courseRow mirrors the courses table. Nested collections are stored as
// text[] and jsonb columns.
type courseRow struct {
	models.Course
	GalleryImages pq.StringArray `db:"gallery_images"`
	Includes      pq.StringArray `db:"includes"`
	Schedule      types.JSONText `db:"schedule"`
	Instructor    types.JSONText `db:"instructor"`
	Reviews       types.JSONText `db:"reviews"`
	Featured      bool           `db:"featured"`
}

func (r courseRow) toModel() (models.Course, error) {
	course := r.Course
	course.GalleryImages = []string(r.GalleryImages)
	course.Includes = []string(r.Includes)
	if err := decodeJSON(r.Schedule, &course.Schedule); err != nil {
		return models.Course{}, fmt.Errorf("decode schedule: %w", err)
	}
	if err := decodeJSON(r.Instructor, &course.Instructor); err != nil {
		return models.Course{}, fmt.Errorf("decode instructor: %w", err)
	}
	if err := decodeJSON(r.Reviews, &course.Reviews); err != nil {
		return models.Course{}, fmt.Errorf("decode reviews: %w", err)
	}
	return course, nil
}

// decodeJSON leaves dest untouched for NULL columns, which sqlx scans as "{}".
func decodeJSON(raw types.JSONText, dest interface{}) error {
	switch strings.TrimSpace(string(raw)) {
	case "", "null", "{}":
		return nil
	}
	return raw.Unmarshal(dest)
}

// CoursePGLoader reads the catalog snapshot from PostgreSQL. It is used once
// at start-up; the service never queries the database per request.
type CoursePGLoader struct {
	db *sqlx.DB
}

// NewCoursePGLoader creates a loader bound to db.
func NewCoursePGLoader(db *sqlx.DB) *CoursePGLoader {
	return &CoursePGLoader{db: db}
}

const selectCatalogQuery = `SELECT id, title, course_type, description, full_description, image, gallery_images, price, location, duration, level, rating, review_count, is_popular, includes, certification, schedule, instructor, reviews, featured FROM courses ORDER BY position ASC, id ASC`

// Load returns every course in catalog order together with the featured ids.
func (l *CoursePGLoader) Load(ctx context.Context) ([]models.Course, []string, error) {
	var rows []courseRow
	if err := l.db.SelectContext(ctx, &rows, selectCatalogQuery); err != nil {
		return nil, nil, fmt.Errorf("select courses: %w", err)
	}

	courses := make([]models.Course, 0, len(rows))
	var featured []string
	for _, row := range rows {
		course, err := row.toModel()
		if err != nil {
			return nil, nil, fmt.Errorf("course %q: %w", row.ID, err)
		}
		courses = append(courses, course)
		if row.Featured {
			featured = append(featured, course.ID)
		}
	}
	return courses, featured, nil
}

// NewPostgresCourseRepository loads and freezes the snapshot stored in PostgreSQL.
func NewPostgresCourseRepository(ctx context.Context, db *sqlx.DB, validate *validator.Validate) (*CourseRepository, error) {
	courses, featured, err := NewCoursePGLoader(db).Load(ctx)
	if err != nil {
		return nil, err
	}
	return NewCourseRepository(courses, featured, validate)
}
