package repository

import (
	"strings"

	"go.uber.org/zap"

	"github.com/campusware/urms/internal/models"
	"github.com/campusware/urms/internal/textdb"
	appErrors "github.com/campusware/urms/pkg/errors"
)

// CourseRepository manages persistence for course records.
type CourseRepository struct {
	store  *textdb.Store
	logger *zap.Logger
}

// NewCourseRepository constructs a CourseRepository.
func NewCourseRepository(store *textdb.Store, logger *zap.Logger) *CourseRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseRepository{store: store, logger: logger}
}

// List returns all well-formed course records in file order. Malformed lines
// are logged and skipped.
func (r *CourseRepository) List() ([]models.Course, error) {
	lines, err := r.store.ReadLines(textdb.Courses)
	if err != nil {
		return nil, err
	}
	courses := make([]models.Course, 0, len(lines))
	for _, line := range lines {
		course, err := models.ParseCourse(line)
		if err != nil {
			r.logger.Warn("malformed course line skipped", zap.Error(err))
			continue
		}
		courses = append(courses, course)
	}
	return courses, nil
}

// FindByCode fetches a course by its code.
func (r *CourseRepository) FindByCode(code string) (*models.Course, error) {
	courses, err := r.List()
	if err != nil {
		return nil, err
	}
	for i := range courses {
		if courses[i].Code == code {
			return &courses[i], nil
		}
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
}

// FindByName fetches a course by its exact name.
func (r *CourseRepository) FindByName(name string) (*models.Course, error) {
	courses, err := r.List()
	if err != nil {
		return nil, err
	}
	for i := range courses {
		if strings.EqualFold(courses[i].Name, name) {
			return &courses[i], nil
		}
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
}

// Append adds a course record.
func (r *CourseRepository) Append(course models.Course) error {
	return r.store.Append(textdb.Courses, course.Record())
}

// ReplaceAll rewrites the course file with the given records.
func (r *CourseRepository) ReplaceAll(courses []models.Course) error {
	lines := make([]string, 0, len(courses))
	for _, course := range courses {
		lines = append(lines, course.Record())
	}
	return r.store.Overwrite(textdb.Courses, lines)
}
