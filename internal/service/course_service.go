package service

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campusware/urms/internal/idgen"
	"github.com/campusware/urms/internal/models"
	appErrors "github.com/campusware/urms/pkg/errors"
)

type courseRepository interface {
	List() ([]models.Course, error)
	FindByCode(code string) (*models.Course, error)
	Append(course models.Course) error
	ReplaceAll(courses []models.Course) error
}

// AddCourseRequest holds payload for creating a course.
type AddCourseRequest struct {
	Name               string `validate:"required"`
	Details            string `validate:"required"`
	UniversityInitials string `validate:"required"`
}

// CourseSearchResult carries matches or, failing that, close suggestions.
type CourseSearchResult struct {
	Matches     []models.Course
	Suggestions []string
}

// CourseService handles course catalogue use-cases.
type CourseService struct {
	repo      courseRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCourseService constructs the course service.
func NewCourseService(repo courseRepository, validate *validator.Validate, logger *zap.Logger) *CourseService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseService{repo: repo, validator: validate, logger: logger}
}

// Add creates a course with a generated, collision-checked code.
func (s *CourseService) Add(req AddCourseRequest) (*models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid course details")
	}
	code := idgen.CourseCode(req.Name, req.UniversityInitials, func(candidate string) bool {
		_, err := s.repo.FindByCode(candidate)
		return err == nil
	})
	course := models.Course{Code: code, Name: req.Name, Details: req.Details}
	if err := s.repo.Append(course); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to create course")
	}
	s.logger.Info("course added", zap.String("code", code), zap.String("name", req.Name))
	return &course, nil
}

// List returns every course in catalogue order.
func (s *CourseService) List() ([]models.Course, error) {
	courses, err := s.repo.List()
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to list courses")
	}
	return courses, nil
}

// Update changes the name and/or details of a course; empty values keep the
// current ones.
func (s *CourseService) Update(code, newName, newDetails string) (*models.Course, error) {
	if strings.TrimSpace(code) == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "course code cannot be empty")
	}
	courses, err := s.repo.List()
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to read courses")
	}
	var updated *models.Course
	for i := range courses {
		if courses[i].Code != code {
			continue
		}
		if newName != "" {
			courses[i].Name = newName
		}
		if newDetails != "" {
			courses[i].Details = newDetails
		}
		updated = &courses[i]
		break
	}
	if updated == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}
	if err := s.repo.ReplaceAll(courses); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to update course")
	}
	s.logger.Info("course updated", zap.String("code", code))
	return updated, nil
}

// FindMatches returns the courses whose code or name contains the
// identifier; the removal flow shows these before asking for confirmation.
func (s *CourseService) FindMatches(identifier string) ([]models.Course, error) {
	courses, err := s.repo.List()
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to read courses")
	}
	return matchCourses(courses, identifier), nil
}

// Remove deletes every course whose code or name contains the identifier and
// returns how many were removed.
func (s *CourseService) Remove(identifier string) (int, error) {
	if strings.TrimSpace(identifier) == "" {
		return 0, appErrors.Clone(appErrors.ErrValidation, "identifier cannot be empty")
	}
	courses, err := s.repo.List()
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to read courses")
	}
	matches := matchCourses(courses, identifier)
	if len(matches) == 0 {
		return 0, appErrors.Clone(appErrors.ErrNotFound, "no matching course found")
	}
	matched := make(map[string]struct{}, len(matches))
	for _, course := range matches {
		matched[course.Code] = struct{}{}
	}
	kept := make([]models.Course, 0, len(courses))
	for _, course := range courses {
		if _, ok := matched[course.Code]; ok {
			continue
		}
		kept = append(kept, course)
	}
	if err := s.repo.ReplaceAll(kept); err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to remove course")
	}
	s.logger.Info("courses removed", zap.String("identifier", identifier), zap.Int("count", len(matches)))
	return len(matches), nil
}

// Search finds courses by case-insensitive name substring. When nothing
// matches it offers up to three suggestions based on partial similarity.
func (s *CourseService) Search(term string) (*CourseSearchResult, error) {
	if strings.TrimSpace(term) == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "search term cannot be empty")
	}
	courses, err := s.repo.List()
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to read courses")
	}
	lowered := strings.ToLower(term)
	result := &CourseSearchResult{}
	for _, course := range courses {
		if strings.Contains(strings.ToLower(course.Name), lowered) {
			result.Matches = append(result.Matches, course)
		}
	}
	if len(result.Matches) > 0 {
		return result, nil
	}
	prefix := lowered
	if len(prefix) > 2 {
		prefix = prefix[:2]
	}
	for _, course := range courses {
		name := strings.ToLower(course.Name)
		if strings.Contains(name, lowered) || strings.HasPrefix(name, prefix) {
			result.Suggestions = append(result.Suggestions, course.Name)
			if len(result.Suggestions) == 3 {
				break
			}
		}
	}
	return result, nil
}

func matchCourses(courses []models.Course, identifier string) []models.Course {
	lowered := strings.ToLower(identifier)
	var matches []models.Course
	for _, course := range courses {
		if strings.Contains(strings.ToLower(course.Code), lowered) ||
			strings.Contains(strings.ToLower(course.Name), lowered) {
			matches = append(matches, course)
		}
	}
	return matches
}
