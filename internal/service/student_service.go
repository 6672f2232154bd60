package service

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campusware/urms/internal/idgen"
	"github.com/campusware/urms/internal/models"
	appErrors "github.com/campusware/urms/pkg/errors"
)

type studentRepository interface {
	List() ([]models.Student, error)
	FindByID(id string) (*models.Student, error)
	Append(student models.Student) error
	RemoveMatching(identifier string) (int, error)
}

type courseCodeLookup interface {
	FindByCode(code string) (*models.Course, error)
}

type moduleLookup interface {
	FindByID(id string) (*models.Module, error)
}

// AddStudentRequest holds payload for materializing a student record.
type AddStudentRequest struct {
	Name              string   `validate:"required"`
	Phone             string   `validate:"required"`
	Email             string   `validate:"required,email"`
	Address           string   `validate:"required"`
	Age               string   `validate:"required"`
	CourseCode        string   `validate:"required"`
	ModuleIDs         []string `validate:"required,min=1,dive,required"`
	IntakeMonth       string   `validate:"required"`
	RegistrationMonth string   `validate:"required"`
}

// StudentStatistics summarises the student store.
type StudentStatistics struct {
	Total    int
	ByCourse map[string]int
}

// StudentService handles student record use-cases.
type StudentService struct {
	repo      studentRepository
	courses   courseCodeLookup
	modules   moduleLookup
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStudentService constructs the student service.
func NewStudentService(repo studentRepository, courses courseCodeLookup, modules moduleLookup, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{repo: repo, courses: courses, modules: modules, validator: validate, logger: logger}
}

// Add creates a student record with a freshly generated unique ID. The
// course code and every module ID must already exist.
func (s *StudentService) Add(req AddStudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid student details")
	}
	if _, err := s.courses.FindByCode(req.CourseCode); err != nil {
		if appErrors.Is(err, appErrors.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrValidation,
				fmt.Sprintf("course code %q does not exist", req.CourseCode))
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to validate course")
	}
	var invalid []string
	for _, moduleID := range req.ModuleIDs {
		if _, err := s.modules.FindByID(strings.TrimSpace(moduleID)); err != nil {
			if appErrors.Is(err, appErrors.ErrNotFound) {
				invalid = append(invalid, moduleID)
				continue
			}
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to validate modules")
		}
	}
	if len(invalid) > 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation,
			fmt.Sprintf("invalid module IDs: %s", strings.Join(invalid, ", ")))
	}

	existing, err := s.repo.List()
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to read students")
	}
	usedIDs := make(map[string]struct{}, len(existing))
	for _, st := range existing {
		usedIDs[st.ID] = struct{}{}
	}
	id := idgen.StudentID(req.Name, func(candidate string) bool {
		_, used := usedIDs[candidate]
		return used
	})

	moduleIDs := make([]string, 0, len(req.ModuleIDs))
	for _, moduleID := range req.ModuleIDs {
		moduleIDs = append(moduleIDs, strings.TrimSpace(moduleID))
	}
	student := models.Student{
		Name:              req.Name,
		ID:                id,
		CourseCode:        req.CourseCode,
		ModuleIDs:         moduleIDs,
		IntakeMonth:       req.IntakeMonth,
		RegistrationMonth: req.RegistrationMonth,
		Phone:             req.Phone,
		Email:             req.Email,
		Address:           req.Address,
		Age:               req.Age,
	}
	if err := s.repo.Append(student); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to create student")
	}
	s.logger.Info("student added", zap.String("student_id", id), zap.String("course", req.CourseCode))
	return &student, nil
}

// Get returns a student by ID.
func (s *StudentService) Get(id string) (*models.Student, error) {
	student, err := s.repo.FindByID(id)
	if err != nil {
		if appErrors.Is(err, appErrors.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to load student")
	}
	return student, nil
}

// List returns every student record.
func (s *StudentService) List() ([]models.Student, error) {
	students, err := s.repo.List()
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to list students")
	}
	return students, nil
}

// Remove deletes every student whose ID equals or whose name contains the
// identifier and returns how many records were removed.
func (s *StudentService) Remove(identifier string) (int, error) {
	if strings.TrimSpace(identifier) == "" {
		return 0, appErrors.Clone(appErrors.ErrValidation, "identifier cannot be empty")
	}
	removed, err := s.repo.RemoveMatching(identifier)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to remove student")
	}
	if removed == 0 {
		return 0, appErrors.Clone(appErrors.ErrNotFound, "no matching student found")
	}
	s.logger.Info("students removed", zap.String("identifier", identifier), zap.Int("count", removed))
	return removed, nil
}

// Statistics returns the total head count and a per-course breakdown.
func (s *StudentService) Statistics() (*StudentStatistics, error) {
	students, err := s.repo.List()
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to read students")
	}
	stats := &StudentStatistics{Total: len(students), ByCourse: make(map[string]int)}
	for _, student := range students {
		stats.ByCourse[student.CourseCode]++
	}
	return stats, nil
}
