package service

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campusware/urms/internal/models"
	appErrors "github.com/campusware/urms/pkg/errors"
)

type enrollmentRepository interface {
	ByModule(moduleID string) ([]models.Enrollment, error)
	Exists(moduleID, studentID string) (bool, error)
	Append(enrollment models.Enrollment) error
	Remove(moduleID, studentID string) (bool, error)
}

// EnrollmentService links students to modules.
type EnrollmentService struct {
	repo      enrollmentRepository
	modules   moduleLookup
	students  studentLookup
	validator *validator.Validate
	logger    *zap.Logger
}

type studentLookup interface {
	FindByID(id string) (*models.Student, error)
}

// NewEnrollmentService constructs the enrollment service.
func NewEnrollmentService(repo enrollmentRepository, modules moduleLookup, students studentLookup, validate *validator.Validate, logger *zap.Logger) *EnrollmentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EnrollmentService{repo: repo, modules: modules, students: students, validator: validate, logger: logger}
}

// Enroll adds a student to a module. The module and student must exist and
// the pair must not already be enrolled.
func (s *EnrollmentService) Enroll(moduleID, studentID string) (*models.Enrollment, error) {
	if moduleID == "" || studentID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "module ID and student ID are required")
	}
	if _, err := s.modules.FindByID(moduleID); err != nil {
		if appErrors.Is(err, appErrors.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "module not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to validate module")
	}
	student, err := s.students.FindByID(studentID)
	if err != nil {
		if appErrors.Is(err, appErrors.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to validate student")
	}
	enrolled, err := s.repo.Exists(moduleID, studentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to check enrollment")
	}
	if enrolled {
		return nil, appErrors.Clone(appErrors.ErrConflict, "student is already enrolled in this module")
	}
	enrollment := models.Enrollment{ModuleID: moduleID, StudentID: studentID, StudentName: student.Name}
	if err := s.repo.Append(enrollment); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to record enrollment")
	}
	s.logger.Info("student enrolled", zap.String("module_id", moduleID), zap.String("student_id", studentID))
	return &enrollment, nil
}

// Unenroll removes the (module, student) pair; a missing pair is reported as
// not found, not a failure.
func (s *EnrollmentService) Unenroll(moduleID, studentID string) error {
	if moduleID == "" || studentID == "" {
		return appErrors.Clone(appErrors.ErrValidation, "module ID and student ID are required")
	}
	if _, err := s.modules.FindByID(moduleID); err != nil {
		if appErrors.Is(err, appErrors.ErrNotFound) {
			return appErrors.Clone(appErrors.ErrNotFound, "module not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to validate module")
	}
	removed, err := s.repo.Remove(moduleID, studentID)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to remove enrollment")
	}
	if !removed {
		return appErrors.Clone(appErrors.ErrNotFound, "no enrollment record found for that student and module")
	}
	s.logger.Info("student unenrolled", zap.String("module_id", moduleID), zap.String("student_id", studentID))
	return nil
}

// EnrolledStudents returns the roster of a module.
func (s *EnrollmentService) EnrolledStudents(moduleID string) ([]models.Enrollment, error) {
	if moduleID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "module ID cannot be empty")
	}
	roster, err := s.repo.ByModule(moduleID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to read enrollments")
	}
	return roster, nil
}

// Find looks up a specific student's enrollment in a module, validating both
// IDs against their stores first.
func (s *EnrollmentService) Find(moduleID, studentID string) (*models.Enrollment, error) {
	if _, err := s.modules.FindByID(moduleID); err != nil {
		if appErrors.Is(err, appErrors.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "module not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to validate module")
	}
	if _, err := s.students.FindByID(studentID); err != nil {
		if appErrors.Is(err, appErrors.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to validate student")
	}
	roster, err := s.repo.ByModule(moduleID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to read enrollments")
	}
	for i := range roster {
		if roster[i].StudentID == studentID {
			return &roster[i], nil
		}
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "student is not enrolled in this module")
}
