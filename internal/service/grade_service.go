package service

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campusware/urms/internal/models"
	appErrors "github.com/campusware/urms/pkg/errors"
)

type gradeRepository interface {
	Append(grade models.Grade) error
	ByModule(moduleID string) ([]models.Grade, error)
	ByStudent(studentID string) ([]models.Grade, error)
}

type enrollmentChecker interface {
	Exists(moduleID, studentID string) (bool, error)
}

// AddGradeRequest holds payload for recording a grade.
type AddGradeRequest struct {
	StudentID  string  `validate:"required"`
	ModuleID   string  `validate:"required"`
	Percentage float64 `validate:"gte=0,lte=100"`
}

// GradeService records grades with distinction bands.
type GradeService struct {
	repo        gradeRepository
	enrollments enrollmentChecker
	modules     moduleLookup
	students    studentLookup
	validator   *validator.Validate
	logger      *zap.Logger
}

// NewGradeService constructs the grade service.
func NewGradeService(repo gradeRepository, enrollments enrollmentChecker, modules moduleLookup, students studentLookup, validate *validator.Validate, logger *zap.Logger) *GradeService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GradeService{repo: repo, enrollments: enrollments, modules: modules, students: students, validator: validate, logger: logger}
}

// Add records a grade for an enrolled student. The store is append-only, so
// grading the same pair again adds another row.
func (s *GradeService) Add(req AddGradeRequest) (*models.Grade, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "grade percentage must be between 0 and 100")
	}
	if _, err := s.students.FindByID(req.StudentID); err != nil {
		if appErrors.Is(err, appErrors.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to validate student")
	}
	if _, err := s.modules.FindByID(req.ModuleID); err != nil {
		if appErrors.Is(err, appErrors.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "module not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to validate module")
	}
	enrolled, err := s.enrollments.Exists(req.ModuleID, req.StudentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to check enrollment")
	}
	if !enrolled {
		return nil, appErrors.Clone(appErrors.ErrValidation, "student is not enrolled in this module")
	}
	grade := models.Grade{
		StudentID:  req.StudentID,
		ModuleID:   req.ModuleID,
		Percentage: req.Percentage,
		Band:       models.DistinctionBand(req.Percentage),
	}
	if err := s.repo.Append(grade); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to record grade")
	}
	s.logger.Info("grade recorded", zap.String("student_id", req.StudentID),
		zap.String("module_id", req.ModuleID), zap.Float64("percentage", req.Percentage),
		zap.String("band", grade.Band))
	return &grade, nil
}

// ByModule returns every grade recorded for a module.
func (s *GradeService) ByModule(moduleID string) ([]models.Grade, error) {
	if moduleID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "module ID cannot be empty")
	}
	grades, err := s.repo.ByModule(moduleID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to read grades")
	}
	return grades, nil
}

// ByStudent returns every grade recorded for a student.
func (s *GradeService) ByStudent(studentID string) ([]models.Grade, error) {
	if studentID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "student ID cannot be empty")
	}
	grades, err := s.repo.ByStudent(studentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to read grades")
	}
	return grades, nil
}
