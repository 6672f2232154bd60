package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campusware/urms/internal/models"
	appErrors "github.com/campusware/urms/pkg/errors"
)

type attendanceRepository interface {
	Append(record models.AttendanceRecord) error
	ForStudentModule(studentID, moduleID string) ([]models.AttendanceRecord, error)
}

// RecordAttendanceRequest holds payload for one attendance mark.
type RecordAttendanceRequest struct {
	ModuleID  string `validate:"required"`
	StudentID string `validate:"required"`
	Date      string `validate:"required"`
	Status    string `validate:"required"`
}

// AttendanceSummary reports attendance of a student in a module against the
// module's class count.
type AttendanceSummary struct {
	Attended   int
	Recorded   int
	ClassCount int
	Percentage float64
}

// AttendanceService records and summarises attendance.
type AttendanceService struct {
	repo      attendanceRepository
	modules   moduleLookup
	students  studentLookup
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAttendanceService constructs the attendance service.
func NewAttendanceService(repo attendanceRepository, modules moduleLookup, students studentLookup, validate *validator.Validate, logger *zap.Logger) *AttendanceService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AttendanceService{repo: repo, modules: modules, students: students, validator: validate, logger: logger}
}

// Record appends one attendance mark. Repeated calls for the same date are
// not deduplicated; the log is append-only.
func (s *AttendanceService) Record(req RecordAttendanceRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid attendance details")
	}
	if _, err := s.modules.FindByID(req.ModuleID); err != nil {
		if appErrors.Is(err, appErrors.ErrNotFound) {
			return appErrors.Clone(appErrors.ErrNotFound, "module not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to validate module")
	}
	if _, err := s.students.FindByID(req.StudentID); err != nil {
		if appErrors.Is(err, appErrors.ErrNotFound) {
			return appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to validate student")
	}
	if _, err := time.Parse(models.AttendanceDateLayout, req.Date); err != nil {
		return appErrors.Clone(appErrors.ErrValidation, "date must be in YYYY-MM-DD format")
	}
	status := strings.ToLower(strings.TrimSpace(req.Status))
	if status != models.AttendancePresent && status != models.AttendanceAbsent {
		return appErrors.Clone(appErrors.ErrValidation, "status must be 'present' or 'absent'")
	}
	record := models.AttendanceRecord{
		ModuleID:  req.ModuleID,
		StudentID: req.StudentID,
		Date:      req.Date,
		Status:    status,
	}
	if err := s.repo.Append(record); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to record attendance")
	}
	s.logger.Info("attendance recorded",
		zap.String("module_id", req.ModuleID), zap.String("student_id", req.StudentID), zap.String("status", status))
	return nil
}

// Summary computes a student's attendance percentage in a module: marks
// tagged present divided by the module's class count. A module with a class
// count of zero has no valid class data and cannot be summarised.
func (s *AttendanceService) Summary(studentID, moduleID string) (*AttendanceSummary, error) {
	if _, err := s.students.FindByID(studentID); err != nil {
		if appErrors.Is(err, appErrors.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to validate student")
	}
	module, err := s.modules.FindByID(moduleID)
	if err != nil {
		if appErrors.Is(err, appErrors.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "module not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to validate module")
	}
	if module.ClassCount == 0 {
		return nil, appErrors.Clone(appErrors.ErrMalformedRecord,
			fmt.Sprintf("module %s does not have valid class data", moduleID))
	}
	records, err := s.repo.ForStudentModule(studentID, moduleID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to read attendance")
	}
	summary := &AttendanceSummary{ClassCount: module.ClassCount, Recorded: len(records)}
	for _, record := range records {
		if record.Status == models.AttendancePresent {
			summary.Attended++
		}
	}
	summary.Percentage = float64(summary.Attended) / float64(module.ClassCount) * 100
	return summary, nil
}
