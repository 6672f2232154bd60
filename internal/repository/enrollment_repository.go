package repository

import (
	"go.uber.org/zap"

	"github.com/campusware/urms/internal/models"
	"github.com/campusware/urms/internal/textdb"
)

// EnrollmentRepository manages the module-student enrollment store.
type EnrollmentRepository struct {
	store  *textdb.Store
	logger *zap.Logger
}

// NewEnrollmentRepository constructs an EnrollmentRepository.
func NewEnrollmentRepository(store *textdb.Store, logger *zap.Logger) *EnrollmentRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EnrollmentRepository{store: store, logger: logger}
}

// List returns all well-formed enrollment records in file order.
func (r *EnrollmentRepository) List() ([]models.Enrollment, error) {
	lines, err := r.store.ReadLines(textdb.ModuleStudentRecords)
	if err != nil {
		return nil, err
	}
	enrollments := make([]models.Enrollment, 0, len(lines))
	for _, line := range lines {
		enrollment, err := models.ParseEnrollment(line)
		if err != nil {
			r.logger.Warn("malformed enrollment line skipped", zap.Error(err))
			continue
		}
		enrollments = append(enrollments, enrollment)
	}
	return enrollments, nil
}

// ByModule returns the enrollments of a module.
func (r *EnrollmentRepository) ByModule(moduleID string) ([]models.Enrollment, error) {
	enrollments, err := r.List()
	if err != nil {
		return nil, err
	}
	var matched []models.Enrollment
	for _, e := range enrollments {
		if e.ModuleID == moduleID {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

// Exists reports whether the (module, student) pair is already enrolled.
func (r *EnrollmentRepository) Exists(moduleID, studentID string) (bool, error) {
	enrollments, err := r.List()
	if err != nil {
		return false, err
	}
	for _, e := range enrollments {
		if e.ModuleID == moduleID && e.StudentID == studentID {
			return true, nil
		}
	}
	return false, nil
}

// Append adds an enrollment record.
func (r *EnrollmentRepository) Append(enrollment models.Enrollment) error {
	return r.store.Append(textdb.ModuleStudentRecords, enrollment.Record())
}

// Remove deletes the enrollment matching the (module, student) pair and
// reports whether a record was found.
func (r *EnrollmentRepository) Remove(moduleID, studentID string) (bool, error) {
	enrollments, err := r.List()
	if err != nil {
		return false, err
	}
	kept := make([]string, 0, len(enrollments))
	found := false
	for _, e := range enrollments {
		if e.ModuleID == moduleID && e.StudentID == studentID {
			found = true
			continue
		}
		kept = append(kept, e.Record())
	}
	if !found {
		return false, nil
	}
	if err := r.store.Overwrite(textdb.ModuleStudentRecords, kept); err != nil {
		return false, err
	}
	return true, nil
}
