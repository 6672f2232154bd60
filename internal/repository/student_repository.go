package repository

import (
	"strings"

	"go.uber.org/zap"

	"github.com/campusware/urms/internal/models"
	"github.com/campusware/urms/internal/textdb"
	appErrors "github.com/campusware/urms/pkg/errors"
)

// StudentRepository manages persistence for student records.
type StudentRepository struct {
	store  *textdb.Store
	logger *zap.Logger
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(store *textdb.Store, logger *zap.Logger) *StudentRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentRepository{store: store, logger: logger}
}

// List returns all well-formed student records in file order.
func (r *StudentRepository) List() ([]models.Student, error) {
	lines, err := r.store.ReadLines(textdb.StudentRecords)
	if err != nil {
		return nil, err
	}
	students := make([]models.Student, 0, len(lines))
	for _, line := range lines {
		student, err := models.ParseStudent(line)
		if err != nil {
			r.logger.Warn("malformed student line skipped", zap.Error(err))
			continue
		}
		students = append(students, student)
	}
	return students, nil
}

// FindByID fetches a student by ID.
func (r *StudentRepository) FindByID(id string) (*models.Student, error) {
	students, err := r.List()
	if err != nil {
		return nil, err
	}
	for i := range students {
		if students[i].ID == id {
			return &students[i], nil
		}
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
}

// Append adds a student record.
func (r *StudentRepository) Append(student models.Student) error {
	return r.store.Append(textdb.StudentRecords, student.Record())
}

// RemoveMatching deletes every student whose ID equals or whose name
// contains the identifier, and returns how many records were removed.
func (r *StudentRepository) RemoveMatching(identifier string) (int, error) {
	students, err := r.List()
	if err != nil {
		return 0, err
	}
	kept := make([]models.Student, 0, len(students))
	removed := 0
	for _, student := range students {
		if student.ID == identifier || strings.Contains(strings.ToLower(student.Name), strings.ToLower(identifier)) {
			removed++
			continue
		}
		kept = append(kept, student)
	}
	if removed == 0 {
		return 0, nil
	}
	lines := make([]string, 0, len(kept))
	for _, student := range kept {
		lines = append(lines, student.Record())
	}
	if err := r.store.Overwrite(textdb.StudentRecords, lines); err != nil {
		return 0, err
	}
	return removed, nil
}
