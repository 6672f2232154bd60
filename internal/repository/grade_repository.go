package repository

import (
	"go.uber.org/zap"

	"github.com/campusware/urms/internal/models"
	"github.com/campusware/urms/internal/textdb"
)

// GradeRepository manages the append-only grade store.
type GradeRepository struct {
	store  *textdb.Store
	logger *zap.Logger
}

// NewGradeRepository constructs a GradeRepository.
func NewGradeRepository(store *textdb.Store, logger *zap.Logger) *GradeRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GradeRepository{store: store, logger: logger}
}

// Append adds a grade record.
func (r *GradeRepository) Append(grade models.Grade) error {
	return r.store.Append(textdb.GradesRecords, grade.Record())
}

// ByModule returns every grade recorded for a module.
func (r *GradeRepository) ByModule(moduleID string) ([]models.Grade, error) {
	grades, err := r.list()
	if err != nil {
		return nil, err
	}
	var matched []models.Grade
	for _, g := range grades {
		if g.ModuleID == moduleID {
			matched = append(matched, g)
		}
	}
	return matched, nil
}

// ByStudent returns every grade recorded for a student.
func (r *GradeRepository) ByStudent(studentID string) ([]models.Grade, error) {
	grades, err := r.list()
	if err != nil {
		return nil, err
	}
	var matched []models.Grade
	for _, g := range grades {
		if g.StudentID == studentID {
			matched = append(matched, g)
		}
	}
	return matched, nil
}

func (r *GradeRepository) list() ([]models.Grade, error) {
	lines, err := r.store.ReadLines(textdb.GradesRecords)
	if err != nil {
		return nil, err
	}
	grades := make([]models.Grade, 0, len(lines))
	for _, line := range lines {
		grade, err := models.ParseGrade(line)
		if err != nil {
			r.logger.Warn("malformed grade line skipped", zap.Error(err))
			continue
		}
		grades = append(grades, grade)
	}
	return grades, nil
}
