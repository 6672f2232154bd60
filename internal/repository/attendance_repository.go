package repository

import (
	"go.uber.org/zap"

	"github.com/campusware/urms/internal/models"
	"github.com/campusware/urms/internal/textdb"
)

// AttendanceRepository manages the append-only attendance log.
type AttendanceRepository struct {
	store  *textdb.Store
	logger *zap.Logger
}

// NewAttendanceRepository constructs an AttendanceRepository.
func NewAttendanceRepository(store *textdb.Store, logger *zap.Logger) *AttendanceRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AttendanceRepository{store: store, logger: logger}
}

// Append adds an attendance mark.
func (r *AttendanceRepository) Append(record models.AttendanceRecord) error {
	return r.store.Append(textdb.AttendanceRecords, record.Record())
}

// ForStudentModule returns the attendance marks of a student in a module.
func (r *AttendanceRepository) ForStudentModule(studentID, moduleID string) ([]models.AttendanceRecord, error) {
	lines, err := r.store.ReadLines(textdb.AttendanceRecords)
	if err != nil {
		return nil, err
	}
	var records []models.AttendanceRecord
	for _, line := range lines {
		record, err := models.ParseAttendance(line)
		if err != nil {
			r.logger.Warn("malformed attendance line skipped", zap.Error(err))
			continue
		}
		if record.ModuleID == moduleID && record.StudentID == studentID {
			records = append(records, record)
		}
	}
	return records, nil
}
