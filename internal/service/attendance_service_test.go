package service

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campusware/urms/internal/models"
	appErrors "github.com/campusware/urms/pkg/errors"
)

type mockAttendanceRepo struct {
	rows []models.AttendanceRecord
}

func (m *mockAttendanceRepo) Append(record models.AttendanceRecord) error {
	m.rows = append(m.rows, record)
	return nil
}

func (m *mockAttendanceRepo) ForStudentModule(studentID, moduleID string) ([]models.AttendanceRecord, error) {
	var out []models.AttendanceRecord
	for _, row := range m.rows {
		if row.StudentID == studentID && row.ModuleID == moduleID {
			out = append(out, row)
		}
	}
	return out, nil
}

func TestAttendanceServiceRecord(t *testing.T) {
	repo := &mockAttendanceRepo{}
	svc := NewAttendanceService(repo, testModules(), testStudents(), validator.New(), zap.NewNop())

	err := svc.Record(RecordAttendanceRequest{
		ModuleID:  "DA1234-DSA-JD",
		StudentID: "042317",
		Date:      "2026-02-14",
		Status:    "Present",
	})
	require.NoError(t, err)
	require.Len(t, repo.rows, 1)
	assert.Equal(t, models.AttendancePresent, repo.rows[0].Status)
}

func TestAttendanceServiceRecordBadInput(t *testing.T) {
	svc := NewAttendanceService(&mockAttendanceRepo{}, testModules(), testStudents(), validator.New(), zap.NewNop())

	err := svc.Record(RecordAttendanceRequest{
		ModuleID: "DA1234-DSA-JD", StudentID: "042317", Date: "14/02/2026", Status: "present",
	})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))

	err = svc.Record(RecordAttendanceRequest{
		ModuleID: "DA1234-DSA-JD", StudentID: "042317", Date: "2026-02-14", Status: "late",
	})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))

	err = svc.Record(RecordAttendanceRequest{
		ModuleID: "XX0000-NO-NO", StudentID: "042317", Date: "2026-02-14", Status: "present",
	})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))
}

func TestAttendanceServiceSummary(t *testing.T) {
	repo := &mockAttendanceRepo{rows: []models.AttendanceRecord{
		{ModuleID: "DA1234-DSA-JD", StudentID: "042317", Date: "2026-02-01", Status: "present"},
		{ModuleID: "DA1234-DSA-JD", StudentID: "042317", Date: "2026-02-08", Status: "present"},
		{ModuleID: "DA1234-DSA-JD", StudentID: "042317", Date: "2026-02-15", Status: "absent"},
		{ModuleID: "DA1234-DSA-JD", StudentID: "042317", Date: "2026-02-22", Status: "present"},
	}}
	svc := NewAttendanceService(repo, testModules(), testStudents(), validator.New(), zap.NewNop())

	summary, err := svc.Summary("042317", "DA1234-DSA-JD")
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Attended)
	assert.Equal(t, 4, summary.Recorded)
	assert.Equal(t, 4, summary.ClassCount)
	assert.InDelta(t, 75.0, summary.Percentage, 0.001)
}

func TestAttendanceServiceSummaryZeroClassCount(t *testing.T) {
	modules := &mockModuleLookup{modules: map[string]*models.Module{
		"ZZ0000-Z-Z": {ID: "ZZ0000-Z-Z", Name: "Zero", LecturerName: "Z", LecturerID: "L0"},
	}}
	svc := NewAttendanceService(&mockAttendanceRepo{}, modules, testStudents(), validator.New(), zap.NewNop())

	_, err := svc.Summary("042317", "ZZ0000-Z-Z")
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrMalformedRecord))
}
