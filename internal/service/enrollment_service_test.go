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

type mockModuleLookup struct {
	modules map[string]*models.Module
}

func (m *mockModuleLookup) FindByID(id string) (*models.Module, error) {
	if mod, ok := m.modules[id]; ok {
		return mod, nil
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "module not found")
}

type mockStudentLookup struct {
	students map[string]*models.Student
}

func (m *mockStudentLookup) FindByID(id string) (*models.Student, error) {
	if st, ok := m.students[id]; ok {
		return st, nil
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
}

type mockEnrollmentRepo struct {
	rows []models.Enrollment
}

func (m *mockEnrollmentRepo) ByModule(moduleID string) ([]models.Enrollment, error) {
	var out []models.Enrollment
	for _, row := range m.rows {
		if row.ModuleID == moduleID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (m *mockEnrollmentRepo) Exists(moduleID, studentID string) (bool, error) {
	for _, row := range m.rows {
		if row.ModuleID == moduleID && row.StudentID == studentID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockEnrollmentRepo) Append(enrollment models.Enrollment) error {
	m.rows = append(m.rows, enrollment)
	return nil
}

func (m *mockEnrollmentRepo) Remove(moduleID, studentID string) (bool, error) {
	for i, row := range m.rows {
		if row.ModuleID == moduleID && row.StudentID == studentID {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func testModules() *mockModuleLookup {
	return &mockModuleLookup{modules: map[string]*models.Module{
		"DA1234-DSA-JD": {ID: "DA1234-DSA-JD", Name: "Data Structures and Algorithms", LecturerName: "John Doe", LecturerID: "L001", Credits: 20, ClassCount: 4},
	}}
}

func testStudents() *mockStudentLookup {
	return &mockStudentLookup{students: map[string]*models.Student{
		"042317": {Name: "Alice Tan", ID: "042317", CourseCode: "CS042-APU"},
	}}
}

func TestEnrollmentServiceEnroll(t *testing.T) {
	repo := &mockEnrollmentRepo{}
	svc := NewEnrollmentService(repo, testModules(), testStudents(), validator.New(), zap.NewNop())

	enrollment, err := svc.Enroll("DA1234-DSA-JD", "042317")
	require.NoError(t, err)
	assert.Equal(t, "Alice Tan", enrollment.StudentName)
	assert.Len(t, repo.rows, 1)
}

func TestEnrollmentServiceEnrollDuplicate(t *testing.T) {
	repo := &mockEnrollmentRepo{rows: []models.Enrollment{
		{ModuleID: "DA1234-DSA-JD", StudentID: "042317", StudentName: "Alice Tan"},
	}}
	svc := NewEnrollmentService(repo, testModules(), testStudents(), validator.New(), zap.NewNop())

	_, err := svc.Enroll("DA1234-DSA-JD", "042317")
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrConflict))
	assert.Len(t, repo.rows, 1)
}

func TestEnrollmentServiceEnrollUnknownModule(t *testing.T) {
	svc := NewEnrollmentService(&mockEnrollmentRepo{}, testModules(), testStudents(), validator.New(), zap.NewNop())

	_, err := svc.Enroll("XX0000-NO-NO", "042317")
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))
}

func TestEnrollmentServiceUnenroll(t *testing.T) {
	repo := &mockEnrollmentRepo{rows: []models.Enrollment{
		{ModuleID: "DA1234-DSA-JD", StudentID: "042317", StudentName: "Alice Tan"},
	}}
	svc := NewEnrollmentService(repo, testModules(), testStudents(), validator.New(), zap.NewNop())

	require.NoError(t, svc.Unenroll("DA1234-DSA-JD", "042317"))
	assert.Empty(t, repo.rows)

	err := svc.Unenroll("DA1234-DSA-JD", "042317")
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))
}
