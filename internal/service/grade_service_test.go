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

type mockGradeRepo struct {
	rows []models.Grade
}

func (m *mockGradeRepo) Append(grade models.Grade) error {
	m.rows = append(m.rows, grade)
	return nil
}

func (m *mockGradeRepo) ByModule(moduleID string) ([]models.Grade, error) {
	var out []models.Grade
	for _, row := range m.rows {
		if row.ModuleID == moduleID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (m *mockGradeRepo) ByStudent(studentID string) ([]models.Grade, error) {
	var out []models.Grade
	for _, row := range m.rows {
		if row.StudentID == studentID {
			out = append(out, row)
		}
	}
	return out, nil
}

func newGradeService(repo *mockGradeRepo, enrolled bool) *GradeService {
	enrollments := &mockEnrollmentRepo{}
	if enrolled {
		enrollments.rows = []models.Enrollment{
			{ModuleID: "DA1234-DSA-JD", StudentID: "042317", StudentName: "Alice Tan"},
		}
	}
	return NewGradeService(repo, enrollments, testModules(), testStudents(), validator.New(), zap.NewNop())
}

func TestGradeServiceAdd(t *testing.T) {
	repo := &mockGradeRepo{}
	svc := newGradeService(repo, true)

	grade, err := svc.Add(AddGradeRequest{StudentID: "042317", ModuleID: "DA1234-DSA-JD", Percentage: 72.5})
	require.NoError(t, err)
	assert.Equal(t, "B+", grade.Band)
	require.Len(t, repo.rows, 1)
	assert.Equal(t, 72.5, repo.rows[0].Percentage)
}

func TestGradeServiceAddBoundaries(t *testing.T) {
	cases := []struct {
		percentage float64
		band       string
	}{
		{100, "A+"},
		{90, "A+"},
		{89.99, "A-"},
		{45, "D+"},
		{44.99, "D-"},
		{30, "D-"},
		{29.99, "Fail"},
		{0, "Fail"},
	}
	for _, tc := range cases {
		svc := newGradeService(&mockGradeRepo{}, true)
		grade, err := svc.Add(AddGradeRequest{StudentID: "042317", ModuleID: "DA1234-DSA-JD", Percentage: tc.percentage})
		require.NoError(t, err, "percentage %.2f", tc.percentage)
		assert.Equal(t, tc.band, grade.Band, "percentage %.2f", tc.percentage)
	}
}

func TestGradeServiceAddOutOfRange(t *testing.T) {
	svc := newGradeService(&mockGradeRepo{}, true)

	for _, percentage := range []float64{-1, 100.01} {
		_, err := svc.Add(AddGradeRequest{StudentID: "042317", ModuleID: "DA1234-DSA-JD", Percentage: percentage})
		require.Error(t, err, "percentage %.2f", percentage)
		assert.True(t, appErrors.Is(err, appErrors.ErrValidation))
	}
}

func TestGradeServiceAddNotEnrolled(t *testing.T) {
	repo := &mockGradeRepo{}
	svc := newGradeService(repo, false)

	_, err := svc.Add(AddGradeRequest{StudentID: "042317", ModuleID: "DA1234-DSA-JD", Percentage: 60})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))
	assert.Empty(t, repo.rows)
}

func TestGradeServiceByStudent(t *testing.T) {
	repo := &mockGradeRepo{rows: []models.Grade{
		{StudentID: "042317", ModuleID: "DA1234-DSA-JD", Percentage: 65, Band: "B-"},
		{StudentID: "999999", ModuleID: "DA1234-DSA-JD", Percentage: 80, Band: "A-"},
	}}
	svc := newGradeService(repo, true)

	grades, err := svc.ByStudent("042317")
	require.NoError(t, err)
	require.Len(t, grades, 1)
	assert.Equal(t, "B-", grades[0].Band)
}
