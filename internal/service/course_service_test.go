package service

import (
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campusware/urms/internal/models"
	appErrors "github.com/campusware/urms/pkg/errors"
)

type mockCourseRepo struct {
	courses []models.Course
}

func (m *mockCourseRepo) List() ([]models.Course, error) { return m.courses, nil }

func (m *mockCourseRepo) FindByCode(code string) (*models.Course, error) {
	for i := range m.courses {
		if m.courses[i].Code == code {
			return &m.courses[i], nil
		}
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
}

func (m *mockCourseRepo) Append(course models.Course) error {
	m.courses = append(m.courses, course)
	return nil
}

func (m *mockCourseRepo) ReplaceAll(courses []models.Course) error {
	m.courses = courses
	return nil
}

func TestCourseServiceAdd(t *testing.T) {
	repo := &mockCourseRepo{}
	svc := NewCourseService(repo, validator.New(), zap.NewNop())

	course, err := svc.Add(AddCourseRequest{
		Name:               "Computer Science",
		Details:            "Three year degree",
		UniversityInitials: "APU",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(course.Code, "CS"))
	assert.True(t, strings.HasSuffix(course.Code, "-APU"))
	assert.Len(t, repo.courses, 1)
}

func TestCourseServiceAddCollisionBumpsCode(t *testing.T) {
	repo := &mockCourseRepo{}
	svc := NewCourseService(repo, validator.New(), zap.NewNop())

	first, err := svc.Add(AddCourseRequest{Name: "Computer Science", Details: "Degree", UniversityInitials: "APU"})
	require.NoError(t, err)
	second, err := svc.Add(AddCourseRequest{Name: "Computer Science", Details: "Degree", UniversityInitials: "APU"})
	require.NoError(t, err)
	assert.NotEqual(t, first.Code, second.Code)
}

func TestCourseServiceUpdateKeepsEmptyFields(t *testing.T) {
	repo := &mockCourseRepo{courses: []models.Course{
		{Code: "CS042-APU", Name: "Computer Science", Details: "Old details"},
	}}
	svc := NewCourseService(repo, validator.New(), zap.NewNop())

	course, err := svc.Update("CS042-APU", "", "New details")
	require.NoError(t, err)
	assert.Equal(t, "Computer Science", course.Name)
	assert.Equal(t, "New details", course.Details)

	_, err = svc.Update("XX000-APU", "Name", "Details")
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))
}

func TestCourseServiceRemove(t *testing.T) {
	repo := &mockCourseRepo{courses: []models.Course{
		{Code: "CS042-APU", Name: "Computer Science", Details: "Degree"},
		{Code: "SE107-APU", Name: "Software Engineering", Details: "Degree"},
		{Code: "BA330-APU", Name: "Business Administration", Details: "Degree"},
	}}
	svc := NewCourseService(repo, validator.New(), zap.NewNop())

	removed, err := svc.Remove("Engineering")
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.Len(t, repo.courses, 2)

	_, err = svc.Remove("Astrology")
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))
}

func TestCourseServiceSearch(t *testing.T) {
	repo := &mockCourseRepo{courses: []models.Course{
		{Code: "CS042-APU", Name: "Computer Science", Details: "Degree"},
		{Code: "SE107-APU", Name: "Software Engineering", Details: "Degree"},
	}}
	svc := NewCourseService(repo, validator.New(), zap.NewNop())

	result, err := svc.Search("science")
	require.NoError(t, err)
	require.Len(t, result.Matches, 1)
	assert.Equal(t, "CS042-APU", result.Matches[0].Code)
	assert.Empty(t, result.Suggestions)
}

func TestCourseServiceSearchSuggestions(t *testing.T) {
	repo := &mockCourseRepo{courses: []models.Course{
		{Code: "CS042-APU", Name: "Computer Science", Details: "Degree"},
		{Code: "CG211-APU", Name: "Computer Graphics", Details: "Degree"},
		{Code: "SE107-APU", Name: "Software Engineering", Details: "Degree"},
	}}
	svc := NewCourseService(repo, validator.New(), zap.NewNop())

	result, err := svc.Search("compuler")
	require.NoError(t, err)
	assert.Empty(t, result.Matches)
	assert.NotEmpty(t, result.Suggestions)
	assert.LessOrEqual(t, len(result.Suggestions), 3)

	_, err = svc.Search("  ")
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))
}
