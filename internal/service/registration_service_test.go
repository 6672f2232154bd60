package service

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campusware/urms/internal/models"
	"github.com/campusware/urms/internal/repository"
	appErrors "github.com/campusware/urms/pkg/errors"
)

type mockRegistrationRepo struct {
	pending  []models.Registration
	accepted []models.Registration
	declined []models.Registration
}

func (m *mockRegistrationRepo) AppendPending(reg models.Registration) error {
	m.pending = append(m.pending, reg)
	return nil
}

func (m *mockRegistrationRepo) Pending() ([]repository.PendingEntry, int, error) {
	entries := make([]repository.PendingEntry, 0, len(m.pending))
	for i, reg := range m.pending {
		entries = append(entries, repository.PendingEntry{Registration: reg, Index: i})
	}
	return entries, 0, nil
}

func (m *mockRegistrationRepo) RemovePendingAt(index int) error {
	if index < 0 || index >= len(m.pending) {
		return appErrors.Clone(appErrors.ErrNotFound, "pending registration no longer present")
	}
	m.pending = append(m.pending[:index], m.pending[index+1:]...)
	return nil
}

func (m *mockRegistrationRepo) AppendAccepted(reg models.Registration) error {
	m.accepted = append(m.accepted, reg)
	return nil
}

func (m *mockRegistrationRepo) AppendDeclined(reg models.Registration) error {
	m.declined = append(m.declined, reg)
	return nil
}

func (m *mockRegistrationRepo) Accepted() ([]models.Registration, error) { return m.accepted, nil }
func (m *mockRegistrationRepo) Declined() ([]models.Registration, error) { return m.declined, nil }

type mockCourseNames struct {
	courses map[string]*models.Course
}

func (m *mockCourseNames) FindByName(name string) (*models.Course, error) {
	if course, ok := m.courses[name]; ok {
		return course, nil
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
}

func testCourseNames() *mockCourseNames {
	return &mockCourseNames{courses: map[string]*models.Course{
		"Computer Science": {Code: "CS042-APU", Name: "Computer Science", Details: "Three year degree"},
	}}
}

func testApplication(passport string) models.Registration {
	return models.Registration{
		Name:           "Alice Tan",
		Email:          "alice@example.com",
		PassportNumber: passport,
		CourseName:     "Computer Science",
	}
}

func TestRegistrationServiceSubmit(t *testing.T) {
	repo := &mockRegistrationRepo{}
	svc := NewRegistrationService(repo, testCourseNames(), validator.New(), zap.NewNop())

	reg, err := svc.Submit(SubmitRegistrationRequest{
		Name:           "Alice Tan",
		Email:          "alice@example.com",
		PassportNumber: "A1234567",
		CourseName:     "Computer Science",
	})
	require.NoError(t, err)
	assert.Equal(t, "A1234567", reg.PassportNumber)
	assert.Len(t, repo.pending, 1)
}

func TestRegistrationServiceSubmitInvalidEmail(t *testing.T) {
	repo := &mockRegistrationRepo{}
	svc := NewRegistrationService(repo, testCourseNames(), validator.New(), zap.NewNop())

	_, err := svc.Submit(SubmitRegistrationRequest{
		Name:           "Alice Tan",
		Email:          "not-an-email",
		PassportNumber: "A1234567",
		CourseName:     "Computer Science",
	})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))
	assert.Empty(t, repo.pending)
}

func TestRegistrationServiceDecideAccept(t *testing.T) {
	repo := &mockRegistrationRepo{pending: []models.Registration{testApplication("A1234567")}}
	svc := NewRegistrationService(repo, testCourseNames(), validator.New(), zap.NewNop())

	entries, _, err := svc.ListPending()
	require.NoError(t, err)
	require.Len(t, entries, 1)

	result, err := svc.Decide(entries[0], models.DecisionAccept)
	require.NoError(t, err)
	assert.Equal(t, models.DecisionAccept, result.Decision)
	assert.Equal(t, "CS042-APU", result.CourseCode)
	assert.Empty(t, repo.pending)
	assert.Len(t, repo.accepted, 1)
	assert.Empty(t, repo.declined)
}

func TestRegistrationServiceDecideDecline(t *testing.T) {
	repo := &mockRegistrationRepo{pending: []models.Registration{testApplication("A1234567")}}
	svc := NewRegistrationService(repo, testCourseNames(), validator.New(), zap.NewNop())

	entries, _, err := svc.ListPending()
	require.NoError(t, err)

	result, err := svc.Decide(entries[0], models.DecisionDecline)
	require.NoError(t, err)
	assert.Equal(t, models.DecisionDecline, result.Decision)
	assert.Empty(t, result.CourseCode)
	assert.Empty(t, repo.pending)
	assert.Len(t, repo.declined, 1)
}

func TestRegistrationServiceDecideCancel(t *testing.T) {
	repo := &mockRegistrationRepo{pending: []models.Registration{testApplication("A1234567")}}
	svc := NewRegistrationService(repo, testCourseNames(), validator.New(), zap.NewNop())

	entries, _, err := svc.ListPending()
	require.NoError(t, err)

	result, err := svc.Decide(entries[0], models.DecisionCancel)
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.Len(t, repo.pending, 1)
	assert.Empty(t, repo.accepted)
	assert.Empty(t, repo.declined)
}

func TestRegistrationServiceDecideDuplicateRowsIndependently(t *testing.T) {
	repo := &mockRegistrationRepo{pending: []models.Registration{
		testApplication("A1234567"),
		testApplication("A1234567"),
	}}
	svc := NewRegistrationService(repo, testCourseNames(), validator.New(), zap.NewNop())

	entries, _, err := svc.ListPending()
	require.NoError(t, err)
	require.Len(t, entries, 2)

	_, err = svc.Decide(entries[0], models.DecisionAccept)
	require.NoError(t, err)
	assert.Len(t, repo.pending, 1)
	assert.Len(t, repo.accepted, 1)

	remaining, _, err := svc.ListPending()
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	_, err = svc.Decide(remaining[0], models.DecisionDecline)
	require.NoError(t, err)
	assert.Empty(t, repo.pending)
	assert.Len(t, repo.declined, 1)
}

func TestRegistrationServiceCheckStatus(t *testing.T) {
	repo := &mockRegistrationRepo{
		accepted: []models.Registration{testApplication("A1111111")},
		declined: []models.Registration{testApplication("B2222222")},
	}
	svc := NewRegistrationService(repo, testCourseNames(), validator.New(), zap.NewNop())

	status, err := svc.CheckStatus("A1111111")
	require.NoError(t, err)
	assert.Equal(t, StatusAccepted, status)

	status, err = svc.CheckStatus("B2222222")
	require.NoError(t, err)
	assert.Equal(t, StatusDeclined, status)

	status, err = svc.CheckStatus("C3333333")
	require.NoError(t, err)
	assert.Equal(t, StatusNotFound, status)

	_, err = svc.CheckStatus("")
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))
}
