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

type mockUserRepo struct {
	users map[string]models.User
}

func (m *mockUserRepo) FindByUsername(username string) (*models.User, error) {
	if user, ok := m.users[username]; ok {
		return &user, nil
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
}

func (m *mockUserRepo) Append(user models.User) error {
	if m.users == nil {
		m.users = make(map[string]models.User)
	}
	m.users[user.Username] = user
	return nil
}

func TestShiftCipher(t *testing.T) {
	assert.Equal(t, "def", ShiftCipher("abc"))
	assert.Equal(t, "vwdii456", ShiftCipher("staff123"))
	assert.Empty(t, ShiftCipher(""))
}

func TestAuthServiceRegisterAndLogin(t *testing.T) {
	repo := &mockUserRepo{}
	svc := NewAuthService(repo, "1234", validator.New(), zap.NewNop())

	user, err := svc.Register(RegisterUserRequest{
		Username:        "alice",
		Password:        "secret",
		ConfirmPassword: "secret",
		Role:            "lecturer",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleLecturer, user.Role)
	assert.NotEqual(t, "secret", user.Password)

	role, err := svc.Login("alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, models.RoleLecturer, role)

	_, err = svc.Login("alice", "wrong")
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrInvalidCredentials))

	_, err = svc.Login("nobody", "secret")
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrInvalidCredentials))
}

func TestAuthServiceRegisterPasswordMismatch(t *testing.T) {
	svc := NewAuthService(&mockUserRepo{}, "1234", validator.New(), zap.NewNop())

	_, err := svc.Register(RegisterUserRequest{
		Username:        "alice",
		Password:        "secret",
		ConfirmPassword: "different",
		Role:            "student",
	})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))
}

func TestAuthServiceRegisterInvalidRole(t *testing.T) {
	svc := NewAuthService(&mockUserRepo{}, "1234", validator.New(), zap.NewNop())

	_, err := svc.Register(RegisterUserRequest{
		Username:        "alice",
		Password:        "secret",
		ConfirmPassword: "secret",
		Role:            "janitor",
	})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))
}

func TestAuthServiceRegisterAdminAccessCode(t *testing.T) {
	repo := &mockUserRepo{}
	svc := NewAuthService(repo, "1234", validator.New(), zap.NewNop())

	_, err := svc.Register(RegisterUserRequest{
		Username:        "root",
		Password:        "secret",
		ConfirmPassword: "secret",
		Role:            "admin",
		AdminAccessCode: "0000",
	})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrForbidden))

	user, err := svc.Register(RegisterUserRequest{
		Username:        "root",
		Password:        "secret",
		ConfirmPassword: "secret",
		Role:            "ADMIN",
		AdminAccessCode: "1234",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)
}

func TestAuthServiceRegisterDuplicateUsername(t *testing.T) {
	repo := &mockUserRepo{users: map[string]models.User{
		"alice": {Username: "alice", Password: ShiftCipher("secret"), Role: models.RoleStudent},
	}}
	svc := NewAuthService(repo, "1234", validator.New(), zap.NewNop())

	_, err := svc.Register(RegisterUserRequest{
		Username:        "alice",
		Password:        "other",
		ConfirmPassword: "other",
		Role:            "student",
	})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrConflict))
}
