package service

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campusware/urms/internal/models"
	appErrors "github.com/campusware/urms/pkg/errors"
)

type userRepository interface {
	FindByUsername(username string) (*models.User, error)
	Append(user models.User) error
}

// RegisterUserRequest holds payload for creating a login account.
type RegisterUserRequest struct {
	Username        string `validate:"required"`
	Password        string `validate:"required"`
	ConfirmPassword string `validate:"required"`
	Role            string `validate:"required"`
	AdminAccessCode string
}

// AuthService manages login accounts. Passwords are stored in the historical
// shift-ciphered on-disk form; the cipher is reversible and only obscures
// casual reads of user_data.txt.
type AuthService struct {
	repo            userRepository
	adminAccessCode string
	validator       *validator.Validate
	logger          *zap.Logger
}

// NewAuthService constructs the auth service.
func NewAuthService(repo userRepository, adminAccessCode string, validate *validator.Validate, logger *zap.Logger) *AuthService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{repo: repo, adminAccessCode: adminAccessCode, validator: validate, logger: logger}
}

// ShiftCipher applies the +3 character shift used by the user store.
func ShiftCipher(password string) string {
	var b strings.Builder
	for _, r := range password {
		b.WriteRune(rune((int(r) + 3) % 256))
	}
	return b.String()
}

// Register creates a new account. Registering as Admin additionally requires
// the configured admin access code.
func (s *AuthService) Register(req RegisterUserRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid account details")
	}
	if req.Password != req.ConfirmPassword {
		return nil, appErrors.Clone(appErrors.ErrValidation, "passwords do not match")
	}
	role := normaliseRole(req.Role)
	if role == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid role")
	}
	if role == models.RoleAdmin && req.AdminAccessCode != s.adminAccessCode {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "invalid admin access code")
	}
	if _, err := s.repo.FindByUsername(req.Username); err == nil {
		return nil, appErrors.Clone(appErrors.ErrConflict, "username already exists")
	} else if !appErrors.Is(err, appErrors.ErrNotFound) {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to check username")
	}
	user := models.User{
		Username: req.Username,
		Password: ShiftCipher(req.Password),
		Role:     role,
	}
	if err := s.repo.Append(user); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to save account")
	}
	s.logger.Info("user registered", zap.String("username", req.Username), zap.String("role", role))
	return &user, nil
}

// Login verifies credentials and returns the account's role.
func (s *AuthService) Login(username, password string) (string, error) {
	if username == "" || password == "" {
		return "", appErrors.Clone(appErrors.ErrValidation, "username and password are required")
	}
	user, err := s.repo.FindByUsername(username)
	if err != nil {
		if appErrors.Is(err, appErrors.ErrNotFound) {
			return "", appErrors.Clone(appErrors.ErrInvalidCredentials, "")
		}
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to read accounts")
	}
	if user.Password != ShiftCipher(password) {
		return "", appErrors.Clone(appErrors.ErrInvalidCredentials, "")
	}
	s.logger.Info("login successful", zap.String("username", username), zap.String("role", user.Role))
	return user.Role, nil
}

func normaliseRole(role string) string {
	role = strings.TrimSpace(role)
	for _, valid := range models.ValidRoles {
		if strings.EqualFold(role, valid) {
			return valid
		}
	}
	return ""
}
