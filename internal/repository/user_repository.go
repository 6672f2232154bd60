package repository

import (
	"go.uber.org/zap"

	"github.com/campusware/urms/internal/models"
	"github.com/campusware/urms/internal/textdb"
	appErrors "github.com/campusware/urms/pkg/errors"
)

// UserRepository manages the login account store.
type UserRepository struct {
	store  *textdb.Store
	logger *zap.Logger
}

// NewUserRepository constructs a UserRepository.
func NewUserRepository(store *textdb.Store, logger *zap.Logger) *UserRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserRepository{store: store, logger: logger}
}

// List returns every well-formed user account.
func (r *UserRepository) List() ([]models.User, error) {
	lines, err := r.store.ReadLines(textdb.UserData)
	if err != nil {
		return nil, err
	}
	users := make([]models.User, 0, len(lines))
	for _, line := range lines {
		user, err := models.ParseUser(line)
		if err != nil {
			r.logger.Warn("malformed user line skipped", zap.Error(err))
			continue
		}
		users = append(users, user)
	}
	return users, nil
}

// FindByUsername fetches an account by username.
func (r *UserRepository) FindByUsername(username string) (*models.User, error) {
	users, err := r.List()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == username {
			return &users[i], nil
		}
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
}

// Append adds a user account.
func (r *UserRepository) Append(user models.User) error {
	return r.store.Append(textdb.UserData, user.Record())
}
