package repository

import (
	"go.uber.org/zap"

	"github.com/campusware/urms/internal/models"
	"github.com/campusware/urms/internal/textdb"
	appErrors "github.com/campusware/urms/pkg/errors"
)

// PendingEntry pairs a parsed pending registration with its position in the
// raw file, so a decision can remove exactly that line even when another
// line has identical content.
type PendingEntry struct {
	models.Registration
	Index int
}

// RegistrationRepository manages the pending, accepted and declined
// registration stores.
type RegistrationRepository struct {
	store  *textdb.Store
	logger *zap.Logger
}

// NewRegistrationRepository constructs a RegistrationRepository.
func NewRegistrationRepository(store *textdb.Store, logger *zap.Logger) *RegistrationRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RegistrationRepository{store: store, logger: logger}
}

// AppendPending records a newly submitted application.
func (r *RegistrationRepository) AppendPending(reg models.Registration) error {
	return r.store.Append(textdb.Registrations, reg.Record())
}

// Pending returns the undecided applications along with the count of
// malformed lines that were skipped.
func (r *RegistrationRepository) Pending() ([]PendingEntry, int, error) {
	lines, err := r.store.ReadLines(textdb.Registrations)
	if err != nil {
		return nil, 0, err
	}
	entries := make([]PendingEntry, 0, len(lines))
	skipped := 0
	for i, line := range lines {
		reg, err := models.ParseRegistration(line)
		if err != nil {
			r.logger.Warn("malformed registration line skipped", zap.Error(err))
			skipped++
			continue
		}
		entries = append(entries, PendingEntry{Registration: reg, Index: i})
	}
	return entries, skipped, nil
}

// RemovePendingAt deletes the pending line at the given raw index, rewriting
// the file. Duplicate submissions on other lines are untouched.
func (r *RegistrationRepository) RemovePendingAt(index int) error {
	lines, err := r.store.ReadLines(textdb.Registrations)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(lines) {
		return appErrors.Clone(appErrors.ErrNotFound, "pending registration no longer present")
	}
	remaining := append(append([]string{}, lines[:index]...), lines[index+1:]...)
	return r.store.Overwrite(textdb.Registrations, remaining)
}

// AppendAccepted records an accepted application.
func (r *RegistrationRepository) AppendAccepted(reg models.Registration) error {
	return r.store.Append(textdb.AcceptedRegistrations, reg.Record())
}

// AppendDeclined records a declined application.
func (r *RegistrationRepository) AppendDeclined(reg models.Registration) error {
	return r.store.Append(textdb.DeclinedRegistrations, reg.Record())
}

// Accepted returns every well-formed accepted application.
func (r *RegistrationRepository) Accepted() ([]models.Registration, error) {
	return r.readDecided(textdb.AcceptedRegistrations)
}

// Declined returns every well-formed declined application.
func (r *RegistrationRepository) Declined() ([]models.Registration, error) {
	return r.readDecided(textdb.DeclinedRegistrations)
}

func (r *RegistrationRepository) readDecided(file string) ([]models.Registration, error) {
	lines, err := r.store.ReadLines(file)
	if err != nil {
		return nil, err
	}
	regs := make([]models.Registration, 0, len(lines))
	for _, line := range lines {
		reg, err := models.ParseRegistration(line)
		if err != nil {
			r.logger.Warn("malformed registration line skipped",
				zap.String("file", file), zap.Error(err))
			continue
		}
		regs = append(regs, reg)
	}
	return regs, nil
}
