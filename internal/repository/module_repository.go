package repository

import (
	"go.uber.org/zap"

	"github.com/campusware/urms/internal/models"
	"github.com/campusware/urms/internal/textdb"
	appErrors "github.com/campusware/urms/pkg/errors"
)

// ModuleRepository manages persistence for module records.
type ModuleRepository struct {
	store  *textdb.Store
	logger *zap.Logger
}

// NewModuleRepository constructs a ModuleRepository.
func NewModuleRepository(store *textdb.Store, logger *zap.Logger) *ModuleRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ModuleRepository{store: store, logger: logger}
}

// List returns all well-formed module records in file order.
func (r *ModuleRepository) List() ([]models.Module, error) {
	lines, err := r.store.ReadLines(textdb.ModulesList)
	if err != nil {
		return nil, err
	}
	modules := make([]models.Module, 0, len(lines))
	for _, line := range lines {
		module, err := models.ParseModule(line)
		if err != nil {
			r.logger.Warn("malformed module line skipped", zap.Error(err))
			continue
		}
		modules = append(modules, module)
	}
	return modules, nil
}

// FindByID fetches a module by its ID.
func (r *ModuleRepository) FindByID(id string) (*models.Module, error) {
	modules, err := r.List()
	if err != nil {
		return nil, err
	}
	for i := range modules {
		if modules[i].ID == id {
			return &modules[i], nil
		}
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "module not found")
}

// ByLecturer returns the modules assigned to a lecturer ID.
func (r *ModuleRepository) ByLecturer(lecturerID string) ([]models.Module, error) {
	modules, err := r.List()
	if err != nil {
		return nil, err
	}
	var assigned []models.Module
	for _, module := range modules {
		if module.LecturerID == lecturerID {
			assigned = append(assigned, module)
		}
	}
	return assigned, nil
}

// Count returns the current number of raw lines in the module file; the ID
// generator uses it as a seed.
func (r *ModuleRepository) Count() (int, error) {
	lines, err := r.store.ReadLines(textdb.ModulesList)
	if err != nil {
		return 0, err
	}
	return len(lines), nil
}

// Append adds a module record.
func (r *ModuleRepository) Append(module models.Module) error {
	return r.store.Append(textdb.ModulesList, module.Record())
}
