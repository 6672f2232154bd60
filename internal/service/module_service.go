package service

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campusware/urms/internal/idgen"
	"github.com/campusware/urms/internal/models"
	appErrors "github.com/campusware/urms/pkg/errors"
)

type moduleRepository interface {
	List() ([]models.Module, error)
	FindByID(id string) (*models.Module, error)
	ByLecturer(lecturerID string) ([]models.Module, error)
	Count() (int, error)
	Append(module models.Module) error
}

// CreateModuleRequest holds payload for creating a module.
type CreateModuleRequest struct {
	Name         string `validate:"required"`
	LecturerName string `validate:"required"`
	LecturerID   string `validate:"required"`
	Credits      int    `validate:"gte=0"`
	ClassCount   int    `validate:"gt=0"`
}

// ModuleService handles module catalogue use-cases.
type ModuleService struct {
	repo      moduleRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewModuleService constructs the module service.
func NewModuleService(repo moduleRepository, validate *validator.Validate, logger *zap.Logger) *ModuleService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ModuleService{repo: repo, validator: validate, logger: logger}
}

// Create registers a module with a generated, collision-checked ID.
func (s *ModuleService) Create(req CreateModuleRequest) (*models.Module, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid module details")
	}
	count, err := s.repo.Count()
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to read modules")
	}
	id := idgen.ModuleID(req.Name, req.LecturerName, count, func(candidate string) bool {
		_, err := s.repo.FindByID(candidate)
		return err == nil
	})
	module := models.Module{
		ID:           id,
		Name:         req.Name,
		LecturerName: req.LecturerName,
		LecturerID:   req.LecturerID,
		Credits:      req.Credits,
		ClassCount:   req.ClassCount,
	}
	if err := s.repo.Append(module); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to create module")
	}
	s.logger.Info("module created", zap.String("module_id", id), zap.String("lecturer_id", req.LecturerID))
	return &module, nil
}

// List returns every module.
func (s *ModuleService) List() ([]models.Module, error) {
	modules, err := s.repo.List()
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to list modules")
	}
	return modules, nil
}

// Get returns a module by ID.
func (s *ModuleService) Get(id string) (*models.Module, error) {
	module, err := s.repo.FindByID(id)
	if err != nil {
		if appErrors.Is(err, appErrors.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "module not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to load module")
	}
	return module, nil
}

// ByLecturer returns the modules assigned to a lecturer ID.
func (s *ModuleService) ByLecturer(lecturerID string) ([]models.Module, error) {
	if lecturerID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "lecturer ID cannot be empty")
	}
	modules, err := s.repo.ByLecturer(lecturerID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to read modules")
	}
	return modules, nil
}
