package service

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campusware/urms/internal/models"
	"github.com/campusware/urms/internal/repository"
	appErrors "github.com/campusware/urms/pkg/errors"
)

type registrationRepository interface {
	AppendPending(reg models.Registration) error
	Pending() ([]repository.PendingEntry, int, error)
	RemovePendingAt(index int) error
	AppendAccepted(reg models.Registration) error
	AppendDeclined(reg models.Registration) error
	Accepted() ([]models.Registration, error)
	Declined() ([]models.Registration, error)
}

type courseNameLookup interface {
	FindByName(name string) (*models.Course, error)
}

// SubmitRegistrationRequest holds a prospective student's application.
type SubmitRegistrationRequest struct {
	Name           string `validate:"required"`
	Email          string `validate:"required,email"`
	PassportNumber string `validate:"required"`
	CourseName     string `validate:"required"`
}

// RegistrationStatus is the answer to a status check.
type RegistrationStatus string

// Status check outcomes.
const (
	StatusAccepted RegistrationStatus = "accepted"
	StatusDeclined RegistrationStatus = "declined"
	StatusNotFound RegistrationStatus = "not found"
)

// DecisionResult describes the outcome of a registrar decision.
type DecisionResult struct {
	Registration models.Registration
	Decision     models.RegistrationDecision
	// CourseCode is resolved from the courses store on acceptance so the
	// follow-on add-student flow can be seeded; empty when the course name
	// no longer matches any course.
	CourseCode string
}

// RegistrationService drives the application lifecycle:
// pending -> accepted or declined, both terminal.
type RegistrationService struct {
	repo      registrationRepository
	courses   courseNameLookup
	validator *validator.Validate
	logger    *zap.Logger
}

// NewRegistrationService constructs the registration service.
func NewRegistrationService(repo registrationRepository, courses courseNameLookup, validate *validator.Validate, logger *zap.Logger) *RegistrationService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RegistrationService{repo: repo, courses: courses, validator: validate, logger: logger}
}

// Submit validates and records a new application. Resubmission with the same
// passport simply creates a second pending row; there is no duplicate check.
func (s *RegistrationService) Submit(req SubmitRegistrationRequest) (*models.Registration, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid registration details")
	}
	reg := models.Registration{
		Name:           req.Name,
		Email:          req.Email,
		PassportNumber: req.PassportNumber,
		CourseName:     req.CourseName,
	}
	if err := s.repo.AppendPending(reg); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to record registration")
	}
	s.logger.Info("registration submitted",
		zap.String("passport", reg.PassportNumber), zap.String("course", reg.CourseName))
	return &reg, nil
}

// ListPending returns the undecided applications plus the number of
// malformed rows that were skipped.
func (s *RegistrationService) ListPending() ([]repository.PendingEntry, int, error) {
	entries, skipped, err := s.repo.Pending()
	if err != nil {
		return nil, 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to read pending registrations")
	}
	return entries, skipped, nil
}

// Decide consumes one pending application. Accept and decline append the row
// to the matching store and then remove exactly the decided row from pending
// by index, so a duplicate submission keeps its own row and its own prompt.
// Cancel leaves the application pending and returns nil.
func (s *RegistrationService) Decide(entry repository.PendingEntry, decision models.RegistrationDecision) (*DecisionResult, error) {
	switch decision {
	case models.DecisionCancel:
		return nil, nil
	case models.DecisionAccept, models.DecisionDecline:
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "decision must be accept, decline or cancel")
	}

	if decision == models.DecisionAccept {
		if err := s.repo.AppendAccepted(entry.Registration); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to record acceptance")
		}
	} else {
		if err := s.repo.AppendDeclined(entry.Registration); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to record decline")
		}
	}

	if err := s.repo.RemovePendingAt(entry.Index); err != nil {
		// The decided row is already in its terminal store; report the
		// cleanup failure rather than trying to undo the append.
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to remove pending registration")
	}

	result := &DecisionResult{Registration: entry.Registration, Decision: decision}
	if decision == models.DecisionAccept {
		if course, err := s.courses.FindByName(entry.CourseName); err == nil {
			result.CourseCode = course.Code
		} else if !appErrors.Is(err, appErrors.ErrNotFound) {
			s.logger.Warn("course lookup failed after acceptance", zap.Error(err))
		}
	}
	s.logger.Info("registration decided",
		zap.String("passport", entry.PassportNumber), zap.String("decision", string(decision)))
	return result, nil
}

// CheckStatus scans the accepted store first, then the declined store.
// Decided rows are never moved, so the answer stays valid for the life of
// the files.
func (s *RegistrationService) CheckStatus(passportNumber string) (RegistrationStatus, error) {
	if passportNumber == "" {
		return "", appErrors.Clone(appErrors.ErrValidation, "passport number cannot be empty")
	}
	accepted, err := s.repo.Accepted()
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to read accepted registrations")
	}
	for _, reg := range accepted {
		if reg.PassportNumber == passportNumber {
			return StatusAccepted, nil
		}
	}
	declined, err := s.repo.Declined()
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to read declined registrations")
	}
	for _, reg := range declined {
		if reg.PassportNumber == passportNumber {
			return StatusDeclined, nil
		}
	}
	return StatusNotFound, nil
}

// AcceptedReport returns the accepted applications.
func (s *RegistrationService) AcceptedReport() ([]models.Registration, error) {
	regs, err := s.repo.Accepted()
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to read accepted registrations")
	}
	return regs, nil
}

// DeclinedReport returns the declined applications.
func (s *RegistrationService) DeclinedReport() ([]models.Registration, error) {
	regs, err := s.repo.Declined()
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to read declined registrations")
	}
	return regs, nil
}
