package service

import (
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campusware/urms/internal/idgen"
	"github.com/campusware/urms/internal/models"
	appErrors "github.com/campusware/urms/pkg/errors"
)

type feeRepository interface {
	PendingList() ([]models.Fee, error)
	PaidList() ([]models.Fee, error)
	AppendPending(fee models.Fee) error
	AppendPaid(fee models.Fee) error
	RemovePendingByStudent(studentID string) (bool, error)
	AppendReceipt(receipt models.FeeReceipt) error
	ReceiptsByStudent(studentID string) ([]models.FeeReceipt, error)
}

// FeeRequest holds payload for a pending charge or a payment.
type FeeRequest struct {
	StudentID string  `validate:"required"`
	Amount    float64 `validate:"gt=0"`
}

// Outstanding sort orders.
const (
	SortByAmount = "amount"
	SortByDate   = "date"
)

// FinancialSummary totals the ledger.
type FinancialSummary struct {
	TotalPaid        float64
	TotalOutstanding float64
}

// FeeService maintains the tuition ledger.
type FeeService struct {
	repo      feeRepository
	students  studentLookup
	validator *validator.Validate
	logger    *zap.Logger
}

// NewFeeService constructs the fee service.
func NewFeeService(repo feeRepository, students studentLookup, validate *validator.Validate, logger *zap.Logger) *FeeService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FeeService{repo: repo, students: students, validator: validate, logger: logger}
}

// AddPending records an outstanding tuition amount for an existing student.
func (s *FeeService) AddPending(req FeeRequest) (*models.Fee, error) {
	if err := s.validateStudent(req); err != nil {
		return nil, err
	}
	fee := models.Fee{
		StudentID: req.StudentID,
		Amount:    req.Amount,
		Timestamp: time.Now().Format(models.FeeTimestampLayout),
	}
	if err := s.repo.AppendPending(fee); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to record pending fee")
	}
	s.logger.Info("pending fee recorded", zap.String("student_id", req.StudentID), zap.Float64("amount", req.Amount))
	return &fee, nil
}

// MarkPaid settles a student's tuition: the first pending row for the
// student is removed, a paid row is appended and exactly one receipt is
// written. A payment with no pending row is still recorded; the missing
// pending entry is only logged.
func (s *FeeService) MarkPaid(req FeeRequest) (*models.FeeReceipt, error) {
	if err := s.validateStudent(req); err != nil {
		return nil, err
	}
	removed, err := s.repo.RemovePendingByStudent(req.StudentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to update pending fees")
	}
	if !removed {
		s.logger.Warn("payment recorded without a pending fee", zap.String("student_id", req.StudentID))
	}
	timestamp := time.Now().Format(models.FeeTimestampLayout)
	paid := models.Fee{
		StudentID: req.StudentID,
		Amount:    req.Amount,
		Timestamp: timestamp,
		Paid:      true,
	}
	if err := s.repo.AppendPaid(paid); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to record payment")
	}
	receipt := models.FeeReceipt{
		Number:    idgen.ReceiptNumber(),
		StudentID: req.StudentID,
		Amount:    req.Amount,
		Timestamp: timestamp,
	}
	if err := s.repo.AppendReceipt(receipt); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to write receipt")
	}
	s.logger.Info("tuition payment recorded", zap.String("student_id", req.StudentID),
		zap.Float64("amount", req.Amount), zap.String("receipt", receipt.Number))
	return &receipt, nil
}

// Outstanding returns the pending rows, optionally sorted by amount or date.
func (s *FeeService) Outstanding(sortBy string) ([]models.Fee, error) {
	fees, err := s.repo.PendingList()
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to read pending fees")
	}
	switch sortBy {
	case SortByAmount:
		sort.SliceStable(fees, func(i, j int) bool { return fees[i].Amount < fees[j].Amount })
	case SortByDate:
		sort.SliceStable(fees, func(i, j int) bool { return fees[i].Timestamp < fees[j].Timestamp })
	}
	return fees, nil
}

// Summary totals the paid and pending stores.
func (s *FeeService) Summary() (*FinancialSummary, error) {
	paid, err := s.repo.PaidList()
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to read paid fees")
	}
	pending, err := s.repo.PendingList()
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to read pending fees")
	}
	summary := &FinancialSummary{}
	for _, fee := range paid {
		summary.TotalPaid += fee.Amount
	}
	for _, fee := range pending {
		summary.TotalOutstanding += fee.Amount
	}
	return summary, nil
}

// Receipts returns the payment receipts of a student.
func (s *FeeService) Receipts(studentID string) ([]models.FeeReceipt, error) {
	if studentID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "student ID cannot be empty")
	}
	receipts, err := s.repo.ReceiptsByStudent(studentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to read receipts")
	}
	return receipts, nil
}

func (s *FeeService) validateStudent(req FeeRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, "amount must be greater than zero")
	}
	if _, err := s.students.FindByID(req.StudentID); err != nil {
		if appErrors.Is(err, appErrors.ErrNotFound) {
			return appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to validate student")
	}
	return nil
}
