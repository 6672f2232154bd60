package repository

import (
	"go.uber.org/zap"

	"github.com/campusware/urms/internal/models"
	"github.com/campusware/urms/internal/textdb"
)

// FeeRepository manages the tuition ledger: pending and paid stores plus the
// receipt log.
type FeeRepository struct {
	store  *textdb.Store
	logger *zap.Logger
}

// NewFeeRepository constructs a FeeRepository.
func NewFeeRepository(store *textdb.Store, logger *zap.Logger) *FeeRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FeeRepository{store: store, logger: logger}
}

// PendingList returns the outstanding fee rows.
func (r *FeeRepository) PendingList() ([]models.Fee, error) {
	return r.readFees(textdb.TuitionFeesPending)
}

// PaidList returns the settled fee rows.
func (r *FeeRepository) PaidList() ([]models.Fee, error) {
	return r.readFees(textdb.TuitionFeesPaid)
}

// AppendPending adds an outstanding fee row.
func (r *FeeRepository) AppendPending(fee models.Fee) error {
	return r.store.Append(textdb.TuitionFeesPending, fee.Record())
}

// AppendPaid adds a settled fee row.
func (r *FeeRepository) AppendPaid(fee models.Fee) error {
	return r.store.Append(textdb.TuitionFeesPaid, fee.Record())
}

// RemovePendingByStudent deletes the first pending row belonging to the
// student, rewriting the file, and reports whether one was found.
func (r *FeeRepository) RemovePendingByStudent(studentID string) (bool, error) {
	lines, err := r.store.ReadLines(textdb.TuitionFeesPending)
	if err != nil {
		return false, err
	}
	kept := make([]string, 0, len(lines))
	found := false
	for _, line := range lines {
		if !found {
			fee, err := models.ParseFee(line)
			if err == nil && fee.StudentID == studentID {
				found = true
				continue
			}
		}
		kept = append(kept, line)
	}
	if !found {
		return false, nil
	}
	if err := r.store.Overwrite(textdb.TuitionFeesPending, kept); err != nil {
		return false, err
	}
	return true, nil
}

// AppendReceipt adds a receipt row.
func (r *FeeRepository) AppendReceipt(receipt models.FeeReceipt) error {
	return r.store.Append(textdb.FeeReceipts, receipt.Record())
}

// ReceiptsByStudent returns the receipt rows belonging to a student.
func (r *FeeRepository) ReceiptsByStudent(studentID string) ([]models.FeeReceipt, error) {
	lines, err := r.store.ReadLines(textdb.FeeReceipts)
	if err != nil {
		return nil, err
	}
	var receipts []models.FeeReceipt
	for _, line := range lines {
		receipt, err := models.ParseFeeReceipt(line)
		if err != nil {
			r.logger.Warn("malformed receipt line skipped", zap.Error(err))
			continue
		}
		if receipt.StudentID == studentID {
			receipts = append(receipts, receipt)
		}
	}
	return receipts, nil
}

func (r *FeeRepository) readFees(file string) ([]models.Fee, error) {
	lines, err := r.store.ReadLines(file)
	if err != nil {
		return nil, err
	}
	fees := make([]models.Fee, 0, len(lines))
	for _, line := range lines {
		fee, err := models.ParseFee(line)
		if err != nil {
			r.logger.Warn("malformed fee line skipped", zap.String("file", file), zap.Error(err))
			continue
		}
		fees = append(fees, fee)
	}
	return fees, nil
}
