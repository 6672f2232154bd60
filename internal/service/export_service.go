package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/campusware/urms/internal/models"
	appErrors "github.com/campusware/urms/pkg/errors"
	"github.com/campusware/urms/pkg/export"
)

// Export formats.
const (
	FormatCSV = "csv"
	FormatPDF = "pdf"
)

type exportStorage interface {
	Save(filename string, data []byte) (string, error)
	CleanupOlderThan(ttl time.Duration) ([]string, error)
	Path(filename string) string
}

type registrationReports interface {
	Accepted() ([]models.Registration, error)
	Declined() ([]models.Registration, error)
}

type feePendingReader interface {
	PendingList() ([]models.Fee, error)
}

// ExportService renders registrar and accountant reports to CSV or PDF files
// under the exports directory.
type ExportService struct {
	csv           *export.CSVExporter
	pdf           *export.PDFExporter
	storage       exportStorage
	registrations registrationReports
	fees          feePendingReader
	logger        *zap.Logger
}

// NewExportService constructs the export service.
func NewExportService(storage exportStorage, registrations registrationReports, fees feePendingReader, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		csv:           export.NewCSVExporter(),
		pdf:           export.NewPDFExporter(),
		storage:       storage,
		registrations: registrations,
		fees:          fees,
		logger:        logger,
	}
}

// AcceptedRegistrations exports the accepted store and returns the absolute
// path of the written file.
func (s *ExportService) AcceptedRegistrations(format string) (string, error) {
	regs, err := s.registrations.Accepted()
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to read accepted registrations")
	}
	return s.write("accepted_registrations", format, registrationDataset("Accepted Registrations", regs))
}

// DeclinedRegistrations exports the declined store.
func (s *ExportService) DeclinedRegistrations(format string) (string, error) {
	regs, err := s.registrations.Declined()
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to read declined registrations")
	}
	return s.write("declined_registrations", format, registrationDataset("Declined Registrations", regs))
}

// OutstandingFees exports the pending tuition ledger.
func (s *ExportService) OutstandingFees(format string) (string, error) {
	fees, err := s.fees.PendingList()
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to read pending fees")
	}
	data := export.Dataset{
		Title:   "Outstanding Tuition Fees",
		Headers: []string{"Student ID", "Amount Due", "Last Updated"},
	}
	for _, fee := range fees {
		data.Rows = append(data.Rows, []string{fee.StudentID, fmt.Sprintf("%.2f", fee.Amount), fee.Timestamp})
	}
	return s.write("outstanding_fees", format, data)
}

// Receipt renders a payment receipt as PDF and returns the written path.
func (s *ExportService) Receipt(receipt models.FeeReceipt) (string, error) {
	rendered, err := s.pdf.RenderReceipt(export.Receipt{
		Number:    receipt.Number,
		StudentID: receipt.StudentID,
		Amount:    receipt.Amount,
		PaidAt:    receipt.Timestamp,
	})
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to render receipt")
	}
	filename := fmt.Sprintf("receipt_%s.pdf", receipt.Number)
	if _, err := s.storage.Save(filename, rendered); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to save receipt")
	}
	return s.storage.Path(filename), nil
}

// Cleanup removes export files older than the TTL and returns their names.
func (s *ExportService) Cleanup(ttl time.Duration) ([]string, error) {
	deleted, err := s.storage.CleanupOlderThan(ttl)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to clean up exports")
	}
	if len(deleted) > 0 {
		s.logger.Info("old exports removed", zap.Int("count", len(deleted)))
	}
	return deleted, nil
}

func (s *ExportService) write(name, format string, data export.Dataset) (string, error) {
	var rendered []byte
	var err error
	switch format {
	case FormatCSV:
		rendered, err = s.csv.Render(data)
	case FormatPDF:
		rendered, err = s.pdf.Render(data)
	default:
		return "", appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")
	}
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to render export")
	}
	filename := fmt.Sprintf("%s_%s.%s", name, uuid.NewString(), format)
	if _, err := s.storage.Save(filename, rendered); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to save export")
	}
	s.logger.Info("report exported", zap.String("file", filename))
	return s.storage.Path(filename), nil
}

func registrationDataset(title string, regs []models.Registration) export.Dataset {
	data := export.Dataset{
		Title:   title,
		Headers: []string{"Name", "Email", "Passport Number", "Course"},
	}
	for _, reg := range regs {
		data.Rows = append(data.Rows, []string{reg.Name, reg.Email, reg.PassportNumber, reg.CourseName})
	}
	return data
}
