package menu

import (
	"strings"

	"github.com/campusware/urms/internal/service"
)

// Accountant runs the accountant role menu.
func (m *Menus) Accountant() {
	options := []option{
		{"Record Tuition Fees", m.recordTuitionFee},
		{"View Outstanding Fees", m.viewOutstandingFees},
		{"Financial Summary", m.financialSummary},
		{"Export Outstanding Fees", m.exportOutstandingFees},
	}
	m.run("Accountant Menu", options, "Logout", "Logging out from Accountant Menu...")
}

func (m *Menus) recordTuitionFee() error {
	req := service.FeeRequest{StudentID: m.p.Ask("Enter student ID: ")}
	amount, err := m.p.AskFloat("Enter amount: ")
	if err != nil {
		return err
	}
	req.Amount = amount

	m.p.Printf("1. Record as pending\n2. Record as paid\n")
	switch m.p.Ask("Enter your choice: ") {
	case "1":
		fee, err := m.svc.Fees.AddPending(req)
		if err != nil {
			return err
		}
		m.p.Printf("Pending fee of %.2f recorded for student %s at %s.\n",
			fee.Amount, fee.StudentID, fee.Timestamp)
	case "2":
		receipt, err := m.svc.Fees.MarkPaid(req)
		if err != nil {
			return err
		}
		m.p.Printf("Payment of %.2f recorded for student %s. Receipt number: %s\n",
			receipt.Amount, receipt.StudentID, receipt.Number)
		if strings.ToLower(m.p.Ask("Generate a PDF receipt? (yes/no): ")) == "yes" {
			path, err := m.svc.Exports.Receipt(*receipt)
			if err != nil {
				return err
			}
			m.p.Printf("Receipt written to %s\n", path)
		}
	default:
		m.p.Printf("Invalid choice.\n")
	}
	return nil
}

func (m *Menus) viewOutstandingFees() error {
	m.p.Printf("Sort by:\n1. Amount\n2. Date\n")
	sortBy := service.SortByDate
	if m.p.Ask("Enter your choice: ") == "1" {
		sortBy = service.SortByAmount
	}
	fees, err := m.svc.Fees.Outstanding(sortBy)
	if err != nil {
		return err
	}
	if len(fees) == 0 {
		m.p.Printf("No outstanding fees.\n")
		return nil
	}
	m.p.Printf("Outstanding fees:\n%s\n", strings.Repeat("-", 50))
	for _, fee := range fees {
		m.p.Printf("Student: %-10s Amount: %10.2f Recorded: %s\n", fee.StudentID, fee.Amount, fee.Timestamp)
	}
	m.p.Pause()
	return nil
}

func (m *Menus) financialSummary() error {
	summary, err := m.svc.Fees.Summary()
	if err != nil {
		return err
	}
	m.p.Printf("Total collected:   %12.2f\n", summary.TotalPaid)
	m.p.Printf("Total outstanding: %12.2f\n", summary.TotalOutstanding)
	return nil
}

func (m *Menus) exportOutstandingFees() error {
	format := strings.ToLower(m.p.Ask("Format? (csv/pdf): "))
	path, err := m.svc.Exports.OutstandingFees(format)
	if err != nil {
		return err
	}
	m.p.Printf("Report written to %s\n", path)
	return nil
}
