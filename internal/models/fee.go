package models

import (
	"fmt"
	"strconv"
	"strings"
)

// FeeTimestampLayout is the wire format for fee and receipt timestamps.
const FeeTimestampLayout = "2006-01-02 15:04:05"

// Fee is a tuition ledger row. Pending rows have three fields; paid rows
// carry a trailing `paid` tag.
type Fee struct {
	StudentID string
	Amount    float64
	Timestamp string
	Paid      bool
}

// ParseFee decodes a pending or paid tuition record line.
func ParseFee(line string) (Fee, error) {
	parts := strings.Split(line, ",")
	if len(parts) < 3 {
		return Fee{}, fmt.Errorf("fee record needs at least 3 fields, got %d: %q", len(parts), line)
	}
	amount, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Fee{}, fmt.Errorf("fee amount not numeric: %q", line)
	}
	// Pending timestamps contain a comma-free "date time" pair, so the
	// timestamp is everything between the amount and an optional paid tag.
	paid := strings.EqualFold(strings.TrimSpace(parts[len(parts)-1]), "paid")
	tsEnd := len(parts)
	if paid {
		tsEnd--
	}
	return Fee{
		StudentID: strings.TrimSpace(parts[0]),
		Amount:    amount,
		Timestamp: strings.TrimSpace(strings.Join(parts[2:tsEnd], ",")),
		Paid:      paid,
	}, nil
}

// Record encodes the fee as a record line.
func (f Fee) Record() string {
	line := fmt.Sprintf("%s,%.2f,%s", f.StudentID, f.Amount, f.Timestamp)
	if f.Paid {
		line += ",paid"
	}
	return line
}

// FeeReceipt is one row of the receipt log, written when a payment is
// recorded.
type FeeReceipt struct {
	Number    string
	StudentID string
	Amount    float64
	Timestamp string
}

// ParseFeeReceipt decodes a `receipt_no,student_id,amount,timestamp` line.
func ParseFeeReceipt(line string) (FeeReceipt, error) {
	parts := strings.SplitN(line, ",", 4)
	if len(parts) < 4 {
		return FeeReceipt{}, fmt.Errorf("receipt record needs 4 fields, got %d: %q", len(parts), line)
	}
	amount, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
	if err != nil {
		return FeeReceipt{}, fmt.Errorf("receipt amount not numeric: %q", line)
	}
	return FeeReceipt{
		Number:    strings.TrimSpace(parts[0]),
		StudentID: strings.TrimSpace(parts[1]),
		Amount:    amount,
		Timestamp: strings.TrimSpace(parts[3]),
	}, nil
}

// Record encodes the receipt as a record line.
func (r FeeReceipt) Record() string {
	return fmt.Sprintf("%s,%s,%.2f,%s", r.Number, r.StudentID, r.Amount, r.Timestamp)
}
