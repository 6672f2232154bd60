package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Grade is an append-only grading record; the same student/module pair may
// be graded more than once and later reads show all rows.
type Grade struct {
	StudentID  string
	ModuleID   string
	Percentage float64
	Band       string
}

// ParseGrade decodes a `student_id,module_id,percentage,band` record line.
func ParseGrade(line string) (Grade, error) {
	parts := strings.Split(line, ",")
	if len(parts) < 4 {
		return Grade{}, fmt.Errorf("grade record needs 4 fields, got %d: %q", len(parts), line)
	}
	pct, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
	if err != nil {
		return Grade{}, fmt.Errorf("grade percentage not numeric: %q", line)
	}
	return Grade{
		StudentID:  strings.TrimSpace(parts[0]),
		ModuleID:   strings.TrimSpace(parts[1]),
		Percentage: pct,
		Band:       strings.TrimSpace(parts[3]),
	}, nil
}

// Record encodes the grade as a record line.
func (g Grade) Record() string {
	return fmt.Sprintf("%s,%s,%s,%s", g.StudentID, g.ModuleID,
		strconv.FormatFloat(g.Percentage, 'f', -1, 64), g.Band)
}

// DistinctionBand maps a percentage in [0,100] to its letter band.
func DistinctionBand(percentage float64) string {
	switch {
	case percentage >= 90:
		return "A+"
	case percentage >= 80:
		return "A-"
	case percentage >= 70:
		return "B+"
	case percentage >= 65:
		return "B-"
	case percentage >= 60:
		return "C+"
	case percentage >= 55:
		return "C-"
	case percentage >= 45:
		return "D+"
	case percentage >= 30:
		return "D-"
	default:
		return "Fail"
	}
}
