package models

import (
	"fmt"
	"strings"
)

// Enrollment links a student to a module; the (ModuleID, StudentID) pair is
// the identity.
type Enrollment struct {
	ModuleID    string
	StudentID   string
	StudentName string
}

// ParseEnrollment decodes a `module_id,student_id,student_name` record line.
func ParseEnrollment(line string) (Enrollment, error) {
	parts := strings.SplitN(line, ",", 3)
	if len(parts) < 3 {
		return Enrollment{}, fmt.Errorf("enrollment record needs 3 fields, got %d: %q", len(parts), line)
	}
	return Enrollment{
		ModuleID:    strings.TrimSpace(parts[0]),
		StudentID:   strings.TrimSpace(parts[1]),
		StudentName: strings.TrimSpace(parts[2]),
	}, nil
}

// Record encodes the enrollment as a record line.
func (e Enrollment) Record() string {
	return fmt.Sprintf("%s,%s,%s", e.ModuleID, e.StudentID, e.StudentName)
}
