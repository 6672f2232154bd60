package models

import (
	"fmt"
	"strings"
)

// Attendance statuses.
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
)

// AttendanceDateLayout is the wire format for attendance dates.
const AttendanceDateLayout = "2006-01-02"

// AttendanceRecord is one append-only attendance mark for a student in a
// module on a date.
type AttendanceRecord struct {
	ModuleID  string
	StudentID string
	Date      string
	Status    string
}

// ParseAttendance decodes a `module_id,student_id,date,status` record line.
func ParseAttendance(line string) (AttendanceRecord, error) {
	parts := strings.Split(line, ",")
	if len(parts) != 4 {
		return AttendanceRecord{}, fmt.Errorf("attendance record needs 4 fields, got %d: %q", len(parts), line)
	}
	return AttendanceRecord{
		ModuleID:  strings.TrimSpace(parts[0]),
		StudentID: strings.TrimSpace(parts[1]),
		Date:      strings.TrimSpace(parts[2]),
		Status:    strings.ToLower(strings.TrimSpace(parts[3])),
	}, nil
}

// Record encodes the attendance mark as a record line.
func (a AttendanceRecord) Record() string {
	return fmt.Sprintf("%s,%s,%s,%s", a.ModuleID, a.StudentID, a.Date, a.Status)
}
