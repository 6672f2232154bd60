package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Module is a course unit with an assigned lecturer and an attendance
// requirement; ClassCount is the attendance denominator.
type Module struct {
	ID           string
	Name         string
	LecturerName string
	LecturerID   string
	Credits      int
	ClassCount   int
}

// ParseModule decodes a `module_id,name,lecturer_name,lecturer_id,credits,class_count` line.
func ParseModule(line string) (Module, error) {
	parts := strings.Split(line, ",")
	if len(parts) < 6 {
		return Module{}, fmt.Errorf("module record needs 6 fields, got %d: %q", len(parts), line)
	}
	credits, err := strconv.Atoi(strings.TrimSpace(parts[4]))
	if err != nil {
		return Module{}, fmt.Errorf("module credits not numeric: %q", line)
	}
	classCount, err := strconv.Atoi(strings.TrimSpace(parts[5]))
	if err != nil {
		return Module{}, fmt.Errorf("module class count not numeric: %q", line)
	}
	return Module{
		ID:           strings.TrimSpace(parts[0]),
		Name:         strings.TrimSpace(parts[1]),
		LecturerName: strings.TrimSpace(parts[2]),
		LecturerID:   strings.TrimSpace(parts[3]),
		Credits:      credits,
		ClassCount:   classCount,
	}, nil
}

// Record encodes the module as a record line.
func (m Module) Record() string {
	return fmt.Sprintf("%s,%s,%s,%s,%d,%d", m.ID, m.Name, m.LecturerName, m.LecturerID, m.Credits, m.ClassCount)
}
