package models

import (
	"fmt"
	"strings"
)

// Course represents a degree programme students register for.
type Course struct {
	Code    string
	Name    string
	Details string
}

// ParseCourse decodes a `code,name,details` record line.
func ParseCourse(line string) (Course, error) {
	parts := strings.SplitN(line, ",", 3)
	if len(parts) < 3 {
		return Course{}, fmt.Errorf("course record needs 3 fields, got %d: %q", len(parts), line)
	}
	return Course{
		Code:    strings.TrimSpace(parts[0]),
		Name:    strings.TrimSpace(parts[1]),
		Details: strings.TrimSpace(parts[2]),
	}, nil
}

// Record encodes the course as a record line.
func (c Course) Record() string {
	return fmt.Sprintf("%s,%s,%s", c.Code, c.Name, c.Details)
}
