package models

import (
	"fmt"
	"strings"
)

// Student is a materialized learner record. ModuleIDs occupy a variable
// number of middle fields in the record line.
type Student struct {
	Name              string
	ID                string
	CourseCode        string
	ModuleIDs         []string
	IntakeMonth       string
	RegistrationMonth string
	Phone             string
	Email             string
	Address           string
	Age               string
}

// ParseStudent decodes a student record line. The layout is
// `name,id,course,module...,intake,reg_month,phone,email,address,age`;
// everything between the course code and the intake month is a module ID.
func ParseStudent(line string) (Student, error) {
	parts := strings.Split(line, ",")
	if len(parts) < 9 {
		return Student{}, fmt.Errorf("student record needs at least 9 fields, got %d: %q", len(parts), line)
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	tail := len(parts) - 6
	return Student{
		Name:              parts[0],
		ID:                parts[1],
		CourseCode:        parts[2],
		ModuleIDs:         append([]string(nil), parts[3:tail]...),
		IntakeMonth:       parts[tail],
		RegistrationMonth: parts[tail+1],
		Phone:             parts[tail+2],
		Email:             parts[tail+3],
		Address:           parts[tail+4],
		Age:               parts[tail+5],
	}, nil
}

// Record encodes the student as a record line.
func (s Student) Record() string {
	fields := []string{s.Name, s.ID, s.CourseCode}
	fields = append(fields, s.ModuleIDs...)
	fields = append(fields, s.IntakeMonth, s.RegistrationMonth, s.Phone, s.Email, s.Address, s.Age)
	return strings.Join(fields, ",")
}
