package models

import (
	"fmt"
	"strings"
)

// RegistrationDecision is the registrar's verdict on a pending application.
type RegistrationDecision string

// Possible decisions; cancel leaves the application pending.
const (
	DecisionAccept  RegistrationDecision = "accept"
	DecisionDecline RegistrationDecision = "decline"
	DecisionCancel  RegistrationDecision = "cancel"
)

// Registration is a student application. The same layout is used for the
// pending, accepted and declined stores; the passport number is the de facto
// identity.
type Registration struct {
	Name           string
	Email          string
	PassportNumber string
	CourseName     string
}

// ParseRegistration decodes a `name,email,passport,course` record line. The
// course name may itself contain commas, so everything past the passport
// field belongs to it.
func ParseRegistration(line string) (Registration, error) {
	parts := strings.SplitN(line, ",", 4)
	if len(parts) < 4 {
		return Registration{}, fmt.Errorf("registration record needs 4 fields, got %d: %q", len(parts), line)
	}
	return Registration{
		Name:           strings.TrimSpace(parts[0]),
		Email:          strings.TrimSpace(parts[1]),
		PassportNumber: strings.TrimSpace(parts[2]),
		CourseName:     strings.TrimSpace(parts[3]),
	}, nil
}

// Record encodes the registration as a record line.
func (r Registration) Record() string {
	return fmt.Sprintf("%s,%s,%s,%s", r.Name, r.Email, r.PassportNumber, r.CourseName)
}
