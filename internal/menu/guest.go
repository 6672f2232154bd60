package menu

import "github.com/campusware/urms/internal/service"

// Guest runs the top-level menu available without any login.
func (m *Menus) Guest() {
	options := []option{
		{"View General Information", m.generalInformation},
		{"Register as a Student", m.registerStudent},
		{"Access Staff Menu (Password Required)", m.staffGate},
		{"Student Menu", func() error { m.Student(); return nil }},
		{"Check Application Status", m.checkApplicationStatus},
	}
	m.run("Guest Menu", options, "Exit", "Exiting the system. Goodbye!")
}

func (m *Menus) generalInformation() error {
	m.p.Printf("General information: Welcome to our University Management System.\n")
	return nil
}

func (m *Menus) staffGate() error {
	password := m.p.Ask("Enter the staff menu password: ")
	if password != m.cfg.Access.StaffMenuPassword {
		m.p.Printf("Invalid password. Access denied.\n")
		return nil
	}
	m.p.Printf("Access granted. Redirecting to Staff Menu...\n")
	m.Staff()
	return nil
}

func (m *Menus) checkApplicationStatus() error {
	passport := m.p.Ask("Enter the Passport Number: ")
	status, err := m.svc.Registrations.CheckStatus(passport)
	if err != nil {
		return err
	}
	switch status {
	case service.StatusAccepted:
		m.p.Printf("The student has been accepted.\n")
	case service.StatusDeclined:
		m.p.Printf("The student has been declined.\n")
	default:
		m.p.Printf("The student is not found in the records.\n")
	}
	return nil
}
