package menu

import (
	"github.com/campusware/urms/internal/models"
	"github.com/campusware/urms/internal/service"
)

// Staff runs the password-gated staff menu; each role menu additionally
// requires a login with that role.
func (m *Menus) Staff() {
	options := []option{
		{"Admin Menu", func() error { return m.roleGate(models.RoleAdmin, m.Admin) }},
		{"Lecturer Menu", func() error { return m.roleGate(models.RoleLecturer, m.Lecturer) }},
		{"Accountant Menu", func() error { return m.roleGate(models.RoleAccountant, m.Accountant) }},
		{"Registrar Menu", func() error { return m.roleGate(models.RoleRegistrar, m.Registrar) }},
		{"Register", m.registerUser},
		{"Login", m.loginAndDispatch},
	}
	m.run("Staff Menu", options, "Exit", "Exiting the staff menu.")
}

func (m *Menus) roleGate(role string, open func()) error {
	m.p.Printf("Accessing the %s Menu requires a %s login.\n", role, role)
	actual, err := m.login()
	if err != nil {
		return err
	}
	if actual != role {
		m.p.Printf("Access denied. You are not authorized to access the %s Menu.\n", role)
		return nil
	}
	open()
	return nil
}

func (m *Menus) login() (string, error) {
	username := m.p.Ask("Enter your username: ")
	password := m.p.Ask("Enter your password: ")
	role, err := m.svc.Auth.Login(username, password)
	if err != nil {
		return "", err
	}
	m.p.Printf("Login successful! Welcome, %s.\n", username)
	return role, nil
}

func (m *Menus) loginAndDispatch() error {
	role, err := m.login()
	if err != nil {
		return err
	}
	switch role {
	case models.RoleAdmin:
		m.Admin()
	case models.RoleLecturer:
		m.Lecturer()
	case models.RoleAccountant:
		m.Accountant()
	case models.RoleRegistrar:
		m.Registrar()
	case models.RoleStudent:
		m.Student()
	default:
		m.p.Printf("No menu available for role %q.\n", role)
	}
	return nil
}

func (m *Menus) registerUser() error {
	req := service.RegisterUserRequest{
		Username:        m.p.Ask("Enter a username: "),
		Password:        m.p.Ask("Enter a password: "),
		ConfirmPassword: m.p.Ask("Re-enter your password: "),
	}
	m.p.Printf("Available roles: student, lecturer, accountant, registrar, admin\n")
	req.Role = m.p.Ask("Enter your role: ")
	if req.Role == "admin" || req.Role == "Admin" {
		req.AdminAccessCode = m.p.Ask("Enter the admin access code to register as admin: ")
	}
	user, err := m.svc.Auth.Register(req)
	if err != nil {
		return err
	}
	m.p.Printf("User %q registered successfully as %s.\n", user.Username, user.Role)
	return nil
}
