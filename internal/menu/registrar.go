package menu

import (
	"strconv"
	"strings"

	"github.com/campusware/urms/internal/models"
	"github.com/campusware/urms/internal/service"
	appErrors "github.com/campusware/urms/pkg/errors"
)

// Registrar runs the registrar role menu.
func (m *Menus) Registrar() {
	options := []option{
		{"Register Student", m.registerStudent},
		{"View Registration Records", m.viewRegistrations},
		{"Manage Registrations", m.manageRegistrations},
		{"Issue Transcript for Accepted", m.acceptedReport},
		{"Issue Transcript for Declined", m.declinedReport},
		{"Check Registration Status", m.checkApplicationStatus},
		{"Export Registration Reports", m.exportRegistrations},
	}
	m.run("Registrar Menu", options, "Logout", "Logging out from Registrar Menu...")
}

// registerStudent walks a prospective student through course selection and
// application submission.
func (m *Menus) registerStudent() error {
	course, err := m.selectCourse()
	if err != nil {
		return err
	}
	if course == nil {
		m.p.Printf("No course selected or course selection cancelled.\n")
		return nil
	}

	m.p.Printf("\nWelcome to the Student Registration Page!\n")
	req := service.SubmitRegistrationRequest{
		Name:           m.p.Ask("Name: "),
		Email:          m.p.Ask("Email: "),
		PassportNumber: m.p.Ask("Passport Number: "),
		CourseName:     course.Name,
	}
	reg, err := m.svc.Registrations.Submit(req)
	if err != nil {
		return err
	}
	m.p.Printf("\nRegistration Successful!\n")
	m.p.Printf("Name: %s\nEmail: %s\nPassport Number: %s\nCourse: %s\n",
		reg.Name, reg.Email, reg.PassportNumber, reg.CourseName)
	m.p.Pause()
	return nil
}

// selectCourse pages through the catalogue; nil means cancelled.
func (m *Menus) selectCourse() (*models.Course, error) {
	courses, err := m.svc.Courses.List()
	if err != nil {
		return nil, err
	}
	if len(courses) == 0 {
		m.p.Printf("No courses available.\n")
		return nil, nil
	}
	pageSize := m.cfg.Menu.CoursePageSize
	page := 0
	for {
		start := page * pageSize
		end := start + pageSize
		if end > len(courses) {
			end = len(courses)
		}
		m.p.Printf("\nAvailable Courses:\n%s\n", strings.Repeat("-", 40))
		for i := start; i < end; i++ {
			m.p.Printf("%d. %s (ID: %s)\n", i+1, courses[i].Name, courses[i].Code)
		}
		m.p.Printf("%s\n\nOptions:\n", strings.Repeat("-", 40))
		if end < len(courses) {
			m.p.Printf("N. Next Page\n")
		}
		if page > 0 {
			m.p.Printf("P. Previous Page\n")
		}
		m.p.Printf("Enter the number corresponding to a course to select it.\nE. Exit Course Selection\n")

		choice := strings.ToLower(m.p.Ask("Enter your choice: "))
		switch {
		case choice == "n" && end < len(courses):
			page++
		case choice == "p" && page > 0:
			page--
		case choice == "e":
			return nil, nil
		default:
			index, err := strconv.Atoi(choice)
			if err != nil || index < 1 || index > len(courses) {
				m.p.Printf("Invalid option. Please try again.\n")
				continue
			}
			return &courses[index-1], nil
		}
	}
}

func (m *Menus) viewRegistrations() error {
	entries, skipped, err := m.svc.Registrations.ListPending()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		m.p.Printf("No registrations to display.\n")
		return nil
	}
	m.p.Printf("\nCurrent Registrations:\n%s\n", strings.Repeat("-", 50))
	for _, entry := range entries {
		m.p.Printf("Name: %-18s Email: %-28s Course: %-18s\n", entry.Name, entry.Email, entry.CourseName)
	}
	if skipped > 0 {
		m.p.Printf("(%d malformed entries skipped)\n", skipped)
	}
	m.p.Printf("%s\n", strings.Repeat("-", 50))
	m.p.Pause()
	return nil
}

// manageRegistrations prompts a decision for every pending application.
// "cancel" skips one, "stop" leaves the rest for later.
func (m *Menus) manageRegistrations() error {
	entries, skipped, err := m.svc.Registrations.ListPending()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		m.p.Printf("No registrations to process.\n")
		return nil
	}
	if skipped > 0 {
		m.p.Printf("(%d malformed entries skipped)\n", skipped)
	}

	// Removing a pending line shifts every later raw index down by one.
	removed := 0
	for _, entry := range entries {
		var decision models.RegistrationDecision
		for {
			answer := strings.ToLower(m.p.Ask(
				"Accept or decline this registration? (accept/decline/cancel/stop) for " + entry.Name + ": "))
			if answer == "stop" {
				m.p.Printf("Leaving the remaining registrations pending.\n")
				return nil
			}
			decision = models.RegistrationDecision(answer)
			if decision == models.DecisionAccept || decision == models.DecisionDecline || decision == models.DecisionCancel {
				break
			}
			m.p.Printf("Invalid input. Please enter 'accept', 'decline', 'cancel' or 'stop'.\n")
		}
		entry.Index -= removed
		result, err := m.svc.Registrations.Decide(entry, decision)
		if err != nil {
			return err
		}
		if result == nil {
			m.p.Printf("Skipped %s; the registration stays pending.\n", entry.Name)
			continue
		}
		removed++
		if result.Decision == models.DecisionDecline {
			m.p.Printf("Student %s has been declined.\n", entry.Name)
			continue
		}

		m.p.Printf("\nAccepted Student Information (copy this for reference):\n")
		m.p.Printf("Name: %s\nEmail: %s\nPassport Number: %s\nCourse: %s\n",
			result.Registration.Name, result.Registration.Email,
			result.Registration.PassportNumber, result.Registration.CourseName)
		if result.CourseCode != "" {
			m.p.Printf("Course ID: %s\n", result.CourseCode)
		} else {
			m.p.Printf("Course ID: Not Found\n")
		}
		if strings.ToLower(m.p.Ask("Create the student record now? (yes/no): ")) == "yes" {
			if err := m.addStudentFromRegistration(result); err != nil {
				m.p.Printf("Error: %s\n", appErrors.FromError(err).Message)
			}
		}
	}
	return nil
}

func (m *Menus) acceptedReport() error {
	regs, err := m.svc.Registrations.AcceptedReport()
	if err != nil {
		return err
	}
	if len(regs) == 0 {
		m.p.Printf("No accepted registrations found.\n")
		return nil
	}
	m.p.Printf("Accepted registrations:\n")
	for _, reg := range regs {
		m.p.Printf("Name: %-18s Email: %-28s Department: %-18s\n", reg.Name, reg.Email, reg.CourseName)
	}
	m.p.Pause()
	return nil
}

func (m *Menus) declinedReport() error {
	regs, err := m.svc.Registrations.DeclinedReport()
	if err != nil {
		return err
	}
	if len(regs) == 0 {
		m.p.Printf("No declined registrations found.\n")
		return nil
	}
	m.p.Printf("Declined registrations:\n")
	for _, reg := range regs {
		m.p.Printf("Name: %-18s Email: %-28s Department: %-18s\n", reg.Name, reg.Email, reg.CourseName)
	}
	m.p.Pause()
	return nil
}

func (m *Menus) exportRegistrations() error {
	which := strings.ToLower(m.p.Ask("Export which report? (accepted/declined): "))
	format := strings.ToLower(m.p.Ask("Format? (csv/pdf): "))
	var path string
	var err error
	switch which {
	case "accepted":
		path, err = m.svc.Exports.AcceptedRegistrations(format)
	case "declined":
		path, err = m.svc.Exports.DeclinedRegistrations(format)
	default:
		m.p.Printf("Unknown report %q.\n", which)
		return nil
	}
	if err != nil {
		return err
	}
	m.p.Printf("Report written to %s\n", path)
	return nil
}

// addStudentFromRegistration seeds the student form from an accepted
// application and prompts for the remaining details.
func (m *Menus) addStudentFromRegistration(result *service.DecisionResult) error {
	req := service.AddStudentRequest{
		Name:       result.Registration.Name,
		Email:      result.Registration.Email,
		CourseCode: result.CourseCode,
	}
	if req.CourseCode == "" {
		req.CourseCode = m.p.Ask("Enter course ID: ")
	}
	req.Phone = m.p.Ask("Enter phone number: ")
	req.Address = m.p.Ask("Enter address: ")
	req.Age = m.p.Ask("Enter age: ")
	for _, id := range strings.Split(m.p.Ask("Enter module IDs (comma separated): "), ",") {
		if id = strings.TrimSpace(id); id != "" {
			req.ModuleIDs = append(req.ModuleIDs, id)
		}
	}
	req.IntakeMonth = m.p.Ask("Enter intake month: ")
	req.RegistrationMonth = m.p.Ask("Enter registration month: ")

	student, err := m.svc.Students.Add(req)
	if err != nil {
		return err
	}
	m.p.Printf("Student %s added successfully with ID %s.\n", student.Name, student.ID)
	return nil
}
