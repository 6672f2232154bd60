package menu

import "strings"

// Student runs the student self-service menu.
func (m *Menus) Student() {
	options := []option{
		{"View Available Modules", m.availableModules},
		{"Enroll In Module", m.enrollStudent},
		{"Unenroll From Module", m.unenrollStudent},
		{"View My Attendance", m.viewAttendance},
		{"View My Grades", m.viewStudentGrades},
		{"View My Payment Receipts", m.viewReceipts},
	}
	m.run("Student Menu", options, "Return", "Returning to the previous menu...")
}

func (m *Menus) availableModules() error {
	modules, err := m.svc.Modules.List()
	if err != nil {
		return err
	}
	if len(modules) == 0 {
		m.p.Printf("No modules available.\n")
		return nil
	}
	m.p.Printf("Available modules:\n%s\n", strings.Repeat("-", 60))
	for _, mod := range modules {
		m.p.Printf("ID: %-18s Name: %-24s Lecturer: %-18s Credits: %d\n",
			mod.ID, mod.Name, mod.LecturerName, mod.Credits)
	}
	return nil
}

func (m *Menus) viewStudentGrades() error {
	studentID := m.p.Ask("Enter your student ID: ")
	grades, err := m.svc.Grades.ByStudent(studentID)
	if err != nil {
		return err
	}
	if len(grades) == 0 {
		m.p.Printf("No grades recorded for student %s.\n", studentID)
		return nil
	}
	m.p.Printf("Grades for student %s:\n", studentID)
	for _, g := range grades {
		m.p.Printf("Module: %-18s %.2f%% (%s)\n", g.ModuleID, g.Percentage, g.Band)
	}
	return nil
}

func (m *Menus) viewReceipts() error {
	studentID := m.p.Ask("Enter your student ID: ")
	receipts, err := m.svc.Fees.Receipts(studentID)
	if err != nil {
		return err
	}
	if len(receipts) == 0 {
		m.p.Printf("No payment receipts found for student %s.\n", studentID)
		return nil
	}
	for _, r := range receipts {
		m.p.Printf("Receipt: %-38s Amount: %10.2f Paid: %s\n", r.Number, r.Amount, r.Timestamp)
	}
	return nil
}
