package menu

import (
	"strings"

	"github.com/campusware/urms/internal/service"
)

// Lecturer runs the lecturer role menu.
func (m *Menus) Lecturer() {
	options := []option{
		{"View Assigned Modules", m.assignedModules},
		{"Add Student To Module", m.enrollStudent},
		{"Remove Student From Module", m.unenrollStudent},
		{"View Enrolled Students", m.enrolledStudents},
		{"Search Student In Module", m.searchStudentInModule},
		{"Give Attendance", m.recordAttendance},
		{"View Attendance", m.viewAttendance},
		{"Add Grades", m.addGrade},
		{"View Grades", m.viewModuleGrades},
	}
	m.run("Lecturer Menu", options, "Logout", "Logging out from Lecturer Menu...")
}

func (m *Menus) assignedModules() error {
	lecturerID := m.p.Ask("Enter your lecturer ID: ")
	modules, err := m.svc.Modules.ByLecturer(lecturerID)
	if err != nil {
		return err
	}
	if len(modules) == 0 {
		m.p.Printf("No modules assigned to lecturer %s.\n", lecturerID)
		return nil
	}
	for _, mod := range modules {
		m.p.Printf("ID: %-18s Name: %-24s Credits: %-3d Classes: %d\n",
			mod.ID, mod.Name, mod.Credits, mod.ClassCount)
	}
	return nil
}

func (m *Menus) enrollStudent() error {
	moduleID := m.p.Ask("Enter module ID: ")
	studentID := m.p.Ask("Enter student ID: ")
	enrollment, err := m.svc.Enrollments.Enroll(moduleID, studentID)
	if err != nil {
		return err
	}
	m.p.Printf("Student %s (%s) enrolled in module %s.\n",
		enrollment.StudentName, enrollment.StudentID, enrollment.ModuleID)
	return nil
}

func (m *Menus) unenrollStudent() error {
	moduleID := m.p.Ask("Enter module ID: ")
	studentID := m.p.Ask("Enter student ID: ")
	if err := m.svc.Enrollments.Unenroll(moduleID, studentID); err != nil {
		return err
	}
	m.p.Printf("Student %s removed from module %s.\n", studentID, moduleID)
	return nil
}

func (m *Menus) enrolledStudents() error {
	moduleID := m.p.Ask("Enter module ID: ")
	enrollments, err := m.svc.Enrollments.EnrolledStudents(moduleID)
	if err != nil {
		return err
	}
	if len(enrollments) == 0 {
		m.p.Printf("No students enrolled in module %s.\n", moduleID)
		return nil
	}
	m.p.Printf("Students enrolled in %s:\n", moduleID)
	for _, e := range enrollments {
		m.p.Printf("ID: %-8s Name: %s\n", e.StudentID, e.StudentName)
	}
	return nil
}

func (m *Menus) recordAttendance() error {
	req := service.RecordAttendanceRequest{
		ModuleID:  m.p.Ask("Enter module ID: "),
		StudentID: m.p.Ask("Enter student ID: "),
		Date:      m.p.Ask("Enter date (YYYY-MM-DD): "),
		Status:    m.p.Ask("Enter status (present/absent): "),
	}
	if err := m.svc.Attendance.Record(req); err != nil {
		return err
	}
	m.p.Printf("Attendance recorded for student %s in module %s.\n", req.StudentID, req.ModuleID)
	return nil
}

func (m *Menus) viewAttendance() error {
	moduleID := m.p.Ask("Enter module ID: ")
	studentID := m.p.Ask("Enter student ID: ")
	summary, err := m.svc.Attendance.Summary(studentID, moduleID)
	if err != nil {
		return err
	}
	m.p.Printf("Student %s attended %d of %d classes in module %s (%.2f%%).\n",
		studentID, summary.Attended, summary.ClassCount, moduleID, summary.Percentage)
	return nil
}

func (m *Menus) addGrade() error {
	req := service.AddGradeRequest{
		StudentID: m.p.Ask("Enter student ID: "),
		ModuleID:  m.p.Ask("Enter module ID: "),
	}
	percentage, err := m.p.AskFloat("Enter percentage (0-100): ")
	if err != nil {
		return err
	}
	req.Percentage = percentage

	grade, err := m.svc.Grades.Add(req)
	if err != nil {
		return err
	}
	m.p.Printf("Grade recorded: %.2f%% (%s) for student %s in module %s.\n",
		grade.Percentage, grade.Band, grade.StudentID, grade.ModuleID)
	return nil
}

func (m *Menus) viewModuleGrades() error {
	moduleID := m.p.Ask("Enter module ID: ")
	grades, err := m.svc.Grades.ByModule(moduleID)
	if err != nil {
		return err
	}
	if len(grades) == 0 {
		m.p.Printf("No grades recorded for module %s.\n", moduleID)
		return nil
	}
	m.p.Printf("Grades for module %s:\n%s\n", moduleID, strings.Repeat("-", 40))
	for _, g := range grades {
		m.p.Printf("Student: %-10s %.2f%% (%s)\n", g.StudentID, g.Percentage, g.Band)
	}
	return nil
}
