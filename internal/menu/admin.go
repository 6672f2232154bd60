package menu

import (
	"sort"
	"strings"

	"github.com/campusware/urms/internal/service"
)

// Admin runs the admin role menu.
func (m *Menus) Admin() {
	options := []option{
		{"Add Course", m.addCourse},
		{"Remove Course", m.removeCourse},
		{"Edit Course", m.editCourse},
		{"Search Course", m.searchCourse},
		{"Add Student", m.addStudent},
		{"Remove Student", m.removeStudent},
		{"Create Module", m.createModule},
		{"Search Student In Module", m.searchStudentInModule},
		{"Generate Student Report", m.studentReport},
		{"Student Statistics", m.studentStatistics},
		{"Clean Up Old Exports", m.cleanupExports},
	}
	m.run("Admin Menu", options, "Logout", "Logging out from Admin Menu...")
}

func (m *Menus) addCourse() error {
	req := service.AddCourseRequest{
		Name:               m.p.Ask("Enter the name of the course: "),
		Details:            m.p.Ask("Enter the details of the course: "),
		UniversityInitials: m.p.Ask("Enter the initials of your university: "),
	}
	course, err := m.svc.Courses.Add(req)
	if err != nil {
		return err
	}
	m.p.Printf("Course '%s' added successfully with ID %s.\n", course.Name, course.Code)
	return nil
}

func (m *Menus) removeCourse() error {
	identifier := m.p.Ask("Enter the name or ID of the course to remove: ")
	removed, err := m.svc.Courses.Remove(identifier)
	if err != nil {
		return err
	}
	m.p.Printf("Removed %d course record(s) matching %q.\n", removed, identifier)
	return nil
}

func (m *Menus) editCourse() error {
	code := m.p.Ask("Enter the ID of the course to edit: ")
	newName := m.p.Ask("Enter the new name (leave blank to keep current): ")
	newDetails := m.p.Ask("Enter the new details (leave blank to keep current): ")
	course, err := m.svc.Courses.Update(code, newName, newDetails)
	if err != nil {
		return err
	}
	m.p.Printf("Course %s updated: %s - %s\n", course.Code, course.Name, course.Details)
	return nil
}

func (m *Menus) searchCourse() error {
	term := m.p.Ask("Enter the course name or ID to search: ")
	result, err := m.svc.Courses.Search(term)
	if err != nil {
		return err
	}
	if len(result.Matches) > 0 {
		for _, course := range result.Matches {
			m.p.Printf("ID: %-14s Name: %-24s Details: %s\n", course.Code, course.Name, course.Details)
		}
		return nil
	}
	m.p.Printf("No course matched %q.\n", term)
	if len(result.Suggestions) > 0 {
		m.p.Printf("Did you mean: %s?\n", strings.Join(result.Suggestions, ", "))
	}
	return nil
}

func (m *Menus) addStudent() error {
	req := service.AddStudentRequest{
		Name:    m.p.Ask("Enter student name: "),
		Phone:   m.p.Ask("Enter phone number: "),
		Email:   m.p.Ask("Enter email: "),
		Address: m.p.Ask("Enter address: "),
		Age:     m.p.Ask("Enter age: "),
	}
	req.CourseCode = m.p.Ask("Enter course ID: ")
	moduleIDs := m.p.Ask("Enter module IDs (comma separated): ")
	for _, id := range strings.Split(moduleIDs, ",") {
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

func (m *Menus) removeStudent() error {
	identifier := m.p.Ask("Enter the name or ID of the student to remove: ")
	removed, err := m.svc.Students.Remove(identifier)
	if err != nil {
		return err
	}
	m.p.Printf("Removed %d student record(s) matching %q.\n", removed, identifier)
	return nil
}

func (m *Menus) createModule() error {
	req := service.CreateModuleRequest{
		Name:         m.p.Ask("Enter module name: "),
		LecturerName: m.p.Ask("Enter lecturer name: "),
		LecturerID:   m.p.Ask("Enter lecturer ID: "),
	}
	credits, err := m.p.AskInt("Enter credits: ")
	if err != nil {
		return err
	}
	req.Credits = credits
	classes, err := m.p.AskInt("Enter number of classes: ")
	if err != nil {
		return err
	}
	req.ClassCount = classes

	module, err := m.svc.Modules.Create(req)
	if err != nil {
		return err
	}
	m.p.Printf("Module '%s' created successfully with ID %s.\n", module.Name, module.ID)
	return nil
}

func (m *Menus) searchStudentInModule() error {
	moduleID := m.p.Ask("Enter module ID: ")
	studentID := m.p.Ask("Enter student ID: ")
	enrollment, err := m.svc.Enrollments.Find(moduleID, studentID)
	if err != nil {
		return err
	}
	m.p.Printf("Student %s (%s) is enrolled in module %s.\n",
		enrollment.StudentName, enrollment.StudentID, enrollment.ModuleID)
	return nil
}

func (m *Menus) studentReport() error {
	students, err := m.svc.Students.List()
	if err != nil {
		return err
	}
	if len(students) == 0 {
		m.p.Printf("No student records found.\n")
		return nil
	}
	m.p.Printf("\nStudent Report:\n%s\n", strings.Repeat("-", 60))
	for _, s := range students {
		m.p.Printf("ID: %-8s Name: %-20s Course: %-14s Modules: %s\n",
			s.ID, s.Name, s.CourseCode, strings.Join(s.ModuleIDs, " "))
	}
	m.p.Printf("%s\nTotal students: %d\n", strings.Repeat("-", 60), len(students))
	m.p.Pause()
	return nil
}

func (m *Menus) studentStatistics() error {
	stats, err := m.svc.Students.Statistics()
	if err != nil {
		return err
	}
	m.p.Printf("Total students: %d\n", stats.Total)
	courses := make([]string, 0, len(stats.ByCourse))
	for course := range stats.ByCourse {
		courses = append(courses, course)
	}
	sort.Strings(courses)
	for _, course := range courses {
		m.p.Printf("  %-16s %d\n", course, stats.ByCourse[course])
	}
	return nil
}

func (m *Menus) cleanupExports() error {
	removed, err := m.svc.Exports.Cleanup(m.cfg.Exports.TTL)
	if err != nil {
		return err
	}
	m.p.Printf("Removed %d expired export file(s).\n", len(removed))
	return nil
}
