// Package menu implements the interactive console surface: a guest menu, a
// password-gated staff menu and login-gated role menus. Every action runs
// inside a recover-style wrapper: failures are normalised, printed and
// logged, and the loop always regains control.
package menu

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/campusware/urms/internal/service"
	"github.com/campusware/urms/pkg/config"
	appErrors "github.com/campusware/urms/pkg/errors"
)

// Prompter reads console input and writes prompts.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter wraps an input and output stream.
func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(r), out: w}
}

// Ask prints a label and returns the trimmed response line.
func (p *Prompter) Ask(label string) string {
	fmt.Fprint(p.out, label)
	if !p.in.Scan() {
		return ""
	}
	return strings.TrimSpace(p.in.Text())
}

// AskFloat re-prompts until the response parses as a number. It fails only
// when the input stream ends.
func (p *Prompter) AskFloat(label string) (float64, error) {
	for {
		fmt.Fprint(p.out, label)
		if !p.in.Scan() {
			return 0, appErrors.Clone(appErrors.ErrValidation, "a numeric value is required")
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(p.in.Text()), 64)
		if err == nil {
			return value, nil
		}
		fmt.Fprintln(p.out, "Invalid input. Please enter a numeric value.")
	}
}

// AskInt re-prompts until the response parses as an integer. It fails only
// when the input stream ends.
func (p *Prompter) AskInt(label string) (int, error) {
	for {
		fmt.Fprint(p.out, label)
		if !p.in.Scan() {
			return 0, appErrors.Clone(appErrors.ErrValidation, "a whole number is required")
		}
		value, err := strconv.Atoi(strings.TrimSpace(p.in.Text()))
		if err == nil {
			return value, nil
		}
		fmt.Fprintln(p.out, "Invalid input. Please enter a number.")
	}
}

// Pause waits for Enter.
func (p *Prompter) Pause() {
	p.Ask("Press Enter to continue...")
}

func (p *Prompter) Printf(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format, args...)
}

// Services bundles everything the menus dispatch to.
type Services struct {
	Registrations *service.RegistrationService
	Students      *service.StudentService
	Courses       *service.CourseService
	Modules       *service.ModuleService
	Enrollments   *service.EnrollmentService
	Attendance    *service.AttendanceService
	Grades        *service.GradeService
	Fees          *service.FeeService
	Auth          *service.AuthService
	Exports       *service.ExportService
}

// Menus drives the interactive menu tree.
type Menus struct {
	cfg    *config.Config
	svc    Services
	p      *Prompter
	logger *zap.Logger
}

// New constructs the menu tree.
func New(cfg *config.Config, svc Services, p *Prompter, logger *zap.Logger) *Menus {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Menus{cfg: cfg, svc: svc, p: p, logger: logger}
}

type option struct {
	label  string
	action func() error
}

// run renders a numbered menu until 0 (or the final option) exits. Action
// errors never escape; they are printed and logged and the menu continues.
func (m *Menus) run(title string, options []option, exitLabel, exitMessage string) {
	for {
		m.p.Printf("\n--- %s ---\n", title)
		for i, opt := range options {
			m.p.Printf("%d. %s\n", i+1, opt.label)
		}
		m.p.Printf("%d. %s\n", len(options)+1, exitLabel)

		choice := m.p.Ask("Enter your choice: ")
		index, err := strconv.Atoi(choice)
		if err != nil {
			m.p.Printf("Invalid input. Please enter a number.\n")
			continue
		}
		if index == len(options)+1 || index == 0 {
			m.p.Printf("%s\n", exitMessage)
			return
		}
		if index < 1 || index > len(options) {
			m.p.Printf("Invalid choice. Please select a valid option.\n")
			continue
		}
		if err := options[index-1].action(); err != nil {
			e := appErrors.FromError(err)
			m.p.Printf("Error: %s\n", e.Message)
			m.logger.Error("menu action failed",
				zap.String("menu", title), zap.String("option", options[index-1].label),
				zap.String("code", e.Code), zap.Error(err))
		}
	}
}
