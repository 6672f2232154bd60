package textdb

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Record file names, one per entity.
const (
	StudentRecords        = "student_records.txt"
	Courses               = "courses.txt"
	ModulesList           = "modules_list.txt"
	ModuleStudentRecords  = "module_student_records.txt"
	AttendanceRecords     = "attendance_records.txt"
	GradesRecords         = "grades_records.txt"
	Registrations         = "registrations.txt"
	AcceptedRegistrations = "accepted_registrations.txt"
	DeclinedRegistrations = "declined_registrations.txt"
	TuitionFeesPending    = "tuition_fees_pending.txt"
	TuitionFeesPaid       = "tuition_fees_paid.txt"
	FeeReceipts           = "fee_receipts.txt"
	UserData              = "user_data.txt"
)

// AllFiles lists every record file the system persists.
var AllFiles = []string{
	StudentRecords,
	Courses,
	ModulesList,
	ModuleStudentRecords,
	AttendanceRecords,
	GradesRecords,
	Registrations,
	AcceptedRegistrations,
	DeclinedRegistrations,
	TuitionFeesPending,
	TuitionFeesPaid,
	FeeReceipts,
	UserData,
}

// Store reads and writes newline-delimited, comma-separated record files
// under a single data directory. Fields carry no escaping; every mutation is
// a whole-file read, transform and rewrite.
type Store struct {
	dir    string
	logger *zap.Logger
}

// New ensures the data directory exists and returns a store handle.
func New(dir string, logger *zap.Logger) (*Store, error) {
	if dir == "" {
		dir = "./data"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &Store{dir: dir, logger: logger}, nil
}

// EnsureExists creates any missing record files as empty files.
func (s *Store) EnsureExists(names ...string) error {
	for _, name := range names {
		path := s.Path(name)
		if _, err := os.Stat(path); err == nil {
			continue
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("stat %s: %w", name, err)
		}
		if err := os.WriteFile(path, nil, 0o644); err != nil {
			return fmt.Errorf("create %s: %w", name, err)
		}
		s.logger.Info("created missing record file", zap.String("file", name))
	}
	return nil
}

// ReadLines returns the trimmed, non-empty lines of a record file. A missing
// file means no records yet and yields an empty slice.
func (s *Store) ReadLines(name string) ([]string, error) {
	file, err := os.Open(s.Path(name))
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Debug("record file missing, treating as empty", zap.String("file", name))
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	defer file.Close() //nolint:errcheck

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan %s: %w", name, err)
	}
	return lines, nil
}

// Append adds records to the end of a file, one per line.
func (s *Store) Append(name string, lines ...string) error {
	file, err := os.OpenFile(s.Path(name), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s for append: %w", name, err)
	}
	defer file.Close() //nolint:errcheck

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if _, err := fmt.Fprintln(file, line); err != nil {
			return fmt.Errorf("append to %s: %w", name, err)
		}
	}
	s.logger.Debug("records appended", zap.String("file", name), zap.Int("count", len(lines)))
	return nil
}

// Overwrite replaces the full contents of a record file.
func (s *Store) Overwrite(name string, lines []string) error {
	var b strings.Builder
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(s.Path(name), []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("overwrite %s: %w", name, err)
	}
	s.logger.Debug("record file rewritten", zap.String("file", name), zap.Int("count", len(lines)))
	return nil
}

// Path resolves a record file name inside the data directory.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name)
}
