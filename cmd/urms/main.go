package main

import (
	"log"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/campusware/urms/internal/menu"
	"github.com/campusware/urms/internal/repository"
	"github.com/campusware/urms/internal/service"
	"github.com/campusware/urms/internal/textdb"
	"github.com/campusware/urms/pkg/config"
	"github.com/campusware/urms/pkg/logger"
	"github.com/campusware/urms/pkg/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	store, err := textdb.New(cfg.Data.Dir, logr)
	if err != nil {
		logr.Sugar().Fatalw("failed to open data directory", "dir", cfg.Data.Dir, "error", err)
	}
	if err := store.EnsureExists(textdb.AllFiles...); err != nil {
		logr.Sugar().Fatalw("failed to prepare record files", "error", err)
	}

	exportStore, err := storage.NewLocalStorage(cfg.Exports.Dir)
	if err != nil {
		logr.Sugar().Fatalw("failed to prepare exports directory", "dir", cfg.Exports.Dir, "error", err)
	}

	validate := validator.New()

	courseRepo := repository.NewCourseRepository(store, logr)
	moduleRepo := repository.NewModuleRepository(store, logr)
	studentRepo := repository.NewStudentRepository(store, logr)
	registrationRepo := repository.NewRegistrationRepository(store, logr)
	enrollmentRepo := repository.NewEnrollmentRepository(store, logr)
	attendanceRepo := repository.NewAttendanceRepository(store, logr)
	gradeRepo := repository.NewGradeRepository(store, logr)
	feeRepo := repository.NewFeeRepository(store, logr)
	userRepo := repository.NewUserRepository(store, logr)

	svc := menu.Services{
		Registrations: service.NewRegistrationService(registrationRepo, courseRepo, validate, logr),
		Students:      service.NewStudentService(studentRepo, courseRepo, moduleRepo, validate, logr),
		Courses:       service.NewCourseService(courseRepo, validate, logr),
		Modules:       service.NewModuleService(moduleRepo, validate, logr),
		Enrollments:   service.NewEnrollmentService(enrollmentRepo, moduleRepo, studentRepo, validate, logr),
		Attendance:    service.NewAttendanceService(attendanceRepo, moduleRepo, studentRepo, validate, logr),
		Grades:        service.NewGradeService(gradeRepo, enrollmentRepo, moduleRepo, studentRepo, validate, logr),
		Fees:          service.NewFeeService(feeRepo, studentRepo, validate, logr),
		Auth:          service.NewAuthService(userRepo, cfg.Access.AdminAccessCode, validate, logr),
		Exports:       service.NewExportService(exportStore, registrationRepo, feeRepo, logr),
	}

	logr.Sugar().Infow("records manager starting", "env", cfg.Env, "data_dir", cfg.Data.Dir)

	prompter := menu.NewPrompter(os.Stdin, os.Stdout)
	menu.New(cfg, svc, prompter, logr).Guest()
}
