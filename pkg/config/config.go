package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env string

	Data    DataConfig
	Log     LogConfig
	Access  AccessConfig
	Exports ExportsConfig
	Menu    MenuConfig
}

// DataConfig locates the plain-text record files.
type DataConfig struct {
	Dir string
}

type LogConfig struct {
	Level  string
	Format string
}

// AccessConfig carries the static gate secrets for the staff and admin flows.
type AccessConfig struct {
	StaffMenuPassword string
	AdminAccessCode   string
}

// ExportsConfig controls rendered report/receipt storage.
type ExportsConfig struct {
	Dir string
	TTL time.Duration
}

// MenuConfig tunes the interactive surface.
type MenuConfig struct {
	CoursePageSize int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")

	cfg.Data = DataConfig{Dir: v.GetString("DATA_DIR")}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Access = AccessConfig{
		StaffMenuPassword: v.GetString("STAFF_MENU_PASSWORD"),
		AdminAccessCode:   v.GetString("ADMIN_ACCESS_CODE"),
	}

	cfg.Exports = ExportsConfig{
		Dir: v.GetString("EXPORTS_DIR"),
		TTL: parseDuration(v.GetString("EXPORTS_TTL"), 30*24*time.Hour),
	}

	pageSize := v.GetInt("COURSE_PAGE_SIZE")
	if pageSize <= 0 {
		pageSize = 5
	}
	cfg.Menu = MenuConfig{CoursePageSize: pageSize}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)

	v.SetDefault("DATA_DIR", "./data")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")

	v.SetDefault("STAFF_MENU_PASSWORD", "staff123")
	v.SetDefault("ADMIN_ACCESS_CODE", "1234")

	v.SetDefault("EXPORTS_DIR", "./exports")
	v.SetDefault("EXPORTS_TTL", "720h")

	v.SetDefault("COURSE_PAGE_SIZE", 5)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}
