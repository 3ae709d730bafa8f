package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Varunmathiazhagan/tap-academy-sub000/internal/domain/attendance"
	"github.com/joho/godotenv"
)

type Config struct {
	Database   DatabaseConfig
	JWT        JWTConfig
	App        AppConfig
	Attendance AttendanceConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// AttendanceConfig holds the office-hours rules. Read once here; the core
// receives them as an immutable attendance.Settings value and never touches
// the environment again.
type AttendanceConfig struct {
	OfficeStartHour      int
	LateThresholdMinutes int
	WorkDays             []int
}

func Load() (*Config, error) {
	// .env is optional outside local development
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "tap_attendance"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Attendance rules
	officeStartHour, err := strconv.Atoi(getEnv("OFFICE_START_HOUR", "9"))
	if err != nil {
		return nil, fmt.Errorf("invalid OFFICE_START_HOUR: %w", err)
	}

	lateThreshold, err := strconv.Atoi(getEnv("LATE_THRESHOLD_MINUTES", "15"))
	if err != nil {
		return nil, fmt.Errorf("invalid LATE_THRESHOLD_MINUTES: %w", err)
	}

	workDays, err := parseWorkDays(getEnv("WORK_DAYS", "1,2,3,4,5"))
	if err != nil {
		return nil, fmt.Errorf("invalid WORK_DAYS: %w", err)
	}

	config.Attendance = AttendanceConfig{
		OfficeStartHour:      officeStartHour,
		LateThresholdMinutes: lateThreshold,
		WorkDays:             workDays,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Attendance.OfficeStartHour < 0 || c.Attendance.OfficeStartHour > 23 {
		return fmt.Errorf("OFFICE_START_HOUR must be between 0 and 23")
	}
	if c.Attendance.LateThresholdMinutes < 0 {
		return fmt.Errorf("LATE_THRESHOLD_MINUTES must not be negative")
	}
	if len(c.Attendance.WorkDays) == 0 {
		return fmt.Errorf("WORK_DAYS must name at least one weekday")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// AttendanceSettings builds the immutable settings value threaded through the
// attendance engine. Weekday numbering follows time.Weekday: 0 is Sunday.
func (c *Config) AttendanceSettings() attendance.Settings {
	workDays := make(map[time.Weekday]bool, len(c.Attendance.WorkDays))
	for _, day := range c.Attendance.WorkDays {
		workDays[time.Weekday(day)] = true
	}
	return attendance.Settings{
		OfficeStartHour:      c.Attendance.OfficeStartHour,
		LateThresholdMinutes: c.Attendance.LateThresholdMinutes,
		WorkDays:             workDays,
	}
}

func parseWorkDays(value string) ([]int, error) {
	parts := strings.Split(value, ",")
	days := make([]int, 0, len(parts))
	for _, part := range parts {
		day, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		if day < 0 || day > 6 {
			return nil, fmt.Errorf("weekday %d out of range 0-6", day)
		}
		days = append(days, day)
	}
	return days, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
