package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

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
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// AttendanceConfig holds the thresholds attendance marking is gated on.
// CheckInDelayMinutes and LateGraceMinutes are independent: the first gates
// the earliest accepted check-in, the second decides when a check-in counts
// as late. Both default to the same five-minute offset.
type AttendanceConfig struct {
	MaxAccuracyMeters   float64
	CheckInDelayMinutes int
	LateGraceMinutes    int
	DefaultShiftStart   string // "HH:MM"
	DefaultShiftEnd     string // "HH:MM"
}

func Load() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

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
		Name:     getEnv("DB_NAME", "hillfarm_workforce"),
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
		Secret:           getEnv("JWT_SECRET", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION", "24h"),
	}
	if config.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	// Attendance thresholds
	maxAccuracy, err := strconv.ParseFloat(getEnv("ATTENDANCE_MAX_ACCURACY_METERS", "100"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_MAX_ACCURACY_METERS: %w", err)
	}
	checkInDelay, err := strconv.Atoi(getEnv("ATTENDANCE_CHECKIN_DELAY_MINUTES", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_CHECKIN_DELAY_MINUTES: %w", err)
	}
	lateGrace, err := strconv.Atoi(getEnv("ATTENDANCE_LATE_GRACE_MINUTES", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_LATE_GRACE_MINUTES: %w", err)
	}

	config.Attendance = AttendanceConfig{
		MaxAccuracyMeters:   maxAccuracy,
		CheckInDelayMinutes: checkInDelay,
		LateGraceMinutes:    lateGrace,
		DefaultShiftStart:   getEnv("ATTENDANCE_DEFAULT_SHIFT_START", "09:00"),
		DefaultShiftEnd:     getEnv("ATTENDANCE_DEFAULT_SHIFT_END", "14:00"),
	}

	return config, nil
}

func (c *Config) DatabaseURL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
