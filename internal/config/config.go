package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/c-senju/ponto-fazenda/internal/domain/employee"
	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	App      AppConfig
	Holiday  HolidayConfig
	Device   DeviceConfig
}

type DatabaseConfig struct {
	// URL wins over the discrete fields when set; hosted deployments
	// inject a single DATABASE_URL.
	URL      string
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// HolidayConfig holds holiday resolution configuration
type HolidayConfig struct {
	CountryCode string
	// Fixed municipal holiday merged under the remote sources,
	// "MM-DD" format.
	MunicipalDate string
	MunicipalName string
}

// DeviceConfig holds clock terminal configuration
type DeviceConfig struct {
	// A terminal silent longer than this is reported offline
	SilenceThreshold time.Duration
}

func Load() (*Config, error) {
	// .env is optional; containers and hosted deployments set real
	// environment variables instead.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		URL:      getEnv("DATABASE_URL", ""),
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "ponto"),
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

	// Holiday configuration
	config.Holiday = HolidayConfig{
		CountryCode:   getEnv("HOLIDAY_COUNTRY_CODE", "BR"),
		MunicipalDate: getEnv("HOLIDAY_MUNICIPAL_DATE", "12-17"),
		MunicipalName: getEnv("HOLIDAY_MUNICIPAL_NAME", "Aniversário do Município"),
	}

	// Device configuration
	silence, err := time.ParseDuration(getEnv("DEVICE_SILENCE_THRESHOLD", "10m"))
	if err != nil {
		return nil, fmt.Errorf("invalid DEVICE_SILENCE_THRESHOLD: %w", err)
	}
	config.Device = DeviceConfig{
		SilenceThreshold: silence,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.URL == "" && c.Database.Password == "" {
		return fmt.Errorf("DATABASE_URL or DB_PASSWORD is required")
	}
	if m := c.Holiday.MunicipalDate; m != "" {
		if _, _, err := parseMonthDay(m); err != nil {
			return fmt.Errorf("invalid HOLIDAY_MUNICIPAL_DATE: %w", err)
		}
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	if c.Database.URL != "" {
		return c.Database.URL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// MunicipalMonthDay returns the configured municipal holiday split into
// month and day.
func (c *Config) MunicipalMonthDay() (int, int) {
	month, day, _ := parseMonthDay(c.Holiday.MunicipalDate)
	return month, day
}

func parseMonthDay(s string) (int, int, error) {
	t, err := time.Parse("01-02", s)
	if err != nil {
		return 0, 0, fmt.Errorf("expected MM-DD: %w", err)
	}
	return int(t.Month()), t.Day(), nil
}

// EmployeeDirectory loads the enrollment-id to name mapping from the
// EMPLOYEES variable ("id:name,id:name"). The directory lives in
// configuration, not the database; the farm has a handful of workers
// and the clock only knows numeric enrollment ids.
func EmployeeDirectory() employee.Directory {
	directory := employee.Directory{}
	for _, pair := range strings.Split(getEnv("EMPLOYEES", ""), ",") {
		id, name, ok := strings.Cut(pair, ":")
		if !ok {
			continue
		}
		id = strings.TrimSpace(id)
		name = strings.TrimSpace(name)
		if id == "" || name == "" {
			continue
		}
		directory[id] = name
	}
	return directory
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
