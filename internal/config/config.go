package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"
)

const (
	configFileBase = "shift_planner_config"
	envPrefix      = "SHIFT_PLANNER_"

	DefaultAPIAddr = ":8080"
)

// RecurringUnavailability marks an employee unavailable on every date matched by an rrule
type RecurringUnavailability struct {
	EmployeeID string `yaml:"employeeID" validate:"required"`
	RRule      string `yaml:"rrule" validate:"required"`
	Note       string `yaml:"note,omitempty"`
}

// Config represents the application configuration
type Config struct {
	DatabaseURL             string                    `yaml:"databaseURL" env:"DATABASE_URL" validate:"required"`
	ScheduleSheetID         string                    `yaml:"scheduleSheetID,omitempty" env:"SCHEDULE_SHEET_ID"`
	GmailSender             string                    `yaml:"gmailSender,omitempty" env:"GMAIL_SENDER" validate:"omitempty,email"`
	APIAddr                 string                    `yaml:"apiAddr,omitempty" env:"API_ADDR"`
	RecurringUnavailability []RecurringUnavailability `yaml:"recurringUnavailability,omitempty" validate:"dive"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from shift_planner_config.yaml
// It looks for the config file in the current directory first, then in the user's home directory
func Load() (*Config, error) {
	return LoadWithEnv("")
}

// LoadWithEnv loads the configuration with an environment suffix
// For example, env="test" will look for "shift_planner_config.test.yaml"
func LoadWithEnv(env string) (*Config, error) {
	configPath, err := findConfigFile(env)
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads the configuration from a specific path, applies
// SHIFT_PLANNER_* environment overrides and validates the result
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix}); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if cfg.APIAddr == "" {
		cfg.APIAddr = DefaultAPIAddr
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct and checks rrule syntax
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	for i, entry := range cfg.RecurringUnavailability {
		if _, err := rrule.StrToRRule(entry.RRule); err != nil {
			return fmt.Errorf("invalid rrule in recurringUnavailability[%d]: %w", i, err)
		}
	}

	return nil
}

// findConfigFile returns the path of shift_planner_config[.<env>].yaml
func findConfigFile(env string) (string, error) {
	configFileName := configFileBase + ".yaml"
	if env != "" {
		configFileName = configFileBase + "." + env + ".yaml"
	}
	return findFile(configFileName)
}

// findFile looks for name in the current directory, then in the user's home directory
func findFile(name string) (string, error) {
	if _, err := os.Stat(name); err == nil {
		return name, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homePath := filepath.Join(homeDir, name)
	if _, err := os.Stat(homePath); err == nil {
		return homePath, nil
	}

	return "", fmt.Errorf("%s not found in current directory or home directory", name)
}
