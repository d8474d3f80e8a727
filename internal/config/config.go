package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"
)

const configFileName = "activibe_config"

// ErrConfigNotFound is returned when no config file exists in the search paths
var ErrConfigNotFound = errors.New("config file not found in current directory or home directory")

// DriveDefaults are the starting values of the create-drive form
type DriveDefaults struct {
	Spots      int `yaml:"spots" validate:"min=5,max=500"`
	PostLimit  int `yaml:"postLimit" validate:"min=1,max=10"`
	ZoneRadius int `yaml:"zoneRadius" validate:"min=100,max=2000"`
}

// DriveSchedule attaches a recurrence rule to a seeded drive
type DriveSchedule struct {
	DriveID string `yaml:"driveID" validate:"required"`
	RRule   string `yaml:"rrule" validate:"required"`
}

// Config represents the application configuration
type Config struct {
	TickInterval   string          `yaml:"tickInterval" validate:"required"`
	LogsDir        string          `yaml:"logsDir" validate:"required"`
	DriveDefaults  DriveDefaults   `yaml:"driveDefaults"`
	DriveSchedules []DriveSchedule `yaml:"driveSchedules,omitempty" validate:"dive"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Default returns the configuration used when no config file is present
func Default() *Config {
	return &Config{
		TickInterval: "1s",
		LogsDir:      "logs",
		DriveDefaults: DriveDefaults{
			Spots:      30,
			PostLimit:  5,
			ZoneRadius: 500,
		},
	}
}

// Tick returns the parsed timer interval. Validate guarantees it parses.
func (c *Config) Tick() time.Duration {
	d, err := time.ParseDuration(c.TickInterval)
	if err != nil || d <= 0 {
		return time.Second
	}
	return d
}

// Schedule returns the recurrence rule configured for a drive, if any
func (c *Config) Schedule(driveID string) (string, bool) {
	for _, s := range c.DriveSchedules {
		if s.DriveID == driveID {
			return s.RRule, true
		}
	}
	return "", false
}

// Load loads and validates activibe_config.yaml
// It looks for the config file in the current directory first, then in the user's home directory
func Load() (*Config, error) {
	return LoadWithEnv("")
}

// LoadWithEnv loads the config for an environment.
// For example, env="test" prefers "activibe_config.test.yaml" over "activibe_config.yaml"
func LoadWithEnv(env string) (*Config, error) {
	configPath, err := findConfigFile(env)
	if err != nil {
		return nil, err
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path.
// Fields missing from the file keep their Default values.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate validates the configuration struct, the tick interval and rrule syntax
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	d, err := time.ParseDuration(cfg.TickInterval)
	if err != nil {
		return fmt.Errorf("invalid tickInterval %q: %w", cfg.TickInterval, err)
	}
	if d <= 0 {
		return fmt.Errorf("invalid tickInterval %q: must be positive", cfg.TickInterval)
	}

	for i, schedule := range cfg.DriveSchedules {
		if _, err := rrule.StrToRRule(schedule.RRule); err != nil {
			return fmt.Errorf("invalid rrule in driveSchedules[%d]: %w", i, err)
		}
	}

	return nil
}

// findConfigFile searches the current directory, then the home directory
func findConfigFile(env string) (string, error) {
	var names []string
	if env != "" {
		names = append(names, fmt.Sprintf("%s.%s.yaml", configFileName, env))
	}
	names = append(names, configFileName+".yaml")

	dirs := []string{"."}
	if homeDir, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, homeDir)
	}

	for _, dir := range dirs {
		for _, name := range names {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}
	}

	return "", ErrConfigNotFound
}
