package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"

	"github.com/SojoC/nexo-ppeam/pkg/core/model"
)

// LocationConfig declares one static meeting place. Eligible weekdays come
// from either a weekday-name list or a weekly RRULE; exactly one must be set.
type LocationConfig struct {
	ID       string   `yaml:"id" validate:"required"`
	Name     string   `yaml:"name" validate:"required"`
	Capacity int      `yaml:"capacity" validate:"min=0"`
	Days     []string `yaml:"days,omitempty"`
	RRule    string   `yaml:"rrule,omitempty"`
}

// RosterConfig selects the roster source. Exactly one of File, PostgresDSN or
// SheetID must be set; SheetTab is required alongside SheetID.
type RosterConfig struct {
	File        string `yaml:"file,omitempty"`
	PostgresDSN string `yaml:"postgresDSN,omitempty"`
	SheetID     string `yaml:"sheetID,omitempty"`
	SheetTab    string `yaml:"sheetTab,omitempty"`
}

// Config represents the application configuration
type Config struct {
	Locations []LocationConfig `yaml:"locations" validate:"required,min=1,dive"`

	// TimeLabels replaces the canonical default slot times when set
	TimeLabels []string `yaml:"timeLabels,omitempty"`

	Roster RosterConfig `yaml:"roster"`

	// ScheduleSheetID is the spreadsheet the weekly schedule is published
	// to; required only for the publish command
	ScheduleSheetID string `yaml:"scheduleSheetID,omitempty"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from nexo_config.yaml
// It looks for the config file in the current directory first, then in the user's home directory
func Load() (*Config, error) {
	return LoadWithEnv("")
}

// LoadWithEnv loads the configuration with an environment suffix
// For example, env="test" will look for "nexo_config.test.yaml"
func LoadWithEnv(env string) (*Config, error) {
	configPath, err := findConfigFile(env)
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct, the day rules of every
// location and the roster source selection
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	for i, loc := range cfg.Locations {
		if len(loc.Days) == 0 && loc.RRule == "" {
			return fmt.Errorf("locations[%d] (%s): either days or rrule must be set", i, loc.ID)
		}
		if len(loc.Days) > 0 && loc.RRule != "" {
			return fmt.Errorf("locations[%d] (%s): days and rrule are mutually exclusive", i, loc.ID)
		}
		if _, err := loc.Weekdays(); err != nil {
			return fmt.Errorf("locations[%d] (%s): %w", i, loc.ID, err)
		}
	}

	sources := 0
	for _, set := range []bool{cfg.Roster.File != "", cfg.Roster.PostgresDSN != "", cfg.Roster.SheetID != ""} {
		if set {
			sources++
		}
	}
	if sources != 1 {
		return fmt.Errorf("exactly one roster source must be configured, got %d", sources)
	}
	if cfg.Roster.SheetID != "" && cfg.Roster.SheetTab == "" {
		return fmt.Errorf("roster.sheetTab is required when roster.sheetID is set")
	}

	return nil
}

// LocationTable converts the configured locations into model values,
// preserving declaration order
func (cfg *Config) LocationTable() ([]model.Location, error) {
	locations := make([]model.Location, 0, len(cfg.Locations))
	for _, lc := range cfg.Locations {
		days, err := lc.Weekdays()
		if err != nil {
			return nil, fmt.Errorf("location %s: %w", lc.ID, err)
		}
		locations = append(locations, model.Location{
			ID:       lc.ID,
			Name:     lc.Name,
			Capacity: lc.Capacity,
			Days:     days,
		})
	}
	return locations, nil
}

// LocationIDs returns every configured location ID in declaration order
func (cfg *Config) LocationIDs() []string {
	ids := make([]string, len(cfg.Locations))
	for i, lc := range cfg.Locations {
		ids[i] = lc.ID
	}
	return ids
}

// DefaultTimeLabels returns the configured slot times, falling back to the
// canonical defaults
func (cfg *Config) DefaultTimeLabels() []string {
	if len(cfg.TimeLabels) > 0 {
		return cfg.TimeLabels
	}
	return model.DefaultTimeLabels
}

// Weekdays resolves the location's eligible weekdays from either form
func (lc LocationConfig) Weekdays() ([]time.Weekday, error) {
	if lc.RRule != "" {
		return weekdaysFromRRule(lc.RRule)
	}

	days := make([]time.Weekday, 0, len(lc.Days))
	for _, name := range lc.Days {
		day, err := parseWeekday(name)
		if err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	return days, nil
}

// weekdaysFromRRule extracts the BYDAY weekdays from a weekly recurrence rule
func weekdaysFromRRule(rule string) ([]time.Weekday, error) {
	r, err := rrule.StrToRRule(rule)
	if err != nil {
		return nil, fmt.Errorf("invalid rrule: %w", err)
	}
	if r.OrigOptions.Freq != rrule.WEEKLY {
		return nil, fmt.Errorf("rrule must be FREQ=WEEKLY, got %q", rule)
	}
	if len(r.OrigOptions.Byweekday) == 0 {
		return nil, fmt.Errorf("rrule must declare BYDAY, got %q", rule)
	}

	days := make([]time.Weekday, 0, len(r.OrigOptions.Byweekday))
	for _, wd := range r.OrigOptions.Byweekday {
		// rrule counts Monday as 0, time.Weekday counts Sunday as 0
		days = append(days, time.Weekday((wd.Day()+1)%7))
	}
	return days, nil
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sun":       time.Sunday,
	"mon":       time.Monday,
	"tue":       time.Tuesday,
	"wed":       time.Wednesday,
	"thu":       time.Thursday,
	"fri":       time.Friday,
	"sat":       time.Saturday,
}

func parseWeekday(name string) (time.Weekday, error) {
	if day, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return day, nil
	}
	return 0, fmt.Errorf("unknown weekday %q", name)
}

// findConfigFile searches for nexo_config.yaml in current directory and home directory
// If env is provided, it adds it as an extension (e.g., "nexo_config.test.yaml")
func findConfigFile(env string) (string, error) {
	configFileName := "nexo_config.yaml"
	if env != "" {
		configFileName = "nexo_config." + env + ".yaml"
	}

	// Check current directory
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
