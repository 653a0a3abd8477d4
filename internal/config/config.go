package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"pacecalc/internal/pace"
)

// Config represents the application configuration
type Config struct {
	Calculator CalculatorConfig `json:"calculator"`
	History    HistoryConfig    `json:"history"`
	Display    DisplayConfig    `json:"display"`
}

// CalculatorConfig selects input handling and rounding
type CalculatorConfig struct {
	Mode     string `json:"mode"`     // "exclusive" or "autofill"
	Rounding string `json:"rounding"` // "half_even" or "half_away"
}

// HistoryConfig controls the calculation history
type HistoryConfig struct {
	Enabled *bool `json:"enabled"`
	Limit   int   `json:"limit"`
}

// DisplayConfig holds display preferences
type DisplayConfig struct {
	ShowChart *bool  `json:"show_chart"`
	DebugLog  string `json:"debug_log"`
}

// MaxHistoryLimit caps how many history rows are shown
const MaxHistoryLimit = 1000

// ErrNoConfig is returned when the config file doesn't exist
var ErrNoConfig = errors.New("config file not found")

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Calculator: CalculatorConfig{
			Mode:     "exclusive",
			Rounding: "half_even",
		},
		History: HistoryConfig{
			Enabled: boolPtr(true),
			Limit:   50,
		},
		Display: DisplayConfig{
			ShowChart: boolPtr(true),
		},
	}
}

// Load reads the configuration from ~/.pacecalc/config.json
func Load() (*Config, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads the configuration from path and fills in defaults
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrNoConfig
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Calculator.Mode == "" {
		c.Calculator.Mode = defaults.Calculator.Mode
	}
	if c.Calculator.Rounding == "" {
		c.Calculator.Rounding = defaults.Calculator.Rounding
	}
	if c.History.Enabled == nil {
		c.History.Enabled = defaults.History.Enabled
	}
	if c.History.Limit == 0 {
		c.History.Limit = defaults.History.Limit
	}
	if c.Display.ShowChart == nil {
		c.Display.ShowChart = defaults.Display.ShowChart
	}
}

// Save writes the configuration to ~/.pacecalc/config.json
func Save(cfg *Config) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}
	return SaveFile(path, cfg)
}

// SaveFile writes the configuration to path
func SaveFile(path string, cfg *Config) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// CreateExample creates an example config file if none exists
func CreateExample() error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}
	return CreateExampleFile(path)
}

// CreateExampleFile writes the default config to path unless a file is already there
func CreateExampleFile(path string) error {
	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		return nil // Config exists, don't overwrite
	}

	example := DefaultConfig()
	return SaveFile(path, &example)
}

// Validate checks that every field holds a known value
func (c *Config) Validate() error {
	if _, err := pace.ParseMode(c.Calculator.Mode); err != nil {
		return fmt.Errorf("calculator.mode must be \"exclusive\" or \"autofill\", got %q", c.Calculator.Mode)
	}
	if _, err := pace.ParseRounding(c.Calculator.Rounding); err != nil {
		return fmt.Errorf("calculator.rounding must be \"half_even\" or \"half_away\", got %q", c.Calculator.Rounding)
	}
	if c.History.Limit < 1 || c.History.Limit > MaxHistoryLimit {
		return fmt.Errorf("history.limit must be between 1 and %d, got %d", MaxHistoryLimit, c.History.Limit)
	}
	return nil
}

// NewCalculator builds a pace calculator from the calculator settings.
// Call Validate first; unknown values fall back to the defaults.
func (c *Config) NewCalculator() pace.Calculator {
	mode, _ := pace.ParseMode(c.Calculator.Mode)
	rounding, _ := pace.ParseRounding(c.Calculator.Rounding)
	return pace.NewCalculator(mode, rounding)
}

// HistoryEnabled reports whether successful calculations are recorded
func (c *Config) HistoryEnabled() bool {
	return c.History.Enabled == nil || *c.History.Enabled
}

// ShowChart reports whether the calculator screen draws the distance chart
func (c *Config) ShowChart() bool {
	return c.Display.ShowChart == nil || *c.Display.ShowChart
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	return getConfigPath()
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// GetConfigDir returns the path to the config directory
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".pacecalc"), nil
}

func boolPtr(b bool) *bool {
	return &b
}
