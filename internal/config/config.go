package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gokatas/katas/pkg/types"
)

// Default values applied when fields are absent from the config file.
const (
	DefaultLogLevel                = "info"
	DefaultRemainingElapsedMinutes = 30
	DefaultPreparationLayers       = 2
	DefaultTotalLayers             = 3
	DefaultTotalElapsedMinutes     = 20
)

// Config is the top-level configuration for the katas binary.
type Config struct {
	// LogLevel is one of: debug | info | warn | error.
	LogLevel string `yaml:"log_level"`

	// MetricsPath is where session metrics are written on exit.
	// Empty disables the metrics file.
	MetricsPath string `yaml:"metrics_path"`

	// Fixtures holds the demonstration arguments used by the menu.
	Fixtures Fixtures `yaml:",inline"`
}

// Fixtures holds the arguments the menu passes to each function group.
type Fixtures struct {
	Cooking      CookingFixtures      `yaml:"cooking"`
	Infiltration InfiltrationFixtures `yaml:"infiltration"`
}

// CookingFixtures are the lasagna demo arguments.
type CookingFixtures struct {
	// RemainingElapsedMinutes is the oven time passed to the remaining-time demo.
	RemainingElapsedMinutes int `yaml:"remaining_elapsed_minutes"`

	// PreparationLayers is the layer count passed to the preparation demo.
	PreparationLayers int `yaml:"preparation_layers"`

	// TotalLayers and TotalElapsedMinutes feed the total-time demo.
	TotalLayers         int `yaml:"total_layers"`
	TotalElapsedMinutes int `yaml:"total_elapsed_minutes"`
}

// InfiltrationFixtures hold one party snapshot per rule.
type InfiltrationFixtures struct {
	FastAttack     types.Party `yaml:"fast_attack"`
	Spy            types.Party `yaml:"spy"`
	SignalPrisoner types.Party `yaml:"signal_prisoner"`
	FreePrisoner   types.Party `yaml:"free_prisoner"`
}

// Load reads and parses the YAML config file at path.
// Missing optional fields are filled with the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML config data over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return defaults()
}

// Marshal renders cfg back to YAML.
func Marshal(cfg *Config) ([]byte, error) {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal yaml: %w", err)
	}
	return out, nil
}

// defaults returns a Config pre-populated with default values.
func defaults() *Config {
	return &Config{
		LogLevel: DefaultLogLevel,
		Fixtures: DefaultFixtures(),
	}
}

// DefaultFixtures returns the scenario the menu shows out of the box.
func DefaultFixtures() Fixtures {
	return Fixtures{
		Cooking: CookingFixtures{
			RemainingElapsedMinutes: DefaultRemainingElapsedMinutes,
			PreparationLayers:       DefaultPreparationLayers,
			TotalLayers:             DefaultTotalLayers,
			TotalElapsedMinutes:     DefaultTotalElapsedMinutes,
		},
		Infiltration: InfiltrationFixtures{
			FastAttack:     types.Party{KnightAwake: true},
			Spy:            types.Party{ArcherAwake: true},
			SignalPrisoner: types.Party{PrisonerAwake: true},
			FreePrisoner:   types.Party{ArcherAwake: true},
		},
	}
}

// validate checks enums and structural constraints.
func validate(cfg *Config) error {
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", cfg.LogLevel)
	}
	if cfg.Fixtures.Cooking.PreparationLayers < 0 {
		return fmt.Errorf("cooking.preparation_layers must not be negative")
	}
	if cfg.Fixtures.Cooking.TotalLayers < 0 {
		return fmt.Errorf("cooking.total_layers must not be negative")
	}
	return nil
}
