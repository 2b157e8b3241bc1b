// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Physics   PhysicsConfig   `yaml:"physics"`
	Shields   ShieldsConfig   `yaml:"shields"`
	Weapons   WeaponsConfig   `yaml:"weapons"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Classes   []ClassConfig   `yaml:"classes"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// PhysicsConfig holds simulation timing parameters.
type PhysicsConfig struct {
	DT float64 `yaml:"dt"` // seconds per tick
}

// ShieldsConfig holds shield regeneration tuning.
type ShieldsConfig struct {
	BaseRegenRate float64 `yaml:"base_regen_rate"` // energy per second per quadrant before multipliers

	// Size-class mass thresholds and post-damage regeneration delays
	CapitalMass  float64 `yaml:"capital_mass"`  // mass at or above this = capital
	LargeMass    float64 `yaml:"large_mass"`    // mass above this = bomber / large fighter
	CapitalDelay float64 `yaml:"capital_delay"` // seconds
	LargeDelay   float64 `yaml:"large_delay"`   // seconds
	FighterDelay float64 `yaml:"fighter_delay"` // seconds
}

// WeaponsConfig holds weapon energy pool tuning.
type WeaponsConfig struct {
	PoolRegenFraction    float64 `yaml:"pool_regen_fraction"`     // fraction of capacity regenerated per second at 1.0x
	EmergencyReserve     float64 `yaml:"emergency_reserve"`       // fraction of capacity held back from firing
	LowEnergyFraction    float64 `yaml:"low_energy_fraction"`     // below capacity*this the pool reads Low
	BurstCooldownPerShot float64 `yaml:"burst_cooldown_per_shot"` // seconds of recharge per shot in a burst
}

// TelemetryConfig holds telemetry settings.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // window size in simulation seconds
}

// ClassConfig defines a ship class template.
// Each class specifies the static capacities and base stats the subsystem
// controllers are bound to at ship creation.
type ClassConfig struct {
	Name             string        `yaml:"name"`
	Mass             float64       `yaml:"mass"`
	ShieldMax        float64       `yaml:"shield_max"` // per quadrant
	MaxSpeed         float64       `yaml:"max_speed"`
	AfterburnerSpeed float64       `yaml:"afterburner_speed"`
	Acceleration     float64       `yaml:"acceleration"`
	TurnRate         float64       `yaml:"turn_rate"`
	WeaponCapacity   float64       `yaml:"weapon_capacity"`
	Mounts           []MountConfig `yaml:"mounts"`
}

// MountConfig defines a single weapon mount on a ship class.
type MountConfig struct {
	Name     string  `yaml:"name"`
	Damage   float64 `yaml:"damage"`
	FireWait float64 `yaml:"fire_wait"` // seconds between shots
	Subtype  int     `yaml:"subtype"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ClassIndex map[string]int // name -> index for class lookup
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	// Compute derived values
	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	// Synthesize a default class if none specified
	if len(c.Classes) == 0 {
		c.Classes = []ClassConfig{
			{
				Name:             "fighter",
				Mass:             50,
				ShieldMax:        100,
				MaxSpeed:         80,
				AfterburnerSpeed: 130,
				Acceleration:     40,
				TurnRate:         3.0,
				WeaponCapacity:   100,
				Mounts: []MountConfig{
					{Name: "laser", Damage: 20, FireWait: 0.25, Subtype: 5},
				},
			},
		}
	}

	// Apply defaults to classes that don't specify all fields
	for i := range c.Classes {
		class := &c.Classes[i]
		if class.Mass == 0 {
			class.Mass = 50
		}
		if class.ShieldMax == 0 {
			class.ShieldMax = 100
		}
		if class.WeaponCapacity == 0 {
			class.WeaponCapacity = 100
		}
	}

	// Build class index for fast lookup
	c.Derived.ClassIndex = make(map[string]int, len(c.Classes))
	for i, class := range c.Classes {
		c.Derived.ClassIndex[class.Name] = i
	}
}

// Class returns the ship class definition for the given name.
// Unknown names fall back to the first configured class.
func (c *Config) Class(name string) *ClassConfig {
	if i, ok := c.Derived.ClassIndex[name]; ok {
		return &c.Classes[i]
	}
	return &c.Classes[0]
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
