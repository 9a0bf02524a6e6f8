// File: internal/config/config.go
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/xkilldash9x/cursortrace/internal/spring"
	"github.com/xkilldash9x/cursortrace/internal/trajectory"
)

// Config holds the whole application configuration: logging plus the
// simulation tuning. CLI flags may override individual fields after load.
type Config struct {
	Logger LoggerConfig `mapstructure:"logger" yaml:"logger"`
	Engine EngineConfig `mapstructure:"engine" yaml:"engine"`
}

// LoggerConfig controls the zap setup.
type LoggerConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Format      string `mapstructure:"format" yaml:"format"`
	AddSource   bool   `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int    `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool   `mapstructure:"compress" yaml:"compress"`
}

// EngineConfig is the on-disk shape of the simulation tuning.
type EngineConfig struct {
	TickMs        float64      `mapstructure:"tick_ms" yaml:"tick_ms"`
	GapTicks      float64      `mapstructure:"gap_ticks" yaml:"gap_ticks"`
	GapDistance   float64      `mapstructure:"gap_distance" yaml:"gap_distance"`
	MinInserted   int          `mapstructure:"min_inserted" yaml:"min_inserted"`
	MaxInserted   int          `mapstructure:"max_inserted" yaml:"max_inserted"`
	ClickWindowMs float64      `mapstructure:"click_window_ms" yaml:"click_window_ms"`
	Default       SpringConfig `mapstructure:"default" yaml:"default"`
	Snappy        SpringConfig `mapstructure:"snappy" yaml:"snappy"`
	Drag          SpringConfig `mapstructure:"drag" yaml:"drag"`
}

// SpringConfig mirrors spring.Config for mapstructure decoding.
type SpringConfig struct {
	Tension  float64 `mapstructure:"tension" yaml:"tension"`
	Mass     float64 `mapstructure:"mass" yaml:"mass"`
	Friction float64 `mapstructure:"friction" yaml:"friction"`
}

// Tuning converts the on-disk engine block into the value the trajectory
// package consumes.
func (e EngineConfig) Tuning() trajectory.Tuning {
	return trajectory.Tuning{
		TickMs:        e.TickMs,
		GapTicks:      e.GapTicks,
		GapDistance:   e.GapDistance,
		MinInserted:   e.MinInserted,
		MaxInserted:   e.MaxInserted,
		ClickWindowMs: e.ClickWindowMs,
		Profiles: spring.Profiles{
			Default: spring.Config(e.Default),
			Snappy:  spring.Config(e.Snappy),
			Drag:    spring.Config(e.Drag),
		},
	}
}

// SetDefaults initializes default values for every configuration parameter.
func SetDefaults(v *viper.Viper) {
	// -- Logger --
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "cursortrace")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 50)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 14)
	v.SetDefault("logger.compress", true)

	// -- Engine --
	tuning := trajectory.DefaultTuning()
	v.SetDefault("engine.tick_ms", tuning.TickMs)
	v.SetDefault("engine.gap_ticks", tuning.GapTicks)
	v.SetDefault("engine.gap_distance", tuning.GapDistance)
	v.SetDefault("engine.min_inserted", tuning.MinInserted)
	v.SetDefault("engine.max_inserted", tuning.MaxInserted)
	v.SetDefault("engine.click_window_ms", tuning.ClickWindowMs)
	setProfileDefaults(v, "engine.default", tuning.Profiles.Default)
	setProfileDefaults(v, "engine.snappy", tuning.Profiles.Snappy)
	setProfileDefaults(v, "engine.drag", tuning.Profiles.Drag)
}

func setProfileDefaults(v *viper.Viper, key string, cfg spring.Config) {
	v.SetDefault(key+".tension", cfg.Tension)
	v.SetDefault(key+".mass", cfg.Mass)
	v.SetDefault(key+".friction", cfg.Friction)
}

// NewDefaultConfig returns a configuration populated with defaults only.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		// Unreachable with defaults, but fail loudly rather than run with
		// a half-populated config.
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// NewConfigFromViper unmarshals and validates a loaded viper instance.
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects tunings the simulation cannot run with. Spring masses are
// not checked here: the integrator floors them defensively.
func (c *Config) Validate() error {
	if c.Engine.TickMs <= 0 {
		return fmt.Errorf("engine.tick_ms must be positive, got %v", c.Engine.TickMs)
	}
	if c.Engine.GapDistance < 0 {
		return fmt.Errorf("engine.gap_distance must be non-negative, got %v", c.Engine.GapDistance)
	}
	if c.Engine.MinInserted < 1 {
		return fmt.Errorf("engine.min_inserted must be at least 1, got %d", c.Engine.MinInserted)
	}
	if c.Engine.MaxInserted < c.Engine.MinInserted {
		return fmt.Errorf("engine.max_inserted (%d) must not be below engine.min_inserted (%d)",
			c.Engine.MaxInserted, c.Engine.MinInserted)
	}
	if c.Engine.ClickWindowMs < 0 {
		return fmt.Errorf("engine.click_window_ms must be non-negative, got %v", c.Engine.ClickWindowMs)
	}
	return nil
}
