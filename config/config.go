// Package config loads runtime settings through viper: defaults, an optional file and ROOMROW_* environment overrides.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/lixenwraith/roomrow/parameter"
	"github.com/lixenwraith/roomrow/vmath"
)

// EnvPrefix prefixes environment overrides, e.g. ROOMROW_PHYSICS_GRAVITY_Y
const EnvPrefix = "ROOMROW"

// Config is the runtime configuration
type Config struct {
	Simulation SimulationConfig `mapstructure:"simulation"`
	Physics    PhysicsConfig    `mapstructure:"physics"`
	Rooms      RoomsConfig      `mapstructure:"rooms"`
	Audio      AudioConfig      `mapstructure:"audio"`
	Debug      DebugConfig      `mapstructure:"debug"`
}

// SimulationConfig controls the tick loop
type SimulationConfig struct {
	FPS int `mapstructure:"fps"`
	// Seed drives the jump sound picks, 0 seeds from the clock
	Seed int64 `mapstructure:"seed"`
}

// PhysicsConfig holds world forces
type PhysicsConfig struct {
	GravityX float64 `mapstructure:"gravity_x"`
	GravityY float64 `mapstructure:"gravity_y"`
}

// RoomsConfig locates persisted rooms
type RoomsConfig struct {
	Dir string `mapstructure:"dir"`
}

// AudioConfig controls sample playback
type AudioConfig struct {
	Enabled    bool    `mapstructure:"enabled"`
	Volume     float64 `mapstructure:"volume"`
	SampleRate int     `mapstructure:"sample_rate"`
}

// DebugConfig sets the initial debug state
type DebugConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Step    bool `mapstructure:"step"`
}

// Gravity returns the configured gravity vector
func (c *PhysicsConfig) Gravity() vmath.Vec2F {
	return vmath.V2(c.GravityX, c.GravityY)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("simulation.fps", parameter.SimulationFPS)
	v.SetDefault("simulation.seed", 0)
	v.SetDefault("physics.gravity_x", parameter.GravityX)
	v.SetDefault("physics.gravity_y", parameter.GravityY)
	v.SetDefault("rooms.dir", "assets/rooms")
	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", parameter.AudioVolume)
	v.SetDefault("audio.sample_rate", parameter.AudioSampleRate)
	v.SetDefault("debug.enabled", false)
	v.SetDefault("debug.step", false)
}

// Load reads configuration from an optional file, environment overrides win over the file
// An empty path loads defaults and environment only
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the simulation cannot run with
func (c *Config) Validate() error {
	if c.Simulation.FPS <= 0 {
		return fmt.Errorf("simulation.fps must be positive, got %d", c.Simulation.FPS)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume must be in [0, 1], got %g", c.Audio.Volume)
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("audio.sample_rate must be positive, got %d", c.Audio.SampleRate)
	}
	return nil
}
