// Package config loads runtime settings from defaults, an optional file and the environment
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/lixenwraith/solar-winds/parameter"
)

// EnvPrefix namespaces environment overrides, e.g. SOLAR_WINDS_AUDIO_ENABLED
const EnvPrefix = "SOLAR_WINDS"

var ErrInvalid = errors.New("config: invalid value")

// Log holds logger settings
type Log struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// Game holds simulation tuning knobs
type Game struct {
	TickRate              int     `mapstructure:"tickRate"`
	TimeScale             float64 `mapstructure:"timeScale"`
	PlayerSpeedMultiplier float64 `mapstructure:"playerSpeedMultiplier"`
	EnemySpeedMultiplier  float64 `mapstructure:"enemySpeedMultiplier"`
	BrakePower            float64 `mapstructure:"brakePower"`
	WeaponSeeking         float64 `mapstructure:"weaponSeeking"`
	StartingCredits       int     `mapstructure:"startingCredits"`
	Seed                  int64   `mapstructure:"seed"`
}

// Power holds the player's initial power distribution
type Power struct {
	Engines int `mapstructure:"engines"`
	Shields int `mapstructure:"shields"`
	Weapons int `mapstructure:"weapons"`
	Sensors int `mapstructure:"sensors"`
}

// Spawner holds enemy director settings
type Spawner struct {
	MaxEnemies  int     `mapstructure:"maxEnemies"`
	Interval    float64 `mapstructure:"interval"`
	MinDistance float64 `mapstructure:"minDistance"`
	MaxDistance float64 `mapstructure:"maxDistance"`
}

// Audio holds output and scheduler settings
type Audio struct {
	Enabled       bool          `mapstructure:"enabled"`
	SampleRate    int           `mapstructure:"sampleRate"`
	MusicVolume   float64       `mapstructure:"musicVolume"`
	SFXVolume     float64       `mapstructure:"sfxVolume"`
	Track         int           `mapstructure:"track"`
	Lookahead     time.Duration `mapstructure:"lookahead"`
	ScheduleAhead float64       `mapstructure:"scheduleAhead"`
}

// Config is the full settings tree
type Config struct {
	Log     Log     `mapstructure:"log"`
	Game    Game    `mapstructure:"game"`
	Power   Power   `mapstructure:"power"`
	Spawner Spawner `mapstructure:"spawner"`
	Audio   Audio   `mapstructure:"audio"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")

	v.SetDefault("game.tickRate", parameter.GameTickRate)
	v.SetDefault("game.timeScale", parameter.DefaultTimeScale)
	v.SetDefault("game.playerSpeedMultiplier", 1.0)
	v.SetDefault("game.enemySpeedMultiplier", 1.0)
	v.SetDefault("game.brakePower", parameter.ShipBrakePower)
	v.SetDefault("game.weaponSeeking", 0.0)
	v.SetDefault("game.startingCredits", parameter.StartingCredits)
	v.SetDefault("game.seed", 0)

	v.SetDefault("power.engines", parameter.PowerDefault)
	v.SetDefault("power.shields", parameter.PowerDefault)
	v.SetDefault("power.weapons", parameter.PowerDefault)
	v.SetDefault("power.sensors", parameter.PowerDefault)

	v.SetDefault("spawner.maxEnemies", parameter.SpawnMaxEnemies)
	v.SetDefault("spawner.interval", parameter.SpawnInterval)
	v.SetDefault("spawner.minDistance", parameter.SpawnMinDistance)
	v.SetDefault("spawner.maxDistance", parameter.SpawnMaxDistance)

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.sampleRate", parameter.AudioSampleRate)
	v.SetDefault("audio.musicVolume", parameter.MusicVolume)
	v.SetDefault("audio.sfxVolume", parameter.SFXVolume)
	v.SetDefault("audio.track", 0)
	v.SetDefault("audio.lookahead", parameter.SchedulerLookahead)
	v.SetDefault("audio.scheduleAhead", parameter.SchedulerAhead)
}

// Load builds the configuration
// An empty path means defaults plus environment; a named file must exist
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the simulation cannot run with
func (c *Config) Validate() error {
	switch {
	case c.Game.TickRate <= 0:
		return fmt.Errorf("game.tickRate %d: %w", c.Game.TickRate, ErrInvalid)
	case c.Game.TimeScale < parameter.MinTimeScale || c.Game.TimeScale > parameter.MaxTimeScale:
		return fmt.Errorf("game.timeScale %g: %w", c.Game.TimeScale, ErrInvalid)
	case c.Audio.SampleRate <= 0:
		return fmt.Errorf("audio.sampleRate %d: %w", c.Audio.SampleRate, ErrInvalid)
	case c.Audio.MusicVolume < 0 || c.Audio.MusicVolume > 1:
		return fmt.Errorf("audio.musicVolume %g: %w", c.Audio.MusicVolume, ErrInvalid)
	case c.Audio.SFXVolume < 0 || c.Audio.SFXVolume > 1:
		return fmt.Errorf("audio.sfxVolume %g: %w", c.Audio.SFXVolume, ErrInvalid)
	case c.Audio.Track < 0:
		return fmt.Errorf("audio.track %d: %w", c.Audio.Track, ErrInvalid)
	case !inPowerRange(c.Power.Engines):
		return fmt.Errorf("power.engines %d: %w", c.Power.Engines, ErrInvalid)
	case !inPowerRange(c.Power.Shields):
		return fmt.Errorf("power.shields %d: %w", c.Power.Shields, ErrInvalid)
	case !inPowerRange(c.Power.Weapons):
		return fmt.Errorf("power.weapons %d: %w", c.Power.Weapons, ErrInvalid)
	case !inPowerRange(c.Power.Sensors):
		return fmt.Errorf("power.sensors %d: %w", c.Power.Sensors, ErrInvalid)
	case c.Spawner.MinDistance > c.Spawner.MaxDistance:
		return fmt.Errorf("spawner distance %g > %g: %w", c.Spawner.MinDistance, c.Spawner.MaxDistance, ErrInvalid)
	}
	return nil
}

func inPowerRange(v int) bool {
	return v >= 0 && v <= parameter.PowerChannelMax
}

// TickInterval is the wall time between simulation ticks
func (g Game) TickInterval() time.Duration {
	return time.Second / time.Duration(g.TickRate)
}
