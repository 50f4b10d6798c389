package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/Bastczuak/bytepath/component"
	"github.com/Bastczuak/bytepath/constant"
	"github.com/Bastczuak/bytepath/engine"
)

// Config is the tunable surface of the simulation. Every field defaults to
// the compiled-in constants; a TOML file overrides selectively
type Config struct {
	Screen   ScreenConfig   `toml:"screen"`
	Player   PlayerConfig   `toml:"player"`
	Boost    BoostConfig    `toml:"boost"`
	Spawn    SpawnConfig    `toml:"spawn"`
	Shake    ShakeConfig    `toml:"shake"`
	SlowDown SlowDownConfig `toml:"slow_down"`
}

type ScreenConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

type PlayerConfig struct {
	MovementSpeed float64 `toml:"movement_speed"`
	RotationSpeed float64 `toml:"rotation_speed"`
}

type BoostConfig struct {
	Max       float64 `toml:"max"`
	IncAmount float64 `toml:"inc_amount"`
	DecAmount float64 `toml:"dec_amount"`
	Cooldown  float64 `toml:"cooldown"`
}

type SpawnConfig struct {
	Projectile  time.Duration `toml:"projectile"`
	TickEffect  time.Duration `toml:"tick_effect"`
	AmmoPickup  time.Duration `toml:"ammo_pickup"`
	BoostPickup time.Duration `toml:"boost_pickup"`
}

type ShakeConfig struct {
	Duration  time.Duration `toml:"duration"`
	Frequency float64       `toml:"frequency"`
	Amplitude float64       `toml:"amplitude"`
}

type SlowDownConfig struct {
	Duration time.Duration `toml:"duration"`
	Floor    float64       `toml:"floor"`
}

// Load reads an optional TOML override file. A missing file yields the
// defaults; a present but malformed file is an error
func Load(path string) (*Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Defaults returns the compiled-in tuning
func Defaults() *Config {
	return &Config{
		Screen: ScreenConfig{
			Width:  constant.ScreenWidth,
			Height: constant.ScreenHeight,
		},
		Player: PlayerConfig{
			MovementSpeed: constant.PlayerMovementSpeed,
			RotationSpeed: constant.PlayerRotationSpeed,
		},
		Boost: BoostConfig{
			Max:       constant.BoostMax,
			IncAmount: constant.BoostIncAmount,
			DecAmount: constant.BoostDecAmount,
			Cooldown:  constant.BoostCooldown,
		},
		Spawn: SpawnConfig{
			Projectile:  constant.ProjectileSpawnPeriod,
			TickEffect:  constant.TickEffectPeriod,
			AmmoPickup:  constant.AmmoPickupSpawnPeriod,
			BoostPickup: constant.BoostPickupSpawnPeriod,
		},
		Shake: ShakeConfig{
			Duration:  constant.ShakeDuration,
			Frequency: constant.ShakeFrequency,
			Amplitude: constant.ShakeAmplitude,
		},
		SlowDown: SlowDownConfig{
			Duration: constant.SlowDownDuration,
			Floor:    constant.SlowDownFloor,
		},
	}
}

// ApplyTo writes the loaded tuning into a world's resources before
// startup. Per-entity parameters (player speeds, boost pool) are consumed
// from the config resource at spawn time
func (c *Config) ApplyTo(res *engine.Resource) {
	res.Config.ScreenWidth = c.Screen.Width
	res.Config.ScreenHeight = c.Screen.Height
	res.Config.PlayerMovementSpeed = c.Player.MovementSpeed
	res.Config.PlayerRotationSpeed = c.Player.RotationSpeed
	res.Config.BoostMax = c.Boost.Max
	res.Config.BoostIncAmount = c.Boost.IncAmount
	res.Config.BoostDecAmount = c.Boost.DecAmount
	res.Config.BoostCooldown = c.Boost.Cooldown
	res.Config.SlowDownDuration = c.SlowDown.Duration
	res.Config.SlowDownFloor = c.SlowDown.Floor

	res.Shake = engine.NewShakeResource(c.Shake.Duration, c.Shake.Frequency, c.Shake.Amplitude)

	res.Spawn.Projectile = component.NewTimer(c.Spawn.Projectile, true)
	res.Spawn.TickEffect = component.NewTimer(c.Spawn.TickEffect, true)
	res.Spawn.AmmoPickup = component.NewTimer(c.Spawn.AmmoPickup, true)
	res.Spawn.BoostPickup = component.NewTimer(c.Spawn.BoostPickup, true)
}
