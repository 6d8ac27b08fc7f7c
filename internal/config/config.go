// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultScreenWidth  = 800
	DefaultScreenHeight = 600
	DefaultTickRate     = 60
	DefaultMapWidth     = 50
	DefaultMapHeight    = 50
	DefaultTileSize     = 32.0

	MinimapSize   = 100
	HealthBarW    = 100
	AimLineLength = 50.0
)

// Hit box sizes (centered squares), pixels.
const (
	PlayerBox = 20.0
	EnemyBox  = 30.0
	BossBox   = 50.0
	BulletBox = 10.0
	ItemBox   = 20.0
	ChestBox  = 20.0
)

var (
	BackgroundColor = color.RGBA{50, 50, 50, 255}
	FloorColor      = color.RGBA{0, 0, 0, 255}
	WallColor       = color.RGBA{100, 100, 100, 255}
	TextLightColor  = color.RGBA{255, 255, 255, 255}
	HighlightColor  = color.RGBA{255, 255, 0, 255}
	PlayerColor     = color.RGBA{0, 255, 0, 255}
	DroneColor      = color.RGBA{255, 0, 0, 255}
	TankColor       = color.RGBA{255, 255, 0, 255}
	BossColor       = color.RGBA{0, 255, 255, 255}
	ItemColor       = color.RGBA{0, 0, 255, 255}
	HealthItemColor = color.RGBA{255, 165, 0, 255}
	ChestColor      = color.RGBA{128, 0, 128, 255}
	BulletColor     = color.RGBA{255, 255, 255, 255}
	HealthBarBack   = color.RGBA{255, 0, 0, 255}
	HealthBarFront  = color.RGBA{0, 255, 0, 255}
	ExplosionColors = []color.RGBA{
		{255, 0, 0, 255},     // red
		{255, 255, 0, 255},   // yellow
		{255, 255, 255, 255}, // white
	}
)

// Config holds the tunable parameters of a game session.
// Keys absent from a YAML file keep their defaults; a key set explicitly,
// even to zero or false, overrides the default.
type Config struct {
	Seed                 int64   `yaml:"seed"`
	TickRate             int     `yaml:"tick_rate"`
	ScreenWidth          int     `yaml:"screen_width"`
	ScreenHeight         int     `yaml:"screen_height"`
	MapWidth             int     `yaml:"map_width"`
	MapHeight            int     `yaml:"map_height"`
	TileSize             float64 `yaml:"tile_size"`
	WallProbability      float64 `yaml:"wall_probability"`
	MaxEnemies           int     `yaml:"max_enemies"`
	EnemySpawnChance     float64 `yaml:"enemy_spawn_chance"`
	ChestSpawnChance     float64 `yaml:"chest_spawn_chance"`
	ItemDropChance       float64 `yaml:"item_drop_chance"`
	ContactDamage        bool    `yaml:"contact_damage"`
	MaxPlacementAttempts int     `yaml:"max_placement_attempts"`
}

// Default returns the stock game balance.
func Default() *Config {
	return &Config{
		Seed:                 0,
		TickRate:             DefaultTickRate,
		ScreenWidth:          DefaultScreenWidth,
		ScreenHeight:         DefaultScreenHeight,
		MapWidth:             DefaultMapWidth,
		MapHeight:            DefaultMapHeight,
		TileSize:             DefaultTileSize,
		WallProbability:      0.15,
		MaxEnemies:           8,
		EnemySpawnChance:     0.005,
		ChestSpawnChance:     0.002,
		ItemDropChance:       0.5,
		ContactDamage:        true,
		MaxPlacementAttempts: 1000,
	}
}

// TickDuration is the fixed simulation timestep.
func (c *Config) TickDuration() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

// Load reads a YAML file on top of Default. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks ranges that would otherwise break the simulation.
func (c *Config) Validate() error {
	var errs []error
	if c.TickRate <= 0 {
		errs = append(errs, errors.New("tick_rate must be positive"))
	}
	if c.MapWidth <= 0 || c.MapHeight <= 0 {
		errs = append(errs, errors.New("map size must be positive"))
	}
	if c.TileSize <= 0 {
		errs = append(errs, errors.New("tile_size must be positive"))
	}
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		errs = append(errs, errors.New("screen size must be positive"))
	}
	if c.MaxEnemies < 0 {
		errs = append(errs, errors.New("max_enemies must not be negative"))
	}
	if c.MaxPlacementAttempts <= 0 {
		errs = append(errs, errors.New("max_placement_attempts must be positive"))
	}
	for name, p := range map[string]float64{
		"wall_probability":   c.WallProbability,
		"enemy_spawn_chance": c.EnemySpawnChance,
		"chest_spawn_chance": c.ChestSpawnChance,
		"item_drop_chance":   c.ItemDropChance,
	} {
		if p < 0 || p > 1 {
			errs = append(errs, fmt.Errorf("%s must be within [0, 1], got %v", name, p))
		}
	}
	return errors.Join(errs...)
}
