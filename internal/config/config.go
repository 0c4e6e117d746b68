package config

import (
	"fmt"
	"os"

	"github.com/esklarski/SmallCreatureAI/internal/mathutil"
	"gopkg.in/yaml.v3"
)

// Framerate limits applied to display.target_framerate.
const (
	MinFramerate     = 30
	MaxFramerate     = 120
	DefaultFramerate = 60
)

// Config holds all sandbox configuration values
type Config struct {
	Display    DisplayConfig    `yaml:"display"`
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Simulation SimulationConfig `yaml:"simulation"`
}

type DisplayConfig struct {
	ScreenWidth     int    `yaml:"screen_width"`
	ScreenHeight    int    `yaml:"screen_height"`
	WindowTitle     string `yaml:"window_title"`
	Resizable       bool   `yaml:"resizable"`
	TargetFramerate int    `yaml:"target_framerate"`
}

type WorldConfig struct {
	PenWidth      float64        `yaml:"pen_width"`
	PenDepth      float64        `yaml:"pen_depth"`
	PixelsPerUnit float64        `yaml:"pixels_per_unit"`
	Rocks         []RockConfig   `yaml:"rocks"`
	Meadows       []MeadowConfig `yaml:"meadows"`
}

// RockConfig is a solid box centered at (X, Z).
type RockConfig struct {
	X     float64 `yaml:"x"`
	Z     float64 `yaml:"z"`
	Width float64 `yaml:"width"`
	Depth float64 `yaml:"depth"`
}

// MeadowConfig is a patch of ground creatures can walk across.
type MeadowConfig struct {
	X      float64 `yaml:"x"`
	Z      float64 `yaml:"z"`
	Radius float64 `yaml:"radius"`
}

type PlayerConfig struct {
	MoveSpeed     float64 `yaml:"move_speed"`
	RotationSpeed float64 `yaml:"rotation_speed"` // degrees per second
	Radius        float64 `yaml:"radius"`
}

type SimulationConfig struct {
	Seed          int64  `yaml:"seed"` // 0 picks a time-based seed
	Parallel      bool   `yaml:"parallel"`
	CreaturesFile string `yaml:"creatures_file"`
}

var GlobalConfig *Config

// ParseConfig decodes configuration YAML.
func ParseConfig(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	if config.World.PenWidth <= 0 || config.World.PenDepth <= 0 {
		return nil, fmt.Errorf("world pen size must be positive, got %vx%v", config.World.PenWidth, config.World.PenDepth)
	}
	return &config, nil
}

// LoadConfig loads the configuration from config.yaml
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config, err := ParseConfig(data)
	if err != nil {
		return nil, err
	}

	// Set global config for easy access
	GlobalConfig = config

	return config, nil
}

// MustLoadConfig loads the configuration and panics on error
func MustLoadConfig(filename string) *Config {
	config, err := LoadConfig(filename)
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	return config
}

// Helper functions for easy access to commonly used values
func (c *Config) GetScreenWidth() int {
	return c.Display.ScreenWidth
}

func (c *Config) GetScreenHeight() int {
	return c.Display.ScreenHeight
}

// GetTargetFramerate returns the tick rate, clamped to [MinFramerate, MaxFramerate].
// An unset value means DefaultFramerate.
func (c *Config) GetTargetFramerate() int {
	if c.Display.TargetFramerate == 0 {
		return DefaultFramerate
	}
	return mathutil.IntClamp(c.Display.TargetFramerate, MinFramerate, MaxFramerate)
}

func (c *Config) GetPixelsPerUnit() float64 {
	if c.World.PixelsPerUnit <= 0 {
		return 20
	}
	return c.World.PixelsPerUnit
}

func (c *Config) GetMoveSpeed() float64 {
	return c.Player.MoveSpeed
}

func (c *Config) GetRotSpeed() float64 {
	return c.Player.RotationSpeed
}

func (c *Config) GetPlayerRadius() float64 {
	if c.Player.Radius <= 0 {
		return 0.5
	}
	return c.Player.Radius
}

func (c *Config) GetCreaturesFile() string {
	if c.Simulation.CreaturesFile == "" {
		return "assets/creatures.yaml"
	}
	return c.Simulation.CreaturesFile
}
