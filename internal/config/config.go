// Package config provides the runtime settings for a game session.
// Settings are loaded from a YAML file on top of defaults, then overridden from
// the environment so a .env file can tweak a run without editing the file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables read by ApplyEnv.
const (
	EnvMaze       = "CHOMPER_MAZE"
	EnvSeed       = "CHOMPER_SEED"
	EnvStickyKeys = "CHOMPER_STICKY_KEYS"
	EnvLogLevel   = "CHOMPER_LOG_LEVEL"
)

// Config holds all settings for a run
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Simulation SimulationConfig `yaml:"simulation"`
	Input      InputConfig      `yaml:"input"`
	Log        LogConfig        `yaml:"log"`
	Maze       MazeConfig       `yaml:"maze"`
}

// WindowConfig controls the graphical window
type WindowConfig struct {
	Title string  `yaml:"title"`
	Scale float64 `yaml:"scale"` // Window pixels per maze unit
}

// SimulationConfig controls how a run is seeded. Speeds, timers and scoring
// are fixed by the game and cannot be configured.
type SimulationConfig struct {
	Seed int64 `yaml:"seed"` // 0 picks a seed from the clock
}

// InputConfig controls key handling
type InputConfig struct {
	// StickyKeys keeps the last pressed direction active after its key is released.
	StickyKeys bool `yaml:"sticky_keys"`
}

// LogConfig controls log output
type LogConfig struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
	File   string `yaml:"file"` // Empty logs to stderr
}

// MazeConfig selects the maze to play
type MazeConfig struct {
	Path string `yaml:"path"` // Empty plays the built-in maze
}

// DefaultConfig returns the classic arcade settings
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Title: "Chomper",
			Scale: 1,
		},
		Input: InputConfig{
			StickyKeys: true,
		},
		Log: LogConfig{
			Level:  "info",
			Pretty: true,
		},
	}
}

// LoadConfig loads config from a YAML file
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig() // Start with defaults
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if errors.Is(err, fs.ErrNotExist) {
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(config); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}

// ApplyEnv loads .env files (when present) into the process environment and
// applies the CHOMPER_* overrides to c.
func ApplyEnv(c *Config, envFiles ...string) error {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load env file: %w", err)
	}

	if v, ok := os.LookupEnv(EnvMaze); ok {
		c.Maze.Path = v
	}

	if v, ok := os.LookupEnv(EnvSeed); ok {
		seed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", EnvSeed, err)
		}
		c.Simulation.Seed = seed
	}

	if v, ok := os.LookupEnv(EnvStickyKeys); ok {
		sticky, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", EnvStickyKeys, err)
		}
		c.Input.StickyKeys = sticky
	}

	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		c.Log.Level = strings.TrimSpace(v)
	}

	return nil
}

// Validate rejects settings the game cannot run with
func (c *Config) Validate() error {
	if c.Window.Scale <= 0 {
		return fmt.Errorf("window scale must be positive, got %v", c.Window.Scale)
	}
	return nil
}
