package main

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the tunables for the interactive frontends and the server
type Config struct {
	Window WindowConfig `yaml:"window"`
	TUI    TUIConfig    `yaml:"tui"`
	Server ServerConfig `yaml:"server"`
	Solve  SolveConfig  `yaml:"solve"`
}

// WindowConfig controls the graphical frontend
type WindowConfig struct {
	CellSize       int `yaml:"cellSize"`
	Gap            int `yaml:"gap"`
	TPS            int `yaml:"tps"`
	StepsPerSecond int `yaml:"stepsPerSecond"`
}

// TUIConfig controls the terminal frontend
type TUIConfig struct {
	StepIntervalMS int `yaml:"stepIntervalMs"`
}

// ServerConfig controls the HTTP API
type ServerConfig struct {
	Addr             string `yaml:"addr"`
	StreamIntervalMS int    `yaml:"streamIntervalMs"`
}

// SolveConfig controls the headless solver
type SolveConfig struct {
	SimplifyEpsilon float64 `yaml:"simplifyEpsilon"`
}

// DefaultConfig returns settings matching the classic 819x819 window
// layout: 40px cells with 1px gaps on a 20x20 grid.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{CellSize: 40, Gap: 1, TPS: 60, StepsPerSecond: 20},
		TUI:    TUIConfig{StepIntervalMS: 50},
		Server: ServerConfig{Addr: ":8080", StreamIntervalMS: 100},
		Solve:  SolveConfig{SimplifyEpsilon: 0.5},
	}
}

// LoadConfig reads a YAML config file over the defaults. An empty path
// or a missing file keeps the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("ℹ️  Config %s not found, using defaults\n", path)
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	log.Printf("✅ Loaded config from %s\n", path)
	return cfg, nil
}

// Validate rejects values the frontends cannot run with
func (c *Config) Validate() error {
	if c.Window.CellSize <= 0 {
		return fmt.Errorf("window.cellSize must be positive, got %d", c.Window.CellSize)
	}
	if c.Window.Gap < 0 {
		return fmt.Errorf("window.gap must not be negative, got %d", c.Window.Gap)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("window.tps must be positive, got %d", c.Window.TPS)
	}
	if c.Window.StepsPerSecond <= 0 {
		return fmt.Errorf("window.stepsPerSecond must be positive, got %d", c.Window.StepsPerSecond)
	}
	if c.TUI.StepIntervalMS <= 0 {
		return fmt.Errorf("tui.stepIntervalMs must be positive, got %d", c.TUI.StepIntervalMS)
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr must not be empty")
	}
	if c.Server.StreamIntervalMS <= 0 {
		return fmt.Errorf("server.streamIntervalMs must be positive, got %d", c.Server.StreamIntervalMS)
	}
	if c.Solve.SimplifyEpsilon < 0 {
		return fmt.Errorf("solve.simplifyEpsilon must not be negative, got %g", c.Solve.SimplifyEpsilon)
	}
	return nil
}
