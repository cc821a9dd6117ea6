// Package config loads runtime settings for the dojo command from YAML and
// the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/talgya/dojo-idle/internal/dungeon"
)

type Config struct {
	DBPath             string        `yaml:"db_path" json:"db_path"`
	Seed               int64         `yaml:"seed" json:"seed"` // 0 = random
	LogLevel           string        `yaml:"log_level" json:"log_level"`
	TickInterval       time.Duration `yaml:"tick_interval" json:"tick_interval"`
	AutosaveEveryTicks uint64        `yaml:"autosave_every_ticks" json:"autosave_every_ticks"`
	ContentPath        string        `yaml:"content_path" json:"content_path"` // Empty = built-in content
	Dungeon            DungeonConfig `yaml:"dungeon" json:"dungeon"`
}

type DungeonConfig struct {
	TargetPieceCount int `yaml:"target_piece_count" json:"target_piece_count"`
	MinEntrances     int `yaml:"min_entrances" json:"min_entrances"`
}

// Default returns a reasonable starting configuration.
func Default() *Config {
	c := &Config{}
	c.ApplyDefaults()
	return c
}

// ApplyDefaults fills zero values.
func (c *Config) ApplyDefaults() {
	if c.DBPath == "" {
		c.DBPath = "data/dojo.db"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.TickInterval <= 0 {
		c.TickInterval = time.Second
	}
	if c.AutosaveEveryTicks == 0 {
		c.AutosaveEveryTicks = 60
	}
	c.Dungeon.ApplyDefaults()
}

// ApplyDefaults fills zero values from dungeon.DefaultConfig.
func (d *DungeonConfig) ApplyDefaults() {
	def := dungeon.DefaultConfig()
	if d.TargetPieceCount <= 0 {
		d.TargetPieceCount = def.TargetPieceCount
	}
	if d.MinEntrances <= 0 {
		d.MinEntrances = def.MinEntrances
	}
}

// Load reads a YAML file, then applies defaults and environment overrides.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	c.ApplyDefaults()
	c.ApplyEnv()
	return &c, nil
}

// LoadOrDefault loads path when it is non-empty, else returns defaults with
// environment overrides applied.
func LoadOrDefault(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}
	c := Default()
	c.ApplyEnv()
	return c, nil
}

// ApplyEnv overrides fields from DOJO_* environment variables.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("DOJO_DB_PATH"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("DOJO_SEED"); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = seed
		} else {
			slog.Warn("ignoring invalid DOJO_SEED", "value", v)
		}
	}
	if v := os.Getenv("DOJO_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("DOJO_CONTENT"); v != "" {
		c.ContentPath = v
	}
}

// SlogLevel maps LogLevel to a slog level. Unknown names mean info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
