package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/ThePyromage/dungeonGenerator/internal/generation"
)

// ErrInvalid indicates a configuration value outside its allowed range
var ErrInvalid = errors.New("config: invalid value")

// Config holds all application configuration
type Config struct {
	ServerAddr string `json:"server_addr"`
	// MaxBatch caps how many dungeons one batch request may ask for
	MaxBatch int `json:"max_batch"`
	// Workers bounds how many dungeons a batch generates at once
	Workers int `json:"workers"`
	// CacheSize is how many seeded dungeons are kept for repeat requests
	CacheSize int `json:"cache_size"`
	// MaxWidth and MaxHeight cap requested stage sizes
	MaxWidth  int `json:"max_width"`
	MaxHeight int `json:"max_height"`

	// Generator holds the defaults used for fields a request leaves out
	Generator generation.Config `json:"generator"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		ServerAddr: ":8080",
		MaxBatch:   64,
		Workers:    4,
		CacheSize:  128,
		MaxWidth:   201,
		MaxHeight:  201,
		Generator:  generation.DefaultConfig(),
	}
}

// Load reads a JSON config file on top of the defaults, then applies
// environment overrides. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if addr := os.Getenv("SERVER_ADDR"); addr != "" {
		c.ServerAddr = addr
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{"DUNGEON_MAX_BATCH", &c.MaxBatch},
		{"DUNGEON_WORKERS", &c.Workers},
		{"DUNGEON_CACHE_SIZE", &c.CacheSize},
	}
	for _, env := range ints {
		val := os.Getenv(env.name)
		if val == "" {
			continue
		}
		n, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("failed to parse %s=%q: %w", env.name, val, err)
		}
		*env.dst = n
	}
	return nil
}

// Validate fails fast on settings the service cannot run with
func (c *Config) Validate() error {
	if c.ServerAddr == "" {
		return fmt.Errorf("server_addr is empty: %w", ErrInvalid)
	}
	if c.MaxBatch < 1 {
		return fmt.Errorf("max_batch %d: %w", c.MaxBatch, ErrInvalid)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers %d: %w", c.Workers, ErrInvalid)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("cache_size %d: %w", c.CacheSize, ErrInvalid)
	}
	if c.MaxWidth < 3 || c.MaxHeight < 3 {
		return fmt.Errorf("max size %dx%d: %w", c.MaxWidth, c.MaxHeight, ErrInvalid)
	}
	if err := c.Generator.Validate(); err != nil {
		return fmt.Errorf("generator defaults: %w", err)
	}
	return nil
}
