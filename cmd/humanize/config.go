package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type config struct {
	Database      string
	MinVelocity   int
	MaxVelocity   int
	Seed          int64
	RunningStatus bool
}

type fileConfig struct {
	Database      string `toml:"database"`
	MinVelocity   int    `toml:"min_velocity"`
	MaxVelocity   int    `toml:"max_velocity"`
	Seed          int64  `toml:"seed"`
	RunningStatus bool   `toml:"running_status"`
}

func defaultConfig() config {
	return config{
		MinVelocity:   0,
		MaxVelocity:   127,
		RunningStatus: true,
	}
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return config{}, fmt.Errorf("load humanize config: %w", err)
	}

	if meta.IsDefined("database") {
		cfg.Database = strings.TrimSpace(raw.Database)
	}
	if meta.IsDefined("min_velocity") {
		cfg.MinVelocity = raw.MinVelocity
	}
	if meta.IsDefined("max_velocity") {
		cfg.MaxVelocity = raw.MaxVelocity
	}
	if meta.IsDefined("seed") {
		cfg.Seed = raw.Seed
	}
	if meta.IsDefined("running_status") {
		cfg.RunningStatus = raw.RunningStatus
	}

	return cfg, cfg.validate()
}

func (c config) validate() error {
	if c.MinVelocity < 0 || c.MaxVelocity > 127 || c.MinVelocity > c.MaxVelocity {
		return fmt.Errorf("velocity range %d..%d must lie within 0..127", c.MinVelocity, c.MaxVelocity)
	}
	return nil
}
