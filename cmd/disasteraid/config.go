// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/katalvlaran/disasteraid/routing"
)

// Config is the CLI configuration file.
type Config struct {
	Scenario  string    `toml:"scenario"`
	Algorithm string    `toml:"algorithm"`
	Log       LogConfig `toml:"log"`
}

// LogConfig controls logrus output. An empty File logs to stderr.
type LogConfig struct {
	Level      string `toml:"level"`
	File       string `toml:"file"`
	MaxSize    int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAge     int    `toml:"max_age_days"`
	Compress   *bool  `toml:"compress"`
}

// LoadConfig reads path, applies defaults and validates.
// An empty path yields the defaults alone.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config file: %w", err)
		}
	}
	cfg.applyDefaults()

	return &cfg, cfg.validate()
}

func (c *Config) applyDefaults() {
	if c.Algorithm == "" {
		c.Algorithm = routing.Dijkstra.String()
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.MaxSize == 0 {
		c.Log.MaxSize = 100 // MB
	}
	if c.Log.MaxBackups == 0 {
		c.Log.MaxBackups = 7
	}
	if c.Log.MaxAge == 0 {
		c.Log.MaxAge = 30 // days
	}
	if c.Log.Compress == nil {
		compress := true
		c.Log.Compress = &compress
	}
}

func (c *Config) validate() error {
	if _, err := routing.ParseAlgorithm(c.Algorithm); err != nil {
		return err
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	if c.Log.MaxSize < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAge < 0 {
		return fmt.Errorf("log rotation values must be non-negative")
	}

	return nil
}

// newLogger builds a logrus logger from cfg. The returned closer releases the
// rotating file, if any.
func newLogger(cfg LogConfig, stderr io.Writer) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}

	logger := log.New()
	logger.SetLevel(level)
	logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	if cfg.File == "" {
		logger.SetOutput(stderr)
		return logger, nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	rotator := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress != nil && *cfg.Compress,
	}
	logger.SetOutput(rotator)

	return logger, rotator, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
