package app

import (
	"errors"
	"fmt"
)

// Defaults shared by the CLI and run files.
const (
	DefaultAggregate   = "gear_ratio"
	DefaultFormat      = "plain"
	DefaultWorkerCount = 4
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	InputPath string // schematic text file, or run file(s) when RunFile is set
	RunFile   bool

	Aggregate string // used for plain schematics and run file blocks without one
	Format    string

	LogFormat       string
	LogLevel        string
	WorkerCount     int
	Watch           bool
	HealthcheckPort int
}

// NewConfig validates cfg and returns a copy with defaults applied.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.InputPath == "" {
		return nil, errors.New("InputPath is a required configuration field and cannot be empty")
	}
	if cfg.WorkerCount < 0 {
		return nil, fmt.Errorf("WorkerCount must not be negative, got %d", cfg.WorkerCount)
	}
	if cfg.WorkerCount == 0 {
		cfg.WorkerCount = DefaultWorkerCount
	}
	if cfg.HealthcheckPort < 0 || cfg.HealthcheckPort > 65535 {
		return nil, fmt.Errorf("HealthcheckPort must be between 0 and 65535, got %d", cfg.HealthcheckPort)
	}
	if cfg.Aggregate == "" {
		cfg.Aggregate = DefaultAggregate
	}
	if cfg.Format == "" {
		cfg.Format = DefaultFormat
	}
	return &cfg, nil
}
