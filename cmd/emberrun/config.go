package main

import (
	"os"

	"gopkg.in/yaml.v3"

	rterrors "github.com/emberlang/ember-runtime/errors"
)

// Config holds the tunable runtime options emberrun reads before
// driving the runtime surface.
type Config struct {
	// Trace enables allocation tracing regardless of the -v flag.
	Trace bool `yaml:"trace"`
	// SweepOnExit runs the shutdown sweep when the demo finishes.
	SweepOnExit bool `yaml:"sweep_on_exit"`
}

func defaultConfig() *Config {
	return &Config{SweepOnExit: true}
}

func loadConfig(path string) (*Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, rterrors.Wrap(rterrors.PhaseConfig, rterrors.KindIO, err, "read config")
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, rterrors.Wrap(rterrors.PhaseConfig, rterrors.KindInvalidData, err, "parse config")
	}
	return cfg, nil
}
