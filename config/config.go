// Package config loads settings for the cliffnet command-line tools.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration
type Config struct {
	Network Network `yaml:"network"`
	Demo    Demo    `yaml:"demo"`
	Bench   Bench   `yaml:"bench"`
	Log     Log     `yaml:"log"`
}

// Network describes the layer stack
type Network struct {
	// Sizes lists feature counts at every layer boundary, input first.
	Sizes []int `yaml:"sizes"`
	// Seed seeds parameter initialisation and the demo's random points.
	Seed uint64 `yaml:"seed"`
	// Workers is the goroutine count per forward pass; 0 means one per CPU.
	Workers int `yaml:"workers"`
}

// Demo controls the random point cloud fed through the network
type Demo struct {
	Batch int `yaml:"batch"`
	// Points per sample; must equal Network.Sizes[0].
	Points int `yaml:"points"`
}

// Bench controls optional forward-pass timing
type Bench struct {
	Iterations int    `yaml:"iterations"`
	Dir        string `yaml:"dir"`
}

// Log configures logrus
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "text" or "json"
}

// Default returns the configuration of the 3→16→32→3 point-cloud demo.
func Default() Config {
	return Config{
		Network: Network{
			Sizes:   []int{3, 16, 32, 3},
			Seed:    42,
			Workers: 1,
		},
		Demo: Demo{
			Batch:  2,
			Points: 3,
		},
		Bench: Bench{
			Dir: "benchmark_logs",
		},
		Log: Log{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads a YAML file on top of Default and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "read config")
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config file %s", path)
	}
	return cfg, nil
}

// Parse decodes YAML on top of Default and validates the result. Unknown
// keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, errors.Wrap(err, "unmarshal yaml")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for consistency.
func (c Config) Validate() error {
	if len(c.Network.Sizes) < 2 {
		return fmt.Errorf("network.sizes needs at least two entries, got %d", len(c.Network.Sizes))
	}
	for i, s := range c.Network.Sizes {
		if s <= 0 {
			return fmt.Errorf("network.sizes[%d] must be positive, got %d", i, s)
		}
	}
	if c.Network.Workers < 0 {
		return fmt.Errorf("network.workers must not be negative, got %d", c.Network.Workers)
	}
	if c.Demo.Batch <= 0 {
		return fmt.Errorf("demo.batch must be positive, got %d", c.Demo.Batch)
	}
	if c.Demo.Points != c.Network.Sizes[0] {
		return fmt.Errorf("demo.points (%d) must equal the input layer size network.sizes[0] (%d)",
			c.Demo.Points, c.Network.Sizes[0])
	}
	if c.Bench.Iterations < 0 {
		return fmt.Errorf("bench.iterations must not be negative, got %d", c.Bench.Iterations)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrap(err, "log.level")
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	return nil
}

// NewLogger returns a logrus logger configured from c.
func (c Log) NewLogger() *logrus.Logger {
	logger := logrus.New()
	if level, err := logrus.ParseLevel(c.Level); err == nil {
		logger.SetLevel(level)
	}
	if c.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger
}
