package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the complete CLI configuration.
type Config struct {
	LogLevel string           `hcl:"log_level,optional"`
	Seed     *int64           `hcl:"seed,optional"`
	Odds     *OddsSettings    `hcl:"odds,block"`
	Display  *DisplaySettings `hcl:"display,block"`
}

// OddsSettings controls the Monte Carlo equity calculator.
type OddsSettings struct {
	Iterations int `hcl:"iterations,optional"`
	Workers    int `hcl:"workers,optional"`
}

// DisplaySettings controls how cards and results are rendered.
type DisplaySettings struct {
	Color   *bool `hcl:"color,optional"`
	Unicode *bool `hcl:"unicode,optional"`
}

const (
	defaultLogLevel   = "info"
	defaultIterations = 100000
)

// Default returns the configuration used when no file is present.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads configuration from an HCL file. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %s", filename, diags.Error())
	}

	var c Config
	diags = gohcl.DecodeBody(file.Body, nil, &c)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %s", filename, diags.Error())
	}

	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	if c.Odds == nil {
		c.Odds = &OddsSettings{}
	}
	if c.Odds.Iterations == 0 {
		c.Odds.Iterations = defaultIterations
	}
	if c.Odds.Workers == 0 {
		c.Odds.Workers = runtime.GOMAXPROCS(0)
	}
	if c.Display == nil {
		c.Display = &DisplaySettings{}
	}
	if c.Display.Color == nil {
		c.Display.Color = boolPtr(true)
	}
	if c.Display.Unicode == nil {
		c.Display.Unicode = boolPtr(true)
	}
}

// Validate checks the configuration for values the CLI cannot use.
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	if c.Odds.Iterations < 0 {
		return fmt.Errorf("odds: iterations must be positive, got %d", c.Odds.Iterations)
	}
	if c.Odds.Workers < 0 {
		return fmt.Errorf("odds: workers must be positive, got %d", c.Odds.Workers)
	}
	return nil
}

// Level returns the parsed log level.
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// Color reports whether output should be colored.
func (c *Config) Color() bool {
	return *c.Display.Color
}

// Unicode reports whether suits should be drawn as glyphs.
func (c *Config) Unicode() bool {
	return *c.Display.Unicode
}

func boolPtr(b bool) *bool {
	return &b
}
