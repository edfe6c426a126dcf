// Package config provides configuration for pgn2web.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/pgn2web-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=per-file summary, 2=running commentary

	// Workers is the number of games converted concurrently.
	// Zero means one per CPU.
	Workers int

	// CurrentInputFile names the PGN file being read, for diagnostics.
	CurrentInputFile string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer

	Parse     *ParseConfig
	Output    *OutputConfig
	Cache     *CacheConfig
	Duplicate *DuplicateConfig
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
		Parse:      NewParseConfig(),
		Output:     NewOutputConfig(),
		Cache:      NewCacheConfig(),
		Duplicate:  NewDuplicateConfig(),
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the diagnostic writer.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Logf writes a diagnostic line when the verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.Verbosity < level || c.LogFile == nil {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}

// Validate checks the whole configuration.
func (c *Config) Validate() error {
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return fmt.Errorf("verbosity %d out of range 0-2: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.Workers < 0 {
		return fmt.Errorf("negative worker count %d: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if err := c.Parse.Validate(); err != nil {
		return err
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	return c.Cache.Validate()
}
