package config

import "io"

// DuplicateConfig holds settings for duplicate game detection.
type DuplicateConfig struct {
	// Suppress skips games whose main line repeats an earlier game.
	Suppress bool

	// ExactMatch requires the same move sequence, not just the same
	// final position after the same number of plies.
	ExactMatch bool

	// MaxCapacity bounds the number of remembered games. Zero means no limit.
	MaxCapacity int

	// DuplicateFile receives the PGN of every duplicate game when set.
	DuplicateFile io.Writer
}

// NewDuplicateConfig creates a DuplicateConfig with default values.
func NewDuplicateConfig() *DuplicateConfig {
	return &DuplicateConfig{}
}

// Enabled reports whether games need to be checked for duplicates at all.
func (d *DuplicateConfig) Enabled() bool {
	return d.Suppress || d.DuplicateFile != nil
}
