package config

import (
	"fmt"

	"github.com/lgbarn/pgn2web-go/internal/errors"
)

// CacheConfig holds settings for the conversion cache.
type CacheConfig struct {
	// Enabled turns on reuse of earlier conversions.
	Enabled bool

	// Dir is the directory of the cache database.
	Dir string
}

// NewCacheConfig creates a CacheConfig with default values.
func NewCacheConfig() *CacheConfig {
	return &CacheConfig{Dir: ".pgn2web-cache"}
}

// Validate checks that the cache configuration is valid.
func (c *CacheConfig) Validate() error {
	if c.Enabled && c.Dir == "" {
		return fmt.Errorf("cache enabled without a directory: %w", errors.ErrInvalidConfig)
	}
	return nil
}
