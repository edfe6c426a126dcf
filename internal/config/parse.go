package config

import (
	"fmt"

	"github.com/lgbarn/pgn2web-go/internal/engine"
	"github.com/lgbarn/pgn2web-go/internal/errors"
)

// ParseConfig holds settings for movetext parsing.
type ParseConfig struct {
	// Strict aborts a game at the first token that is not a move, comment,
	// NAG or structural character. Otherwise such tokens are skipped.
	Strict bool

	// MaxPlies bounds the moves held in one variation's undo history.
	MaxPlies int

	// MaxVariations bounds the variations in one game (0 = no limit).
	MaxVariations int
}

// NewParseConfig creates a ParseConfig with default values.
func NewParseConfig() *ParseConfig {
	return &ParseConfig{
		MaxPlies: engine.MaxHistory,
	}
}

// Validate checks that the parse configuration is valid.
func (p *ParseConfig) Validate() error {
	if p.MaxPlies <= 0 || p.MaxPlies > engine.MaxHistory {
		return fmt.Errorf("max plies %d out of range 1-%d: %w",
			p.MaxPlies, engine.MaxHistory, errors.ErrInvalidConfig)
	}
	if p.MaxVariations < 0 {
		return fmt.Errorf("negative variation limit %d: %w", p.MaxVariations, errors.ErrInvalidConfig)
	}
	return nil
}
