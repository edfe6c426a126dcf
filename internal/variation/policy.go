package variation

import (
	"github.com/lgbarn/pgn2web-go/internal/config"
	"github.com/lgbarn/pgn2web-go/internal/errors"
)

// TokenPolicy decides what happens to a movetext token the parser cannot
// use. Returning nil skips the token; returning an error aborts the parse.
type TokenPolicy func(*errors.TokenError) error

// Lenient logs the token at verbosity 2 and skips it.
func Lenient(cfg *config.Config) TokenPolicy {
	return func(e *errors.TokenError) error {
		if cfg.CurrentInputFile != "" {
			cfg.Logf(2, "%s: skipping %v\n", cfg.CurrentInputFile, e)
		} else {
			cfg.Logf(2, "skipping %v\n", e)
		}
		return nil
	}
}

// Strict aborts on the first unusable token.
func Strict(e *errors.TokenError) error {
	return e
}

// PolicyFor returns the policy selected by cfg.Parse.Strict.
func PolicyFor(cfg *config.Config) TokenPolicy {
	if cfg.Parse.Strict {
		return Strict
	}
	return Lenient(cfg)
}
