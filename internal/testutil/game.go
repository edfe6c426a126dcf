package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/pgn2web-go/internal/chess"
	"github.com/lgbarn/pgn2web-go/internal/config"
	"github.com/lgbarn/pgn2web-go/internal/parser"
)

// QuietConfig returns a default config that logs nothing.
func QuietConfig() *config.Config {
	cfg := config.NewConfig()
	cfg.Verbosity = 0
	return cfg
}

// MustParseGames reads every game in pgn, failing the test on a read
// error or when the text holds no game at all.
func MustParseGames(t testing.TB, pgn string) []*chess.Game {
	t.Helper()
	games, err := parser.NewReader(strings.NewReader(pgn), QuietConfig()).ReadAll()
	if err != nil {
		t.Fatalf("reading test PGN: %v\n%s", err, pgn)
	}
	if len(games) == 0 {
		t.Fatalf("no game in test PGN:\n%s", pgn)
	}
	return games
}

// MustParseGame returns the first game of pgn.
func MustParseGame(t testing.TB, pgn string) *chess.Game {
	t.Helper()
	return MustParseGames(t, pgn)[0]
}
