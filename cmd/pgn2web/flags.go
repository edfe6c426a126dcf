// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"

	"github.com/lgbarn/pgn2web-go/internal/config"
	"github.com/lgbarn/pgn2web-go/internal/engine"
	"github.com/lgbarn/pgn2web-go/internal/errors"
)

var (
	// Page options
	outputFile   = flag.String("o", "game.html", "Base page filename: games.html gives games0.html, games1.html, ...")
	layout       = flag.String("layout", "linked", "Page layout: individual, linked, frameset")
	notation     = flag.String("notation", "san", "Move notation: san, lan, coordinate")
	templateFile = flag.String("template", "", "Page template replacing the built-in one")
	pieceSet     = flag.String("pieces", "images", "Directory holding the board images")
	noCredit     = flag.Bool("nocredit", false, "Leave out the generated-by footer")
	jsonOutput   = flag.Bool("J", false, "Write JSON to stdout instead of HTML pages")

	// Content options
	noComments   = flag.Bool("C", false, "Don't output comments")
	noNAGs       = flag.Bool("N", false, "Don't output NAGs")
	noVariations = flag.Bool("V", false, "Don't output variations")

	// Parsing
	strictMode    = flag.Bool("strict", false, "Reject games containing unparsable movetext tokens")
	maxPlies      = flag.Int("maxplies", engine.MaxHistory, "Maximum plies in one variation")
	maxVariations = flag.Int("maxvariations", 0, "Maximum variations per game (0 = no limit)")

	// Diagrams
	diagramFormat = flag.String("diagram", "none", "Final position diagram per game: none, svg, png")
	diagramSize   = flag.Int("diagramsize", 360, "Diagram width and height in pixels")

	// Duplicate detection
	suppressDuplicates = flag.Bool("D", false, "Suppress duplicate games")
	duplicateFile      = flag.String("d", "", "Output duplicates to this file")
	exactDuplicates    = flag.Bool("exact", false, "Duplicates must repeat the move sequence, not just reach the same position")
	duplicateCapacity  = flag.Int("duplicate-capacity", 0, "Maximum duplicate hash table entries (0 = unlimited)")

	// Cache
	cacheDir = flag.String("cache", "", "Reuse conversions stored in this directory")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	verbosity = flag.Int("verbosity", 1, "0 = silent, 1 = per-file summary, 2 = running commentary")
	quiet     = flag.Bool("s", false, "Silent mode (same as -verbosity 0)")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")

	// Performance options
	workers = flag.Int("workers", 0, "Number of worker threads (0 = auto-detect based on CPU cores)")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	if err := applyOutputFlags(cfg); err != nil {
		return err
	}
	applyContentFlags(cfg)
	applyParseFlags(cfg)
	applyDuplicateFlags(cfg)

	if *cacheDir != "" {
		cfg.Cache.Enabled = true
		cfg.Cache.Dir = *cacheDir
	}
	cfg.Workers = *workers
	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
	return cfg.Validate()
}

// applyOutputFlags configures page generation.
func applyOutputFlags(cfg *config.Config) error {
	var err error
	out := cfg.Output
	if out.Layout, err = config.ParseLayout(*layout); err != nil {
		return err
	}
	if out.Notation, err = config.ParseNotation(*notation); err != nil {
		return err
	}
	if out.Diagram, err = config.ParseDiagramFormat(*diagramFormat); err != nil {
		return err
	}
	if out.Diagram != config.NoDiagram && *jsonOutput {
		return fmt.Errorf("diagrams are written next to HTML pages, not with -J: %w", errors.ErrInvalidConfig)
	}
	out.DiagramSize = *diagramSize
	out.OutputFilename = *outputFile
	out.Template = *templateFile
	out.PieceSet = *pieceSet
	out.Credit = !*noCredit
	out.JSONFormat = *jsonOutput
	return nil
}

// applyContentFlags configures content output settings.
func applyContentFlags(cfg *config.Config) {
	cfg.Output.KeepComments = !*noComments
	cfg.Output.KeepNAGs = !*noNAGs
	cfg.Output.KeepVariations = !*noVariations
}

// applyParseFlags configures movetext parsing limits.
func applyParseFlags(cfg *config.Config) {
	cfg.Parse.Strict = *strictMode
	cfg.Parse.MaxPlies = *maxPlies
	cfg.Parse.MaxVariations = *maxVariations
}

// applyDuplicateFlags configures duplicate detection settings.
func applyDuplicateFlags(cfg *config.Config) {
	cfg.Duplicate.Suppress = *suppressDuplicates
	cfg.Duplicate.ExactMatch = *exactDuplicates
	cfg.Duplicate.MaxCapacity = *duplicateCapacity
}
