package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/pgn2web-go/internal/engine"
	"github.com/lgbarn/pgn2web-go/internal/errors"
)

// Layout selects how the pages for a PGN file link to each other.
type Layout int

const (
	Linked     Layout = iota // Every page carries a game list
	Individual               // Stand-alone pages
	Frameset                 // An index page with the list in one frame
)

var layoutNames = [...]string{
	Linked:     "linked",
	Individual: "individual",
	Frameset:   "frameset",
}

// String returns the layout name used on the command line.
func (l Layout) String() string {
	if int(l) < len(layoutNames) {
		return layoutNames[l]
	}
	return "unknown"
}

// ParseLayout converts a layout name.
func ParseLayout(s string) (Layout, error) {
	for l, name := range layoutNames {
		if strings.EqualFold(s, name) {
			return Layout(l), nil
		}
	}
	return Linked, fmt.Errorf("unknown layout %q: %w", s, errors.ErrInvalidConfig)
}

// DiagramFormat selects the final-position diagram written with each game.
type DiagramFormat int

const (
	NoDiagram DiagramFormat = iota
	SVGDiagram
	PNGDiagram
)

// ParseDiagramFormat converts "none", "svg" or "png".
func ParseDiagramFormat(s string) (DiagramFormat, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return NoDiagram, nil
	case "svg":
		return SVGDiagram, nil
	case "png":
		return PNGDiagram, nil
	}
	return NoDiagram, fmt.Errorf("unknown diagram format %q: %w", s, errors.ErrInvalidConfig)
}

// ParseNotation converts "san", "lan" or "coordinate".
func ParseNotation(s string) (engine.Notation, error) {
	for _, n := range []engine.Notation{engine.SAN, engine.LAN, engine.Coordinate} {
		if strings.EqualFold(s, n.String()) {
			return n, nil
		}
	}
	return engine.SAN, fmt.Errorf("unknown notation %q: %w", s, errors.ErrInvalidConfig)
}

// OutputConfig holds settings related to page generation.
type OutputConfig struct {
	// Notation is the move format written into the notation panel.
	Notation engine.Notation

	// KeepNAGs controls whether Numeric Annotation Glyphs are kept
	KeepNAGs bool

	// KeepComments controls whether comments are kept in output
	KeepComments bool

	// KeepVariations controls whether variations (RAV) are kept
	KeepVariations bool

	// Layout chooses individual, linked or frameset pages.
	Layout Layout

	// OutputFilename is the base name pages are derived from:
	// games.html becomes games0.html, games1.html, ...
	OutputFilename string

	// Template is an optional page template replacing the built-in one.
	Template string

	// PieceSet is the directory holding the board images.
	PieceSet string

	// Credit adds a "generated by" footer to each page.
	Credit bool

	// JSONFormat writes one JSON document per game instead of HTML.
	JSONFormat bool

	// Diagram and DiagramSize control the final-position image.
	Diagram     DiagramFormat
	DiagramSize int
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Notation:       engine.SAN,
		KeepNAGs:       true,
		KeepComments:   true,
		KeepVariations: true,
		Layout:         Linked,
		OutputFilename: "game.html",
		PieceSet:       "images",
		Credit:         true,
		DiagramSize:    360,
	}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if o.OutputFilename == "" && !o.JSONFormat {
		return fmt.Errorf("no output filename: %w", errors.ErrInvalidConfig)
	}
	if o.Diagram != NoDiagram && (o.DiagramSize < 64 || o.DiagramSize > 4096) {
		return fmt.Errorf("diagram size %d out of range 64-4096: %w", o.DiagramSize, errors.ErrInvalidConfig)
	}
	return nil
}
