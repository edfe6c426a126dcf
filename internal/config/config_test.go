package config

import (
	"bytes"
	"errors"
	"testing"

	"github.com/lgbarn/pgn2web-go/internal/engine"
	pgnerrors "github.com/lgbarn/pgn2web-go/internal/errors"
)

// TestOutputConfig_Defaults verifies OutputConfig has sensible defaults
func TestOutputConfig_Defaults(t *testing.T) {
	cfg := NewOutputConfig()

	if cfg.Notation != engine.SAN {
		t.Errorf("Notation = %v, want %v", cfg.Notation, engine.SAN)
	}
	if cfg.Layout != Linked {
		t.Errorf("Layout = %v, want linked", cfg.Layout)
	}
	if !cfg.KeepNAGs {
		t.Error("KeepNAGs should be true by default")
	}
	if !cfg.KeepComments {
		t.Error("KeepComments should be true by default")
	}
	if !cfg.KeepVariations {
		t.Error("KeepVariations should be true by default")
	}
	if cfg.PieceSet != "images" {
		t.Errorf("PieceSet = %q, want images", cfg.PieceSet)
	}
	if cfg.Diagram != NoDiagram {
		t.Errorf("Diagram = %v, want none", cfg.Diagram)
	}
}

// TestParseConfig_Defaults verifies ParseConfig has sensible defaults
func TestParseConfig_Defaults(t *testing.T) {
	cfg := NewParseConfig()

	if cfg.Strict {
		t.Error("Strict should be false by default")
	}
	if cfg.MaxPlies != engine.MaxHistory {
		t.Errorf("MaxPlies = %d, want %d", cfg.MaxPlies, engine.MaxHistory)
	}
	if cfg.MaxVariations != 0 {
		t.Errorf("MaxVariations = %d, want 0", cfg.MaxVariations)
	}
}

// TestConfig_Validate verifies validation of the whole configuration
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(*Config) {}, false},
		{"verbosity too high", func(c *Config) { c.Verbosity = 3 }, true},
		{"negative workers", func(c *Config) { c.Workers = -1 }, true},
		{"zero max plies", func(c *Config) { c.Parse.MaxPlies = 0 }, true},
		{"max plies above history", func(c *Config) { c.Parse.MaxPlies = engine.MaxHistory + 1 }, true},
		{"negative variations", func(c *Config) { c.Parse.MaxVariations = -2 }, true},
		{"no filename", func(c *Config) { c.Output.OutputFilename = "" }, true},
		{"no filename with json", func(c *Config) {
			c.Output.OutputFilename = ""
			c.Output.JSONFormat = true
		}, false},
		{"tiny diagram", func(c *Config) {
			c.Output.Diagram = PNGDiagram
			c.Output.DiagramSize = 10
		}, true},
		{"cache without dir", func(c *Config) {
			c.Cache.Enabled = true
			c.Cache.Dir = ""
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, pgnerrors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestParseLayout(t *testing.T) {
	tests := []struct {
		in      string
		want    Layout
		wantErr bool
	}{
		{"linked", Linked, false},
		{"Individual", Individual, false},
		{"FRAMESET", Frameset, false},
		{"tabs", Linked, true},
	}
	for _, tt := range tests {
		got, err := ParseLayout(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseLayout(%q) = %v, %v; want %v, wantErr %v", tt.in, got, err, tt.want, tt.wantErr)
		}
	}
}

func TestParseNotationAndDiagram(t *testing.T) {
	if n, err := ParseNotation("LAN"); err != nil || n != engine.LAN {
		t.Errorf("ParseNotation(LAN) = %v, %v", n, err)
	}
	if _, err := ParseNotation("figurine"); err == nil {
		t.Error("ParseNotation(figurine) should fail")
	}
	if d, err := ParseDiagramFormat("png"); err != nil || d != PNGDiagram {
		t.Errorf("ParseDiagramFormat(png) = %v, %v", d, err)
	}
	if d, err := ParseDiagramFormat(""); err != nil || d != NoDiagram {
		t.Errorf("ParseDiagramFormat(\"\") = %v, %v", d, err)
	}
	if _, err := ParseDiagramFormat("gif"); err == nil {
		t.Error("ParseDiagramFormat(gif) should fail")
	}
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	buf := &bytes.Buffer{}

	cfg.SetOutput(buf)

	if cfg.OutputFile != buf {
		t.Error("SetOutput did not set OutputFile")
	}
}

func TestConfig_Logf(t *testing.T) {
	cfg := NewConfig()
	buf := &bytes.Buffer{}
	cfg.SetLog(buf)

	cfg.Logf(2, "hidden %d\n", 1)
	cfg.Logf(1, "shown %d\n", 2)

	if got := buf.String(); got != "shown 2\n" {
		t.Errorf("log = %q, want %q", got, "shown 2\n")
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	cfg := NewConfigBuilder().
		WithNotation(engine.LAN).
		WithLayout(Frameset).
		WithDuplicateSuppression(true).
		WithStrictParsing(true).
		WithMaxVariations(5).
		WithCache("/tmp/cache").
		WithDiagram(SVGDiagram, 240).
		Build()

	if cfg.Output.Notation != engine.LAN {
		t.Errorf("Notation = %v, want lan", cfg.Output.Notation)
	}
	if cfg.Output.Layout != Frameset {
		t.Errorf("Layout = %v, want frameset", cfg.Output.Layout)
	}
	if !cfg.Duplicate.Suppress {
		t.Error("Duplicate.Suppress should be true")
	}
	if !cfg.Parse.Strict || cfg.Parse.MaxVariations != 5 {
		t.Errorf("Parse = %+v, want strict with 5 variations", cfg.Parse)
	}
	if !cfg.Cache.Enabled || cfg.Cache.Dir != "/tmp/cache" {
		t.Errorf("Cache = %+v", cfg.Cache)
	}
	if cfg.Output.Diagram != SVGDiagram || cfg.Output.DiagramSize != 240 {
		t.Errorf("Diagram = %v/%d", cfg.Output.Diagram, cfg.Output.DiagramSize)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}
