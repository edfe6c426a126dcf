package config

import (
	"io"

	"github.com/lgbarn/pgn2web-go/internal/engine"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithNotation sets the move notation for the notation panel.
func (b *ConfigBuilder) WithNotation(n engine.Notation) *ConfigBuilder {
	b.cfg.Output.Notation = n
	return b
}

// WithLayout sets the page layout.
func (b *ConfigBuilder) WithLayout(l Layout) *ConfigBuilder {
	b.cfg.Output.Layout = l
	return b
}

// WithOutputFilename sets the base page filename.
func (b *ConfigBuilder) WithOutputFilename(name string) *ConfigBuilder {
	b.cfg.Output.OutputFilename = name
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithDiagram sets the final-position diagram format and size.
func (b *ConfigBuilder) WithDiagram(format DiagramFormat, size int) *ConfigBuilder {
	b.cfg.Output.Diagram = format
	b.cfg.Output.DiagramSize = size
	return b
}

// WithStrictParsing makes unparsable movetext tokens abort the game.
func (b *ConfigBuilder) WithStrictParsing(strict bool) *ConfigBuilder {
	b.cfg.Parse.Strict = strict
	return b
}

// WithMaxPlies bounds the undo history of each variation.
func (b *ConfigBuilder) WithMaxPlies(n int) *ConfigBuilder {
	b.cfg.Parse.MaxPlies = n
	return b
}

// WithMaxVariations bounds the number of variations per game.
func (b *ConfigBuilder) WithMaxVariations(n int) *ConfigBuilder {
	b.cfg.Parse.MaxVariations = n
	return b
}

// WithDuplicateSuppression enables duplicate suppression.
func (b *ConfigBuilder) WithDuplicateSuppression(enabled bool) *ConfigBuilder {
	b.cfg.Duplicate.Suppress = enabled
	return b
}

// WithCache enables the conversion cache in dir.
func (b *ConfigBuilder) WithCache(dir string) *ConfigBuilder {
	b.cfg.Cache.Enabled = true
	b.cfg.Cache.Dir = dir
	return b
}

// WithWorkers sets the number of concurrent conversions.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the diagnostic writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// KeepComments controls whether comments are kept.
func (b *ConfigBuilder) KeepComments(keep bool) *ConfigBuilder {
	b.cfg.Output.KeepComments = keep
	return b
}

// KeepVariations controls whether variations are kept.
func (b *ConfigBuilder) KeepVariations(keep bool) *ConfigBuilder {
	b.cfg.Output.KeepVariations = keep
	return b
}

// KeepNAGs controls whether NAGs are kept.
func (b *ConfigBuilder) KeepNAGs(keep bool) *ConfigBuilder {
	b.cfg.Output.KeepNAGs = keep
	return b
}
