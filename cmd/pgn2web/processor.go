// processor.go - Game conversion and page output
package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/lgbarn/pgn2web-go/internal/chess"
	"github.com/lgbarn/pgn2web-go/internal/config"
	"github.com/lgbarn/pgn2web-go/internal/diagram"
	"github.com/lgbarn/pgn2web-go/internal/engine"
	"github.com/lgbarn/pgn2web-go/internal/errors"
	"github.com/lgbarn/pgn2web-go/internal/hashing"
	"github.com/lgbarn/pgn2web-go/internal/output"
	"github.com/lgbarn/pgn2web-go/internal/parser"
	"github.com/lgbarn/pgn2web-go/internal/worker"
)

// ProcessingContext holds the state shared by every input file.
type ProcessingContext struct {
	cfg      *config.Config
	cache    worker.Cache
	detector *hashing.DuplicateDetector
	json     *output.JSONWriter
}

// Stats counts what happened to the games of one or more inputs.
type Stats struct {
	Games      int
	Written    int
	Duplicates int
	Errors     int
	Cached     int
}

// Add accumulates another input's counts.
func (s *Stats) Add(o Stats) {
	s.Games += o.Games
	s.Written += o.Written
	s.Duplicates += o.Duplicates
	s.Errors += o.Errors
	s.Cached += o.Cached
}

// newProcessingContext prepares the detector and JSON writer the
// configuration asks for. cache may be nil.
func newProcessingContext(cfg *config.Config, cache worker.Cache) *ProcessingContext {
	pc := &ProcessingContext{cfg: cfg, cache: cache}
	if cfg.Duplicate.Enabled() {
		pc.detector = hashing.NewDuplicateDetector(cfg.Duplicate.ExactMatch, cfg.Duplicate.MaxCapacity)
	}
	if cfg.Output.JSONFormat {
		pc.json = output.NewJSONWriter(cfg.OutputFile, cfg)
	}
	return pc
}

// Close writes any buffered JSON output.
func (pc *ProcessingContext) Close() error {
	if pc.json == nil {
		return nil
	}
	return pc.json.Close()
}

// processInput converts every game read from r. HTML pages are named
// after pageBase.
func (pc *ProcessingContext) processInput(ctx context.Context, r io.Reader, name, pageBase string) (Stats, error) {
	var stats Stats
	pc.cfg.CurrentInputFile = name

	games, err := parser.NewReader(r, pc.cfg).ReadAll()
	if err != nil {
		return stats, errors.Wrapf(err, "reading %s", name)
	}
	stats.Games = len(games)
	if len(games) == 0 {
		pc.cfg.Logf(1, "%s: no games found.\n", name)
		return stats, nil
	}

	pool := worker.NewPool(
		worker.NewConverter(pc.cfg, pc.cache).Process,
		worker.WithWorkers(pc.workers()),
		worker.WithBufferSize(2*pc.workers()),
	)
	results, err := pool.Run(ctx, games)
	if err != nil {
		return stats, err
	}

	kept := pc.selectGames(results, &stats)
	if pc.json != nil {
		err = pc.writeJSON(kept, &stats)
	} else {
		err = pc.writePages(kept, pageBase, &stats)
	}
	pc.cfg.Logf(1, "%s: %d game(s) read, %d written.\n", name, stats.Games, stats.Written)
	return stats, err
}

func (pc *ProcessingContext) workers() int {
	if pc.cfg.Workers > 0 {
		return pc.cfg.Workers
	}
	return runtime.NumCPU()
}

// selectGames drops games that failed to convert and, when suppression is
// on, games repeating an earlier one. Results must be in input order so
// the first of a set of duplicates is the one kept.
func (pc *ProcessingContext) selectGames(results []worker.ProcessResult, stats *Stats) []worker.ProcessResult {
	kept := make([]worker.ProcessResult, 0, len(results))
	for _, res := range results {
		if res.Error != nil {
			stats.Errors++
			pc.cfg.Logf(1, "%v\n", res.Error)
			continue
		}
		if res.FromCache {
			stats.Cached++
		}
		if pc.detector != nil && pc.detector.CheckAndAdd(res.Signature) {
			stats.Duplicates++
			if w := pc.cfg.Duplicate.DuplicateFile; w != nil {
				if err := writeGamePGN(w, res.Game); err != nil {
					pc.cfg.Logf(1, "%s: writing duplicate game %d: %v\n", pc.cfg.CurrentInputFile, res.Index+1, err)
				}
			}
			if pc.cfg.Duplicate.Suppress {
				pc.cfg.Logf(2, "%s: game %d is a duplicate.\n", pc.cfg.CurrentInputFile, res.Index+1)
				continue
			}
		}
		kept = append(kept, res)
	}
	return kept
}

// writePages writes one page per kept game, numbered consecutively, plus
// the diagrams and frameset pages the layout asks for.
func (pc *ProcessingContext) writePages(kept []worker.ProcessResult, pageBase string, stats *Stats) error {
	if len(kept) == 0 {
		return nil
	}
	out := *pc.cfg.Output
	out.OutputFilename = pageBase
	cfg := *pc.cfg
	cfg.Output = &out

	games := make([]*chess.Game, len(kept))
	for i, res := range kept {
		games[i] = res.Game
	}
	hw, err := output.NewHTMLWriter(&cfg, games)
	if err != nil {
		return err
	}

	for i, res := range kept {
		res.Rendered.Index = i
		if err := hw.WriteGame(res.Rendered); err != nil {
			return err
		}
		stats.Written++
		if err := pc.writeDiagram(hw.PagePath(i), res.Rendered); err != nil {
			return err
		}
	}
	return hw.Close()
}

// writeDiagram saves the final position next to its page.
func (pc *ProcessingContext) writeDiagram(page string, r *output.Rendered) error {
	format := pc.cfg.Output.Diagram
	if format == config.NoDiagram {
		return nil
	}
	final, err := engine.NewPosition(r.FinalFEN)
	if err != nil {
		return err
	}
	opts := diagram.DefaultOptions()
	opts.Size = pc.cfg.Output.DiagramSize
	return diagram.Save(diagram.Filename(page, format), final, format, opts)
}

func (pc *ProcessingContext) writeJSON(kept []worker.ProcessResult, stats *Stats) error {
	for _, res := range kept {
		if err := pc.json.WriteGame(res.Rendered); err != nil {
			return err
		}
		stats.Written++
	}
	return nil
}

var tagEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// writeGamePGN writes a game back out as PGN: the seven tag roster
// first, then the remaining tags in input order and the movetext as read.
func writeGamePGN(w io.Writer, g *chess.Game) error {
	var sb strings.Builder
	for _, name := range chess.SevenTagRoster {
		value, ok := g.Tags[name]
		if !ok {
			value = "?"
			if name == "Result" {
				value = chess.Unfinished
			}
		}
		fmt.Fprintf(&sb, "[%s \"%s\"]\n", name, tagEscaper.Replace(value))
	}
	for _, name := range g.TagOrder {
		if !chess.IsSevenTagRosterTag(name) {
			fmt.Fprintf(&sb, "[%s \"%s\"]\n", name, tagEscaper.Replace(g.Tags[name]))
		}
	}
	sb.WriteString("\n")
	sb.WriteString(g.Movetext)
	sb.WriteString("\n\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

// pageBase returns the page filename for an input. With several inputs
// each gets its own set of pages, named after the input file and placed
// in the output file's directory.
func pageBase(outputName, input string, multiple bool) string {
	if !multiple {
		return outputName
	}
	ext := filepath.Ext(outputName)
	if ext == "" {
		ext = ".html"
	}
	stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(filepath.Dir(outputName), stem+ext)
}
