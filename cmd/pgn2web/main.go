// pgn2web converts PGN chess games into interactive HTML pages.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/lgbarn/pgn2web-go/internal/config"
	"github.com/lgbarn/pgn2web-go/internal/storage"
	"github.com/lgbarn/pgn2web-go/internal/worker"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("pgn2web-go version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Set up logging and duplicate files
	setupLogFile(cfg)
	setupDuplicateFile(cfg)

	cache := openCache(cfg)
	var wc worker.Cache
	if cache != nil {
		wc = cache
	}
	pc := newProcessingContext(cfg, wc)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	stats, err := processAllInputs(ctx, pc, flag.Args())
	stop()
	if cerr := pc.Close(); err == nil {
		err = cerr
	}
	if cache != nil {
		cache.Close() //nolint:errcheck,gosec // G104: cleanup on exit
	}

	if cfg.Verbosity > 0 {
		reportStatistics(pc, stats)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupDuplicateFile configures the duplicate output file.
func setupDuplicateFile(cfg *config.Config) {
	if *duplicateFile == "" {
		return
	}
	file, err := os.Create(*duplicateFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating duplicate file %s: %v\n", *duplicateFile, err)
		os.Exit(1)
	}
	cfg.Duplicate.DuplicateFile = file
}

// openCache opens the conversion cache when one was asked for.
func openCache(cfg *config.Config) *storage.Cache {
	if !cfg.Cache.Enabled {
		return nil
	}
	cache, err := storage.Open(cfg.Cache.Dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening cache %s: %v\n", cfg.Cache.Dir, err)
		os.Exit(1)
	}
	return cache
}

// processAllInputs processes all input files or stdin.
func processAllInputs(ctx context.Context, pc *ProcessingContext, args []string) (Stats, error) {
	var total Stats
	base := pc.cfg.Output.OutputFilename

	if len(args) == 0 {
		stats, err := pc.processInput(ctx, os.Stdin, "stdin", base)
		total.Add(stats)
		return total, err
	}

	for _, filename := range args {
		file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening file %s: %v\n", filename, err)
			continue
		}
		stats, err := pc.processInput(ctx, file, filename, pageBase(base, filename, len(args) > 1))
		file.Close() //nolint:errcheck,gosec // G104: read-only file
		total.Add(stats)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// reportStatistics prints the final statistics to the log.
func reportStatistics(pc *ProcessingContext, stats Stats) {
	if pc.detector != nil {
		pc.cfg.Logf(1, "%d game(s) output, %d duplicate(s) out of %d.\n", stats.Written, stats.Duplicates, stats.Games)
	} else {
		pc.cfg.Logf(1, "%d game(s) output out of %d.\n", stats.Written, stats.Games)
	}
	if stats.Errors > 0 {
		pc.cfg.Logf(1, "%d game(s) could not be converted.\n", stats.Errors)
	}
	if pc.cache != nil {
		pc.cfg.Logf(1, "%d game(s) taken from the cache.\n", stats.Cached)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: pgn2web [options] [input-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Converts PGN chess games into interactive HTML pages.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nLayouts (-layout):\n")
	fmt.Fprintf(os.Stderr, "  individual  One page per game\n")
	fmt.Fprintf(os.Stderr, "  linked      One page per game, with a list linking to the others (default)\n")
	fmt.Fprintf(os.Stderr, "  frameset    A frameset holding a game list beside the game pages\n")
	fmt.Fprintf(os.Stderr, "\nNotations (-notation):\n")
	fmt.Fprintf(os.Stderr, "  san         Standard Algebraic Notation (default)\n")
	fmt.Fprintf(os.Stderr, "  lan         Long algebraic (Ng1-f3)\n")
	fmt.Fprintf(os.Stderr, "  coordinate  Coordinate notation (g1f3)\n")
}
