// chess-engine analyses chess positions and plays games with a minimax engine.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/hashicorp/go-multierror"

	"github.com/lgbarn/chess-engine-go/internal/config"
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
		fmt.Printf("chess-engine version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	closers := setupLogFile(cfg)
	closers = append(closers, setupOutputFile(cfg)...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, cfg, currentOptions())
	stop()

	if err := multierror.Append(err, closeAll(closers)).ErrorOrNil(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) []io.Closer {
	if *logFile == "" {
		return nil
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
	return []io.Closer{file}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) []io.Closer {
	if *outputFile == "" {
		return nil
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
	return []io.Closer{file}
}

// closeAll closes every file and reports all failures.
func closeAll(closers []io.Closer) error {
	var result *multierror.Error
	for _, c := range closers {
		if err := c.Close(); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

func usage() {
	fmt.Fprintf(os.Stderr, `chess-engine - minimax chess engine

Usage: chess-engine [options]

Without -selfplay, reports the legal moves of the position and the move the
engine would play. With -selfplay, plays the game out and prints its record.

Examples:
  chess-engine -moves "e2e4 e7e5" -depth 3
  chess-engine -fen "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1" -board
  chess-engine -selfplay -mode random -black minimax -seed 7 -json
  chess-engine -perft 4

Options:
`)
	flag.PrintDefaults()
}
