// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/hashicorp/go-multierror"

	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/match"
)

var (
	// Position
	fenString = flag.String("fen", "", "Start position in FEN (default: standard start)")
	moveList  = flag.String("moves", "", "Coordinate moves to play before analysing, e.g. \"e2e4 e7e5\"")

	// Move choice
	mode    = flag.String("mode", "minimax", "Move picker: minimax or random")
	depth   = flag.Int("depth", 2, "Minimax search depth in plies")
	workers = flag.Int("workers", 1, "Goroutines splitting the root moves")
	seed    = flag.Int64("seed", 1, "Seed for the random move picker")

	// Self-play
	selfPlay        = flag.Bool("selfplay", false, "Play the game out from the position")
	blackMode       = flag.String("black", "", "Black's move picker in self-play (default: -mode)")
	maxPlies        = flag.Int("maxplies", 200, "Stop self-play after N plies (0 = no limit)")
	repetitionLimit = flag.Int("repetition", 3, "Draw when a position occurs N times (0 = off)")
	fiftyMoveLimit  = flag.Int("fifty", 100, "Draw after N plies without a pawn move or capture (0 = off)")
	keepBareKings   = flag.Bool("nomaterialdraw", false, "Keep playing when neither side can mate")

	// Output
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput = flag.Bool("json", false, "Output in JSON format")
	showBoard  = flag.Bool("board", false, "Draw the board")
	dotFile    = flag.String("dot", "", "Write the root search tree as Graphviz DOT to this file")
	perftDepth = flag.Int("perft", 0, "Count leaf nodes to depth N and exit")

	// Logging
	verbosity = flag.Int("v", 1, "Verbosity: 0 quiet, 1 summary, 2 every move")
	logFile   = flag.String("log", "", "Log file (default: stderr)")

	// Help
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// options are the settings that select what the program does rather than
// how it does it.
type options struct {
	fen      string
	moves    []string
	selfPlay bool
	perft    int
}

// currentOptions reads the action flags.
func currentOptions() options {
	return options{
		fen:      *fenString,
		moves:    match.SplitMoves(*moveList),
		selfPlay: *selfPlay,
		perft:    *perftDepth,
	}
}

// applyFlags applies all command-line flags to the configuration and reports
// every unparseable value.
func applyFlags(cfg *config.Config) error {
	var result *multierror.Error
	if err := applySearchFlags(cfg); err != nil {
		result = multierror.Append(result, err)
	}
	if err := applyMatchFlags(cfg); err != nil {
		result = multierror.Append(result, err)
	}
	applyOutputFlags(cfg)
	cfg.Verbosity = *verbosity
	return result.ErrorOrNil()
}

// applySearchFlags configures the move picker.
func applySearchFlags(cfg *config.Config) error {
	m, err := config.ParseMode(*mode)
	if err != nil {
		return err
	}
	cfg.Search.Mode = m
	cfg.Search.Depth = *depth
	cfg.Search.Workers = *workers
	cfg.Search.Seed = *seed
	return nil
}

// applyMatchFlags configures self-play stop conditions.
func applyMatchFlags(cfg *config.Config) error {
	cfg.Match.MaxPlies = *maxPlies
	cfg.Match.RepetitionLimit = *repetitionLimit
	cfg.Match.FiftyMoveLimit = *fiftyMoveLimit
	cfg.Match.StopOnInsufficientMaterial = !*keepBareKings

	if *blackMode == "" {
		cfg.Match.BlackMode = cfg.Search.Mode
		return nil
	}
	m, err := config.ParseMode(*blackMode)
	if err != nil {
		return err
	}
	cfg.Match.BlackMode = m
	return nil
}

// applyOutputFlags configures output formatting.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.ShowBoard = *showBoard
	cfg.Output.DOTFile = *dotFile
}
