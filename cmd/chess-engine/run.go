package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"

	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/match"
	"github.com/lgbarn/chess-engine-go/internal/output"
	"github.com/lgbarn/chess-engine-go/internal/search"
)

// run carries out the action selected by opts, writing to cfg.OutputFile.
func run(ctx context.Context, cfg *config.Config, opts options) error {
	g, err := loadPosition(opts.fen, opts.moves)
	if err != nil {
		return err
	}
	cfg.Logf(2, "position: %s", g.FEN())

	if opts.perft > 0 {
		return runPerft(cfg, g, opts.perft)
	}

	if cfg.Output.DOTFile != "" {
		if err := writeTree(cfg, g); err != nil {
			return err
		}
	}

	w := output.NewGameWriter(cfg.OutputFile, cfg)
	if opts.selfPlay {
		err = playGame(ctx, cfg, g, w)
	} else {
		err = analysePosition(ctx, cfg, g, w)
	}
	if closeErr := w.Close(); err == nil {
		err = closeErr
	}
	return err
}

// loadPosition builds the start position and plays moves on it.
func loadPosition(fen string, moves []string) (*engine.GameState, error) {
	g := engine.NewGame()
	if fen != "" {
		var err error
		if g, err = engine.NewGameFromFEN(fen); err != nil {
			return nil, err
		}
	}
	for _, text := range moves {
		m, err := g.ParseMove(text)
		if err != nil {
			return nil, err
		}
		if err := g.MakeMove(m); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func runPerft(cfg *config.Config, g *engine.GameState, depth int) error {
	for d := 1; d <= depth; d++ {
		if _, err := fmt.Fprintf(cfg.OutputFile, "perft(%d) = %d\n", d, engine.Perft(g, d)); err != nil {
			return err
		}
	}
	return nil
}

// writeTree dumps the search tree of the position to cfg.Output.DOTFile.
func writeTree(cfg *config.Config, g *engine.GameState) error {
	s := search.New(search.WithDepth(cfg.Search.Depth))
	dot, err := s.TreeDOT(g, g.ValidMoves())
	if err != nil {
		return err
	}
	if err := os.WriteFile(cfg.Output.DOTFile, []byte(dot), 0644); err != nil { //nolint:gosec // G306: DOT output is not sensitive
		return errors.Wrapf(err, "writing %s", cfg.Output.DOTFile)
	}
	cfg.Logf(1, "search tree written to %s", cfg.Output.DOTFile)
	return nil
}

// analysePosition reports the legal moves and the move the configured picker chooses.
func analysePosition(ctx context.Context, cfg *config.Config, g *engine.GameState, w output.GameWriter) error {
	legal := g.ValidMoves()
	a := &output.Analysis{
		FEN:     g.FEN(),
		ToMove:  g.ToMove(),
		Status:  g.Status(),
		InCheck: g.IsInCheck(),
		Legal:   legal,
		Board:   g.Board(),
		Mode:    cfg.Search.Mode.String(),
	}

	switch cfg.Search.Mode {
	case config.Random:
		a.Best, a.Found = search.RandomMove(legal, rand.New(rand.NewSource(cfg.Search.Seed)))
	default:
		s := search.New(search.WithDepth(cfg.Search.Depth), search.WithWorkers(cfg.Search.Workers))
		res, err := s.Search(ctx, g, legal)
		if err != nil {
			return err
		}
		a.Depth = s.Depth()
		a.Best, a.Found = res.Move, res.Found
		a.Score, a.Scored = res.Score, true
		a.Nodes = res.Nodes
		cfg.Logf(1, "searched %d nodes at depth %d", res.Nodes, s.Depth())
	}
	return w.WriteAnalysis(a)
}

// playGame plays the position out and writes the record, including a
// partial one if the game was interrupted.
func playGame(ctx context.Context, cfg *config.Config, g *engine.GameState, w output.GameWriter) error {
	white := match.NewPlayer(cfg.Search.Mode, cfg.Search, 0)
	black := match.NewPlayer(cfg.Match.BlackMode, cfg.Search, 1)

	rec, err := match.NewRunner(cfg, white, black).Play(ctx, g)
	if rec != nil {
		if werr := w.WriteGame(rec); err == nil {
			err = werr
		}
	}
	return err
}
