package match

import (
	"context"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/hashing"
)

// Runner plays a game between two players.
type Runner struct {
	cfg   *config.Config
	white Player
	black Player
}

// NewRunner creates a runner. cfg supplies the stop conditions and the log.
func NewRunner(cfg *config.Config, white, black Player) *Runner {
	return &Runner{cfg: cfg, white: white, black: black}
}

// Play moves g forward until the game ends and returns its record. g is left
// at the final position. On error the record holds the moves made so far.
func (r *Runner) Play(ctx context.Context, g *engine.GameState) (*Record, error) {
	rec := &Record{
		StartFEN: g.FEN(),
		White:    r.white.Name(),
		Black:    r.black.Name(),
		Result:   Unfinished,
	}
	reps := hashing.NewRepetitionTracker()
	reps.Record(g)
	plies := 0

	for {
		legal := g.ValidMoves()
		if t := r.stopReason(g, legal, reps, plies); t != Unterminated {
			r.finish(rec, g, t)
			return rec, nil
		}
		if err := ctx.Err(); err != nil {
			r.finish(rec, g, Unterminated)
			return rec, errors.Wrap(err, "game interrupted")
		}

		player := r.white
		if g.ToMove() == chess.Black {
			player = r.black
		}
		m, err := player.ChooseMove(ctx, g, legal)
		if errors.Is(err, ErrScriptExhausted) {
			r.finish(rec, g, ByScriptEnd)
			return rec, nil
		}
		if err != nil {
			r.finish(rec, g, Unterminated)
			return rec, errors.Wrapf(err, "%s player at ply %d", player.Name(), g.Ply()+1)
		}

		side := g.ToMove()
		if err := g.MakeMove(m); err != nil {
			r.finish(rec, g, Unterminated)
			return rec, err
		}
		plies++
		reps.Record(g)
		rec.Moves = append(rec.Moves, PlyRecord{
			Ply:    g.Ply(),
			Colour: side,
			Move:   m,
			FEN:    g.FEN(),
		})
		r.cfg.Logf(2, "%d. %s %s", g.Ply(), side, m)
	}
}

// stopReason checks the stop conditions in order of precedence.
func (r *Runner) stopReason(g *engine.GameState, legal []chess.Move, reps *hashing.RepetitionTracker, plies int) Termination {
	if len(legal) == 0 {
		if g.Status() == engine.Checkmate {
			return ByCheckmate
		}
		return ByStalemate
	}
	mc := r.cfg.Match
	if mc.StopOnInsufficientMaterial {
		board := g.Board()
		if engine.HasInsufficientMaterial(&board) {
			return ByInsufficientMaterial
		}
	}
	if mc.RepetitionLimit > 0 && reps.Count(g) >= mc.RepetitionLimit {
		return ByRepetition
	}
	if mc.FiftyMoveLimit > 0 && g.HalfmoveClock() >= mc.FiftyMoveLimit {
		return ByFiftyMoves
	}
	if mc.MaxPlies > 0 && plies >= mc.MaxPlies {
		return ByMaxPlies
	}
	return Unterminated
}

func (r *Runner) finish(rec *Record, g *engine.GameState, t Termination) {
	rec.Termination = t
	rec.Result = resultFor(t, g.ToMove())
	rec.FinalFEN = g.FEN()
	rec.Board = g.Board()
	if t != Unterminated {
		r.cfg.Logf(1, "%s after %d plies: %s", t, len(rec.Moves), rec.Result)
	}
}
