// Package match plays games between move pickers and records them.
package match

import (
	"context"
	"math/rand"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/search"
)

// ErrScriptExhausted is returned by a ScriptedPlayer with no moves left.
var ErrScriptExhausted = errors.Wrap(errors.ErrEmptyHistory, "scripted moves exhausted")

// Player picks a move for the side to move. legal is the current result of
// g.ValidMoves() and is never empty. A Player must leave g as it found it.
type Player interface {
	Name() string
	ChooseMove(ctx context.Context, g *engine.GameState, legal []chess.Move) (chess.Move, error)
}

// MinimaxPlayer picks moves with a search.Searcher.
type MinimaxPlayer struct {
	searcher *search.Searcher
}

// NewMinimaxPlayer creates a player around s.
func NewMinimaxPlayer(s *search.Searcher) *MinimaxPlayer {
	return &MinimaxPlayer{searcher: s}
}

// Name returns the player label used in records.
func (p *MinimaxPlayer) Name() string {
	return "minimax"
}

// ChooseMove searches the position.
func (p *MinimaxPlayer) ChooseMove(ctx context.Context, g *engine.GameState, legal []chess.Move) (chess.Move, error) {
	res, err := p.searcher.Search(ctx, g, legal)
	if err != nil {
		return chess.Move{}, err
	}
	return res.Move, nil
}

// RandomPlayer picks uniformly among legal moves.
type RandomPlayer struct {
	rng *rand.Rand
}

// NewRandomPlayer creates a random player. The same seed replays the same moves.
func NewRandomPlayer(seed int64) *RandomPlayer {
	return &RandomPlayer{rng: rand.New(rand.NewSource(seed))}
}

// Name returns the player label used in records.
func (p *RandomPlayer) Name() string {
	return "random"
}

// ChooseMove picks a random legal move.
func (p *RandomPlayer) ChooseMove(_ context.Context, _ *engine.GameState, legal []chess.Move) (chess.Move, error) {
	m, _ := search.RandomMove(legal, p.rng)
	return m, nil
}

// ScriptedPlayer replays fixed coordinate moves, then reports
// ErrScriptExhausted.
type ScriptedPlayer struct {
	moves []string
	next  int
}

// NewScriptedPlayer creates a player that plays moves in order.
func NewScriptedPlayer(moves ...string) *ScriptedPlayer {
	return &ScriptedPlayer{moves: moves}
}

// Name returns the player label used in records.
func (p *ScriptedPlayer) Name() string {
	return "scripted"
}

// ChooseMove resolves the next scripted move against the position.
func (p *ScriptedPlayer) ChooseMove(_ context.Context, g *engine.GameState, _ []chess.Move) (chess.Move, error) {
	if p.next >= len(p.moves) {
		return chess.Move{}, ErrScriptExhausted
	}
	text := p.moves[p.next]
	m, err := g.ParseMove(text)
	if err != nil {
		return chess.Move{}, err
	}
	p.next++
	return m, nil
}

// NewPlayer builds the player for a configured mode. Random players are
// seeded from cfg.Seed plus offset so the two sides differ.
func NewPlayer(mode config.Mode, cfg *config.SearchConfig, offset int64) Player {
	if mode == config.Random {
		return NewRandomPlayer(cfg.Seed + offset)
	}
	return NewMinimaxPlayer(search.New(search.WithDepth(cfg.Depth), search.WithWorkers(cfg.Workers)))
}

// SplitMoves splits a space- or comma-separated list of coordinate moves.
func SplitMoves(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n'
	})
}
