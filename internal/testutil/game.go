package testutil

import (
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
)

// MustGame builds a game from a FEN string, or the starting position when
// fen is empty. It calls t.Fatal if the FEN is rejected.
func MustGame(t testing.TB, fen string) *engine.GameState {
	t.Helper()
	if fen == "" {
		return engine.NewGame()
	}
	g, err := engine.NewGameFromFEN(fen)
	if err != nil {
		t.Fatalf("NewGameFromFEN(%q): %v", fen, err)
	}
	return g
}

// MustPlay applies coordinate moves such as "e2e4" in order through the
// validated MakeMove path. It calls t.Fatal on the first rejected move.
func MustPlay(t testing.TB, g *engine.GameState, moves ...string) {
	t.Helper()
	for _, text := range moves {
		m, err := g.ParseMove(text)
		if err != nil {
			t.Fatalf("ParseMove(%q) in %s: %v", text, g.FEN(), err)
		}
		if err := g.MakeMove(m); err != nil {
			t.Fatalf("MakeMove(%q): %v", text, err)
		}
	}
}

// MoveStrings renders moves in coordinate notation.
func MoveStrings(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}
