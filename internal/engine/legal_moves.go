package engine

import (
	"github.com/lgbarn/chess-engine-go/internal/chess"
	"golang.org/x/exp/slices"
)

// ValidMoves returns every legal move for the side to move in generation
// order and refreshes the checkmate and stalemate flags.
//
// Each pseudo-legal candidate is played, the opponent's attacks are checked
// against the mover's king, and the candidate is taken back. This costs a
// full opponent generation per candidate, which is fine at shallow depth.
func (g *GameState) ValidMoves() []chess.Move {
	side := g.toMove
	enemy := side.Opposite()
	candidates := g.pseudoLegalMoves(side, genMoves)

	legal := candidates[:0]
	for _, m := range candidates {
		g.MakeMoveUnchecked(m)
		exposed := g.attackedBy(g.KingSquare(side), enemy)
		g.UndoMove()
		if !exposed {
			legal = append(legal, m)
		}
	}

	switch {
	case len(legal) > 0:
		g.status = Ongoing
	case g.IsInCheck():
		g.status = Checkmate
	default:
		g.status = Stalemate
	}
	g.legal = legal
	return slices.Clone(legal)
}

// legalMoves returns the cached result of the last legality pass, running
// one if the position changed since.
func (g *GameState) legalMoves() []chess.Move {
	if g.status == StatusUnknown {
		g.ValidMoves()
	}
	return g.legal
}

// PseudoLegalMoves returns the moves of the side to move before the
// king-safety filter. Exposed for tests and diagnostics.
func (g *GameState) PseudoLegalMoves() []chess.Move {
	return g.pseudoLegalMoves(g.toMove, genMoves)
}

// IsInCheck reports whether the side to move's king is attacked.
// It is computed from the board and is never stale.
func (g *GameState) IsInCheck() bool {
	return g.attackedBy(g.KingSquare(g.toMove), g.toMove.Opposite())
}

// SquareUnderAttack reports whether the side not to move attacks sq.
// Neither the board nor the side to move is modified.
func (g *GameState) SquareUnderAttack(sq chess.Square) bool {
	return g.attackedBy(sq, g.toMove.Opposite())
}

// attackedBy reports whether any attack of side lands on sq.
func (g *GameState) attackedBy(sq chess.Square, side chess.Colour) bool {
	for _, m := range g.pseudoLegalMoves(side, genAttacks) {
		if m.To == sq {
			return true
		}
	}
	return false
}
