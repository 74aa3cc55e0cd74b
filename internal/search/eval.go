// Package search chooses moves: an exhaustive fixed-depth minimax over the
// legal-move tree with a material evaluation, an optional parallel root
// split, a seeded random mover, and a DOT dump of the search tree.
package search

import (
	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
)

const (
	// CheckmateScore is the magnitude of a mate score. Positive favours white.
	CheckmateScore = 1000
	// StalemateScore is the score of a drawn terminal position.
	StalemateScore = 0
	// DefaultDepth is the search depth in plies.
	DefaultDepth = 2
)

var pieceValues = [chess.NumKinds]int{
	chess.Pawn:   1,
	chess.Knight: 3,
	chess.Bishop: 3,
	chess.Rook:   5,
	chess.Queen:  10,
	chess.King:   0,
}

// PieceValue returns the material value of a piece kind.
func PieceValue(k chess.Kind) int {
	if k >= chess.NumKinds {
		return 0
	}
	return pieceValues[k]
}

// ScoreMaterial returns white's material minus black's.
func ScoreMaterial(b *chess.Board) int {
	score := 0
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			p := b.Squares[row][col]
			if p == chess.Empty {
				continue
			}
			if p.Colour() == chess.White {
				score += PieceValue(p.Kind())
			} else {
				score -= PieceValue(p.Kind())
			}
		}
	}
	return score
}

// terminalScore scores a position whose side to move has no legal moves.
func terminalScore(g *engine.GameState) int {
	if !g.IsInCheck() {
		return StalemateScore
	}
	if g.WhiteToMove() {
		return -CheckmateScore
	}
	return CheckmateScore
}
