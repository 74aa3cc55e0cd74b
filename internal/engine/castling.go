package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// Files of the pieces involved in castling.
const (
	kingCol          = 4
	kingsideRookCol  = 7
	queensideRookCol = 0
)

// castleMoves appends the castles available to side's king on from.
// The king may not castle out of, through, or into check. On the queen
// side the b-file square must be empty but may be attacked.
func (g *GameState) castleMoves(from chess.Square, side chess.Colour, moves []chess.Move) []chess.Move {
	row := chess.HomeRow(side)
	if from != chess.Sq(row, kingCol) {
		return moves
	}
	rights := g.CastlingRights()
	if !rights.Kingside(side) && !rights.Queenside(side) {
		return moves
	}

	enemy := side.Opposite()
	if g.attackedBy(from, enemy) {
		return moves
	}
	king := g.board.Get(from)

	if rights.Kingside(side) &&
		g.emptyBetween(row, kingCol+1, kingsideRookCol-1) &&
		!g.attackedBy(chess.Sq(row, 5), enemy) &&
		!g.attackedBy(chess.Sq(row, 6), enemy) {
		moves = append(moves, chess.Move{From: from, To: chess.Sq(row, 6), Moved: king, Class: chess.KingsideCastle})
	}

	if rights.Queenside(side) &&
		g.emptyBetween(row, queensideRookCol+1, kingCol-1) &&
		!g.attackedBy(chess.Sq(row, 3), enemy) &&
		!g.attackedBy(chess.Sq(row, 2), enemy) {
		moves = append(moves, chess.Move{From: from, To: chess.Sq(row, 2), Moved: king, Class: chess.QueensideCastle})
	}
	return moves
}

// emptyBetween reports whether every square on row from column lo to hi
// (inclusive) is empty.
func (g *GameState) emptyBetween(row, lo, hi int) bool {
	for col := lo; col <= hi; col++ {
		if g.board.Squares[row][col] != chess.Empty {
			return false
		}
	}
	return true
}

// rookSquares returns where the castling rook starts and ends.
func rookSquares(m chess.Move) (from, to chess.Square) {
	row := m.From.Row
	if m.Class == chess.KingsideCastle {
		return chess.Sq(row, kingsideRookCol), chess.Sq(row, 5)
	}
	return chess.Sq(row, queensideRookCol), chess.Sq(row, 3)
}

// updateCastlingRights applies the rights policy for one move: a king move
// clears both rights of its colour, and any move from or onto a rook home
// square clears the right tied to that corner.
func updateCastlingRights(rights chess.CastlingRights, m chess.Move) chess.CastlingRights {
	if m.Moved.Kind() == chess.King {
		rights = rights.WithoutColour(m.Moved.Colour())
	}
	return rights.WithoutCorner(m.From).WithoutCorner(m.To)
}
