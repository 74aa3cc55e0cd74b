package engine

import (
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
	"golang.org/x/exp/slices"
)

// MakeMove applies a move after checking it against the legal-move set.
// Moves are matched by squares and class, so a caller may pass a move built
// from two clicked squares; the stored move is the generator's version.
// It returns a *errors.MoveError wrapping ErrInvalidMove for anything else.
func (g *GameState) MakeMove(m chess.Move) error {
	legal := g.legalMoves()
	i := slices.IndexFunc(legal, m.Equal)
	if i < 0 {
		return &errors.MoveError{
			Err:      errors.ErrInvalidMove,
			PlyNum:   g.Ply() + 1,
			MoveText: m.String(),
			FEN:      g.FEN(),
		}
	}
	g.MakeMoveUnchecked(legal[i])
	return nil
}

// MakeMoveUnchecked applies a move without validating it. The move must come
// from ValidMoves for the current position; anything else corrupts the state.
func (g *GameState) MakeMoveUnchecked(m chess.Move) {
	side := g.toMove

	g.board.Set(m.From, chess.Empty)
	if m.IsEnPassant() {
		g.board.Set(m.CaptureSquare(), chess.Empty)
	}
	g.board.Set(m.To, m.Placed())

	if m.Moved.Kind() == chess.King {
		g.kings[side] = m.To
	}
	if m.IsCastle() {
		rookFrom, rookTo := rookSquares(m)
		g.board.Set(rookTo, g.board.Get(rookFrom))
		g.board.Set(rookFrom, chess.Empty)
	}

	ep := chess.NoSquare
	if m.Moved.Kind() == chess.Pawn && abs(m.To.Row-m.From.Row) == 2 {
		ep = chess.Sq((m.From.Row+m.To.Row)/2, m.From.Col)
	}

	g.moveLog = append(g.moveLog, m)
	g.rightsLog = append(g.rightsLog, updateCastlingRights(g.CastlingRights(), m))
	g.epLog = append(g.epLog, ep)
	g.toMove = side.Opposite()
	g.invalidate()
}

// UndoMove takes back the most recent move. With an empty history it does
// nothing and returns false.
func (g *GameState) UndoMove() bool {
	n := len(g.moveLog)
	if n == 0 {
		return false
	}
	if len(g.rightsLog) != n+1 || len(g.epLog) != n+1 {
		errors.Invariant("history out of step: %d moves, %d rights, %d en-passant entries",
			n, len(g.rightsLog), len(g.epLog))
	}

	m := g.moveLog[n-1]
	g.moveLog = g.moveLog[:n-1]
	g.rightsLog = g.rightsLog[:n]
	g.epLog = g.epLog[:n]

	side := m.Moved.Colour()
	g.board.Set(m.To, chess.Empty)
	g.board.Set(m.CaptureSquare(), m.Captured)
	g.board.Set(m.From, m.Moved)

	if m.Moved.Kind() == chess.King {
		g.kings[side] = m.From
	}
	if m.IsCastle() {
		rookFrom, rookTo := rookSquares(m)
		g.board.Set(rookFrom, g.board.Get(rookTo))
		g.board.Set(rookTo, chess.Empty)
	}

	g.toMove = side
	g.invalidate()
	return true
}

// ParseMove resolves coordinate text such as "e2e4" or "e7e8q" against the
// legal moves of the current position. A promotion may omit the suffix; a
// suffix on any other move is rejected.
func (g *GameState) ParseMove(text string) (chess.Move, error) {
	text = strings.ToLower(strings.TrimSpace(text))
	invalid := &errors.MoveError{Err: errors.ErrInvalidMove, PlyNum: g.Ply() + 1, MoveText: text}

	if len(text) != 4 && len(text) != 5 {
		return chess.Move{}, invalid
	}
	if len(text) == 5 && text[4] != 'q' {
		// Only queen promotion exists.
		return chess.Move{}, invalid
	}
	from, err := chess.ParseSquare(text[0:2])
	if err != nil {
		return chess.Move{}, invalid
	}
	to, err := chess.ParseSquare(text[2:4])
	if err != nil {
		return chess.Move{}, invalid
	}

	promote := len(text) == 5
	legal := g.legalMoves()
	i := slices.IndexFunc(legal, func(m chess.Move) bool {
		return m.From == from && m.To == to && (!promote || m.IsPromotion())
	})
	if i < 0 {
		invalid.FEN = g.FEN()
		return chess.Move{}, invalid
	}
	return legal[i], nil
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
