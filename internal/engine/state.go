// Package engine maintains the authoritative game state: legal move
// generation, make/unmake, check detection and terminal-state classification.
//
// A GameState is not safe for concurrent use. Legality filtering and search
// mutate it in place and rely on every make being paired with an undo, so
// intermediate states are visible to anyone sharing the pointer. Give each
// goroutine its own Clone.
package engine

import (
	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
	"golang.org/x/exp/slices"
)

// Status is the terminal classification of a position.
type Status int

const (
	// StatusUnknown means no legality pass has run since the last mutation.
	StatusUnknown Status = iota
	Ongoing
	Checkmate
	Stalemate
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case Ongoing:
		return "ongoing"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "unknown"
	}
}

// GameState owns the board, side to move, history stacks and the
// terminal flags of one game.
type GameState struct {
	board  chess.Board
	toMove chess.Colour

	// Cached king squares, indexed by colour.
	kings [2]chess.Square

	// moveLog is the undo stack. rightsLog and epLog hold one entry per
	// ply plus the entry for the starting position; the last entry is current.
	moveLog   []chess.Move
	rightsLog []chess.CastlingRights
	epLog     []chess.Square

	// Counters carried over from a FEN start position.
	startHalfmove int
	startFullmove int

	// Result of the last legality pass; reset by every make and undo.
	status Status
	legal  []chess.Move
}

// NewGame creates a game in the standard starting position with full
// castling rights and an empty history.
func NewGame() *GameState {
	g := &GameState{
		board:         *chess.NewInitialBoard(),
		toMove:        chess.White,
		rightsLog:     []chess.CastlingRights{chess.AllCastlingRights},
		epLog:         []chess.Square{chess.NoSquare},
		startFullmove: 1,
	}
	g.kings[chess.White] = chess.MustSquare("e1")
	g.kings[chess.Black] = chess.MustSquare("e8")
	return g
}

// Clone returns an independent deep copy, history included.
func (g *GameState) Clone() *GameState {
	c := *g
	c.moveLog = slices.Clone(g.moveLog)
	c.rightsLog = slices.Clone(g.rightsLog)
	c.epLog = slices.Clone(g.epLog)
	c.legal = slices.Clone(g.legal)
	return &c
}

// Board returns a copy of the current placement.
func (g *GameState) Board() chess.Board {
	return g.board
}

// PieceAt returns the piece on the square, or chess.Empty.
func (g *GameState) PieceAt(sq chess.Square) chess.Piece {
	return g.board.Get(sq)
}

// ToMove returns the side to move.
func (g *GameState) ToMove() chess.Colour {
	return g.toMove
}

// WhiteToMove reports whether white is to move.
func (g *GameState) WhiteToMove() bool {
	return g.toMove == chess.White
}

// CastlingRights returns the rights in force for the current position.
func (g *GameState) CastlingRights() chess.CastlingRights {
	return g.rightsLog[len(g.rightsLog)-1]
}

// EnPassant returns the current en-passant target, or chess.NoSquare.
func (g *GameState) EnPassant() chess.Square {
	return g.epLog[len(g.epLog)-1]
}

// MoveLog returns a copy of the moves applied so far, oldest first.
func (g *GameState) MoveLog() []chess.Move {
	return slices.Clone(g.moveLog)
}

// Ply returns the number of moves applied since the game started.
func (g *GameState) Ply() int {
	return len(g.moveLog)
}

// KingSquare returns the cached square of the colour's king.
// It panics with ErrInconsistentState if the cache disagrees with the board.
func (g *GameState) KingSquare(c chess.Colour) chess.Square {
	sq := g.kings[c]
	if !sq.Valid() || g.board.Get(sq) != chess.MakePiece(c, chess.King) {
		errors.Invariant("%s king not on cached square %s", c, sq)
	}
	return sq
}

// Status returns the classification computed by the last legality pass,
// or StatusUnknown if the position changed since.
func (g *GameState) Status() Status {
	return g.status
}

// IsCheckmate reports the checkmate flag of the last legality pass. It
// returns ErrStaleStatus if ValidMoves has not run on the current position.
func (g *GameState) IsCheckmate() (bool, error) {
	if g.status == StatusUnknown {
		return false, errors.ErrStaleStatus
	}
	return g.status == Checkmate, nil
}

// IsStalemate reports the stalemate flag of the last legality pass. It
// returns ErrStaleStatus if ValidMoves has not run on the current position.
func (g *GameState) IsStalemate() (bool, error) {
	if g.status == StatusUnknown {
		return false, errors.ErrStaleStatus
	}
	return g.status == Stalemate, nil
}

// invalidate marks the terminal flags and cached legal moves as stale.
func (g *GameState) invalidate() {
	g.status = StatusUnknown
	g.legal = nil
}
