package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewGameFromFEN creates a game from a FEN string. The position must hold
// exactly one king of each colour. Castling rights whose king or rook is not
// on its home square are dropped; an en-passant square is accepted only if
// the pawn that just double-stepped stands beyond it.
func NewGameFromFEN(fen string) (*GameState, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	g := &GameState{
		toMove:        chess.White,
		startFullmove: 1,
	}

	if err := parsePiecePositions(&g.board, parts[0]); err != nil {
		return nil, err
	}
	if err := g.locateKings(); err != nil {
		return nil, err
	}
	if err := parseSideToMove(g, parts); err != nil {
		return nil, err
	}

	rights, err := parseCastlingRights(parts)
	if err != nil {
		return nil, err
	}
	g.rightsLog = []chess.CastlingRights{sanitizeCastlingRights(&g.board, rights)}

	ep, err := parseEnPassant(g, parts)
	if err != nil {
		return nil, err
	}
	g.epLog = []chess.Square{ep}

	if err := parseClocks(g, parts); err != nil {
		return nil, err
	}
	return g, nil
}

// MustGameFromFEN is NewGameFromFEN for positions known to be valid.
func MustGameFromFEN(fen string) *GameState {
	g, err := NewGameFromFEN(fen)
	if err != nil {
		panic(err)
	}
	return g
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("expected 8 ranks, got %d: %w", len(ranks), errors.ErrInvalidFEN)
	}

	for row, rank := range ranks {
		col := 0
		for _, c := range rank {
			switch {
			case c >= '1' && c <= '8':
				col += int(c - '0')
			default:
				kind := chess.KindFromLetter(byte(c))
				if kind == chess.NoKind {
					return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
				}
				if col >= chess.BoardSize {
					return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
				}
				colour := chess.White
				if unicode.IsLower(c) {
					colour = chess.Black
				}
				board.Set(chess.Sq(row, col), chess.MakePiece(colour, kind))
				col++
			}
		}
		if col != chess.BoardSize {
			return fmt.Errorf("rank %d has %d squares: %w", chess.BoardSize-row, col, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// locateKings fills the king cache, requiring one king per colour.
func (g *GameState) locateKings() error {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		king := chess.MakePiece(colour, chess.King)
		if n := g.board.Count(king); n != 1 {
			return fmt.Errorf("%s has %d kings: %w", colour, n, errors.ErrInvalidFEN)
		}
		g.kings[colour], _ = g.board.Find(king)
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(g *GameState, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		g.toMove = chess.White
	case "b":
		g.toMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(parts []string) (chess.CastlingRights, error) {
	var rights chess.CastlingRights
	if len(parts) < 3 || parts[2] == "-" {
		return rights, nil
	}

	for _, c := range parts[2] {
		switch c {
		case 'K':
			rights.WhiteKingside = true
		case 'Q':
			rights.WhiteQueenside = true
		case 'k':
			rights.BlackKingside = true
		case 'q':
			rights.BlackQueenside = true
		default:
			return rights, fmt.Errorf("invalid castling field %q: %w", parts[2], errors.ErrInvalidFEN)
		}
	}
	return rights, nil
}

// sanitizeCastlingRights drops rights that the placement makes impossible.
func sanitizeCastlingRights(board *chess.Board, rights chess.CastlingRights) chess.CastlingRights {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		row := chess.HomeRow(colour)
		rook := chess.MakePiece(colour, chess.Rook)
		if board.Get(chess.Sq(row, kingCol)) != chess.MakePiece(colour, chess.King) {
			rights = rights.WithoutColour(colour)
			continue
		}
		if board.Get(chess.Sq(row, kingsideRookCol)) != rook {
			rights = rights.WithoutCorner(chess.Sq(row, kingsideRookCol))
		}
		if board.Get(chess.Sq(row, queensideRookCol)) != rook {
			rights = rights.WithoutCorner(chess.Sq(row, queensideRookCol))
		}
	}
	return rights
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(g *GameState, parts []string) (chess.Square, error) {
	if len(parts) < 4 || parts[3] == "-" {
		return chess.NoSquare, nil
	}
	sq, err := chess.ParseSquare(parts[3])
	if err != nil {
		return chess.NoSquare, fmt.Errorf("%v: %w", err, errors.ErrInvalidFEN)
	}

	// The pawn that just moved belongs to the side not to move and stands
	// one row past the target in its own direction of travel.
	mover := g.toMove.Opposite()
	wantRow := chess.PawnRow(mover) + chess.Forward(mover)
	pawnSq := sq.Offset(chess.Forward(mover), 0)
	if sq.Row != wantRow || g.board.Get(sq) != chess.Empty || g.board.Get(pawnSq) != chess.MakePiece(mover, chess.Pawn) {
		return chess.NoSquare, fmt.Errorf("impossible en-passant square %s: %w", parts[3], errors.ErrInvalidFEN)
	}
	return sq, nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(g *GameState, parts []string) error {
	if len(parts) >= 5 {
		n, err := strconv.Atoi(parts[4])
		if err != nil || n < 0 {
			return fmt.Errorf("invalid halfmove clock %q: %w", parts[4], errors.ErrInvalidFEN)
		}
		g.startHalfmove = n
	}
	if len(parts) >= 6 {
		n, err := strconv.Atoi(parts[5])
		if err != nil || n < 1 {
			return fmt.Errorf("invalid fullmove number %q: %w", parts[5], errors.ErrInvalidFEN)
		}
		g.startFullmove = n
	}
	return nil
}

// FEN converts the current position to a FEN string.
func (g *GameState) FEN() string {
	var sb strings.Builder

	writePiecePositions(&sb, &g.board)
	sb.WriteByte(' ')
	sb.WriteByte(g.toMove.Letter())
	sb.WriteByte(' ')
	sb.WriteString(g.CastlingRights().String())
	sb.WriteByte(' ')
	sb.WriteString(g.EnPassant().String())
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", g.HalfmoveClock(), g.fullmoveNumber())

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if piece == chess.Empty {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.FENLetter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// HalfmoveClock counts plies since the last pawn move or capture, starting
// from the clock of the FEN the game was loaded from.
func (g *GameState) HalfmoveClock() int {
	clock := 0
	for i := len(g.moveLog) - 1; i >= 0; i-- {
		m := g.moveLog[i]
		if m.Moved.Kind() == chess.Pawn || m.IsCapture() {
			return clock
		}
		clock++
	}
	return g.startHalfmove + clock
}

// fullmoveNumber increments after each black move.
func (g *GameState) fullmoveNumber() int {
	blackMoves := len(g.moveLog) / 2
	if len(g.moveLog)%2 == 1 && g.moveLogStartsWithBlack() {
		blackMoves++
	}
	return g.startFullmove + blackMoves
}

// moveLogStartsWithBlack reports whether black made the first logged move.
func (g *GameState) moveLogStartsWithBlack() bool {
	return len(g.moveLog) > 0 && g.moveLog[0].Moved.Colour() == chess.Black
}
