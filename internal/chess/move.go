package chess

// MoveClass categorizes different types of chess moves.
type MoveClass int

const (
	NormalMove MoveClass = iota
	PromotionMove
	EnPassantMove
	KingsideCastle
	QueensideCastle
)

// String returns a short name for the class.
func (c MoveClass) String() string {
	switch c {
	case NormalMove:
		return "normal"
	case PromotionMove:
		return "promotion"
	case EnPassantMove:
		return "en-passant"
	case KingsideCastle:
		return "O-O"
	case QueensideCastle:
		return "O-O-O"
	default:
		return "unknown"
	}
}

// Move describes one ply. Moves are values and never change once built.
type Move struct {
	// Source and destination squares.
	From Square
	To   Square

	// The piece being moved.
	Moved Piece

	// The piece captured (Empty if no capture). For en passant this is the
	// pawn beside the mover, not the piece on To.
	Captured Piece

	// Class of move (normal, promotion, en passant, castle).
	Class MoveClass
}

// NewMove creates a normal move, reading the moved and captured pieces from the board.
func NewMove(from, to Square, board *Board) Move {
	return Move{
		From:     from,
		To:       to,
		Moved:    board.Get(from),
		Captured: board.Get(to),
		Class:    NormalMove,
	}
}

// IsCapture returns true if this move is a capture.
func (m Move) IsCapture() bool {
	return m.Captured != Empty
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Class == PromotionMove
}

// IsEnPassant returns true if this move is an en-passant capture.
func (m Move) IsEnPassant() bool {
	return m.Class == EnPassantMove
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	switch m.Class {
	case KingsideCastle, QueensideCastle:
		return true
	default:
		return false
	}
}

// Placed returns the piece that stands on To after the move.
// Promotion is always to a queen.
func (m Move) Placed() Piece {
	if m.Class == PromotionMove {
		return MakePiece(m.Moved.Colour(), Queen)
	}
	return m.Moved
}

// CaptureSquare returns the square the captured piece is removed from.
func (m Move) CaptureSquare() Square {
	if m.Class == EnPassantMove {
		return Square{Row: m.From.Row, Col: m.To.Col}
	}
	return m.To
}

// ID identifies a move by its squares and class.
func (m Move) ID() int {
	return int(m.Class)*10000 + m.From.Row*1000 + m.From.Col*100 + m.To.Row*10 + m.To.Col
}

// Equal reports whether two moves have the same squares and special semantics.
func (m Move) Equal(other Move) bool {
	return m.From == other.From && m.To == other.To && m.Class == other.Class
}

// String returns coordinate notation such as "e2e4", with a trailing "q"
// for promotions.
func (m Move) String() string {
	text := m.From.String() + m.To.String()
	if m.Class == PromotionMove {
		text += "q"
	}
	return text
}
