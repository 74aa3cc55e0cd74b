package chess

import "strings"

// Board is the 8x8 placement of pieces. It has no knowledge of legality;
// only the game state mutates it during play.
type Board struct {
	// Squares[row][col]; row 0 is rank 8.
	Squares [BoardSize][BoardSize]Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Clear()
	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.Squares[0][col] = B(backRank[col])
		b.Squares[1][col] = B(Pawn)
		b.Squares[6][col] = W(Pawn)
		b.Squares[7][col] = W(backRank[col])
	}
}

// Clear empties every square.
func (b *Board) Clear() {
	for row := range b.Squares {
		for col := range b.Squares[row] {
			b.Squares[row][col] = Empty
		}
	}
}

// Get returns the piece on the square, or Empty.
func (b *Board) Get(sq Square) Piece {
	return b.Squares[sq.Row][sq.Col]
}

// Set places a piece (or Empty) on the square.
func (b *Board) Set(sq Square, piece Piece) {
	b.Squares[sq.Row][sq.Col] = piece
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Find returns the first square in row-major order holding the piece.
func (b *Board) Find(piece Piece) (Square, bool) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Squares[row][col] == piece {
				return Square{Row: row, Col: col}, true
			}
		}
	}
	return NoSquare, false
}

// Count returns how many times the piece appears on the board.
func (b *Board) Count(piece Piece) int {
	n := 0
	for row := range b.Squares {
		for _, p := range b.Squares[row] {
			if p == piece {
				n++
			}
		}
	}
	return n
}

// String renders the board as eight lines of two-character cells.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(b.Squares[row][col].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
