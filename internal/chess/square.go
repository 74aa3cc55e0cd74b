package chess

import "fmt"

// BoardSize is the number of rows and columns.
const BoardSize = 8

// Square is a (row, col) pair. Row 0 is rank 8, row 7 is rank 1.
type Square struct {
	Row int
	Col int
}

// NoSquare is the "none" value, e.g. when there is no en-passant target.
var NoSquare = Square{Row: -1, Col: -1}

// Sq builds a square from row and column.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// Offset returns the square displaced by (dr, dc). The result may be off the board.
func (s Square) Offset(dr, dc int) Square {
	return Square{Row: s.Row + dr, Col: s.Col + dc}
}

// File returns the file letter 'a'-'h'.
func (s Square) File() byte {
	return byte('a' + s.Col)
}

// Rank returns the rank digit '1'-'8'.
func (s Square) Rank() byte {
	return byte('8' - s.Row)
}

// String returns algebraic notation such as "e2", or "-" for NoSquare.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{s.File(), s.Rank()})
}

// ParseSquare converts algebraic text such as "e2" to a square.
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return NoSquare, fmt.Errorf("invalid square %q", text)
	}
	file, rank := text[0], text[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, fmt.Errorf("invalid square %q", text)
	}
	return Square{Row: int('8' - rank), Col: int(file - 'a')}, nil
}

// MustSquare is ParseSquare for literals known to be valid.
func MustSquare(text string) Square {
	sq, err := ParseSquare(text)
	if err != nil {
		panic(err)
	}
	return sq
}

// HomeRow returns the back-rank row for the colour.
func HomeRow(c Colour) int {
	if c == White {
		return 7
	}
	return 0
}

// PawnRow returns the row pawns of the colour start on.
func PawnRow(c Colour) int {
	if c == White {
		return 6
	}
	return 1
}

// PromotionRow returns the row on which pawns of the colour promote.
func PromotionRow(c Colour) int {
	return HomeRow(c.Opposite())
}
