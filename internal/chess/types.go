// Package chess provides core chess types: colours, pieces, squares, moves,
// castling rights and the 8x8 board.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Letter returns 'w' or 'b'.
func (c Colour) Letter() byte {
	if c == White {
		return 'w'
	}
	return 'b'
}

// Forward returns the row delta of a pawn step for the colour.
// Row 0 is rank 8, so white pawns move towards lower rows.
func Forward(c Colour) int {
	if c == White {
		return -1
	}
	return 1
}

// Kind is the type of a piece without its colour.
type Kind uint8

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single uppercase letter for a kind.
func (k Kind) Letter() byte {
	letters := []byte{'-', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts a piece letter of either case to a kind.
func KindFromLetter(c byte) Kind {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return NoKind
	}
}

// Piece is a coloured piece, or Empty.
type Piece uint8

// PieceShift is used for encoding coloured pieces.
const PieceShift = 1

// Empty marks a square with no piece on it.
const Empty Piece = 0

// MakePiece creates a coloured piece value.
func MakePiece(colour Colour, kind Kind) Piece {
	return Piece(uint8(kind)<<PieceShift | uint8(colour))
}

// W creates a white piece.
func W(kind Kind) Piece {
	return MakePiece(White, kind)
}

// B creates a black piece.
func B(kind Kind) Piece {
	return MakePiece(Black, kind)
}

// Kind extracts the kind from a coloured piece.
func (p Piece) Kind() Kind {
	return Kind(p >> PieceShift)
}

// Colour extracts the colour. Meaningless for Empty.
func (p Piece) Colour() Colour {
	return Colour(p & 0x01)
}

// Is reports whether p is a piece of the given colour.
func (p Piece) Is(c Colour) bool {
	return p != Empty && p.Colour() == c
}

// String returns the two-character form used in board dumps: "wP", "bK", "--".
func (p Piece) String() string {
	if p == Empty {
		return "--"
	}
	return string([]byte{p.Colour().Letter(), p.Kind().Letter()})
}

// FENLetter returns the FEN letter: uppercase for white, lowercase for black.
func (p Piece) FENLetter() byte {
	letter := p.Kind().Letter()
	if p.Colour() == Black {
		letter += 'a' - 'A'
	}
	return letter
}
