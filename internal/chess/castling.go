package chess

// CastlingRights tracks which castles are still available. Each flag only
// ever goes from true to false during a game.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// AllCastlingRights is the starting set of rights.
var AllCastlingRights = CastlingRights{
	WhiteKingside:  true,
	WhiteQueenside: true,
	BlackKingside:  true,
	BlackQueenside: true,
}

// Kingside reports the king-side right for the colour.
func (r CastlingRights) Kingside(c Colour) bool {
	if c == White {
		return r.WhiteKingside
	}
	return r.BlackKingside
}

// Queenside reports the queen-side right for the colour.
func (r CastlingRights) Queenside(c Colour) bool {
	if c == White {
		return r.WhiteQueenside
	}
	return r.BlackQueenside
}

// WithoutColour returns a copy with both rights of the colour cleared.
func (r CastlingRights) WithoutColour(c Colour) CastlingRights {
	if c == White {
		r.WhiteKingside = false
		r.WhiteQueenside = false
	} else {
		r.BlackKingside = false
		r.BlackQueenside = false
	}
	return r
}

// WithoutCorner returns a copy with the right tied to a rook home square
// cleared. Squares that are not rook home squares leave the rights as they are.
func (r CastlingRights) WithoutCorner(sq Square) CastlingRights {
	switch sq {
	case Square{Row: 7, Col: 7}:
		r.WhiteKingside = false
	case Square{Row: 7, Col: 0}:
		r.WhiteQueenside = false
	case Square{Row: 0, Col: 7}:
		r.BlackKingside = false
	case Square{Row: 0, Col: 0}:
		r.BlackQueenside = false
	}
	return r
}

// String returns the FEN castling field, e.g. "KQkq" or "-".
func (r CastlingRights) String() string {
	var b []byte
	if r.WhiteKingside {
		b = append(b, 'K')
	}
	if r.WhiteQueenside {
		b = append(b, 'Q')
	}
	if r.BlackKingside {
		b = append(b, 'k')
	}
	if r.BlackQueenside {
		b = append(b, 'q')
	}
	if len(b) == 0 {
		return "-"
	}
	return string(b)
}
