package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// genMode selects what the pseudo-legal generator produces.
type genMode int

const (
	// genMoves produces the moves a side may try, castling included.
	genMoves genMode = iota
	// genAttacks produces the squares a side attacks: pawn diagonals
	// whether or not they hold a piece, no pawn pushes, no castling.
	genAttacks
)

var (
	knightOffsets    = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	rookDirections   = [4][2]int{{-1, 0}, {0, -1}, {1, 0}, {0, 1}}
	bishopDirections = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	queenDirections  = [8][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}, {-1, 0}, {0, -1}, {1, 0}, {0, 1}}
	kingOffsets      = buildKingOffsets()
)

// buildKingOffsets lists the eight neighbours. The zero displacement is
// dropped so the king can never "move" to its own square.
func buildKingOffsets() [][2]int {
	offsets := make([][2]int, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			offsets = append(offsets, [2]int{dr, dc})
		}
	}
	return offsets
}

// pseudoLegalMoves enumerates the moves of one side in row-major board
// order, ignoring whether they leave its own king in check.
func (g *GameState) pseudoLegalMoves(side chess.Colour, mode genMode) []chess.Move {
	moves := make([]chess.Move, 0, 64)
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := g.board.Squares[row][col]
			if !piece.Is(side) {
				continue
			}
			from := chess.Sq(row, col)
			switch piece.Kind() {
			case chess.Pawn:
				moves = g.pawnMoves(from, side, mode, moves)
			case chess.Knight:
				moves = g.stepMoves(from, side, knightOffsets[:], moves)
			case chess.Bishop:
				moves = g.slidingMoves(from, side, bishopDirections[:], moves)
			case chess.Rook:
				moves = g.slidingMoves(from, side, rookDirections[:], moves)
			case chess.Queen:
				moves = g.slidingMoves(from, side, queenDirections[:], moves)
			case chess.King:
				moves = g.stepMoves(from, side, kingOffsets, moves)
				if mode == genMoves && side == g.toMove {
					moves = g.castleMoves(from, side, moves)
				}
			}
		}
	}
	return moves
}

// pawnMoves adds pushes, captures, en passant and promotions for one pawn.
func (g *GameState) pawnMoves(from chess.Square, side chess.Colour, mode genMode, moves []chess.Move) []chess.Move {
	dir := chess.Forward(side)
	pawn := g.board.Get(from)

	if mode == genMoves {
		one := from.Offset(dir, 0)
		if one.Valid() && g.board.Get(one) == chess.Empty {
			moves = append(moves, g.pawnMove(from, one))
			two := from.Offset(2*dir, 0)
			if from.Row == chess.PawnRow(side) && g.board.Get(two) == chess.Empty {
				moves = append(moves, g.pawnMove(from, two))
			}
		}
	}

	for _, dc := range [2]int{-1, 1} {
		to := from.Offset(dir, dc)
		if !to.Valid() {
			continue
		}
		target := g.board.Get(to)
		switch {
		case mode == genAttacks:
			moves = append(moves, chess.Move{From: from, To: to, Moved: pawn, Captured: target})
		case target.Is(side.Opposite()):
			moves = append(moves, g.pawnMove(from, to))
		case side == g.toMove && to == g.EnPassant():
			moves = append(moves, chess.Move{
				From:     from,
				To:       to,
				Moved:    pawn,
				Captured: g.board.Get(chess.Sq(from.Row, to.Col)),
				Class:    chess.EnPassantMove,
			})
		}
	}
	return moves
}

// pawnMove builds a push or capture, flagging arrival on the last rank.
func (g *GameState) pawnMove(from, to chess.Square) chess.Move {
	m := chess.NewMove(from, to, &g.board)
	if to.Row == chess.PromotionRow(m.Moved.Colour()) {
		m.Class = chess.PromotionMove
	}
	return m
}

// stepMoves handles the knight and king: fixed offsets onto squares not
// held by the mover's own pieces.
func (g *GameState) stepMoves(from chess.Square, side chess.Colour, offsets [][2]int, moves []chess.Move) []chess.Move {
	for _, off := range offsets {
		to := from.Offset(off[0], off[1])
		if !to.Valid() || g.board.Get(to).Is(side) {
			continue
		}
		moves = append(moves, chess.NewMove(from, to, &g.board))
	}
	return moves
}

// slidingMoves walks each ray until it leaves the board, hits an own
// piece (excluded) or hits an enemy piece (included as a capture).
func (g *GameState) slidingMoves(from chess.Square, side chess.Colour, dirs [][2]int, moves []chess.Move) []chess.Move {
	for _, dir := range dirs {
		for to := from.Offset(dir[0], dir[1]); to.Valid(); to = to.Offset(dir[0], dir[1]) {
			target := g.board.Get(to)
			if target.Is(side) {
				break
			}
			moves = append(moves, chess.NewMove(from, to, &g.board))
			if target != chess.Empty {
				break
			}
		}
	}
	return moves
}
