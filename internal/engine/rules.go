package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(board *chess.Board) bool {
	var whitePieces, blackPieces []chess.Kind
	var whiteBishopOnLight, blackBishopOnLight bool

	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if piece == chess.Empty {
				continue
			}

			kind := piece.Kind()
			switch kind {
			case chess.King:
				continue
			case chess.Pawn, chess.Rook, chess.Queen:
				return false
			}

			if piece.Colour() == chess.White {
				whitePieces = append(whitePieces, kind)
				if kind == chess.Bishop {
					whiteBishopOnLight = isLightSquare(chess.Sq(row, col))
				}
			} else {
				blackPieces = append(blackPieces, kind)
				if kind == chess.Bishop {
					blackBishopOnLight = isLightSquare(chess.Sq(row, col))
				}
			}
		}
	}

	// K vs K
	if len(whitePieces) == 0 && len(blackPieces) == 0 {
		return true
	}

	// K+B vs K or K+N vs K
	if len(whitePieces) == 0 && len(blackPieces) == 1 {
		return blackPieces[0] == chess.Bishop || blackPieces[0] == chess.Knight
	}
	if len(blackPieces) == 0 && len(whitePieces) == 1 {
		return whitePieces[0] == chess.Bishop || whitePieces[0] == chess.Knight
	}

	// K+B vs K+B (same color bishops)
	if len(whitePieces) == 1 && len(blackPieces) == 1 &&
		whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop {
		return whiteBishopOnLight == blackBishopOnLight
	}

	return false
}

// isLightSquare returns true if the given square is a light square.
// a8 (row 0, col 0) is light.
func isLightSquare(sq chess.Square) bool {
	return (sq.Row+sq.Col)%2 == 0
}

// Perft counts the leaf nodes of the legal-move tree to the given depth.
// The state is left as it was found.
func Perft(g *GameState, depth int) int {
	if depth <= 0 {
		return 1
	}
	moves := g.ValidMoves()
	if depth == 1 {
		return len(moves)
	}
	nodes := 0
	for _, m := range moves {
		g.MakeMoveUnchecked(m)
		nodes += Perft(g, depth-1)
		g.UndoMove()
	}
	return nodes
}
