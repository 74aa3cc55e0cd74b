// Package hashing provides Zobrist position keys and repetition counting.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
)

const numSquares = chess.BoardSize * chess.BoardSize

// Zobrist tables for pieces, castling, en passant and side to move.
var (
	zobristPiece     [1 << (chess.PieceShift + 3)][numSquares]uint64 // Indexed by piece code
	zobristCastle    [16]uint64                                      // Indexed by rights bitmask
	zobristEnPassant [chess.BoardSize]uint64                         // Indexed by file
	zobristSide      uint64                                          // XORed when black is to move
)

func init() {
	// Fixed seed so keys are stable across runs.
	rnd := rand.New(rand.NewSource(0xC0DE))
	for p := range zobristPiece {
		for sq := range zobristPiece[p] {
			zobristPiece[p][sq] = rnd.Uint64()
		}
	}
	for i := range zobristCastle {
		zobristCastle[i] = rnd.Uint64()
	}
	for i := range zobristEnPassant {
		zobristEnPassant[i] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

// BoardKey hashes the piece placement alone.
func BoardKey(b *chess.Board) uint64 {
	var key uint64
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			if p := b.Squares[row][col]; p != chess.Empty {
				key ^= zobristPiece[p][row*chess.BoardSize+col]
			}
		}
	}
	return key
}

// Key hashes everything that makes two positions the same for repetition:
// placement, side to move, castling rights and the en-passant file.
func Key(g *engine.GameState) uint64 {
	board := g.Board()
	key := BoardKey(&board)
	if g.ToMove() == chess.Black {
		key ^= zobristSide
	}
	key ^= zobristCastle[castleIndex(g.CastlingRights())]
	if ep := g.EnPassant(); ep.Valid() {
		key ^= zobristEnPassant[ep.Col]
	}
	return key
}

// castleIndex packs the rights into four bits.
func castleIndex(r chess.CastlingRights) int {
	idx := 0
	if r.WhiteKingside {
		idx |= 1
	}
	if r.WhiteQueenside {
		idx |= 2
	}
	if r.BlackKingside {
		idx |= 4
	}
	if r.BlackQueenside {
		idx |= 8
	}
	return idx
}
