package match

import (
	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// Termination says why a game stopped.
type Termination int

const (
	Unterminated Termination = iota
	ByCheckmate
	ByStalemate
	ByInsufficientMaterial
	ByRepetition
	ByFiftyMoves
	ByMaxPlies
	ByScriptEnd
)

// String returns the termination name used in records.
func (t Termination) String() string {
	switch t {
	case ByCheckmate:
		return "checkmate"
	case ByStalemate:
		return "stalemate"
	case ByInsufficientMaterial:
		return "insufficient material"
	case ByRepetition:
		return "repetition"
	case ByFiftyMoves:
		return "fifty-move rule"
	case ByMaxPlies:
		return "ply limit"
	case ByScriptEnd:
		return "end of moves"
	default:
		return "unterminated"
	}
}

// Result strings.
const (
	WhiteWins  = "1-0"
	BlackWins  = "0-1"
	Draw       = "1/2-1/2"
	Unfinished = "*"
)

// PlyRecord is one move of a recorded game.
type PlyRecord struct {
	Ply    int // 1-based
	Colour chess.Colour
	Move   chess.Move
	FEN    string // Position after the move
}

// Record is a finished (or abandoned) game.
type Record struct {
	StartFEN    string
	White       string
	Black       string
	Moves       []PlyRecord
	Result      string
	Termination Termination
	FinalFEN    string
	Board       chess.Board
}

// MoveTexts returns the coordinate text of every move in order.
func (r *Record) MoveTexts() []string {
	out := make([]string, len(r.Moves))
	for i, p := range r.Moves {
		out[i] = p.Move.String()
	}
	return out
}

// resultFor maps a termination to a result string. mated is the side to
// move when the game ended, which only matters for checkmate.
func resultFor(t Termination, mated chess.Colour) string {
	switch t {
	case ByCheckmate:
		if mated == chess.White {
			return BlackWins
		}
		return WhiteWins
	case ByStalemate, ByInsufficientMaterial, ByRepetition, ByFiftyMoves:
		return Draw
	default:
		return Unfinished
	}
}
