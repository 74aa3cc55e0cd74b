package engine

import (
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

func TestCastleGeneration(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		kingside  string
		queenside string
		wantKing  bool
		wantQueen bool
	}{
		{
			name: "both available", fen: "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			kingside: "e1g1", queenside: "e1c1", wantKing: true, wantQueen: true,
		},
		{
			name: "black both available", fen: "r3k2r/8/8/8/8/8/8/4K3 b kq - 0 1",
			kingside: "e8g8", queenside: "e8c8", wantKing: true, wantQueen: true,
		},
		{
			name: "kingside blocked", fen: "r3k2r/8/8/8/8/8/8/R3KB1R w KQkq - 0 1",
			kingside: "e1g1", queenside: "e1c1", wantKing: false, wantQueen: true,
		},
		{
			name: "queenside blocked on b-file", fen: "r3k2r/8/8/8/8/8/8/RN2K2R w KQkq - 0 1",
			kingside: "e1g1", queenside: "e1c1", wantKing: true, wantQueen: false,
		},
		{
			name: "king in check", fen: "4k3/4r3/8/8/8/8/8/R3K2R w KQ - 0 1",
			kingside: "e1g1", queenside: "e1c1", wantKing: false, wantQueen: false,
		},
		{
			name: "transit square attacked", fen: "4k3/5r2/8/8/8/8/8/R3K2R w KQ - 0 1",
			kingside: "e1g1", queenside: "e1c1", wantKing: false, wantQueen: true,
		},
		{
			name: "destination attacked", fen: "4k3/6r1/8/8/8/8/8/R3K2R w KQ - 0 1",
			kingside: "e1g1", queenside: "e1c1", wantKing: false, wantQueen: true,
		},
		{
			name: "queenside transit attacked", fen: "4k3/3r4/8/8/8/8/8/R3K2R w KQ - 0 1",
			kingside: "e1g1", queenside: "e1c1", wantKing: true, wantQueen: false,
		},
		{
			name: "b-file attacked is allowed", fen: "4k3/1r6/8/8/8/8/8/R3K2R w KQ - 0 1",
			kingside: "e1g1", queenside: "e1c1", wantKing: true, wantQueen: true,
		},
		{
			name: "pawn covers empty transit square", fen: "4k3/8/8/8/8/8/6p1/R3K2R w KQ - 0 1",
			kingside: "e1g1", queenside: "e1c1", wantKing: false, wantQueen: true,
		},
		{
			name: "no rights", fen: "4k3/8/8/8/8/8/8/R3K2R w - - 0 1",
			kingside: "e1g1", queenside: "e1c1", wantKing: false, wantQueen: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustFEN(t, tt.fen)
			moves := g.ValidMoves()
			if got := hasMove(moves, tt.kingside); got != tt.wantKing {
				t.Errorf("%s legal = %v, want %v", tt.kingside, got, tt.wantKing)
			}
			if got := hasMove(moves, tt.queenside); got != tt.wantQueen {
				t.Errorf("%s legal = %v, want %v", tt.queenside, got, tt.wantQueen)
			}
		})
	}
}

func TestCastleApplyUndo(t *testing.T) {
	tests := []struct {
		name     string
		move     string
		class    chess.MoveClass
		king     string
		rook     string
		rookHome string
	}{
		{"kingside", "e1g1", chess.KingsideCastle, "g1", "f1", "h1"},
		{"queenside", "e1c1", chess.QueensideCastle, "c1", "d1", "a1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
			m := findMove(t, g.ValidMoves(), tt.move)
			if m.Class != tt.class {
				t.Fatalf("%s class = %v, want %v", tt.move, m.Class, tt.class)
			}

			g.MakeMoveUnchecked(m)
			if got := g.PieceAt(chess.MustSquare(tt.king)); got != chess.W(chess.King) {
				t.Errorf("%s = %v, want wK", tt.king, got)
			}
			if got := g.PieceAt(chess.MustSquare(tt.rook)); got != chess.W(chess.Rook) {
				t.Errorf("%s = %v, want wR", tt.rook, got)
			}
			if got := g.PieceAt(chess.MustSquare(tt.rookHome)); got != chess.Empty {
				t.Errorf("%s = %v, want empty", tt.rookHome, got)
			}
			if got := g.CastlingRights().String(); got != "kq" {
				t.Errorf("rights after castling = %s, want kq", got)
			}
			if got := g.KingSquare(chess.White); got != chess.MustSquare(tt.king) {
				t.Errorf("KingSquare(white) = %v, want %s", got, tt.king)
			}

			g.UndoMove()
			if got := g.PieceAt(chess.MustSquare("e1")); got != chess.W(chess.King) {
				t.Errorf("e1 after undo = %v, want wK", got)
			}
			if got := g.PieceAt(chess.MustSquare(tt.rookHome)); got != chess.W(chess.Rook) {
				t.Errorf("%s after undo = %v, want wR", tt.rookHome, got)
			}
			if got := g.PieceAt(chess.MustSquare(tt.rook)); got != chess.Empty {
				t.Errorf("%s after undo = %v, want empty", tt.rook, got)
			}
			if got := g.CastlingRights().String(); got != "KQkq" {
				t.Errorf("rights after undo = %s, want KQkq", got)
			}
		})
	}
}

func TestCastlingRightsUpdates(t *testing.T) {
	tests := []struct {
		name  string
		moves []string
		want  string
	}{
		{"king step", []string{"e1e2"}, "kq"},
		{"kingside rook", []string{"h1h2"}, "Qkq"},
		{"queenside rook", []string{"a1a2"}, "Kkq"},
		{"rook captures rook", []string{"a1a8"}, "Kk"},
		{"black rook captures rook", []string{"e1d1", "h8h1"}, "q"},
		{"rook returns home", []string{"h1h2", "a8b8", "h2h1"}, "Qk"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
			play(t, g, tt.moves...)
			if got := g.CastlingRights().String(); got != tt.want {
				t.Errorf("rights = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestCastlingRightsUndoRestores(t *testing.T) {
	g := mustFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	play(t, g, "e1e2", "e8e7", "e2e1", "e7e8")

	if got := g.CastlingRights().String(); got != "-" {
		t.Fatalf("rights after king walks = %s, want -", got)
	}
	if hasMove(g.ValidMoves(), "e1g1") {
		t.Error("castle legal after the king returned home")
	}

	for g.UndoMove() {
	}
	if got := g.CastlingRights().String(); got != "KQkq" {
		t.Errorf("rights after full undo = %s, want KQkq", got)
	}
}
