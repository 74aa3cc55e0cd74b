package search

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
)

const kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

func mustGame(t *testing.T, fen string) *engine.GameState {
	t.Helper()
	g, err := engine.NewGameFromFEN(fen)
	require.NoError(t, err)
	return g
}

func TestScoreMaterial(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want int
	}{
		{"start", engine.InitialFEN, 0},
		{"white queen up", "4k3/8/8/8/8/8/8/3QK3 w - - 0 1", 10},
		{"black rook up", "r3k3/8/8/8/8/8/8/4K3 w - - 0 1", -5},
		{"minor pieces", "4k3/8/8/8/8/8/8/1NB1K3 w - - 0 1", 6},
		{"pawns", "4k3/pp6/8/8/8/8/PPP5/4K3 w - - 0 1", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustGame(t, tt.fen).Board()
			assert.Equal(t, tt.want, ScoreMaterial(&board))
		})
	}
}

func TestPieceValue(t *testing.T) {
	assert.Equal(t, 1, PieceValue(chess.Pawn))
	assert.Equal(t, 3, PieceValue(chess.Knight))
	assert.Equal(t, 3, PieceValue(chess.Bishop))
	assert.Equal(t, 5, PieceValue(chess.Rook))
	assert.Equal(t, 10, PieceValue(chess.Queen))
	assert.Equal(t, 0, PieceValue(chess.King))
	assert.Equal(t, 0, PieceValue(chess.NoKind))
}

func TestNewOptions(t *testing.T) {
	assert.Equal(t, DefaultDepth, New().Depth())
	assert.Equal(t, 3, New(WithDepth(3)).Depth())
	assert.Equal(t, DefaultDepth, New(WithDepth(0)).Depth(), "depth below 1 is ignored")
}

func TestSearch_MateInOne(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		want      string
		wantScore int
	}{
		{"white back rank", "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1", "a1a8", CheckmateScore},
		{"black back rank", "r5k1/8/8/8/8/8/5PPP/6K1 b - - 0 1", "a8a1", -CheckmateScore},
	}

	for _, tt := range tests {
		for _, depth := range []int{1, 2} {
			t.Run(tt.name, func(t *testing.T) {
				g := mustGame(t, tt.fen)
				res, err := New(WithDepth(depth)).Search(context.Background(), g, g.ValidMoves())
				require.NoError(t, err)
				require.True(t, res.Found)
				assert.Equal(t, tt.want, res.Move.String(), "depth %d", depth)
				assert.Equal(t, tt.wantScore, res.Score, "depth %d", depth)
			})
		}
	}
}

func TestSearch_WinsHangingQueen(t *testing.T) {
	for _, depth := range []int{1, 2} {
		g := mustGame(t, "4k3/8/8/3q4/8/8/8/3RK3 w - - 0 1")
		res, err := New(WithDepth(depth)).Search(context.Background(), g, g.ValidMoves())
		require.NoError(t, err)
		assert.Equal(t, "d1d5", res.Move.String(), "depth %d", depth)
		assert.Equal(t, 5, res.Score, "depth %d", depth)
	}
}

func TestSearch_TiesPickFirstMove(t *testing.T) {
	// Nothing can be captured within two plies of the start, so every move
	// scores zero and the first generated move is chosen.
	for _, depth := range []int{1, 2} {
		g := engine.NewGame()
		legal := g.ValidMoves()
		res, err := New(WithDepth(depth)).Search(context.Background(), g, legal)
		require.NoError(t, err)
		assert.Equal(t, legal[0], res.Move, "depth %d", depth)
		assert.Equal(t, 0, res.Score)
	}
}

func TestSearch_NoLegalMoves(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		wantScore int
	}{
		{"stalemate", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", StalemateScore},
		{"black mated", "R6k/6pp/8/8/8/8/8/6K1 b - - 0 1", CheckmateScore},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustGame(t, tt.fen)
			legal := g.ValidMoves()
			require.Empty(t, legal)

			res, err := New().Search(context.Background(), g, legal)
			require.NoError(t, err)
			assert.False(t, res.Found)
			assert.Equal(t, tt.wantScore, res.Score)

			_, ok := FindBestMove(g, legal)
			assert.False(t, ok)
		})
	}
}

func TestSearch_LeavesStateUnchanged(t *testing.T) {
	for _, workers := range []int{1, 4} {
		g := mustGame(t, kiwipete)
		legal := g.ValidMoves()
		fen := g.FEN()
		plies := g.Ply()

		_, err := New(WithWorkers(workers)).Search(context.Background(), g, legal)
		require.NoError(t, err)

		assert.Equal(t, fen, g.FEN(), "workers %d", workers)
		assert.Equal(t, plies, g.Ply(), "workers %d", workers)
		assert.Equal(t, engine.Ongoing, g.Status(), "terminal flags restored, workers %d", workers)
		assert.Equal(t, legal, g.ValidMoves(), "workers %d", workers)
	}
}

func TestSearch_Deterministic(t *testing.T) {
	g := mustGame(t, kiwipete)
	legal := g.ValidMoves()
	s := New()

	first, err := s.Search(context.Background(), g, legal)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := s.Search(context.Background(), g, legal)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestSearch_ParallelMatchesSequential(t *testing.T) {
	fens := []string{
		engine.InitialFEN,
		kiwipete,
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		"4k3/8/8/3q4/8/8/8/3RK3 w - - 0 1",
	}
	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			g := mustGame(t, fen)
			legal := g.ValidMoves()

			seq, err := New().Search(context.Background(), g, legal)
			require.NoError(t, err)
			par, err := New(WithWorkers(4)).Search(context.Background(), g, legal)
			require.NoError(t, err)

			assert.Equal(t, seq, par)
		})
	}
}

func TestSearch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, workers := range []int{1, 4} {
		g := engine.NewGame()
		fen := g.FEN()
		_, err := New(WithWorkers(workers)).Search(ctx, g, g.ValidMoves())
		assert.True(t, errors.Is(err, context.Canceled), "workers %d: err = %v", workers, err)
		assert.Equal(t, fen, g.FEN())
	}
}

func TestFindBestMove(t *testing.T) {
	g := mustGame(t, "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")
	m, ok := FindBestMove(g, g.ValidMoves())
	require.True(t, ok)
	assert.Equal(t, "a1a8", m.String())
}

// cancelAfter is a context that reports cancellation from its n-th Err call.
type cancelAfter struct {
	context.Context
	n int
}

func (c *cancelAfter) Err() error {
	c.n--
	if c.n < 0 {
		return context.Canceled
	}
	return nil
}

func TestSearch_CancelledMidwayKeepsStatus(t *testing.T) {
	g := engine.NewGame()
	fen := g.FEN()
	legal := g.ValidMoves()
	ctx := &cancelAfter{Context: context.Background(), n: 3}

	_, err := New().Search(ctx, g, legal)
	require.True(t, errors.Is(err, context.Canceled), "err = %v", err)

	assert.Equal(t, fen, g.FEN())
	assert.Equal(t, engine.Ongoing, g.Status())
	mate, err := g.IsCheckmate()
	require.NoError(t, err)
	assert.False(t, mate)
}
