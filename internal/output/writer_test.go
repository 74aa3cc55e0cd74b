package output

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/match"
	"github.com/lgbarn/chess-engine-go/internal/testutil"
)

// playScript plays a scripted game from fen (or the start) and returns its record.
func playScript(t *testing.T, fen string, moves ...string) *match.Record {
	t.Helper()
	cfg := config.NewConfigBuilder().WithVerbosity(0).Build()
	p := match.NewScriptedPlayer(moves...)
	rec, err := match.NewRunner(cfg, p, p).Play(context.Background(), testutil.MustGame(t, fen))
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	return rec
}

func TestWriteBoard(t *testing.T) {
	var buf bytes.Buffer
	WriteBoard(&buf, chess.NewInitialBoard())

	want := strings.Join([]string{
		"8 r n b q k b n r",
		"7 p p p p p p p p",
		"6 . . . . . . . .",
		"5 . . . . . . . .",
		"4 . . . . . . . .",
		"3 . . . . . . . .",
		"2 P P P P P P P P",
		"1 R N B Q K B N R",
		"  a b c d e f g h",
		"",
	}, "\n")
	testutil.AssertEqual(t, buf.String(), want)
}

func TestWriteMovetext(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		moves []string
		want  string
	}{
		{
			name:  "fool's mate",
			moves: []string{"f2f3", "e7e5", "g2g4", "d8h4"},
			want:  "1. f2f3 e7e5 2. g2g4 d8h4 0-1\n",
		},
		{
			name:  "black starts",
			fen:   "4k3/8/8/8/8/8/4p3/K7 b - - 0 12",
			moves: []string{"e8d7", "a1b1"},
			want:  "12... e8d7 13. a1b1 *\n",
		},
		{
			name: "no moves",
			fen:  "4k3/8/8/8/8/8/8/4K3 w - - 0 1",
			want: "1/2-1/2\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := playScript(t, tt.fen, tt.moves...)
			var buf bytes.Buffer
			WriteMovetext(&buf, rec, 0)
			testutil.AssertEqual(t, buf.String(), tt.want)
		})
	}
}

func TestWriteMovetext_Wraps(t *testing.T) {
	rec := playScript(t, "", "g1f3", "g8f6", "f3g1", "f6g8", "b1c3", "b8c6")
	var buf bytes.Buffer
	WriteMovetext(&buf, rec, 20)

	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		if len(line) > 20 {
			t.Errorf("line %q longer than 20", line)
		}
	}
	if got := strings.Join(strings.Fields(buf.String()), " "); got != "1. g1f3 g8f6 2. f3g1 f6g8 3. b1c3 b8c6 *" {
		t.Errorf("movetext = %q", got)
	}
}

func TestTextWriter_WriteGame(t *testing.T) {
	rec := playScript(t, "", "f2f3", "e7e5", "g2g4", "d8h4")

	var buf bytes.Buffer
	w := NewTextWriter(&buf, true)
	if err := w.WriteGame(rec); err != nil {
		t.Fatalf("WriteGame failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"White: scripted",
		"1. f2f3 e7e5 2. g2g4 d8h4 0-1",
		"Result: 0-1 (checkmate)",
		"Final: rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3",
		"4 . . . . . . P q",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestJSONWriter_SingleGame(t *testing.T) {
	rec := playScript(t, "", "e2e4", "d7d5", "e4d5")

	var buf bytes.Buffer
	w := NewJSONWriter(&buf)
	if err := w.WriteGame(rec); err != nil {
		t.Fatalf("WriteGame failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Error("JSONWriter wrote before Close")
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	var got JSONRecord
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	testutil.AssertEqual(t, got.PlyCount, 3)
	testutil.AssertEqual(t, got.Result, "*")
	testutil.AssertEqual(t, got.Termination, "end of moves")

	capture := got.Moves[2]
	testutil.AssertEqual(t, capture, JSONMove{
		MoveNumber: 2,
		Color:      "white",
		UCI:        "e4d5",
		From:       "e4",
		To:         "d5",
		Piece:      "pawn",
		Captured:   "pawn",
		FEN:        rec.FinalFEN,
	})
}

func TestJSONWriter_MultipleGames(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONWriter(&buf)
	_ = w.WriteGame(playScript(t, "", "e2e4"))
	_ = w.WriteGame(playScript(t, "", "d2d4"))
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	var got JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(got.Games) != 2 {
		t.Fatalf("got %d games, want 2", len(got.Games))
	}
	testutil.AssertEqual(t, got.Games[1].Moves[0].UCI, "d2d4")
}

func TestConvertMove_SpecialMoves(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		move      string
		promotion string
		castle    string
		captured  string
	}{
		{"promotion", "8/P6k/8/8/8/8/8/K7 w - - 0 1", "a7a8q", "queen", "", ""},
		{"kingside castle", "4k3/8/8/8/8/8/8/4K2R w K - 0 1", "e1g1", "", "O-O", ""},
		{"en passant", "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1", "e5d6", "", "", "pawn"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := playScript(t, tt.fen, tt.move)
			jm := RecordToJSON(rec).Moves[0]
			testutil.AssertEqual(t, jm.UCI, tt.move)
			testutil.AssertEqual(t, jm.Promotion, tt.promotion)
			testutil.AssertEqual(t, jm.Castle, tt.castle)
			testutil.AssertEqual(t, jm.Captured, tt.captured)
		})
	}
}

func analyse(t *testing.T, fen string) *Analysis {
	t.Helper()
	g := testutil.MustGame(t, fen)
	legal := g.ValidMoves()
	return &Analysis{
		FEN:     g.FEN(),
		ToMove:  g.ToMove(),
		Status:  g.Status(),
		InCheck: g.IsInCheck(),
		Legal:   legal,
		Board:   g.Board(),
		Mode:    "minimax",
		Depth:   2,
	}
}

func TestWriteAnalysis(t *testing.T) {
	a := analyse(t, "4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	a.Best, a.Found, a.Score, a.Scored, a.Nodes = a.Legal[0], true, 5, true, 123

	var buf bytes.Buffer
	if err := NewTextWriter(&buf, false).WriteAnalysis(a); err != nil {
		t.Fatalf("WriteAnalysis failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"To move: white",
		"Status: ongoing\n",
		"Legal moves (",
		"Best move: " + a.Legal[0].String() + " (minimax depth 2, score 5, 123 nodes)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteAnalysis_Checkmate(t *testing.T) {
	a := analyse(t, "R5k1/5ppp/8/8/8/8/8/6K1 b - - 1 1")

	var buf bytes.Buffer
	WriteAnalysis(&buf, a, true)
	out := buf.String()
	if !strings.Contains(out, "Status: checkmate\n") {
		t.Errorf("missing checkmate status:\n%s", out)
	}
	if !strings.Contains(out, "Legal moves (0):") || !strings.Contains(out, "Best move: none") {
		t.Errorf("missing empty move list:\n%s", out)
	}
	if !strings.HasPrefix(out, "8 R . . . . . k .") {
		t.Errorf("board not drawn first:\n%s", out)
	}
}

func TestJSONWriter_Analysis(t *testing.T) {
	a := analyse(t, "")
	a.Mode, a.Depth = "random", 0
	a.Best, a.Found = a.Legal[3], true

	var buf bytes.Buffer
	if err := NewJSONWriter(&buf).WriteAnalysis(a); err != nil {
		t.Fatalf("WriteAnalysis failed: %v", err)
	}

	var got map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if _, ok := got["score"]; ok {
		t.Error("random analysis should not carry a score")
	}
	testutil.AssertEqual(t, got["bestMove"], a.Legal[3].String())
	testutil.AssertEqual(t, got["status"], engine.Ongoing.String())
	testutil.AssertEqual(t, len(got["legalMoves"].([]interface{})), 20)
}

func TestNewGameWriter(t *testing.T) {
	cfg := config.NewConfig()
	if _, ok := NewGameWriter(&bytes.Buffer{}, cfg).(*TextWriter); !ok {
		t.Error("default writer should be text")
	}
	cfg.Output.JSONFormat = true
	if _, ok := NewGameWriter(&bytes.Buffer{}, cfg).(*JSONWriter); !ok {
		t.Error("JSON config should give a JSON writer")
	}
}
