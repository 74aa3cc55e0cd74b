package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/match"
)

// JSONRecord represents a game in JSON format.
type JSONRecord struct {
	White       string     `json:"white"`
	Black       string     `json:"black"`
	InitialFEN  string     `json:"initialFEN"`
	Moves       []JSONMove `json:"moves"`
	Result      string     `json:"result"`
	Termination string     `json:"termination"`
	PlyCount    int        `json:"plyCount"`
	FinalFEN    string     `json:"finalFEN"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber"`
	Color      string `json:"color"` // "white" or "black"
	UCI        string `json:"uci"`
	From       string `json:"from"`
	To         string `json:"to"`
	Piece      string `json:"piece"`
	Captured   string `json:"captured,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
	Castle     string `json:"castle,omitempty"`
	FEN        string `json:"fen"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONRecord `json:"games"`
}

// RecordToJSON converts a game record to JSON form.
func RecordToJSON(rec *match.Record) *JSONRecord {
	jr := &JSONRecord{
		White:       rec.White,
		Black:       rec.Black,
		InitialFEN:  rec.StartFEN,
		Moves:       make([]JSONMove, 0, len(rec.Moves)),
		Result:      rec.Result,
		Termination: rec.Termination.String(),
		PlyCount:    len(rec.Moves),
		FinalFEN:    rec.FinalFEN,
	}
	for i, p := range rec.Moves {
		jr.Moves = append(jr.Moves, convertMove(p, fullmoveOf(rec, i)))
	}
	return jr
}

func convertMove(p match.PlyRecord, moveNum int) JSONMove {
	m := p.Move
	jm := JSONMove{
		MoveNumber: moveNum,
		Color:      colorName(p.Colour),
		UCI:        m.String(),
		From:       m.From.String(),
		To:         m.To.String(),
		Piece:      pieceName(m.Moved.Kind()),
		FEN:        p.FEN,
	}
	if m.IsCapture() {
		jm.Captured = pieceName(m.Captured.Kind())
	}
	if m.IsPromotion() {
		jm.Promotion = pieceName(chess.Queen)
	}
	if m.IsCastle() {
		jm.Castle = m.Class.String()
	}
	return jm
}

// JSONAnalysis represents a single-position analysis in JSON format.
type JSONAnalysis struct {
	FEN        string   `json:"fen"`
	ToMove     string   `json:"toMove"`
	Status     string   `json:"status"`
	InCheck    bool     `json:"inCheck"`
	LegalMoves []string `json:"legalMoves"`
	Mode       string   `json:"mode"`
	Depth      int      `json:"depth,omitempty"`
	BestMove   string   `json:"bestMove,omitempty"`
	Score      *int     `json:"score,omitempty"`
	Nodes      int      `json:"nodes,omitempty"`
}

// AnalysisToJSON converts an analysis to JSON form.
func AnalysisToJSON(a *Analysis) *JSONAnalysis {
	ja := &JSONAnalysis{
		FEN:        a.FEN,
		ToMove:     colorName(a.ToMove),
		Status:     a.Status.String(),
		InCheck:    a.InCheck,
		LegalMoves: moveTexts(a.Legal),
		Mode:       a.Mode,
		Depth:      a.Depth,
		Nodes:      a.Nodes,
	}
	if a.Found {
		ja.BestMove = a.Best.String()
		if a.Scored {
			score := a.Score
			ja.Score = &score
		}
	}
	return ja
}

// encodeJSON writes v with two-space indentation.
func encodeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// colorName returns "white" or "black".
func colorName(c chess.Colour) string {
	return strings.ToLower(c.String())
}

// pieceName returns the lowercase kind name, or "" for NoKind.
func pieceName(k chess.Kind) string {
	if k == chess.NoKind || k >= chess.NumKinds {
		return ""
	}
	return strings.ToLower(k.String())
}

func moveTexts(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}
