package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
)

// Analysis is what the CLI reports about a single position.
type Analysis struct {
	FEN     string
	ToMove  chess.Colour
	Status  engine.Status
	InCheck bool
	Legal   []chess.Move
	Board   chess.Board

	Mode   string
	Depth  int  // Zero for modes that do not search
	Best   chess.Move
	Found  bool // False when there is no legal move
	Score  int
	Scored bool // Score is meaningful only for searching modes
	Nodes  int
}

// WriteAnalysis writes a plain-text analysis.
func WriteAnalysis(w io.Writer, a *Analysis, showBoard bool) {
	if showBoard {
		WriteBoard(w, &a.Board)
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "FEN: %s\n", a.FEN)
	fmt.Fprintf(w, "To move: %s\n", colorName(a.ToMove))
	fmt.Fprintf(w, "Status: %s", a.Status)
	if a.InCheck && a.Status == engine.Ongoing {
		fmt.Fprint(w, " (check)")
	}
	fmt.Fprintln(w)

	ow := NewOutputWriter(w, DefaultLineLength)
	ow.Write(fmt.Sprintf("Legal moves (%d):", len(a.Legal)))
	for _, m := range a.Legal {
		ow.Write(m.String())
	}
	ow.NewLine()

	if !a.Found {
		fmt.Fprintln(w, "Best move: none")
		return
	}
	if a.Scored {
		fmt.Fprintf(w, "Best move: %s (%s depth %d, score %d, %d nodes)\n", a.Best, a.Mode, a.Depth, a.Score, a.Nodes)
		return
	}
	fmt.Fprintf(w, "Best move: %s (%s)\n", a.Best, a.Mode)
}
