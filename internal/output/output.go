// Package output renders game records, analyses and board diagrams.
package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/match"
)

// DefaultLineLength is the movetext wrap column.
const DefaultLineLength = 80

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = DefaultLineLength
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a token, separated from the previous one by a space or a
// line break when the line would overflow.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine ends the current line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// WriteBoard draws the board with rank numbers down the left and files
// along the bottom. Empty squares are dots; pieces use FEN letters.
func WriteBoard(w io.Writer, board *chess.Board) {
	for row := 0; row < chess.BoardSize; row++ {
		line := make([]byte, 0, 2*chess.BoardSize+2)
		line = append(line, byte('8'-row), ' ')
		for col := 0; col < chess.BoardSize; col++ {
			p := board.Squares[row][col]
			c := byte('.')
			if p != chess.Empty {
				c = p.FENLetter()
			}
			line = append(line, c)
			if col < chess.BoardSize-1 {
				line = append(line, ' ')
			}
		}
		fmt.Fprintf(w, "%s\n", line)
	}
	fmt.Fprintln(w, "  a b c d e f g h")
}

// WriteMovetext writes numbered moves ("1. e2e4 e7e5 2. g1f3"), wrapped at
// maxLineLength, followed by the result. A game that starts with black to
// move opens with "N...".
func WriteMovetext(w io.Writer, rec *match.Record, maxLineLength int) {
	ow := NewOutputWriter(w, maxLineLength)
	for i, p := range rec.Moves {
		moveNum := fullmoveOf(rec, i)
		if p.Colour == chess.White {
			ow.Write(fmt.Sprintf("%d.", moveNum))
		} else if i == 0 {
			ow.Write(fmt.Sprintf("%d...", moveNum))
		}
		ow.Write(p.Move.String())
	}
	ow.Write(rec.Result)
	ow.NewLine()
}

// WriteRecord writes a plain-text game record.
func WriteRecord(w io.Writer, rec *match.Record, showBoard bool) {
	fmt.Fprintf(w, "White: %s\n", rec.White)
	fmt.Fprintf(w, "Black: %s\n", rec.Black)
	fmt.Fprintf(w, "Start: %s\n", rec.StartFEN)
	fmt.Fprintln(w)
	WriteMovetext(w, rec, DefaultLineLength)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Result: %s (%s)\n", rec.Result, rec.Termination)
	fmt.Fprintf(w, "Final: %s\n", rec.FinalFEN)
	if showBoard {
		fmt.Fprintln(w)
		WriteBoard(w, &rec.Board)
	}
}

// fullmoveOf returns the move number of the i-th recorded ply.
func fullmoveOf(rec *match.Record, i int) int {
	start, blackFirst := startOf(rec.StartFEN)
	if blackFirst {
		i++
	}
	return start + i/2
}

// startOf reads the fullmove number and side to move of a FEN, falling back
// to move 1 with white to move.
func startOf(fen string) (int, bool) {
	fields := strings.Fields(fen)
	if len(fields) < 6 {
		return 1, false
	}
	n, err := strconv.Atoi(fields[5])
	if err != nil || n < 1 {
		n = 1
	}
	return n, fields[1] == "b"
}
