package output

import (
	"io"

	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/match"
)

// GameWriter is the interface for writing game records.
// Different implementations handle different output formats (text, JSON).
type GameWriter interface {
	// WriteGame writes a single game to the output.
	WriteGame(rec *match.Record) error

	// WriteAnalysis writes a single-position analysis.
	WriteAnalysis(a *Analysis) error

	// Close writes any pending output.
	Close() error
}

// NewGameWriter returns the writer selected by cfg.Output.
func NewGameWriter(w io.Writer, cfg *config.Config) GameWriter {
	if cfg.Output.JSONFormat {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w, cfg.Output.ShowBoard)
}

// TextWriter writes games and analyses as plain text.
type TextWriter struct {
	w         io.Writer
	showBoard bool
	written   int
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, showBoard bool) *TextWriter {
	return &TextWriter{w: w, showBoard: showBoard}
}

// WriteGame writes a game record, separated from the previous one by a blank line.
func (tw *TextWriter) WriteGame(rec *match.Record) error {
	if err := tw.separate(); err != nil {
		return err
	}
	WriteRecord(tw.w, rec, tw.showBoard)
	return nil
}

// WriteAnalysis writes an analysis.
func (tw *TextWriter) WriteAnalysis(a *Analysis) error {
	if err := tw.separate(); err != nil {
		return err
	}
	WriteAnalysis(tw.w, a, tw.showBoard)
	return nil
}

func (tw *TextWriter) separate() error {
	tw.written++
	if tw.written == 1 {
		return nil
	}
	_, err := io.WriteString(tw.w, "\n")
	return err
}

// Close is a no-op; text is written immediately.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes a single game or analysis immediately. Further games are
// buffered and the whole batch is written as a JSON array on Close.
type JSONWriter struct {
	w     io.Writer
	games []*JSONRecord
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WriteGame buffers a game for output on Close.
func (jw *JSONWriter) WriteGame(rec *match.Record) error {
	jw.games = append(jw.games, RecordToJSON(rec))
	return nil
}

// WriteAnalysis writes an analysis object immediately.
func (jw *JSONWriter) WriteAnalysis(a *Analysis) error {
	return encodeJSON(jw.w, AnalysisToJSON(a))
}

// Close writes the buffered games: one object for a single game, an array
// wrapper for several.
func (jw *JSONWriter) Close() error {
	switch len(jw.games) {
	case 0:
		return nil
	case 1:
		err := encodeJSON(jw.w, jw.games[0])
		jw.games = jw.games[:0]
		return err
	}
	err := encodeJSON(jw.w, &JSONOutput{Games: jw.games})
	jw.games = jw.games[:0]
	return err
}
