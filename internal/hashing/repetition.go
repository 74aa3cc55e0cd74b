package hashing

import "github.com/lgbarn/chess-engine-go/internal/engine"

// RepetitionTracker counts how often each position has occurred in a game.
type RepetitionTracker struct {
	counts map[uint64]int
	// history lists keys in the order recorded so the last one can be dropped.
	history []uint64
	// maxCount is the highest count any position has reached.
	maxCount int
}

// NewRepetitionTracker creates an empty tracker.
func NewRepetitionTracker() *RepetitionTracker {
	return &RepetitionTracker{counts: make(map[uint64]int)}
}

// Record adds the current position of g and returns how many times it has
// now occurred.
func (t *RepetitionTracker) Record(g *engine.GameState) int {
	key := Key(g)
	t.counts[key]++
	t.history = append(t.history, key)
	if t.counts[key] > t.maxCount {
		t.maxCount = t.counts[key]
	}
	return t.counts[key]
}

// Unrecord removes the most recently recorded position, for callers that
// take a move back. It returns false if nothing is recorded.
func (t *RepetitionTracker) Unrecord() bool {
	n := len(t.history)
	if n == 0 {
		return false
	}
	key := t.history[n-1]
	t.history = t.history[:n-1]
	if t.counts[key]--; t.counts[key] == 0 {
		delete(t.counts, key)
	}
	t.maxCount = 0
	for _, c := range t.counts {
		if c > t.maxCount {
			t.maxCount = c
		}
	}
	return true
}

// Count returns how many times the current position of g has been recorded.
func (t *RepetitionTracker) Count(g *engine.GameState) int {
	return t.counts[Key(g)]
}

// MaxCount returns the highest occurrence count of any position.
func (t *RepetitionTracker) MaxCount() int {
	return t.maxCount
}

// UniqueCount returns the number of distinct positions recorded.
func (t *RepetitionTracker) UniqueCount() int {
	return len(t.counts)
}

// Reset clears the tracker.
func (t *RepetitionTracker) Reset() {
	t.counts = make(map[uint64]int)
	t.history = nil
	t.maxCount = 0
}
