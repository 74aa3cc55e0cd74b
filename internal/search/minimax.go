package search

import (
	"context"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
)

// Result is the outcome of a search.
type Result struct {
	Move  chess.Move
	Score int
	Nodes int  // Positions visited, root included
	Found bool // False when the root had no legal moves
}

// Searcher runs fixed-depth minimax. The zero value is not usable; call New.
// A Searcher holds only settings and may be shared between goroutines.
type Searcher struct {
	depth   int
	workers int
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithDepth sets the search depth in plies. Values below 1 are ignored.
func WithDepth(depth int) Option {
	return func(s *Searcher) {
		if depth >= 1 {
			s.depth = depth
		}
	}
}

// WithWorkers splits the root moves across n goroutines, each searching its
// own clone of the state. Values below 2 keep the search sequential.
func WithWorkers(n int) Option {
	return func(s *Searcher) {
		if n >= 1 {
			s.workers = n
		}
	}
}

// New creates a Searcher with DefaultDepth and a single worker.
func New(opts ...Option) *Searcher {
	s := &Searcher{depth: DefaultDepth, workers: 1}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Depth returns the configured depth.
func (s *Searcher) Depth() int {
	return s.depth
}

// FindBestMove searches the position to DefaultDepth. legal must be the
// current result of g.ValidMoves(). It reports false if legal is empty.
func FindBestMove(g *engine.GameState, legal []chess.Move) (chess.Move, bool) {
	res, _ := New().Search(context.Background(), g, legal)
	return res.Move, res.Found
}

// Search picks the move for the side to move among legal. White maximises
// and black minimises; among equal scores the earliest move in legal wins.
// The state is returned to the position it was given in. An error is
// returned only if ctx is cancelled before the search completes.
func (s *Searcher) Search(ctx context.Context, g *engine.GameState, legal []chess.Move) (Result, error) {
	if len(legal) == 0 {
		return Result{Score: terminalScore(g), Nodes: 1}, nil
	}
	if s.workers > 1 && len(legal) > 1 {
		return s.searchParallel(ctx, g, legal)
	}

	maximizing := g.WhiteToMove()
	if status := g.Status(); status != engine.StatusUnknown {
		// Undo clears the terminal flags the caller had computed.
		defer g.ValidMoves()
	}
	scores := make([]int, len(legal))
	nodes := 1
	for i, m := range legal {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		g.MakeMoveUnchecked(m)
		scores[i] = s.minimax(g, g.ValidMoves(), s.depth-1, &nodes, nil)
		g.UndoMove()
	}
	return pickRoot(legal, scores, maximizing, nodes), nil
}

// minimax returns the score of the position in g, where legal is its
// legal-move list. When tree is non-nil the explored nodes are recorded
// under it.
func (s *Searcher) minimax(g *engine.GameState, legal []chess.Move, depth int, nodes *int, tree *treeNode) int {
	*nodes++
	var score int
	switch {
	case len(legal) == 0:
		score = terminalScore(g)
	case depth <= 0:
		board := g.Board()
		score = ScoreMaterial(&board)
	default:
		maximizing := g.WhiteToMove()
		bestIdx := -1
		for i, m := range legal {
			var child *treeNode
			if tree != nil {
				child = &treeNode{move: m, best: -1}
				tree.children = append(tree.children, child)
			}
			g.MakeMoveUnchecked(m)
			v := s.minimax(g, g.ValidMoves(), depth-1, nodes, child)
			g.UndoMove()
			if bestIdx < 0 || better(maximizing, v, score) {
				bestIdx, score = i, v
			}
		}
		if tree != nil {
			tree.best = bestIdx
		}
	}
	if tree != nil {
		tree.score = score
	}
	return score
}

// better reports whether v strictly improves on best for the side.
func better(maximizing bool, v, best int) bool {
	if maximizing {
		return v > best
	}
	return v < best
}

// pickRoot applies the first-or-strictly-better rule over root scores.
func pickRoot(legal []chess.Move, scores []int, maximizing bool, nodes int) Result {
	bestIdx := 0
	for i := 1; i < len(scores); i++ {
		if better(maximizing, scores[i], scores[bestIdx]) {
			bestIdx = i
		}
	}
	return Result{Move: legal[bestIdx], Score: scores[bestIdx], Nodes: nodes, Found: true}
}
