package search

import (
	"context"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/worker"
)

// searchParallel evaluates each root move on its own clone of g and merges
// the scores by root index, so the pick matches the sequential search.
func (s *Searcher) searchParallel(ctx context.Context, g *engine.GameState, legal []chess.Move) (Result, error) {
	pool := worker.NewPool(s.evaluateRoot,
		worker.WithWorkers(s.workers),
		worker.WithBufferSize(len(legal)))
	pool.Start()

	go func() {
		for i, m := range legal {
			pool.Submit(worker.WorkItem{Index: i, Move: m, State: g.Clone()})
		}
		pool.Close()
	}()

	stop := context.AfterFunc(ctx, pool.Stop)
	defer stop()

	scores := make([]int, len(legal))
	nodes := 1
	var firstErr error
	for r := range pool.Results() {
		if r.Err != nil {
			if firstErr == nil {
				firstErr = r.Err
			}
			continue
		}
		scores[r.Index] = r.Score
		nodes += r.Nodes
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if firstErr != nil {
		return Result{}, firstErr
	}
	return pickRoot(legal, scores, g.WhiteToMove(), nodes), nil
}

// evaluateRoot is the worker body: play the root move on the private clone
// and search the reply tree.
func (s *Searcher) evaluateRoot(item worker.WorkItem) worker.ProcessResult {
	st := item.State
	nodes := 0
	st.MakeMoveUnchecked(item.Move)
	score := s.minimax(st, st.ValidMoves(), s.depth-1, &nodes, nil)
	st.UndoMove()
	return worker.ProcessResult{Index: item.Index, Move: item.Move, Score: score, Nodes: nodes}
}
