// Package worker provides a worker pool that evaluates root moves in parallel.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
)

// ErrStopped marks items that were drained after Stop without being evaluated.
var ErrStopped = errors.New("worker pool stopped")

// WorkItem is one root move to evaluate. State is a private clone owned by
// the worker that receives the item, positioned before Move is played.
type WorkItem struct {
	Index int // Position of Move in the root move list
	Move  chess.Move
	State *engine.GameState
}

// ProcessResult is the evaluation of one root move.
type ProcessResult struct {
	Index int
	Move  chess.Move
	Score int
	Nodes int
	Err   error
}

// ProcessFunc evaluates a work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool fans work items out to a fixed set of goroutines.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32 // Atomic flag for early termination
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool around processFunc.
// Default: 1 worker, buffer size of 32 (enough for a typical root).
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  32,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes items until the work channel is closed. After Stop,
// remaining items are drained and reported as skipped.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			p.resultChan <- ProcessResult{Index: item.Index, Move: item.Move, Err: ErrStopped}
			continue
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit submits a work item for processing.
// This may block if the work channel buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop signals workers to skip items they have not started.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish,
// then closes the result channel.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
