package searcher

import (
	"fmt"
	"math"

	"connectk/experiments/metrics"
	"connectk/game"
	"connectk/meta"

	"github.com/rs/zerolog/log"
)

// Searcher picks the AI's column with a depth-bounded minimax search. Boards
// passed in are only read; every explored move is played on a copy.
type Searcher struct {
	depth       int
	goroutines  int
	evaluate    game.Evaluate
	pruning     bool
	centerFirst bool
	collect     bool
}

func NewSearcher(options ...Option) *Searcher {
	s := &Searcher{ // Default values
		depth:      meta.DefaultDepth,
		goroutines: meta.Goroutines,
		evaluate:   game.ScorePosition,
		pruning:    true,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Searcher) Depth() int {
	return s.depth
}

func (s *Searcher) Goroutines() int {
	return s.goroutines
}

// FindMove chooses a column for AIPiece at the configured depth.
func (s *Searcher) FindMove(b *game.Board) (Result, metrics.SearchMetric, error) {
	return s.ChooseMove(b, s.depth)
}

// ChooseMove chooses a column for AIPiece searching depth plies ahead. It
// fails with ErrNoValidMove on a terminal board. At depth 0 the result holds
// the board's heuristic score and the first column in search order.
func (s *Searcher) ChooseMove(b *game.Board, depth int) (Result, metrics.SearchMetric, error) {
	if depth < 0 {
		return Result{Column: NoColumn}, metrics.SearchMetric{}, fmt.Errorf("%w: %d", ErrInvalidDepth, depth)
	}
	if b.IsTerminal() {
		return Result{Column: NoColumn}, metrics.SearchMetric{}, ErrNoValidMove
	}

	collector := metrics.NewDummyCollector()
	if s.collect {
		collector = metrics.NewCollector()
	}
	sr := &search{
		evaluate: s.evaluate,
		pruning:  s.pruning,
		order:    ascending,
		metrics:  collector,
	}
	if s.centerFirst {
		sr.order = centerOut(b.Cols())
	}

	collector.Start(s.goroutines, depth)
	var result Result
	if s.goroutines > 1 && depth > 0 {
		result = sr.root(b, depth, s.goroutines)
	} else {
		result = sr.minimax(b, depth, math.MinInt, math.MaxInt, true)
	}
	if result.Column == NoColumn {
		result.Column = sr.order(b.ValidColumns())[0]
	}
	metric := collector.Complete(result.Column, result.Score)

	log.Debug().
		Int("depth", depth).
		Int("column", result.Column).
		Int("score", result.Score).
		Int("nodes", metric.Nodes).
		Dur("duration", metric.Duration).
		Msg("search complete")

	return result, metric, nil
}
