package searcher

import (
	"connectk/game"
)

type Option func(s *Searcher)

func WithDepth(depth int) Option {
	return func(s *Searcher) {
		if depth >= 0 {
			s.depth = depth
		}
	}
}

// WithGoroutines searches the root's columns on up to n goroutines.
func WithGoroutines(n int) Option {
	return func(s *Searcher) {
		if n > 0 {
			s.goroutines = n
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *Searcher) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

// WithoutPruning disables alpha-beta cutoffs, yielding a plain minimax.
func WithoutPruning() Option {
	return func(s *Searcher) {
		s.pruning = false
	}
}

// WithCenterFirst tries columns closest to the middle first.
func WithCenterFirst() Option {
	return func(s *Searcher) {
		s.centerFirst = true
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.collect = true
	}
}
