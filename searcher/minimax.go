package searcher

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"sync"

	"connectk/experiments/metrics"
	"connectk/game"
)

// Minimax searches b to the given depth with alpha-beta pruning, the default
// heuristic and ascending column order. The AI is the maximizing side.
// Leaf results carry NoColumn.
func Minimax(b *game.Board, depth, alpha, beta int, maximizing bool) Result {
	s := search{
		evaluate: game.ScorePosition,
		pruning:  true,
		order:    ascending,
		metrics:  metrics.NewDummyCollector(),
	}
	return s.minimax(b, depth, alpha, beta, maximizing)
}

type search struct {
	evaluate game.Evaluate
	pruning  bool
	order    func(columns []int) []int
	metrics  metrics.Collector
}

func (s *search) minimax(b *game.Board, depth, alpha, beta int, maximizing bool) Result {
	s.metrics.AddNode()

	if score, ok := terminalScore(b); ok {
		s.metrics.AddLeaf()
		return Result{Column: NoColumn, Score: score}
	}
	if depth <= 0 {
		s.metrics.AddLeaf()
		return Result{Column: NoColumn, Score: s.evaluate(b, game.AIPiece)}
	}

	columns := s.order(b.ValidColumns())
	piece := game.PlayerPiece
	best := Result{Column: columns[0], Score: math.MaxInt}
	if maximizing {
		piece = game.AIPiece
		best.Score = math.MinInt
	}

	for i, col := range columns {
		score := s.minimax(play(b, col, piece), depth-1, alpha, beta, !maximizing).Score

		if maximizing {
			if score > best.Score {
				best = Result{Column: col, Score: score}
			}
			alpha = max(alpha, best.Score)
		} else {
			if score < best.Score {
				best = Result{Column: col, Score: score}
			}
			beta = min(beta, best.Score)
		}

		if s.pruning && alpha >= beta {
			if i < len(columns)-1 {
				s.metrics.AddCutoff()
			}
			break
		}
	}
	return best
}

// root evaluates each column of b on its own goroutine-owned clone with a full
// window, then folds the scores in column order. The result equals the
// sequential search.
func (s *search) root(b *game.Board, depth, goroutines int) Result {
	s.metrics.AddNode()

	columns := s.order(b.ValidColumns())
	scores := make([]int, len(columns))

	task := make(chan int, len(columns))
	for i := range columns {
		task <- i
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < min(goroutines, len(columns)); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := range task {
				child := play(b, columns[i], game.AIPiece)
				scores[i] = s.minimax(child, depth-1, math.MinInt, math.MaxInt, false).Score
			}
		}()
	}
	wg.Wait()

	best := Result{Column: columns[0], Score: math.MinInt}
	for i, col := range columns {
		if scores[i] > best.Score {
			best = Result{Column: col, Score: scores[i]}
		}
	}
	return best
}

// play returns a copy of b with piece dropped in col.
func play(b *game.Board, col int, piece game.Piece) *game.Board {
	child := b.Clone()
	if _, err := child.Drop(col, piece); err != nil {
		panic(fmt.Sprintf("searched an invalid column: %v", err))
	}
	return child
}

func ascending(columns []int) []int {
	return columns
}

func centerOut(cols int) func(columns []int) []int {
	center := cols / 2
	distance := func(col int) int {
		if col < center {
			return center - col
		}
		return col - center
	}
	return func(columns []int) []int {
		slices.SortStableFunc(columns, func(a, b int) int {
			return cmp.Compare(distance(a), distance(b))
		})
		return columns
	}
}
