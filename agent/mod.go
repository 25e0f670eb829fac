package agent

import (
	"connectk/experiments/metrics"
	"connectk/game"
)

type Agent interface {
	// FindMove returns the column to play for piece and performance metrics (if collected) from the search
	FindMove(b *game.Board, piece game.Piece) (int, metrics.SearchMetric, error)
}
