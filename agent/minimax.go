package agent

import (
	"connectk/experiments/metrics"
	"connectk/game"
	"connectk/searcher"
)

type minimaxAgent struct {
	searcher *searcher.Searcher
}

// NewMinimaxAgent returns an agent that searches for its moves. The search
// always maximizes for AIPiece, so a board is mirrored when the agent plays
// PlayerPiece.
func NewMinimaxAgent(s *searcher.Searcher) Agent {
	return minimaxAgent{searcher: s}
}

func (a minimaxAgent) FindMove(b *game.Board, piece game.Piece) (int, metrics.SearchMetric, error) {
	if piece == game.PlayerPiece {
		b = b.Swapped()
	}
	result, metric, err := a.searcher.FindMove(b)
	if err != nil {
		return searcher.NoColumn, metric, err
	}
	return result.Column, metric, nil
}
