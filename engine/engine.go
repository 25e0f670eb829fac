package engine

import (
	"errors"

	"connectk/experiments/metrics"
	"connectk/game"
)

var ErrGameOver = errors.New("game is over - no moves allowed")

type Status int

const (
	PlayerTurn Status = iota
	AITurn
	PlayerWin
	AIWin
	Draw
)

func (s Status) Over() bool {
	return s == PlayerWin || s == AIWin || s == Draw
}

func (s Status) String() string {
	switch s {
	case PlayerTurn:
		return "player turn"
	case AITurn:
		return "ai turn"
	case PlayerWin:
		return "player win"
	case AIWin:
		return "ai win"
	case Draw:
		return "draw"
	}
	return "unknown"
}

type Runner interface {
	// Run plays a game till there's a winner, a draw or a max number of turns is reached
	Run() (winner game.Piece, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
