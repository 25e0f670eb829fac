package searcher

import (
	"errors"

	"connectk/game"
)

// Terminal scores. Heuristic scores stay far below WinScore in magnitude, so
// any decided game outranks any undecided one.
const (
	WinScore  = 1 << 40
	LossScore = -WinScore
	DrawScore = 0
)

// NoColumn is the column of a leaf result.
const NoColumn = -1

var (
	ErrNoValidMove  = errors.New("no valid move: board is terminal")
	ErrInvalidDepth = errors.New("invalid search depth")
)

// Result pairs a column with its minimax score.
type Result struct {
	Column int
	Score  int
}

// terminalScore scores a decided board from the AI's point of view.
func terminalScore(b *game.Board) (int, bool) {
	switch {
	case b.WinningMove(game.AIPiece):
		return WinScore, true
	case b.WinningMove(game.PlayerPiece):
		return LossScore, true
	case len(b.ValidColumns()) == 0:
		return DrawScore, true
	}
	return 0, false
}
