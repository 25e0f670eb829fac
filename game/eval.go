package game

// Window scores, from the perspective of the evaluated piece.
const (
	ScoreOwnRun        = 100
	ScoreOpponentRun   = -80
	ScoreOwnThreat     = 5
	ScoreOwnTwo        = 2
	ScoreOppThreat     = -5
	ScoreCenterPerCell = 3
)

// EvaluateWindow scores a single window of k cells for piece. The window length
// is taken as k.
func EvaluateWindow(window []Piece, piece Piece) int {
	k := len(window)
	own := countOf(window, piece)
	opp := countOf(window, piece.Opponent())
	empty := countOf(window, Empty)

	switch {
	case own == k:
		return ScoreOwnRun
	case opp == k:
		return ScoreOpponentRun
	case own == k-1 && empty == 1:
		return ScoreOwnThreat
	case own == k-2 && empty == 2:
		return ScoreOwnTwo
	case opp == k-1 && empty == 1:
		return ScoreOppThreat
	}
	return 0
}

// ScorePosition sums EvaluateWindow over every window on the board and adds a
// bias for pieces in the middle column (cols/2).
func ScorePosition(b *Board, piece Piece) int {
	score := 0

	// Score center column
	center := b.cols / 2
	for row := 0; row < b.rows; row++ {
		if b.At(row, center) == piece {
			score += ScoreCenterPerCell
		}
	}

	for window := range b.Windows() {
		score += EvaluateWindow(window, piece)
	}
	return score
}
