package game

import "iter"

type direction struct {
	dRow, dCol int
}

// Scan directions: horizontal, vertical, ascending and descending diagonals.
var directions = [...]direction{
	{dRow: 0, dCol: 1},
	{dRow: 1, dCol: 0},
	{dRow: 1, dCol: 1},
	{dRow: -1, dCol: 1},
}

// starts returns the half-open range of start indices along an axis of size n
// such that a run of k cells stepping by d stays on the board.
func starts(n, d, k int) (lo, hi int) {
	switch {
	case d > 0:
		return 0, n - k + 1
	case d < 0:
		return k - 1, n
	default:
		return 0, n
	}
}

// Windows yields every run of k contiguous cells along the four scan
// directions. The yielded slice is reused and only valid during the yield.
func (b *Board) Windows() iter.Seq[[]Piece] {
	return func(yield func([]Piece) bool) {
		window := make([]Piece, b.k)
		for _, d := range directions {
			rowLo, rowHi := starts(b.rows, d.dRow, b.k)
			colLo, colHi := starts(b.cols, d.dCol, b.k)
			for row := rowLo; row < rowHi; row++ {
				for col := colLo; col < colHi; col++ {
					for i := range window {
						window[i] = b.cells[(row+i*d.dRow)*b.cols+col+i*d.dCol]
					}
					if !yield(window) {
						return
					}
				}
			}
		}
	}
}

// WinningMove reports whether piece owns k consecutive cells in any direction.
func (b *Board) WinningMove(piece Piece) bool {
	if piece == Empty {
		return false
	}
	for window := range b.Windows() {
		if countOf(window, piece) == len(window) {
			return true
		}
	}
	return false
}

// Winner returns the piece that has won, or Empty.
func (b *Board) Winner() Piece {
	if b.WinningMove(PlayerPiece) {
		return PlayerPiece
	}
	if b.WinningMove(AIPiece) {
		return AIPiece
	}
	return Empty
}

// IsTerminal reports whether the game is over: a win for either piece or a
// board with no open column.
func (b *Board) IsTerminal() bool {
	return b.WinningMove(PlayerPiece) || b.WinningMove(AIPiece) || len(b.ValidColumns()) == 0
}

func countOf(window []Piece, piece Piece) int {
	n := 0
	for _, p := range window {
		if p == piece {
			n++
		}
	}
	return n
}
