package searcher

import (
	"math"
	"testing"

	"connectk/game"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func mustParse(t *testing.T, k int, rows ...string) *game.Board {
	t.Helper()
	b, err := game.ParseBoard(k, rows...)
	require.NoError(t, err)
	return b
}

// exhaustive is a plain minimax without pruning, written independently of the
// search type. Ties keep the earlier column.
func exhaustive(b *game.Board, depth int, maximizing bool) Result {
	if score, ok := terminalScore(b); ok {
		return Result{Column: NoColumn, Score: score}
	}
	if depth == 0 {
		return Result{Column: NoColumn, Score: game.ScorePosition(b, game.AIPiece)}
	}
	piece := game.PlayerPiece
	if maximizing {
		piece = game.AIPiece
	}
	var best Result
	for i, col := range b.ValidColumns() {
		child := b.Clone()
		_, err := child.Drop(col, piece)
		if err != nil {
			panic(err)
		}
		score := exhaustive(child, depth-1, !maximizing).Score
		if i == 0 || (maximizing && score > best.Score) || (!maximizing && score < best.Score) {
			best = Result{Column: col, Score: score}
		}
	}
	return best
}

// reachable collects every distinct non-terminal position reachable from b in
// at most plies moves, with PlayerPiece moving first.
func reachable(b *game.Board, plies int) []*game.Board {
	seen := map[string]bool{}
	var out []*game.Board
	var walk func(b *game.Board, plies int, piece game.Piece)
	walk = func(b *game.Board, plies int, piece game.Piece) {
		if b.IsTerminal() || seen[b.String()] {
			return
		}
		seen[b.String()] = true
		out = append(out, b)
		if plies == 0 {
			return
		}
		for _, col := range b.ValidColumns() {
			walk(play(b, col, piece), plies-1, piece.Opponent())
		}
	}
	walk(b, plies, game.PlayerPiece)
	return out
}

// randomPosition plays random moves from an empty board and returns the last
// non-terminal position.
func randomPosition(r *rand.Rand, v game.Variant, moves int) *game.Board {
	b := game.NewBoard(v.Rows, v.Cols, v.K)
	piece := game.PlayerPiece
	for i := 0; i < moves; i++ {
		cols := b.ValidColumns()
		next := play(b, cols[r.Intn(len(cols))], piece)
		if next.IsTerminal() {
			break
		}
		b = next
		piece = piece.Opponent()
	}
	return b
}

func TestMinimaxLeaf(t *testing.T) {
	t.Run("depth zero returns the heuristic score", func(t *testing.T) {
		r := rand.New(rand.NewSource(11))
		for i := 0; i < 50; i++ {
			b := randomPosition(r, game.Connect4, r.Intn(30))

			got := Minimax(b, 0, math.MinInt, math.MaxInt, true)

			require.Equal(t, game.ScorePosition(b, game.AIPiece), got.Score)
			require.Equal(t, NoColumn, got.Column, "Leaf results carry no column")
		}
	})

	t.Run("full board without a winner scores zero", func(t *testing.T) {
		b := mustParse(t, 4,
			"XXOOXXO",
			"OOXXOOX",
			"XXOOXXO",
			"OOXXOOX",
			"XXOOXXO",
			"OOXXOOX",
		)

		for _, depth := range []int{0, 1, 5} {
			got := Minimax(b, depth, math.MinInt, math.MaxInt, true)
			require.Equal(t, DrawScore, got.Score)
		}
	})

	t.Run("won boards score as terminal", func(t *testing.T) {
		aiWin := mustParse(t, 3,
			"...",
			"O..",
			"OX.",
			"OX.",
		)
		playerWin := aiWin.Swapped()

		require.Equal(t, WinScore, Minimax(aiWin, 3, math.MinInt, math.MaxInt, false).Score)
		require.Equal(t, LossScore, Minimax(playerWin, 3, math.MinInt, math.MaxInt, true).Score)
	})
}

func TestMinimaxImmediateWin(t *testing.T) {
	b := mustParse(t, 4,
		".......",
		".......",
		".......",
		".....O.",
		".....O.",
		"XX...O.",
	)

	for depth := 1; depth <= 4; depth++ {
		got := Minimax(b, depth, math.MinInt, math.MaxInt, true)

		require.Equal(t, Result{Column: 5, Score: WinScore}, got, "Depth %d", depth)
	}

	t.Run("for the minimizing player", func(t *testing.T) {
		mirrored := b.Swapped()

		for depth := 1; depth <= 4; depth++ {
			got := Minimax(mirrored, depth, math.MinInt, math.MaxInt, false)

			require.Equal(t, Result{Column: 5, Score: LossScore}, got, "Depth %d", depth)
		}
	})
}

func TestMinimaxBlocksThreat(t *testing.T) {
	b := mustParse(t, 4,
		".......",
		".......",
		".......",
		".......",
		".......",
		"XXX..OO",
	)

	got := Minimax(b, 2, math.MinInt, math.MaxInt, true)

	require.Equal(t, 3, got.Column, "Every other column loses next ply")
	require.Greater(t, got.Score, LossScore)
}

func TestMinimaxMatchesExhaustive(t *testing.T) {
	t.Run("every reachable position on a small board", func(t *testing.T) {
		positions := reachable(game.NewBoard(4, 4, 3), 4)
		require.NotEmpty(t, positions)

		for _, b := range positions {
			for depth := 1; depth <= 4; depth++ {
				for _, maximizing := range []bool{true, false} {
					want := exhaustive(b, depth, maximizing)
					got := Minimax(b, depth, math.MinInt, math.MaxInt, maximizing)
					require.Equal(t, want, got, "depth=%d maximizing=%v board:\n%s", depth, maximizing, b)
				}
			}
		}
	})

	t.Run("deeper random positions", func(t *testing.T) {
		r := rand.New(rand.NewSource(5))
		for i := 0; i < 40; i++ {
			b := randomPosition(r, game.Variant{Rows: 4, Cols: 4, K: 3}, 4+r.Intn(8))
			for _, maximizing := range []bool{true, false} {
				want := exhaustive(b, 5, maximizing)
				got := Minimax(b, 5, math.MinInt, math.MaxInt, maximizing)
				require.Equal(t, want, got, "board:\n%s", b)
			}
		}
	})
}

func TestCenterOut(t *testing.T) {
	t.Run("ordering columns from the middle", func(t *testing.T) {
		order := centerOut(7)

		require.Equal(t, []int{3, 2, 4, 1, 5, 0, 6}, order([]int{0, 1, 2, 3, 4, 5, 6}))
		require.Equal(t, []int{4, 0, 6}, order([]int{0, 4, 6}), "Equal distances keep ascending order")
	})

	t.Run("even width", func(t *testing.T) {
		order := centerOut(10)

		require.Equal(t, []int{5, 4, 6, 3, 7}, order([]int{3, 4, 5, 6, 7}))
	})
}
