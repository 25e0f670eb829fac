package agent

import (
	"bytes"
	"strings"
	"testing"

	"connectk/game"
	"connectk/searcher"

	"github.com/stretchr/testify/require"
)

func TestMinimaxAgent(t *testing.T) {
	b, err := game.ParseBoard(4,
		".......",
		".......",
		".......",
		".X.....",
		".X.....",
		".X..OO.",
	)
	require.NoError(t, err)
	a := NewMinimaxAgent(searcher.NewSearcher(searcher.WithDepth(3)))

	t.Run("taking a win as the player", func(t *testing.T) {
		col, _, err := a.FindMove(b, game.PlayerPiece)

		require.NoError(t, err)
		require.Equal(t, 1, col)
	})

	t.Run("blocking as the ai", func(t *testing.T) {
		col, _, err := a.FindMove(b, game.AIPiece)

		require.NoError(t, err)
		require.Equal(t, 1, col, "Every other column loses next ply")
	})

	t.Run("propagating search errors", func(t *testing.T) {
		won := b.Clone()
		_, err := won.Drop(1, game.PlayerPiece)
		require.NoError(t, err)

		col, _, err := a.FindMove(won, game.AIPiece)

		require.ErrorIs(t, err, searcher.ErrNoValidMove)
		require.Equal(t, searcher.NoColumn, col)
	})
}

func TestRandomAgent(t *testing.T) {
	t.Run("playing open columns only", func(t *testing.T) {
		b, err := game.ParseBoard(4,
			"X.O.X.O",
			"O.X.O.X",
			"X.O.X.O",
			"O.X.O.X",
			"X.O.X.O",
			"O.X.O.X",
		)
		require.NoError(t, err)
		a := NewRandomAgent(1)

		for i := 0; i < 50; i++ {
			col, _, err := a.FindMove(b, game.AIPiece)
			require.NoError(t, err)
			require.Contains(t, []int{1, 3, 5}, col)
		}
	})

	t.Run("same seed, same moves", func(t *testing.T) {
		b := game.NewBoard(6, 7, 4)
		a1 := NewRandomAgent(99)
		a2 := NewRandomAgent(99)

		for i := 0; i < 10; i++ {
			col1, _, err := a1.FindMove(b, game.PlayerPiece)
			require.NoError(t, err)
			col2, _, err := a2.FindMove(b, game.PlayerPiece)
			require.NoError(t, err)
			require.Equal(t, col1, col2)
		}
	})
}

func TestConsoleAgent(t *testing.T) {
	t.Run("reprompting until a playable column", func(t *testing.T) {
		b, err := game.ParseBoard(2,
			"X..",
			"O..",
		)
		require.NoError(t, err)
		var out bytes.Buffer
		a := NewConsoleAgent(strings.NewReader("left\n0\n9\n 2 \n"), &out)

		col, _, err := a.FindMove(b, game.PlayerPiece)

		require.NoError(t, err)
		require.Equal(t, 2, col)
		require.Contains(t, out.String(), "not a column number")
		require.Contains(t, out.String(), "column 0 is not playable")
		require.Contains(t, out.String(), "column 9 is not playable")
	})

	t.Run("running out of input", func(t *testing.T) {
		var out bytes.Buffer
		a := NewConsoleAgent(strings.NewReader(""), &out)

		_, _, err := a.FindMove(game.NewBoard(6, 7, 4), game.PlayerPiece)

		require.ErrorIs(t, err, ErrNoInput)
	})
}
