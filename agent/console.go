package agent

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"connectk/experiments/metrics"
	"connectk/game"
	"connectk/searcher"
)

var ErrNoInput = errors.New("no more input")

type consoleAgent struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewConsoleAgent returns an agent that asks a human for columns, one per
// line. Columns are numbered from 0.
func NewConsoleAgent(in io.Reader, out io.Writer) Agent {
	return &consoleAgent{in: bufio.NewScanner(in), out: out}
}

func (a *consoleAgent) FindMove(b *game.Board, piece game.Piece) (int, metrics.SearchMetric, error) {
	if b.IsTerminal() {
		return searcher.NoColumn, metrics.SearchMetric{}, searcher.ErrNoValidMove
	}

	fmt.Fprintf(a.out, "\n%s", b)
	for {
		fmt.Fprintf(a.out, "%s to move, column [0-%d]: ", piece, b.Cols()-1)
		if !a.in.Scan() {
			if err := a.in.Err(); err != nil {
				return searcher.NoColumn, metrics.SearchMetric{}, fmt.Errorf("failed to read move: %w", err)
			}
			return searcher.NoColumn, metrics.SearchMetric{}, ErrNoInput
		}

		col, err := strconv.Atoi(strings.TrimSpace(a.in.Text()))
		if err != nil {
			fmt.Fprintln(a.out, "not a column number")
			continue
		}
		if !b.IsValidColumn(col) {
			fmt.Fprintf(a.out, "column %d is not playable\n", col)
			continue
		}
		return col, metrics.SearchMetric{Column: col}, nil
	}
}
