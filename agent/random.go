package agent

import (
	"sync"

	"connectk/experiments/metrics"
	"connectk/game"
	"connectk/searcher"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomAgent returns an agent that plays a uniformly random open column.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(b *game.Board, piece game.Piece) (int, metrics.SearchMetric, error) {
	if b.IsTerminal() {
		return searcher.NoColumn, metrics.SearchMetric{}, searcher.ErrNoValidMove
	}
	columns := b.ValidColumns()

	a.mu.Lock()
	col := columns[a.rng.Intn(len(columns))]
	a.mu.Unlock()

	return col, metrics.SearchMetric{Column: col}, nil
}
