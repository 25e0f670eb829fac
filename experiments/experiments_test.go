package experiments

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"connectk/experiments/metrics"
	"connectk/game"

	"github.com/stretchr/testify/require"
)

func countRows(t *testing.T, path string) int {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return len(rows) - 1 // Header
}

func TestRunDepthExperiment(t *testing.T) {
	cfg := Config{
		Variant: game.Variant{Name: "small", Rows: 4, Cols: 5, K: 3},
		Games:   2,
		OutDir:  t.TempDir(),
		Seed:    1,
	}

	dir, err := RunDepthExperiment(cfg, []int{1, 2})

	require.NoError(t, err)
	require.Equal(t, 3, countRows(t, filepath.Join(dir, "agent_configs.csv")), "Baseline plus one agent per depth")
	require.Equal(t, 4, countRows(t, filepath.Join(dir, "game_records.csv")), "Two games per matchup")
	require.Positive(t, countRows(t, filepath.Join(dir, "move_records.csv")))
}

func TestRunThroughputExperiment(t *testing.T) {
	cfg := Config{
		Variant: game.Variant{Rows: 4, Cols: 4, K: 3},
		Games:   1,
		OutDir:  t.TempDir(),
	}

	dir, err := RunThroughputExperiment(cfg, 2, []int{1, 2})

	require.NoError(t, err)
	require.Equal(t, 2, countRows(t, filepath.Join(dir, "agent_configs.csv")))
	require.Equal(t, 2, countRows(t, filepath.Join(dir, "game_records.csv")))
}

func TestNewAgent(t *testing.T) {
	t.Run("panics on an unknown kind", func(t *testing.T) {
		require.Panics(t, func() {
			newAgent(metrics.AgentConfig{ID: 9, Kind: "alphazero"}, 1)
		})
	})
}
