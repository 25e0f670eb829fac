package experiments

import (
	"connectk/experiments/metrics"
)

// RunThroughputExperiment plays a fixed-depth minimax agent against itself
// for each root fan-out width, so move records show search time per width.
func RunThroughputExperiment(cfg Config, depth int, goroutines []int) (string, error) {
	configs := []metrics.AgentConfig{}
	matchUps := [][]metrics.AgentConfig{}
	for i, n := range goroutines {
		config := metrics.AgentConfig{ID: i + 1, Kind: KindMinimax, Depth: depth, Goroutines: n}
		configs = append(configs, config)
		// Same config for both players for the same playing strength
		matchUps = append(matchUps, []metrics.AgentConfig{config, config})
	}

	return runExperiment(cfg, "throughput", configs, matchUps)
}
