package experiments

import (
	"fmt"

	"connectk/agent"
	"connectk/engine"
	"connectk/experiments/metrics"
	"connectk/game"
	"connectk/meta"
	"connectk/searcher"

	"github.com/rs/zerolog/log"
)

const (
	KindMinimax = "minimax"
	KindRandom  = "random"
)

type Config struct {
	Variant game.Variant
	Games   int // Per match up
	OutDir  string
	Seed    uint64
}

func (c Config) withDefaults() Config {
	if c.Variant.K == 0 {
		c.Variant = game.Connect4
	}
	if c.Games <= 0 {
		c.Games = meta.Games
	}
	if c.OutDir == "" {
		c.OutDir = "experiments"
	}
	return c
}

var baseline = metrics.AgentConfig{ID: 0, Kind: KindRandom}

// RunDepthExperiment pairs a minimax agent at each depth against the random
// baseline and returns the directory holding the records.
func RunDepthExperiment(cfg Config, depths []int) (string, error) {
	configs := []metrics.AgentConfig{baseline}
	matchUps := [][]metrics.AgentConfig{}
	for i, depth := range depths {
		config := metrics.AgentConfig{ID: i + 1, Kind: KindMinimax, Depth: depth, Goroutines: 1}
		configs = append(configs, config)
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}

	return runExperiment(cfg, "depth", configs, matchUps)
}

func runExperiment(cfg Config, name string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) (string, error) {
	cfg = cfg.withDefaults()

	// Store experiment metadata
	writer, err := metrics.NewWriter(cfg.OutDir, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}

	// Run a number of games for each matchup
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment on %s...", name, cfg.Variant)

	for _, matchup := range matchUps {
		log.Info().Msgf("starting matchup between agent%d=%+v and agent%d=%+v...", matchup[0].ID, matchup[0], matchup[1].ID, matchup[1])

		for i := 0; i < cfg.Games; i++ {
			// Alternate seats so each agent moves first in half the games
			first, second := matchup[0], matchup[1]
			if i%2 == 1 {
				first, second = second, first
			}
			count++
			seed := cfg.Seed + uint64(count)

			e := engine.LocalEngine(cfg.Variant, newAgent(first, seed), newAgent(second, seed+1))
			winner, gameMetric, moveMetrics, err := runGame(e)
			if err != nil {
				return writer.Dir(), fmt.Errorf("game %d failed: %w", count, err)
			}

			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     first.ID,
				Agent2:     second.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed game %d of %d with winner: %s", i+1, cfg.Games, winner)
		}
		log.Info().Msg("completed matchup")
	}

	log.Info().Msgf("completed %s experiment", name)

	// Store experiment results
	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return writer.Dir(), fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return writer.Dir(), fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}

// runGame executes a single game and returns the winner
func runGame(r engine.Runner) (game.Piece, metrics.GameMetric, []metrics.MoveMetric, error) {
	return r.Run()
}

func newAgent(config metrics.AgentConfig, seed uint64) agent.Agent {
	switch config.Kind {
	case KindRandom:
		return agent.NewRandomAgent(seed)
	case KindMinimax:
		return agent.NewMinimaxAgent(createSearcher(config))
	}
	panic(fmt.Sprintf("unknown agent kind %q", config.Kind))
}

func createSearcher(config metrics.AgentConfig) *searcher.Searcher {
	options := []searcher.Option{searcher.WithMetrics()}

	if config.Depth > 0 {
		options = append(options, searcher.WithDepth(config.Depth))
	}
	if config.Goroutines > 0 {
		options = append(options, searcher.WithGoroutines(config.Goroutines))
	}

	return searcher.NewSearcher(options...)
}
