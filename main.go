package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"connectk/agent"
	"connectk/engine"
	"connectk/experiments"
	"connectk/game"
	"connectk/meta"
	"connectk/searcher"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	variantName := flag.String("variant", "connect4", "Game variant: connect4 or connect6")
	depth := flag.Int("depth", meta.DefaultDepth, "Search depth in plies")
	goroutines := flag.Int("goroutines", meta.Goroutines, "Number of goroutines for the root fan-out")
	mode := flag.String("mode", "play", "One of play, selfplay, experiment")
	games := flag.Int("games", meta.Games, "Games per matchup in experiment mode")
	out := flag.String("out", "experiments", "Output directory for experiment records")
	position := flag.String("position", "", "Board rows separated by '/', top row first; prints the best move and exits")
	flag.Parse()

	variant, err := game.LookupVariant(*variantName)
	if err != nil {
		log.Fatal().Err(err).Msg("bad variant")
	}

	if *position != "" {
		if err := analyze(variant, *position, *depth, *goroutines); err != nil {
			log.Fatal().Err(err).Msg("analysis failed")
		}
		return
	}

	switch *mode {
	case "play":
		ai := agent.NewMinimaxAgent(searcher.NewSearcher(searcher.WithDepth(*depth), searcher.WithGoroutines(*goroutines)))
		human := agent.NewConsoleAgent(os.Stdin, os.Stdout)
		e := engine.LocalEngine(variant, human, ai, engine.WithRandomStarter(uint64(time.Now().UnixNano())))
		run(e)
		fmt.Print(e.Board)
	case "selfplay":
		s := searcher.NewSearcher(searcher.WithDepth(*depth), searcher.WithGoroutines(*goroutines))
		e := engine.LocalEngine(variant, agent.NewMinimaxAgent(s), agent.NewMinimaxAgent(s))
		run(e)
		fmt.Print(e.Board)
	case "experiment":
		depths := make([]int, 0, *depth)
		for d := 1; d <= *depth; d++ {
			depths = append(depths, d)
		}
		cfg := experiments.Config{Variant: variant, Games: *games, OutDir: *out, Seed: uint64(time.Now().UnixNano())}
		dir, err := experiments.RunDepthExperiment(cfg, depths)
		if err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
		log.Info().Str("dir", dir).Msg("experiment records written")
	default:
		log.Fatal().Msgf("unknown mode %q", *mode)
	}
}

func run(r engine.Runner) {
	winner, gameMetric, _, err := r.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}
	log.Info().
		Str("winner", winner.String()).
		Int("moves", gameMetric.TotalMoves).
		Dur("duration", gameMetric.Duration).
		Msg("game over")
}

func analyze(variant game.Variant, position string, depth, goroutines int) error {
	b, err := game.ParseBoard(variant.K, strings.Split(position, "/")...)
	if err != nil {
		return err
	}
	s := searcher.NewSearcher(searcher.WithDepth(depth), searcher.WithGoroutines(goroutines), searcher.WithMetrics())
	result, metric, err := s.FindMove(b)
	if err != nil {
		return err
	}
	fmt.Print(b)
	fmt.Printf("best column: %d (score %d, %d nodes in %s)\n", result.Column, result.Score, metric.Nodes, metric.Duration)
	return nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
