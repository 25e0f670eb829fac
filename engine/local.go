package engine

import (
	"fmt"
	"time"

	"connectk/agent"
	"connectk/experiments/metrics"
	"connectk/game"
	"connectk/meta"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(e *Engine)

// WithStarter sets the piece that moves first. PlayerPiece starts by default.
func WithStarter(piece game.Piece) Option {
	return func(e *Engine) {
		if piece == game.PlayerPiece || piece == game.AIPiece {
			e.starter = piece
		}
	}
}

// WithRandomStarter picks the first mover at random.
func WithRandomStarter(seed uint64) Option {
	return func(e *Engine) {
		rng := rand.New(rand.NewSource(seed))
		e.starter = game.PlayerPiece
		if rng.Intn(2) == 1 {
			e.starter = game.AIPiece
		}
	}
}

func WithMaxTurns(turns int) Option {
	return func(e *Engine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

// Engine owns the authoritative board of one game and alternates turns
// between two agents. The board is only mutated by Play.
type Engine struct {
	Variant  game.Variant
	Board    *game.Board
	Agents   map[game.Piece]agent.Agent
	status   Status
	starter  game.Piece
	maxTurns int
	turns    int
}

func LocalEngine(v game.Variant, player, ai agent.Agent, options ...Option) *Engine {
	b, err := v.NewBoard()
	if err != nil {
		panic(err)
	}
	if player == nil || ai == nil {
		panic("need an agent for each piece")
	}

	e := &Engine{
		Variant: v,
		Board:   b,
		Agents: map[game.Piece]agent.Agent{
			game.PlayerPiece: player,
			game.AIPiece:     ai,
		},
		starter:  game.PlayerPiece,
		maxTurns: meta.MaxTurns,
	}
	for _, option := range options {
		option(e)
	}
	e.status = turnOf(e.starter)
	return e
}

func (e *Engine) Status() Status {
	return e.status
}

func (e *Engine) Starter() game.Piece {
	return e.starter
}

func (e *Engine) Turns() int {
	return e.turns
}

// ToMove returns the piece whose turn it is, or Empty once the game is over.
func (e *Engine) ToMove() game.Piece {
	switch e.status {
	case PlayerTurn:
		return game.PlayerPiece
	case AITurn:
		return game.AIPiece
	}
	return game.Empty
}

// Play applies a confirmed move for the side to move, then checks for a win
// or a draw. An invalid column leaves the game unchanged.
func (e *Engine) Play(col int) error {
	if e.status.Over() {
		return ErrGameOver
	}
	piece := e.ToMove()

	row, err := e.Board.Drop(col, piece)
	if err != nil {
		return fmt.Errorf("cannot play column %d: %w", col, err)
	}
	e.turns++
	log.Debug().Msgf("%s played (%d, %d)\n%s", piece, row, col, e.Board)

	switch {
	case e.Board.WinningMove(piece):
		e.status = winOf(piece)
	case len(e.Board.ValidColumns()) == 0:
		e.status = Draw
	default:
		e.status = turnOf(piece.Opponent())
	}
	return nil
}

// Step asks the agent of the side to move for a column and plays it.
func (e *Engine) Step() (metrics.SearchMetric, error) {
	if e.status.Over() {
		return metrics.SearchMetric{}, ErrGameOver
	}
	piece := e.ToMove()

	col, metric, err := e.Agents[piece].FindMove(e.Board.Clone(), piece)
	if err != nil {
		return metric, fmt.Errorf("%s agent failed to find a move: %w", piece, err)
	}
	return metric, e.Play(col)
}

// Run executes the entire game loop until the game is over or the turn limit
// is reached. The winner is Empty for a draw or an unfinished game.
func (e *Engine) Run() (game.Piece, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		Variant:        e.Variant.String(),
		StartingPlayer: e.starter.String(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s is starting a game of %s", e.starter, e.Variant)

	for !e.status.Over() && e.turns < e.maxTurns {
		piece := e.ToMove()
		metric, err := e.Step()
		if err != nil {
			return game.Empty, gameMetric, moveMetrics, err
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         e.turns,
			Player:       piece.String(),
			SearchMetric: metric,
		})
	}

	winner := e.Board.Winner()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = e.turns
	if winner != game.Empty {
		gameMetric.Winner = winner.String()
	}

	if e.status.Over() {
		log.Info().Msgf("game over after %d moves: %s", e.turns, e.status)
	} else {
		log.Warn().Msgf("stopped after %d turns (no winner yet)", e.turns)
	}
	return winner, gameMetric, moveMetrics, nil
}

func turnOf(piece game.Piece) Status {
	if piece == game.AIPiece {
		return AITurn
	}
	return PlayerTurn
}

func winOf(piece game.Piece) Status {
	if piece == game.AIPiece {
		return AIWin
	}
	return PlayerWin
}
