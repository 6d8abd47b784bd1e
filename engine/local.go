package engine

import (
	"fmt"
	"time"

	"conquerbox/experiments/metrics"
	"conquerbox/game"
	"conquerbox/meta"
	"conquerbox/searcher/agent"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Observer is told about every move right after it is applied.
type Observer func(player game.PlayerID, action game.Action, state *game.GameState)

type Option func(e *LocalEngine)

func WithMaxTurns(maxTurns int) Option {
	return func(e *LocalEngine) {
		if maxTurns > 0 {
			e.maxTurns = maxTurns
		}
	}
}

func WithObserver(observer Observer) Option {
	return func(e *LocalEngine) {
		if observer != nil {
			e.observers = append(e.observers, observer)
		}
	}
}

// LocalEngine alternates between two in-process agents on a single state.
type LocalEngine struct {
	State     *game.GameState
	Agents    [2]agent.Agent // Indexed by player ID - 1
	maxTurns  int
	observers []Observer
}

func NewLocalEngine(agents [2]agent.Agent, state *game.GameState, options ...Option) *LocalEngine {
	for i, a := range agents {
		if a == nil {
			panic(fmt.Sprintf("agent for player %d is nil", i+1))
		}
	}

	e := &LocalEngine{
		State:    state,
		Agents:   agents,
		maxTurns: meta.MaxTurns,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run asks the agent whose turn it is for an action and applies it, until the
// game is over or maxTurns moves have been played.
func (e *LocalEngine) Run() (metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		ID:             uuid.NewString(),
		StartingPlayer: int(e.State.Turn),
		StartTime:      time.Now(),
	}

	log.Info().Msgf("game %s: %s is starting", gameMetric.ID, e.State.Turn)

	moveMetrics := []metrics.MoveMetric{}
	step := 1
	for !e.State.IsTerminal() && step <= e.maxTurns {
		player := e.State.Turn
		action, searchMetric, err := e.Agents[player-1].FindMove(e.State)
		if err != nil {
			return e.complete(gameMetric, len(moveMetrics)), moveMetrics, fmt.Errorf("%s failed to find a move: %w", player, err)
		}
		if err := e.State.Play(action); err != nil {
			return e.complete(gameMetric, len(moveMetrics)), moveMetrics, err
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       int(player),
			Action:       action.String(),
			SearchMetric: searchMetric,
		})
		log.Debug().Msgf("game %s step %d: %s played %s (nodes=%d, %s)", gameMetric.ID, step, player, action, searchMetric.Nodes, searchMetric.Duration)

		for _, observe := range e.observers {
			observe(player, action, e.State)
		}
		step++
	}

	gameMetric = e.complete(gameMetric, len(moveMetrics))
	if gameMetric.Finished {
		log.Info().Msgf("game %s over after %d moves: %d - %d", gameMetric.ID, gameMetric.TotalMoves, gameMetric.Score1, gameMetric.Score2)
	} else {
		log.Warn().Msgf("game %s stopped after %d moves with %d tiles uncaptured", gameMetric.ID, gameMetric.TotalMoves, e.State.Uncaptured)
	}
	return gameMetric, moveMetrics, nil
}

func (e *LocalEngine) complete(gameMetric metrics.GameMetric, moves int) metrics.GameMetric {
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = moves
	gameMetric.Score1 = e.State.Player1.Score
	gameMetric.Score2 = e.State.Player2.Score
	gameMetric.Finished = e.State.IsTerminal()
	if winner, ok := e.State.Winner(); ok {
		gameMetric.Winner = int(winner)
	}
	return gameMetric
}
