package searcher

import (
	"fmt"
	"math"

	"conquerbox/experiments/metrics"
	"conquerbox/game"
	"conquerbox/meta"

	"github.com/rs/zerolog/log"
)

type Option func(m *Minimax)

// Minimax picks actions with a depth-limited minimax search. A Minimax keeps
// per-search metrics, so one instance must not run two searches at once.
type Minimax struct {
	depth    int
	pruning  bool
	evaluate game.Evaluate
	metrics  metrics.Collector
}

// WithDepth sets the number of plies explored below the root's children before
// falling back to the heuristic.
func WithDepth(depth int) Option {
	return func(m *Minimax) {
		m.depth = depth
	}
}

// WithEvaluationFn replaces the positional heuristic used at cutoff nodes.
func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

// WithoutPruning disables alpha-beta pruning and searches the full tree.
func WithoutPruning() Option {
	return func(m *Minimax) {
		m.pruning = false
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		depth:    meta.DefaultDepth,
		pruning:  true,
		evaluate: game.CentralControl,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.depth < 0 {
		panic(fmt.Sprintf("search depth must not be negative, got %d", m.depth))
	}
	if m.depth > meta.MaxDepth {
		log.Warn().Msgf("search depth %d exceeds maximum, clamping to %d", m.depth, meta.MaxDepth)
		m.depth = meta.MaxDepth
	}
	return m
}

func (m *Minimax) Depth() int {
	return m.depth
}

// FindBestAction returns the action with the greatest minimax value for the
// player to move in state. Among equal values the earliest action in
// enumeration order wins. It returns false if state is terminal.
func (m *Minimax) FindBestAction(state *game.GameState) (game.Action, bool, metrics.SearchMetric) {
	m.metrics.Start(m.depth, m.pruning)

	var best game.Action
	bestValue := math.Inf(-1)
	found := false
	for _, child := range state.Children() {
		value := m.score(state.Turn, child.State)
		log.Debug().Msgf("%s: %s scores %.2f", state.Turn, child.Action, value)
		if !found || value > bestValue {
			best, bestValue, found = child.Action, value, true
		}
	}
	return best, found, m.metrics.Complete()
}

// Value is the minimax value of playing action in state, from the mover's
// point of view.
func (m *Minimax) Value(state *game.GameState, action game.Action) (float64, error) {
	child := state.Copy()
	if err := child.Play(action); err != nil {
		return 0, err
	}
	m.metrics.Start(m.depth, m.pruning)
	return m.score(state.Turn, child), nil
}

// score evaluates a root child: the perspective player has just moved, so the
// child is a minimizing node with a fresh window.
func (m *Minimax) score(perspective game.PlayerID, child *game.GameState) float64 {
	return m.minimax(perspective, child, false, m.depth, math.Inf(-1), math.Inf(1))
}

// minimax scores node from perspective's point of view. maximizing tells
// whether node is one where perspective picks the next move; it alternates
// every ply independently of node.Turn.
func (m *Minimax) minimax(perspective game.PlayerID, node *game.GameState, maximizing bool, depth int, alpha, beta float64) float64 {
	m.metrics.AddNode()
	lead := float64(node.Lead(perspective))

	if node.IsTerminal() {
		m.metrics.AddTerminal()
		return lead
	}

	if depth < 0 {
		m.metrics.AddCutoff()
		bonus := m.evaluate(node.Player(perspective).CurrentTile)
		if !maximizing {
			bonus = -bonus
		}
		return lead + bonus
	}

	if maximizing {
		value := math.Inf(-1)
		for _, child := range node.Children() {
			value = max(value, m.minimax(perspective, child.State, false, depth-1, alpha, beta))
			alpha = max(alpha, value)
			if m.pruning && value >= beta {
				m.metrics.AddPrune()
				break
			}
		}
		return value
	}

	value := math.Inf(1)
	for _, child := range node.Children() {
		value = min(value, m.minimax(perspective, child.State, true, depth-1, alpha, beta))
		beta = min(beta, value)
		if m.pruning && value <= alpha {
			m.metrics.AddPrune()
			break
		}
	}
	return value
}
