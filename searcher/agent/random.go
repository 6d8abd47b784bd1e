package agent

import (
	"fmt"

	"conquerbox/experiments/metrics"
	"conquerbox/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent that plays a uniformly random legal action.
// It is the baseline opponent in experiments.
func NewRandomAgent(rng *rand.Rand) Agent {
	return randomAgent{rng: rng}
}

func (a randomAgent) FindMove(state *game.GameState) (game.Action, metrics.SearchMetric, error) {
	actions := state.PossibleActions()
	if len(actions) == 0 {
		return 0, metrics.SearchMetric{}, fmt.Errorf("no legal action for %s: %w", state.Turn, game.ErrIllegalMove)
	}
	return actions[a.rng.Intn(len(actions))], metrics.SearchMetric{}, nil
}
