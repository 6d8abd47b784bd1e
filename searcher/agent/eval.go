package agent

import (
	"fmt"

	"conquerbox/experiments/metrics"
	"conquerbox/game"
	"conquerbox/searcher"
)

type evaluationAgent struct {
	minimax *searcher.Minimax
}

// NewEvaluationAgent returns the artificial opponent: it plays whatever the
// minimax search ranks best.
func NewEvaluationAgent(minimax *searcher.Minimax) Agent {
	return evaluationAgent{minimax: minimax}
}

func (a evaluationAgent) FindMove(state *game.GameState) (game.Action, metrics.SearchMetric, error) {
	action, ok, metric := a.minimax.FindBestAction(state)
	if !ok {
		return 0, metric, fmt.Errorf("no action to search from a terminal state: %w", game.ErrIllegalMove)
	}
	return action, metric, nil
}
