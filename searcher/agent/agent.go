package agent

import (
	"conquerbox/experiments/metrics"
	"conquerbox/game"
)

type Agent interface {
	// FindMove returns the action to play in state and the search metrics (if collected) behind it
	FindMove(state *game.GameState) (game.Action, metrics.SearchMetric, error)
}
