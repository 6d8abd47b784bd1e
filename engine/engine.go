package engine

import "conquerbox/experiments/metrics"

type Engine interface {
	// Run plays a game till the state is terminal or a max number of moves is reached
	Run() (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
