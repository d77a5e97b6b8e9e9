package engine

import "pacai/experiments/metrics"

const MaxMoves = 1000

type Engine interface {
	// Run plays a game until it is won or lost or the move limit is reached
	Run() (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
