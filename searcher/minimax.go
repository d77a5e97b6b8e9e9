package searcher

import (
	"math"

	"pacai/game"
)

// minimax models every adversary as perfectly hostile.
func (s *Searcher) minimax(state game.State, agent, depth int) float64 {
	s.metrics.AddNode()
	actions, leaf := s.leaf(state, agent, depth)
	if leaf {
		return s.evaluate(state)
	}

	nextAgent, nextDepth := next(state, agent, depth)
	if agent == game.PacmanIndex {
		value := math.Inf(-1)
		for _, action := range actions {
			value = max(value, s.minimax(state.Successor(agent, action), nextAgent, nextDepth))
		}
		return value
	}

	value := math.Inf(1)
	for _, action := range actions {
		value = min(value, s.minimax(state.Successor(agent, action), nextAgent, nextDepth))
	}
	return value
}
