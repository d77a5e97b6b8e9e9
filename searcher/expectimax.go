package searcher

import (
	"math"

	"pacai/game"
)

// expectimax models every adversary as choosing uniformly at random among its legal actions.
func (s *Searcher) expectimax(state game.State, agent, depth int) float64 {
	s.metrics.AddNode()
	actions, leaf := s.leaf(state, agent, depth)
	if leaf {
		return s.evaluate(state)
	}

	nextAgent, nextDepth := next(state, agent, depth)
	if agent == game.PacmanIndex {
		value := math.Inf(-1)
		for _, action := range actions {
			value = max(value, s.expectimax(state.Successor(agent, action), nextAgent, nextDepth))
		}
		return value
	}

	total := 0.0
	for _, action := range actions {
		total += s.expectimax(state.Successor(agent, action), nextAgent, nextDepth)
	}
	return total / float64(len(actions))
}
