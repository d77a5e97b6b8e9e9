package searcher

import (
	"math"

	"pacai/game"
)

func (s *Searcher) decideAlphaBeta(state game.State, actions []game.Action) Decision {
	nextAgent, nextDepth := next(state, game.PacmanIndex, 0)
	alpha, beta := math.Inf(-1), math.Inf(1)
	best := Decision{Value: math.Inf(-1)}
	for i, action := range actions {
		v := s.alphaBeta(state.Successor(game.PacmanIndex, action), nextAgent, nextDepth, alpha, beta)
		if i == 0 || v > best.Value {
			best = Decision{Action: action, Value: v}
		}
		alpha = max(alpha, best.Value)
	}
	return best
}

// alphaBeta returns the minimax value of state whenever it lies strictly inside (alpha, beta),
// and otherwise a bound on the far side of the window. alpha is what agent 0 can already
// guarantee on the current path, beta what the adversaries can.
func (s *Searcher) alphaBeta(state game.State, agent, depth int, alpha, beta float64) float64 {
	s.metrics.AddNode()
	actions, leaf := s.leaf(state, agent, depth)
	if leaf {
		return s.evaluate(state)
	}

	nextAgent, nextDepth := next(state, agent, depth)
	if agent == game.PacmanIndex {
		value := math.Inf(-1)
		for i, action := range actions {
			value = max(value, s.alphaBeta(state.Successor(agent, action), nextAgent, nextDepth, alpha, beta))
			if value >= beta {
				s.pruned(i, actions)
				return value
			}
			alpha = max(alpha, value)
		}
		return value
	}

	value := math.Inf(1)
	for i, action := range actions {
		value = min(value, s.alphaBeta(state.Successor(agent, action), nextAgent, nextDepth, alpha, beta))
		if value <= alpha {
			s.pruned(i, actions)
			return value
		}
		beta = min(beta, value)
	}
	return value
}

func (s *Searcher) pruned(i int, actions []game.Action) {
	if i < len(actions)-1 {
		s.metrics.AddPrune()
	}
}
