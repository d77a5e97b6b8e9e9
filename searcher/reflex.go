package searcher

import (
	"pacai/game"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// ReflexAgent looks one move ahead and picks uniformly at random among the best scoring actions.
type ReflexAgent struct {
	evaluate game.ActionEvaluate
	rng      *rand.Rand
	logger   zerolog.Logger
}

func NewReflexAgent(evaluate game.ActionEvaluate, seed uint64) *ReflexAgent {
	if evaluate == nil {
		evaluate = game.EvaluateReflex
	}
	return &ReflexAgent{
		evaluate: evaluate,
		rng:      rand.New(rand.NewSource(seed)),
		logger:   log.Logger,
	}
}

func (r *ReflexAgent) FindNextAction(state game.State) game.Action {
	actions := state.LegalActions(game.PacmanIndex)
	if len(actions) == 0 {
		return game.Stop
	}

	scores := make([]float64, len(actions))
	for i, action := range actions {
		scores[i] = r.evaluate(state, action)
	}

	best := []int{0}
	for i := 1; i < len(scores); i++ {
		switch {
		case scores[i] > scores[best[0]]:
			best = []int{i}
		case scores[i] == scores[best[0]]:
			best = append(best, i)
		}
	}
	chosen := best[r.rng.Intn(len(best))]

	r.logger.Debug().Str("action", string(actions[chosen])).Float64("score", scores[chosen]).Msg("reflex")
	return actions[chosen]
}

// RandomGhost moves an adversary uniformly at random among its legal actions.
type RandomGhost struct {
	index int
	rng   *rand.Rand
}

func NewRandomGhost(index int, seed uint64) *RandomGhost {
	if index < 1 {
		panic("ghost agents start at index 1")
	}
	return &RandomGhost{
		index: index,
		rng:   rand.New(rand.NewSource(seed)),
	}
}

func (g *RandomGhost) Index() int { return g.index }

func (g *RandomGhost) FindNextAction(state game.State) game.Action {
	actions := state.LegalActions(g.index)
	if len(actions) == 0 {
		return game.Stop
	}
	return actions[g.rng.Intn(len(actions))]
}
