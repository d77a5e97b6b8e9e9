package searcher

import (
	"errors"
	"fmt"
	"math"

	"pacai/experiments/metrics"
	"pacai/game"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	ErrNoLegalActions = errors.New("no legal actions")
	ErrUnknownKind    = errors.New("unknown agent kind")
)

// Agent picks the next action for the agent it controls.
type Agent interface {
	FindNextAction(state game.State) game.Action
}

type Kind int

const (
	Minimax Kind = iota
	AlphaBeta
	Expectimax
)

var kindNames = map[Kind]string{
	Minimax:    "minimax",
	AlphaBeta:  "alphabeta",
	Expectimax: "expectimax",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func ParseKind(name string) (Kind, error) {
	for kind, kindName := range kindNames {
		if kindName == name {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Decision is the chosen root action and its backed-up value.
type Decision struct {
	Action game.Action
	Value  float64
}

type Option func(s *Searcher)

func WithDepth(depth int) Option {
	return func(s *Searcher) {
		if depth > 0 {
			s.depth = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *Searcher) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

func WithCollector(collector metrics.Collector) Option {
	return func(s *Searcher) {
		if collector != nil {
			s.metrics = collector
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(s *Searcher) {
		s.logger = logger
	}
}

// Searcher is a bounded-depth game-tree agent for agent 0. Agents 1..N-1 move after it in index
// order and one full cycle is a round; the search stops after depth rounds.
type Searcher struct {
	kind     Kind
	depth    int
	evaluate game.Evaluate
	metrics  metrics.Collector
	logger   zerolog.Logger
}

func New(kind Kind, options ...Option) *Searcher {
	if _, ok := kindNames[kind]; !ok {
		panic("unexpected agent kind " + kind.String())
	}
	s := &Searcher{ // Default values
		kind:     kind,
		depth:    DefaultDepth,
		evaluate: game.EvaluateScore,
		metrics:  metrics.NewDummyCollector(),
		logger:   log.Logger,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func NewMinimax(options ...Option) *Searcher { return New(Minimax, options...) }

func NewAlphaBeta(options ...Option) *Searcher { return New(AlphaBeta, options...) }

func NewExpectimax(options ...Option) *Searcher { return New(Expectimax, options...) }

func (s *Searcher) Kind() Kind { return s.kind }

func (s *Searcher) Depth() int { return s.depth }

// Decide searches from state and returns agent 0's best action. Ties go to the action listed
// first by LegalActions.
func (s *Searcher) Decide(state game.State) (Decision, error) {
	actions := state.LegalActions(game.PacmanIndex)
	if len(actions) == 0 {
		return Decision{}, ErrNoLegalActions
	}

	s.metrics.Start(s.kind.String(), s.depth)
	s.metrics.AddNode()

	var decision Decision
	switch s.kind {
	case Minimax:
		decision = s.decide(state, actions, s.minimax)
	case AlphaBeta:
		decision = s.decideAlphaBeta(state, actions)
	case Expectimax:
		decision = s.decide(state, actions, s.expectimax)
	}

	s.logger.Debug().
		Stringer("agent", s.kind).
		Int("depth", s.depth).
		Str("action", string(decision.Action)).
		Float64("value", decision.Value).
		Msg("decided")
	return decision, nil
}

// FindNextAction returns Stop when agent 0 has no legal action.
func (s *Searcher) FindNextAction(state game.State) game.Action {
	decision, err := s.Decide(state)
	if err != nil {
		s.logger.Warn().Err(err).Msgf("%s agent cannot move", s.kind)
		return game.Stop
	}
	return decision.Action
}

type valueFn func(state game.State, agent, depth int) float64

func (s *Searcher) decide(state game.State, actions []game.Action, value valueFn) Decision {
	nextAgent, nextDepth := next(state, game.PacmanIndex, 0)
	best := Decision{Value: math.Inf(-1)}
	for i, action := range actions {
		v := value(state.Successor(game.PacmanIndex, action), nextAgent, nextDepth)
		if i == 0 || v > best.Value {
			best = Decision{Action: action, Value: v}
		}
	}
	return best
}

// next returns the agent that moves after agent and the round it moves in.
func next(state game.State, agent, depth int) (int, int) {
	agent++
	if agent >= state.NumAgents() {
		return game.PacmanIndex, depth + 1
	}
	return agent, depth
}

// leaf reports whether state is evaluated instead of expanded: the depth limit is reached, the
// game is over, or agent cannot move.
func (s *Searcher) leaf(state game.State, agent, depth int) ([]game.Action, bool) {
	if depth >= s.depth || state.IsWin() || state.IsLose() {
		return nil, true
	}
	actions := state.LegalActions(agent)
	return actions, len(actions) == 0
}
