package engine

import (
	"slices"
	"time"

	"pacai/experiments/metrics"
	"pacai/game"
	"pacai/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Option func(e *Local)

// WithMaxMoves bounds the number of agent moves, ghosts included.
func WithMaxMoves(n int) Option {
	return func(e *Local) {
		if n > 0 {
			e.maxMoves = n
		}
	}
}

// WithCollector reads Pacman's search metrics after each of its moves. Pass the same collector
// to the Pacman searcher.
func WithCollector(collector metrics.Collector) Option {
	return func(e *Local) {
		if collector != nil {
			e.metrics = collector
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(e *Local) {
		e.logger = logger
	}
}

// Local runs a game in process. Agent i controls agent index i of the state.
type Local struct {
	state    *game.GameState
	agents   []searcher.Agent
	maxMoves int
	metrics  metrics.Collector
	logger   zerolog.Logger
}

var _ Engine = (*Local)(nil)

func NewLocal(state *game.GameState, pacman searcher.Agent, ghosts []searcher.Agent, options ...Option) *Local {
	if len(ghosts) != state.NumAgents()-1 {
		panic("number of ghost agents does not match the number of ghosts")
	}
	e := &Local{ // Default values
		state:    state,
		agents:   append([]searcher.Agent{pacman}, ghosts...),
		maxMoves: MaxMoves,
		metrics:  metrics.NewDummyCollector(),
		logger:   log.Logger,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *Local) State() *game.GameState { return e.state }

// Run executes the game loop. Agents move in index order; an agent with no legal action passes.
func (e *Local) Run() (metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		Layout:    e.state.Layout().Name,
		StartTime: time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	e.logger.Info().Msgf("starting game on %s with %d agents", gameMetric.Layout, len(e.agents))

	numAgents := len(e.agents)
	for turn := 0; turn < e.maxMoves && !e.over(); turn++ {
		agent := turn % numAgents
		if agent == game.PacmanIndex {
			e.metrics.Start("", 0)
		}
		start := time.Now()

		action, ok := e.choose(agent)
		if !ok {
			continue
		}

		if agent == game.PacmanIndex {
			search := e.metrics.Complete()
			search.Duration = time.Since(start)
			moveMetrics = append(moveMetrics, metrics.MoveMetric{
				Step:         turn/numAgents + 1,
				Agent:        agent,
				Action:       string(action),
				SearchMetric: search,
			})
		}

		e.state = e.state.Successor(agent, action).(*game.GameState)
		gameMetric.TotalMoves++
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.Won = e.state.IsWin()
	gameMetric.Score = e.state.Score()

	switch {
	case e.state.IsWin():
		e.logger.Info().Msgf("pacman won with score %.0f after %d moves", gameMetric.Score, gameMetric.TotalMoves)
	case e.state.IsLose():
		e.logger.Info().Msgf("pacman lost with score %.0f after %d moves", gameMetric.Score, gameMetric.TotalMoves)
	default:
		e.logger.Info().Msgf("stopped after %d moves with score %.0f", gameMetric.TotalMoves, gameMetric.Score)
	}
	return gameMetric, moveMetrics
}

func (e *Local) over() bool {
	return e.state.IsWin() || e.state.IsLose()
}

// choose asks agent for its move and falls back to its first legal action when the answer is not
// legal.
func (e *Local) choose(agent int) (game.Action, bool) {
	legal := e.state.LegalActions(agent)
	if len(legal) == 0 {
		e.logger.Debug().Int("agent", agent).Msg("no legal actions, passing")
		return "", false
	}

	action := e.agents[agent].FindNextAction(e.state)
	if !slices.Contains(legal, action) {
		e.logger.Warn().Int("agent", agent).Str("action", string(action)).Msgf("illegal action, playing %s", legal[0])
		return legal[0], true
	}
	return action, true
}
