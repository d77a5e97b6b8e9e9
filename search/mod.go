// Package search finds action sequences through implicit graphs described by a Problem.
//
// Depth-first, breadth-first, uniform-cost and A* search share one exploration loop and differ
// only in how the frontier orders its entries.
package search

import (
	"fmt"

	"pacai/experiments/metrics"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Successor is one transition out of a state.
type Successor[S comparable, A any] struct {
	State  S
	Action A
	Cost   float64
}

// Problem is the state space explored by the search functions. States must be comparable so
// they can be tracked in the visited set.
type Problem[S comparable, A any] interface {
	StartState() S
	IsGoalState(state S) bool
	Successors(state S) []Successor[S, A]
	CostOfActions(actions []A) float64
}

// Heuristic estimates the remaining cost from state to the nearest goal. Admissibility is the
// caller's responsibility.
type Heuristic[S comparable, A any] func(state S, problem Problem[S, A]) float64

// NullHeuristic is the trivial heuristic. A* with it orders the frontier exactly like UCS.
func NullHeuristic[S comparable, A any](S, Problem[S, A]) float64 {
	return 0
}

type Strategy int

const (
	DepthFirstStrategy Strategy = iota
	BreadthFirstStrategy
	UniformCostStrategy
	AStarStrategy
)

var strategyNames = map[Strategy]string{
	DepthFirstStrategy:   "dfs",
	BreadthFirstStrategy: "bfs",
	UniformCostStrategy:  "ucs",
	AStarStrategy:        "astar",
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy maps a short or long strategy name to its Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "dfs", "depthFirstSearch":
		return DepthFirstStrategy, nil
	case "bfs", "breadthFirstSearch":
		return BreadthFirstStrategy, nil
	case "ucs", "uniformCostSearch":
		return UniformCostStrategy, nil
	case "astar", "aStarSearch":
		return AStarStrategy, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

type config[S comparable, A any] struct {
	heuristic     Heuristic[S, A]
	maxExpansions int
	metrics       metrics.Collector
	logger        zerolog.Logger
}

type Option[S comparable, A any] func(c *config[S, A])

// WithHeuristic sets the heuristic used by A*. Other strategies ignore it.
func WithHeuristic[S comparable, A any](heuristic Heuristic[S, A]) Option[S, A] {
	return func(c *config[S, A]) {
		if heuristic != nil {
			c.heuristic = heuristic
		}
	}
}

// WithMaxExpansions bounds the number of states expanded. A search that runs out of budget
// reports no solution.
func WithMaxExpansions[S comparable, A any](n int) Option[S, A] {
	return func(c *config[S, A]) {
		if n > 0 {
			c.maxExpansions = n
		}
	}
}

func WithCollector[S comparable, A any](collector metrics.Collector) Option[S, A] {
	return func(c *config[S, A]) {
		if collector != nil {
			c.metrics = collector
		}
	}
}

func WithLogger[S comparable, A any](logger zerolog.Logger) Option[S, A] {
	return func(c *config[S, A]) {
		c.logger = logger
	}
}

func newConfig[S comparable, A any](options []Option[S, A]) *config[S, A] {
	c := &config[S, A]{ // Default values
		heuristic: NullHeuristic[S, A],
		metrics:   metrics.NewDummyCollector(),
		logger:    log.Logger,
	}
	for _, option := range options {
		option(c)
	}
	return c
}
