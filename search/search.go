package search

import "slices"

// DepthFirst searches the deepest nodes in the search tree first.
func DepthFirst[S comparable, A any](problem Problem[S, A], options ...Option[S, A]) []A {
	return Search(problem, DepthFirstStrategy, options...)
}

// BreadthFirst searches the shallowest nodes in the search tree first.
func BreadthFirst[S comparable, A any](problem Problem[S, A], options ...Option[S, A]) []A {
	return Search(problem, BreadthFirstStrategy, options...)
}

// UniformCost searches the node of least total cost first.
func UniformCost[S comparable, A any](problem Problem[S, A], options ...Option[S, A]) []A {
	return Search(problem, UniformCostStrategy, options...)
}

// AStar searches the node with the lowest combined cost and heuristic first.
func AStar[S comparable, A any](problem Problem[S, A], heuristic Heuristic[S, A], options ...Option[S, A]) []A {
	return Search(problem, AStarStrategy, slices.Concat(options, []Option[S, A]{WithHeuristic(heuristic)})...)
}

// Search runs the shared frontier loop with the ordering policy of strategy. The goal test runs
// when an entry is popped and a state is expanded at most once. An empty, non-nil slice means no
// goal was found in the explored space.
func Search[S comparable, A any](problem Problem[S, A], strategy Strategy, options ...Option[S, A]) []A {
	c := newConfig(options)
	c.metrics.Start(strategy.String(), 0)

	f := newFrontier[S, A](strategy)
	start := problem.StartState()
	f.push(entry[S, A]{
		state:    start,
		path:     []A{},
		priority: c.priority(strategy, problem, start, nil),
	})

	visited := make(map[S]struct{})
	for f.len() > 0 {
		e := f.pop()

		if problem.IsGoalState(e.state) {
			c.logger.Debug().
				Stringer("strategy", strategy).
				Int("expanded", len(visited)).
				Int("length", len(e.path)).
				Msg("goal found")
			return e.path
		}

		if _, ok := visited[e.state]; ok {
			continue
		}
		if c.maxExpansions > 0 && len(visited) >= c.maxExpansions {
			c.logger.Warn().Msgf("%s search stopped after %d expansions without reaching a goal", strategy, len(visited))
			return []A{}
		}
		visited[e.state] = struct{}{}
		c.metrics.AddNode()

		for _, successor := range problem.Successors(e.state) {
			if _, ok := visited[successor.State]; ok {
				continue
			}
			path := extend(e.path, successor.Action)
			f.push(entry[S, A]{
				state:    successor.State,
				path:     path,
				priority: c.priority(strategy, problem, successor.State, path),
			})
		}
	}

	c.logger.Debug().Stringer("strategy", strategy).Int("expanded", len(visited)).Msg("no solution")
	return []A{}
}

func newFrontier[S comparable, A any](strategy Strategy) frontier[S, A] {
	switch strategy {
	case DepthFirstStrategy:
		return &stack[S, A]{}
	case BreadthFirstStrategy:
		return &queue[S, A]{}
	case UniformCostStrategy, AStarStrategy:
		return &priorityQueue[S, A]{}
	default:
		panic("unexpected search strategy " + strategy.String())
	}
}

func (c *config[S, A]) priority(strategy Strategy, problem Problem[S, A], state S, path []A) float64 {
	switch strategy {
	case UniformCostStrategy:
		return problem.CostOfActions(path)
	case AStarStrategy:
		return problem.CostOfActions(path) + c.heuristic(state, problem)
	default:
		return 0
	}
}

// extend copies path so sibling entries never share a backing array.
func extend[A any](path []A, action A) []A {
	extended := make([]A, len(path)+1)
	copy(extended, path)
	extended[len(path)] = action
	return extended
}
