package main

import (
	"fmt"
	"strconv"
	"strings"

	"pacai/experiments/metrics"
	"pacai/game"
	"pacai/search"

	"github.com/rs/zerolog/log"
)

var heuristics = map[string]search.Heuristic[game.Position, game.Action]{
	"null":      search.NullHeuristic[game.Position, game.Action],
	"manhattan": game.ManhattanHeuristic,
	"euclidean": game.EuclideanHeuristic,
}

type SolveCmd struct {
	Layout        string `default:"tinyMaze" help:"Built-in layout"`
	Strategy      string `default:"astar" help:"Search strategy (dfs, bfs, ucs, astar)"`
	Heuristic     string `default:"manhattan" enum:"null,manhattan,euclidean" help:"A* heuristic (null, manhattan, euclidean)"`
	Goal          string `help:"Goal cell as x,y (default: the first food cell)"`
	MaxExpansions int    `help:"Give up after expanding this many cells"`
}

func (c *SolveCmd) Run(g *Globals) error {
	strategy, err := search.ParseStrategy(c.Strategy)
	if err != nil {
		return err
	}
	layout, err := game.LoadLayout(c.Layout)
	if err != nil {
		return err
	}
	goal, err := parseGoal(c.Goal, layout)
	if err != nil {
		return err
	}

	problem := game.NewPositionProblem(game.NewGameState(layout, nil, 0), goal, nil)
	collector := metrics.NewCollector()
	path := search.Search(problem, strategy,
		search.WithHeuristic(heuristics[c.Heuristic]),
		search.WithMaxExpansions[game.Position, game.Action](c.MaxExpansions),
		search.WithCollector[game.Position, game.Action](collector),
	)
	metric := collector.Complete()

	if len(path) == 0 && problem.StartState() != goal {
		log.Warn().Msgf("no path from %v to %v on %s", problem.StartState(), goal, layout.Name)
		return nil
	}

	steps := make([]string, len(path))
	for i, action := range path {
		steps[i] = string(action)
	}
	log.Info().
		Stringer("strategy", strategy).
		Float64("cost", problem.CostOfActions(path)).
		Int("expanded", problem.Expanded()).
		Dur("duration", metric.Duration).
		Msgf("path: %s", strings.Join(steps, " "))
	return nil
}

// parseGoal reads "x,y". An empty goal picks the first food cell of the layout.
func parseGoal(s string, layout *game.Layout) (game.Position, error) {
	if s == "" {
		if len(layout.Food) == 0 {
			return game.Position{}, fmt.Errorf("layout %s has no food, pass --goal", layout.Name)
		}
		return layout.Food[0], nil
	}

	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return game.Position{}, fmt.Errorf("goal %q: want x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return game.Position{}, fmt.Errorf("goal %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return game.Position{}, fmt.Errorf("goal %q: %w", s, err)
	}
	goal := game.Position{X: x, Y: y}
	if layout.IsWall(goal) {
		return game.Position{}, fmt.Errorf("goal %v is a wall in %s", goal, layout.Name)
	}
	return goal, nil
}
