package game

import "pacai/search"

// unreachableCost is what CostOfActions charges for a sequence that walks into a wall.
const unreachableCost = 999999

// PositionProblem asks for a path from a start cell to a goal cell through the walls of a layout.
type PositionProblem struct {
	layout   *Layout
	start    Position
	goal     Position
	cost     func(Position) float64
	expanded int
}

// NewPositionProblem starts from Pacman's position in state. A nil cost charges 1 per step.
func NewPositionProblem(state *GameState, goal Position, cost func(Position) float64) *PositionProblem {
	if cost == nil {
		cost = func(Position) float64 { return 1 }
	}
	return &PositionProblem{
		layout: state.Layout(),
		start:  state.PacmanPosition(),
		goal:   goal,
		cost:   cost,
	}
}

func (p *PositionProblem) StartState() Position { return p.start }

func (p *PositionProblem) Goal() Position { return p.goal }

func (p *PositionProblem) IsGoalState(state Position) bool {
	return state == p.goal
}

func (p *PositionProblem) Successors(state Position) []search.Successor[Position, Action] {
	p.expanded++
	exits := p.layout.Exits(state)
	successors := make([]search.Successor[Position, Action], 0, len(exits))
	for _, action := range exits {
		next := state.Move(action)
		successors = append(successors, search.Successor[Position, Action]{
			State:  next,
			Action: action,
			Cost:   p.cost(next),
		})
	}
	return successors
}

func (p *PositionProblem) CostOfActions(actions []Action) float64 {
	pos := p.start
	total := 0.0
	for _, action := range actions {
		pos = pos.Move(action)
		if p.layout.IsWall(pos) {
			return unreachableCost
		}
		total += p.cost(pos)
	}
	return total
}

// Expanded counts calls to Successors.
func (p *PositionProblem) Expanded() int { return p.expanded }

type goalProblem interface {
	Goal() Position
}

// ManhattanHeuristic is admissible for unit-cost PositionProblems. Problems without a single goal
// cell get the null estimate.
func ManhattanHeuristic(state Position, problem search.Problem[Position, Action]) float64 {
	gp, ok := problem.(goalProblem)
	if !ok {
		return 0
	}
	return float64(Manhattan(state, gp.Goal()))
}

func EuclideanHeuristic(state Position, problem search.Problem[Position, Action]) float64 {
	gp, ok := problem.(goalProblem)
	if !ok {
		return 0
	}
	return Euclidean(state, gp.Goal())
}
