package searcher

import (
	"fmt"

	"pacai/game"
)

// mockState is an explicit game tree. Moves are named after their child index.
type mockState struct {
	agents   int
	value    float64
	win      bool
	lose     bool
	moves    []game.Action
	children []*mockState
}

func (m *mockState) LegalActions(agent int) []game.Action {
	return m.moves
}

func (m *mockState) Successor(agent int, action game.Action) game.State {
	for i, move := range m.moves {
		if move == action {
			return m.children[i]
		}
	}
	panic(fmt.Sprintf("illegal action %s", action))
}

func (m *mockState) NumAgents() int { return m.agents }

func (m *mockState) IsWin() bool { return m.win }

func (m *mockState) IsLose() bool { return m.lose }

func mockEvaluate(s game.State) float64 {
	return s.(*mockState).value
}

func moveName(i int) game.Action {
	return game.Action(string(rune('a' + i)))
}

// node builds a tree node whose own value is used only if the search stops there.
func node(value float64, children ...*mockState) *mockState {
	m := &mockState{value: value, children: children}
	for i := range children {
		m.moves = append(m.moves, moveName(i))
	}
	return m
}

func leaf(value float64) *mockState {
	return node(value)
}

// leaves builds a node whose children are leaves with the given values.
func leaves(values ...float64) *mockState {
	children := make([]*mockState, len(values))
	for i, v := range values {
		children[i] = leaf(v)
	}
	return node(0, children...)
}

// withAgents sets the agent count on every node of the tree.
func withAgents(root *mockState, agents int) *mockState {
	root.agents = agents
	for _, child := range root.children {
		withAgents(child, agents)
	}
	return root
}
