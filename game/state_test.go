package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestState(t *testing.T, rows ...string) *GameState {
	t.Helper()
	layout, err := NewLayout("test", rows)
	require.NoError(t, err)
	return NewGameState(layout, NewStandardRules(), -1)
}

func play(t *testing.T, gs *GameState, moves ...any) *GameState {
	t.Helper()
	for i := 0; i < len(moves); i += 2 {
		agent, action := moves[i].(int), moves[i+1].(Action)
		gs = gs.Successor(agent, action).(*GameState)
	}
	return gs
}

func TestGameStateLegalActions(t *testing.T) {
	t.Run("pacman may stop", func(t *testing.T) {
		gs := newTestState(t,
			"%%%%%%",
			"%P  G%",
			"%.%%%%",
			"%%%%%%",
		)

		require.Equal(t, []Action{South, East, Stop}, gs.LegalActions(PacmanIndex))
		require.Equal(t, []Action{West}, gs.LegalActions(1), "Ghosts never stop")
	})

	t.Run("ghosts only reverse at dead ends", func(t *testing.T) {
		gs := newTestState(t,
			"%%%%%%%",
			"%P   G%",
			"%.%%%%%",
			"%%%%%%%",
		)
		gs = play(t, gs, 0, Stop, 1, West)

		require.Equal(t, []Action{West}, gs.LegalActions(1), "Moving west, the ghost may not turn east")

		gs = play(t, gs, 0, Stop, 1, West, 0, Stop, 1, West)
		require.Equal(t, Position{2, 1}, gs.Ghosts()[0].Position)
		require.Equal(t, []Action{West}, gs.LegalActions(1))
	})

	t.Run("terminal states have no actions", func(t *testing.T) {
		gs := newTestState(t,
			"%%%%",
			"%P.%",
			"%%%%",
		)
		gs = play(t, gs, 0, East)

		require.True(t, gs.IsWin())
		require.Empty(t, gs.LegalActions(PacmanIndex))
	})
}

func TestGameStateSuccessor(t *testing.T) {
	t.Run("eating the last food wins", func(t *testing.T) {
		gs := newTestState(t,
			"%%%%%",
			"%P..%",
			"%%%%%",
		)

		first := play(t, gs, 0, East)
		require.Equal(t, 9.0, first.Score())
		require.Equal(t, 1, first.FoodCount())
		require.False(t, first.IsWin())

		second := play(t, first, 0, East)
		require.Equal(t, 518.0, second.Score())
		require.True(t, second.IsWin())
	})

	t.Run("successors leave the original untouched", func(t *testing.T) {
		gs := newTestState(t,
			"%%%%%",
			"%P..%",
			"%%%%%",
		)

		play(t, gs, 0, East)

		require.Equal(t, Position{1, 1}, gs.PacmanPosition())
		require.Equal(t, 2, gs.FoodCount())
		require.True(t, gs.HasFood(Position{2, 1}))
		require.Zero(t, gs.Score())
	})

	t.Run("walking into a live ghost loses", func(t *testing.T) {
		gs := newTestState(t,
			"%%%%%%",
			"%P  G%",
			"%.%%%%",
			"%%%%%%",
		)

		gs = play(t, gs, 0, East, 1, West, 0, East)

		require.True(t, gs.IsLose())
		require.Equal(t, -502.0, gs.Score())
	})

	t.Run("a ghost walking into pacman loses", func(t *testing.T) {
		gs := newTestState(t,
			"%%%%%%",
			"%P  G%",
			"%.%%%%",
			"%%%%%%",
		)

		gs = play(t, gs, 0, East, 1, West, 0, Stop, 1, West)

		require.True(t, gs.IsLose())
		require.Equal(t, -502.0, gs.Score())
	})

	t.Run("capsules scare ghosts which can then be eaten", func(t *testing.T) {
		gs := newTestState(t,
			"%%%%%%%",
			"%Po  G%",
			"%.%%%%%",
			"%%%%%%%",
		)

		gs = play(t, gs, 0, East)
		require.Empty(t, gs.Capsules())
		require.Equal(t, 40, gs.Ghosts()[0].ScaredTimer)

		gs = play(t, gs, 1, West)
		require.Equal(t, 39, gs.Ghosts()[0].ScaredTimer, "Scared time runs down as the ghost moves")

		gs = play(t, gs, 0, East, 1, West)
		require.False(t, gs.IsLose())
		require.Equal(t, 198.0, gs.Score())
		ghost := gs.Ghosts()[0]
		require.Equal(t, ghost.Start, ghost.Position, "An eaten ghost respawns")
		require.False(t, ghost.Scared())
	})

	t.Run("a ghost eaten on its start cell respawns onto pacman", func(t *testing.T) {
		gs := newTestState(t,
			"%%%%%",
			"%PG.%",
			"%%%%%",
		)
		gs.ghosts[0].ScaredTimer = 10

		gs = play(t, gs, 0, East)

		require.True(t, gs.IsLose())
		require.Equal(t, -301.0, gs.Score(), "Eating the ghost scores before the respawned ghost catches pacman")
	})

	t.Run("panics on terminal states and illegal actions", func(t *testing.T) {
		gs := newTestState(t,
			"%%%%",
			"%P.%",
			"%%%%",
		)

		require.Panics(t, func() { gs.Successor(PacmanIndex, West) })
		won := play(t, gs, 0, East)
		require.Panics(t, func() { won.Successor(PacmanIndex, Stop) })
	})
}

func TestNewGameState(t *testing.T) {
	layout, err := LoadLayout("smallClassic")
	require.NoError(t, err)

	require.Equal(t, 3, NewGameState(layout, nil, -1).NumAgents())
	require.Equal(t, 2, NewGameState(layout, nil, 1).NumAgents())
	require.Equal(t, 1, NewGameState(layout, nil, 0).NumAgents())
	require.Equal(t, len(layout.Food), NewGameState(layout, nil, -1).FoodCount())
}
