package searcher

import (
	"testing"

	"pacai/game"

	"github.com/stretchr/testify/require"
)

func gridState(t *testing.T, rows ...string) *game.GameState {
	t.Helper()
	layout, err := game.NewLayout("test", rows)
	require.NoError(t, err)
	return game.NewGameState(layout, nil, -1)
}

func TestReflexAgent(t *testing.T) {
	t.Run("moves toward food", func(t *testing.T) {
		state := gridState(t,
			"%%%%%%",
			"%P  .%",
			"%%%%%%",
		)

		require.Equal(t, game.East, NewReflexAgent(nil, 1).FindNextAction(state))
	})

	t.Run("breaks ties at random", func(t *testing.T) {
		state := gridState(t,
			"%%%%%",
			"%.P.%",
			"%%%%%",
		)

		seen := map[game.Action]int{}
		for seed := uint64(0); seed < 64; seed++ {
			seen[NewReflexAgent(nil, seed).FindNextAction(state)]++
		}

		require.Len(t, seen, 2)
		require.Positive(t, seen[game.West])
		require.Positive(t, seen[game.East])
	})

	t.Run("same seed same choices", func(t *testing.T) {
		state := gridState(t,
			"%%%%%",
			"%.P.%",
			"%%%%%",
		)
		a, b := NewReflexAgent(nil, 9), NewReflexAgent(nil, 9)

		for i := 0; i < 10; i++ {
			require.Equal(t, a.FindNextAction(state), b.FindNextAction(state))
		}
	})

	t.Run("custom evaluation", func(t *testing.T) {
		state := gridState(t,
			"%%%%%",
			"%.P.%",
			"%%%%%",
		)
		preferStop := func(_ game.State, a game.Action) float64 {
			if a == game.Stop {
				return 1
			}
			return 0
		}

		require.Equal(t, game.Stop, NewReflexAgent(preferStop, 1).FindNextAction(state))
	})

	t.Run("terminal state", func(t *testing.T) {
		state := gridState(t,
			"%%%%",
			"%P.%",
			"%%%%",
		)
		won := state.Successor(game.PacmanIndex, game.East)
		require.True(t, won.IsWin())

		require.Equal(t, game.Stop, NewReflexAgent(nil, 1).FindNextAction(won))
	})
}

func TestRandomGhost(t *testing.T) {
	state := gridState(t,
		"%%%%%%%",
		"%P . G%",
		"%%%.%%%",
		"%%%%%%%",
	)
	legal := state.LegalActions(1)
	ghost := NewRandomGhost(1, 3)

	require.Equal(t, 1, ghost.Index())
	for i := 0; i < 20; i++ {
		require.Contains(t, legal, ghost.FindNextAction(state))
	}

	require.Panics(t, func() { NewRandomGhost(0, 1) })
}
