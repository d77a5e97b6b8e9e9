package engine

import (
	"testing"

	"pacai/experiments/metrics"
	"pacai/game"
	"pacai/searcher"

	"github.com/stretchr/testify/require"
)

// scripted replays its actions in a loop.
type scripted struct {
	actions []game.Action
	next    int
}

func (s *scripted) FindNextAction(game.State) game.Action {
	action := s.actions[s.next%len(s.actions)]
	s.next++
	return action
}

func script(actions ...game.Action) *scripted {
	return &scripted{actions: actions}
}

func newState(t *testing.T, rows ...string) *game.GameState {
	t.Helper()
	layout, err := game.NewLayout("test", rows)
	require.NoError(t, err)
	return game.NewGameState(layout, nil, -1)
}

func TestLocal(t *testing.T) {
	t.Run("pacman clears the food", func(t *testing.T) {
		state := newState(t, "%%%%%", "%P..%", "%%%%%")

		gameMetric, moveMetrics := NewLocal(state, script(game.East), nil).Run()

		require.True(t, gameMetric.Won)
		require.Equal(t, 518.0, gameMetric.Score)
		require.Equal(t, 2, gameMetric.TotalMoves)
		require.Equal(t, "test", gameMetric.Layout)
		require.False(t, gameMetric.EndTime.Before(gameMetric.StartTime))
		require.Len(t, moveMetrics, 2)
		require.Equal(t, 2, moveMetrics[1].Step)
	})

	t.Run("ghost catches pacman", func(t *testing.T) {
		state := newState(t,
			"%%%%%",
			"%P G%",
			"%%%.%",
			"%%%%%",
		)

		gameMetric, moveMetrics := NewLocal(state, script(game.East), []searcher.Agent{script(game.West)}).Run()

		require.False(t, gameMetric.Won)
		require.Equal(t, -501.0, gameMetric.Score)
		require.Equal(t, 2, gameMetric.TotalMoves)
		require.Len(t, moveMetrics, 1)
		require.Equal(t, metrics.MoveMetric{Step: 1, Agent: 0, Action: "East", SearchMetric: moveMetrics[0].SearchMetric}, moveMetrics[0])
	})

	t.Run("illegal actions fall back to the first legal one", func(t *testing.T) {
		state := newState(t, "%%%%%", "%P..%", "%%%%%")

		gameMetric, moveMetrics := NewLocal(state, script(game.North), nil).Run()

		require.True(t, gameMetric.Won)
		require.Equal(t, "East", moveMetrics[0].Action)
	})

	t.Run("stuck ghosts pass", func(t *testing.T) {
		state := newState(t, "%%%%%%%", "%P..%G%", "%%%%%%%")

		gameMetric, moveMetrics := NewLocal(state, script(game.East), []searcher.Agent{script(game.West)}).Run()

		require.True(t, gameMetric.Won)
		require.Equal(t, 2, gameMetric.TotalMoves)
		require.Equal(t, 2, moveMetrics[1].Step)
	})

	t.Run("stops at the move limit", func(t *testing.T) {
		state := newState(t, "%%%%%", "%P..%", "%%%%%")

		gameMetric, _ := NewLocal(state, script(game.Stop), nil, WithMaxMoves(5)).Run()

		require.False(t, gameMetric.Won)
		require.Equal(t, 5, gameMetric.TotalMoves)
		require.Equal(t, -5.0, gameMetric.Score)
	})

	t.Run("records search metrics", func(t *testing.T) {
		layout, err := game.LoadLayout("testClassic")
		require.NoError(t, err)
		state := game.NewGameState(layout, nil, -1)
		collector := metrics.NewCollector()
		pacman := searcher.NewAlphaBeta(searcher.WithCollector(collector))
		ghosts := []searcher.Agent{}
		for i := 1; i < state.NumAgents(); i++ {
			ghosts = append(ghosts, searcher.NewRandomGhost(i, uint64(i)))
		}

		gameMetric, moveMetrics := NewLocal(state, pacman, ghosts, WithMaxMoves(20), WithCollector(collector)).Run()

		require.LessOrEqual(t, gameMetric.TotalMoves, 20)
		require.NotEmpty(t, moveMetrics)
		for _, m := range moveMetrics {
			require.Equal(t, "alphabeta", m.Algorithm)
			require.Equal(t, searcher.DefaultDepth, m.Depth)
			require.Positive(t, m.Nodes)
		}
	})

	t.Run("agent count must match", func(t *testing.T) {
		state := newState(t, "%%%%%", "%P.G%", "%%%%%")

		require.Panics(t, func() { NewLocal(state, script(game.Stop), nil) })
	})
}
