package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// opaqueState satisfies State but exposes nothing to observe.
type opaqueState struct{}

func (opaqueState) LegalActions(int) []Action   { return nil }
func (opaqueState) Successor(int, Action) State { return opaqueState{} }
func (opaqueState) NumAgents() int              { return 1 }
func (opaqueState) IsWin() bool                 { return false }
func (opaqueState) IsLose() bool                { return false }

func corridor(t *testing.T) *GameState {
	return newTestState(t,
		"%%%%%%",
		"%P  G%",
		"%.%%%%",
		"%%%%%%",
	)
}

func TestEvaluateScore(t *testing.T) {
	gs := play(t, corridor(t), 0, East)

	require.Equal(t, -1.0, EvaluateScore(gs))
	require.Panics(t, func() { EvaluateScore(opaqueState{}) })
}

func TestEvaluateBetter(t *testing.T) {
	t.Run("contact with a live ghost is the losing sentinel", func(t *testing.T) {
		gs := play(t, corridor(t), 0, East, 1, West, 0, East)

		require.Equal(t, float64(Losing), EvaluateBetter(gs))
	})

	t.Run("nearby live ghosts cost a little", func(t *testing.T) {
		gs := play(t, corridor(t), 0, East)

		// score -1, live ghost at distance 2, food at distance 2
		require.Equal(t, -1.0-0.5+1.0, EvaluateBetter(gs))
	})

	t.Run("scared ghosts within reach pay well", func(t *testing.T) {
		gs := newTestState(t,
			"%%%%%%%",
			"%Po  G%",
			"%.%%%%%",
			"%%%%%%%",
		)
		gs = play(t, gs, 0, East)

		// score -1, scared ghost at distance 3, food at distance 2
		require.Equal(t, -1.0+100+1, EvaluateBetter(gs))
	})

	t.Run("closer food scores higher", func(t *testing.T) {
		gs := newTestState(t,
			"%%%%%%%",
			"%P   .%",
			"%%%%%%%",
		)
		near := play(t, gs, 0, East, 0, East)
		far := play(t, gs, 0, Stop, 0, Stop)

		require.Greater(t, EvaluateBetter(near), EvaluateBetter(far))
	})
}

func TestEvaluateReflex(t *testing.T) {
	t.Run("stopping is the losing sentinel", func(t *testing.T) {
		require.Equal(t, float64(Losing), EvaluateReflex(corridor(t), Stop))
	})

	t.Run("prefers eating food to wandering", func(t *testing.T) {
		gs := corridor(t)

		require.Equal(t, 0.0, EvaluateReflex(gs, South))
		require.Equal(t, -2.0, EvaluateReflex(gs, East))
	})

	t.Run("never steps into a live ghost", func(t *testing.T) {
		gs := play(t, corridor(t), 0, East, 1, West)

		require.Equal(t, float64(Losing), EvaluateReflex(gs, East))
	})

	t.Run("chases a capsule when a ghost closes in", func(t *testing.T) {
		gs := newTestState(t,
			"%%%%%%%%",
			"%. P oG%",
			"%%%%%%%%",
		)

		require.Equal(t, -1.0, EvaluateReflex(gs, East), "Capsule is one step beyond the move")
	})
}
