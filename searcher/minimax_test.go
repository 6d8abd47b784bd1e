package searcher

import (
	"testing"

	"conquerbox/game"
	"conquerbox/meta"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func edgePlayground() game.Playground {
	return game.NewPlayground([game.Size][game.Size]int{
		{0, 5, 4, 3},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{3, 4, 5, 0},
	})
}

// lastTilePosition leaves only (1,1), worth 5, uncaptured with player 1 next to it on (1,0).
func lastTilePosition() *game.GameState {
	var pg game.Playground
	for y := range pg {
		for x := range pg[y] {
			pg[y][x].Captured = game.CapturedByPlayer1
		}
	}
	pg[3][3].Captured = game.CapturedByPlayer2
	pg[1][1] = game.Tile{Score: 5}

	p1 := game.Player{CurrentTile: game.Coordinate{X: 1, Y: 0}}
	p2 := game.Player{CurrentTile: game.Player2Start}
	return game.NewGameState(pg, 0, game.WithPlayers(p1, p2), game.WithUncaptured(1))
}

func TestNewMinimax(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		m := NewMinimax()

		require.Equal(t, meta.DefaultDepth, m.Depth())
		require.True(t, m.pruning, "Pruning should be on by default")
	})

	t.Run("clamps excessive depth", func(t *testing.T) {
		m := NewMinimax(WithDepth(meta.MaxDepth + 10))

		require.Equal(t, meta.MaxDepth, m.Depth())
	})

	t.Run("panics with negative depth", func(t *testing.T) {
		require.Panics(t, func() {
			NewMinimax(WithDepth(-1))
		}, "Should panic when depth is negative")
	})

	t.Run("ignores nil evaluation function", func(t *testing.T) {
		m := NewMinimax(WithEvaluationFn(nil))

		require.NotNil(t, m.evaluate)
	})
}

func TestFindBestAction(t *testing.T) {
	t.Run("terminal state has no best action", func(t *testing.T) {
		state := game.NewGameState(game.DefaultPlayground(), 4, game.WithUncaptured(0))

		_, ok, _ := NewMinimax(WithDepth(4)).FindBestAction(state)

		require.False(t, ok)
	})

	t.Run("heuristic cutoff at depth 0", func(t *testing.T) {
		state := game.NewGameState(game.DefaultPlayground(), 0)
		m := NewMinimax(WithDepth(0))

		right, err := m.Value(state, game.Right)
		require.NoError(t, err)
		down, err := m.Value(state, game.Down)
		require.NoError(t, err)
		action, ok, _ := m.FindBestAction(state)

		// Right: player 2 answers Up for 5, player 1 keeps a central column
		require.Equal(t, -3.75, right)
		// Down: player 2 answers Up for 5 against the 4 just taken, player 1 keeps a central row
		require.Equal(t, -0.75, down)
		require.True(t, ok)
		require.Equal(t, game.Down, action)
	})

	t.Run("cutoff bonus is subtracted at minimizing leaves", func(t *testing.T) {
		state := game.NewGameState(game.DefaultPlayground(), 1)
		m := NewMinimax(WithDepth(1))

		right, err := m.Value(state, game.Right)
		require.NoError(t, err)
		down, err := m.Value(state, game.Down)
		require.NoError(t, err)
		action, _, _ := m.FindBestAction(state)

		require.Equal(t, 0.75, right)
		require.Equal(t, 0.5, down)
		require.Equal(t, game.Right, action)
	})

	t.Run("pluggable evaluation", func(t *testing.T) {
		state := game.NewGameState(game.DefaultPlayground(), 0)
		m := NewMinimax(WithDepth(0), WithEvaluationFn(game.NoBonus))

		right, _ := m.Value(state, game.Right)
		down, _ := m.Value(state, game.Down)

		require.Equal(t, -4.0, right, "Without bonus only the score difference should count")
		require.Equal(t, -1.0, down, "Without bonus only the score difference should count")
	})

	t.Run("short horizon takes the last tile at once", func(t *testing.T) {
		for depth := 0; depth <= 2; depth++ {
			action, ok, _ := NewMinimax(WithDepth(depth)).FindBestAction(lastTilePosition())

			require.True(t, ok)
			require.Equal(t, game.Down, action, "Only the immediate capture reaches the end at depth %d", depth)
		}
	})

	t.Run("ties keep the earliest action", func(t *testing.T) {
		m := NewMinimax(WithDepth(3))
		state := lastTilePosition()

		for _, action := range state.PossibleActions() {
			value, err := m.Value(state, action)
			require.NoError(t, err)
			require.Equal(t, 5.0, value, "Every action should secure the last tile within the horizon")
		}

		action, _, _ := m.FindBestAction(state)
		require.Equal(t, game.Right, action, "Right comes first in enumeration order")
	})

	t.Run("search does not change the state", func(t *testing.T) {
		state := game.NewGameState(game.DefaultPlayground(), 6)
		before := *state

		NewMinimax(WithDepth(6)).FindBestAction(state)

		require.Equal(t, before, *state)
	})

	t.Run("illegal action has no value", func(t *testing.T) {
		state := game.NewGameState(game.DefaultPlayground(), 2)

		_, err := NewMinimax(WithDepth(2)).Value(state, game.Up)

		require.ErrorIs(t, err, game.ErrIllegalMove)
	})
}

func TestReferenceTrace(t *testing.T) {
	if testing.Short() {
		t.Skip("depth 14 search")
	}

	state := game.NewGameState(edgePlayground(), 14)
	m := NewMinimax(WithDepth(state.DepthLimit))
	expected := []game.Action{game.Right, game.Left, game.Right, game.Right, game.Right, game.Left}

	for i, want := range expected {
		got, ok, _ := m.FindBestAction(state)
		require.True(t, ok)
		require.Equal(t, want, got, "Move %d", i+1)
		require.NoError(t, state.Play(got))
	}
	require.Equal(t, 12, state.Player1.Score)
	require.Equal(t, 5, state.Player2.Score)
}

func TestPruningMatchesExhaustiveSearch(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for depth := 0; depth <= 3; depth++ {
		pruned := NewMinimax(WithDepth(depth))
		exhaustive := NewMinimax(WithDepth(depth), WithoutPruning())

		for i := 0; i < 3; i++ {
			state := game.NewGameState(game.RandomPlayground(rng), depth)
			for moves := 0; !state.IsTerminal() && moves < 40; moves++ {
				for _, action := range state.PossibleActions() {
					want, err := exhaustive.Value(state, action)
					require.NoError(t, err)
					got, err := pruned.Value(state, action)
					require.NoError(t, err)
					require.Equal(t, want, got, "Root values should not depend on pruning")
				}

				want, _, _ := exhaustive.FindBestAction(state)
				got, ok, _ := pruned.FindBestAction(state)
				require.True(t, ok)
				require.Equal(t, want, got, "Pruning should not change the chosen action")

				require.NoError(t, state.Play(got))
			}
		}
	}
}

func TestSearchMetrics(t *testing.T) {
	state := game.NewGameState(game.DefaultPlayground(), 4)

	_, _, pruned := NewMinimax(WithDepth(4), WithMetrics()).FindBestAction(state)
	_, _, exhaustive := NewMinimax(WithDepth(4), WithMetrics(), WithoutPruning()).FindBestAction(state)
	_, _, silent := NewMinimax(WithDepth(4)).FindBestAction(state)

	require.Equal(t, 4, pruned.Depth)
	require.True(t, pruned.Pruning)
	require.False(t, exhaustive.Pruning)
	require.Positive(t, pruned.Prunes, "Alpha-beta should skip some children")
	require.Zero(t, exhaustive.Prunes)
	require.Less(t, pruned.Nodes, exhaustive.Nodes, "Pruning should visit fewer nodes")
	require.Zero(t, exhaustive.Terminals, "Six plies cannot capture fourteen tiles")
	require.Positive(t, exhaustive.Cutoffs)
	require.Zero(t, silent.Nodes, "Metrics should only be collected on request")
}
