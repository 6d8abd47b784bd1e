package agent

import (
	"bytes"
	"strings"
	"testing"

	"conquerbox/game"
	"conquerbox/searcher"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestEvaluationAgent(t *testing.T) {
	t.Run("plays the searched action", func(t *testing.T) {
		a := NewEvaluationAgent(searcher.NewMinimax(searcher.WithDepth(0), searcher.WithMetrics()))

		action, metric, err := a.FindMove(game.NewGameState(game.DefaultPlayground(), 0))

		require.NoError(t, err)
		require.Equal(t, game.Down, action)
		require.Positive(t, metric.Nodes)
	})

	t.Run("fails on a terminal state", func(t *testing.T) {
		a := NewEvaluationAgent(searcher.NewMinimax(searcher.WithDepth(0)))

		_, _, err := a.FindMove(game.NewGameState(game.DefaultPlayground(), 0, game.WithUncaptured(0)))

		require.ErrorIs(t, err, game.ErrIllegalMove)
	})
}

func TestRandomAgent(t *testing.T) {
	t.Run("only plays legal actions", func(t *testing.T) {
		a := NewRandomAgent(rand.New(rand.NewSource(5)))
		state := game.NewGameState(game.DefaultPlayground(), 0)
		seen := map[game.Action]bool{}

		for i := 0; i < 50; i++ {
			action, _, err := a.FindMove(state)
			require.NoError(t, err)
			require.Contains(t, state.PossibleActions(), action)
			seen[action] = true
		}

		require.Len(t, seen, 2, "Both legal actions should come up")
	})

	t.Run("fails on a terminal state", func(t *testing.T) {
		a := NewRandomAgent(rand.New(rand.NewSource(5)))

		_, _, err := a.FindMove(game.NewGameState(game.DefaultPlayground(), 0, game.WithUncaptured(0)))

		require.ErrorIs(t, err, game.ErrIllegalMove)
	})
}

func TestConsoleAgent(t *testing.T) {
	t.Run("asks again until the input is a legal action", func(t *testing.T) {
		var out bytes.Buffer
		a := NewConsoleAgent(strings.NewReader("north\nup\nd\n"), &out)

		action, _, err := a.FindMove(game.NewGameState(game.DefaultPlayground(), 0))

		require.NoError(t, err)
		require.Equal(t, game.Down, action)
		require.Contains(t, out.String(), `unknown action "north"`)
		require.Contains(t, out.String(), "Up is not possible here")
		require.Contains(t, out.String(), "your move [Right, Down]")
	})

	t.Run("input runs out", func(t *testing.T) {
		a := NewConsoleAgent(strings.NewReader("left\n"), &bytes.Buffer{})

		_, _, err := a.FindMove(game.NewGameState(game.DefaultPlayground(), 0))

		require.ErrorIs(t, err, ErrInputClosed)
	})
}
