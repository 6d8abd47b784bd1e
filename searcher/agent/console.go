package agent

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"conquerbox/experiments/metrics"
	"conquerbox/game"

	"golang.org/x/exp/slices"
)

// ErrInputClosed is returned when the human player's input ends before a move is read.
var ErrInputClosed = errors.New("input closed")

type consoleAgent struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewConsoleAgent returns an agent that reads a human player's actions from r,
// one per line, prompting on w. Unknown or illegal input is asked for again.
func NewConsoleAgent(r io.Reader, w io.Writer) Agent {
	return &consoleAgent{in: bufio.NewScanner(r), out: w}
}

func (a *consoleAgent) FindMove(state *game.GameState) (game.Action, metrics.SearchMetric, error) {
	actions := state.PossibleActions()
	if len(actions) == 0 {
		return 0, metrics.SearchMetric{}, fmt.Errorf("no legal action for %s: %w", state.Turn, game.ErrIllegalMove)
	}

	names := make([]string, len(actions))
	for i, action := range actions {
		names[i] = action.String()
	}

	for {
		fmt.Fprintf(a.out, "%s\nyour move [%s]: ", state, strings.Join(names, ", "))
		if !a.in.Scan() {
			if err := a.in.Err(); err != nil {
				return 0, metrics.SearchMetric{}, fmt.Errorf("read move: %w", err)
			}
			return 0, metrics.SearchMetric{}, ErrInputClosed
		}

		action, err := game.ParseAction(a.in.Text())
		if err != nil {
			fmt.Fprintf(a.out, "unknown action %q\n", a.in.Text())
			continue
		}
		if !slices.Contains(actions, action) {
			fmt.Fprintf(a.out, "%s is not possible here\n", action)
			continue
		}
		return action, metrics.SearchMetric{}, nil
	}
}
