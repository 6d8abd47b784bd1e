package engine

import (
	"conquerbox/game"
	"conquerbox/searcher"
)

// Match is a single game against the artificial opponent. The caller applies
// its own moves with Play and asks BestAction for the opponent's.
type Match struct {
	state   *game.GameState
	minimax *searcher.Minimax
}

// NewMatch starts a match on pg whose opponent searches depthLimit plies deep.
func NewMatch(pg game.Playground, depthLimit int, options ...game.StateOption) *Match {
	state := game.NewGameState(pg, depthLimit, options...)
	return &Match{
		state:   state,
		minimax: searcher.NewMinimax(searcher.WithDepth(state.DepthLimit)),
	}
}

func (m *Match) PossibleActions() []game.Action {
	return m.state.PossibleActions()
}

// Play applies action for the player to move. It fails with game.ErrIllegalMove
// if action is not possible.
func (m *Match) Play(action game.Action) error {
	return m.state.Play(action)
}

// BestAction is the search's choice for the player to move, or false once the
// match is over.
func (m *Match) BestAction() (game.Action, bool) {
	action, ok, _ := m.minimax.FindBestAction(m.state)
	return action, ok
}

func (m *Match) IsTerminal() bool {
	return m.state.IsTerminal()
}

func (m *Match) Snapshot() game.Snapshot {
	return m.state.Snapshot()
}

func (m *Match) Outcome(id game.PlayerID) game.Outcome {
	return m.state.Outcome(id)
}

// State returns a copy of the current state.
func (m *Match) State() *game.GameState {
	return m.state.Copy()
}
