package game

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Player holds a player's accumulated score and position.
type Player struct {
	Score       int
	CurrentTile Coordinate
}

// GameState is the complete state of a match. It only holds values, so a plain
// struct copy is a fully independent state.
type GameState struct {
	Playground Playground
	Player1    Player
	Player2    Player
	Turn       PlayerID // The player entitled to move
	Uncaptured int      // Number of tiles still uncaptured
	DepthLimit int      // Search horizon of the artificial opponent
}

// Child pairs a legal action with the state it leads to.
type Child struct {
	Action Action
	State  *GameState
}

// Snapshot is a read-only view of a state for rendering.
type Snapshot struct {
	Player1         Player
	Player2         Player
	Turn            PlayerID
	Playground      Playground
	PossibleActions []Action
}

type StateOption func(gs *GameState)

// WithPlayers overrides both players' scores and positions.
func WithPlayers(p1, p2 Player) StateOption {
	return func(gs *GameState) {
		gs.Player1 = p1
		gs.Player2 = p2
	}
}

func WithTurn(turn PlayerID) StateOption {
	return func(gs *GameState) {
		gs.Turn = turn
	}
}

func WithUncaptured(uncaptured int) StateOption {
	return func(gs *GameState) {
		gs.Uncaptured = uncaptured
	}
}

// NewGameState starts a match on pg: player 1 on the top-left corner, player 2
// on the bottom-right corner, player 1 to move. The options only exist to
// resume a position; normal play never needs them.
func NewGameState(pg Playground, depthLimit int, options ...StateOption) *GameState {
	gs := &GameState{ // Default values
		Playground: pg,
		Player1:    Player{CurrentTile: Player1Start},
		Player2:    Player{CurrentTile: Player2Start},
		Turn:       Player1,
		Uncaptured: InitialUncaptured,
		DepthLimit: depthLimit,
	}
	for _, option := range options {
		option(gs)
	}
	return gs
}

// Player returns the player tagged id.
func (gs *GameState) Player(id PlayerID) *Player {
	if id == Player1 {
		return &gs.Player1
	}
	return &gs.Player2
}

// Mover is the player whose turn it is.
func (gs *GameState) Mover() *Player {
	return gs.Player(gs.Turn)
}

// Rival is the player waiting for its turn.
func (gs *GameState) Rival() *Player {
	return gs.Player(gs.Turn.Opponent())
}

func (gs *GameState) IsTerminal() bool {
	return gs.Uncaptured == 0
}

// PossibleActions lists, in enumeration order, the actions the mover may take.
// A terminal state has none.
func (gs *GameState) PossibleActions() []Action {
	if gs.IsTerminal() {
		return []Action{}
	}

	from := gs.Mover().CurrentTile
	rival := gs.Rival().CurrentTile
	actions := make([]Action, 0, len(Actions))
	for _, action := range Actions {
		if canMoveTo(from.Step(action), rival) {
			actions = append(actions, action)
		}
	}
	return actions
}

// Play moves the mover one tile in the direction of action, capturing the
// destination if nobody owns it, and passes the turn. An action outside
// PossibleActions fails with ErrIllegalMove and leaves the state untouched.
func (gs *GameState) Play(action Action) error {
	if !slices.Contains(gs.PossibleActions(), action) {
		return fmt.Errorf("%s cannot play %s from %s: %w", gs.Turn, action, gs.Mover().CurrentTile, ErrIllegalMove)
	}

	mover := gs.Mover()
	to := mover.CurrentTile.Step(action)
	mover.CurrentTile = to

	tile := &gs.Playground[to.Y][to.X]
	if tile.Captured == Uncaptured {
		mover.Score += tile.Score
		tile.Captured = CaptureBy(gs.Turn)
		gs.Uncaptured--
	}

	gs.Turn = gs.Turn.Opponent()
	return nil
}

func (gs *GameState) Copy() *GameState {
	c := *gs
	return &c
}

// Children returns an independent successor state for every legal action, in
// enumeration order.
func (gs *GameState) Children() []Child {
	actions := gs.PossibleActions()
	children := make([]Child, 0, len(actions))
	for _, action := range actions {
		child := gs.Copy()
		if err := child.Play(action); err != nil {
			panic(err) // Unreachable: the action was just reported legal
		}
		children = append(children, Child{Action: action, State: child})
	}
	return children
}

func (gs *GameState) Snapshot() Snapshot {
	return Snapshot{
		Player1:         gs.Player1,
		Player2:         gs.Player2,
		Turn:            gs.Turn,
		Playground:      gs.Playground,
		PossibleActions: gs.PossibleActions(),
	}
}

// Lead is the score difference from id's point of view.
func (gs *GameState) Lead(id PlayerID) int {
	return gs.Player(id).Score - gs.Player(id.Opponent()).Score
}

// Winner reports the player with the higher score once the game is over. It
// returns false while the game is running and on a tie.
func (gs *GameState) Winner() (PlayerID, bool) {
	if !gs.IsTerminal() {
		return 0, false
	}
	switch lead := gs.Lead(Player1); {
	case lead > 0:
		return Player1, true
	case lead < 0:
		return Player2, true
	default:
		return 0, false
	}
}

// Outcome is the result of a match from one player's point of view.
type Outcome int

const (
	InProgress Outcome = iota
	Win
	Loss
	Tie
)

func (o Outcome) String() string {
	return [...]string{"in progress", "win", "loss", "tie"}[o]
}

func (gs *GameState) Outcome(id PlayerID) Outcome {
	if !gs.IsTerminal() {
		return InProgress
	}
	winner, ok := gs.Winner()
	switch {
	case !ok:
		return Tie
	case winner == id:
		return Win
	default:
		return Loss
	}
}

// String draws the board row by row. Uncaptured tiles show their score, the
// players show as P1 and P2, and captured tiles show their owner in lower case.
func (gs *GameState) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "turn: %s  score: %d - %d  uncaptured: %d\n", gs.Turn, gs.Player1.Score, gs.Player2.Score, gs.Uncaptured)
	for y := range gs.Playground {
		for x, tile := range gs.Playground[y] {
			c := Coordinate{X: x, Y: y}
			var cell string
			switch {
			case c == gs.Player1.CurrentTile:
				cell = "P1"
			case c == gs.Player2.CurrentTile:
				cell = "P2"
			case tile.Captured == CapturedByPlayer1:
				cell = "p1"
			case tile.Captured == CapturedByPlayer2:
				cell = "p2"
			default:
				cell = fmt.Sprintf("%d", tile.Score)
			}
			fmt.Fprintf(&b, "%4s", cell)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
