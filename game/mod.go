package game

import "errors"

// Size is the side length of the square playground.
const Size = 4

// InitialUncaptured is the number of uncaptured tiles at the start of a match:
// every tile except the two starting corners.
const InitialUncaptured = Size*Size - 2

var (
	ErrIllegalMove       = errors.New("illegal move")
	ErrInvalidPlayground = errors.New("invalid playground")
	ErrInvalidAction     = errors.New("invalid action")
)

// PlayerID tags one of the two players. It doubles as the turn indicator.
type PlayerID int

const (
	Player1 PlayerID = 1
	Player2 PlayerID = 2
)

func (p PlayerID) Opponent() PlayerID {
	if p == Player1 {
		return Player2
	}
	return Player1
}

func (p PlayerID) String() string {
	switch p {
	case Player1:
		return "player1"
	case Player2:
		return "player2"
	default:
		return "unknown"
	}
}

// Evaluate scores a position for the player standing on pos. It is used as a
// positional bonus when a search is cut off before the game ends.
type Evaluate func(pos Coordinate) float64
