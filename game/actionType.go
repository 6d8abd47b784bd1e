package game

import (
	"fmt"
	"strings"
)

// Action is one of the four orthogonal moves.
type Action int

// The declaration order is the enumeration order used for legal moves and,
// through it, for breaking ties between equally scored actions.
const (
	Right Action = iota
	Left
	Up
	Down
)

// Actions lists every action in enumeration order.
var Actions = [...]Action{Right, Left, Up, Down}

func (a Action) String() string {
	switch a {
	case Right:
		return "Right"
	case Left:
		return "Left"
	case Up:
		return "Up"
	case Down:
		return "Down"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// ParseAction accepts an action name or its first letter, in any case.
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "right", "r":
		return Right, nil
	case "left", "l":
		return Left, nil
	case "up", "u":
		return Up, nil
	case "down", "d":
		return Down, nil
	}
	return 0, fmt.Errorf("parse %q: %w", s, ErrInvalidAction)
}
