package game

// Unit offsets per action. Up decreases Y because row 0 is the top row.
var offsets = [...]Coordinate{
	Right: {X: 1, Y: 0},
	Left:  {X: -1, Y: 0},
	Up:    {X: 0, Y: -1},
	Down:  {X: 0, Y: 1},
}

// Starting tiles of each player. Both are captured by their owner before play.
var (
	Player1Start = Coordinate{X: 0, Y: 0}
	Player2Start = Coordinate{X: Size - 1, Y: Size - 1}
)

// canMoveTo reports whether a mover may land on to while its rival stands on rival.
// Already captured tiles are valid destinations.
func canMoveTo(to, rival Coordinate) bool {
	return to.InBounds() && to != rival
}
