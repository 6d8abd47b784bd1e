package game

import "fmt"

// Coordinate identifies a cell; Y selects the row and X the column.
type Coordinate struct {
	X int
	Y int
}

// Step returns the coordinate reached by moving one cell in the direction of a.
// The result may lie outside the playground.
func (c Coordinate) Step(a Action) Coordinate {
	d := offsets[a]
	return Coordinate{X: c.X + d.X, Y: c.Y + d.Y}
}

func (c Coordinate) InBounds() bool {
	return c.X >= 0 && c.X < Size && c.Y >= 0 && c.Y < Size
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}
