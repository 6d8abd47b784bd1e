package game

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/rand"
)

// Score range of randomly generated playgrounds, inclusive.
const (
	MinRandomScore = 1
	MaxRandomScore = 9
)

// Capture records which player, if any, owns a tile.
type Capture int

const (
	Uncaptured Capture = iota
	CapturedByPlayer1
	CapturedByPlayer2
)

// CaptureBy returns the capture state owned by player p.
func CaptureBy(p PlayerID) Capture {
	if p == Player1 {
		return CapturedByPlayer1
	}
	return CapturedByPlayer2
}

// Tile is a single cell. Score never changes; Captured leaves Uncaptured at most once.
type Tile struct {
	Score    int
	Captured Capture
}

// Playground is the grid of tiles indexed [y][x]. It is an array so that
// assigning or copying a State never shares tiles between the copies.
type Playground [Size][Size]Tile

// NewPlayground builds a playground from row-major scores, with both starting
// corners captured by their owners.
func NewPlayground(scores [Size][Size]int) Playground {
	var pg Playground
	for y := range scores {
		for x, score := range scores[y] {
			pg[y][x] = Tile{Score: score}
		}
	}
	pg.claimStarts()
	return pg
}

// DefaultPlayground is the board offered before a player customizes the scores.
func DefaultPlayground() Playground {
	return NewPlayground([Size][Size]int{
		{0, 1, 5, 3},
		{4, 2, 1, 2},
		{1, 3, 2, 5},
		{5, 2, 1, 0},
	})
}

// RandomPlayground draws every score uniformly from [MinRandomScore, MaxRandomScore].
func RandomPlayground(rng *rand.Rand) Playground {
	var scores [Size][Size]int
	for y := range scores {
		for x := range scores[y] {
			scores[y][x] = MinRandomScore + rng.Intn(MaxRandomScore-MinRandomScore+1)
		}
	}
	return NewPlayground(scores)
}

// ParsePlayground reads Size*Size non-negative integers in row-major order,
// separated by whitespace or commas.
func ParsePlayground(s string) (Playground, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == ';'
	})
	if len(fields) != Size*Size {
		return Playground{}, fmt.Errorf("expected %d scores, got %d: %w", Size*Size, len(fields), ErrInvalidPlayground)
	}

	var scores [Size][Size]int
	for i, field := range fields {
		score, err := strconv.Atoi(field)
		if err != nil {
			return Playground{}, fmt.Errorf("score %d (%q): %w", i, field, ErrInvalidPlayground)
		}
		if score < 0 {
			return Playground{}, fmt.Errorf("score %d is negative (%d): %w", i, score, ErrInvalidPlayground)
		}
		scores[i/Size][i%Size] = score
	}
	return NewPlayground(scores), nil
}

func (pg *Playground) claimStarts() {
	pg[Player1Start.Y][Player1Start.X].Captured = CaptureBy(Player1)
	pg[Player2Start.Y][Player2Start.X].Captured = CaptureBy(Player2)
}

// At returns the tile at c. c must be in bounds.
func (pg *Playground) At(c Coordinate) Tile {
	return pg[c.Y][c.X]
}

// Uncaptured counts the tiles no player owns yet.
func (pg *Playground) Uncaptured() int {
	count := 0
	for y := range pg {
		for x := range pg[y] {
			if pg[y][x].Captured == Uncaptured {
				count++
			}
		}
	}
	return count
}
