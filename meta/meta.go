// meta/meta.go
package meta

// DefaultDepth is the search horizon used when none is configured.
const DefaultDepth = 14

// MaxDepth caps the search horizon. Deeper searches are clamped to it.
const MaxDepth = 20

// Search horizons of the three difficulty tiers.
const (
	DumbDepth    = 4
	AverageDepth = 8
	SmartDepth   = 14
)

// MaxTurns bounds a match. Two players can shuffle over captured tiles forever
// without ever reaching a terminal state.
const MaxTurns = 300
