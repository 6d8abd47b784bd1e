package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Depth     int
	Pruning   bool
	Duration  time.Duration
	Nodes     int // States visited by the search, root children included
	Terminals int // Leaves scored exactly
	Cutoffs   int // Leaves scored with the heuristic
	Prunes    int // Nodes whose remaining children were skipped
}

type MoveMetric struct {
	Step   int
	Player int // Player ID
	Action string
	SearchMetric
}

type GameMetric struct {
	ID             string
	StartingPlayer int // Player ID
	Winner         int // Player ID, 0 on a tie or an unfinished game
	Score1         int
	Score2         int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Finished       bool
}

type Collector interface {
	Start(depth int, pruning bool)
	AddNode()
	AddTerminal()
	AddCutoff()
	AddPrune()
	Complete() SearchMetric
}

type collector struct {
	depth     int
	pruning   bool
	startTime time.Time
	nodes     atomic.Int64
	terminals atomic.Int64
	cutoffs   atomic.Int64
	prunes    atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters for a new search.
func (m *collector) Start(depth int, pruning bool) {
	m.startTime = time.Now()
	m.depth = depth
	m.pruning = pruning
	m.nodes.Store(0)
	m.terminals.Store(0)
	m.cutoffs.Store(0)
	m.prunes.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddTerminal() {
	m.terminals.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) AddPrune() {
	m.prunes.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:     m.depth,
		Pruning:   m.pruning,
		Duration:  time.Since(m.startTime),
		Nodes:     int(m.nodes.Load()),
		Terminals: int(m.terminals.Load()),
		Cutoffs:   int(m.cutoffs.Load()),
		Prunes:    int(m.prunes.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int, pruning bool) {}
func (m *dummyCollector) AddNode()                      {}
func (m *dummyCollector) AddTerminal()                  {}
func (m *dummyCollector) AddCutoff()                    {}
func (m *dummyCollector) AddPrune()                     {}
func (m *dummyCollector) Complete() SearchMetric        { return SearchMetric{} }
