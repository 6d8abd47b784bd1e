package metrics

// AgentConfig describes one contestant of an experiment.
type AgentConfig struct {
	ID      int
	Name    string
	Random  bool // Plays uniformly random legal moves instead of searching
	Depth   int
	Pruning bool
}
