package experiments

import (
	"fmt"

	"conquerbox/config"
	"conquerbox/engine"
	"conquerbox/experiments/metrics"
	"conquerbox/game"
	"conquerbox/searcher"
	"conquerbox/searcher/agent"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Result tallies the games of one matchup. Wins are indexed like the matchup.
type Result struct {
	Agents [2]metrics.AgentConfig
	Wins   [2]int
	Ties   int
	Stuck  int // Games stopped at the turn limit
}

// AgentConfigs lists the random baseline followed by the three difficulty tiers.
func AgentConfigs(cfg *config.Config) []metrics.AgentConfig {
	return []metrics.AgentConfig{
		{ID: 0, Name: "random", Random: true},
		{ID: 1, Name: string(config.Dumb), Depth: cfg.Difficulties.Dumb, Pruning: true},
		{ID: 2, Name: string(config.Average), Depth: cfg.Difficulties.Average, Pruning: true},
		{ID: 3, Name: string(config.Smart), Depth: cfg.Difficulties.Smart, Pruning: true},
	}
}

// RunDifficultyExperiment pits every tier against the random baseline and
// against each other tier, on random playgrounds.
func RunDifficultyExperiment(cfg *config.Config) ([]Result, error) {
	configs := AgentConfigs(cfg)
	matchUps := [][2]metrics.AgentConfig{}
	for i := 1; i < len(configs); i++ {
		for j := 0; j < i; j++ {
			matchUps = append(matchUps, [2]metrics.AgentConfig{configs[j], configs[i]})
		}
	}
	return runExperiment("difficulty", cfg, configs, matchUps)
}

func runExperiment(name string, cfg *config.Config, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig) ([]Result, error) {
	rng := rand.New(rand.NewSource(cfg.Experiment.Seed))
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	results := make([]Result, 0, len(matchUps))

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchUp := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), matchUp[0], matchUp[1])

		result := Result{Agents: matchUp}
		for i := 0; i < cfg.Experiment.Games; i++ {
			// Alternate the starting agent
			first, second := 0, 1
			if i%2 == 1 {
				first, second = 1, 0
			}
			pg := game.RandomPlayground(rng)

			gameMetric, moveMetrics, err := runGame(matchUp[first], matchUp[second], pg, rng, cfg.MaxTurns)
			if err != nil {
				return nil, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}

			switch {
			case !gameMetric.Finished:
				result.Stuck++
			case gameMetric.Winner == 0:
				result.Ties++
			case gameMetric.Winner == int(game.Player1):
				result.Wins[first]++
			default:
				result.Wins[second]++
			}

			gameRecords = append(gameRecords, metrics.GameRecord{
				Agent1:     matchUp[first].ID,
				Agent2:     matchUp[second].ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       gameMetric.ID,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with score %d - %d", mi+1, len(matchUps), i+1, gameMetric.Score1, gameMetric.Score2)
		}
		results = append(results, result)
		log.Info().Msgf("completed matchup %d of %d: %s won %d, %s won %d, %d ties", mi+1, len(matchUps), matchUp[0].Name, result.Wins[0], matchUp[1].Name, result.Wins[1], result.Ties)
	}

	log.Info().Msgf("completed %s experiment", name)

	if err := store(name, cfg.Experiment.OutputDir, configs, gameRecords, moveRecords); err != nil {
		return results, err
	}
	return results, nil
}

func store(name, dir string, configs []metrics.AgentConfig, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) error {
	writer, err := metrics.NewWriter(dir, name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())
	return nil
}

// runGame plays a single game between two agents, config1 moving first
func runGame(config1, config2 metrics.AgentConfig, pg game.Playground, rng *rand.Rand, maxTurns int) (metrics.GameMetric, []metrics.MoveMetric, error) {
	agents := [2]agent.Agent{
		createAgent(config1, rng),
		createAgent(config2, rng),
	}
	state := game.NewGameState(pg, config1.Depth)
	e := engine.NewLocalEngine(agents, state, engine.WithMaxTurns(maxTurns))

	return e.Run()
}

func createAgent(config metrics.AgentConfig, rng *rand.Rand) agent.Agent {
	if config.Random {
		return agent.NewRandomAgent(rng)
	}

	options := []searcher.Option{searcher.WithDepth(config.Depth), searcher.WithMetrics()}
	if !config.Pruning {
		options = append(options, searcher.WithoutPruning())
	}
	return agent.NewEvaluationAgent(searcher.NewMinimax(options...))
}
