package experiments

import (
	"os"
	"path/filepath"
	"testing"

	"conquerbox/config"

	"github.com/stretchr/testify/require"
)

func TestRunDifficultyExperiment(t *testing.T) {
	cfg, err := config.Setup("")
	require.NoError(t, err)
	cfg.Difficulties = config.Difficulties{Dumb: 0, Average: 1, Smart: 2}
	cfg.Experiment.Games = 2
	cfg.Experiment.OutputDir = t.TempDir()
	cfg.MaxTurns = 60

	results, err := RunDifficultyExperiment(cfg)

	require.NoError(t, err)
	require.Len(t, results, 6, "Every pair of the four agents should meet once")
	for _, result := range results {
		played := result.Wins[0] + result.Wins[1] + result.Ties + result.Stuck
		require.Equal(t, cfg.Experiment.Games, played, "Every game should be accounted for")
	}
	require.Equal(t, "random", results[0].Agents[0].Name)
	require.Equal(t, "dumb", results[0].Agents[1].Name)

	runs, err := os.ReadDir(filepath.Join(cfg.Experiment.OutputDir, "difficulty"))
	require.NoError(t, err)
	require.Len(t, runs, 1)
	for _, file := range []string{"agent_configs.csv", "game_records.csv", "move_records.csv"} {
		require.FileExists(t, filepath.Join(cfg.Experiment.OutputDir, "difficulty", runs[0].Name(), file))
	}
}

func TestAgentConfigs(t *testing.T) {
	cfg, err := config.Setup("")
	require.NoError(t, err)

	configs := AgentConfigs(cfg)

	require.Len(t, configs, 4)
	require.True(t, configs[0].Random)
	require.Equal(t, []int{4, 8, 14}, []int{configs[1].Depth, configs[2].Depth, configs[3].Depth})
}
