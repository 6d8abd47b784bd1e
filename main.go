package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"conquerbox/config"
	"conquerbox/engine"
	"conquerbox/experiments"
	"conquerbox/game"
	"conquerbox/searcher"
	"conquerbox/searcher/agent"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

func main() {
	cfgPath := flag.String("config", "", "Path to a configuration file (yaml, json, toml or env)")
	mode := flag.String("mode", "play", "play against the computer, or run the difficulty experiment")
	difficulty := flag.String("difficulty", string(config.Dumb), "Opponent strength: dumb, average or smart")
	random := flag.Bool("random", false, "Play on a randomly generated playground")
	board := flag.String("board", "", "16 comma separated tile scores, row by row")
	seed := flag.Uint64("seed", 0, "Seed for random playgrounds (0 uses the clock)")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cfg, err := config.Setup(*cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to setup configuration")
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msgf("invalid log level %q", cfg.LogLevel)
	}
	zerolog.SetGlobalLevel(level)

	switch *mode {
	case "play":
		err = play(cfg, *difficulty, *random, *board, *seed)
	case "experiment":
		_, err = experiments.RunDifficultyExperiment(cfg)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("conquerbox stopped")
	}
}

func play(cfg *config.Config, level string, random bool, board string, seed uint64) error {
	difficulty, err := config.ParseDifficulty(level)
	if err != nil {
		return err
	}
	depth, err := cfg.Depth(difficulty)
	if err != nil {
		return err
	}

	pg, err := choosePlayground(random, board, seed)
	if err != nil {
		return err
	}

	state := game.NewGameState(pg, depth)
	agents := [2]agent.Agent{
		agent.NewConsoleAgent(os.Stdin, os.Stdout),
		agent.NewEvaluationAgent(searcher.NewMinimax(searcher.WithDepth(depth))),
	}
	announce := func(player game.PlayerID, action game.Action, _ *game.GameState) {
		if player == game.Player2 {
			fmt.Printf("AI played %s\n", action)
		}
	}
	e := engine.NewLocalEngine(agents, state, engine.WithMaxTurns(cfg.MaxTurns), engine.WithObserver(announce))

	_, _, err = e.Run()
	if errors.Is(err, agent.ErrInputClosed) {
		fmt.Println("\nbye")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Print(state)
	fmt.Printf("Player: %d  AI: %d\n", state.Player1.Score, state.Player2.Score)
	switch state.Outcome(game.Player1) {
	case game.Win:
		fmt.Println("You win!")
	case game.Loss:
		fmt.Println("You lose.")
	case game.Tie:
		fmt.Println("It's a tie.")
	default:
		fmt.Println("Stopped before every tile was captured.")
	}
	return nil
}

func choosePlayground(random bool, board string, seed uint64) (game.Playground, error) {
	switch {
	case board != "":
		return game.ParsePlayground(board)
	case random:
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		return game.RandomPlayground(rand.New(rand.NewSource(seed))), nil
	default:
		return game.DefaultPlayground(), nil
	}
}
