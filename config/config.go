package config

import (
	"errors"
	"fmt"
	"strings"

	"conquerbox/meta"

	"github.com/spf13/viper"
)

var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Difficulty selects how far ahead the artificial opponent searches.
type Difficulty string

const (
	Dumb    Difficulty = "dumb"
	Average Difficulty = "average"
	Smart   Difficulty = "smart"
)

func ParseDifficulty(s string) (Difficulty, error) {
	switch d := Difficulty(strings.ToLower(strings.TrimSpace(s))); d {
	case Dumb, Average, Smart:
		return d, nil
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownDifficulty)
}

type Difficulties struct {
	Dumb    int `mapstructure:"dumb"`
	Average int `mapstructure:"average"`
	Smart   int `mapstructure:"smart"`
}

type Experiment struct {
	Games     int    `mapstructure:"games"`
	Seed      uint64 `mapstructure:"seed"`
	OutputDir string `mapstructure:"output_dir"`
}

type Config struct {
	LogLevel     string       `mapstructure:"log_level"`
	MaxTurns     int          `mapstructure:"max_turns"`
	Difficulties Difficulties `mapstructure:"difficulties"`
	Experiment   Experiment   `mapstructure:"experiment"`
}

// Depth is the search horizon of difficulty d.
func (c *Config) Depth(d Difficulty) (int, error) {
	switch d {
	case Dumb:
		return c.Difficulties.Dumb, nil
	case Average:
		return c.Difficulties.Average, nil
	case Smart:
		return c.Difficulties.Smart, nil
	}
	return 0, fmt.Errorf("%q: %w", d, ErrUnknownDifficulty)
}

// Setup loads the configuration from cfgPath, falling back to defaults for
// anything the file leaves out. An empty cfgPath uses defaults and the
// environment only. Environment variables take the form
// CONQUERBOX_DIFFICULTIES_SMART.
func Setup(cfgPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("conquerbox")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		err := v.ReadInConfig()
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgPath, err)
		}
	}

	var cfg Config

	err := v.Unmarshal(&cfg)
	if err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("max_turns", meta.MaxTurns)
	v.SetDefault("difficulties.dumb", meta.DumbDepth)
	v.SetDefault("difficulties.average", meta.AverageDepth)
	v.SetDefault("difficulties.smart", meta.SmartDepth)
	v.SetDefault("experiment.games", 10)
	v.SetDefault("experiment.seed", 1)
	v.SetDefault("experiment.output_dir", "experiments")
}

func (c *Config) validate() error {
	for _, d := range []Difficulty{Dumb, Average, Smart} {
		depth, _ := c.Depth(d)
		if depth < 0 || depth > meta.MaxDepth {
			return fmt.Errorf("difficulty %s: depth %d outside [0, %d]", d, depth, meta.MaxDepth)
		}
	}
	if c.MaxTurns <= 0 {
		return fmt.Errorf("max_turns must be positive, got %d", c.MaxTurns)
	}
	if c.Experiment.Games < 0 {
		return fmt.Errorf("experiment.games must not be negative, got %d", c.Experiment.Games)
	}
	return nil
}
