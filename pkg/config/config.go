// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads and validates the engine configuration file.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"laptudirm.com/x/gomoku/pkg/board"
	"laptudirm.com/x/gomoku/pkg/core"
	"laptudirm.com/x/gomoku/pkg/eval"
	"laptudirm.com/x/gomoku/pkg/search"
	"laptudirm.com/x/gomoku/pkg/strategy"
)

var ErrInvalid = errors.New("config: invalid configuration")

// Config is the engine configuration.
type Config struct {
	BoardSize int            `yaml:"board-size"`
	Strategy  strategy.Kind  `yaml:"strategy"`
	Level     strategy.Level `yaml:"level"`
	Core      string         `yaml:"core"`

	Workers      int     `yaml:"workers"`
	Exploration  float64 `yaml:"exploration"`
	RolloutLimit int     `yaml:"rollout-limit"`

	Weights eval.Weights `yaml:"weights"`

	// Levels overrides the search budgets of difficulty levels, keyed by
	// level name.
	Levels map[string]Budget `yaml:"levels,omitempty"`
}

// Budget is the search budget of a difficulty level. Zero fields keep the
// built-in value.
type Budget struct {
	Depth      int `yaml:"depth,omitempty"`
	Iterations int `yaml:"iterations,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		BoardSize: board.DefaultSize,
		Strategy:  strategy.MCTS,
		Level:     strategy.Hard,
		Core:      core.AcceleratedName,

		Workers:     search.DefaultWorkers,
		Exploration: search.DefaultExploration,

		Weights: eval.DefaultWeights,
	}
}

// Load reads the configuration file at path over the defaults and validates
// the result. A weights table in the file replaces the default one as a
// whole, so a weight left out of it is zero and fails validation.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	return Parse(data)
}

// Parse is Load on the contents of a configuration file.
func Parse(data []byte) (Config, error) {
	config := Default()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	var weights struct {
		Weights *eval.Weights `yaml:"weights"`
	}
	if err := yaml.Unmarshal(data, &weights); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if weights.Weights != nil {
		config.Weights = *weights.Weights
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

// Save writes the configuration to path.
func Save(path string, config Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	return nil
}

func (config *Config) Validate() error {
	switch {
	case config.BoardSize < board.MinSize:
		return fmt.Errorf("%w: board size %d, want >= %d", ErrInvalid, config.BoardSize, board.MinSize)
	case !config.Strategy.Valid():
		return fmt.Errorf("%w: strategy %s", ErrInvalid, config.Strategy)
	case !config.Level.Valid():
		return fmt.Errorf("%w: level %s", ErrInvalid, config.Level)
	case config.Core != "" && config.Core != core.PureName && config.Core != core.AcceleratedName:
		return fmt.Errorf("%w: unknown core %q", ErrInvalid, config.Core)
	case config.Workers < 1:
		return fmt.Errorf("%w: workers %d, want >= 1", ErrInvalid, config.Workers)
	case config.Exploration <= 0:
		return fmt.Errorf("%w: exploration %v, want > 0", ErrInvalid, config.Exploration)
	case config.RolloutLimit < 0:
		return fmt.Errorf("%w: rollout limit %d, want >= 0", ErrInvalid, config.RolloutLimit)
	}

	if err := config.Weights.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	for name, budget := range config.Levels {
		if _, err := strategy.ParseLevel(name); err != nil {
			return fmt.Errorf("%w: levels: %v", ErrInvalid, err)
		}

		if budget.Depth < 0 || budget.Iterations < 0 {
			return fmt.Errorf("%w: levels: negative budget for %s", ErrInvalid, name)
		}
	}

	return nil
}

// Options returns the strategy options for the given kind and level.
func (config *Config) Options(kind strategy.Kind, level strategy.Level) strategy.Options {
	var budget Budget
	for name, override := range config.Levels {
		if parsed, err := strategy.ParseLevel(name); err == nil && parsed == level {
			budget = override
		}
	}

	return strategy.Options{
		Kind:  kind,
		Level: level,

		Size:    config.BoardSize,
		Weights: config.Weights,
		Core:    config.Core,

		Depth:      budget.Depth,
		Iterations: budget.Iterations,

		Workers:      config.Workers,
		Exploration:  config.Exploration,
		RolloutLimit: config.RolloutLimit,
	}
}

// StrategyOptions returns the options of the configured strategy and level.
func (config *Config) StrategyOptions() strategy.Options {
	return config.Options(config.Strategy, config.Level)
}

// Search returns the search configuration of the given kind at the
// configured level.
func (config *Config) Search(kind strategy.Kind) search.Config {
	return config.Options(kind, config.Level).Config()
}
