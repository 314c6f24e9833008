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

// Package search holds the configuration, telemetry and errors shared by the
// minimax and mcts searchers.
package search

import (
	"errors"
	"fmt"

	"laptudirm.com/x/gomoku/pkg/board"
	"laptudirm.com/x/gomoku/pkg/eval"
)

var (
	// ErrNoMoves is returned when asked to move on a board without an empty
	// cell, which is a draw.
	ErrNoMoves = errors.New("search: no empty cell to move to")

	ErrConfig = errors.New("search: invalid config")
)

// Defaults of the tunable search parameters.
const (
	DefaultBreadth     = 15
	DefaultLeafWidth   = 10
	DefaultWorkers     = 4
	DefaultExploration = 1.414
	DefaultReportEvery = 100
)

// Config is the configuration of a single searcher. Depth is only used by
// minimax and the iteration parameters only by mcts.
type Config struct {
	Size    int
	Weights eval.Weights

	// Minimax.
	Depth     int
	Breadth   int // candidates kept per node
	LeafWidth int // empty cells looked at by the leaf evaluation

	// MCTS.
	Iterations   int
	Workers      int
	Exploration  float64
	RolloutLimit int   // plies per rollout, 0 plays to the end
	Seed         int64 // random source seed, 0 seeds from the clock
	ReportEvery  int   // iterations between telemetry updates

	// RandomRollouts plays uniformly random rollout moves instead of the
	// greedy best move by static evaluation.
	RandomRollouts bool
}

// Default returns a Config for the given board size with every tunable set
// to its default. Depth and Iterations are left for the caller.
func Default(size int) Config {
	return Config{
		Size:        size,
		Weights:     eval.DefaultWeights,
		Breadth:     DefaultBreadth,
		LeafWidth:   DefaultLeafWidth,
		Workers:     DefaultWorkers,
		Exploration: DefaultExploration,
		ReportEvery: DefaultReportEvery,
	}
}

// ValidateMinimax checks the fields used by the minimax searcher.
func (config *Config) ValidateMinimax() error {
	if err := config.validateCommon(); err != nil {
		return err
	}

	switch {
	case config.Depth < 1:
		return fmt.Errorf("%w: depth %d, want >= 1", ErrConfig, config.Depth)
	case config.Breadth < 1:
		return fmt.Errorf("%w: breadth %d, want >= 1", ErrConfig, config.Breadth)
	case config.LeafWidth < 1:
		return fmt.Errorf("%w: leaf width %d, want >= 1", ErrConfig, config.LeafWidth)
	}

	return nil
}

// ValidateMCTS checks the fields used by the mcts searcher.
func (config *Config) ValidateMCTS() error {
	if err := config.validateCommon(); err != nil {
		return err
	}

	switch {
	case config.Iterations < 1:
		return fmt.Errorf("%w: iterations %d, want >= 1", ErrConfig, config.Iterations)
	case config.Workers < 1:
		return fmt.Errorf("%w: workers %d, want >= 1", ErrConfig, config.Workers)
	case config.Exploration <= 0:
		return fmt.Errorf("%w: exploration %v, want > 0", ErrConfig, config.Exploration)
	case config.RolloutLimit < 0:
		return fmt.Errorf("%w: rollout limit %d, want >= 0", ErrConfig, config.RolloutLimit)
	}

	return nil
}

func (config *Config) validateCommon() error {
	if config.Size < board.MinSize {
		return fmt.Errorf("%w: board size %d, want >= %d", ErrConfig, config.Size, board.MinSize)
	}

	if err := config.Weights.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrConfig, err)
	}

	return nil
}
