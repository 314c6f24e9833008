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

// Package strategy puts the searchers behind a single move selection
// interface. The searcher is chosen once, when the strategy is created.
package strategy

import (
	"context"
	"errors"
	"fmt"

	"laptudirm.com/x/gomoku/pkg/board"
	"laptudirm.com/x/gomoku/pkg/core"
	"laptudirm.com/x/gomoku/pkg/eval"
	"laptudirm.com/x/gomoku/pkg/rules"
	"laptudirm.com/x/gomoku/pkg/search"
	"laptudirm.com/x/gomoku/pkg/search/mcts"
	"laptudirm.com/x/gomoku/pkg/search/minimax"
)

// ErrBoardSize is returned when a strategy is asked to move on a board of a
// size it was not created for.
var ErrBoardSize = errors.New("strategy: board size mismatch")

// Strategy selects moves for the side to move.
type Strategy interface {
	// Move returns the move of the side to move on b, decided by stone
	// parity. The move is always an empty cell of b. A nil listener is
	// allowed.
	Move(ctx context.Context, b *board.Board, listener search.Listener) (board.Point, error)

	// Name returns a short display name like "mcts/hard".
	Name() string
}

// Options configures a new Strategy. Zero values select the defaults.
type Options struct {
	Kind  Kind
	Level Level

	Size    int
	Weights eval.Weights
	Core    string // core implementation name, see core.New

	// Tier overrides. Zero keeps the level's value.
	Depth      int
	Iterations int

	Workers        int
	Exploration    float64
	RolloutLimit   int
	RandomRollouts bool
	Seed           int64
	ReportEvery    int
}

// Config returns the search configuration of the options.
func (options Options) Config() search.Config {
	size := options.Size
	if size == 0 {
		size = board.DefaultSize
	}

	config := search.Default(size)
	if options.Weights != (eval.Weights{}) {
		config.Weights = options.Weights
	}

	config.Depth = options.Level.Depth()
	if options.Depth > 0 {
		config.Depth = options.Depth
	}

	config.Iterations = options.Level.Iterations()
	if options.Iterations > 0 {
		config.Iterations = options.Iterations
	}

	// negative values are kept so that validation rejects them
	if options.Workers != 0 {
		config.Workers = options.Workers
	}
	if options.Exploration != 0 {
		config.Exploration = options.Exploration
	}
	if options.ReportEvery > 0 {
		config.ReportEvery = options.ReportEvery
	}

	config.RolloutLimit = options.RolloutLimit
	config.RandomRollouts = options.RandomRollouts
	config.Seed = options.Seed

	return config
}

// searcher is the common interface of the minimax and mcts searchers.
type searcher interface {
	Move(ctx context.Context, b *board.Board, color board.Color, listener search.Listener) (board.Point, error)
}

// New creates the strategy described by options.
func New(options Options) (Strategy, error) {
	if !options.Kind.Valid() {
		return nil, fmt.Errorf("new strategy: invalid kind %d", options.Kind)
	}
	if !options.Level.Valid() {
		return nil, fmt.Errorf("new strategy: invalid level %d", options.Level)
	}

	config := options.Config()

	ev, err := eval.NewEvaluator(config.Size, config.Weights)
	if err != nil {
		return nil, fmt.Errorf("new strategy: %w", err)
	}

	c, err := core.New(options.Core, ev)
	if err != nil {
		return nil, fmt.Errorf("new strategy: %w", err)
	}

	var s searcher
	switch options.Kind {
	case Minimax:
		s, err = minimax.New(config, c)
	case MCTS:
		s, err = mcts.New(config, c)
	}

	if err != nil {
		return nil, fmt.Errorf("new strategy: %w", err)
	}

	return &strategy{
		name:     options.Kind.String() + "/" + options.Level.String(),
		size:     config.Size,
		searcher: s,
	}, nil
}

type strategy struct {
	name     string
	size     int
	searcher searcher
}

func (s *strategy) Name() string {
	return s.name
}

func (s *strategy) Move(ctx context.Context, b *board.Board, listener search.Listener) (board.Point, error) {
	if b.Size() != s.size {
		return board.NoPoint, fmt.Errorf("%w: board is %d, want %d", ErrBoardSize, b.Size(), s.size)
	}

	color := rules.Turn(b)

	p, err := s.searcher.Move(ctx, b, color, listener)
	if err != nil {
		return board.NoPoint, err
	}

	if err := rules.ValidateMove(b, p.X, p.Y, color); err != nil {
		panic(fmt.Sprintf("strategy %s: illegal move: %v", s.name, err))
	}

	return p, nil
}
