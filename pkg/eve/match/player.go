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

package match

import (
	"context"
	"fmt"

	"laptudirm.com/x/gomoku/pkg/board"
	"laptudirm.com/x/gomoku/pkg/strategy"
)

// PlayerConfig describes a strategy taking part in matches. Zero search
// fields keep the value of the level or the default.
type PlayerConfig struct {
	Name string `yaml:"name"`

	Strategy strategy.Kind  `yaml:"strategy"`
	Level    strategy.Level `yaml:"level"`
	Core     string         `yaml:"core"`

	Depth      int     `yaml:"depth"`
	Iterations int     `yaml:"iterations"`
	Workers    int     `yaml:"workers"`
	Seed       int64   `yaml:"seed"`
	Explore    float64 `yaml:"exploration"`

	RolloutLimit   int  `yaml:"rollout-limit"`
	RandomRollouts bool `yaml:"random-rollouts"`

	// Time control as [moves/]base+increment in seconds. Empty means the
	// player is not timed.
	TimeC string `yaml:"tc"`
}

// Player is a strategy ready to play matches on boards of one size.
type Player struct {
	config PlayerConfig
	strategy.Strategy
}

func StartPlayer(config PlayerConfig, size int) (*Player, error) {
	s, err := strategy.New(strategy.Options{
		Kind:  config.Strategy,
		Level: config.Level,
		Size:  size,
		Core:  config.Core,

		Depth:          config.Depth,
		Iterations:     config.Iterations,
		Workers:        config.Workers,
		Exploration:    config.Explore,
		RolloutLimit:   config.RolloutLimit,
		RandomRollouts: config.RandomRollouts,
		Seed:           config.Seed,
	})
	if err != nil {
		return nil, fmt.Errorf("start player %s: %w", config.Name, err)
	}

	return &Player{config: config, Strategy: s}, nil
}

// Name returns the configured name, or the strategy's if there is none.
func (player *Player) Name() string {
	if player.config.Name != "" {
		return player.config.Name
	}

	return player.Strategy.Name()
}

func (player *Player) Config() PlayerConfig {
	return player.config
}

// Go asks the player for its move on b within the given time.
func (player *Player) Go(ctx context.Context, b *board.Board, tc TimeControl) (board.Point, error) {
	if tc.Timed() {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, tc.Allot())
		defer cancel()
	}

	return player.Strategy.Move(ctx, b, nil)
}
