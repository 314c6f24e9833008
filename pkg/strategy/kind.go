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

package strategy

import (
	"fmt"
	"strings"
)

// Kind is the searcher behind a strategy.
type Kind int

const (
	Minimax Kind = iota
	MCTS

	KindN
)

var kindNames = [KindN]string{
	Minimax: "minimax",
	MCTS:    "mcts",
}

func (kind Kind) Valid() bool {
	return kind >= 0 && kind < KindN
}

func (kind Kind) String() string {
	if !kind.Valid() {
		return fmt.Sprintf("Kind(%d)", int(kind))
	}

	return kindNames[kind]
}

func ParseKind(name string) (Kind, error) {
	for kind, kindName := range kindNames {
		if strings.EqualFold(name, kindName) {
			return Kind(kind), nil
		}
	}

	return 0, fmt.Errorf("parse kind: unknown strategy %q", name)
}

func (kind Kind) MarshalText() ([]byte, error) {
	return []byte(kind.String()), nil
}

func (kind *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}

	*kind = parsed
	return nil
}

// Level is a difficulty tier. It sets the search depth of minimax and the
// iteration budget of mcts.
type Level int

const (
	Easy Level = iota
	Medium
	Hard
	Expert

	LevelN
)

var levelNames = [LevelN]string{
	Easy:   "easy",
	Medium: "medium",
	Hard:   "hard",
	Expert: "expert",
}

var (
	levelDepths     = [LevelN]int{3, 4, 5, 6}
	levelIterations = [LevelN]int{300, 600, 1000, 2000}
)

func (level Level) Valid() bool {
	return level >= 0 && level < LevelN
}

func (level Level) String() string {
	if !level.Valid() {
		return fmt.Sprintf("Level(%d)", int(level))
	}

	return levelNames[level]
}

// Depth returns the minimax search depth of the level.
func (level Level) Depth() int {
	return levelDepths[level]
}

// Iterations returns the mcts iteration budget of the level.
func (level Level) Iterations() int {
	return levelIterations[level]
}

func ParseLevel(name string) (Level, error) {
	for level, levelName := range levelNames {
		if strings.EqualFold(name, levelName) {
			return Level(level), nil
		}
	}

	return 0, fmt.Errorf("parse level: unknown level %q", name)
}

func (level Level) MarshalText() ([]byte, error) {
	return []byte(level.String()), nil
}

func (level *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}

	*level = parsed
	return nil
}
