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

package config

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"laptudirm.com/x/gomoku/pkg/eval"
	"laptudirm.com/x/gomoku/pkg/strategy"
)

func TestDefaultIsValid(t *testing.T) {
	config := Default()
	if err := config.Validate(); err != nil {
		t.Fatalf("default config: %v", err)
	}
}

func TestParseMergesOverDefaults(t *testing.T) {
	config, err := Parse([]byte(`
board-size: 9
strategy: minimax
level: easy
levels:
  easy:
    depth: 2
  expert:
    iterations: 5000
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if config.BoardSize != 9 || config.Strategy != strategy.Minimax || config.Level != strategy.Easy {
		t.Errorf("parsed config: %+v", config)
	}

	if config.Weights != eval.DefaultWeights || config.Workers != Default().Workers {
		t.Errorf("defaults lost: %+v", config)
	}

	search := config.Search(strategy.Minimax)
	if search.Size != 9 || search.Depth != 2 {
		t.Errorf("Search = %+v, want size 9 depth 2", search)
	}

	options := config.Options(strategy.MCTS, strategy.Expert)
	if options.Config().Iterations != 5000 {
		t.Errorf("expert iterations = %d, want 5000", options.Config().Iterations)
	}
}

func TestParseErrors(t *testing.T) {
	tests := map[string]string{
		"unknown strategy": "strategy: rl\n",
		"unknown level":    "level: godlike\n",
		"small board":      "board-size: 4\n",
		"unknown core":     "core: gpu\n",
		"no workers":       "workers: 0\n",
		"no exploration":   "exploration: 0\n",
		"unknown override": "levels:\n  impossible:\n    depth: 3\n",
		"missing weight": `
weights:
  five: 100000
  four: 10000
  blocked-four: 5000
  three: 1000
  blocked-three: 500
  two: 100
  blocked-two: 50
`,
		"non-monotonic weights": `
weights:
  five: 100000
  four: 10000
  blocked-four: 20000
  three: 1000
  blocked-three: 500
  two: 100
  blocked-two: 50
  one: 10
`,
	}

	for name, text := range tests {
		if _, err := Parse([]byte(text)); err == nil {
			t.Errorf("%s: Parse succeeded", name)
		}
	}

	_, err := Parse([]byte("workers: -2\n"))
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("negative workers: %v, want ErrInvalid", err)
	}
}

func TestExplorationReachesSearch(t *testing.T) {
	config, err := Parse([]byte("exploration: 0.5\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if got := config.Search(strategy.MCTS).Exploration; got != 0.5 {
		t.Errorf("search exploration = %v, want 0.5", got)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	config := Default()
	config.Level = strategy.Expert
	config.Core = "pure"
	config.Levels = map[string]Budget{"hard": {Depth: 4, Iterations: 800}}

	if err := Save(path, config); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if !reflect.DeepEqual(loaded, config) {
		t.Fatalf("Load = %+v, want %+v", loaded, config)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "none.yaml")); err == nil {
		t.Fatalf("Load of a missing file succeeded")
	}
}
