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

package cmd

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/gomoku/pkg/analyzer"
	"laptudirm.com/x/gomoku/pkg/board"
	"laptudirm.com/x/gomoku/pkg/config"
	"laptudirm.com/x/gomoku/pkg/core"
	"laptudirm.com/x/gomoku/pkg/eval"
	"laptudirm.com/x/gomoku/pkg/strategy"
)

// loadConfig reads the file named by --config. The default file may be
// missing, in which case the default configuration is used.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	flag := cmd.Flag("config")

	cfg, err := config.Load(flag.Value.String())
	if errors.Is(err, fs.ErrNotExist) && !flag.Changed {
		logrus.Debug("config: no configuration file, using defaults")
		return config.Default(), nil
	}

	return cfg, err
}

// addStrategyFlags registers the flags read by newStrategy.
func addStrategyFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("strategy", "s", "", "Search strategy (minimax or mcts)")
	cmd.Flags().StringP("level", "l", "", "Difficulty level (easy, medium, hard or expert)")
	cmd.Flags().Int64("seed", 0, "Random seed of the search")
}

// newStrategy builds the strategy selected by the flags, falling back to
// the configured one, for boards of the given size.
func newStrategy(cmd *cobra.Command, cfg config.Config, size int) (strategy.Strategy, error) {
	kind, level := cfg.Strategy, cfg.Level

	if name, _ := cmd.Flags().GetString("strategy"); name != "" {
		var err error
		if kind, err = strategy.ParseKind(name); err != nil {
			return nil, err
		}
	}

	if name, _ := cmd.Flags().GetString("level"); name != "" {
		var err error
		if level, err = strategy.ParseLevel(name); err != nil {
			return nil, err
		}
	}

	options := cfg.Options(kind, level)
	options.Size = size
	options.Seed, _ = cmd.Flags().GetInt64("seed")

	return strategy.New(options)
}

func newAnalyzer(cfg config.Config, size int) (*analyzer.Analyzer, error) {
	ev, err := eval.NewEvaluator(size, cfg.Weights)
	if err != nil {
		return nil, err
	}

	c, err := core.New(cfg.Core, ev)
	if err != nil {
		return nil, err
	}

	return analyzer.New(c), nil
}

// readBoard parses the board in the named file, or in stdin if there is
// no file.
func readBoard(args []string) (*board.Board, error) {
	var data []byte
	var err error

	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(args[0])
	}

	if err != nil {
		return nil, err
	}

	return board.Parse(string(data))
}
