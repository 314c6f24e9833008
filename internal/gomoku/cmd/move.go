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
	"fmt"
	"os"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/gomoku/internal/util"
	"laptudirm.com/x/gomoku/pkg/rules"
	"laptudirm.com/x/gomoku/pkg/search"
)

// gomoku move
func Move() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move [board-file]",
		Short: "Choose a move for the side to move on a board",
		Args:  cobra.MaximumNArgs(1),
		Long: heredoc.Doc(`move reads a board, one row per line with '.' for an
			empty cell, 'X' for black and 'O' for white, and prints the
			move chosen for the side to move as x,y.

			The board is read from the given file, or from the standard
			input if there is none. The side to move follows from the
			number of stones of each color.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := readBoard(args)
			if err != nil {
				return err
			}

			if err := rules.IsValidBoard(b); err != nil {
				return err
			}

			if result := rules.CheckGameEnd(b); result.IsEnd {
				return fmt.Errorf("move: game is already over, winner %s", result.Winner)
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			s, err := newStrategy(cmd, cfg, b.Size())
			if err != nil {
				return err
			}

			var listener search.Listener
			telemetry, _ := cmd.Flags().GetBool("telemetry")
			if telemetry {
				listener = func(update search.Update) {
					fmt.Fprintf(os.Stderr, "info iteration %d/%d depth %d best %s top %v\n",
						update.Iteration, update.Total, update.Depth, update.Best, update.Top)
				}
			} else {
				util.StartSpinner(s.Name() + " is thinking")
			}

			start := time.Now()
			p, err := s.Move(cmd.Context(), b, listener)

			if !telemetry {
				util.PauseSpinner()
			}

			if err != nil {
				return err
			}

			logrus.Debugf("move: %s chose %s in %s", s.Name(), p, time.Since(start))
			fmt.Println(p)
			return nil
		},
	}

	addStrategyFlags(cmd)
	cmd.Flags().Bool("telemetry", false, "Print search updates to stderr")

	return cmd
}
