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
	"io/fs"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"laptudirm.com/x/gomoku/pkg/board"
	"laptudirm.com/x/gomoku/pkg/common"
	"laptudirm.com/x/gomoku/pkg/game"
	"laptudirm.com/x/gomoku/pkg/rules"
)

// gomoku analyze
func Analyze() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [board-file]",
		Short: "Describe a position, a move or a recorded game",
		Args:  cobra.MaximumNArgs(1),
		Long: heredoc.Doc(`analyze prints the threats on a board and which side is
			better off, from the point of view of the side to move or of
			--color. With --move it also grades that move against the
			best move by static evaluation.

			With --replay it instead reviews every move of a saved game
			record and suggests better moves for the weak ones.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			out := yaml.NewEncoder(os.Stdout)
			defer out.Close()

			if path, _ := cmd.Flags().GetString("replay"); path != "" {
				// a bare id names a record in gomoku's records directory
				if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
					path = common.RecordFile(path)
				}

				record, err := game.LoadRecord(path)
				if err != nil {
					return err
				}

				a, err := newAnalyzer(cfg, record.Size)
				if err != nil {
					return err
				}

				report, err := a.Replay(record.Size, record.Moves)
				if err != nil {
					return err
				}

				return out.Encode(report)
			}

			b, err := readBoard(args)
			if err != nil {
				return err
			}

			a, err := newAnalyzer(cfg, b.Size())
			if err != nil {
				return err
			}

			color := rules.Turn(b)
			if name, _ := cmd.Flags().GetString("color"); name != "" {
				if color, err = board.ParseColor(name); err != nil {
					return err
				}
			}

			if move, _ := cmd.Flags().GetString("move"); move != "" {
				p, err := board.ParsePoint(move)
				if err != nil {
					return err
				}

				quality, err := a.MoveQuality(b, p, color)
				if err != nil {
					return err
				}

				if err := out.Encode(quality); err != nil {
					return err
				}
			}

			return out.Encode(a.Situation(b, color))
		},
	}

	cmd.Flags().String("move", "", "Move to grade, as x,y")
	cmd.Flags().String("color", "", "Color to analyze for (default: side to move)")
	cmd.Flags().String("replay", "", "Game record file or id to review")

	return cmd
}
