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
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/gomoku/pkg/board"
	"laptudirm.com/x/gomoku/pkg/common"
	"laptudirm.com/x/gomoku/pkg/game"
	"laptudirm.com/x/gomoku/internal/util"
)

// gomoku play
func Play() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game against the engine",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`play starts a game on the terminal against the configured
			strategy. Moves are entered as x,y where x is the row and y
			is the column. Enter 'undo' to take back your last move and
			'quit' to stop playing.

			With --self the strategy plays against itself instead. The
			record of the game is saved in gomoku's data directory.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			s, err := newStrategy(cmd, cfg, cfg.BoardSize)
			if err != nil {
				return err
			}

			a, err := newAnalyzer(cfg, cfg.BoardSize)
			if err != nil {
				return err
			}

			self, _ := cmd.Flags().GetBool("self")
			colorName, _ := cmd.Flags().GetString("color")

			human, err := board.ParseColor(colorName)
			if err != nil || human == board.Empty {
				return fmt.Errorf("play: invalid color %q", colorName)
			}

			mode := game.HumanVsAI
			black, white := "human", s.Name()
			if self {
				mode = game.SelfPlay
				black = s.Name()
			} else if human == board.White {
				black, white = white, black
			}

			session := game.NewSession(mode, cfg.BoardSize, a)
			input := bufio.NewScanner(os.Stdin)

		play:
			for session.Active() && cmd.Context().Err() == nil {
				render(os.Stdout, session.Board(), lastMove(session)...)

				toMove := session.ToMove()
				if self || toMove != human {
					util.StartSpinner(s.Name() + " is thinking")
					p, _, err := session.AIMove(cmd.Context(), s, nil)
					util.PauseSpinner()

					if err != nil {
						return err
					}

					fmt.Printf("%s plays %s\n\n", toMove, p)
					continue
				}

				fmt.Printf("%s to move: ", toMove)
				if !input.Scan() {
					break
				}

				switch text := strings.TrimSpace(input.Text()); text {
				case "quit", "exit":
					break play

				case "undo":
					if _, err := session.UndoHuman(); errors.Is(err, game.ErrNoMoves) {
						fmt.Println("no move of yours to take back")
					}

				default:
					p, err := board.ParsePoint(text)
					if err != nil {
						fmt.Println(err)
						continue
					}

					if _, err := session.PlacePiece(p.X, p.Y); err != nil {
						fmt.Println(err)
						continue
					}

					history := session.History()
					last := history[len(history)-1]
					fmt.Printf("move quality %.1f%% (%s)\n\n", last.Quality, last.Pattern)
				}
			}

			result, ended := session.Result()
			if ended {
				render(os.Stdout, session.Board(), result.WinLine...)

				if result.Winner == board.Empty {
					fmt.Println("Draw by full board")
				} else {
					fmt.Printf("%s wins\n", result.Winner)
				}
			}

			if len(session.History()) == 0 {
				return nil
			}

			record := session.Record(black, white)
			path, err := record.Save(common.RecordsDirectory)
			if err != nil {
				return err
			}

			logrus.Infof("Game record saved to %s", path)
			return nil
		},
	}

	addStrategyFlags(cmd)
	cmd.Flags().Bool("self", false, "Let the engine play against itself")
	cmd.Flags().String("color", "black", "Color played by the human")

	return cmd
}

func lastMove(session *game.Session) []board.Point {
	history := session.History()
	if len(history) == 0 {
		return nil
	}

	return []board.Point{history[len(history)-1].Move.Point}
}
