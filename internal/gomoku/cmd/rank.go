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

	"github.com/spf13/cobra"

	"laptudirm.com/x/gomoku/pkg/common"
	"laptudirm.com/x/gomoku/pkg/ranking"
)

// gomoku rank
func Rank() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Show the rating of every strategy that has played",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := ranking.Load(common.RankingFile)
			if err != nil {
				return err
			}

			standings := table.Leaderboard()
			if len(standings) == 0 {
				fmt.Println("\x1b[31mNo Rated Games.\x1b[0m")
				return nil
			}

			if top, _ := cmd.Flags().GetInt("top"); top > 0 && top < len(standings) {
				standings = standings[:top]
			}

			fmt.Println("╔═══════════════════════════════════════════════════════════╗")
			fmt.Println("║    Name                Rating   Wins Loss Draw   Win Rate ║")
			fmt.Println("╠═══════════════════════════════════════════════════════════╣")
			for _, standing := range standings {
				fmt.Printf(
					"║ %2d. %-18s   %6d   %4d %4d %4d   %7.2f%% ║\n",
					standing.Rank, standing.Name, standing.Rating,
					standing.Wins, standing.Losses, standing.Draws,
					standing.WinRate(),
				)
			}
			fmt.Println("╚═══════════════════════════════════════════════════════════╝")

			return nil
		},
	}

	cmd.Flags().Int("top", 10, "Number of players to show, 0 for all")

	return cmd
}
