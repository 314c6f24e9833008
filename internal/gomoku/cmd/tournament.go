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
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"laptudirm.com/x/gomoku/pkg/common"
	"laptudirm.com/x/gomoku/pkg/eve/tournament"
	"laptudirm.com/x/gomoku/pkg/ranking"
)

// gomoku tournament
func Tournament() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tournament details-file",
		Short: "Run a tournament between different strategies",
		Args:  cobra.ExactArgs(1),
		Long: heredoc.Doc(`tournament plays the strategies listed in the details file
			against each other, in round-robin or gauntlet rounds of game
			pairs, and prints their scores as the games finish.

			The results are also rated in gomoku's ranking table, which
			can be shown with 'gomoku rank'.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			var config tournament.Config
			if err := yaml.Unmarshal(file, &config); err != nil {
				return err
			}

			if save, _ := cmd.Flags().GetBool("records"); save && config.Records == "" {
				config.Records = common.RecordsDirectory
			}

			tour, err := tournament.NewTournament(config)
			if err != nil {
				return err
			}

			tour.Ranking, err = ranking.Load(common.RankingFile)
			if err != nil {
				return err
			}

			err = tour.Start(cmd.Context())

			// rate the games played even if the tournament was stopped
			if err := tour.Ranking.Save(common.RankingFile); err != nil {
				return err
			}

			return err
		},
	}

	cmd.Flags().Bool("records", false, "Save the record of every game")

	return cmd
}
