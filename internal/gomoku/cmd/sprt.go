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
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"laptudirm.com/x/gomoku/pkg/common"
	"laptudirm.com/x/gomoku/pkg/eve/sprt"
)

// gomoku sprt
func SPRT() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sprt { details-file --resume test-name }",
		Short: "Run a Sequential Probability Ratio Test between two strategies",
		Args:  cobra.MaximumNArgs(1),
		Long: heredoc.Doc(`sprt plays game pairs between the two strategies of the
			details file until either the null or the alternate elo
			hypothesis can be accepted with the given error bounds.

			The state of a named test is saved as it runs, and a stopped
			test can be continued with --resume and its name.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			var config sprt.Config
			var err error

			resume, _ := cmd.Flags().GetString("resume")
			switch {
			case resume != "":
				config, err = sprt.Load(common.PausedSPRTFile(resume))

			case len(args) == 1:
				var file []byte
				if file, err = os.ReadFile(args[0]); err == nil {
					err = yaml.Unmarshal(file, &config)
				}

			default:
				err = errors.New("sprt: details file or --resume needed")
			}

			if err != nil {
				return err
			}

			test, err := sprt.NewTournament(config)
			if err != nil {
				return err
			}

			if config.Name != "" {
				test.StatePath = common.PausedSPRTFile(config.Name)
			}

			verdict, err := test.Start(cmd.Context())
			if err != nil {
				if test.StatePath != "" {
					logrus.Infof("Test paused, resume it with 'gomoku sprt --resume %s'", config.Name)
				}

				return err
			}

			if verdict != sprt.Undecided && test.StatePath != "" {
				_ = os.Remove(test.StatePath)
			}

			return nil
		},
	}

	cmd.Flags().StringP("resume", "r", "", "Name of a paused test to resume")

	return cmd
}
