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
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/gomoku/pkg/common"
)

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "gomoku",
		Short: "A gomoku engine with minimax and monte carlo tree search",
		Long: heredoc.Doc(`gomoku picks moves on a gomoku board with either a depth
			limited alpha-beta search or a parallel monte carlo tree search,
			and lets the two play each other, or you.

			Settings are read from the configuration file, which can be
			created with 'gomoku config init'.`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// If --trace flag is provided, set logging level to Trace.
			if cmd.Flag("trace").Changed {
				logrus.SetLevel(logrus.TraceLevel)
			}

			common.Init()
		},
	}

	// global flags
	root.PersistentFlags().BoolP("help", "h", false, "Show Help Information")
	root.PersistentFlags().BoolP("version", "v", false, "Show Gomoku's Version")
	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")
	root.PersistentFlags().StringP("config", "c", common.ConfigFile, "Configuration file to use")

	versionStr := "v0.1.0\n"
	root.SetVersionTemplate(versionStr)
	root.Version = versionStr

	// Register the various commands.
	root.AddCommand(Move())
	root.AddCommand(Play())
	root.AddCommand(Analyze())
	root.AddCommand(Tournament())
	root.AddCommand(SPRT())
	root.AddCommand(Rank())
	root.AddCommand(Config())

	return root
}
