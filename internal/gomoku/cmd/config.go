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
	"fmt"
	"io/fs"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"laptudirm.com/x/gomoku/pkg/config"
)

// gomoku config
func Config() *cobra.Command {
	cmd := cobra.Command{
		Use:   "config",
		Short: "Create or show gomoku's configuration",
	}

	cmd.AddCommand(configInit())
	cmd.AddCommand(configShow())
	return &cmd
}

func configInit() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			path := cmd.Flag("config").Value.String()

			force, _ := cmd.Flags().GetBool("force")
			if _, err := os.Stat(path); !force && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("config: %s already exists, use --force to overwrite", path)
			}

			if err := config.Save(path, config.Default()); err != nil {
				return err
			}

			logrus.Infof("Configuration written to %s", path)
			return nil
		},
	}

	cmd.Flags().BoolP("force", "f", false, "Overwrite an existing file")

	return cmd
}

func configShow() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the configuration in effect",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			data, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}

			fmt.Print(string(data))
			return nil
		},
	}
}
