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

// Package common holds the on-disk locations of gomoku's files.
package common

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const DirPermissions = 0755

var (
	ConfigDirectory = filepath.Join(xdg.ConfigHome, "gomoku")
	DataDirectory   = filepath.Join(xdg.DataHome, "gomoku")

	ConfigFile  = filepath.Join(ConfigDirectory, "config.yaml")
	RankingFile = filepath.Join(DataDirectory, "ranking.yaml")

	RecordsDirectory = filepath.Join(DataDirectory, "records")
	PausedDirectory  = filepath.Join(DataDirectory, "paused")
	PausedSPRT       = filepath.Join(PausedDirectory, "sprt")
)

func TryMkdir(dir string) {
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		_ = os.MkdirAll(dir, DirPermissions)
	}
}

// Init creates the directories gomoku writes to, if they don't exist yet.
func Init() {
	TryMkdir(ConfigDirectory)
	TryMkdir(DataDirectory)
	TryMkdir(RecordsDirectory)
	TryMkdir(PausedSPRT)
}

// PausedSPRTFile returns the path of the saved state of a paused sprt.
func PausedSPRTFile(name string) string {
	return filepath.Join(PausedSPRT, name+".yaml")
}

// RecordFile returns the path of the game record with the given id.
func RecordFile(id string) string {
	return filepath.Join(RecordsDirectory, id+".yaml")
}
