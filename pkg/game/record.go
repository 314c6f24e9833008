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

package game

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"laptudirm.com/x/gomoku/pkg/board"
)

// Record is a finished or abandoned game as stored on disk.
type Record struct {
	ID   string `yaml:"id"`
	Mode Mode   `yaml:"mode"`
	Size int    `yaml:"size"`

	// Names of the players.
	Black string `yaml:"black"`
	White string `yaml:"white"`

	Started time.Time    `yaml:"started"`
	Moves   []board.Move `yaml:"moves"`

	Ended   bool          `yaml:"ended"`
	Winner  board.Color   `yaml:"winner"`
	WinLine []board.Point `yaml:"win-line,omitempty"`
}

// Save writes the record into dir as <id>.yaml and returns its path.
func (record *Record) Save(dir string) (string, error) {
	data, err := yaml.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("save record: %w", err)
	}

	path := filepath.Join(dir, record.ID+".yaml")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("save record: %w", err)
	}

	return path, nil
}

// LoadRecord reads a record written by Record.Save.
func LoadRecord(path string) (Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Record{}, fmt.Errorf("load record: %w", err)
	}

	var record Record
	if err := yaml.Unmarshal(data, &record); err != nil {
		return Record{}, fmt.Errorf("load record: %w", err)
	}

	return record, nil
}
