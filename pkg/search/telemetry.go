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

package search

import "laptudirm.com/x/gomoku/pkg/board"

// Update is a snapshot of a search in progress, streamed to a Listener.
type Update struct {
	// Heat maps cells to a searcher specific interest score. It only holds
	// the cells the searcher reported on.
	Heat map[board.Point]float64 `yaml:"heat,omitempty" json:"heat,omitempty"`

	Best board.Point   `yaml:"best" json:"best"`
	Top  []board.Point `yaml:"top,omitempty" json:"top,omitempty"`

	Depth     int `yaml:"depth" json:"depth"`
	Iteration int `yaml:"iteration" json:"iteration"`
	Total     int `yaml:"total" json:"total"`
}

// Listener receives search updates. A nil Listener is valid and ignores
// every update.
type Listener func(Update)

// Notify sends the update to the listener if there is one.
func (listener Listener) Notify(update Update) {
	if listener != nil {
		listener(update)
	}
}
