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

package match

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"sync"

	"laptudirm.com/x/gomoku/pkg/board"
)

// OpeningConfig describes an opening book. Every non-empty line of File is
// an opening made of "x,y" points, played alternately from black.
type OpeningConfig struct {
	File  string `yaml:"file"`
	Order string `yaml:"order"` // "sequential" or "random"
	Start int    `yaml:"start"`
}

// NewBook reads the book described by config. A book without a file has a
// single empty opening.
func NewBook(config OpeningConfig) (*OpeningBook, error) {
	book := OpeningBook{
		config:  config,
		current: config.Start,
	}

	if config.File == "" {
		book.entries = [][]board.Point{nil}
		book.current = 0
		return &book, nil
	}

	file, err := os.ReadFile(config.File)
	if err != nil {
		return nil, err
	}

	for i, line := range strings.Split(string(file), "\n") {
		line = strings.Trim(line, "\n\r\t ")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		opening, err := board.ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("opening book %s:%d: %w", config.File, i+1, err)
		}

		book.entries = append(book.entries, opening)
	}

	if len(book.entries) == 0 {
		return nil, fmt.Errorf("opening book %s: no openings", config.File)
	}

	book.current %= len(book.entries)
	return &book, nil
}

// OpeningBook is safe for concurrent use.
type OpeningBook struct {
	mu sync.Mutex

	config  OpeningConfig
	entries [][]board.Point
	current int
}

func (book *OpeningBook) Next() {
	book.mu.Lock()
	defer book.mu.Unlock()
	book.advance()
}

// Take advances the book and returns the new current opening.
func (book *OpeningBook) Take() []board.Point {
	book.mu.Lock()
	defer book.mu.Unlock()

	book.advance()
	return book.entries[book.current]
}

func (book *OpeningBook) advance() {
	switch book.config.Order {
	case "random":
		book.current = rand.Intn(len(book.entries))
	default:
		book.current = (book.current + 1) % len(book.entries)
	}
}

func (book *OpeningBook) Current() []board.Point {
	book.mu.Lock()
	defer book.mu.Unlock()
	return book.entries[book.current]
}

func (book *OpeningBook) Len() int {
	return len(book.entries)
}

// Wrap returns the config which reopens the book at the current opening.
func (book *OpeningBook) Wrap() OpeningConfig {
	book.mu.Lock()
	defer book.mu.Unlock()

	config := book.config
	config.Start = book.current
	return config
}

// FormatOpening returns the opening in the book notation.
func FormatOpening(opening []board.Point) string {
	if len(opening) == 0 {
		return "empty board"
	}

	moves := make([]string, len(opening))
	for i, p := range opening {
		moves[i] = p.String()
	}

	return strings.Join(moves, " ")
}
