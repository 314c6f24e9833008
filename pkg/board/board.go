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

// Package board implements the N×N five-in-a-row board representation that
// is shared by the rule engine, the evaluator and the searchers.
package board

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultSize is the standard board size.
const DefaultSize = 15

// MinSize is the smallest board a five-run fits on.
const MinSize = 5

var (
	ErrSize      = errors.New("board: invalid size")
	ErrMalformed = errors.New("board: malformed board text")
)

// Board is an N×N grid of cells. The cell (x, y) is stored at x*N+y, so x
// selects the row and y the column, matching the textual format.
type Board struct {
	size  int
	cells []Color

	count [ColorN]int
	hash  uint64
}

// New returns an empty board of the given size.
func New(size int) *Board {
	return &Board{
		size:  size,
		cells: make([]Color, size*size),
		count: [ColorN]int{Empty: size * size},
	}
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.size && y < b.size
}

// At returns the cell at (x, y). It panics if (x, y) is out of bounds.
func (b *Board) At(x, y int) Color {
	return b.cells[x*b.size+y]
}

// Set puts the given color at (x, y), keeping the stone counts and the
// zobrist key in sync. Setting Empty removes a stone.
func (b *Board) Set(x, y int, c Color) {
	index := x*b.size + y
	old := b.cells[index]
	if old == c {
		return
	}

	z := zobristFor(b.size)
	b.hash ^= z.key(index, old) ^ z.key(index, c)

	b.count[old]--
	b.count[c]++
	b.cells[index] = c
}

// Cells exposes the flat cell slice for stride scans. It must be treated as
// read-only by the caller.
func (b *Board) Cells() []Color {
	return b.cells
}

// Count returns the number of cells holding the given color.
func (b *Board) Count(c Color) int {
	return b.count[c]
}

func (b *Board) Full() bool {
	return b.count[Empty] == 0
}

// Hash returns the zobrist key of the current position.
func (b *Board) Hash() uint64 {
	return b.hash
}

// Empties returns the empty cells in row-major order.
func (b *Board) Empties() []Point {
	points := make([]Point, 0, b.count[Empty])
	for i, cell := range b.cells {
		if cell == Empty {
			points = append(points, Point{X: i / b.size, Y: i % b.size})
		}
	}

	return points
}

func (b *Board) Clone() *Board {
	clone := *b
	clone.cells = make([]Color, len(b.cells))
	copy(clone.cells, b.cells)
	return &clone
}

// CopyFrom overwrites b with the contents of src, which must be of the same
// size. It lets hot loops reuse one scratch board.
func (b *Board) CopyFrom(src *Board) {
	copy(b.cells, src.cells)
	b.count = src.count
	b.hash = src.hash
}

func (b *Board) Equal(other *Board) bool {
	if b.size != other.size {
		return false
	}

	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}

	return true
}

// String renders the board in the textual format accepted by Parse.
func (b *Board) String() string {
	var str strings.Builder
	for x := 0; x < b.size; x++ {
		for y := 0; y < b.size; y++ {
			str.WriteByte(b.At(x, y).Symbol())
		}
		str.WriteByte('\n')
	}

	return str.String()
}

// Parse reads a board from its textual format: one line per row, with '.'
// for an empty cell, 'X' for black and 'O' for white. Blank lines and
// whitespace inside a line are ignored, and lines starting with '#' are
// comments.
func Parse(text string) (*Board, error) {
	var rows []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.Join(strings.Fields(line), "")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		rows = append(rows, line)
	}

	size := len(rows)
	if size < MinSize {
		return nil, fmt.Errorf("%w: %d rows", ErrSize, size)
	}

	b := New(size)
	for x, row := range rows {
		if len(row) != size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformed, x, len(row), size)
		}

		for y := 0; y < size; y++ {
			c, err := ColorFromSymbol(row[y])
			if err != nil {
				return nil, fmt.Errorf("%w: row %d: %v", ErrMalformed, x, err)
			}

			b.Set(x, y, c)
		}
	}

	return b, nil
}
