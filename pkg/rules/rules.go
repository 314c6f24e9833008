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

// Package rules implements move legality and terminal state detection for
// five-in-a-row. Every function is a pure function of its arguments.
package rules

import "laptudirm.com/x/gomoku/pkg/board"

// WinLength is the number of contiguous stones that wins the game.
const WinLength = 5

// GameEndResult describes the terminal state of a board. WinLine holds the
// coordinates of the winning run, and is nil for ongoing and drawn games.
type GameEndResult struct {
	IsEnd   bool          `yaml:"is-end"`
	Winner  board.Color   `yaml:"winner"`
	WinLine []board.Point `yaml:"win-line,omitempty"`
}

// Ongoing is the result of a board which has not ended.
var Ongoing = GameEndResult{}

// Turn returns the color whose turn it is by stone-count parity.
func Turn(b *board.Board) board.Color {
	if b.Count(board.Black) > b.Count(board.White) {
		return board.White
	}

	return board.Black
}

// ValidateMove checks whether color may play at (x, y). It returns nil or a
// *MoveError wrapping the reason.
func ValidateMove(b *board.Board, x, y int, color board.Color) error {
	reason := func(err error) error {
		return &MoveError{Point: board.Point{X: x, Y: y}, Color: color, Reason: err}
	}

	if !b.InBounds(x, y) {
		return reason(ErrOutOfBounds)
	}

	if b.At(x, y) != board.Empty {
		return reason(ErrOccupied)
	}

	blacks, whites := b.Count(board.Black), b.Count(board.White)
	switch {
	case color == board.Black && blacks > whites,
		color == board.White && whites > blacks,
		color == board.White && whites == blacks,
		color == board.Empty:
		return reason(ErrWrongTurn)
	}

	return nil
}

// CheckGameEnd scans every line for five contiguous stones of the same
// color. Rows are scanned first, then columns, then the ↘ diagonals and
// finally the ↗ diagonals; the first run found is returned. A full board
// without a run is a draw.
func CheckGameEnd(b *board.Board) GameEndResult {
	n, last := b.Size(), b.Size()-WinLength

	var (
		right     = board.Direction{DX: 0, DY: 1}
		down      = board.Direction{DX: 1, DY: 0}
		downRight = board.Direction{DX: 1, DY: 1}
		upRight   = board.Direction{DX: -1, DY: 1}
	)

	// rows
	for x := 0; x < n; x++ {
		for y := 0; y <= last; y++ {
			if result, found := runAt(b, x, y, right); found {
				return result
			}
		}
	}

	// columns, one column at a time
	for y := 0; y < n; y++ {
		for x := 0; x <= last; x++ {
			if result, found := runAt(b, x, y, down); found {
				return result
			}
		}
	}

	for x := 0; x <= last; x++ {
		for y := 0; y <= last; y++ {
			if result, found := runAt(b, x, y, downRight); found {
				return result
			}
		}
	}

	for x := WinLength - 1; x < n; x++ {
		for y := 0; y <= last; y++ {
			if result, found := runAt(b, x, y, upRight); found {
				return result
			}
		}
	}

	if b.Full() {
		return GameEndResult{IsEnd: true, Winner: board.Empty}
	}

	return Ongoing
}

// runAt checks the window of WinLength cells starting at (x, y) along d.
func runAt(b *board.Board, x, y int, d board.Direction) (GameEndResult, bool) {
	start := board.Point{X: x, Y: y}
	color := b.At(x, y)
	if color == board.Empty || !window(b, start, d, color) {
		return Ongoing, false
	}

	return GameEndResult{IsEnd: true, Winner: color, WinLine: line(start, d)}, true
}

// WinAt reports whether the stone at p is part of a five. It only looks at
// the four lines through p, which makes it the fast path for checking the
// result of the last move.
func WinAt(b *board.Board, p board.Point) bool {
	color := b.At(p.X, p.Y)
	if color == board.Empty {
		return false
	}

	for _, d := range board.Directions {
		if RunLength(b, p, d, color) >= WinLength {
			return true
		}
	}

	return false
}

// RunLength returns the length of the run of color through p along d,
// counting p itself whatever it holds.
func RunLength(b *board.Board, p board.Point, d board.Direction, color board.Color) int {
	count := 1
	for k := 1; ; k++ {
		q := p.Add(d, k)
		if !b.InBounds(q.X, q.Y) || b.At(q.X, q.Y) != color {
			break
		}
		count++
	}

	for k := 1; ; k++ {
		q := p.Add(d, -k)
		if !b.InBounds(q.X, q.Y) || b.At(q.X, q.Y) != color {
			break
		}
		count++
	}

	return count
}

// FindWinningMove returns the first empty cell, in row-major order, which
// immediately completes a five for color.
func FindWinningMove(b *board.Board, color board.Color) (board.Point, bool) {
	for _, p := range b.Empties() {
		for _, d := range board.Directions {
			if RunLength(b, p, d, color) >= WinLength {
				return p, true
			}
		}
	}

	return board.NoPoint, false
}

// IsValidBoard checks that b could have arisen from legal play: the stone
// counts are balanced and at most one color holds a five.
func IsValidBoard(b *board.Board) error {
	blacks, whites := b.Count(board.Black), b.Count(board.White)
	if blacks-whites > 1 || whites-blacks > 1 {
		return ErrStoneBalance
	}

	var winners [board.ColorN]bool
	for _, p := range stones(b) {
		if WinAt(b, p) {
			winners[b.At(p.X, p.Y)] = true
		}
	}

	if winners[board.Black] && winners[board.White] {
		return ErrTwoWinners
	}

	return nil
}

// PlacePiece validates and plays the move on b, and returns the resulting
// end state. b is left untouched if the move is rejected.
func PlacePiece(b *board.Board, x, y int, color board.Color) (GameEndResult, error) {
	if err := ValidateMove(b, x, y, color); err != nil {
		return Ongoing, err
	}

	b.Set(x, y, color)
	return CheckGameEnd(b), nil
}

func window(b *board.Board, start board.Point, d board.Direction, color board.Color) bool {
	for k := 1; k < WinLength; k++ {
		q := start.Add(d, k)
		if b.At(q.X, q.Y) != color {
			return false
		}
	}

	return true
}

func line(start board.Point, d board.Direction) []board.Point {
	points := make([]board.Point, WinLength)
	for k := range points {
		points[k] = start.Add(d, k)
	}

	return points
}

func stones(b *board.Board) []board.Point {
	var points []board.Point
	n := b.Size()
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			if b.At(x, y) != board.Empty {
				points = append(points, board.Point{X: x, Y: y})
			}
		}
	}

	return points
}
