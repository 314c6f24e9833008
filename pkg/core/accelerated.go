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

package core

import (
	"laptudirm.com/x/gomoku/pkg/board"
	"laptudirm.com/x/gomoku/pkg/eval"
	"laptudirm.com/x/gomoku/pkg/rules"
)

// Accelerated computes the same results as Pure directly on the flat cell
// slice. Evaluating a move only rescores the stones whose pattern the move
// can change, which are the runs directly next to the placed cell.
type Accelerated struct {
	ev *eval.Evaluator
}

var _ Core = (*Accelerated)(nil)

func NewAccelerated(ev *eval.Evaluator) *Accelerated {
	return &Accelerated{ev: ev}
}

func (*Accelerated) Name() string {
	return AcceleratedName
}

func (core *Accelerated) Evaluator() *eval.Evaluator {
	return core.ev
}

func (*Accelerated) ValidateMove(b *board.Board, x, y int, color board.Color) error {
	return rules.ValidateMove(b, x, y, color)
}

func (*Accelerated) CheckGameEnd(b *board.Board) rules.GameEndResult {
	// A five needs five stones of one color.
	if b.Count(board.Black) < rules.WinLength && b.Count(board.White) < rules.WinLength {
		if b.Full() {
			return rules.GameEndResult{IsEnd: true, Winner: board.Empty}
		}
		return rules.Ongoing
	}

	n, cells := b.Size(), b.Cells()
	last := n - rules.WinLength

	// Strides in the same scan order as rules.CheckGameEnd.
	if result, found := strideScan(cells, n, 0, n-1, 0, last, false, 1); found {
		return result
	}
	if result, found := strideScan(cells, n, 0, last, 0, n-1, true, n); found {
		return result
	}
	if result, found := strideScan(cells, n, 0, last, 0, last, false, n+1); found {
		return result
	}
	if result, found := strideScan(cells, n, rules.WinLength-1, n-1, 0, last, false, 1-n); found {
		return result
	}

	if b.Full() {
		return rules.GameEndResult{IsEnd: true, Winner: board.Empty}
	}

	return rules.Ongoing
}

// strideScan looks for a window of five equal stones starting inside the
// given ranges, stepping stride cells along the flat slice.
func strideScan(cells []board.Color, n, x0, x1, y0, y1 int, columnMajor bool, stride int) (rules.GameEndResult, bool) {
	check := func(x, y int) (rules.GameEndResult, bool) {
		start := x*n + y
		color := cells[start]
		if color == board.Empty {
			return rules.Ongoing, false
		}

		for k := 1; k < rules.WinLength; k++ {
			if cells[start+k*stride] != color {
				return rules.Ongoing, false
			}
		}

		line := make([]board.Point, rules.WinLength)
		for k := range line {
			i := start + k*stride
			line[k] = board.Point{X: i / n, Y: i % n}
		}

		return rules.GameEndResult{IsEnd: true, Winner: color, WinLine: line}, true
	}

	if columnMajor {
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				if result, found := check(x, y); found {
					return result, true
				}
			}
		}
		return rules.Ongoing, false
	}

	for x := x0; x <= x1; x++ {
		for y := y0; y <= y1; y++ {
			if result, found := check(x, y); found {
				return result, true
			}
		}
	}

	return rules.Ongoing, false
}

func (*Accelerated) WinAt(b *board.Board, p board.Point) bool {
	return rules.WinAt(b, p)
}

// FindWinningMove gives up at once when color has fewer than four stones,
// and otherwise walks the flat slice in the same order as Pure.
func (*Accelerated) FindWinningMove(b *board.Board, color board.Color) (board.Point, bool) {
	if b.Count(color) < rules.WinLength-1 {
		return board.NoPoint, false
	}

	n, cells := b.Size(), b.Cells()
	for i, cell := range cells {
		if cell != board.Empty {
			continue
		}

		p := board.Point{X: i / n, Y: i % n}
		for _, d := range board.Directions {
			if rules.RunLength(b, p, d, color) >= rules.WinLength {
				return p, true
			}
		}
	}

	return board.NoPoint, false
}

func (core *Accelerated) EvaluateBoard(b *board.Board, color board.Color) float64 {
	n, cells := b.Size(), b.Cells()

	total := 0.0
	for i, cell := range cells {
		switch cell {
		case board.Empty:
		case color:
			total += core.score(cells, n, i/n, i%n, cell, -1, board.Empty)
		default:
			total -= core.score(cells, n, i/n, i%n, cell, -1, board.Empty)
		}
	}

	return total
}

// EvaluateMove expects (x, y) to be empty, as it is for every candidate move.
func (core *Accelerated) EvaluateMove(b *board.Board, x, y int, color board.Color) float64 {
	n, cells := b.Size(), b.Cells()
	placed := x*n + y

	// The new stone itself, which scores nothing before the move.
	delta := core.score(cells, n, x, y, color, placed, color)

	for _, d := range board.Directions {
		for _, sign := range [2]int{1, -1} {
			dx, dy := d.DX*sign, d.DY*sign

			// The run of stones directly next to the placed cell.
			nx, ny := x+dx, y+dy
			if nx < 0 || ny < 0 || nx >= n || ny >= n {
				continue
			}

			owner := cells[nx*n+ny]
			if owner == board.Empty {
				continue
			}

			for nx >= 0 && ny >= 0 && nx < n && ny < n && cells[nx*n+ny] == owner {
				before := core.score(cells, n, nx, ny, owner, -1, board.Empty)
				after := core.score(cells, n, nx, ny, owner, placed, color)

				if owner == color {
					delta += after - before
				} else {
					delta -= after - before
				}

				nx, ny = nx+dx, ny+dy
			}
		}
	}

	return delta + core.ev.PositionWeight(x, y)
}

// score is eval.Evaluator.RecognizePattern on the flat cell slice, with the
// cell at index overlay read as holding over.
func (core *Accelerated) score(cells []board.Color, n, x, y int, color board.Color, overlay int, over board.Color) float64 {
	at := func(x, y int) board.Color {
		if i := x*n + y; i != overlay {
			return cells[i]
		}
		return over
	}

	inBounds := func(x, y int) bool {
		return x >= 0 && y >= 0 && x < n && y < n
	}

	best := 0.0
	for _, d := range board.Directions {
		count, blocked := 1, 0

		nx, ny := x+d.DX, y+d.DY
		for inBounds(nx, ny) && at(nx, ny) == color {
			count++
			nx, ny = nx+d.DX, ny+d.DY
		}
		if inBounds(nx, ny) && at(nx, ny) != board.Empty {
			blocked++
		}

		nx, ny = x-d.DX, y-d.DY
		for inBounds(nx, ny) && at(nx, ny) == color {
			count++
			nx, ny = nx-d.DX, ny-d.DY
		}
		if inBounds(nx, ny) && at(nx, ny) != board.Empty {
			blocked++
		}

		if s := core.ev.Score(eval.Classify(count, blocked)); s > best {
			best = s
		}
	}

	return best
}
