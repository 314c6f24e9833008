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

// Package eval implements the heuristic pattern evaluation of stones, moves
// and whole boards.
package eval

import (
	"fmt"

	"laptudirm.com/x/gomoku/pkg/board"
)

// Evaluator scores cells, moves and boards of one board size. It is
// immutable after construction and safe for concurrent use.
type Evaluator struct {
	size    int
	weights Weights
	table   [PatternN]float64

	position []float64
}

// NewEvaluator validates the weights and precomputes the position matrix
// for the given board size.
func NewEvaluator(size int, weights Weights) (*Evaluator, error) {
	if size < board.MinSize {
		return nil, fmt.Errorf("%w: %d", board.ErrSize, size)
	}

	if err := weights.Validate(); err != nil {
		return nil, err
	}

	return &Evaluator{
		size:     size,
		weights:  weights,
		table:    weights.table(),
		position: PositionMatrix(size),
	}, nil
}

func (ev *Evaluator) Size() int {
	return ev.size
}

func (ev *Evaluator) Weights() Weights {
	return ev.weights
}

// Score returns the weight of the given pattern.
func (ev *Evaluator) Score(p Pattern) float64 {
	return ev.table[p]
}

// PositionWeight returns the positional bias of (x, y).
func (ev *Evaluator) PositionWeight(x, y int) float64 {
	return ev.position[x*ev.size+y]
}

// RecognizePattern classifies the strongest run through (x, y) as if it
// held a stone of color. In each direction the run is counted both ways,
// and an end is blocked only when the next cell is on the board and holds
// a stone; running into the edge leaves the end open.
func (ev *Evaluator) RecognizePattern(b *board.Board, x, y int, color board.Color) (Pattern, float64) {
	best, bestScore := One, 0.0

	for _, d := range board.Directions {
		count, blocked := 1, 0

		nx, ny := x+d.DX, y+d.DY
		for b.InBounds(nx, ny) && b.At(nx, ny) == color {
			count++
			nx, ny = nx+d.DX, ny+d.DY
		}
		if b.InBounds(nx, ny) && b.At(nx, ny) != board.Empty {
			blocked++
		}

		nx, ny = x-d.DX, y-d.DY
		for b.InBounds(nx, ny) && b.At(nx, ny) == color {
			count++
			nx, ny = nx-d.DX, ny-d.DY
		}
		if b.InBounds(nx, ny) && b.At(nx, ny) != board.Empty {
			blocked++
		}

		pattern := Classify(count, blocked)
		if score := ev.table[pattern]; score > bestScore {
			best, bestScore = pattern, score
		}
	}

	return best, bestScore
}

// StoneScore returns the pattern score of the stone at (x, y), which must
// not be empty.
func (ev *Evaluator) StoneScore(b *board.Board, x, y int) float64 {
	_, score := ev.RecognizePattern(b, x, y, b.At(x, y))
	return score
}

// EvaluateBoard sums the pattern scores of every stone of color and
// subtracts the scores of the opponent's stones.
func (ev *Evaluator) EvaluateBoard(b *board.Board, color board.Color) float64 {
	total := 0.0
	for x := 0; x < ev.size; x++ {
		for y := 0; y < ev.size; y++ {
			switch b.At(x, y) {
			case board.Empty:
			case color:
				total += ev.StoneScore(b, x, y)
			default:
				total -= ev.StoneScore(b, x, y)
			}
		}
	}

	return total
}

// EvaluateMove scores the placement of a stone of color at (x, y) as the
// change in board evaluation plus the position weight of the cell. The
// given board is never modified.
func (ev *Evaluator) EvaluateMove(b *board.Board, x, y int, color board.Color) float64 {
	after := b.Clone()
	after.Set(x, y, color)

	return ev.EvaluateBoard(after, color) - ev.EvaluateBoard(b, color) + ev.PositionWeight(x, y)
}
