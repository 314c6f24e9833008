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

package mcts

import (
	"context"
	"math/rand"

	"laptudirm.com/x/gomoku/pkg/board"
)

// Rollout results in half points.
const (
	loss = 0
	draw = 1
	win  = 2
)

// worker runs iterations on its own scratch board.
type worker struct {
	run *run
	rng *rand.Rand
	b   *board.Board
}

// work claims and runs iterations until the budget is spent. The first
// iteration is always run, so the root has a child to choose.
func (w *worker) work(ctx context.Context) error {
	budget := int64(w.run.config.Iterations)
	every := int64(w.run.config.ReportEvery)

	for {
		ticket := w.run.tickets.Add(1)
		if ticket > budget {
			return nil
		}

		if ticket > 1 && ctx.Err() != nil {
			return nil
		}

		w.iterate()

		if done := w.run.done.Add(1); every > 0 && done%every == 0 {
			w.run.progress()
		}
	}
}

// iterate runs one select, expand, simulate and backpropagate cycle.
func (w *worker) iterate() {
	t := w.run.tree
	w.b.CopyFrom(w.run.root)

	index := int32(0)
	for {
		children, untried := t.node(index).snapshot()
		if untried {
			child, ok := t.expand(index, w.b, w.pick)
			if !ok {
				// expanded fully by another worker in the meantime
				continue
			}

			index = child
			break
		}

		if len(children) == 0 {
			break
		}

		index = t.selectChild(index, children, w.run.config.Exploration)
		n := t.node(index)
		w.b.Set(n.move.X, n.move.Y, n.mover)
	}

	n := t.node(index)
	if n.terminal {
		t.backpropagate(index, n.outcome)
		return
	}

	t.backpropagate(index, w.rollout(n))
}

func (w *worker) pick(untried []board.Point) int {
	return w.rng.Intn(len(untried))
}

// rollout plays the game out from the scratch board, which holds the
// position of n, and returns the result for the mover of n.
func (w *worker) rollout(n *node) int64 {
	c := w.run.searcher.core
	limit := w.run.config.RolloutLimit

	last, toMove := n.move, n.toMove()
	for plies := 0; ; plies++ {
		if last != board.NoPoint && c.WinAt(w.b, last) {
			if w.b.At(last.X, last.Y) == n.mover {
				return win
			}
			return loss
		}

		if w.b.Full() || (limit > 0 && plies >= limit) {
			return draw
		}

		last = w.policy(toMove)
		w.b.Set(last.X, last.Y, toMove)
		toMove = toMove.Other()
	}
}

// policy picks the next rollout move of color: the empty cell with the best
// static evaluation, first in row-major order on ties, or a random empty
// cell with random rollouts.
func (w *worker) policy(color board.Color) board.Point {
	n, cells := w.b.Size(), w.b.Cells()

	if w.run.config.RandomRollouts {
		k := w.rng.Intn(w.b.Count(board.Empty))
		for i, cell := range cells {
			if cell != board.Empty {
				continue
			}
			if k == 0 {
				return board.Point{X: i / n, Y: i % n}
			}
			k--
		}
	}

	c := w.run.searcher.core

	best, bestScore := board.NoPoint, 0.0
	for i, cell := range cells {
		if cell != board.Empty {
			continue
		}

		p := board.Point{X: i / n, Y: i % n}
		if score := c.EvaluateMove(w.b, p.X, p.Y, color); best == board.NoPoint || score > bestScore {
			best, bestScore = p, score
		}
	}

	return best
}
