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
	"math"
	"sync"
	"sync/atomic"

	"laptudirm.com/x/gomoku/pkg/board"
	"laptudirm.com/x/gomoku/pkg/core"
)

// noParent is the parent index of the root node.
const noParent = -1

// node is a search tree node. The board of a node is not stored: it is the
// root board with the moves on the path to the node played out.
type node struct {
	parent int32
	move   board.Point // board.NoPoint at the root
	mover  board.Color // color which played move

	// A terminal node is never simulated, its result for mover is fixed.
	terminal bool
	outcome  int64

	// Statistics from the point of view of mover. Wins are counted in half
	// points so that draws stay integral.
	visits atomic.Int64
	wins   atomic.Int64

	mu       sync.Mutex
	children []int32       // guarded by mu, append only
	untried  []board.Point // guarded by mu
}

func (n *node) toMove() board.Color {
	return n.mover.Other()
}

// snapshot returns the current children and whether moves are left to be
// expanded. Elements of the returned slice are never written to again.
func (n *node) snapshot() ([]int32, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.children, len(n.untried) > 0
}

// winRate returns the mean result of the node for its mover.
func (n *node) winRate() float64 {
	visits := n.visits.Load()
	if visits == 0 {
		return 0
	}

	return float64(n.wins.Load()) / 2 / float64(visits)
}

// tree is an arena of nodes addressed by index. The arena is allocated up
// front so that indices and node addresses stay valid while workers grow
// the tree.
type tree struct {
	core  core.Core
	nodes []node
	size  atomic.Int32
}

func newTree(c core.Core, capacity int) *tree {
	return &tree{
		core:  c,
		nodes: make([]node, capacity),
	}
}

func (t *tree) node(index int32) *node {
	return &t.nodes[index]
}

// alloc initializes a new node for the position on b, which is the
// position after mover played move.
func (t *tree) alloc(parent int32, move board.Point, mover board.Color, b *board.Board) int32 {
	index := t.size.Add(1) - 1
	if int(index) >= len(t.nodes) {
		panic("mcts: node arena exhausted")
	}

	n := t.node(index)
	n.parent = parent
	n.move = move
	n.mover = mover

	switch {
	case move != board.NoPoint && t.core.WinAt(b, move):
		n.terminal, n.outcome = true, win
	case b.Full():
		n.terminal, n.outcome = true, draw
	default:
		n.untried = b.Empties()
	}

	return index
}

// expand plays the untried move chosen by pick on b and publishes the
// resulting child. It reports false if pick declines or the node has no
// untried moves left, which happens when other workers expanded it first.
func (t *tree) expand(index int32, b *board.Board, pick func(untried []board.Point) int) (int32, bool) {
	n := t.node(index)

	n.mu.Lock()
	defer n.mu.Unlock()

	if len(n.untried) == 0 {
		return index, false
	}

	i := pick(n.untried)
	if i < 0 {
		return index, false
	}

	move := n.untried[i]

	last := len(n.untried) - 1
	n.untried[i] = n.untried[last]
	n.untried = n.untried[:last]

	b.Set(move.X, move.Y, n.toMove())
	child := t.alloc(index, move, n.toMove(), b)
	n.children = append(n.children, child)

	return child, true
}

// selectChild returns the child of a node with the highest UCT score. An
// unvisited child is always selected first.
func (t *tree) selectChild(index int32, children []int32, exploration float64) int32 {
	parentVisits := t.node(index).visits.Load()
	logVisits := math.Log(float64(max(parentVisits, 1)))

	best, bestScore := children[0], math.Inf(-1)
	for _, c := range children {
		child := t.node(c)

		visits := child.visits.Load()
		if visits == 0 {
			return c
		}

		score := child.winRate() + exploration*math.Sqrt(logVisits/float64(visits))
		if score > bestScore {
			best, bestScore = c, score
		}
	}

	return best
}

// backpropagate adds a visit and the result, in half points for the mover
// of the leaf, to every node from the leaf up to the root. The result is
// flipped at every level.
func (t *tree) backpropagate(index int32, halves int64) {
	for index != noParent {
		n := t.node(index)
		n.visits.Add(1)
		n.wins.Add(halves)

		halves = 2 - halves
		index = n.parent
	}
}

// children returns a snapshot of the children of a node.
func (t *tree) children(index int32) []int32 {
	children, _ := t.node(index).snapshot()
	return children
}

// depth is the length of the first-child spine below the root.
func (t *tree) depth() int {
	depth := 0
	for children := t.children(0); len(children) > 0; children = t.children(children[0]) {
		depth++
	}

	return depth
}

// mostVisited returns the child with the most visits. Ties are broken by the
// smaller move, so the result does not depend on the expansion order.
func (t *tree) mostVisited(children []int32) int32 {
	best := children[0]
	for _, c := range children[1:] {
		if t.betterVisited(c, best) {
			best = c
		}
	}

	return best
}

func (t *tree) betterVisited(a, b int32) bool {
	va, vb := t.node(a).visits.Load(), t.node(b).visits.Load()
	if va != vb {
		return va > vb
	}

	return t.node(a).move.Less(t.node(b).move)
}
