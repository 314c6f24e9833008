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

// Package mcts implements a parallel UCT searcher. Workers share a single
// tree: node statistics are atomic counters and expanding a node holds that
// node's lock.
package mcts

import (
	"context"
	"math/rand"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"laptudirm.com/x/gomoku/pkg/board"
	"laptudirm.com/x/gomoku/pkg/core"
	"laptudirm.com/x/gomoku/pkg/search"
)

// Sizes of the telemetry reports.
const (
	HeatN = 10
	TopN  = 5
)

type Searcher struct {
	config search.Config
	core   core.Core
}

func New(config search.Config, c core.Core) (*Searcher, error) {
	if err := config.ValidateMCTS(); err != nil {
		return nil, err
	}

	return &Searcher{config: config, core: c}, nil
}

func (searcher *Searcher) Config() search.Config {
	return searcher.config
}

// Move searches the board for the best move of the given color. The board
// is not modified. Cancelling ctx stops workers from starting new
// iterations; iterations already running are finished.
func (searcher *Searcher) Move(ctx context.Context, b *board.Board, color board.Color, listener search.Listener) (board.Point, error) {
	return searcher.search(ctx, b, color, board.NoPoint, searcher.config, listener)
}

// Refine improves a proposed move. It searches with init as the first
// expansion of the root, then compares the searched move with the best of
// init and its empty neighbours by static evaluation. A single worker is
// used, so the result only depends on the inputs and the configured seed.
// A positive depth limits the plies of every rollout.
func (searcher *Searcher) Refine(ctx context.Context, b *board.Board, init board.Point, color board.Color, depth, iterations int) (board.Point, error) {
	config := searcher.config
	config.Workers = 1
	if iterations > 0 {
		config.Iterations = iterations
	}
	if depth > 0 {
		config.RolloutLimit = depth
	}

	searched, err := searcher.search(ctx, b, color, init, config, nil)
	if err != nil {
		return board.NoPoint, err
	}

	if !b.InBounds(init.X, init.Y) || b.At(init.X, init.Y) != board.Empty {
		return searched, nil
	}

	local, localScore := init, searcher.core.EvaluateMove(b, init.X, init.Y, color)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			p := board.Point{X: init.X + dx, Y: init.Y + dy}
			if p == init || !b.InBounds(p.X, p.Y) || b.At(p.X, p.Y) != board.Empty {
				continue
			}

			if score := searcher.core.EvaluateMove(b, p.X, p.Y, color); score > localScore {
				local, localScore = p, score
			}
		}
	}

	if localScore > searcher.core.EvaluateMove(b, searched.X, searched.Y, color) {
		return local, nil
	}

	return searched, nil
}

// search is a single tree search. The seed move, if legal, becomes the
// first child of the root.
func (searcher *Searcher) search(ctx context.Context, b *board.Board, color board.Color, seed board.Point, config search.Config, listener search.Listener) (board.Point, error) {
	if b.Full() {
		return board.NoPoint, search.ErrNoMoves
	}

	update := search.Update{
		Best:  board.NoPoint,
		Total: config.Iterations,
	}
	listener.Notify(update)

	if p, found := searcher.core.FindWinningMove(b, color); found {
		logrus.WithField("move", p).Debug("mcts: forced win")
		update.Best = p
		listener.Notify(update)
		return p, nil
	}

	// One node per iteration, the root, and the seeded child.
	t := newTree(searcher.core, config.Iterations+2)
	root := t.alloc(noParent, board.NoPoint, color.Other(), b)

	if seed != board.NoPoint && b.InBounds(seed.X, seed.Y) {
		t.expand(root, b.Clone(), func(untried []board.Point) int {
			for i, p := range untried {
				if p == seed {
					return i
				}
			}
			return -1
		})
	}

	r := &run{
		searcher: searcher,
		config:   config,
		tree:     t,
		root:     b,
		listener: listener,
	}

	start := time.Now()
	if err := r.parallel(ctx); err != nil {
		return board.NoPoint, err
	}

	children := t.children(root)
	best := t.node(t.mostVisited(children))

	logrus.WithFields(logrus.Fields{
		"move":       best.move,
		"visits":     best.visits.Load(),
		"root":       t.node(root).visits.Load(),
		"win-rate":   best.winRate(),
		"nodes":      t.size.Load(),
		"iterations": r.done.Load(),
		"time":       time.Since(start),
	}).Debug("mcts: search done")

	listener.Notify(r.report())
	return best.move, nil
}

// run is the shared state of the workers of one search.
type run struct {
	searcher *Searcher
	config   search.Config
	tree     *tree
	root     *board.Board

	tickets atomic.Int64 // iterations claimed
	done    atomic.Int64 // iterations finished

	listener search.Listener
	reportMu sync.Mutex
}

func (run *run) parallel(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	for i := 0; i < run.config.Workers; i++ {
		w := run.newWorker(i)
		g.Go(func() error {
			return w.work(ctx)
		})
	}

	return g.Wait()
}

func (run *run) newWorker(id int) *worker {
	seed := run.config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &worker{
		run: run,
		rng: rand.New(rand.NewSource(seed + int64(id))),
		b:   run.root.Clone(),
	}
}

// report builds a telemetry update from the current state of the tree.
func (run *run) report() search.Update {
	t := run.tree
	root := t.node(0)
	rootVisits := float64(max(root.visits.Load(), 1))

	children := t.children(0)
	update := search.Update{
		Heat:      make(map[board.Point]float64),
		Best:      board.NoPoint,
		Depth:     t.depth(),
		Iteration: int(run.done.Load()),
		Total:     run.config.Iterations,
	}

	if len(children) == 0 {
		return update
	}

	for i := 0; i < len(children) && i < HeatN; i++ {
		child := t.node(children[i])
		update.Heat[child.move] = float64(child.visits.Load()) / rootVisits * 100
	}

	ranked := make([]int32, len(children))
	copy(ranked, children)
	sort.SliceStable(ranked, func(i, j int) bool {
		return t.betterVisited(ranked[i], ranked[j])
	})

	for i := 0; i < len(ranked) && i < TopN; i++ {
		update.Top = append(update.Top, t.node(ranked[i]).move)
	}

	update.Best = update.Top[0]
	return update
}

// progress reports the search state to the listener. Calls from different
// workers are serialized.
func (run *run) progress() {
	if run.listener == nil {
		return
	}

	run.reportMu.Lock()
	defer run.reportMu.Unlock()
	run.listener(run.report())
}
