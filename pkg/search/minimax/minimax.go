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

// Package minimax implements a depth bounded alpha-beta searcher with
// statically ordered, breadth capped candidate lists.
package minimax

import (
	"context"
	"math"
	"sort"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/gomoku/pkg/board"
	"laptudirm.com/x/gomoku/pkg/core"
	"laptudirm.com/x/gomoku/pkg/search"
)

// WinScore is the base score of a decided game. Wins found with more depth
// left are worth more.
const WinScore = 10000.0

// HeatScale scales the static move scores reported as heat.
const HeatScale = 20

// TopN is the number of root candidates reported in an update.
const TopN = 5

type Searcher struct {
	config search.Config
	core   core.Core
}

func New(config search.Config, c core.Core) (*Searcher, error) {
	if err := config.ValidateMinimax(); err != nil {
		return nil, err
	}

	return &Searcher{config: config, core: c}, nil
}

func (searcher *Searcher) Config() search.Config {
	return searcher.config
}

// cacheKey identifies a static move score. The board is identified by its
// zobrist hash.
type cacheKey struct {
	hash  uint64
	x, y  int
	color board.Color
}

// state is the per call state of a search.
type state struct {
	searcher *Searcher

	b     *board.Board // working copy, moves are made and unmade on it
	color board.Color  // the searching color
	cache map[cacheKey]float64

	nodes int
}

type candidate struct {
	point board.Point
	score float64
}

// Move searches the board for the best move of the given color. The board
// is not modified. Cancelling ctx stops the search between two root moves,
// after which the best move found so far is returned.
func (searcher *Searcher) Move(ctx context.Context, b *board.Board, color board.Color, listener search.Listener) (board.Point, error) {
	empties := b.Empties()
	if len(empties) == 0 {
		return board.NoPoint, search.ErrNoMoves
	}

	s := &state{
		searcher: searcher,
		b:        b.Clone(),
		color:    color,
		cache:    make(map[cacheKey]float64),
	}

	update := search.Update{
		Heat:  s.heat(empties),
		Best:  board.NoPoint,
		Depth: searcher.config.Depth,
	}
	listener.Notify(update)

	if p, found := searcher.core.FindWinningMove(b, color); found {
		logrus.WithField("move", p).Debug("minimax: forced win")
		update.Best = p
		listener.Notify(update)
		return p, nil
	}

	depth := searcher.config.Depth
	candidates := s.candidates(true)

	update.Total = len(candidates)
	for i := 0; i < len(candidates) && i < TopN; i++ {
		update.Top = append(update.Top, candidates[i].point)
	}

	best, bestScore := candidates[0].point, math.Inf(-1)
	alpha, beta := math.Inf(-1), math.Inf(1)

	for i, child := range candidates {
		if ctx.Err() != nil {
			logrus.Debugf("minimax: stopped after %d of %d root moves", i, len(candidates))
			break
		}

		score := s.child(child.point, color, depth-1, alpha, beta, false)
		if score > bestScore {
			best, bestScore = child.point, score
		}
		alpha = math.Max(alpha, bestScore)

		update.Best = best
		update.Iteration = i + 1
		listener.Notify(update)
	}

	logrus.WithFields(logrus.Fields{
		"move":  best,
		"score": bestScore,
		"depth": depth,
		"nodes": s.nodes,
	}).Debug("minimax: search done")

	update.Best = best
	listener.Notify(update)
	return best, nil
}

// child makes the move on the working board, searches the resulting
// position and unmakes the move.
func (s *state) child(p board.Point, mover board.Color, depth int, alpha, beta float64, maximizing bool) float64 {
	s.b.Set(p.X, p.Y, mover)
	defer s.b.Set(p.X, p.Y, board.Empty)

	s.nodes++

	if s.searcher.core.WinAt(s.b, p) {
		score := WinScore * (1 + float64(depth)/10)
		if mover != s.color {
			score = -score
		}
		return score
	}

	return s.alphaBeta(depth, alpha, beta, maximizing)
}

func (s *state) alphaBeta(depth int, alpha, beta float64, maximizing bool) float64 {
	if depth == 0 {
		return s.leaf()
	}

	if s.b.Full() {
		return 0
	}

	candidates := s.candidates(maximizing)

	if maximizing {
		best := math.Inf(-1)
		for _, c := range candidates {
			best = math.Max(best, s.child(c.point, s.color, depth-1, alpha, beta, false))
			alpha = math.Max(alpha, best)
			if beta <= alpha {
				break
			}
		}
		return best
	}

	best := math.Inf(1)
	for _, c := range candidates {
		best = math.Min(best, s.child(c.point, s.color.Other(), depth-1, alpha, beta, true))
		beta = math.Min(beta, best)
		if beta <= alpha {
			break
		}
	}
	return best
}

// leaf scores a position by the best static move of the searching color
// among the first few empty cells.
func (s *state) leaf() float64 {
	empties := s.b.Empties()
	if len(empties) == 0 {
		return 0
	}

	if len(empties) > s.searcher.config.LeafWidth {
		empties = empties[:s.searcher.config.LeafWidth]
	}

	best := math.Inf(-1)
	for _, p := range empties {
		best = math.Max(best, s.evaluate(p, s.color))
	}

	return best
}

// candidates lists the empty cells of the working board, best first for
// the side to move, capped to the configured breadth. Scores are from the
// point of view of the searching color, so the minimizing side sorts them
// in ascending order.
func (s *state) candidates(maximizing bool) []candidate {
	empties := s.b.Empties()
	list := make([]candidate, len(empties))

	for i, p := range empties {
		if maximizing {
			list[i] = candidate{point: p, score: s.evaluate(p, s.color)}
		} else {
			list[i] = candidate{point: p, score: -s.evaluate(p, s.color.Other())}
		}
	}

	sort.SliceStable(list, func(i, j int) bool {
		if maximizing {
			return list[i].score > list[j].score
		}
		return list[i].score < list[j].score
	})

	if len(list) > s.searcher.config.Breadth {
		list = list[:s.searcher.config.Breadth]
	}

	return list
}

// evaluate is a cached core.EvaluateMove on the working board.
func (s *state) evaluate(p board.Point, color board.Color) float64 {
	key := cacheKey{hash: s.b.Hash(), x: p.X, y: p.Y, color: color}
	if score, found := s.cache[key]; found {
		return score
	}

	score := s.searcher.core.EvaluateMove(s.b, p.X, p.Y, color)
	s.cache[key] = score
	return score
}

func (s *state) heat(empties []board.Point) map[board.Point]float64 {
	heat := make(map[board.Point]float64)
	for i := 0; i < len(empties) && i < search.DefaultLeafWidth; i++ {
		p := empties[i]
		heat[p] = s.evaluate(p, s.color) * HeatScale
	}

	return heat
}
