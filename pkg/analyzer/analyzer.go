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

// Package analyzer grades moves, describes positions and reviews finished
// games using the static evaluation.
package analyzer

import (
	"math"

	"laptudirm.com/x/gomoku/pkg/board"
	"laptudirm.com/x/gomoku/pkg/core"
	"laptudirm.com/x/gomoku/pkg/eval"
	"laptudirm.com/x/gomoku/pkg/rules"
)

// Analyzer evaluates positions with a core.
type Analyzer struct {
	core core.Core
	ev   *eval.Evaluator
}

func New(c core.Core) *Analyzer {
	return &Analyzer{core: c, ev: c.Evaluator()}
}

// Quality grades a single move.
type Quality struct {
	Move    board.Point  `yaml:"move"`
	Pattern eval.Pattern `yaml:"pattern"`
	Score   float64      `yaml:"score"`

	// The best move by static evaluation and its score.
	Best      board.Point `yaml:"best"`
	BestScore float64     `yaml:"best-score"`

	// Quality is the score as a percentage of the best score, and Gap is
	// how far it falls short of the quality of the best move.
	Quality        float64 `yaml:"quality"`
	Gap            float64 `yaml:"gap"`
	PositionWeight float64 `yaml:"position-weight"`
}

// MoveQuality grades a move of color at p on b, which is the position
// before the move. The board is not modified.
func (analyzer *Analyzer) MoveQuality(b *board.Board, p board.Point, color board.Color) (Quality, error) {
	switch {
	case !b.InBounds(p.X, p.Y):
		return Quality{}, &rules.MoveError{Point: p, Color: color, Reason: rules.ErrOutOfBounds}
	case b.At(p.X, p.Y) != board.Empty:
		return Quality{}, &rules.MoveError{Point: p, Color: color, Reason: rules.ErrOccupied}
	}

	pattern, _ := analyzer.ev.RecognizePattern(b, p.X, p.Y, color)
	score := analyzer.core.EvaluateMove(b, p.X, p.Y, color)
	best, bestScore := analyzer.BestMove(b, color)

	quality, gap := 0.0, 0.0
	if bestScore > 0 {
		quality = math.Max(0, math.Min(100, score/bestScore*100))
		gap = 100 - quality
	}

	return Quality{
		Move:    p,
		Pattern: pattern,
		Score:   score,

		Best:      best,
		BestScore: bestScore,

		Quality:        quality,
		Gap:            gap,
		PositionWeight: analyzer.ev.PositionWeight(p.X, p.Y),
	}, nil
}

// BestMove returns the empty cell with the highest static move score for
// color, the first one in row-major order on ties. It returns board.NoPoint
// on a full board.
func (analyzer *Analyzer) BestMove(b *board.Board, color board.Color) (board.Point, float64) {
	best, bestScore := board.NoPoint, 0.0
	for _, p := range b.Empties() {
		if score := analyzer.core.EvaluateMove(b, p.X, p.Y, color); best == board.NoPoint || score > bestScore {
			best, bestScore = p, score
		}
	}

	return best, bestScore
}
