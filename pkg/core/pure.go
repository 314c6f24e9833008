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

// Pure is the reference core: a thin layer over the rules and eval packages
// which recomputes everything from scratch.
type Pure struct {
	ev *eval.Evaluator
}

var _ Core = (*Pure)(nil)

func NewPure(ev *eval.Evaluator) *Pure {
	return &Pure{ev: ev}
}

func (*Pure) Name() string {
	return PureName
}

func (core *Pure) Evaluator() *eval.Evaluator {
	return core.ev
}

func (*Pure) ValidateMove(b *board.Board, x, y int, color board.Color) error {
	return rules.ValidateMove(b, x, y, color)
}

func (*Pure) CheckGameEnd(b *board.Board) rules.GameEndResult {
	return rules.CheckGameEnd(b)
}

func (*Pure) WinAt(b *board.Board, p board.Point) bool {
	return rules.WinAt(b, p)
}

// FindWinningMove tries every empty cell on a copy of the board and checks
// the whole board for a result.
func (*Pure) FindWinningMove(b *board.Board, color board.Color) (board.Point, bool) {
	for _, p := range b.Empties() {
		after := b.Clone()
		after.Set(p.X, p.Y, color)

		if result := rules.CheckGameEnd(after); result.IsEnd && result.Winner == color {
			return p, true
		}
	}

	return board.NoPoint, false
}

func (core *Pure) EvaluateMove(b *board.Board, x, y int, color board.Color) float64 {
	return core.ev.EvaluateMove(b, x, y, color)
}

func (core *Pure) EvaluateBoard(b *board.Board, color board.Color) float64 {
	return core.ev.EvaluateBoard(b, color)
}
