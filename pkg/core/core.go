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

// Package core bundles the rule and evaluation primitives the searchers are
// built on behind one interface, with a pure reference implementation and an
// accelerated one which computes the same results faster.
package core

import (
	"fmt"

	"laptudirm.com/x/gomoku/pkg/board"
	"laptudirm.com/x/gomoku/pkg/eval"
	"laptudirm.com/x/gomoku/pkg/rules"
)

// Core is the set of rule and evaluation primitives used during search.
// Implementations must be safe for concurrent use and must never modify
// the boards passed to them.
type Core interface {
	// Name identifies the implementation.
	Name() string

	// Evaluator returns the evaluator the core scores with.
	Evaluator() *eval.Evaluator

	ValidateMove(b *board.Board, x, y int, color board.Color) error
	CheckGameEnd(b *board.Board) rules.GameEndResult
	WinAt(b *board.Board, p board.Point) bool
	FindWinningMove(b *board.Board, color board.Color) (board.Point, bool)

	EvaluateMove(b *board.Board, x, y int, color board.Color) float64
	EvaluateBoard(b *board.Board, color board.Color) float64
}

const (
	PureName        = "pure"
	AcceleratedName = "accelerated"
)

// New returns the named core implementation. An empty name selects the
// accelerated core.
func New(name string, ev *eval.Evaluator) (Core, error) {
	switch name {
	case AcceleratedName, "":
		return NewAccelerated(ev), nil
	case PureName:
		return NewPure(ev), nil
	default:
		return nil, fmt.Errorf("new core: invalid core %s", name)
	}
}
