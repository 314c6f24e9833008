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

package rules

import (
	"errors"
	"fmt"

	"laptudirm.com/x/gomoku/pkg/board"
)

// Reasons a move can be rejected for.
var (
	ErrOutOfBounds = errors.New("out of bounds")
	ErrOccupied    = errors.New("occupied")
	ErrWrongTurn   = errors.New("wrong turn")
)

// Reasons a board can be rejected for.
var (
	ErrStoneBalance = errors.New("rules: stone counts differ by more than one")
	ErrTwoWinners   = errors.New("rules: both colors have a five")
)

// MoveError is returned by ValidateMove. Its Reason is one of ErrOutOfBounds,
// ErrOccupied or ErrWrongTurn, and errors.Is sees through to it.
type MoveError struct {
	Point  board.Point
	Color  board.Color
	Reason error
}

func (err *MoveError) Error() string {
	return fmt.Sprintf("rules: %s move at %s: %v", err.Color, err.Point, err.Reason)
}

func (err *MoveError) Unwrap() error {
	return err.Reason
}
