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

package games

import (
	"fmt"

	"laptudirm.com/x/gomoku/pkg/board"
	"laptudirm.com/x/gomoku/pkg/rules"
)

type GomokuOracle struct {
	b    *board.Board
	last board.Point
}

// Initialize sets up an empty board of the given size and plays the
// opening on it, alternating colors from black.
func (oracle *GomokuOracle) Initialize(size int, opening []board.Point) error {
	oracle.b = board.New(size)
	oracle.last = board.NoPoint

	for i, p := range opening {
		if err := oracle.MakeMove(p); err != nil {
			return fmt.Errorf("opening move %d: %w", i+1, err)
		}

		if result, _ := oracle.GameResult(); result != Ongoing {
			return fmt.Errorf("opening move %d: game over", i+1)
		}
	}

	return nil
}

func (oracle *GomokuOracle) SideToMove() board.Color {
	return rules.Turn(oracle.b)
}

func (oracle *GomokuOracle) MakeMove(p board.Point) error {
	if _, err := rules.PlacePiece(oracle.b, p.X, p.Y, oracle.SideToMove()); err != nil {
		return err
	}

	oracle.last = p
	return nil
}

func (oracle *GomokuOracle) Board() *board.Board {
	return oracle.b
}

func (oracle *GomokuOracle) GameResult() (Result, string) {
	// only the player who just moved can have made a five
	if oracle.last != board.NoPoint && rules.WinAt(oracle.b, oracle.last) {
		return XtmWins, "five in a row"
	}

	if oracle.b.Full() {
		return Draw, "full board"
	}

	return Ongoing, ""
}
