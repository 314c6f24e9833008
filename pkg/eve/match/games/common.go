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

import "laptudirm.com/x/gomoku/pkg/board"

func GetOracle(name string) Oracle {
	switch name {
	case "gomoku", "":
		return &GomokuOracle{}
	default:
		return nil
	}
}

// Oracle adjudicates a game between two players.
type Oracle interface {
	Initialize(size int, opening []board.Point) error
	SideToMove() board.Color
	MakeMove(p board.Point) error
	Board() *board.Board
	GameResult() (Result, string)
}

type Result uint8

const (
	Ongoing Result = iota
	StmWins
	XtmWins
	Draw
)
