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

package match

import "laptudirm.com/x/gomoku/pkg/ranking"

// PairResult represents the result of a single game pair.
type PairResult int

const (
	WinWin   = PairResult(Win + Win)   // Player 1 wins both games
	WinDraw  = PairResult(Win + Draw)  // Player 1 wins one and draws one
	DrawDraw = PairResult(Draw + Draw) // Win-Loss or Draw-Draw
	DrawLoss = PairResult(Draw + Loss) // Player 2 wins one and draws one
	LossLoss = PairResult(Loss + Loss) // Player 2 wins both games
)

// GetPairResult returns the PairResult given the Result of each game in the
// pair, both from player 1's point of view.
func GetPairResult(result1, result2 Result) PairResult {
	return PairResult(result1 + result2)
}

// Result represents the result of a single game for player 1.
type Result int

const (
	Win  Result = +1
	Draw Result = 0
	Loss Result = -1
)

// GameLostBy maps the losing player to the game's Result.
var GameLostBy = [2]Result{
	0: Loss,
	1: Win,
}

// String returns a string representation of the given Result.
func (result Result) String() string {
	switch result {
	case Win:
		return "1-0"
	case Draw:
		return "1/2-1/2"
	case Loss:
		return "0-1"
	default:
		return "?-?"
	}
}

// Outcome returns player 1's score for the ranking table.
func (result Result) Outcome() ranking.Outcome {
	switch result {
	case Win:
		return ranking.Win
	case Loss:
		return ranking.Loss
	default:
		return ranking.Draw
	}
}
