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

// Package match plays single games between two strategies.
package match

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/gomoku/pkg/board"
	"laptudirm.com/x/gomoku/pkg/eve/match/games"
)

type Config struct {
	Game string
	Size int

	Opening []board.Point

	// Players[0] moves first after the opening.
	Players [2]*Player
}

// Run plays a game and returns its result from the point of view of the
// first player, the reason for it and the moves played after the opening.
// A cancelled context ends the game as a draw.
func Run(ctx context.Context, config *Config) (Result, string, []board.Move) {
	clocks := [2]TimeControl{}

	var err error

	if clocks[0], err = ParseTime(config.Players[0].Config().TimeC); err != nil {
		return Loss, err.Error(), nil
	}

	if clocks[1], err = ParseTime(config.Players[1].Config().TimeC); err != nil {
		return Win, err.Error(), nil
	}

	oracle := games.GetOracle(config.Game)
	if oracle == nil {
		return Draw, fmt.Sprintf("unknown game %s", config.Game), nil
	}

	if err := oracle.Initialize(config.Size, config.Opening); err != nil {
		return Draw, err.Error(), nil
	}

	var moves []board.Move

	playerToMove := 0
	for {
		if ctx.Err() != nil {
			return Draw, "aborted", moves
		}

		player := config.Players[playerToMove]
		color := oracle.SideToMove()

		startTime := time.Now()
		p, err := player.Go(ctx, oracle.Board().Clone(), clocks[playerToMove])
		timeSpent := time.Since(startTime)

		if err != nil {
			return GameLostBy[playerToMove], err.Error(), moves
		}

		if clocks[playerToMove].Timed() && !clocks[playerToMove].Spend(timeSpent) {
			return GameLostBy[playerToMove], "time forfeit", moves
		}

		if err := oracle.MakeMove(p); err != nil {
			return GameLostBy[playerToMove], fmt.Sprintf("illegal move %s", p), moves
		}

		logrus.Tracef("match: %s plays %s in %s", player.Name(), p, timeSpent)
		moves = append(moves, board.Move{Point: p, Color: color})

		playerToMove ^= 1

		result, reason := oracle.GameResult()
		switch result {
		case games.StmWins:
			return GameLostBy[playerToMove^1], reason, moves
		case games.XtmWins:
			return GameLostBy[playerToMove], reason, moves
		case games.Draw:
			return Draw, reason, moves
		}
	}
}
