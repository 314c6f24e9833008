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

// Package tournament plays strategies against each other in scheduled
// rounds of game pairs.
package tournament

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"laptudirm.com/x/gomoku/pkg/board"
	"laptudirm.com/x/gomoku/pkg/eve/match"
	"laptudirm.com/x/gomoku/pkg/eve/stats"
	"laptudirm.com/x/gomoku/pkg/eve/tournament/schedule"
	"laptudirm.com/x/gomoku/pkg/game"
	"laptudirm.com/x/gomoku/pkg/ranking"
	"laptudirm.com/x/gomoku/pkg/rules"
)

var ErrPlayers = errors.New("new tour: at least two players are needed")

func NewTournament(config Config) (*Tournament, error) {
	if len(config.Players) < 2 {
		return nil, ErrPlayers
	}

	config.defaults()

	tour := Tournament{
		Config: config,
		Scores: make([]stats.Score, len(config.Players)),
		Output: os.Stdout,
	}

	for _, player := range config.Players {
		p, err := match.StartPlayer(player, config.Size)
		if err != nil {
			return nil, err
		}

		tour.players = append(tour.players, p)
	}

	var err error
	tour.openings, err = match.NewBook(config.Openings)
	if err != nil {
		return nil, err
	}

	tour.Scheduler, err = schedule.New(config.Scheduler)
	if err != nil {
		return nil, err
	}

	return &tour, nil
}

type Tournament struct {
	Config Config

	Scheduler schedule.Scheduler
	openings  *match.OpeningBook
	players   []*match.Player

	// Ranking, if set, is updated with the result of every game.
	Ranking *ranking.Table

	// Output receives the score tables.
	Output io.Writer

	Games  int
	Scores []stats.Score
}

// Start plays the whole tournament. A cancelled context stops it early,
// and games cut short are not counted.
func (tour *Tournament) Start(ctx context.Context) error {
	// 1 Tournament = {ROUNDS} Rounds
	// 1 Round      = {SOME_N} Encounters
	// 1 Encounter  = {GAME_P} Game Pairs
	// 1 Game Pair  = 2 Games

	games := make(chan *Match)
	results := make(chan Result)

	go tour.schedule(ctx, games)

	var workers errgroup.Group
	for i := 0; i < tour.Config.Concurrency; i++ {
		workers.Go(func() error {
			for game := range games {
				results <- tour.RunGame(ctx, game)
			}

			return nil
		})
	}

	go func() {
		_ = workers.Wait()
		close(results)
	}()

	for result := range results {
		tour.handle(result)
	}

	tour.Report()
	return ctx.Err()
}

func (tour *Tournament) schedule(ctx context.Context, games chan<- *Match) {
	defer close(games)

	number := 0
	for round := 0; round < tour.Config.Rounds; round++ {
		tour.Scheduler.Initialize(len(tour.players))

		for encounter := 0; encounter < tour.Scheduler.TotalEncounters(); encounter++ {
			p1, p2 := tour.Scheduler.NextEncounter()

			for pair := 0; pair < tour.Config.GamePairs; pair++ {
				opening := tour.openings.Current()

				for game := 0; game < 2; game++ {
					number++

					m := &Match{
						Config: match.Config{
							Game:    tour.Config.Game,
							Size:    tour.Config.Size,
							Opening: opening,
							Players: [2]*match.Player{tour.players[p1], tour.players[p2]},
						},

						Round:  round + 1,
						Number: number,

						Player1: p1,
						Player2: p2,
					}

					select {
					case games <- m:
					case <-ctx.Done():
						return
					}

					// Switch sides.
					p1, p2 = p2, p1
				}

				tour.openings.Next()
			}
		}
	}
}

type Match struct {
	match.Config

	Round, Number    int
	Player1, Player2 int
}

func (tour *Tournament) RunGame(ctx context.Context, game *Match) Result {
	logrus.Infof(
		"\x1b[33mStarting\x1b[0m Round #%d Game #%d: %s vs %s (\x1b[33m%s\x1b[0m)",
		game.Round,
		game.Number,
		game.Players[0].Name(),
		game.Players[1].Name(),
		match.FormatOpening(game.Opening),
	)

	started := time.Now()
	score, reason, moves := match.Run(ctx, &game.Config)

	return Result{
		Match:   game,
		Result:  score,
		Reason:  reason,
		Moves:   moves,
		Started: started,
		Aborted: ctx.Err() != nil,
	}
}

func (tour *Tournament) handle(result Result) {
	if result.Aborted {
		logrus.Warnf("Aborted Round #%d Game #%d", result.Match.Round, result.Match.Number)
		return
	}

	tour.Games++

	p1, p2 := result.Match.Player1, result.Match.Player2
	switch result.Result {
	case match.Win:
		tour.Scores[p1].Wins++
		tour.Scores[p2].Losses++

	case match.Loss:
		tour.Scores[p2].Wins++
		tour.Scores[p1].Losses++

	case match.Draw:
		tour.Scores[p1].Draws++
		tour.Scores[p2].Draws++
	}

	logrus.Infof(
		"\x1b[32mFinished\x1b[0m Round #%d Game #%d: %s vs %s: %s",
		result.Match.Round,
		result.Match.Number,
		result.Match.Players[0].Name(),
		result.Match.Players[1].Name(),
		result,
	)

	if tour.Ranking != nil {
		tour.Ranking.Update(
			result.Match.Players[0].Name(),
			result.Match.Players[1].Name(),
			result.Result.Outcome(),
		)
	}

	if tour.Config.Records != "" {
		record := result.Record()
		if _, err := record.Save(tour.Config.Records); err != nil {
			logrus.Error(err)
		}
	}

	if tour.Games%5 == 0 {
		tour.Report()
	}
}

func (tour *Tournament) Report() {
	w := tour.Output

	fmt.Fprintln(w, "╔══════════════════════════════════════════════════════════╗")
	fmt.Fprintln(w, "║    Name               Elo Error   Wins Loss Draw   Total ║")
	fmt.Fprintln(w, "╠══════════════════════════════════════════════════════════╣")
	for i, player := range tour.players {
		score := tour.Scores[i]
		elo, margin := score.Elo()

		format := "║ %2d. %-15s   %+4.0f %4.0f   %4d %4d %4d   %5d ║\n"
		if tour.Config.Scheduler == schedule.GauntletName && i == 0 {
			if elo >= 0 {
				format = "║ \x1b[32m%2d. %-15s   %+4.0f %4.0f   %4d %4d %4d   %5d\x1b[0m ║\n"
			} else {
				format = "║ \x1b[31m%2d. %-15s   %+4.0f %4.0f   %4d %4d %4d   %5d\x1b[0m ║\n"
			}
		}

		fmt.Fprintf(
			w, format,
			i+1, player.Name(),
			elo, margin,
			score.Wins, score.Losses, score.Draws,
			score.Games())
	}
	fmt.Fprintln(w, "╚══════════════════════════════════════════════════════════╝")
}

type Result struct {
	Match *Match

	Result match.Result
	Reason string

	Moves   []board.Move
	Started time.Time
	Aborted bool
}

func (result Result) String() string {
	switch result.Result {
	case match.Win:
		return fmt.Sprintf("%s wins by %s", result.Match.Players[0].Name(), result.Reason)
	case match.Loss:
		return fmt.Sprintf("%s wins by %s", result.Match.Players[1].Name(), result.Reason)
	case match.Draw:
		return fmt.Sprintf("Draw by %s", result.Reason)
	}

	return "illegal result"
}

// Record returns the game record of the result, opening included.
func (result Result) Record() game.Record {
	record := game.Record{
		ID:      uuid.NewString(),
		Mode:    game.SelfPlay,
		Size:    result.Match.Size,
		Started: result.Started,
	}

	b := board.New(result.Match.Size)
	color := board.Black
	for _, p := range result.Match.Opening {
		record.Moves = append(record.Moves, board.Move{Point: p, Color: color})
		b.Set(p.X, p.Y, color)
		color = color.Other()
	}

	// the first player takes the color to move after the opening
	first := color
	names := [2]string{result.Match.Players[0].Name(), result.Match.Players[1].Name()}
	if first == board.White {
		names[0], names[1] = names[1], names[0]
	}
	record.Black, record.White = names[0], names[1]

	record.Moves = append(record.Moves, result.Moves...)
	for _, move := range result.Moves {
		b.Set(move.X, move.Y, move.Color)
	}

	record.Ended = true
	record.WinLine = rules.CheckGameEnd(b).WinLine

	switch result.Result {
	case match.Win:
		record.Winner = first
	case match.Loss:
		record.Winner = first.Other()
	}

	return record
}

type Config struct {
	// The strategies participating in the tournament.
	Players []match.PlayerConfig `yaml:"players"`

	// The game that will be played, and its board size.
	Game string `yaml:"game"`
	Size int    `yaml:"board-size"`

	// Number of games that will be played concurrently.
	Concurrency int `yaml:"concurrency"`

	Scheduler string `yaml:"scheduler"`

	// 1 Tournament = {ROUNDS} Rounds
	// 1 Round      = {SOME_N} Encounters
	// 1 Encounter  = {GAME_P} Game Pairs
	// 1 Game Pair  = 2 Games
	Rounds    int `yaml:"rounds"`     // Number of rounds to run the tournament for.
	GamePairs int `yaml:"game-pairs"` // Number of games per encounter in every round.

	Openings match.OpeningConfig `yaml:"openings"`

	// Directory to save the game records in. Empty disables records.
	Records string `yaml:"records"`
}

func (config *Config) defaults() {
	if config.Game == "" {
		config.Game = "gomoku"
	}

	if config.Size == 0 {
		config.Size = board.DefaultSize
	}

	config.Concurrency = max(config.Concurrency, 1)
	config.Rounds = max(config.Rounds, 1)
	config.GamePairs = max(config.GamePairs, 1)
}
