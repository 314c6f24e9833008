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

// Package sprt runs sequential probability ratio tests between two
// strategies.
package sprt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"laptudirm.com/x/gomoku/pkg/board"
	"laptudirm.com/x/gomoku/pkg/eve/match"
	"laptudirm.com/x/gomoku/pkg/eve/stats"
)

var ErrBounds = errors.New("new sprt: alpha and beta must lie in (0, 1)")

// Verdict is the outcome of a test.
type Verdict string

const (
	Undecided Verdict = ""
	H0        Verdict = "H0" // the strategies are within elo0 of each other
	H1        Verdict = "H1" // the first strategy is elo1 stronger
)

func NewTournament(config Config) (*SPRT, error) {
	if config.Alpha <= 0 || config.Alpha >= 1 || config.Beta <= 0 || config.Beta >= 1 {
		return nil, ErrBounds
	}

	config.defaults()

	sprt := SPRT{
		Config: config,
		Output: os.Stdout,
	}

	for i, player := range config.Players {
		p, err := match.StartPlayer(player, config.Size)
		if err != nil {
			return nil, err
		}

		sprt.players[i] = p
	}

	var err error
	sprt.openings, err = match.NewBook(config.Openings)
	if err != nil {
		return nil, err
	}

	return &sprt, nil
}

type SPRT struct {
	Config

	players  [2]*match.Player
	openings *match.OpeningBook

	// Output receives the reports.
	Output io.Writer

	// StatePath, if set, is where the state of the test is saved after
	// every report, so that it can be resumed.
	StatePath string

	number  atomic.Int64
	tickets atomic.Int64

	a, b float64
}

// Start runs the test until a hypothesis is accepted, the pair budget is
// spent or ctx is cancelled. Pairs cut short are not counted.
func (sprt *SPRT) Start(ctx context.Context) (Verdict, error) {
	sprt.a, sprt.b = stats.StoppingBounds(sprt.Config.Alpha, sprt.Config.Beta)
	sprt.tickets.Store(int64(sprt.State.Pairs.Pairs()))

	run, stop := context.WithCancel(ctx)
	defer stop()

	results := make(chan PairResult)

	var workers errgroup.Group
	for i := 0; i < sprt.Config.Concurrency; i++ {
		workers.Go(func() error {
			sprt.Thread(run, results)
			return nil
		})
	}

	go func() {
		_ = workers.Wait()
		close(results)
	}()

	verdict := sprt.Verdict()
	if verdict != Undecided {
		stop()
	}

	for pair := range results {
		if verdict != Undecided || pair.Aborted() {
			continue
		}

		sprt.record(pair)

		if verdict = sprt.Verdict(); verdict != Undecided {
			stop()
			continue
		}

		if sprt.State.Pairs.Pairs()%5 == 0 {
			sprt.Report()
		}
	}

	sprt.Report()

	switch verdict {
	case H0:
		fmt.Fprintln(sprt.Output, "\x1b[31mH0 Accepted\x1b[0m")
	case H1:
		fmt.Fprintln(sprt.Output, "\x1b[32mH1 Accepted\x1b[0m")
	default:
		return Undecided, ctx.Err()
	}

	return verdict, nil
}

// Thread plays game pairs until ctx is done or the pair budget is spent.
func (sprt *SPRT) Thread(ctx context.Context, results chan<- PairResult) {
	for ctx.Err() == nil {
		if ticket := sprt.tickets.Add(1); sprt.Config.MaxPairs > 0 && ticket > int64(sprt.Config.MaxPairs) {
			return
		}

		opening := sprt.openings.Take()

		var pair PairResult

		p1, p2 := 0, 1
		for game := 0; game < 2; game++ {
			m := Match{
				Config: match.Config{
					Game:    sprt.Config.Game,
					Size:    sprt.Config.Size,
					Opening: opening,
					Players: [2]*match.Player{sprt.players[p1], sprt.players[p2]},
				},

				Number: int(sprt.number.Add(1)),

				Player1: p1,
				Player2: p2,
			}

			pair.Matches[game] = sprt.RunGame(ctx, &m)

			p1, p2 = p2, p1
		}

		pair.Result = match.GetPairResult(
			pair.Matches[0].Result,
			pair.Matches[1].Result,
		)

		results <- pair
	}
}

type Match struct {
	match.Config
	Number int

	Player1, Player2 int
}

// RunGame plays a game and returns its result from the point of view of
// the first strategy of the test.
func (sprt *SPRT) RunGame(ctx context.Context, game *Match) Result {
	logrus.Infof(
		"\x1b[33mStarting\x1b[0m Game #%d: %s vs %s (\x1b[33m%s\x1b[0m)",
		game.Number,
		game.Players[0].Name(),
		game.Players[1].Name(),
		match.FormatOpening(game.Opening),
	)

	score, reason, _ := match.Run(ctx, &game.Config)
	if game.Player2 == 0 {
		score = -score
	}

	result := Result{
		Match:   game,
		Result:  score,
		Reason:  reason,
		Aborted: ctx.Err() != nil,
	}

	if !result.Aborted {
		logrus.Infof(
			"\x1b[32mFinished\x1b[0m Game #%d: %s vs %s: %s",
			game.Number,
			game.Players[0].Name(),
			game.Players[1].Name(),
			result,
		)
	}

	return result
}

func (sprt *SPRT) record(pair PairResult) {
	switch pair.Result {
	case match.WinWin:
		sprt.State.Pairs.WinWin++
	case match.WinDraw:
		sprt.State.Pairs.WinDraw++
	case match.DrawDraw:
		sprt.State.Pairs.DrawDraw++
	case match.DrawLoss:
		sprt.State.Pairs.DrawLoss++
	case match.LossLoss:
		sprt.State.Pairs.LossLoss++
	}

	for _, result := range pair.Matches {
		switch result.Result {
		case match.Win:
			sprt.State.Games.Wins++
		case match.Loss:
			sprt.State.Games.Losses++
		case match.Draw:
			sprt.State.Games.Draws++
		}
	}
}

// Verdict returns the hypothesis accepted by the current state, if any.
func (sprt *SPRT) Verdict() Verdict {
	a, b := stats.StoppingBounds(sprt.Config.Alpha, sprt.Config.Beta)

	switch llr := sprt.LLR(); {
	case llr <= a:
		return H0
	case llr >= b:
		return H1
	default:
		return Undecided
	}
}

func (sprt *SPRT) Report() {
	if sprt.StatePath != "" {
		if err := sprt.Save(sprt.StatePath); err != nil {
			logrus.Error(err)
		}
	}

	elo, margin := sprt.State.Games.Elo()
	if !sprt.Config.Legacy {
		elo, margin = sprt.State.Pairs.Elo()
	}

	games := sprt.State.Games
	llr := sprt.LLR()

	elo_str := fmt.Sprintf("║ ELO   | %.2f +- %.2f (95%%)", elo, margin)
	llr_str := fmt.Sprintf("║ LLR   | %.2f (%.2f, %.2f) [%.2f, %.2f]", llr, sprt.a, sprt.b, sprt.Config.Elo0, sprt.Config.Elo1)
	gam_str := fmt.Sprintf("║ GAMES | N: %d W: %d L: %d D: %d", games.Games(), games.Wins, games.Losses, games.Draws)

	w := sprt.Output
	fmt.Fprintln(w, "╔═════════════════════════════════════════════════╗")
	fmt.Fprintf(w, "%-50s║\n", elo_str)
	fmt.Fprintf(w, "%-50s║\n", llr_str)
	fmt.Fprintf(w, "%-50s║\n", gam_str)
	if !sprt.Config.Legacy {
		fmt.Fprintf(w, "%-50s║\n", "║ PENTA | "+sprt.State.Pairs.String())
	}
	fmt.Fprintln(w, "╚═════════════════════════════════════════════════╝")
}

func (sprt *SPRT) LLR() float64 {
	if sprt.Config.Legacy {
		return sprt.State.Games.LLR(sprt.Config.Elo0, sprt.Config.Elo1)
	}

	return sprt.State.Pairs.LLR(sprt.Config.Elo0, sprt.Config.Elo1)
}

// Wrap returns the config which resumes the test from its current state.
func (sprt *SPRT) Wrap() Config {
	config := sprt.Config
	config.Openings = sprt.openings.Wrap()
	return config
}

// Save writes the resumable state of the test to path.
func (sprt *SPRT) Save(path string) error {
	data, err := yaml.Marshal(sprt.Wrap())
	if err != nil {
		return fmt.Errorf("save sprt: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("save sprt: %w", err)
	}

	return nil
}

// Load reads the config of a test saved with Save.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load sprt: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("load sprt: %w", err)
	}

	return config, nil
}

type PairResult struct {
	Result  match.PairResult
	Matches [2]Result
}

func (pair PairResult) Aborted() bool {
	return pair.Matches[0].Aborted || pair.Matches[1].Aborted
}

type Result struct {
	Match *Match

	Result  match.Result
	Reason  string
	Aborted bool
}

func (result Result) String() string {
	candidate, other := result.Match.Players[0], result.Match.Players[1]
	if result.Match.Player1 != 0 {
		candidate, other = other, candidate
	}

	switch result.Result {
	case match.Win:
		return fmt.Sprintf("%s wins by %s", candidate.Name(), result.Reason)
	case match.Loss:
		return fmt.Sprintf("%s wins by %s", other.Name(), result.Reason)
	case match.Draw:
		return fmt.Sprintf("Draw by %s", result.Reason)
	}

	return "illegal result"
}

type Config struct {
	Name string `yaml:"name"`

	// The strategies being tested. The first is the candidate.
	Players [2]match.PlayerConfig `yaml:"players"`

	// The game that will be played, and its board size.
	Game string `yaml:"game"`
	Size int    `yaml:"board-size"`

	// Number of games that will be played concurrently.
	Concurrency int `yaml:"concurrency"`

	// Legacy selects the trinomial model over the pentanomial one.
	Legacy bool `yaml:"legacy"`

	Elo0 float64 `yaml:"elo0"` // The null elo hypothesis.
	Elo1 float64 `yaml:"elo1"` // The alternate elo hypothesis.

	Alpha float64 `yaml:"alpha"` // Probability of a type I error.
	Beta  float64 `yaml:"beta"`  // Probability of a type II error.

	// Maximum number of game pairs. Zero means no limit.
	MaxPairs int `yaml:"max-pairs"`

	Openings match.OpeningConfig `yaml:"openings"`

	State State `yaml:"state"`
}

// State is the tally of a test, kept across restarts.
type State struct {
	Games stats.Score `yaml:"games"`
	Pairs stats.Penta `yaml:"pairs"`
}

func (config *Config) defaults() {
	if config.Game == "" {
		config.Game = "gomoku"
	}

	if config.Size == 0 {
		config.Size = board.DefaultSize
	}

	config.Concurrency = max(config.Concurrency, 1)
}
