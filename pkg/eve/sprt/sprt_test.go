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

package sprt

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"testing"

	"laptudirm.com/x/gomoku/pkg/eve/match"
	"laptudirm.com/x/gomoku/pkg/eve/stats"
	"laptudirm.com/x/gomoku/pkg/strategy"
)

func testConfig() Config {
	return Config{
		Name: "depth",
		Players: [2]match.PlayerConfig{
			{Name: "deep", Strategy: strategy.Minimax, Depth: 2},
			{Name: "shallow", Strategy: strategy.Minimax, Depth: 1},
		},
		Size:        9,
		Concurrency: 2,
		Elo0:        0,
		Elo1:        100,
		Alpha:       0.05,
		Beta:        0.05,
	}
}

func newSPRT(t *testing.T, config Config) *SPRT {
	t.Helper()

	sprt, err := NewTournament(config)
	if err != nil {
		t.Fatalf("NewTournament: %v", err)
	}

	sprt.Output = io.Discard
	return sprt
}

func TestVerdict(t *testing.T) {
	tests := []struct {
		legacy bool
		state  State
		want   Verdict
	}{
		{false, State{Pairs: stats.Penta{LossLoss: 10, DrawLoss: 10, DrawDraw: 10, WinDraw: 10, WinWin: 60}}, H1},
		{false, State{Pairs: stats.Penta{LossLoss: 60, DrawLoss: 10, DrawDraw: 10, WinDraw: 10, WinWin: 10}}, H0},
		{false, State{Pairs: stats.Penta{WinWin: 1}}, Undecided},
		{true, State{Games: stats.Score{Wins: 200, Draws: 20, Losses: 20}}, H1},
		{true, State{Games: stats.Score{Wins: 20, Draws: 20, Losses: 200}}, H0},
		{true, State{Games: stats.Score{Wins: 3, Losses: 3}}, Undecided},
	}

	for _, test := range tests {
		config := testConfig()
		config.Legacy = test.legacy
		config.State = test.state

		if got := newSPRT(t, config).Verdict(); got != test.want {
			t.Errorf("%+v: verdict %q, want %q", test.state, got, test.want)
		}
	}
}

func TestStartWithBudget(t *testing.T) {
	config := testConfig()
	config.MaxPairs = 2

	sprt := newSPRT(t, config)
	sprt.StatePath = filepath.Join(t.TempDir(), "depth.yaml")

	verdict, err := sprt.Start(context.Background())
	if err != nil || verdict != Undecided {
		t.Fatalf("Start = %q, %v", verdict, err)
	}

	if sprt.State.Pairs.Pairs() != 2 || sprt.State.Games.Games() != 4 {
		t.Fatalf("state = %+v, want 2 pairs of games", sprt.State)
	}

	saved, err := Load(sprt.StatePath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if saved.State != sprt.State || saved.Name != "depth" || saved.Players[0].Name != "deep" {
		t.Fatalf("saved config = %+v", saved)
	}

	// the budget covers the resumed pairs too
	resumed := newSPRT(t, saved)
	if verdict, err := resumed.Start(context.Background()); err != nil || verdict != Undecided {
		t.Fatalf("resumed Start = %q, %v", verdict, err)
	}

	if resumed.State != sprt.State {
		t.Fatalf("resumed test played more pairs: %+v", resumed.State)
	}
}

func TestStartDecided(t *testing.T) {
	config := testConfig()
	config.State.Pairs = stats.Penta{LossLoss: 60, DrawLoss: 10, DrawDraw: 10, WinDraw: 10, WinWin: 10}

	sprt := newSPRT(t, config)

	verdict, err := sprt.Start(context.Background())
	if err != nil || verdict != H0 {
		t.Fatalf("Start = %q, %v", verdict, err)
	}

	if sprt.State != config.State {
		t.Fatalf("decided test played more pairs: %+v", sprt.State)
	}
}

func TestStartCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	verdict, err := newSPRT(t, testConfig()).Start(ctx)
	if verdict != Undecided || !errors.Is(err, context.Canceled) {
		t.Fatalf("Start = %q, %v", verdict, err)
	}
}

func TestNewTournamentErrors(t *testing.T) {
	config := testConfig()
	config.Alpha = 0

	if _, err := NewTournament(config); !errors.Is(err, ErrBounds) {
		t.Errorf("alpha 0: %v", err)
	}

	config = testConfig()
	config.Players[1].Strategy = strategy.KindN

	if _, err := NewTournament(config); err == nil {
		t.Errorf("invalid strategy accepted")
	}
}
