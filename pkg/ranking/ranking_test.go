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

package ranking

import (
	"math"
	"path/filepath"
	"testing"
)

func TestExpected(t *testing.T) {
	tests := []struct {
		ra, rb int
		want   float64
	}{
		{1500, 1500, 0.5},
		{1900, 1500, 1 / (1 + math.Pow(10, -1))},
		{1500, 1900, 1 / (1 + math.Pow(10, 1))},
	}

	for _, test := range tests {
		if got := Expected(test.ra, test.rb); math.Abs(got-test.want) > 1e-12 {
			t.Errorf("Expected(%d, %d) = %v, want %v", test.ra, test.rb, got, test.want)
		}
	}
}

func TestK(t *testing.T) {
	tests := []struct {
		player Player
		want   float64
	}{
		{Player{Rating: 1500}, NewK},
		{Player{Rating: 2100, Wins: 19}, NewK},
		{Player{Rating: 1500, Wins: 10, Draws: 10}, RegularK},
		{Player{Rating: 2000, Losses: 20}, MasterK},
	}

	for _, test := range tests {
		if got := test.player.K(); got != test.want {
			t.Errorf("%+v: K = %v, want %v", test.player, got, test.want)
		}
	}
}

func TestUpdate(t *testing.T) {
	table := New()

	da, db := table.Update("alpha", "beta", Win)
	if da != 20 || db != -20 {
		t.Fatalf("changes = %d %d, want 20 -20", da, db)
	}

	alpha, beta := table.Player("alpha"), table.Player("beta")
	if alpha.Rating != 1520 || beta.Rating != 1480 {
		t.Fatalf("ratings = %d %d", alpha.Rating, beta.Rating)
	}

	if alpha.Wins != 1 || beta.Losses != 1 {
		t.Fatalf("records = %+v %+v", alpha, beta)
	}

	// the favourite gains less than it stands to lose
	da, db = table.Update("alpha", "beta", Draw)
	if da >= 0 || db <= 0 || alpha.Draws != 1 || beta.Draws != 1 {
		t.Fatalf("draw changes = %d %d", da, db)
	}
}

func TestLeaderboard(t *testing.T) {
	table := New()
	table.Update("engine10", "engine2", Draw)
	table.Update("winner", "loser", Win)

	standings := table.Leaderboard()

	want := []string{"winner", "engine2", "engine10", "loser"}
	if len(standings) != len(want) {
		t.Fatalf("%d standings, want %d", len(standings), len(want))
	}

	for i, name := range want {
		if standings[i].Name != name || standings[i].Rank != i+1 {
			t.Errorf("standing %d = %s (rank %d), want %s", i, standings[i].Name, standings[i].Rank, name)
		}
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ranking.yaml")

	empty, err := Load(path)
	if err != nil || len(empty.Players) != 0 {
		t.Fatalf("Load of a missing file = %v, %v", empty, err)
	}

	table := New()
	table.Update("minimax/hard", "mcts/easy", Win)

	if err := table.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	for name, player := range table.Players {
		got, found := loaded.Players[name]
		if !found {
			t.Fatalf("%s missing from the loaded table", name)
		}

		if got.Name != name || got.Rating != player.Rating || got.Games() != player.Games() {
			t.Errorf("loaded %+v, want %+v", got, player)
		}
	}
}
