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

// Package ranking keeps Elo ratings of players across games.
package ranking

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"laptudirm.com/x/gomoku/internal/util"
)

const (
	BaseRating = 1500

	// K-factors of new, regular and master players.
	NewK     = 40
	RegularK = 32
	MasterK  = 24

	NewGames     = 20   // games after which a player is no longer new
	MasterRating = 2000 // rating from which a player is a master
)

// Outcome is the score of a player in a single game.
type Outcome float64

const (
	Loss Outcome = 0
	Draw Outcome = 0.5
	Win  Outcome = 1
)

// Player is the rating record of a single player.
type Player struct {
	Name   string `yaml:"-"`
	Rating int    `yaml:"rating"`

	Wins   int `yaml:"wins"`
	Losses int `yaml:"losses"`
	Draws  int `yaml:"draws"`

	Updated time.Time `yaml:"updated"`
}

func (player *Player) Games() int {
	return player.Wins + player.Losses + player.Draws
}

// WinRate returns the percentage of games won by the player.
func (player *Player) WinRate() float64 {
	if player.Games() == 0 {
		return 0
	}

	return float64(player.Wins) / float64(player.Games()) * 100
}

// K returns the K-factor of the player.
func (player *Player) K() float64 {
	switch {
	case player.Games() < NewGames:
		return NewK
	case player.Rating >= MasterRating:
		return MasterK
	default:
		return RegularK
	}
}

func (player *Player) record(outcome Outcome) {
	switch outcome {
	case Win:
		player.Wins++
	case Loss:
		player.Losses++
	default:
		player.Draws++
	}

	player.Updated = time.Now()
}

// Expected returns the expected score of a player rated ra against one
// rated rb.
func Expected(ra, rb int) float64 {
	return 1 / (1 + math.Pow(10, float64(rb-ra)/400))
}

// Table is a set of players keyed by name.
type Table struct {
	Players map[string]*Player `yaml:"players"`
}

func New() *Table {
	return &Table{Players: make(map[string]*Player)}
}

// Player returns the named player, adding them at the base rating if they
// are not in the table yet.
func (table *Table) Player(name string) *Player {
	if table.Players == nil {
		table.Players = make(map[string]*Player)
	}

	player, found := table.Players[name]
	if !found {
		player = &Player{Name: name, Rating: BaseRating}
		table.Players[name] = player
	}

	return player
}

// Update rates a game between a and b, where outcome is the score of a.
// It returns the rating changes of both players.
func (table *Table) Update(a, b string, outcome Outcome) (int, int) {
	pa, pb := table.Player(a), table.Player(b)

	// both changes come from the pre-game ratings and game counts
	ka, kb := pa.K(), pb.K()
	ea := Expected(pa.Rating, pb.Rating)

	da := int(math.Round(ka * (float64(outcome) - ea)))
	db := int(math.Round(kb * ((1 - float64(outcome)) - (1 - ea))))

	pa.Rating += da
	pb.Rating += db

	pa.record(outcome)
	pb.record(Win - outcome)

	logrus.WithFields(logrus.Fields{
		a: pa.Rating,
		b: pb.Rating,
	}).Debugf("ranking: rated %s vs %s", a, b)

	return da, db
}

// Standing is a row of the leaderboard.
type Standing struct {
	Rank int
	*Player
}

// Leaderboard returns the players sorted by rating, highest first. Players
// with the same rating are ordered naturally by name.
func (table *Table) Leaderboard() []Standing {
	standings := make([]Standing, 0, len(table.Players))
	for _, player := range table.Players {
		standings = append(standings, Standing{Player: player})
	}

	sort.Slice(standings, func(i, j int) bool {
		a, b := standings[i], standings[j]
		if a.Rating != b.Rating {
			return a.Rating > b.Rating
		}

		return util.NaturalLess(a.Name, b.Name)
	})

	for i := range standings {
		standings[i].Rank = i + 1
	}

	return standings
}

// Load reads a table from path. A missing file is an empty table.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return New(), nil
	}

	if err != nil {
		return nil, fmt.Errorf("load ranking: %w", err)
	}

	table := New()
	if err := yaml.Unmarshal(data, table); err != nil {
		return nil, fmt.Errorf("load ranking: %w", err)
	}

	// the file is keyed by name
	for name, player := range table.Players {
		player.Name = name
	}

	return table, nil
}

func (table *Table) Save(path string) error {
	data, err := yaml.Marshal(table)
	if err != nil {
		return fmt.Errorf("save ranking: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("save ranking: %w", err)
	}

	return nil
}
