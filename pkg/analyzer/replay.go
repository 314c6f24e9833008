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

package analyzer

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"laptudirm.com/x/gomoku/pkg/board"
	"laptudirm.com/x/gomoku/pkg/rules"
)

var ErrNoHistory = errors.New("analyzer: empty move history")

// Quality thresholds of a replay. A move below BadQuality whose gap to the
// best move is over BadGap is a key moment of the game.
const (
	GoodQuality = 85
	PoorQuality = 60

	BadQuality = 50
	BadGap     = 30
)

// MoveReport is the grade of one move of a replayed game.
type MoveReport struct {
	Index   int         `yaml:"index"` // 1-based
	Color   board.Color `yaml:"color"`
	Quality Quality     `yaml:"quality"`

	// Threats of each side on the board the move was played on.
	BlackThreats int `yaml:"black-threats"`
	WhiteThreats int `yaml:"white-threats"`
}

// MomentKind is the reason a move is a key moment.
type MomentKind string

const (
	BlackThreats MomentKind = "black-threats" // black made new threats
	WhiteThreats MomentKind = "white-threats" // white made new threats
	BadMove      MomentKind = "bad-move"
)

// KeyMoment marks a move which changed the course of the game.
type KeyMoment struct {
	Index int        `yaml:"index"`
	Kind  MomentKind `yaml:"kind"`

	// Threats is the new threat count of the side that made them. Better is
	// the best move in place of a bad one.
	Threats int          `yaml:"threats,omitempty"`
	Better  *board.Point `yaml:"better,omitempty"`
}

// Suggestion proposes a better move for a poorly graded one.
type Suggestion struct {
	Index   int         `yaml:"index"`
	Played  board.Point `yaml:"played"`
	Better  board.Point `yaml:"better"`
	Quality float64     `yaml:"quality"`
}

// ReplayReport is the review of a whole game.
type ReplayReport struct {
	ID    string       `yaml:"id"`
	Moves []MoveReport `yaml:"moves"`

	AverageQuality float64 `yaml:"average-quality"`
	GoodRate       float64 `yaml:"good-rate"` // percentage of good moves

	// Indices of the best and the worst graded moves.
	Best  int `yaml:"best"`
	Worst int `yaml:"worst"`

	// Patterns counts the patterns made by the moves.
	Patterns map[string]int `yaml:"patterns"`

	LowQualityCount int          `yaml:"low-quality-count"`
	Suggestions     []Suggestion `yaml:"suggestions,omitempty"`
	KeyMoments      []KeyMoment  `yaml:"key-moments,omitempty"`
}

// Replay plays history out on an empty board of the given size and grades
// every move. The moves must be legal and in order.
func (analyzer *Analyzer) Replay(size int, history []board.Move) (ReplayReport, error) {
	if len(history) == 0 {
		return ReplayReport{}, ErrNoHistory
	}

	report := ReplayReport{
		ID:       uuid.NewString(),
		Patterns: make(map[string]int),
	}

	b := board.New(size)

	total, good := 0.0, 0
	for i, move := range history {
		if err := rules.ValidateMove(b, move.X, move.Y, move.Color); err != nil {
			return ReplayReport{}, fmt.Errorf("replay: move %d: %w", i+1, err)
		}

		quality, err := analyzer.MoveQuality(b, move.Point, move.Color)
		if err != nil {
			return ReplayReport{}, fmt.Errorf("replay: move %d: %w", i+1, err)
		}

		index := i + 1
		report.Moves = append(report.Moves, MoveReport{
			Index:   index,
			Color:   move.Color,
			Quality: quality,

			BlackThreats: len(analyzer.Threats(b, board.Black)),
			WhiteThreats: len(analyzer.Threats(b, board.White)),
		})

		total += quality.Quality
		if quality.Quality >= GoodQuality {
			good++
		}

		report.Patterns[quality.Pattern.String()]++

		if quality.Quality < PoorQuality {
			report.LowQualityCount++
			report.Suggestions = append(report.Suggestions, Suggestion{
				Index:   index,
				Played:  move.Point,
				Better:  quality.Best,
				Quality: quality.Quality,
			})
		}

		if best := report.Moves[max(report.Best-1, 0)].Quality.Quality; report.Best == 0 || quality.Quality > best {
			report.Best = index
		}
		if worst := report.Moves[max(report.Worst-1, 0)].Quality.Quality; report.Worst == 0 || quality.Quality < worst {
			report.Worst = index
		}

		b.Set(move.X, move.Y, move.Color)
		if rules.WinAt(b, move.Point) && i != len(history)-1 {
			return ReplayReport{}, fmt.Errorf("replay: move %d: game already won", index)
		}
	}

	report.AverageQuality = total / float64(len(history))
	report.GoodRate = float64(good) / float64(len(history)) * 100
	report.KeyMoments = keyMoments(report.Moves)

	return report, nil
}

// keyMoments finds the moves before which a side gained threats, and the
// bad moves. Only one side's gain is reported per move, black's first.
func keyMoments(moves []MoveReport) []KeyMoment {
	var moments []KeyMoment
	for i, move := range moves {
		if i > 0 {
			prev := moves[i-1]
			switch {
			case move.BlackThreats > prev.BlackThreats:
				moments = append(moments, KeyMoment{Index: move.Index, Kind: BlackThreats, Threats: move.BlackThreats})
			case move.WhiteThreats > prev.WhiteThreats:
				moments = append(moments, KeyMoment{Index: move.Index, Kind: WhiteThreats, Threats: move.WhiteThreats})
			}
		}

		if move.Quality.Quality < BadQuality && move.Quality.Gap > BadGap {
			better := move.Quality.Best
			moments = append(moments, KeyMoment{Index: move.Index, Kind: BadMove, Better: &better})
		}
	}

	return moments
}
