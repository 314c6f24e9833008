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
	"math"
	"testing"

	"laptudirm.com/x/gomoku/pkg/board"
	"laptudirm.com/x/gomoku/pkg/core"
	"laptudirm.com/x/gomoku/pkg/eval"
	"laptudirm.com/x/gomoku/pkg/rules"
)

func newAnalyzer(t *testing.T) *Analyzer {
	t.Helper()

	ev, err := eval.NewEvaluator(board.DefaultSize, eval.DefaultWeights)
	if err != nil {
		t.Fatalf("NewEvaluator: %v", err)
	}

	return New(core.NewAccelerated(ev))
}

func TestMoveQualityOnEmptyBoard(t *testing.T) {
	analyzer := newAnalyzer(t)
	b := board.New(board.DefaultSize)

	center, err := analyzer.MoveQuality(b, board.Point{X: 7, Y: 7}, board.Black)
	if err != nil {
		t.Fatalf("MoveQuality: %v", err)
	}

	if center.Best != (board.Point{X: 7, Y: 7}) || center.Quality != 100 || center.Pattern != eval.One {
		t.Errorf("center = %+v", center)
	}

	corner, err := analyzer.MoveQuality(b, board.Point{X: 0, Y: 0}, board.Black)
	if err != nil {
		t.Fatalf("MoveQuality: %v", err)
	}

	want := 10.3 / 11.2 * 100
	if math.Abs(corner.Quality-want) > 1e-9 || corner.PositionWeight != 0.3 {
		t.Errorf("corner = %+v, want quality %v", corner, want)
	}
}

func TestMoveQualityErrors(t *testing.T) {
	analyzer := newAnalyzer(t)
	b := board.New(board.DefaultSize)
	b.Set(7, 7, board.Black)

	if _, err := analyzer.MoveQuality(b, board.Point{X: 7, Y: 7}, board.White); !errors.Is(err, rules.ErrOccupied) {
		t.Errorf("occupied: %v", err)
	}

	if _, err := analyzer.MoveQuality(b, board.Point{X: 15, Y: 0}, board.White); !errors.Is(err, rules.ErrOutOfBounds) {
		t.Errorf("out of bounds: %v", err)
	}
}

func TestSituation(t *testing.T) {
	analyzer := newAnalyzer(t)

	b := board.New(board.DefaultSize)
	for _, p := range []board.Point{{X: 0, Y: 0}, {X: 0, Y: 14}, {X: 14, Y: 0}} {
		b.Set(p.X, p.Y, board.Black)
	}
	for y := 3; y <= 5; y++ {
		b.Set(7, y, board.White)
	}

	report := analyzer.Situation(b, board.Black)

	if report.Verdict != Defend {
		t.Errorf("verdict = %s, want %s", report.Verdict, Defend)
	}

	if report.Own != 30 || report.Opponent != 3000 || report.Advantage != -2970 {
		t.Errorf("scores = %v %v %v", report.Own, report.Opponent, report.Advantage)
	}

	if len(report.OwnThreats) != 0 {
		t.Errorf("own threats = %v", report.OwnThreats)
	}

	high := map[board.Point]bool{}
	for _, threat := range report.Threats {
		if threat.Level == High {
			high[threat.Point] = true
		}
	}
	if !high[board.Point{X: 7, Y: 2}] || !high[board.Point{X: 7, Y: 6}] {
		t.Errorf("threats = %v, want high threats at 7,2 and 7,6", report.Threats)
	}

	if report := analyzer.Situation(b, board.White); report.Verdict != Attack {
		t.Errorf("white verdict = %s, want %s", report.Verdict, Attack)
	}

	if report := analyzer.Situation(board.New(board.DefaultSize), board.Black); report.Verdict != Balanced {
		t.Errorf("empty board verdict = %s, want %s", report.Verdict, Balanced)
	}
}

func TestReplay(t *testing.T) {
	analyzer := newAnalyzer(t)

	history := []board.Move{
		{Point: board.Point{X: 7, Y: 7}, Color: board.Black},
		{Point: board.Point{X: 7, Y: 8}, Color: board.White},
		{Point: board.Point{X: 0, Y: 0}, Color: board.Black},
		{Point: board.Point{X: 6, Y: 8}, Color: board.White},
	}

	report, err := analyzer.Replay(board.DefaultSize, history)
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}

	if report.ID == "" || len(report.Moves) != len(history) {
		t.Fatalf("report = %+v", report)
	}

	if report.Best != 1 || report.Worst != 3 {
		t.Errorf("best %d worst %d, want 1 and 3", report.Best, report.Worst)
	}

	if len(report.Suggestions) == 0 || report.Suggestions[0].Index != 3 {
		t.Fatalf("suggestions = %+v, want one for move 3", report.Suggestions)
	}

	count := 0
	for _, n := range report.Patterns {
		count += n
	}
	if count != len(history) {
		t.Errorf("patterns count %d moves, want %d", count, len(history))
	}
}

func TestReplayKeyMoments(t *testing.T) {
	analyzer := newAnalyzer(t)

	// black's second stone opens two threes, and white answers far away
	// instead of blocking either of them
	history := []board.Move{
		{Point: board.Point{X: 7, Y: 7}, Color: board.Black},
		{Point: board.Point{X: 0, Y: 0}, Color: board.White},
		{Point: board.Point{X: 7, Y: 8}, Color: board.Black},
		{Point: board.Point{X: 0, Y: 14}, Color: board.White},
	}

	report, err := analyzer.Replay(board.DefaultSize, history)
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}

	last := report.Moves[3]
	if last.BlackThreats != 2 || last.WhiteThreats != 0 {
		t.Fatalf("threats before move 4 = %d/%d, want 2/0", last.BlackThreats, last.WhiteThreats)
	}

	if q := last.Quality; q.Quality >= BadQuality || math.Abs(q.Gap-(100-q.Quality)) > 1e-9 {
		t.Fatalf("move 4 quality %v gap %v", q.Quality, q.Gap)
	}

	if len(report.KeyMoments) != 2 {
		t.Fatalf("key moments = %+v, want 2", report.KeyMoments)
	}

	threat, bad := report.KeyMoments[0], report.KeyMoments[1]
	if threat.Index != 4 || threat.Kind != BlackThreats || threat.Threats != 2 {
		t.Errorf("threat moment = %+v", threat)
	}
	if bad.Index != 4 || bad.Kind != BadMove || bad.Better == nil || *bad.Better != last.Quality.Best {
		t.Errorf("bad move moment = %+v", bad)
	}

	if report.LowQualityCount != 1 {
		t.Errorf("low quality count = %d, want 1", report.LowQualityCount)
	}
}

func TestReplayErrors(t *testing.T) {
	analyzer := newAnalyzer(t)

	if _, err := analyzer.Replay(board.DefaultSize, nil); !errors.Is(err, ErrNoHistory) {
		t.Errorf("empty history: %v", err)
	}

	_, err := analyzer.Replay(board.DefaultSize, []board.Move{
		{Point: board.Point{X: 7, Y: 7}, Color: board.Black},
		{Point: board.Point{X: 7, Y: 8}, Color: board.Black},
	})
	if !errors.Is(err, rules.ErrWrongTurn) {
		t.Errorf("out of turn history: %v", err)
	}
}
