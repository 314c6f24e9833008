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

package stats

import (
	"math"
	"testing"
)

func TestStoppingBounds(t *testing.T) {
	lower, upper := StoppingBounds(0.05, 0.05)

	want := math.Log(0.05 / 0.95)
	if math.Abs(lower-want) > 1e-12 || math.Abs(upper+want) > 1e-12 {
		t.Fatalf("StoppingBounds = %v %v, want ±%v", lower, upper, -want)
	}
}

func TestElo(t *testing.T) {
	if elo, margin := (Score{}).Elo(); elo != 0 || margin <= 0 {
		t.Errorf("empty score: elo %v ± %v", elo, margin)
	}

	even, _ := Score{Wins: 30, Losses: 30, Draws: 40}.Elo()
	if math.Abs(even) > 1e-9 {
		t.Errorf("even score: elo %v, want 0", even)
	}

	lower, elo, upper := Score{Wins: 60, Draws: 20, Losses: 20}.Interval()
	if !(lower < elo && elo < upper) || elo <= 0 {
		t.Errorf("winning score: %v < %v < %v", lower, elo, upper)
	}

	lower, mid, upper := Penta{DrawLoss: 5, DrawDraw: 20, WinDraw: 15, WinWin: 10}.Interval()
	if !(lower < mid && mid < upper) || mid <= 0 {
		t.Errorf("winning pairs: %v < %v < %v", lower, mid, upper)
	}

	if loss, _ := (Score{Wins: 20, Losses: 60, Draws: 20}).Elo(); math.Abs(loss+elo) > 1e-9 {
		t.Errorf("mirrored score: elo %v, want %v", loss, -elo)
	}
}

func TestSPRT(t *testing.T) {
	tests := []struct {
		score Score
		sign  float64
	}{
		{Score{Wins: 100, Draws: 50, Losses: 20}, +1},
		{Score{Wins: 50, Draws: 50, Losses: 50}, -1},
		{Score{Wins: 20, Draws: 50, Losses: 100}, -1},
	}

	for _, test := range tests {
		if llr := test.score.LLR(0, 10); llr*test.sign <= 0 {
			t.Errorf("%+v: LLR = %v", test.score, llr)
		}
	}
}

func TestLLRValues(t *testing.T) {
	if llr := (Score{Wins: 100, Draws: 50, Losses: 20}).LLR(0, 10); math.Abs(llr-3.123515722026636) > 1e-9 {
		t.Errorf("trinomial LLR = %v, want 3.1235", llr)
	}

	penta := Penta{LossLoss: 5, DrawLoss: 10, DrawDraw: 40, WinDraw: 30, WinWin: 20}
	if llr := penta.LLR(0, 5); math.Abs(llr-0.7899456809490292) > 1e-9 {
		t.Errorf("pentanomial LLR = %v, want 0.7899", llr)
	}
}

func TestPenta(t *testing.T) {
	tests := []struct {
		penta Penta
		sign  float64
	}{
		{Penta{LossLoss: 5, DrawLoss: 10, DrawDraw: 40, WinDraw: 30, WinWin: 20}, +1},
		{Penta{LossLoss: 20, DrawLoss: 30, DrawDraw: 40, WinDraw: 10, WinWin: 5}, -1},
		{Penta{LossLoss: 10, DrawLoss: 20, DrawDraw: 40, WinDraw: 20, WinWin: 10}, -1},
	}

	for _, test := range tests {
		if llr := test.penta.LLR(0, 5); llr*test.sign <= 0 {
			t.Errorf("%s: LLR = %v", test.penta, llr)
		}

		if elo, _ := test.penta.Elo(); elo*test.sign < -1e-9 {
			t.Errorf("%s: elo = %v", test.penta, elo)
		}
	}

	penta := Penta{LossLoss: 1, DrawLoss: 2, DrawDraw: 3, WinDraw: 4, WinWin: 5}
	if penta.Pairs() != 15 || penta.String() != "[1, 2, 3, 4, 5]" {
		t.Errorf("penta = %s with %d pairs", penta, penta.Pairs())
	}
}
