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

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"laptudirm.com/x/gomoku/pkg/board"
	"laptudirm.com/x/gomoku/pkg/rules"
	"laptudirm.com/x/gomoku/pkg/strategy"
)

func startPlayer(t *testing.T, name string, size int) *Player {
	t.Helper()

	player, err := StartPlayer(PlayerConfig{
		Name:     name,
		Strategy: strategy.Minimax,
		Depth:    1,
	}, size)
	if err != nil {
		t.Fatalf("StartPlayer: %v", err)
	}

	return player
}

func TestRunFullGame(t *testing.T) {
	const size = 9

	config := Config{
		Game:    "gomoku",
		Size:    size,
		Players: [2]*Player{startPlayer(t, "one", size), startPlayer(t, "two", size)},
	}

	result, reason, moves := Run(context.Background(), &config)
	if len(moves) == 0 {
		t.Fatalf("no moves played: %s %s", result, reason)
	}

	b := board.New(size)
	for i, move := range moves {
		if _, err := rules.PlacePiece(b, move.X, move.Y, move.Color); err != nil {
			t.Fatalf("move %d %s: %v", i+1, move, err)
		}
	}

	last := moves[len(moves)-1]
	switch result {
	case Win, Loss:
		if !rules.WinAt(b, last.Point) || reason != "five in a row" {
			t.Fatalf("%s by %q without a five", result, reason)
		}

		// the first player has black on an empty opening
		if (result == Win) != (last.Color == board.Black) {
			t.Fatalf("result %s but %s made the five", result, last.Color)
		}

	case Draw:
		if !b.Full() {
			t.Fatalf("draw by %q on a board with space", reason)
		}
	}
}

func TestRunFromOpening(t *testing.T) {
	var opening []board.Point
	for y := 0; y < 4; y++ {
		opening = append(opening, board.Point{X: 7, Y: y}, board.Point{X: 8, Y: y})
	}

	config := Config{
		Game:    "gomoku",
		Size:    board.DefaultSize,
		Opening: opening,
		Players: [2]*Player{
			startPlayer(t, "one", board.DefaultSize),
			startPlayer(t, "two", board.DefaultSize),
		},
	}

	result, reason, moves := Run(context.Background(), &config)
	if result != Win || len(moves) != 1 {
		t.Fatalf("Run = %s %q %v", result, reason, moves)
	}

	want := board.Move{Point: board.Point{X: 7, Y: 4}, Color: board.Black}
	if moves[0] != want {
		t.Fatalf("winning move = %s, want %s", moves[0], want)
	}
}

func TestRunInvalidOpening(t *testing.T) {
	config := Config{
		Size:    board.DefaultSize,
		Opening: []board.Point{{X: 7, Y: 7}, {X: 7, Y: 7}},
		Players: [2]*Player{
			startPlayer(t, "one", board.DefaultSize),
			startPlayer(t, "two", board.DefaultSize),
		},
	}

	result, _, moves := Run(context.Background(), &config)
	if result != Draw || moves != nil {
		t.Fatalf("Run on an illegal opening = %s %v", result, moves)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	config := Config{
		Size: board.DefaultSize,
		Players: [2]*Player{
			startPlayer(t, "one", board.DefaultSize),
			startPlayer(t, "two", board.DefaultSize),
		},
	}

	if result, reason, moves := Run(ctx, &config); result != Draw || reason != "aborted" || len(moves) != 0 {
		t.Fatalf("Run = %s %q %v", result, reason, moves)
	}
}

func TestPairResult(t *testing.T) {
	tests := []struct {
		a, b Result
		want PairResult
	}{
		{Win, Win, WinWin},
		{Win, Draw, WinDraw},
		{Win, Loss, DrawDraw},
		{Draw, Draw, DrawDraw},
		{Loss, Draw, DrawLoss},
		{Loss, Loss, LossLoss},
	}

	for _, test := range tests {
		if got := GetPairResult(test.a, test.b); got != test.want {
			t.Errorf("GetPairResult(%s, %s) = %d, want %d", test.a, test.b, got, test.want)
		}
	}
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		str  string
		want TimeControl
		err  bool
	}{
		{"", TimeControl{}, false},
		{"10+0.1", TimeControl{MovesToGo: -1, Base: 10 * time.Second, Inc: 100 * time.Millisecond}, false},
		{"40/60+0", TimeControl{MovesToGo: 40, Base: time.Minute}, false},
		{"10", TimeControl{}, true},
		{"x/10+0", TimeControl{}, true},
		{"0+1", TimeControl{}, true},
	}

	for _, test := range tests {
		got, err := ParseTime(test.str)
		if (err != nil) != test.err {
			t.Errorf("ParseTime(%q): err = %v", test.str, err)
			continue
		}

		if got != test.want {
			t.Errorf("ParseTime(%q) = %+v, want %+v", test.str, got, test.want)
		}
	}
}

func TestTimeControlSpend(t *testing.T) {
	tc := TimeControl{MovesToGo: -1, Base: time.Second, Inc: 100 * time.Millisecond}

	if got := tc.Allot(); got != time.Second/DefaultMovesToGo+100*time.Millisecond {
		t.Errorf("Allot = %s", got)
	}

	if !tc.Spend(500*time.Millisecond) || tc.Base != 600*time.Millisecond {
		t.Fatalf("after spending 500ms: %+v", tc)
	}

	if tc.Spend(time.Second) {
		t.Fatalf("overspent clock not flagged")
	}
}

func TestOpeningBook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.txt")
	data := "# openings\n7,7 7,8\n\n7,7 8,8 6,6\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	book, err := NewBook(OpeningConfig{File: path})
	if err != nil {
		t.Fatalf("NewBook: %v", err)
	}

	if book.Len() != 2 || len(book.Current()) != 2 {
		t.Fatalf("book has %d openings, first %v", book.Len(), book.Current())
	}

	book.Next()
	if got := FormatOpening(book.Current()); got != "7,7 8,8 6,6" {
		t.Fatalf("second opening = %s", got)
	}

	if wrapped := book.Wrap(); wrapped.Start != 1 || wrapped.File != path {
		t.Fatalf("Wrap = %+v", wrapped)
	}

	book.Next()
	if len(book.Current()) != 2 {
		t.Fatalf("book did not wrap around")
	}

	if _, err := NewBook(OpeningConfig{File: filepath.Join(t.TempDir(), "missing")}); err == nil {
		t.Fatalf("missing book accepted")
	}

	empty, err := NewBook(OpeningConfig{})
	if err != nil || empty.Len() != 1 || len(empty.Current()) != 0 {
		t.Fatalf("book without a file = %v, %v", empty, err)
	}
}
