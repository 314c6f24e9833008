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

package game

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"laptudirm.com/x/gomoku/pkg/analyzer"
	"laptudirm.com/x/gomoku/pkg/board"
	"laptudirm.com/x/gomoku/pkg/core"
	"laptudirm.com/x/gomoku/pkg/eval"
	"laptudirm.com/x/gomoku/pkg/rules"
	"laptudirm.com/x/gomoku/pkg/strategy"
)

func newSession(t *testing.T, mode Mode, size int) *Session {
	t.Helper()

	ev, err := eval.NewEvaluator(size, eval.DefaultWeights)
	if err != nil {
		t.Fatalf("NewEvaluator: %v", err)
	}

	return NewSession(mode, size, analyzer.New(core.NewAccelerated(ev)))
}

// playWin plays black to a horizontal five on row 7, with white answering
// on row 8.
func playWin(t *testing.T, session *Session) {
	t.Helper()

	for y := 0; y < 5; y++ {
		status, err := session.PlacePiece(7, y)
		if err != nil {
			t.Fatalf("black %d: %v", y, err)
		}

		if y == 4 {
			if status != Ended {
				t.Fatalf("five did not end the game")
			}
			return
		}

		if status != Ongoing {
			t.Fatalf("black %d: status %s", y, status)
		}

		if _, err := session.PlacePiece(8, y); err != nil {
			t.Fatalf("white %d: %v", y, err)
		}
	}
}

func TestSessionPlay(t *testing.T) {
	session := newSession(t, HumanVsAI, board.DefaultSize)

	if session.ToMove() != board.Black {
		t.Fatalf("first move by %s", session.ToMove())
	}

	playWin(t, session)

	result, ended := session.Result()
	if !ended || result.Winner != board.Black || len(result.WinLine) != rules.WinLength {
		t.Fatalf("Result = %+v, %v", result, ended)
	}

	if _, err := session.PlacePiece(0, 0); !errors.Is(err, ErrNotActive) {
		t.Fatalf("move after the end: %v, want ErrNotActive", err)
	}

	history := session.History()
	if len(history) != 9 {
		t.Fatalf("history has %d moves, want 9", len(history))
	}

	first := history[0]
	if first.Move.Color != board.Black || first.Move.Point != (board.Point{X: 7, Y: 0}) || first.AI {
		t.Errorf("first entry = %+v", first)
	}
	if history[8].Pattern != eval.Five {
		t.Errorf("winning move pattern = %s, want %s", history[8].Pattern, eval.Five)
	}
}

func TestSessionRejectsMoves(t *testing.T) {
	session := newSession(t, HumanVsAI, board.DefaultSize)

	if _, err := session.PlacePiece(7, 7); err != nil {
		t.Fatalf("PlacePiece: %v", err)
	}

	if _, err := session.PlacePiece(7, 7); !errors.Is(err, rules.ErrOccupied) {
		t.Errorf("occupied: %v", err)
	}

	if _, err := session.PlacePiece(-1, 7); !errors.Is(err, rules.ErrOutOfBounds) {
		t.Errorf("out of bounds: %v", err)
	}

	if len(session.History()) != 1 {
		t.Errorf("rejected moves were recorded")
	}
}

func TestSessionUndo(t *testing.T) {
	session := newSession(t, HumanVsAI, board.DefaultSize)

	if _, err := session.Undo(); !errors.Is(err, ErrNoMoves) {
		t.Fatalf("Undo on a new game: %v", err)
	}

	playWin(t, session)

	move, err := session.Undo()
	if err != nil {
		t.Fatalf("Undo: %v", err)
	}

	if move.Point != (board.Point{X: 7, Y: 4}) || move.Color != board.Black {
		t.Fatalf("Undo = %v", move)
	}

	if !session.Active() || session.ToMove() != board.Black {
		t.Fatalf("game not reopened by Undo")
	}

	if _, ended := session.Result(); ended {
		t.Fatalf("result kept after Undo")
	}

	if session.Board().At(7, 4) != board.Empty {
		t.Fatalf("stone left on the board")
	}
}

func TestSessionUndoHuman(t *testing.T) {
	session := newSession(t, HumanVsAI, board.DefaultSize)

	// the engine opens as black
	for _, m := range []struct {
		x, y int
		ai   bool
	}{{7, 7, true}, {6, 6, false}, {8, 8, true}} {
		if _, err := session.place(m.x, m.y, m.ai); err != nil {
			t.Fatalf("place %d,%d: %v", m.x, m.y, err)
		}
	}

	undone, err := session.UndoHuman()
	if err != nil {
		t.Fatalf("UndoHuman: %v", err)
	}

	want := []board.Move{
		{Point: board.Point{X: 8, Y: 8}, Color: board.Black},
		{Point: board.Point{X: 6, Y: 6}, Color: board.White},
	}
	if !reflect.DeepEqual(undone, want) {
		t.Fatalf("UndoHuman = %v, want %v", undone, want)
	}

	if history := session.History(); len(history) != 1 || !history[0].AI {
		t.Fatalf("history after UndoHuman = %+v", history)
	}
	if b := session.Board(); b.At(7, 7) != board.Black || b.At(6, 6) != board.Empty || b.At(8, 8) != board.Empty {
		t.Fatalf("board after UndoHuman\n%s", b)
	}
	if session.ToMove() != board.White {
		t.Fatalf("ToMove = %s, want white", session.ToMove())
	}

	if _, err := session.UndoHuman(); !errors.Is(err, ErrNoMoves) {
		t.Fatalf("UndoHuman with only engine moves: %v", err)
	}
	if len(session.History()) != 1 {
		t.Fatalf("engine opening was taken back")
	}

	// a human move with no reply yet is taken back alone
	if _, err := session.PlacePiece(6, 6); err != nil {
		t.Fatalf("PlacePiece: %v", err)
	}
	undone, err = session.UndoHuman()
	if err != nil || len(undone) != 1 || undone[0].Point != (board.Point{X: 6, Y: 6}) {
		t.Fatalf("UndoHuman = %v, %v", undone, err)
	}
}

func TestSessionAIMove(t *testing.T) {
	session := newSession(t, AIVsAI, 9)

	s, err := strategy.New(strategy.Options{Kind: strategy.Minimax, Size: 9, Depth: 1})
	if err != nil {
		t.Fatalf("strategy.New: %v", err)
	}

	for i := 0; i < 4; i++ {
		before := session.Board()

		p, status, err := session.AIMove(context.Background(), s, nil)
		if err != nil {
			t.Fatalf("AIMove: %v", err)
		}

		if status != Ongoing || before.At(p.X, p.Y) != board.Empty {
			t.Fatalf("AIMove = %v, %s", p, status)
		}
	}

	for _, entry := range session.History() {
		if !entry.AI {
			t.Fatalf("AI move not marked: %+v", entry)
		}
	}
}

func TestRecordSaveLoad(t *testing.T) {
	session := newSession(t, SelfPlay, board.DefaultSize)
	playWin(t, session)

	record := session.Record("minimax/easy", "mcts/easy")
	if record.ID != session.ID() || len(record.Moves) != 9 || !record.Ended || record.Winner != board.Black {
		t.Fatalf("Record = %+v", record)
	}

	path, err := record.Save(t.TempDir())
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := LoadRecord(path)
	if err != nil {
		t.Fatalf("LoadRecord: %v", err)
	}

	if !loaded.Started.Equal(record.Started) {
		t.Errorf("started = %v, want %v", loaded.Started, record.Started)
	}

	loaded.Started = record.Started
	if !reflect.DeepEqual(loaded, record) {
		t.Fatalf("LoadRecord = %+v, want %+v", loaded, record)
	}
}
