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

// Package game keeps the state of a game being played and its records.
package game

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"laptudirm.com/x/gomoku/pkg/analyzer"
	"laptudirm.com/x/gomoku/pkg/board"
	"laptudirm.com/x/gomoku/pkg/eval"
	"laptudirm.com/x/gomoku/pkg/rules"
	"laptudirm.com/x/gomoku/pkg/search"
	"laptudirm.com/x/gomoku/pkg/strategy"
)

var (
	ErrNotActive = errors.New("game: game is not active")
	ErrNoMoves   = errors.New("game: no move to undo")
)

// Mode is the kind of players of a game.
type Mode string

const (
	HumanVsAI Mode = "human-vs-ai"
	AIVsAI    Mode = "ai-vs-ai"
	SelfPlay  Mode = "self-play"
)

// Status is the state of a game after a move.
type Status int

const (
	Ongoing Status = iota
	Ended
)

func (status Status) String() string {
	if status == Ended {
		return "ended"
	}

	return "ongoing"
}

// Entry is a move in the history of a session, graded when it was played.
type Entry struct {
	Move board.Move `yaml:"move"`
	AI   bool       `yaml:"ai,omitempty"`
	Time time.Time  `yaml:"time"`

	Score   float64      `yaml:"score"`
	Quality float64      `yaml:"quality"`
	Pattern eval.Pattern `yaml:"pattern"`
}

// Session is a game in progress. It is safe for concurrent use.
type Session struct {
	mu sync.Mutex

	id      string
	mode    Mode
	started time.Time

	analyzer *analyzer.Analyzer

	b       *board.Board
	history []Entry

	active bool
	result rules.GameEndResult
}

// NewSession starts a game on an empty board of the given size.
func NewSession(mode Mode, size int, a *analyzer.Analyzer) *Session {
	return &Session{
		id:       uuid.NewString(),
		mode:     mode,
		started:  time.Now(),
		analyzer: a,
		b:        board.New(size),
		active:   true,
	}
}

func (session *Session) ID() string {
	return session.id
}

// Board returns a copy of the current board.
func (session *Session) Board() *board.Board {
	session.mu.Lock()
	defer session.mu.Unlock()
	return session.b.Clone()
}

// ToMove returns the color whose turn it is.
func (session *Session) ToMove() board.Color {
	session.mu.Lock()
	defer session.mu.Unlock()
	return rules.Turn(session.b)
}

func (session *Session) Active() bool {
	session.mu.Lock()
	defer session.mu.Unlock()
	return session.active
}

// Result returns the result of the game and whether it has ended.
func (session *Session) Result() (rules.GameEndResult, bool) {
	session.mu.Lock()
	defer session.mu.Unlock()
	return session.result, session.result.IsEnd
}

// History returns a copy of the moves played so far.
func (session *Session) History() []Entry {
	session.mu.Lock()
	defer session.mu.Unlock()

	history := make([]Entry, len(session.history))
	copy(history, session.history)
	return history
}

// PlacePiece plays the side to move at (x, y).
func (session *Session) PlacePiece(x, y int) (Status, error) {
	return session.place(x, y, false)
}

func (session *Session) place(x, y int, ai bool) (Status, error) {
	session.mu.Lock()
	defer session.mu.Unlock()

	if !session.active {
		return Ended, ErrNotActive
	}

	color := rules.Turn(session.b)
	if err := rules.ValidateMove(session.b, x, y, color); err != nil {
		logrus.Debugf("game %s: rejected move: %v", session.id, err)
		return Ongoing, err
	}

	p := board.Point{X: x, Y: y}
	quality, err := session.analyzer.MoveQuality(session.b, p, color)
	if err != nil {
		return Ongoing, err
	}

	result, err := rules.PlacePiece(session.b, x, y, color)
	if err != nil {
		return Ongoing, err
	}

	session.history = append(session.history, Entry{
		Move: board.Move{Point: p, Color: color},
		AI:   ai,
		Time: time.Now(),

		Score:   quality.Score,
		Quality: quality.Quality,
		Pattern: quality.Pattern,
	})

	logrus.WithFields(logrus.Fields{
		"game":    session.id,
		"move":    p,
		"color":   color,
		"quality": quality.Quality,
	}).Debug("game: move played")

	if result.IsEnd {
		session.active = false
		session.result = result
		return Ended, nil
	}

	return Ongoing, nil
}

// AIMove lets s choose and play the move of the side to move. The search
// runs without holding the session lock.
func (session *Session) AIMove(ctx context.Context, s strategy.Strategy, listener search.Listener) (board.Point, Status, error) {
	if !session.Active() {
		return board.NoPoint, Ended, ErrNotActive
	}

	p, err := s.Move(ctx, session.Board(), listener)
	if err != nil {
		return board.NoPoint, Ongoing, fmt.Errorf("ai move: %s: %w", s.Name(), err)
	}

	status, err := session.place(p.X, p.Y, true)
	return p, status, err
}

// Undo takes back the last move and reopens the game if it had ended.
func (session *Session) Undo() (board.Move, error) {
	session.mu.Lock()
	defer session.mu.Unlock()

	if len(session.history) == 0 {
		return board.Move{}, ErrNoMoves
	}

	return session.undo(), nil
}

// UndoHuman takes back the moves played since the last human move, that
// move included, and returns them latest first. Engine moves before it are
// kept, so a game the engine opened is never emptied.
func (session *Session) UndoHuman() ([]board.Move, error) {
	session.mu.Lock()
	defer session.mu.Unlock()

	last := -1
	for i := len(session.history) - 1; i >= 0; i-- {
		if !session.history[i].AI {
			last = i
			break
		}
	}

	if last < 0 {
		return nil, ErrNoMoves
	}

	var undone []board.Move
	for len(session.history) > last {
		undone = append(undone, session.undo())
	}

	return undone, nil
}

// undo pops the last entry of a non-empty history. It expects mu held.
func (session *Session) undo() board.Move {
	last := session.history[len(session.history)-1]
	session.history = session.history[:len(session.history)-1]
	session.b.Set(last.Move.X, last.Move.Y, board.Empty)

	session.active = true
	session.result = rules.Ongoing

	return last.Move
}

// Record returns the record of the game so far.
func (session *Session) Record(black, white string) Record {
	session.mu.Lock()
	defer session.mu.Unlock()

	record := Record{
		ID:      session.id,
		Mode:    session.mode,
		Size:    session.b.Size(),
		Black:   black,
		White:   white,
		Started: session.started,
		Winner:  session.result.Winner,
		Ended:   session.result.IsEnd,
		WinLine: session.result.WinLine,
	}

	for _, entry := range session.history {
		record.Moves = append(record.Moves, entry.Move)
	}

	return record
}
