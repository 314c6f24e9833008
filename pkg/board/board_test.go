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

package board

import (
	"errors"
	"testing"
)

func TestSetKeepsCountsAndHash(t *testing.T) {
	b := New(DefaultSize)
	if b.Hash() != 0 {
		t.Fatalf("empty board hash = %x, want 0", b.Hash())
	}

	b.Set(7, 7, Black)
	b.Set(7, 8, White)
	if b.Count(Black) != 1 || b.Count(White) != 1 || b.Count(Empty) != 223 {
		t.Fatalf("unexpected counts: %d %d %d", b.Count(Black), b.Count(White), b.Count(Empty))
	}

	withStones := b.Hash()
	b.Set(7, 8, Empty)
	b.Set(7, 7, Empty)
	if b.Hash() != 0 {
		t.Fatalf("hash after removing all stones = %x, want 0", b.Hash())
	}

	other := New(DefaultSize)
	other.Set(7, 8, White)
	other.Set(7, 7, Black)
	if other.Hash() != withStones {
		t.Fatalf("hash depends on placement order")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := New(9)
	b.Set(4, 4, Black)

	clone := b.Clone()
	clone.Set(0, 0, White)

	if b.At(0, 0) != Empty {
		t.Fatalf("clone shares cells with the original")
	}
	if b.Equal(clone) {
		t.Fatalf("boards with different stones compare equal")
	}
	if b.Hash() == clone.Hash() {
		t.Fatalf("boards with different stones share a hash")
	}
}

func TestParseRoundTrip(t *testing.T) {
	text := `
		# a comment
		. . . . .
		. X . . .
		. . O . .
		. . . X .
		. . . . .
	`

	b, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if b.Size() != 5 {
		t.Fatalf("size = %d, want 5", b.Size())
	}
	if b.At(1, 1) != Black || b.At(2, 2) != White || b.At(3, 3) != Black {
		t.Fatalf("stones parsed at the wrong cells:\n%s", b)
	}

	again, err := Parse(b.String())
	if err != nil {
		t.Fatalf("Parse(String()): %v", err)
	}
	if !again.Equal(b) {
		t.Fatalf("round trip changed the board")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
		want error
	}{
		{"too small", "...\n...\n...", ErrSize},
		{"ragged", ".....\n.....\n....\n.....\n.....", ErrMalformed},
		{"bad symbol", ".....\n..?..\n.....\n.....\n.....", ErrMalformed},
	}

	for _, test := range tests {
		if _, err := Parse(test.text); !errors.Is(err, test.want) {
			t.Errorf("%s: err = %v, want %v", test.name, err, test.want)
		}
	}
}

func TestEmptiesRowMajor(t *testing.T) {
	b := New(5)
	b.Set(0, 0, Black)
	b.Set(0, 2, White)

	empties := b.Empties()
	if len(empties) != 23 {
		t.Fatalf("len(Empties) = %d, want 23", len(empties))
	}
	if empties[0] != (Point{0, 1}) || empties[1] != (Point{0, 3}) {
		t.Fatalf("Empties not in row-major order: %v", empties[:3])
	}
}

func TestParsePoint(t *testing.T) {
	p, err := ParsePoint(" 7, 11 ")
	if err != nil || p != (Point{7, 11}) {
		t.Fatalf("ParsePoint = %v, %v", p, err)
	}

	for _, bad := range []string{"", "7", "a,b", "1;2"} {
		if _, err := ParsePoint(bad); err == nil {
			t.Errorf("ParsePoint(%q) succeeded", bad)
		}
	}

	line, err := ParseLine("7,7 7,8  8,8")
	if err != nil || len(line) != 3 || line[2] != (Point{8, 8}) {
		t.Fatalf("ParseLine = %v, %v", line, err)
	}
}

func TestColorText(t *testing.T) {
	for _, c := range []Color{Empty, Black, White} {
		text, _ := c.MarshalText()

		var back Color
		if err := back.UnmarshalText(text); err != nil || back != c {
			t.Errorf("color %v did not survive text round trip: %v %v", c, back, err)
		}
	}

	if Black.Other() != White || White.Other() != Black || Empty.Other() != Empty {
		t.Fatalf("Other is not an involution on stones")
	}
}
