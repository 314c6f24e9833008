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

import "fmt"

// Color represents the content of a cell, and doubles as the color of a
// player when it is not Empty.
type Color uint8

const (
	Empty Color = iota
	Black
	White
)

// ColorN is the number of distinct cell values.
const ColorN = 3

// Other returns the opposing color. Empty has no opponent.
func (c Color) Other() Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

func (c Color) String() string {
	switch c {
	case Empty:
		return "empty"
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return fmt.Sprintf("color(%d)", uint8(c))
	}
}

// Symbol returns the character used for the color in the textual format.
func (c Color) Symbol() byte {
	switch c {
	case Black:
		return 'X'
	case White:
		return 'O'
	default:
		return '.'
	}
}

// ColorFromSymbol parses a single board character.
func ColorFromSymbol(symbol byte) (Color, error) {
	switch symbol {
	case '.', '+', '-':
		return Empty, nil
	case 'X', 'x', 'B', 'b':
		return Black, nil
	case 'O', 'o', 'W', 'w':
		return White, nil
	default:
		return Empty, fmt.Errorf("unknown cell %q", symbol)
	}
}

// ParseColor parses a color name as used in flags and config files.
func ParseColor(name string) (Color, error) {
	switch name {
	case "empty", "none":
		return Empty, nil
	case "black", "b", "x":
		return Black, nil
	case "white", "w", "o":
		return White, nil
	default:
		return Empty, fmt.Errorf("board: invalid color %q", name)
	}
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	color, err := ParseColor(string(text))
	if err != nil {
		return err
	}

	*c = color
	return nil
}
