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
	"fmt"
	"strconv"
	"strings"
)

// Point is a coordinate on the board.
type Point struct {
	X int `yaml:"x" json:"x"`
	Y int `yaml:"y" json:"y"`
}

// NoPoint is returned alongside errors where a Point is expected.
var NoPoint = Point{X: -1, Y: -1}

// String returns the point in the "x,y" notation.
func (p Point) String() string {
	return strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y)
}

// Less orders points lexicographically by (x, y).
func (p Point) Less(q Point) bool {
	return p.X < q.X || (p.X == q.X && p.Y < q.Y)
}

// Add returns p moved by (dx, dy) k times.
func (p Point) Add(d Direction, k int) Point {
	return Point{X: p.X + d.DX*k, Y: p.Y + d.DY*k}
}

// ParsePoint parses the "x,y" notation.
func ParsePoint(str string) (Point, error) {
	xs, ys, found := strings.Cut(strings.TrimSpace(str), ",")
	if !found {
		return NoPoint, fmt.Errorf("board: invalid point %q", str)
	}

	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return NoPoint, fmt.Errorf("board: invalid point %q: %w", str, err)
	}

	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return NoPoint, fmt.Errorf("board: invalid point %q: %w", str, err)
	}

	return Point{X: x, Y: y}, nil
}

// ParseLine parses a whitespace separated list of points, as found in an
// opening book line.
func ParseLine(line string) ([]Point, error) {
	var points []Point
	for _, field := range strings.Fields(line) {
		p, err := ParsePoint(field)
		if err != nil {
			return nil, err
		}

		points = append(points, p)
	}

	return points, nil
}

// Move is a stone of the given color placed at a point.
type Move struct {
	Point `yaml:",inline"`
	Color Color `yaml:"color" json:"color"`
}

func (m Move) String() string {
	return fmt.Sprintf("%s@%s", m.Color, m.Point)
}

// Direction is a unit step along one of the four line orientations.
type Direction struct {
	DX, DY int
}

// Directions lists the four line orientations in scan order: horizontal,
// vertical, diagonal ↘ and diagonal ↗.
var Directions = [4]Direction{
	{DX: 0, DY: 1},
	{DX: 1, DY: 0},
	{DX: 1, DY: 1},
	{DX: 1, DY: -1},
}
