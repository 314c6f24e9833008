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

package eval

import (
	"math"

	"laptudirm.com/x/gomoku/pkg/board"
)

const (
	minPositionWeight = 0.3
	starBonus         = 1.2
)

// StarPoints returns the five star points of a board of the given size:
// the four points three cells in from each corner and the center. Points
// that coincide on small boards are reported once.
func StarPoints(size int) []board.Point {
	c, far := size/2, size-4
	candidates := []board.Point{
		{X: 3, Y: 3},
		{X: 3, Y: far},
		{X: c, Y: c},
		{X: far, Y: 3},
		{X: far, Y: far},
	}

	var points []board.Point
	seen := make(map[board.Point]bool, len(candidates))
	for _, p := range candidates {
		if p.X < 0 || p.Y < 0 || p.X >= size || p.Y >= size || seen[p] {
			continue
		}

		seen[p] = true
		points = append(points, p)
	}

	return points
}

// PositionMatrix returns the flat x*size+y matrix of position weights,
// which fall off linearly with the distance from the center down to a floor
// of 0.3, with a bonus on the star points.
func PositionMatrix(size int) []float64 {
	matrix := make([]float64, size*size)
	center, radius := size/2, float64(size)/2

	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			dist := math.Hypot(float64(x-center), float64(y-center))
			matrix[x*size+y] = math.Max(minPositionWeight, 1-dist/radius)
		}
	}

	for _, p := range StarPoints(size) {
		matrix[p.X*size+p.Y] *= starBonus
	}

	return matrix
}
