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

package schedule

import "slices"

// RoundRobin pairs every player with every other player once per round,
// using the circle method. An odd number of players gets a phantom player
// whose encounters are skipped.
type RoundRobin struct {
	playerCount int
	pairNumber  int

	top, bottom []int
}

func (rr *RoundRobin) Initialize(n int) {
	rr.playerCount = n
	rounded := n + n%2

	rr.top = make([]int, rounded/2)
	rr.bottom = make([]int, rounded/2)

	for i := 0; i < rounded; i++ {
		if i < rounded/2 {
			rr.top[i] = i
		} else {
			rr.bottom[rounded-i-1] = i
		}
	}

	rr.pairNumber = 0
}

func (rr *RoundRobin) NextEncounter() (int, int) {
	for {
		if rr.pairNumber >= len(rr.top) {
			rr.rotate()
		}

		p1, p2 := rr.top[rr.pairNumber], rr.bottom[rr.pairNumber]
		rr.pairNumber++

		if p1 < rr.playerCount && p2 < rr.playerCount {
			return p1, p2
		}
	}
}

// rotate keeps the first player fixed and turns the circle by one.
func (rr *RoundRobin) rotate() {
	rr.pairNumber = 0

	last := len(rr.top) - 1
	lastPlayer := rr.top[last]

	rr.top = slices.Insert(rr.top, 1, rr.bottom[0])[:last+1]
	rr.bottom = append(rr.bottom, lastPlayer)[1:]
}

func (rr *RoundRobin) TotalEncounters() int {
	return rr.playerCount * (rr.playerCount - 1) / 2
}
