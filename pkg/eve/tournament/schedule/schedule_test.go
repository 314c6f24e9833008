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

import "testing"

func encounters(scheduler Scheduler, n int) map[[2]int]int {
	scheduler.Initialize(n)

	seen := make(map[[2]int]int)
	for i := 0; i < scheduler.TotalEncounters(); i++ {
		p1, p2 := scheduler.NextEncounter()
		if p1 > p2 {
			p1, p2 = p2, p1
		}

		seen[[2]int{p1, p2}]++
	}

	return seen
}

func TestRoundRobin(t *testing.T) {
	for n := 2; n <= 7; n++ {
		seen := encounters(&RoundRobin{}, n)

		for p1 := 0; p1 < n; p1++ {
			for p2 := p1 + 1; p2 < n; p2++ {
				if seen[[2]int{p1, p2}] != 1 {
					t.Errorf("%d players: %d vs %d met %d times", n, p1, p2, seen[[2]int{p1, p2}])
				}
			}
		}

		if len(seen) != n*(n-1)/2 {
			t.Errorf("%d players: %d encounters", n, len(seen))
		}
	}
}

func TestGauntlet(t *testing.T) {
	seen := encounters(&Gauntlet{}, 4)

	for p := 1; p < 4; p++ {
		if seen[[2]int{0, p}] != 1 {
			t.Errorf("0 vs %d met %d times", p, seen[[2]int{0, p}])
		}
	}

	if len(seen) != 3 {
		t.Errorf("%d encounters, want 3", len(seen))
	}
}

func TestNew(t *testing.T) {
	for _, name := range []string{"", RoundRobinName, GauntletName} {
		if _, err := New(name); err != nil {
			t.Errorf("New(%q): %v", name, err)
		}
	}

	if _, err := New("swiss"); err == nil {
		t.Errorf("New accepted an unknown scheduler")
	}
}
