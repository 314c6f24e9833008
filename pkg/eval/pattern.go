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

import "fmt"

// Pattern names a run of same-colored stones by its length and by whether
// an end of the run is obstructed. Patterns are ordered strongest first.
type Pattern uint8

const (
	Five Pattern = iota
	Four
	BlockedFour
	Three
	BlockedThree
	Two
	BlockedTwo
	One

	PatternN = 8
)

var patternNames = [PatternN]string{
	Five:         "FIVE",
	Four:         "FOUR",
	BlockedFour:  "BLOCKED_FOUR",
	Three:        "THREE",
	BlockedThree: "BLOCKED_THREE",
	Two:          "TWO",
	BlockedTwo:   "BLOCKED_TWO",
	One:          "ONE",
}

func (p Pattern) String() string {
	if p < PatternN {
		return patternNames[p]
	}

	return fmt.Sprintf("pattern(%d)", uint8(p))
}

func (p Pattern) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Pattern) UnmarshalText(text []byte) error {
	for i, name := range patternNames {
		if name == string(text) {
			*p = Pattern(i)
			return nil
		}
	}

	return fmt.Errorf("eval: unknown pattern %q", text)
}

// Classify maps a run length and its number of blocked ends to a pattern.
func Classify(count, blocked int) Pattern {
	switch {
	case count >= 5:
		return Five
	case count == 4 && blocked == 0:
		return Four
	case count == 4:
		return BlockedFour
	case count == 3 && blocked == 0:
		return Three
	case count == 3:
		return BlockedThree
	case count == 2 && blocked == 0:
		return Two
	case count == 2:
		return BlockedTwo
	default:
		return One
	}
}
