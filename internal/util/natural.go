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

package util

import "strings"

// NaturalLess reports whether a sorts before b in natural order, where runs
// of digits compare by their numeric value, so that "engine2" sorts before
// "engine10". Equal strings are not less than each other.
func NaturalLess(a, b string) bool {
	for a != "" && b != "" {
		ca, restA := chunk(a)
		cb, restB := chunk(b)

		if isDigit(ca[0]) && isDigit(cb[0]) {
			if c := compareNumbers(ca, cb); c != 0 {
				return c < 0
			}
		} else if ca != cb {
			return ca < cb
		}

		a, b = restA, restB
	}

	return a == "" && b != ""
}

// chunk splits the leading run of digits or non-digits off s.
func chunk(s string) (string, string) {
	digits := isDigit(s[0])

	i := 1
	for i < len(s) && isDigit(s[i]) == digits {
		i++
	}

	return s[:i], s[i:]
}

// compareNumbers compares two runs of digits by value without parsing
// them, so that runs of any length compare correctly. Runs with the same
// value compare by their number of leading zeros.
func compareNumbers(a, b string) int {
	ta, tb := strings.TrimLeft(a, "0"), strings.TrimLeft(b, "0")

	switch {
	case len(ta) != len(tb):
		return len(ta) - len(tb)
	case ta != tb:
		return strings.Compare(ta, tb)
	default:
		return len(a) - len(b)
	}
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
