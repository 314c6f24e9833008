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
	"errors"
	"fmt"
)

// ErrWeights is wrapped by every weight table validation error.
var ErrWeights = errors.New("eval: invalid weights")

// Weights assigns a score to every pattern. The table must be strictly
// decreasing from Five to One, since move ordering and pruning rely on a
// stronger pattern always outscoring a weaker one.
type Weights struct {
	Five         float64 `yaml:"five"`
	Four         float64 `yaml:"four"`
	BlockedFour  float64 `yaml:"blocked-four"`
	Three        float64 `yaml:"three"`
	BlockedThree float64 `yaml:"blocked-three"`
	Two          float64 `yaml:"two"`
	BlockedTwo   float64 `yaml:"blocked-two"`
	One          float64 `yaml:"one"`
}

// DefaultWeights is the standard weight table.
var DefaultWeights = Weights{
	Five:         100000,
	Four:         10000,
	BlockedFour:  5000,
	Three:        1000,
	BlockedThree: 500,
	Two:          100,
	BlockedTwo:   50,
	One:          10,
}

// Of returns the weight of the given pattern.
func (w Weights) Of(p Pattern) float64 {
	return w.table()[p]
}

func (w Weights) table() [PatternN]float64 {
	return [PatternN]float64{
		Five:         w.Five,
		Four:         w.Four,
		BlockedFour:  w.BlockedFour,
		Three:        w.Three,
		BlockedThree: w.BlockedThree,
		Two:          w.Two,
		BlockedTwo:   w.BlockedTwo,
		One:          w.One,
	}
}

// Validate checks that every weight is present and positive, and that the
// table is strictly decreasing.
func (w Weights) Validate() error {
	table := w.table()
	for p := Pattern(0); p < PatternN; p++ {
		if table[p] <= 0 {
			return fmt.Errorf("%w: %s weight is %v, want > 0", ErrWeights, p, table[p])
		}

		if p > 0 && table[p] >= table[p-1] {
			return fmt.Errorf(
				"%w: %s weight %v is not below %s weight %v",
				ErrWeights, p, table[p], p-1, table[p-1],
			)
		}
	}

	return nil
}
