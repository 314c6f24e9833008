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

package match

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// DefaultMovesToGo is the number of moves the remaining time is spread over
// when the time control does not say.
const DefaultMovesToGo = 20

type TimeControl struct {
	MovesToGo int
	Base, Inc time.Duration
}

// movestogo/time+increment, both time and increment in seconds. An empty
// string is an untimed control.
func ParseTime(time_str string) (TimeControl, error) {
	var tc TimeControl
	if time_str == "" {
		return tc, nil
	}

	moves_str, time_str, found := strings.Cut(time_str, "/")
	tc.MovesToGo = -1
	var err error
	if found {
		tc.MovesToGo, err = strconv.Atoi(moves_str)
		if err != nil {
			return TimeControl{}, err
		}

		if tc.MovesToGo <= 0 {
			return TimeControl{}, errors.New("parse tc: moves to go must be positive")
		}
	} else {
		time_str = moves_str
	}

	time_str, inc_str, found := strings.Cut(time_str, "+")
	if !found {
		return TimeControl{}, errors.New("parse tc: increment not found")
	}

	incs, err := strconv.ParseFloat(inc_str, 64)
	if err != nil {
		return TimeControl{}, err
	}

	secs, err := strconv.ParseFloat(time_str, 64)
	if err != nil {
		return TimeControl{}, err
	}

	if secs <= 0 || incs < 0 {
		return TimeControl{}, errors.New("parse tc: invalid time")
	}

	tc.Inc = time.Millisecond * time.Duration(incs*1000)
	tc.Base = time.Millisecond * time.Duration(secs*1000)
	return tc, nil
}

func (tc TimeControl) Timed() bool {
	return tc.Base > 0
}

// Allot returns the time a player may spend on its next move.
func (tc TimeControl) Allot() time.Duration {
	moves := tc.MovesToGo
	if moves <= 0 {
		moves = DefaultMovesToGo
	}

	return tc.Base/time.Duration(moves) + tc.Inc
}

// Spend charges a move which took spent to the clock. It reports false if
// the player ran out of time.
func (tc *TimeControl) Spend(spent time.Duration) bool {
	tc.Base -= spent
	if tc.Base <= 0 {
		return false
	}

	tc.Base += tc.Inc
	return true
}
