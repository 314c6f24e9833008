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

package stats

import (
	"fmt"
	"math"
)

// Score is the game record of a player.
type Score struct {
	Wins   int `yaml:"wins"`
	Losses int `yaml:"losses"`
	Draws  int `yaml:"draws"`
}

func (score Score) Games() int {
	return score.Wins + score.Losses + score.Draws
}

func (score Score) distribution() distribution {
	return newDistribution([]float64{1, 0.5, 0}, score.Wins, score.Draws, score.Losses)
}

// Interval returns the elo estimate of the score with the bounds of its
// 95% confidence interval.
func (score Score) Interval() (lower float64, elo float64, upper float64) {
	return score.distribution().interval()
}

// Elo returns the elo estimate of the score and its 95% error margin.
func (score Score) Elo() (elo float64, margin float64) {
	lower, elo, upper := score.Interval()
	return elo, math.Max(upper-elo, elo-lower)
}

// LLR returns the log-likelihood ratio of the alternate hypothesis elo1
// against the null hypothesis elo0, using a trinomial bayeselo model.
func (score Score) LLR(elo0, elo1 float64) float64 {
	dist := score.distribution()
	w, d, l := dist.probs[0], dist.probs[1], dist.probs[2]

	_, drawElo := bayesElo(w, d, l)
	w0, d0, l0 := bayesWDL(elo0, drawElo)
	w1, d1, l1 := bayesWDL(elo1, drawElo)

	return dist.n * (w*math.Log(w1/w0) + d*math.Log(d1/d0) + l*math.Log(l1/l0))
}

// Penta is the game pair record of a player. A pair of games with sides
// swapped scores 0, 0.5, 1, 1.5 or 2 points, from LossLoss to WinWin.
type Penta struct {
	LossLoss int `yaml:"loss-loss"`
	DrawLoss int `yaml:"draw-loss"`
	DrawDraw int `yaml:"draw-draw"` // win-loss pairs count here too
	WinDraw  int `yaml:"win-draw"`
	WinWin   int `yaml:"win-win"`
}

func (penta Penta) Pairs() int {
	return penta.LossLoss + penta.DrawLoss + penta.DrawDraw + penta.WinDraw + penta.WinWin
}

func (penta Penta) distribution() distribution {
	return newDistribution(
		[]float64{0, 0.25, 0.5, 0.75, 1},
		penta.LossLoss, penta.DrawLoss, penta.DrawDraw, penta.WinDraw, penta.WinWin,
	)
}

// Interval returns the elo estimate of the pairs with the bounds of its
// 95% confidence interval.
func (penta Penta) Interval() (lower float64, elo float64, upper float64) {
	return penta.distribution().interval()
}

// Elo returns the elo estimate of the pairs and its 95% error margin.
func (penta Penta) Elo() (elo float64, margin float64) {
	lower, elo, upper := penta.Interval()
	return elo, math.Max(upper-elo, elo-lower)
}

// LLR returns the log-likelihood ratio of the normalized elo hypotheses
// elo1 against elo0 with a pentanomial model. It uses the approximation
// of the generalized SPRT, which compares the variances of the measured
// scores around the hypothesized means.
func (penta Penta) LLR(elo0, elo1 float64) float64 {
	dist := penta.distribution()
	deviation := math.Sqrt(dist.variance(dist.mean()))

	v0 := dist.variance(normalizedScore(elo0, deviation))
	v1 := dist.variance(normalizedScore(elo1, deviation))
	if v0 == 0 || v1 == 0 {
		return 0
	}

	return 0.5 * dist.n * math.Log(v0/v1)
}

func (penta Penta) String() string {
	return fmt.Sprintf("[%d, %d, %d, %d, %d]", penta.LossLoss, penta.DrawLoss, penta.DrawDraw, penta.WinDraw, penta.WinWin)
}
