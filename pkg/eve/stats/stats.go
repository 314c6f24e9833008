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

// Package stats estimates elo differences from match results and computes
// the log-likelihood ratios of sequential probability ratio tests.
package stats

import "math"

// StoppingBounds returns the log-likelihood ratios below which the null
// hypothesis and above which the alternate hypothesis is accepted, for the
// type I and type II error rates alpha and beta.
func StoppingBounds(alpha, beta float64) (lower float64, upper float64) {
	return math.Log(beta / (1 - alpha)), math.Log((1 - beta) / alpha)
}

// confidence is the two-sided confidence of elo error margins.
const confidence = 0.95

// distribution is the measured distribution of the per-game (or per-pair)
// score of a player. Every outcome gets half a pseudo-observation so that
// no probability is zero.
type distribution struct {
	n      float64   // observations, pseudo-observations included
	scores []float64 // score of each outcome
	probs  []float64 // measured probability of each outcome
}

func newDistribution(scores []float64, counts ...int) distribution {
	dist := distribution{
		n:      float64(len(counts)) / 2,
		scores: scores,
		probs:  make([]float64, len(counts)),
	}

	for _, count := range counts {
		dist.n += float64(count)
	}

	for i, count := range counts {
		dist.probs[i] = (float64(count) + 0.5) / dist.n
	}

	return dist
}

func (dist distribution) mean() float64 {
	mu := 0.0
	for i, p := range dist.probs {
		mu += p * dist.scores[i]
	}

	return mu
}

// variance returns the variance of the score around mu.
func (dist distribution) variance(mu float64) float64 {
	v := 0.0
	for i, p := range dist.probs {
		v += p * (dist.scores[i] - mu) * (dist.scores[i] - mu)
	}

	return v
}

// interval returns the elo of the mean score with its confidence interval.
func (dist distribution) interval() (lower float64, elo float64, upper float64) {
	mu := dist.mean()
	sigma := math.Sqrt(dist.variance(mu) / dist.n)
	z := quantile(0.5 + confidence/2)

	return scoreElo(mu - z*sigma), scoreElo(mu), scoreElo(mu + z*sigma)
}

// scoreElo converts an expected score into an elo difference. Scores
// outside (0, 1) have no finite elo and are reported as 0.
func scoreElo(score float64) float64 {
	if score <= 0 || score >= 1 {
		return 0
	}

	return -400 * math.Log10(1/score-1)
}

// quantile is the inverse of the standard normal distribution function.
func quantile(p float64) float64 {
	return math.Sqrt2 * math.Erfinv(2*p-1)
}

// bayesWDL returns the win, draw and loss probabilities of a bayeselo
// difference with the given draw elo.
func bayesWDL(elo, drawElo float64) (w float64, d float64, l float64) {
	w = 1 / (1 + math.Pow(10, (drawElo-elo)/400))
	l = 1 / (1 + math.Pow(10, (drawElo+elo)/400))
	return w, 1 - w - l, l
}

// bayesElo is the inverse of bayesWDL.
func bayesElo(w, d, l float64) (elo float64, drawElo float64) {
	elo = 200 * math.Log10((w/l)*((1-l)/(1-w)))
	drawElo = 200 * math.Log10(((1-l)/l)*((1-w)/w))
	return elo, drawElo
}

// normalizedScore converts a normalized elo into the expected score of a
// distribution with the given standard deviation.
func normalizedScore(nelo, deviation float64) float64 {
	return nelo*math.Sqrt2*deviation/(800/math.Ln10) + 0.5
}
