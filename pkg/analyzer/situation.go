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

package analyzer

import (
	"laptudirm.com/x/gomoku/pkg/board"
	"laptudirm.com/x/gomoku/pkg/eval"
)

// ThreatLevel grades how urgent a threat is.
type ThreatLevel string

const (
	High   ThreatLevel = "high"
	Medium ThreatLevel = "medium"
)

// Threat is an empty cell where a stone would make a strong pattern.
type Threat struct {
	Point   board.Point  `yaml:"point"`
	Level   ThreatLevel  `yaml:"level"`
	Pattern eval.Pattern `yaml:"pattern"`
}

// Verdicts of a situation report.
const (
	Attack       = "attack"
	Defend       = "defend"
	Advantage    = "advantage"
	Disadvantage = "disadvantage"
	Balanced     = "balanced"
)

// AdvantageMargin is the evaluation difference below which a position is
// considered balanced.
const AdvantageMargin = 50

// Report describes a position from the point of view of one color.
type Report struct {
	Color board.Color `yaml:"color"`

	// Own and Opponent are the summed pattern scores of each side's stones,
	// and Advantage is their difference.
	Own       float64 `yaml:"own"`
	Opponent  float64 `yaml:"opponent"`
	Advantage float64 `yaml:"advantage"`

	OwnThreats []Threat `yaml:"own-threats,omitempty"`
	Threats    []Threat `yaml:"threats,omitempty"`

	Verdict string `yaml:"verdict"`
}

// Situation describes the position on b for color.
func (analyzer *Analyzer) Situation(b *board.Board, color board.Color) Report {
	report := Report{
		Color:      color,
		OwnThreats: analyzer.Threats(b, color),
		Threats:    analyzer.Threats(b, color.Other()),
	}

	n := b.Size()
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			switch b.At(x, y) {
			case board.Empty:
			case color:
				report.Own += analyzer.ev.StoneScore(b, x, y)
			default:
				report.Opponent += analyzer.ev.StoneScore(b, x, y)
			}
		}
	}

	report.Advantage = report.Own - report.Opponent

	switch {
	case pressing(report.OwnThreats):
		report.Verdict = Attack
	case pressing(report.Threats):
		report.Verdict = Defend
	case report.Advantage > AdvantageMargin:
		report.Verdict = Advantage
	case report.Advantage < -AdvantageMargin:
		report.Verdict = Disadvantage
	default:
		report.Verdict = Balanced
	}

	return report
}

// Threats lists the empty cells where a stone of color would make a
// pattern at least as strong as an open three. Cells reaching an open four
// are high level threats.
func (analyzer *Analyzer) Threats(b *board.Board, color board.Color) []Threat {
	weights := analyzer.ev.Weights()

	var threats []Threat
	for _, p := range b.Empties() {
		pattern, score := analyzer.ev.RecognizePattern(b, p.X, p.Y, color)

		switch {
		case score >= weights.Four:
			threats = append(threats, Threat{Point: p, Level: High, Pattern: pattern})
		case score >= weights.Three:
			threats = append(threats, Threat{Point: p, Level: Medium, Pattern: pattern})
		}
	}

	return threats
}

// pressing reports whether a list of threats forces a reply: a high threat
// or two threats at once.
func pressing(threats []Threat) bool {
	if len(threats) >= 2 {
		return true
	}

	for _, threat := range threats {
		if threat.Level == High {
			return true
		}
	}

	return false
}
