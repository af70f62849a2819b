// Package scoring turns a set of quiz answers into the overall maturity
// score, the per-pillar breakdown and the qualitative tier. Everything in
// this package is pure: no I/O, no errors, same input same output.
package scoring

import (
	"math"

	"github.com/radarpme/radarpme/internal/quiz"
)

// PillarScore is the 0..100 result for a single pillar.
type PillarScore struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// OverallScore computes the 0..100 maturity percentage for the answer set
// against the given catalog. Unanswered questions contribute zero; answers
// whose id is not in the catalog are ignored.
func OverallScore(answers quiz.AnswerSet, catalog quiz.Catalog) int {
	max := catalog.MaxPoints()
	if max == 0 {
		return 0
	}

	earned := 0
	for _, q := range catalog {
		if v, ok := answers[q.ID]; ok {
			earned += q.Points(v)
		}
	}

	return percent(earned, max)
}

// PillarScores computes the per-pillar percentages. The result always has
// exactly five entries in the fixed pillar order, even for an empty answer
// set or a catalog missing a pillar (those pillars score zero).
func PillarScores(answers quiz.AnswerSet, catalog quiz.Catalog) []PillarScore {
	out := make([]PillarScore, 0, 5)
	for _, p := range quiz.AllPillars() {
		earned, max := 0, 0
		for _, q := range catalog.ForPillar(p) {
			max += q.MaxPoints()
			if v, ok := answers[q.ID]; ok {
				earned += q.Points(v)
			}
		}
		score := 0
		if max > 0 {
			score = percent(earned, max)
		}
		out = append(out, PillarScore{Name: string(p), Score: score})
	}
	return out
}

// StrongestPillar returns the entry with the highest score. Ties resolve
// to the earlier pillar in the fixed order.
func StrongestPillar(scores []PillarScore) PillarScore {
	best := PillarScore{}
	for i, ps := range scores {
		if i == 0 || ps.Score > best.Score {
			best = ps
		}
	}
	return best
}

// WeakestPillar returns the entry with the lowest score. Ties resolve to
// the earlier pillar in the fixed order.
func WeakestPillar(scores []PillarScore) PillarScore {
	worst := PillarScore{}
	for i, ps := range scores {
		if i == 0 || ps.Score < worst.Score {
			worst = ps
		}
	}
	return worst
}

// percent rounds earned/max to the nearest integer percentage.
func percent(earned, max int) int {
	return int(math.Round(100 * float64(earned) / float64(max)))
}
