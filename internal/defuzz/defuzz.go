// Package defuzz collapses fired rules into one crisp score using a discrete
// weighted average of fixed output-term centers.
package defuzz

import (
	"gonum.org/v1/gonum/stat"

	"github.com/abhisek/fuzzscore/internal/inference"
	"github.com/abhisek/fuzzscore/internal/linguistic"
)

// Strength is the aggregated firing strength of one output term.
type Strength struct {
	Term   string  `json:"term"`
	Alpha  float64 `json:"alpha"`
	Center float64 `json:"center"`
}

// Aggregate takes, for each output term, the maximum alpha among the fired
// rules that conclude it. Terms no rule concludes are omitted. The result is
// in output-term order so sums over it are reproducible.
func Aggregate(fired []inference.FiredRule) []Strength {
	best := make(map[string]float64, len(linguistic.Performance.Terms))
	for _, r := range fired {
		if r.Alpha > best[r.Consequent] {
			best[r.Consequent] = r.Alpha
		}
	}

	var out []Strength
	for _, t := range linguistic.Performance.Terms {
		if alpha, ok := best[t.Name]; ok {
			out = append(out, Strength{Term: t.Name, Alpha: alpha, Center: t.Center})
		}
	}
	return out
}

// Defuzzify returns Σ(alpha·center) / Σ(alpha) over the aggregated terms.
// When no rule fired there is nothing to weigh and the score is 0.
func Defuzzify(fired []inference.FiredRule) float64 {
	return Centroid(Aggregate(fired))
}

// Centroid computes the weighted average of already aggregated strengths.
func Centroid(agg []Strength) float64 {
	if len(agg) == 0 {
		return 0
	}
	centers := make([]float64, len(agg))
	weights := make([]float64, len(agg))
	for i, s := range agg {
		centers[i] = s.Center
		weights[i] = s.Alpha
	}
	return stat.Mean(centers, weights)
}
