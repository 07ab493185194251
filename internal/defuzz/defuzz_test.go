package defuzz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/fuzzscore/internal/inference"
	"github.com/abhisek/fuzzscore/internal/linguistic"
	"github.com/abhisek/fuzzscore/internal/membership"
	"github.com/abhisek/fuzzscore/internal/rulebase"
)

const epsilon = 1e-9

func fired(alphaByTerm ...any) []inference.FiredRule {
	var out []inference.FiredRule
	for i := 0; i+1 < len(alphaByTerm); i += 2 {
		out = append(out, inference.FiredRule{
			Consequent: alphaByTerm[i].(string),
			Alpha:      alphaByTerm[i+1].(float64),
		})
	}
	return out
}

func TestDefuzzify_Empty(t *testing.T) {
	assert.Equal(t, 0.0, Defuzzify(nil))
	assert.Equal(t, 0.0, Defuzzify([]inference.FiredRule{}))
	assert.Empty(t, Aggregate(nil))
}

func TestDefuzzify_SingleTerm(t *testing.T) {
	assert.Equal(t, 25.0, Defuzzify(fired("low", 0.5)))
	assert.InDelta(t, 50.0, Defuzzify(fired("moderate", 0.1)), epsilon)
	assert.Equal(t, 75.0, Defuzzify(fired("high", 1.0)))
}

func TestAggregate_MaxNotSum(t *testing.T) {
	agg := Aggregate(fired("high", 0.2, "low", 0.3, "high", 0.25, "high", 0.1))
	require.Len(t, agg, 2)

	// Output-term order, not firing order.
	assert.Equal(t, Strength{Term: "low", Alpha: 0.3, Center: 25}, agg[0])
	assert.Equal(t, Strength{Term: "high", Alpha: 0.25, Center: 75}, agg[1])

	// (0.3*25 + 0.25*75) / 0.55
	assert.InDelta(t, 26.25/0.55, Centroid(agg), epsilon)
}

func TestAggregate_IgnoresUnknownAndZero(t *testing.T) {
	agg := Aggregate(fired("extreme", 0.9, "moderate", 0.0))
	assert.Empty(t, agg)
	assert.Equal(t, 0.0, Centroid(agg))
}

func TestDefuzzify_FromInference(t *testing.T) {
	in := inference.Inputs{
		membership.Evaluate(linguistic.Anamnesis, 25),
		membership.Evaluate(linguistic.Smoking, 500),
		membership.Evaluate(linguistic.Age, 28),
		membership.Evaluate(linguistic.DoubtTime, 10),
	}
	f := inference.Infer(in, rulebase.Default())

	agg := Aggregate(f)
	require.Len(t, agg, 2)
	assert.Equal(t, "moderate", agg[0].Term)
	assert.InDelta(t, 0.5, agg[0].Alpha, epsilon)
	assert.Equal(t, "high", agg[1].Term)
	assert.InDelta(t, 0.25, agg[1].Alpha, epsilon)

	assert.InDelta(t, 175.0/3.0, Defuzzify(f), epsilon)
}

func TestDefuzzify_BoundedByCenters(t *testing.T) {
	alphas := []float64{0.01, 0.2, 0.5, 0.99, 1}
	for _, l := range alphas {
		for _, m := range alphas {
			for _, h := range alphas {
				score := Defuzzify(fired("low", l, "moderate", m, "high", h))
				assert.GreaterOrEqual(t, score, 25.0)
				assert.LessOrEqual(t, score, 75.0)
			}
		}
	}
}
