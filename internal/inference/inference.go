// Package inference fires the rule table against fuzzified inputs using the
// minimum t-norm for AND.
package inference

import (
	"github.com/abhisek/fuzzscore/internal/membership"
	"github.com/abhisek/fuzzscore/internal/rulebase"
)

// Inputs holds one fuzzified vector per input variable, in antecedent order.
type Inputs [rulebase.Arity]membership.Vector

// FiredRule is a rule whose antecedent holds to a nonzero degree.
type FiredRule struct {
	// Index is the rule's position in the table, starting at 0.
	Index      int                 `json:"index"`
	Antecedent rulebase.Antecedent `json:"antecedent"`
	Label      string              `json:"rule"`
	Alpha      float64             `json:"alpha"`
	Consequent string              `json:"output"`
}

// Strength returns min over the antecedent terms' degrees.
func Strength(in Inputs, a rulebase.Antecedent) float64 {
	alpha := in[0].Of(a[0])
	for i := 1; i < rulebase.Arity; i++ {
		if d := in[i].Of(a[i]); d < alpha {
			alpha = d
		}
	}
	return alpha
}

// Infer evaluates every rule and returns those with alpha > 0, in table order.
func Infer(in Inputs, rb *rulebase.RuleBase) []FiredRule {
	var fired []FiredRule
	for i, r := range rb.All {
		alpha := Strength(in, r.If)
		if alpha <= 0 {
			continue
		}
		fired = append(fired, FiredRule{
			Index:      i,
			Antecedent: r.If,
			Label:      r.If.String(),
			Alpha:      alpha,
			Consequent: r.Then,
		})
	}
	return fired
}

// ExpectedFired is the product of positive-term counts, i.e. the number of rules
// Infer returns for a total rule base.
func ExpectedFired(in Inputs) int {
	n := 1
	for _, v := range in {
		n *= v.Positive()
	}
	return n
}
