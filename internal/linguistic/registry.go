// Package linguistic holds the fixed linguistic variables of the performance
// model: four inputs and one output. The definitions are built once at
// package init and are read-only afterwards, so they are safe to share
// between goroutines.
package linguistic

import (
	"fmt"
	"slices"
	"strings"

	"github.com/abhisek/fuzzscore/internal/membership"
)

// Variable names, in rule antecedent order for the inputs.
const (
	NameAnamnesis   = "anamnesis"
	NameSmoking     = "smoking"
	NameAge         = "age"
	NameDoubtTime   = "doubt_time"
	NamePerformance = "performance"
)

// Output term names.
const (
	Low      = "low"
	Moderate = "moderate"
	High     = "high"
)

var (
	// Anamnesis is the total anamnesis score, typically 0–100.
	Anamnesis = &membership.Variable{
		Name:        NameAnamnesis,
		DisplayName: "Anamnesis Score",
		Unit:        "points",
		Terms: []membership.Term{
			{Name: "light", Shape: membership.Shoulder(20, 40)},
			{Name: "moderate", Shape: membership.Trapezoid(20, 40, 40, 60)},
			{Name: "severe", Shape: membership.Ramp(40, 80)},
		},
		Recommended: membership.Range{Min: 0, Max: 100},
		Plot:        membership.Plot{From: 0, To: 100, Step: 2},
	}

	// Smoking is the smoking degree (Brinkman index), typically 0–800.
	// Its slopes are asymmetric (200/250/200), so adjacent degrees do not
	// sum to 1 inside the overlap bands.
	Smoking = &membership.Variable{
		Name:        NameSmoking,
		DisplayName: "Smoking Degree",
		Unit:        "index",
		Terms: []membership.Term{
			{Name: "light", Shape: membership.Shoulder(100, 300)},
			{Name: "moderate", Shape: membership.Trapezoid(100, 350, 350, 600)},
			{Name: "severe", Shape: membership.Ramp(400, 600)},
		},
		Recommended: membership.Range{Min: 0, Max: 800},
		Plot:        membership.Plot{From: 0, To: 800, Step: 10},
	}

	// Age in years, typically 10–70. Nothing is adolescent at or below 10.
	Age = &membership.Variable{
		Name:        NameAge,
		DisplayName: "Age",
		Unit:        "years",
		Terms: []membership.Term{
			{Name: "adolescent", Shape: membership.Trapezoid(10, 20, 20, 30)},
			{Name: "adult", Shape: membership.Trapezoid(20, 30, 30, 40)},
			{Name: "elderly", Shape: membership.Ramp(30, 50)},
		},
		Recommended: membership.Range{Min: 10, Max: 70},
		Plot:        membership.Plot{From: 0, To: 70, Step: 1},
	}

	// DoubtTime is the doubting time in hours, typically 0–16.
	DoubtTime = &membership.Variable{
		Name:        NameDoubtTime,
		DisplayName: "Doubting Time",
		Unit:        "hours",
		Terms: []membership.Term{
			{Name: "low", Shape: membership.Shoulder(4, 8)},
			{Name: "moderate", Shape: membership.Trapezoid(4, 8, 8, 12)},
			{Name: "high", Shape: membership.Ramp(8, 16)},
		},
		Recommended: membership.Range{Min: 0, Max: 16},
		Plot:        membership.Plot{From: 0, To: 16, Step: 0.5},
	}

	// Performance is the output variable. Its term centers drive the
	// defuzzifier; its shapes are only used for display.
	Performance = &membership.Variable{
		Name:        NamePerformance,
		DisplayName: "Performance",
		Unit:        "score",
		Terms: []membership.Term{
			{Name: Low, Shape: membership.Shoulder(25, 40), Center: 25},
			{Name: Moderate, Shape: membership.Shape{{40, 0}, {50, 1}, {70, 0}}, Center: 50},
			{Name: High, Shape: membership.Ramp(60, 75), Center: 75},
		},
		Recommended: membership.Range{Min: 0, Max: 100},
		Plot:        membership.Plot{From: 0, To: 100, Step: 2},
	}
)

// inputs is the antecedent order shared with the rule base.
var inputs = []*membership.Variable{Anamnesis, Smoking, Age, DoubtTime}

func init() {
	if err := Validate(); err != nil {
		panic(err)
	}
}

// Inputs returns the four input variables in antecedent order.
func Inputs() []*membership.Variable {
	return slices.Clone(inputs)
}

// InputNames returns the input variable names in antecedent order.
func InputNames() []string {
	names := make([]string, len(inputs))
	for i, v := range inputs {
		names[i] = v.Name
	}
	return names
}

// All returns the inputs followed by the output variable.
func All() []*membership.Variable {
	return append(Inputs(), Performance)
}

// ByName returns a variable by name.
func ByName(name string) (*membership.Variable, error) {
	for _, v := range All() {
		if v.Name == name {
			return v, nil
		}
	}
	return nil, fmt.Errorf("unknown variable %q (want one of %s)", name, strings.Join(names(All()), ", "))
}

// Centers returns the output term centers keyed by term name.
func Centers() map[string]float64 {
	c := make(map[string]float64, len(Performance.Terms))
	for _, t := range Performance.Terms {
		c[t.Name] = t.Center
	}
	return c
}

func names(vars []*membership.Variable) []string {
	out := make([]string, len(vars))
	for i, v := range vars {
		out[i] = v.Name
	}
	return out
}
