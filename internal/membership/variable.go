package membership

import (
	"fmt"
	"iter"
	"math"
)

// Term is one named fuzzy category of a linguistic variable.
type Term struct {
	Name  string
	Shape Shape
	// Center is the representative crisp value used by the defuzzifier.
	// Only output variables set it.
	Center float64
}

// Range is a closed numeric interval.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether x lies in [Min, Max].
func (r Range) Contains(x float64) bool {
	return x >= r.Min && x <= r.Max
}

// Plot describes how a variable's curves are sampled for display.
type Plot struct {
	From float64
	To   float64
	Step float64
}

// Variable is a linguistic variable: an ordered set of terms over one
// numeric dimension.
type Variable struct {
	Name        string
	DisplayName string
	Unit        string
	Terms       []Term
	// Recommended is the advisory input range. Values outside it are still
	// evaluated.
	Recommended Range
	Plot        Plot
}

// Term returns the term with the given name.
func (v *Variable) Term(name string) (Term, bool) {
	for _, t := range v.Terms {
		if t.Name == name {
			return t, true
		}
	}
	return Term{}, false
}

// TermNames returns the term names in declaration order.
func (v *Variable) TermNames() []string {
	names := make([]string, len(v.Terms))
	for i, t := range v.Terms {
		names[i] = t.Name
	}
	return names
}

// Degree is the membership of one term.
type Degree struct {
	Term  string  `json:"term"`
	Value float64 `json:"degree"`
}

// Vector holds the degrees of every term of one variable for one input value.
type Vector struct {
	Variable string   `json:"variable"`
	Input    float64  `json:"input"`
	Degrees  []Degree `json:"degrees"`
}

// Of returns the degree for term, or 0 if the vector has no such term.
func (v Vector) Of(term string) float64 {
	for _, d := range v.Degrees {
		if d.Term == term {
			return d.Value
		}
	}
	return 0
}

// Positive returns the number of terms with a strictly positive degree.
func (v Vector) Positive() int {
	n := 0
	for _, d := range v.Degrees {
		if d.Value > 0 {
			n++
		}
	}
	return n
}

// Evaluate maps x to a degree for every term of v, in term order.
// NaN is not a valid input; callers reject it before evaluation.
func Evaluate(v *Variable, x float64) Vector {
	out := Vector{
		Variable: v.Name,
		Input:    x,
		Degrees:  make([]Degree, len(v.Terms)),
	}
	for i, t := range v.Terms {
		out.Degrees[i] = Degree{Term: t.Name, Value: t.Shape.At(x)}
	}
	return out
}

// Sample is one point of a sampled variable: the input and the degree of
// each term, in term order.
type Sample struct {
	X       float64   `json:"x"`
	Degrees []float64 `json:"degrees"`
}

// Samples lazily evaluates v at from, from+step, ... up to and including to.
// The i-th point is computed as from + i*step so that long ranges do not
// accumulate rounding drift.
func Samples(v *Variable, from, to, step float64) iter.Seq[Sample] {
	return func(yield func(Sample) bool) {
		if step <= 0 || math.IsNaN(from) || math.IsNaN(to) || to < from {
			return
		}
		n := int(math.Floor((to-from)/step+1e-9)) + 1
		for i := 0; i < n; i++ {
			x := from + float64(i)*step
			vec := Evaluate(v, x)
			s := Sample{X: x, Degrees: make([]float64, len(vec.Degrees))}
			for j, d := range vec.Degrees {
				s.Degrees[j] = d.Value
			}
			if !yield(s) {
				return
			}
		}
	}
}

// PlotSamples samples v over its declared plot range.
func PlotSamples(v *Variable) iter.Seq[Sample] {
	return Samples(v, v.Plot.From, v.Plot.To, v.Plot.Step)
}

// Validate checks every term shape and that term names are unique.
func (v *Variable) Validate() error {
	if v.Name == "" {
		return fmt.Errorf("variable has no name")
	}
	if len(v.Terms) == 0 {
		return fmt.Errorf("variable %q has no terms", v.Name)
	}
	seen := make(map[string]bool, len(v.Terms))
	for _, t := range v.Terms {
		if seen[t.Name] {
			return fmt.Errorf("variable %q: duplicate term %q", v.Name, t.Name)
		}
		seen[t.Name] = true
		if err := t.Shape.Validate(); err != nil {
			return fmt.Errorf("variable %q term %q: %w", v.Name, t.Name, err)
		}
	}
	return nil
}
