package fuzzy

import (
	"fmt"
	"strconv"

	"github.com/abhisek/fuzzscore/internal/linguistic"
	"github.com/abhisek/fuzzscore/internal/membership"
)

// Advisory notes an input outside its variable's recommended range. It is
// informational: the input is still evaluated.
type Advisory struct {
	Variable    string           `json:"variable"`
	Value       float64          `json:"value"`
	Recommended membership.Range `json:"recommended"`
	Unit        string           `json:"unit,omitempty"`
}

func (a Advisory) String() string {
	s := fmt.Sprintf("%s %s should be within %s-%s",
		a.Variable,
		strconv.FormatFloat(a.Value, 'f', -1, 64),
		strconv.FormatFloat(a.Recommended.Min, 'f', -1, 64),
		strconv.FormatFloat(a.Recommended.Max, 'f', -1, 64))
	if a.Unit != "" {
		s += " " + a.Unit
	}
	return s
}

// Advise lists the inputs that fall outside their recommended ranges, in
// antecedent order.
func Advise(in Input) []Advisory {
	var out []Advisory
	vals := in.Values()
	for i, v := range linguistic.Inputs() {
		if !v.Recommended.Contains(vals[i]) {
			out = append(out, Advisory{
				Variable:    v.Name,
				Value:       vals[i],
				Recommended: v.Recommended,
				Unit:        v.Unit,
			})
		}
	}
	return out
}

// CheckStrict returns a *RangeError if any input is outside its recommended
// range.
func CheckStrict(in Input) error {
	if adv := Advise(in); len(adv) > 0 {
		return &RangeError{Advisories: adv}
	}
	return nil
}
