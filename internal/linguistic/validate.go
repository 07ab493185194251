package linguistic

import (
	"fmt"
	"strings"

	"github.com/abhisek/fuzzscore/internal/membership"
)

// Validate performs structural checks on the registry.
// Returns a combined error describing all problems found, or nil if valid.
func Validate() error {
	return validateVariables(inputs, Performance)
}

func validateVariables(in []*membership.Variable, out *membership.Variable) error {
	var errs []string

	seen := make(map[string]bool)
	for _, v := range append(append([]*membership.Variable{}, in...), out) {
		if err := v.Validate(); err != nil {
			errs = append(errs, err.Error())
		}
		if seen[v.Name] {
			errs = append(errs, fmt.Sprintf("duplicate variable name %q", v.Name))
		}
		seen[v.Name] = true
		if v.Recommended.Min > v.Recommended.Max {
			errs = append(errs, fmt.Sprintf("variable %q: recommended range is inverted", v.Name))
		}
	}

	// Only neighbouring terms may overlap, which caps the number of
	// simultaneously nonzero terms at two.
	for _, v := range in {
		for i := 0; i+2 < len(v.Terms); i++ {
			_, hi := v.Terms[i].Shape.Support()
			lo, _ := v.Terms[i+2].Shape.Support()
			if hi > lo {
				errs = append(errs, fmt.Sprintf("variable %q: terms %q and %q overlap",
					v.Name, v.Terms[i].Name, v.Terms[i+2].Name))
			}
		}
	}

	for i := 1; i < len(out.Terms); i++ {
		if out.Terms[i].Center <= out.Terms[i-1].Center {
			errs = append(errs, fmt.Sprintf("output term %q: center %v is not above %q (%v)",
				out.Terms[i].Name, out.Terms[i].Center, out.Terms[i-1].Name, out.Terms[i-1].Center))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("linguistic registry validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
