package rulebase

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/abhisek/fuzzscore/internal/linguistic"
	"github.com/abhisek/fuzzscore/internal/membership"
)

// SupportedMajor is the only rule-table major version this build understands.
const SupportedMajor = "v1"

// validateRules checks version, variable order and totality: every
// combination of input terms must appear exactly once, and every consequent
// must be an output term. Returns a combined error describing all problems
// found, or nil if valid.
func validateRules(version string, variables []string, rules []Rule) error {
	var errs []string

	switch {
	case !semver.IsValid(version):
		errs = append(errs, fmt.Sprintf("version %q is not a valid semantic version", version))
	case semver.Major(version) != SupportedMajor:
		errs = append(errs, fmt.Sprintf("version %q: unsupported major version, want %s", version, SupportedMajor))
	}

	inputs := linguistic.Inputs()
	if want := linguistic.InputNames(); !slices.Equal(variables, want) {
		errs = append(errs, fmt.Sprintf("variables %v do not match inputs %v", variables, want))
	}

	seen := make(map[Antecedent]int, len(rules))
	for i, r := range rules {
		for pos, term := range r.If {
			if pos >= len(inputs) {
				break
			}
			if _, ok := inputs[pos].Term(term); !ok {
				errs = append(errs, fmt.Sprintf("rule %d: %q is not a term of %s", i+1, term, inputs[pos].Name))
			}
		}
		if _, ok := linguistic.Performance.Term(r.Then); !ok {
			errs = append(errs, fmt.Sprintf("rule %d: consequent %q is not a term of %s", i+1, r.Then, linguistic.NamePerformance))
		}
		if prev, dup := seen[r.If]; dup {
			errs = append(errs, fmt.Sprintf("rule %d: antecedent (%s) already defined by rule %d", i+1, r.If, prev+1))
			continue
		}
		seen[r.If] = i
	}

	for _, a := range crossProduct(inputs) {
		if _, ok := seen[a]; !ok {
			errs = append(errs, fmt.Sprintf("missing rule for (%s)", a))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("rule base validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// crossProduct enumerates every antecedent, varying the last variable
// fastest.
func crossProduct(inputs []*membership.Variable) []Antecedent {
	if len(inputs) != Arity {
		return nil
	}
	total := 1
	for _, v := range inputs {
		total *= len(v.Terms)
	}
	out := make([]Antecedent, 0, total)
	for n := 0; n < total; n++ {
		var a Antecedent
		rem := n
		for pos := Arity - 1; pos >= 0; pos-- {
			terms := inputs[pos].Terms
			a[pos] = terms[rem%len(terms)].Name
			rem /= len(terms)
		}
		out = append(out, a)
	}
	return out
}

// Check re-runs validation on an already loaded rule base.
func (rb *RuleBase) Check() error {
	return validateRules(rb.version, rb.variables, rb.rules)
}

// Combinations returns the number of distinct antecedents the inputs allow.
func Combinations() int {
	return len(crossProduct(linguistic.Inputs()))
}
