// Package rulebase holds the fuzzy rule table. The table is a data artifact
// embedded at build time, checked against a JSON schema and for totality
// over every combination of input terms, and loaded once at process start.
package rulebase

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Arity is the number of input variables in every antecedent.
const Arity = 4

// ErrInvalidRuleBase is wrapped by every load or validation failure.
var ErrInvalidRuleBase = errors.New("invalid rule base")

//go:embed rules.json
var embeddedRules []byte

// Antecedent is the ordered tuple of input terms: anamnesis, smoking, age,
// doubt time.
type Antecedent [Arity]string

// String renders the antecedent the way it is shown to users.
func (a Antecedent) String() string {
	return strings.Join(a[:], " AND ")
}

// Rule maps one antecedent to one output term.
type Rule struct {
	If   Antecedent `json:"if"`
	Then string     `json:"then"`
}

// document is the on-disk form of a rule base.
type document struct {
	Version   string   `json:"version"`
	Variables []string `json:"variables"`
	Rules     []struct {
		If   []string `json:"if"`
		Then string   `json:"then"`
	} `json:"rules"`
}

// RuleBase is an immutable, validated rule table.
type RuleBase struct {
	version   string
	variables []string
	rules     []Rule
	index     map[Antecedent]int
}

var defaultBase *RuleBase

func init() {
	rb, err := Parse(embeddedRules)
	if err != nil {
		panic(err)
	}
	defaultBase = rb
}

// Default returns the embedded rule base.
func Default() *RuleBase {
	return defaultBase
}

// Parse decodes and validates a rule-base document.
func Parse(raw []byte) (*RuleBase, error) {
	if err := validateSchema(raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRuleBase, err)
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrInvalidRuleBase, err)
	}

	rules := make([]Rule, len(doc.Rules))
	for i, r := range doc.Rules {
		// The schema pins the length to Arity.
		copy(rules[i].If[:], r.If)
		rules[i].Then = r.Then
	}

	if err := validateRules(doc.Version, doc.Variables, rules); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRuleBase, err)
	}

	rb := &RuleBase{
		version:   doc.Version,
		variables: doc.Variables,
		rules:     rules,
		index:     make(map[Antecedent]int, len(rules)),
	}
	for i, r := range rules {
		rb.index[r.If] = i
	}
	return rb, nil
}

// Version returns the semantic version of the rule table.
func (rb *RuleBase) Version() string { return rb.version }

// Variables returns the input variable names in antecedent order.
func (rb *RuleBase) Variables() []string { return slices.Clone(rb.variables) }

// Len returns the number of rules.
func (rb *RuleBase) Len() int { return len(rb.rules) }

// Rules returns the rules in table order.
func (rb *RuleBase) Rules() []Rule {
	return slices.Clone(rb.rules)
}

// All iterates the rules in table order without copying the table.
func (rb *RuleBase) All(yield func(int, Rule) bool) {
	for i, r := range rb.rules {
		if !yield(i, r) {
			return
		}
	}
}

// Lookup returns the consequent for an antecedent. A validated rule base is
// total, so ok is false only for tuples containing unknown term names.
func (rb *RuleBase) Lookup(a Antecedent) (string, bool) {
	i, ok := rb.index[a]
	if !ok {
		return "", false
	}
	return rb.rules[i].Then, true
}
