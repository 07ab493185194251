// Package fuzzy runs the full performance-score pipeline: fuzzification,
// rule inference, defuzzification and classification. An evaluation is a
// pure function of its four inputs; nothing is retained between calls, so an
// Engine can be shared by any number of goroutines.
package fuzzy

import (
	"context"
	"log/slog"

	"github.com/abhisek/fuzzscore/internal/category"
	"github.com/abhisek/fuzzscore/internal/defuzz"
	"github.com/abhisek/fuzzscore/internal/inference"
	"github.com/abhisek/fuzzscore/internal/linguistic"
	"github.com/abhisek/fuzzscore/internal/membership"
	"github.com/abhisek/fuzzscore/internal/rulebase"
)

// Result is the outcome of one evaluation. It is owned by the caller.
type Result struct {
	Input         Input                 `json:"input"`
	Fuzzification []membership.Vector   `json:"fuzzification"`
	FiredRules    []inference.FiredRule `json:"fired_rules"`
	Aggregation   []defuzz.Strength     `json:"aggregation"`
	Score         float64               `json:"score"`
	Category      category.Category     `json:"category"`
}

// Engine evaluates inputs against a rule base.
type Engine struct {
	rules  *rulebase.RuleBase
	logger *slog.Logger
}

// NewEngine creates an engine. A nil rule base selects the embedded one; a
// nil logger disables logging.
func NewEngine(rules *rulebase.RuleBase, logger *slog.Logger) *Engine {
	if rules == nil {
		rules = rulebase.Default()
	}
	return &Engine{rules: rules, logger: logger}
}

var defaultEngine = NewEngine(nil, nil)

// Evaluate runs the pipeline with the embedded rule base.
func Evaluate(anamnesis, smoking, age, doubtTime float64) (*Result, error) {
	return defaultEngine.Evaluate(Input{
		Anamnesis: anamnesis,
		Smoking:   smoking,
		Age:       age,
		DoubtTime: doubtTime,
	})
}

// EvaluateStrings parses textual inputs and runs the pipeline. Unparsable
// values fail with *InvalidInputError.
func EvaluateStrings(anamnesis, smoking, age, doubtTime string) (*Result, error) {
	in, err := ParseInput(anamnesis, smoking, age, doubtTime)
	if err != nil {
		return nil, err
	}
	return defaultEngine.Evaluate(in)
}

// Rules returns the rule base the engine evaluates against.
func (e *Engine) Rules() *rulebase.RuleBase {
	return e.rules
}

// Evaluate runs fuzzification, inference, defuzzification and
// classification for one input.
func (e *Engine) Evaluate(in Input) (*Result, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var fz inference.Inputs
	vals := in.Values()
	for i, v := range linguistic.Inputs() {
		fz[i] = membership.Evaluate(v, vals[i])
	}

	fired := inference.Infer(fz, e.rules)
	if fired == nil {
		fired = []inference.FiredRule{}
	}
	agg := defuzz.Aggregate(fired)
	if agg == nil {
		agg = []defuzz.Strength{}
	}
	score := defuzz.Centroid(agg)

	res := &Result{
		Input:         in,
		Fuzzification: fz[:],
		FiredRules:    fired,
		Aggregation:   agg,
		Score:         score,
		Category:      category.Classify(score),
	}

	if e.logger != nil && e.logger.Enabled(context.Background(), slog.LevelDebug) {
		e.logger.Debug("evaluated",
			"input", in,
			"fired", len(fired),
			"score", score,
			"category", res.Category)
	}
	return res, nil
}
