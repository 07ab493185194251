package fuzzy

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/abhisek/fuzzscore/internal/linguistic"
)

var (
	errEmpty     = errors.New("value is empty")
	errNotFinite = errors.New("value is not a finite number")
)

// Input is the four raw measurements of one evaluation.
type Input struct {
	Anamnesis float64 `json:"anamnesis"`
	Smoking   float64 `json:"smoking"`
	Age       float64 `json:"age"`
	DoubtTime float64 `json:"doubt_time"`
}

// Values returns the inputs in antecedent order.
func (in Input) Values() [4]float64 {
	return [4]float64{in.Anamnesis, in.Smoking, in.Age, in.DoubtTime}
}

// Validate rejects NaN and infinite values. Any finite value is accepted.
func (in Input) Validate() error {
	names := linguistic.InputNames()
	for i, v := range in.Values() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &InvalidInputError{
				Field: names[i],
				Value: strconv.FormatFloat(v, 'g', -1, 64),
				Err:   errNotFinite,
			}
		}
	}
	return nil
}

// ParseInput parses the four measurements from text, in antecedent order.
func ParseInput(anamnesis, smoking, age, doubtTime string) (Input, error) {
	names := linguistic.InputNames()
	raw := [4]string{anamnesis, smoking, age, doubtTime}

	var vals [4]float64
	for i, s := range raw {
		v, err := ParseValue(names[i], s)
		if err != nil {
			return Input{}, err
		}
		vals[i] = v
	}
	return Input{Anamnesis: vals[0], Smoking: vals[1], Age: vals[2], DoubtTime: vals[3]}, nil
}

// ParseValue parses one measurement. Surrounding whitespace is ignored;
// empty text, non-numeric text, NaN and infinities are rejected.
func ParseValue(field, s string) (float64, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, &InvalidInputError{Field: field, Value: s, Err: errEmpty}
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return 0, &InvalidInputError{Field: field, Value: s, Err: err}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &InvalidInputError{Field: field, Value: s, Err: errNotFinite}
	}
	return v, nil
}
