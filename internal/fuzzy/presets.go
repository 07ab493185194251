package fuzzy

import (
	"fmt"
	"strings"
)

// Preset is a named sample input.
type Preset struct {
	Name  string
	Input Input
}

var presets = []Preset{
	{Name: "1", Input: Input{Anamnesis: 25, Smoking: 500, Age: 28, DoubtTime: 10}},
	{Name: "2", Input: Input{Anamnesis: 80, Smoking: 600, Age: 20, DoubtTime: 6}},
	{Name: "3", Input: Input{Anamnesis: 80, Smoking: 100, Age: 20, DoubtTime: 5}},
	{Name: "4", Input: Input{Anamnesis: 60, Smoking: 400, Age: 40, DoubtTime: 12}},
}

// Presets returns the sample inputs.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// PresetByName returns the sample input with the given name.
func PresetByName(name string) (Preset, error) {
	for _, p := range presets {
		if p.Name == name {
			return p, nil
		}
	}
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.Name
	}
	return Preset{}, fmt.Errorf("no preset %q (available: %s)", name, strings.Join(names, ", "))
}
