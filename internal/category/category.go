// Package category maps a crisp performance score to a coarse label.
package category

import "github.com/abhisek/fuzzscore/internal/linguistic"

// Category is the coarse label of a crisp score.
type Category string

const (
	Low      Category = linguistic.Low
	Moderate Category = linguistic.Moderate
	High     Category = linguistic.High
)

const (
	// LowUpperBound is the highest score (inclusive) labelled low.
	LowUpperBound = 40.0
	// ModerateUpperBound is the highest score (inclusive) labelled moderate.
	ModerateUpperBound = 70.0
)

// All returns the categories in ascending order.
func All() []Category {
	return []Category{Low, Moderate, High}
}

// Classify partitions the real line at 40 and 70.
func Classify(score float64) Category {
	switch {
	case score <= LowUpperBound:
		return Low
	case score <= ModerateUpperBound:
		return Moderate
	default:
		return High
	}
}

// DisplayName returns a human-readable name for a category.
func DisplayName(c Category) string {
	switch c {
	case Low:
		return "Low"
	case Moderate:
		return "Moderate"
	case High:
		return "High"
	default:
		return string(c)
	}
}
