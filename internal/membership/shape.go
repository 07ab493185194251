package membership

import (
	"fmt"
	"math"
)

// Point is one breakpoint of a piecewise-linear membership shape.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Shape is a piecewise-linear membership function defined by breakpoints in
// ascending X order. Between two breakpoints the degree is interpolated
// linearly; left of the first and right of the last breakpoint the degree is
// held flat at that breakpoint's Y, so every real input yields a degree.
type Shape []Point

// Trapezoid returns a shape that is 0 up to a, rises to 1 at b, stays at 1
// until c and falls back to 0 at d. A triangle is a trapezoid with b == c.
func Trapezoid(a, b, c, d float64) Shape {
	if b == c {
		return Shape{{a, 0}, {b, 1}, {d, 0}}
	}
	return Shape{{a, 0}, {b, 1}, {c, 1}, {d, 0}}
}

// Shoulder returns a shape that is 1 up to a and falls to 0 at b.
func Shoulder(a, b float64) Shape {
	return Shape{{a, 1}, {b, 0}}
}

// Ramp returns a shape that is 0 up to a and rises to 1 at b.
func Ramp(a, b float64) Shape {
	return Shape{{a, 0}, {b, 1}}
}

// At returns the membership degree of x.
func (s Shape) At(x float64) float64 {
	n := len(s)
	if n == 0 {
		return 0
	}
	if x <= s[0].X {
		return s[0].Y
	}
	if x >= s[n-1].X {
		return s[n-1].Y
	}
	for i := 1; i < n; i++ {
		hi := s[i]
		if x > hi.X {
			continue
		}
		lo := s[i-1]
		if hi.X == lo.X || hi.Y == lo.Y {
			return hi.Y
		}
		return (lo.Y*(hi.X-x) + hi.Y*(x-lo.X)) / (hi.X - lo.X)
	}
	return s[n-1].Y
}

// Support returns the open interval on which the shape is nonzero. Infinite
// bounds mean the shape saturates above zero on that side.
func (s Shape) Support() (lo, hi float64) {
	lo, hi = math.Inf(-1), math.Inf(1)
	if len(s) == 0 {
		return 0, 0
	}
	if s[0].Y == 0 {
		for i := 1; i < len(s); i++ {
			if s[i].Y > 0 {
				lo = s[i-1].X
				break
			}
		}
	}
	if s[len(s)-1].Y == 0 {
		for i := len(s) - 2; i >= 0; i-- {
			if s[i].Y > 0 {
				hi = s[i+1].X
				break
			}
		}
	}
	return lo, hi
}

// Validate checks that breakpoints are finite, ascending and within [0,1].
func (s Shape) Validate() error {
	if len(s) < 2 {
		return fmt.Errorf("shape needs at least 2 breakpoints, got %d", len(s))
	}
	for i, p := range s {
		if math.IsNaN(p.X) || math.IsInf(p.X, 0) {
			return fmt.Errorf("breakpoint %d: x must be finite, got %v", i, p.X)
		}
		if p.Y < 0 || p.Y > 1 || math.IsNaN(p.Y) {
			return fmt.Errorf("breakpoint %d: degree must be in [0,1], got %v", i, p.Y)
		}
		if i > 0 && p.X < s[i-1].X {
			return fmt.Errorf("breakpoint %d: x=%v is before previous x=%v", i, p.X, s[i-1].X)
		}
	}
	return nil
}
