package scale

import "math"

const (
	Min     Factor = 0.1
	Max     Factor = 3.0
	Default Factor = 1.0

	step = 0.2
)

// Factor is the shell's display scale. The zero value is not valid; use
// New or Default.
type Factor float64

// New clamps v into [Min, Max].
func New(v float64) Factor {
	return clamp(v)
}

// Increment raises the factor by one step, stopping at Max.
func (f *Factor) Increment() {
	*f = clamp(float64(*f) + step)
}

// Decrement lowers the factor by one step, stopping at Min.
func (f *Factor) Decrement() {
	*f = clamp(float64(*f) - step)
}

// Reset returns the factor to Default.
func (f *Factor) Reset() {
	*f = Default
}

// Percent returns the factor as a whole percentage, e.g. 120.
func (f Factor) Percent() int {
	return int(math.Round(float64(f) * 100))
}

// Apply scales a cell count, never returning less than 1 for positive n.
func (f Factor) Apply(n int) int {
	if n <= 0 {
		return 0
	}
	return max(1, int(math.Round(float64(n)*float64(f))))
}

func clamp(v float64) Factor {
	if math.IsNaN(v) {
		return Default
	}
	// Round to one decimal so repeated steps land on exact values.
	v = math.Round(v*10) / 10
	return Factor(math.Min(math.Max(v, float64(Min)), float64(Max)))
}
