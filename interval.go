package valuescale

import (
	"fmt"
	"math"
)

// ----------------------------------------------------------------------------
// Interval

// Interval represents a (potentially degenerate) real interval.
// An Interval which is still accumulating data may have NaN edges
// indicating that no value has been seen yet.
type Interval struct {
	Min, Max float64
}

// Update expands i to include x. NaN and infinite values are ignored.
func (i *Interval) Update(x ...float64) {
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if !(i.Min <= v) {
			i.Min = v
		}
		if !(i.Max >= v) {
			i.Max = v
		}
	}
}

// Valid reports whether both edges of i are finite.
func (i Interval) Valid() bool {
	return finite(i.Min) && finite(i.Max)
}

// Width returns Max-Min.
func (i Interval) Width() float64 { return i.Max - i.Min }

// Contains reports whether x lies in the closed interval i.
func (i Interval) Contains(x float64) bool {
	return x >= i.Min && x <= i.Max
}

// Equal reports whether i and j have the same edges. NaN edges compare
// equal to NaN edges.
func (i Interval) Equal(j Interval) bool {
	return sameFloat(i.Min, j.Min) && sameFloat(i.Max, j.Max)
}

func (i Interval) String() string {
	return fmt.Sprintf("[%g:%g]", i.Min, i.Max)
}

func sameFloat(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}
	return a == b
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
