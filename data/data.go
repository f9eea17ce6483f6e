// Package data contains the series interfaces a value scale auto-scales
// against and prototypical implementations.
package data

import (
	"math"

	"gonum.org/v1/plot/plotter"
)

// Series wraps the Len and Extent methods.
type Series interface {
	// Len returns the number of records.
	Len() int

	// Extent returns the lowest and highest value plotted for record i.
	// Records without a value return NaN.
	Extent(i int) (lo, hi float64)
}

// Range returns the minimum and maximum value plotted for the records
// first to last (both inclusive) of all series. NaN and infinite values
// are ignored. The bool result is false if there is no finite value.
func Range(first, last int, series ...Series) (min, max float64, ok bool) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, s := range series {
		from, to := first, last
		if from < 0 {
			from = 0
		}
		if to >= s.Len() {
			to = s.Len() - 1
		}
		for i := from; i <= to; i++ {
			lo, hi := s.Extent(i)
			if finite(lo) {
				min, max = math.Min(min, lo), math.Max(max, lo)
			}
			if finite(hi) {
				min, max = math.Min(min, hi), math.Max(max, hi)
			}
		}
	}
	return min, max, min <= max
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

// Values implements the Series interface for a plain value sequence.
type Values []float64

func (v Values) Len() int                      { return len(v) }
func (v Values) Extent(i int) (lo, hi float64) { return v[i], v[i] }

// OHLC is one open, high, low, close quadruple.
type OHLC struct{ Open, High, Low, Close float64 }

// OHLCs implements the Series interface for candlestick data.
type OHLCs []OHLC

func (d OHLCs) Len() int { return len(d) }

// Extent returns the range spanned by all four values of record i, so
// inconsistent records (e.g. a close above the high) stay visible.
func (d OHLCs) Extent(i int) (lo, hi float64) {
	r := d[i]
	lo = math.Min(math.Min(r.Open, r.High), math.Min(r.Low, r.Close))
	hi = math.Max(math.Max(r.Open, r.High), math.Max(r.Low, r.Close))
	return lo, hi
}

// XYSeries adapts a gonum plotter.XYer: record i plots its y value.
type XYSeries struct {
	plotter.XYer
}

// Extent implements Series.
func (s XYSeries) Extent(i int) (lo, hi float64) {
	_, y := s.XY(i)
	return y, y
}

// Band implements the Series interface for a lower and an upper line
// such as the envelope of a moving average.
type Band struct {
	Lower, Upper Values
}

// Len returns the length of the shorter line.
func (b Band) Len() int {
	if len(b.Lower) < len(b.Upper) {
		return len(b.Lower)
	}
	return len(b.Upper)
}

func (b Band) Extent(i int) (lo, hi float64) { return b.Lower[i], b.Upper[i] }
